package collector

import (
	"context"
	"strings"
)

// CollectKernelVersion runs the kernel-identification command and returns
// its release field.
func CollectKernelVersion(ctx context.Context, r Runner, command []string) (string, error) {
	out, err := run(ctx, r, command)
	if err != nil {
		return "", err
	}
	return ParseKernelVersion(strings.Join(command, " "), out)
}

// ParseKernelVersion returns the second whitespace-separated token of
// output, e.g. "6.1.0-amd64" from "Linux 6.1.0-amd64 x86_64".
func ParseKernelVersion(command, output string) (string, error) {
	fields := strings.Fields(output)
	if len(fields) < 2 {
		return "", &ParseError{Command: command, Output: output, Reason: "expected at least two fields"}
	}
	return fields[1], nil
}
