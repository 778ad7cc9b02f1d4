package collector

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/example/wmstatus/internal/types"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunner_MissingBinary(t *testing.T) {
	_, err := ExecRunner{}.CombinedOutput(context.Background(), "wmstatus-no-such-command")
	if !errors.Is(err, ErrCommandNotFound) {
		t.Fatalf("expected ErrCommandNotFound, got %v", err)
	}
	var ce *CommandError
	if errors.As(err, &ce) {
		t.Fatalf("missing binary must not be a CommandError: %v", err)
	}
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	requireShell(t)

	out, err := ExecRunner{}.CombinedOutput(context.Background(), "sh", "-c", "echo boom; exit 1")
	var ce *CommandError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CommandError, got %v", err)
	}
	if ce.Name != "sh" || !strings.Contains(ce.Output, "boom") {
		t.Errorf("unexpected command error %+v", ce)
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
		t.Errorf("expected wrapped exit status 1, got %v", err)
	}
	if !strings.Contains(string(out), "boom") {
		t.Errorf("expected output to be returned with the error, got %q", out)
	}
}

func TestExecRunner_MergesStderr(t *testing.T) {
	requireShell(t)

	out, err := ExecRunner{}.CombinedOutput(context.Background(), "sh", "-c", "echo '/dev/sda3 100G 42G 58G 42% /' 1>&2")
	if err != nil {
		t.Fatalf("CombinedOutput() error = %v", err)
	}
	got := ParseDiskUsage(string(out), []string{"sda3"})
	want := types.VolumeUsage{Label: "sda3", UsedGB: 42, TotalGB: 100}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("expected %+v from stderr output, got %+v", want, got)
	}
}

func TestCollectDiskUsage_ExecRunner(t *testing.T) {
	requireShell(t)

	cmd := []string{"sh", "-c", "printf '/dev/sdb1 916G 604G 266G 70%% /data\\n'"}
	got, err := CollectDiskUsage(context.Background(), ExecRunner{}, cmd, []string{"sdb1", "sdc1"})
	if err != nil {
		t.Fatalf("CollectDiskUsage() error = %v", err)
	}
	if FormatVolume(got[0]) != "604/916 G" || FormatVolume(got[1]) != "0/0 G" {
		t.Fatalf("unexpected volumes %+v", got)
	}
}
