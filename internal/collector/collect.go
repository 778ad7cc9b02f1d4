package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/example/wmstatus/internal/config"
	"github.com/example/wmstatus/internal/types"
)

// Collector names, as they appear in reports.
const (
	NameKernel = "kernel"
	NameDisk   = "disk"
	NameHost   = "host"
)

// Status is the outcome of one collector run.
type Status struct {
	Name     string
	Status   string // ok | error | skipped
	Duration time.Duration
	Errors   []string
}

// Snapshot is everything gathered for one status run.
type Snapshot struct {
	Summary    *types.SystemSummary
	Host       *types.HostStats
	Collectors []Status
}

// CollectSystemSummary runs the kernel and disk commands once each and
// returns the summary the bar is built from. Either command failing is fatal.
func CollectSystemSummary(ctx context.Context, r Runner, cfg config.StatusConfig) (*types.SystemSummary, error) {
	summary, _, err := collectSummary(ctx, r, cfg)
	return summary, err
}

// Collect gathers the system summary and, best effort, host stats.
func Collect(ctx context.Context, r Runner, cfg *config.Config) (*Snapshot, error) {
	summary, statuses, err := collectSummary(ctx, r, cfg.Status)
	if err != nil {
		return nil, err
	}

	hostStart := time.Now()
	host, hostErrs := collectHost(ctx)
	hostStatus := Status{Name: NameHost, Status: "ok", Duration: time.Since(hostStart), Errors: []string{}}
	if len(hostErrs) > 0 {
		hostStatus.Status = "error"
		for _, e := range hostErrs {
			hostStatus.Errors = append(hostStatus.Errors, e.Error())
		}
	} else {
		logTiming(ctx, NameHost, hostStart)
	}

	return &Snapshot{
		Summary:    summary,
		Host:       host,
		Collectors: append(statuses, hostStatus),
	}, nil
}

func collectSummary(ctx context.Context, r Runner, cfg config.StatusConfig) (*types.SystemSummary, []Status, error) {
	kernelStart := time.Now()
	kernel, err := CollectKernelVersion(ctx, r, cfg.KernelCommand)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to collect kernel version: %w", err)
	}
	logTiming(ctx, NameKernel, kernelStart)
	kernelTook := time.Since(kernelStart)

	diskStart := time.Now()
	volumes, err := CollectDiskUsage(ctx, r, cfg.DiskCommand, cfg.Devices)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to collect disk usage: %w", err)
	}
	logTiming(ctx, NameDisk, diskStart)

	statuses := []Status{
		{Name: NameKernel, Status: "ok", Duration: kernelTook, Errors: []string{}},
		{Name: NameDisk, Status: "ok", Duration: time.Since(diskStart), Errors: []string{}},
	}
	return &types.SystemSummary{Kernel: kernel, Volumes: volumes}, statuses, nil
}
