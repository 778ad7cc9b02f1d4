package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/example/wmstatus/internal/types"
)

const (
	mb = 1024 * 1024

	// cpuSampleInterval is how long CollectHostStats measures CPU load.
	cpuSampleInterval = 200 * time.Millisecond
)

// collectHost is swapped out in tests.
var collectHost = CollectHostStats

// CollectHostStats reads memory, CPU, uptime and hostname. Each probe is
// independent: a failed probe leaves its fields zero and adds to the
// returned errors.
func CollectHostStats(ctx context.Context) (*types.HostStats, []error) {
	stats := &types.HostStats{}
	var errs []error

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		errs = append(errs, fmt.Errorf("memory: %w", err))
	} else {
		stats.MemUsedMB = vm.Used / mb
		stats.MemTotalMB = vm.Total / mb
		stats.MemPercent = vm.UsedPercent
	}

	if pct, err := cpu.PercentWithContext(ctx, cpuSampleInterval, false); err != nil {
		errs = append(errs, fmt.Errorf("cpu: %w", err))
	} else if len(pct) > 0 {
		stats.CPUPercent = pct[0]
	}

	if info, err := host.InfoWithContext(ctx); err != nil {
		errs = append(errs, fmt.Errorf("host: %w", err))
	} else {
		stats.Hostname = info.Hostname
		stats.UptimeSeconds = info.Uptime
	}

	return stats, errs
}
