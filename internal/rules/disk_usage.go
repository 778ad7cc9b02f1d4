package rules

import (
	"fmt"

	"github.com/example/wmstatus/internal/config"
	"github.com/example/wmstatus/internal/types"
)

func checkDiskUsage(summary *types.SystemSummary, cfg *config.Config) []types.Issue {
	// DISK_USAGE_HIGH
	threshold := cfg.Status.DiskThreshold
	var issues []types.Issue
	for _, v := range summary.Volumes {
		if !OverThreshold(v, threshold) {
			continue
		}
		pct := v.UsedPercent()
		severity := "medium"
		if pct > 95 {
			severity = "high"
		} else if pct < float64(threshold)+5 {
			severity = "low"
		}

		issues = append(issues, types.Issue{
			RuleID:      "DISK_USAGE_HIGH",
			Subject:     "device=" + v.Label,
			Severity:    severity,
			Category:    "disk_usage",
			Description: fmt.Sprintf("Volume %s is %.2f%% full, exceeding threshold of %d%%", v.Label, pct, threshold),
			Facts: map[string]interface{}{
				"device":       v.Label,
				"used_gb":      v.UsedGB,
				"total_gb":     v.TotalGB,
				"used_percent": pct,
				"threshold":    threshold,
			},
			Solutions: []string{
				"Identify and remove unused files or directories.",
				"Check for large log files in /var/log and rotate them.",
				"Consider increasing disk space if possible.",
			},
		})
	}
	return issues
}
