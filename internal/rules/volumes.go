package rules

import (
	"fmt"

	"github.com/example/wmstatus/internal/types"
)

func checkVolumes(summary *types.SystemSummary) []types.Issue {
	var issues []types.Issue
	for _, v := range summary.Volumes {
		switch {
		case v.TotalGB == 0 && v.UsedGB == 0:
			// VOLUME_NOT_FOUND: no matching line, or a line with sizes below 1G.
			issues = append(issues, types.Issue{
				RuleID:      "VOLUME_NOT_FOUND",
				Subject:     "device=" + v.Label,
				Severity:    "low",
				Category:    "configuration",
				Description: fmt.Sprintf("No gigabyte sizes found for device %s in the disk report; it is shown as 0/0 G", v.Label),
				Facts:       map[string]interface{}{"device": v.Label},
				Solutions: []string{
					"Check that the device is mounted: 'df -h | grep " + v.Label + "'.",
					"Sizes printed in M or T are not read; only gigabyte columns are.",
					"Remove the device from status.devices if it no longer exists.",
				},
			})
		case v.UsedGB > v.TotalGB:
			// VOLUME_COLUMNS_SUSPECT: used > total means the size columns
			// were not in Size, Used order.
			issues = append(issues, types.Issue{
				RuleID:      "VOLUME_COLUMNS_SUSPECT",
				Subject:     "device=" + v.Label,
				Severity:    "medium",
				Category:    "parsing",
				Description: fmt.Sprintf("Device %s reports %dG used of %dG total", v.Label, v.UsedGB, v.TotalGB),
				Facts: map[string]interface{}{
					"device":   v.Label,
					"used_gb":  v.UsedGB,
					"total_gb": v.TotalGB,
				},
				Solutions: []string{
					"Run the disk command with LC_ALL=C so the column layout is Size, Used, Avail.",
					"Check status.disk_command prints sizes in gigabytes (df -h).",
				},
			})
		}
	}
	return issues
}
