package rules

import (
	"sort"
	"strings"

	"github.com/example/wmstatus/internal/config"
	"github.com/example/wmstatus/internal/types"
)

// Evaluate runs all rules against summary and returns the issues found,
// ordered by severity, then rule ID, then subject.
func Evaluate(summary *types.SystemSummary, cfg *config.Config) []types.Issue {
	issues := []types.Issue{}
	if summary == nil || cfg == nil {
		return issues
	}

	issues = append(issues, checkDiskUsage(summary, cfg)...)
	issues = append(issues, checkVolumes(summary)...)

	// Deterministic ordering for diff-friendly output
	severityRank := func(s string) int {
		switch strings.ToLower(s) {
		case "high":
			return 0
		case "medium":
			return 1
		case "low":
			return 2
		default:
			return 3
		}
	}
	sort.Slice(issues, func(i, j int) bool {
		if severityRank(issues[i].Severity) != severityRank(issues[j].Severity) {
			return severityRank(issues[i].Severity) < severityRank(issues[j].Severity)
		}
		if issues[i].RuleID != issues[j].RuleID {
			return issues[i].RuleID < issues[j].RuleID
		}
		return issues[i].Subject < issues[j].Subject
	})
	return issues
}

// OverThreshold reports whether v is fuller than threshold percent.
// A threshold of 0 disables the check.
func OverThreshold(v types.VolumeUsage, threshold int) bool {
	if threshold <= 0 || v.TotalGB <= 0 {
		return false
	}
	return v.UsedPercent() > float64(threshold)
}
