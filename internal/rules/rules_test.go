package rules

import (
	"strings"
	"testing"

	"github.com/example/wmstatus/internal/collector"
	"github.com/example/wmstatus/internal/config"
	"github.com/example/wmstatus/internal/types"
)

func TestEvaluate_ProducesExpectedRuleIDs(t *testing.T) {
	cfg := config.Default()
	cfg.Status.DiskThreshold = 80

	summary := &types.SystemSummary{
		Kernel: "6.1.0-amd64",
		Volumes: []types.VolumeUsage{
			{Label: "sda3", UsedGB: 90, TotalGB: 100},
			{Label: "sdb1", UsedGB: 20, TotalGB: 10},
			{Label: "sdc1"},
		},
	}

	issues := Evaluate(summary, cfg)

	seen := map[string]bool{}
	for _, is := range issues {
		seen[is.RuleID] = true
	}
	for _, want := range []string{"DISK_USAGE_HIGH", "VOLUME_NOT_FOUND", "VOLUME_COLUMNS_SUSPECT"} {
		if !seen[want] {
			t.Fatalf("expected ruleId %s to be produced, got %+v", want, seen)
		}
	}
}

func TestEvaluate_DiskUsageSeverity(t *testing.T) {
	tests := []struct {
		name         string
		used         int
		wantIssue    bool
		wantSeverity string
	}{
		{name: "below threshold", used: 70, wantIssue: false},
		{name: "at threshold", used: 80, wantIssue: false},
		{name: "just above", used: 82, wantIssue: true, wantSeverity: "low"},
		{name: "well above", used: 90, wantIssue: true, wantSeverity: "medium"},
		{name: "nearly full", used: 99, wantIssue: true, wantSeverity: "high"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Status.DiskThreshold = 80
			summary := &types.SystemSummary{Volumes: []types.VolumeUsage{{Label: "sda3", UsedGB: tt.used, TotalGB: 100}}}

			issues := Evaluate(summary, cfg)
			if !tt.wantIssue {
				if len(issues) != 0 {
					t.Fatalf("expected no issues, got %+v", issues)
				}
				return
			}
			if len(issues) != 1 || issues[0].RuleID != "DISK_USAGE_HIGH" {
				t.Fatalf("expected one DISK_USAGE_HIGH, got %+v", issues)
			}
			if issues[0].Severity != tt.wantSeverity {
				t.Fatalf("expected severity %s, got %s", tt.wantSeverity, issues[0].Severity)
			}
		})
	}
}

func TestEvaluate_ThresholdDisabled(t *testing.T) {
	cfg := config.Default()
	cfg.Status.DiskThreshold = 0
	summary := &types.SystemSummary{Volumes: []types.VolumeUsage{{Label: "sda3", UsedGB: 100, TotalGB: 100}}}
	if issues := Evaluate(summary, cfg); len(issues) != 0 {
		t.Fatalf("expected no issues, got %+v", issues)
	}
}

func TestEvaluate_DeterministicIssueOrdering(t *testing.T) {
	cfg := config.Default()
	cfg.Status.DiskThreshold = 1

	summary := &types.SystemSummary{
		Volumes: []types.VolumeUsage{
			{Label: "sdc1"},
			{Label: "sdb1", UsedGB: 99, TotalGB: 100},
			{Label: "sda3"},
		},
	}

	issues := Evaluate(summary, cfg)
	if len(issues) != 3 {
		t.Fatalf("expected 3 issues, got %d", len(issues))
	}
	if issues[0].RuleID != "DISK_USAGE_HIGH" {
		t.Fatalf("expected high severity first, got %+v", issues[0])
	}
	if issues[1].Subject != "device=sda3" || issues[2].Subject != "device=sdc1" {
		t.Fatalf("expected subjects ordered, got %s then %s", issues[1].Subject, issues[2].Subject)
	}
}

func TestEvaluate_SubGigabyteVolume(t *testing.T) {
	volumes := collector.ParseDiskUsage("/dev/sda1  511M  12M  499M   3% /boot", []string{"sda1"})
	summary := &types.SystemSummary{Volumes: volumes}

	issues := Evaluate(summary, config.Default())
	if len(issues) != 1 || issues[0].RuleID != "VOLUME_NOT_FOUND" {
		t.Fatalf("expected one VOLUME_NOT_FOUND issue, got %+v", issues)
	}
	if !strings.Contains(issues[0].Description, "No gigabyte sizes found for device sda1") {
		t.Errorf("unexpected description %q", issues[0].Description)
	}
	if strings.Contains(issues[0].Description, "matched") {
		t.Errorf("description must not claim no line matched: %q", issues[0].Description)
	}
}

func TestEvaluate_NilSummary(t *testing.T) {
	if issues := Evaluate(nil, config.Default()); issues == nil || len(issues) != 0 {
		t.Fatalf("expected empty non-nil issues, got %#v", issues)
	}
}
