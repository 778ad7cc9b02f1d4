package v1

import (
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/example/wmstatus/internal/bar"
	"github.com/example/wmstatus/internal/collector"
	"github.com/example/wmstatus/internal/config"
	"github.com/example/wmstatus/internal/rules"
	"github.com/example/wmstatus/internal/types"
)

const SchemaVersion = "1.0"

// BuildInput is what one status run produced.
type BuildInput struct {
	Snapshot   *collector.Snapshot
	Config     *config.Config
	ConfigFile string
	StartedAt  time.Time
	FinishedAt time.Time
	Version    string
	GitCommit  string
	BuildTime  string
}

// Build assembles the versioned report. Slices are never nil so the JSON
// always carries every top-level key.
func Build(in BuildInput) Report {
	snap := in.Snapshot
	if snap == nil {
		snap = &collector.Snapshot{}
	}
	summary := snap.Summary
	if summary == nil {
		summary = &types.SystemSummary{}
	}
	host := snap.Host
	if host == nil {
		host = &types.HostStats{}
	}

	collectors := make([]Collector, 0, len(snap.Collectors))
	for _, c := range snap.Collectors {
		errs := c.Errors
		if errs == nil {
			errs = []string{}
		}
		collectors = append(collectors, Collector{
			Name:       c.Name,
			Status:     c.Status,
			DurationMs: c.Duration.Milliseconds(),
			Errors:     errs,
		})
	}
	sort.Slice(collectors, func(i, j int) bool { return collectors[i].Name < collectors[j].Name })

	volumes := make([]Volume, 0, len(summary.Volumes))
	for _, v := range summary.Volumes {
		volumes = append(volumes, Volume{
			Device:      v.Label,
			UsedGB:      v.UsedGB,
			TotalGB:     v.TotalGB,
			UsedPercent: v.UsedPercent(),
			Display:     collector.FormatVolume(v),
			Found:       v.TotalGB > 0 || v.UsedGB > 0,
		})
	}

	screens := make([]Screen, 0, len(in.Config.Screens))
	for _, sc := range in.Config.Screens {
		segs := bar.Build(sc, in.Config, summary, host, in.FinishedAt)
		out := make([]Segment, 0, len(segs))
		for _, s := range segs {
			out = append(out, Segment(s))
		}
		screens = append(screens, Screen{
			Name:     sc.Name,
			Position: sc.Bar.Position,
			Line:     bar.Render(segs, false),
			Segments: out,
		})
	}

	issues := rules.Evaluate(summary, in.Config)
	findings := make([]Finding, 0, len(issues))
	for _, is := range issues {
		findings = append(findings, mapIssueToFinding(is))
	}

	errs := []string{}
	for _, c := range collectors {
		for _, e := range c.Errors {
			errs = append(errs, c.Name+": "+e)
		}
	}

	return Report{
		SchemaVersion: SchemaVersion,
		Tool: Tool{
			Name:      "wmstatus",
			Version:   in.Version,
			GitCommit: in.GitCommit,
			BuildTime: in.BuildTime,
		},
		Run: Run{
			RunID:      uuid.NewString(),
			StartedAt:  in.StartedAt.UTC(),
			FinishedAt: in.FinishedAt.UTC(),
			DurationMs: in.FinishedAt.Sub(in.StartedAt).Milliseconds(),
			ConfigFile: in.ConfigFile,
		},
		Target: Target{
			Host: TargetHost{
				Hostname:      host.Hostname,
				OS:            runtime.GOOS,
				Arch:          runtime.GOARCH,
				Kernel:        summary.Kernel,
				UptimeSeconds: host.UptimeSeconds,
				MemUsedMB:     host.MemUsedMB,
				MemTotalMB:    host.MemTotalMB,
				CPUPercent:    host.CPUPercent,
			},
		},
		Collectors: collectors,
		Volumes:    volumes,
		Screens:    screens,
		Findings:   findings,
		Errors:     errs,
	}
}

func mapIssueToFinding(is types.Issue) Finding {
	severity := "info"
	switch strings.ToLower(is.Severity) {
	case "high":
		severity = "critical"
	case "medium":
		severity = "warning"
	}

	title := is.RuleID
	switch is.RuleID {
	case "DISK_USAGE_HIGH":
		title = "Disk usage is above threshold"
	case "VOLUME_NOT_FOUND":
		title = "No disk usage for configured device"
	case "VOLUME_COLUMNS_SUSPECT":
		title = "Disk report columns look out of order"
	}

	evidence := make([]Evidence, 0, len(is.Facts))
	for k, v := range is.Facts {
		evidence = append(evidence, Evidence{Key: k, Value: v})
	}
	sort.Slice(evidence, func(i, j int) bool { return evidence[i].Key < evidence[j].Key })

	fp := is.RuleID
	if strings.TrimSpace(is.Subject) != "" {
		fp += ":" + is.Subject
	} else {
		fp += ":global"
	}

	steps := is.Solutions
	if steps == nil {
		steps = []string{}
	}

	return Finding{
		ID:          is.RuleID,
		Fingerprint: fp,
		Severity:    severity,
		Category:    is.Category,
		Title:       title,
		Summary:     is.Description,
		Evidence:    evidence,
		Steps:       steps,
	}
}
