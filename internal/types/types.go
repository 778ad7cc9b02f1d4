package types

// VolumeUsage is the used and total size of one storage volume, in whole
// gigabytes, as reported by the disk-usage command.
type VolumeUsage struct {
	Label   string `json:"label"`
	UsedGB  int    `json:"used_gb"`
	TotalGB int    `json:"total_gb"`
}

// UsedPercent returns used/total as a percentage, or 0 for an empty volume.
func (v VolumeUsage) UsedPercent() float64 {
	if v.TotalGB <= 0 {
		return 0
	}
	return float64(v.UsedGB) / float64(v.TotalGB) * 100
}

// SystemSummary holds everything the status bar shows that comes from
// external commands. It is built once and not modified afterwards.
type SystemSummary struct {
	Kernel  string        `json:"kernel"`
	Volumes []VolumeUsage `json:"volumes"` // in configured device order
}

// Volume returns the entry for label.
func (s *SystemSummary) Volume(label string) (VolumeUsage, bool) {
	if s == nil {
		return VolumeUsage{}, false
	}
	for _, v := range s.Volumes {
		if v.Label == label {
			return v, true
		}
	}
	return VolumeUsage{}, false
}

// HostStats holds memory, CPU and uptime numbers for the Memory and CPU widgets.
type HostStats struct {
	Hostname      string  `json:"hostname"`
	MemUsedMB     uint64  `json:"mem_used_mb"`
	MemTotalMB    uint64  `json:"mem_total_mb"`
	MemPercent    float64 `json:"mem_percent"`
	CPUPercent    float64 `json:"cpu_percent"`
	UptimeSeconds uint64  `json:"uptime_seconds"`
}

// Segment is one rendered bar element.
type Segment struct {
	Widget       string `json:"widget"`
	Text         string `json:"text"`
	Foreground   string `json:"foreground,omitempty"`
	Background   string `json:"background,omitempty"`
	Width        int    `json:"width,omitempty"`
	HostRendered bool   `json:"host_rendered,omitempty"` // drawn by the window manager itself
}

// Issue is a diagnostic produced by the rules package.
type Issue struct {
	RuleID      string                 `json:"rule_id"`
	Subject     string                 `json:"subject"`
	Severity    string                 `json:"severity"` // high | medium | low
	Category    string                 `json:"category"`
	Description string                 `json:"description"`
	Facts       map[string]interface{} `json:"facts"`
	Solutions   []string               `json:"solutions"`
}
