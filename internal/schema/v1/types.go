package v1

import "time"

type Report struct {
	SchemaVersion string      `json:"schemaVersion"`
	Tool          Tool        `json:"tool"`
	Run           Run         `json:"run"`
	Target        Target      `json:"target"`
	Collectors    []Collector `json:"collectors"`
	Volumes       []Volume    `json:"volumes"`
	Screens       []Screen    `json:"screens"`
	Findings      []Finding   `json:"findings"`
	Errors        []string    `json:"errors"`
}

type Tool struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildTime string `json:"buildTime"`
}

type Run struct {
	RunID      string    `json:"runId"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	DurationMs int64     `json:"durationMs"`
	ConfigFile string    `json:"configFile"`
}

type Target struct {
	Host TargetHost `json:"host"`
}

type TargetHost struct {
	Hostname      string  `json:"hostname"`
	OS            string  `json:"os"`
	Arch          string  `json:"arch"`
	Kernel        string  `json:"kernel"`
	UptimeSeconds uint64  `json:"uptimeSeconds"`
	MemUsedMB     uint64  `json:"memUsedMb"`
	MemTotalMB    uint64  `json:"memTotalMb"`
	CPUPercent    float64 `json:"cpuPercent"`
}

type Collector struct {
	Name       string   `json:"name"`
	Status     string   `json:"status"` // ok | skipped | error
	DurationMs int64    `json:"durationMs"`
	Errors     []string `json:"errors"`
}

type Volume struct {
	Device      string  `json:"device"`
	UsedGB      int     `json:"usedGb"`
	TotalGB     int     `json:"totalGb"`
	UsedPercent float64 `json:"usedPercent"`
	Display     string  `json:"display"`
	Found       bool    `json:"found"` // gigabyte sizes were read for the device
}

type Screen struct {
	Name     string    `json:"name"`
	Position string    `json:"position"`
	Line     string    `json:"line"`
	Segments []Segment `json:"segments"`
}

type Segment struct {
	Widget       string `json:"widget"`
	Text         string `json:"text"`
	Foreground   string `json:"foreground,omitempty"`
	Background   string `json:"background,omitempty"`
	Width        int    `json:"width,omitempty"`
	HostRendered bool   `json:"hostRendered,omitempty"`
}

type Finding struct {
	ID          string     `json:"id"`
	Fingerprint string     `json:"fingerprint"`
	Severity    string     `json:"severity"` // critical | warning | info
	Category    string     `json:"category"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	Evidence    []Evidence `json:"evidence"`
	Steps       []string   `json:"steps"`
}

type Evidence struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}
