package bar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/example/wmstatus/internal/collector"
	"github.com/example/wmstatus/internal/config"
	"github.com/example/wmstatus/internal/rules"
	"github.com/example/wmstatus/internal/types"
)

const defaultWrap = "[{}]"

// Build turns the widgets of one screen into display segments, in order.
// A disk widget without a device yields one segment per configured device.
// summary and host may be nil; the widgets that need them render empty.
func Build(screen config.ScreenConfig, cfg *config.Config, summary *types.SystemSummary, host *types.HostStats, now time.Time) []types.Segment {
	segments := make([]types.Segment, 0, len(screen.Bar.Widgets))
	for _, w := range screen.Bar.Widgets {
		seg := types.Segment{
			Widget:     w.Kind,
			Foreground: pick(w.Foreground, cfg.Theme.Foreground),
			Background: pick(w.Background, screen.Bar.Background, cfg.Theme.Background),
		}

		switch w.Kind {
		case config.WidgetText:
			seg.Text = w.Text
		case config.WidgetSep:
			seg.Width = w.LineWidth
		case config.WidgetKernel:
			if summary != nil {
				seg.Text = summary.Kernel
			}
		case config.WidgetDisk:
			devices := cfg.Status.Devices
			if w.Device != "" {
				devices = []string{w.Device}
			}
			for _, d := range devices {
				segments = append(segments, diskSegment(seg, d, cfg, summary))
			}
			continue
		case config.WidgetMemory:
			if host != nil {
				seg.Text = wrap(w.Format, fmt.Sprintf("%dM/%dM", host.MemUsedMB, host.MemTotalMB))
			}
		case config.WidgetCPU:
			if host != nil {
				seg.Text = wrap(w.Format, fmt.Sprintf("CPU %.1f%%", host.CPUPercent))
			}
		case config.WidgetClock:
			seg.Text = Strftime(w.Format, now)
		default:
			seg.HostRendered = true
		}
		segments = append(segments, seg)
	}
	return segments
}

func diskSegment(seg types.Segment, device string, cfg *config.Config, summary *types.SystemSummary) types.Segment {
	v, _ := summary.Volume(device)
	v.Label = device
	seg.Text = device + " " + collector.FormatVolume(v)
	if rules.OverThreshold(v, cfg.Status.DiskThreshold) {
		seg.Foreground = cfg.Theme.Alert
	}
	return seg
}

// Render joins the text of the segments into one terminal line. Separators
// become spaces, one per 10px of width; host-rendered widgets are skipped.
func Render(segments []types.Segment, colorize bool) string {
	var sb strings.Builder
	for _, s := range segments {
		if s.HostRendered {
			continue
		}
		if s.Widget == config.WidgetSep {
			sb.WriteString(strings.Repeat(" ", s.Width/10))
			continue
		}
		if s.Text == "" {
			continue
		}
		if sb.Len() > 0 && !strings.HasSuffix(sb.String(), " ") {
			sb.WriteByte(' ')
		}
		if colorize {
			sb.WriteString(paint(s.Foreground, s.Text))
		} else {
			sb.WriteString(s.Text)
		}
	}
	return strings.TrimSpace(sb.String())
}

func paint(hex, text string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return text
	}
	return color.RGB(r, g, b).Sprint(text)
}

func parseHex(hex string) (r, g, b int, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}

func wrap(format, text string) string {
	if format == "" {
		format = defaultWrap
	}
	return strings.Replace(format, "{}", text, 1)
}

func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
