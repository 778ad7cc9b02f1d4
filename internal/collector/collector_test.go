package collector

import (
	"context"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	"github.com/example/wmstatus/internal/config"
	"github.com/example/wmstatus/internal/types"
)

// fakeRunner answers commands from a table keyed by the command name.
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeRunner) CombinedOutput(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	if err, ok := f.errs[name]; ok {
		return nil, err
	}
	return []byte(f.outputs[name]), nil
}

func readSample(t *testing.T) string {
	t.Helper()
	b, err := os.ReadFile("testdata/df_h.txt")
	if err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func statusConfig() config.StatusConfig {
	return config.StatusConfig{
		Devices:       []string{"sda3", "sdb1", "sdc1"},
		DiskCommand:   []string{"df", "-h"},
		KernelCommand: []string{"uname", "-smr"},
	}
}

func TestParseDiskUsage(t *testing.T) {
	tests := []struct {
		name   string
		output string
		labels []string
		want   []types.VolumeUsage
	}{
		{
			name:   "total then used",
			output: "/dev/sda3 100G 42G 58G 42% /",
			labels: []string{"sda3"},
			want:   []types.VolumeUsage{{Label: "sda3", UsedGB: 42, TotalGB: 100}},
		},
		{
			name:   "absent label",
			output: "/dev/sda3 100G 42G 58G 42% /",
			labels: []string{"nvme0n1p1"},
			want:   []types.VolumeUsage{{Label: "nvme0n1p1"}},
		},
		{
			name:   "empty output",
			output: "",
			labels: []string{"sda3"},
			want:   []types.VolumeUsage{{Label: "sda3"}},
		},
		{
			name:   "single size column",
			output: "/dev/sda3 100G 512M",
			labels: []string{"sda3"},
			want:   []types.VolumeUsage{{Label: "sda3", TotalGB: 100}},
		},
		{
			name:   "first matching line wins",
			output: "/dev/sda3 100G 42G\n/dev/sda3 200G 10G",
			labels: []string{"sda3"},
			want:   []types.VolumeUsage{{Label: "sda3", UsedGB: 42, TotalGB: 100}},
		},
		{
			name:   "no labels",
			output: "/dev/sda3 100G 42G",
			labels: nil,
			want:   []types.VolumeUsage{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDiskUsage(tt.output, tt.labels)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseDiskUsage() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseDiskUsage_CapturedSample(t *testing.T) {
	got := ParseDiskUsage(readSample(t), []string{"sda3", "sdb1", "sdc1"})
	want := []types.VolumeUsage{
		{Label: "sda3", UsedGB: 42, TotalGB: 100},
		{Label: "sdb1", UsedGB: 604, TotalGB: 916},
		{Label: "sdc1"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseDiskUsage() = %+v, want %+v", got, want)
	}

	var formatted []string
	for _, v := range got {
		formatted = append(formatted, FormatVolume(v))
	}
	if strings.Join(formatted, ",") != "42/100 G,604/916 G,0/0 G" {
		t.Fatalf("unexpected formatting: %v", formatted)
	}
}

func TestParseDiskUsage_FollowsLabelOrder(t *testing.T) {
	sample := readSample(t)
	got := ParseDiskUsage(sample, []string{"sdc1", "sdb1", "sda3"})
	for i, label := range []string{"sdc1", "sdb1", "sda3"} {
		if got[i].Label != label {
			t.Fatalf("position %d: expected %s, got %s", i, label, got[i].Label)
		}
	}
}

func TestFormatVolume(t *testing.T) {
	if got := FormatVolume(types.VolumeUsage{Label: "sda3", UsedGB: 42, TotalGB: 100}); got != "42/100 G" {
		t.Errorf("FormatVolume() = %q", got)
	}
	if got := FormatVolume(types.VolumeUsage{Label: "sdc1"}); got != "0/0 G" {
		t.Errorf("FormatVolume(zero) = %q", got)
	}
}

func TestParseKernelVersion(t *testing.T) {
	got, err := ParseKernelVersion("uname -smr", "Linux 6.1.0-amd64 x86_64\n")
	if err != nil {
		t.Fatalf("ParseKernelVersion() error = %v", err)
	}
	if got != "6.1.0-amd64" {
		t.Fatalf("expected 6.1.0-amd64, got %q", got)
	}
}

func TestParseKernelVersion_SingleToken(t *testing.T) {
	for _, out := range []string{"Linux", "", "   \n"} {
		_, err := ParseKernelVersion("uname -smr", out)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("output %q: expected *ParseError, got %v", out, err)
		}
	}
}

func TestCollectKernelVersion_CommandNotFound(t *testing.T) {
	r := &fakeRunner{errs: map[string]error{"uname": ErrCommandNotFound}}
	_, err := CollectKernelVersion(context.Background(), r, []string{"uname", "-smr"})
	if !errors.Is(err, ErrCommandNotFound) {
		t.Fatalf("expected ErrCommandNotFound, got %v", err)
	}
}

func TestCollectDiskUsage_CommandError(t *testing.T) {
	cmdErr := &CommandError{Name: "df", Args: []string{"-h"}, Output: "df: invalid option", Err: errors.New("exit status 1")}
	r := &fakeRunner{errs: map[string]error{"df": cmdErr}}
	_, err := CollectDiskUsage(context.Background(), r, []string{"df", "-h"}, []string{"sda3"})
	var ce *CommandError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CommandError, got %v", err)
	}
	if !strings.Contains(err.Error(), "df -h") {
		t.Fatalf("expected command line in error, got %q", err.Error())
	}
}

func TestCollectSystemSummary(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"uname": "Linux 6.1.0-amd64 x86_64\n",
		"df":    readSample(t),
	}}

	summary, err := CollectSystemSummary(context.Background(), r, statusConfig())
	if err != nil {
		t.Fatalf("CollectSystemSummary() error = %v", err)
	}
	if summary.Kernel != "6.1.0-amd64" {
		t.Errorf("expected kernel 6.1.0-amd64, got %q", summary.Kernel)
	}
	if v, ok := summary.Volume("sdb1"); !ok || v.UsedGB != 604 {
		t.Errorf("expected sdb1 used 604, got %+v", v)
	}
	if v, ok := summary.Volume("sdc1"); !ok || FormatVolume(v) != "0/0 G" {
		t.Errorf("expected sdc1 default, got %+v", v)
	}
	if want := []string{"uname -smr", "df -h"}; !reflect.DeepEqual(r.calls, want) {
		t.Errorf("expected calls %v, got %v", want, r.calls)
	}
}

func TestCollectSystemSummary_Idempotent(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{
		"uname": "Linux 6.1.0-amd64 x86_64",
		"df":    readSample(t),
	}}

	first, err := CollectSystemSummary(context.Background(), r, statusConfig())
	if err != nil {
		t.Fatal(err)
	}
	second, err := CollectSystemSummary(context.Background(), r, statusConfig())
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("summaries differ: %+v vs %+v", first, second)
	}
}

func TestCollectSystemSummary_KernelParseErrorIsFatal(t *testing.T) {
	r := &fakeRunner{outputs: map[string]string{"uname": "Linux", "df": readSample(t)}}
	_, err := CollectSystemSummary(context.Background(), r, statusConfig())
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

type recordingLogger struct{ lines []string }

func (l *recordingLogger) Printf(format string, args ...any) {
	l.lines = append(l.lines, format)
}

func TestCollect_HostErrorsAreNotFatal(t *testing.T) {
	orig := collectHost
	defer func() { collectHost = orig }()
	collectHost = func(context.Context) (*types.HostStats, []error) {
		return &types.HostStats{Hostname: "box"}, []error{errors.New("cpu: unsupported")}
	}

	r := &fakeRunner{outputs: map[string]string{
		"uname": "Linux 6.1.0-amd64 x86_64",
		"df":    readSample(t),
	}}
	log := &recordingLogger{}
	ctx := WithLogger(context.Background(), log)

	snap, err := Collect(ctx, r, config.Default())
	if err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	if snap.Host.Hostname != "box" {
		t.Errorf("expected host stats to be kept, got %+v", snap.Host)
	}
	if len(snap.Collectors) != 3 {
		t.Fatalf("expected 3 collector statuses, got %d", len(snap.Collectors))
	}
	host := snap.Collectors[2]
	if host.Name != NameHost || host.Status != "error" || len(host.Errors) != 1 {
		t.Errorf("unexpected host status %+v", host)
	}
	// kernel and disk log, the failed host probe does not
	if len(log.lines) != 2 {
		t.Errorf("expected 2 log lines, got %v", log.lines)
	}
}
