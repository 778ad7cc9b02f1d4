package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level configuration structure.
type Config struct {
	Status         StatusConfig   `yaml:"status"`
	Theme          Theme          `yaml:"theme"`
	WidgetDefaults WidgetDefaults `yaml:"widget_defaults"`
	Screens        []ScreenConfig `yaml:"screens"`
	Keys           KeysConfig     `yaml:"keys"`
	Groups         []string       `yaml:"groups"`
	Layouts        []LayoutConfig `yaml:"layouts"`
	FloatingRules  []MatchConfig  `yaml:"floating_rules"`
	Mouse          []MouseConfig  `yaml:"mouse"`
	Behavior       Behavior       `yaml:"behavior"`
}

// StatusConfig holds configuration for the status collectors.
type StatusConfig struct {
	Devices       []string `yaml:"devices"`
	DiskCommand   []string `yaml:"disk_command"`
	KernelCommand []string `yaml:"kernel_command"`
	DiskThreshold int      `yaml:"disk_threshold"` // percentage (0-100), 0 disables
}

// Theme holds the named colors used by the bar.
type Theme struct {
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	Accent     string `yaml:"accent"`
	Alert      string `yaml:"alert"`
	Inactive   string `yaml:"inactive"`
}

// WidgetDefaults are applied to every widget that does not override them.
type WidgetDefaults struct {
	Font     string `yaml:"font"`
	FontSize int    `yaml:"font_size"`
	Padding  int    `yaml:"padding"`
}

// ScreenConfig is one monitor and its bar.
type ScreenConfig struct {
	Name string    `yaml:"name"`
	Bar  BarConfig `yaml:"bar"`
}

// BarConfig describes a single bar.
type BarConfig struct {
	Position   string         `yaml:"position"`
	Height     int            `yaml:"height"`
	Opacity    float64        `yaml:"opacity"`
	Background string         `yaml:"background"`
	Widgets    []WidgetConfig `yaml:"widgets"`
}

// WidgetConfig describes one bar element. Which fields apply depends on Kind.
// A disk widget without a Device stands for every entry of status.devices.
type WidgetConfig struct {
	Kind       string `yaml:"kind"`
	Text       string `yaml:"text,omitempty"`
	Format     string `yaml:"format,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
	LineWidth  int    `yaml:"line_width,omitempty"`
	Device     string `yaml:"device,omitempty"`
}

// Widget kinds.
const (
	WidgetGroupBox      = "group_box"
	WidgetPrompt        = "prompt"
	WidgetCurrentLayout = "current_layout"
	WidgetSep           = "sep"
	WidgetChord         = "chord"
	WidgetSystray       = "systray"
	WidgetCapsNumLock   = "caps_num_lock"
	WidgetClock         = "clock"
	WidgetText          = "text"
	WidgetHDDBusyGraph  = "hdd_busy_graph"
	WidgetMemory        = "memory"
	WidgetCPU           = "cpu"
	WidgetDisk          = "disk"
	WidgetKernel        = "kernel"
)

var validWidgetKinds = map[string]bool{
	WidgetGroupBox:      true,
	WidgetPrompt:        true,
	WidgetCurrentLayout: true,
	WidgetSep:           true,
	WidgetChord:         true,
	WidgetSystray:       true,
	WidgetCapsNumLock:   true,
	WidgetClock:         true,
	WidgetText:          true,
	WidgetHDDBusyGraph:  true,
	WidgetMemory:        true,
	WidgetCPU:           true,
	WidgetDisk:          true,
	WidgetKernel:        true,
}

// KeysConfig holds the modifier, terminal and static key bindings.
type KeysConfig struct {
	Mod          string      `yaml:"mod"`
	Terminal     string      `yaml:"terminal"`
	GroupLetters string      `yaml:"group_letters"`
	Bindings     []KeyConfig `yaml:"bindings"`
}

// KeyConfig is one key binding. The modifier "mod" stands for KeysConfig.Mod.
type KeyConfig struct {
	Mods   []string `yaml:"mods"`
	Key    string   `yaml:"key"`
	Action string   `yaml:"action"`
	Args   []string `yaml:"args,omitempty"`
	Desc   string   `yaml:"desc"`
}

var validModifiers = map[string]bool{
	"mod":     true,
	"mod1":    true,
	"mod4":    true,
	"shift":   true,
	"control": true,
	"lock":    true,
}

// LayoutConfig is one entry of the layout cycle.
type LayoutConfig struct {
	Kind        string `yaml:"kind"`
	BorderFocus string `yaml:"border_focus,omitempty"`
	BorderWidth int    `yaml:"border_width"`
}

var validLayouts = map[string]bool{
	"monad_tall": true,
	"max":        true,
	"floating":   true,
	"columns":    true,
}

// MatchConfig selects windows that always float.
type MatchConfig struct {
	WMClass string `yaml:"wm_class,omitempty"`
	Title   string `yaml:"title,omitempty"`
}

// MouseConfig is a drag or click binding.
type MouseConfig struct {
	Kind   string   `yaml:"kind"`
	Mods   []string `yaml:"mods"`
	Button string   `yaml:"button"`
	Action string   `yaml:"action"`
	Start  string   `yaml:"start,omitempty"`
}

// Behavior holds the window manager's global switches.
type Behavior struct {
	FollowMouseFocus        bool   `yaml:"follow_mouse_focus"`
	BringFrontClick         bool   `yaml:"bring_front_click"`
	CursorWarp              bool   `yaml:"cursor_warp"`
	AutoFullscreen          bool   `yaml:"auto_fullscreen"`
	FocusOnWindowActivation string `yaml:"focus_on_window_activation"`
	WMName                  string `yaml:"wm_name"`
}

var colorPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

// Load reads and parses the config file. Fields the file does not set keep
// their Default values.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default.
func LoadOrDefault(filename string) (*Config, error) {
	cfg, err := Load(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	if err := c.Status.Validate(); err != nil {
		return err
	}
	if err := c.Theme.Validate(); err != nil {
		return err
	}
	if err := c.WidgetDefaults.Validate(); err != nil {
		return err
	}
	if len(c.Screens) == 0 {
		return fmt.Errorf("at least one screen is required")
	}
	for i := range c.Screens {
		if err := c.Screens[i].Validate(c.Status.Devices); err != nil {
			return fmt.Errorf("screen %d: %w", i, err)
		}
	}
	if err := c.Keys.Validate(); err != nil {
		return err
	}
	if err := c.validateGroups(); err != nil {
		return err
	}
	if len(c.Layouts) == 0 {
		return fmt.Errorf("at least one layout is required")
	}
	for i := range c.Layouts {
		if err := c.Layouts[i].Validate(); err != nil {
			return fmt.Errorf("layout %d: %w", i, err)
		}
	}
	for i := range c.FloatingRules {
		if err := c.FloatingRules[i].Validate(); err != nil {
			return fmt.Errorf("floating rule %d: %w", i, err)
		}
	}
	for i := range c.Mouse {
		if err := c.Mouse[i].Validate(); err != nil {
			return fmt.Errorf("mouse binding %d: %w", i, err)
		}
	}
	return c.Behavior.Validate()
}

// Validate checks the StatusConfig for correctness.
func (s *StatusConfig) Validate() error {
	if len(s.Devices) == 0 {
		return fmt.Errorf("status.devices cannot be empty")
	}
	for _, d := range s.Devices {
		if strings.TrimSpace(d) == "" {
			return fmt.Errorf("status.devices cannot contain an empty label")
		}
	}
	if len(s.DiskCommand) == 0 || strings.TrimSpace(s.DiskCommand[0]) == "" {
		return fmt.Errorf("status.disk_command cannot be empty")
	}
	if len(s.KernelCommand) == 0 || strings.TrimSpace(s.KernelCommand[0]) == "" {
		return fmt.Errorf("status.kernel_command cannot be empty")
	}
	if s.DiskThreshold < 0 || s.DiskThreshold > 100 {
		return fmt.Errorf("status.disk_threshold must be between 0 and 100, got %d", s.DiskThreshold)
	}
	return nil
}

// Validate checks every theme color.
func (t *Theme) Validate() error {
	for name, c := range map[string]string{
		"background": t.Background,
		"foreground": t.Foreground,
		"accent":     t.Accent,
		"alert":      t.Alert,
		"inactive":   t.Inactive,
	} {
		if !colorPattern.MatchString(c) {
			return fmt.Errorf("theme.%s: invalid color '%s'", name, c)
		}
	}
	return nil
}

// Validate checks the WidgetDefaults for correctness.
func (w *WidgetDefaults) Validate() error {
	if w.FontSize <= 0 {
		return fmt.Errorf("widget_defaults.font_size must be greater than 0, got %d", w.FontSize)
	}
	if w.Padding < 0 {
		return fmt.Errorf("widget_defaults.padding cannot be negative, got %d", w.Padding)
	}
	return nil
}

// Validate checks the screen's bar. devices are the labels a disk widget may name.
func (s *ScreenConfig) Validate(devices []string) error {
	b := &s.Bar
	if b.Position != "top" && b.Position != "bottom" {
		return fmt.Errorf("invalid bar position '%s', must be one of: top, bottom", b.Position)
	}
	if b.Height <= 0 {
		return fmt.Errorf("bar height must be greater than 0, got %d", b.Height)
	}
	if b.Opacity < 0 || b.Opacity > 1 {
		return fmt.Errorf("bar opacity must be between 0 and 1, got %g", b.Opacity)
	}
	if b.Background != "" && !colorPattern.MatchString(b.Background) {
		return fmt.Errorf("bar background: invalid color '%s'", b.Background)
	}
	known := make(map[string]bool, len(devices))
	for _, d := range devices {
		known[d] = true
	}
	for i := range b.Widgets {
		if err := b.Widgets[i].Validate(known); err != nil {
			return fmt.Errorf("widget %d: %w", i, err)
		}
	}
	return nil
}

// Validate checks the widget against its kind.
func (w *WidgetConfig) Validate(devices map[string]bool) error {
	if !validWidgetKinds[w.Kind] {
		return fmt.Errorf("unknown widget kind '%s'", w.Kind)
	}
	for _, c := range []string{w.Foreground, w.Background} {
		if c != "" && !colorPattern.MatchString(c) {
			return fmt.Errorf("%s: invalid color '%s'", w.Kind, c)
		}
	}
	switch w.Kind {
	case WidgetSep:
		if w.LineWidth < 0 {
			return fmt.Errorf("sep line_width cannot be negative, got %d", w.LineWidth)
		}
	case WidgetDisk:
		if w.Device != "" && !devices[w.Device] {
			return fmt.Errorf("disk widget device '%s' is not listed in status.devices", w.Device)
		}
	case WidgetMemory, WidgetCPU:
		if w.Format != "" && !strings.Contains(w.Format, "{}") {
			return fmt.Errorf("%s format '%s' must contain {}", w.Kind, w.Format)
		}
	}
	return nil
}

// Validate checks the KeysConfig for correctness.
func (k *KeysConfig) Validate() error {
	if strings.TrimSpace(k.Mod) == "" {
		return fmt.Errorf("keys.mod cannot be empty")
	}
	if strings.TrimSpace(k.Terminal) == "" {
		return fmt.Errorf("keys.terminal cannot be empty")
	}
	for i, b := range k.Bindings {
		if strings.TrimSpace(b.Key) == "" {
			return fmt.Errorf("key binding %d: key cannot be empty", i)
		}
		if strings.TrimSpace(b.Action) == "" {
			return fmt.Errorf("key binding %d (%s): action cannot be empty", i, b.Key)
		}
		for _, m := range b.Mods {
			if !validModifiers[strings.ToLower(m)] {
				return fmt.Errorf("key binding %d (%s): unknown modifier '%s'", i, b.Key, m)
			}
		}
	}
	return nil
}

func (c *Config) validateGroups() error {
	if len(c.Groups) == 0 {
		return fmt.Errorf("at least one group is required")
	}
	seen := make(map[string]bool, len(c.Groups))
	for _, g := range c.Groups {
		if strings.TrimSpace(g) == "" {
			return fmt.Errorf("group name cannot be empty")
		}
		if seen[g] {
			return fmt.Errorf("duplicate group '%s'", g)
		}
		seen[g] = true
	}
	if n := len([]rune(c.Keys.GroupLetters)); n < len(c.Groups) {
		return fmt.Errorf("keys.group_letters has %d letters for %d groups", n, len(c.Groups))
	}
	return nil
}

// Validate checks the LayoutConfig for correctness.
func (l *LayoutConfig) Validate() error {
	if !validLayouts[l.Kind] {
		return fmt.Errorf("invalid layout '%s', must be one of: monad_tall, max, floating, columns", l.Kind)
	}
	if l.BorderFocus != "" && !colorPattern.MatchString(l.BorderFocus) {
		return fmt.Errorf("%s border_focus: invalid color '%s'", l.Kind, l.BorderFocus)
	}
	if l.BorderWidth < 0 {
		return fmt.Errorf("%s border_width cannot be negative, got %d", l.Kind, l.BorderWidth)
	}
	return nil
}

// Validate checks that the rule matches on something.
func (m *MatchConfig) Validate() error {
	if strings.TrimSpace(m.WMClass) == "" && strings.TrimSpace(m.Title) == "" {
		return fmt.Errorf("one of wm_class or title is required")
	}
	return nil
}

// Validate checks the MouseConfig for correctness.
func (m *MouseConfig) Validate() error {
	if m.Kind != "drag" && m.Kind != "click" {
		return fmt.Errorf("invalid mouse binding kind '%s', must be one of: drag, click", m.Kind)
	}
	if !strings.HasPrefix(m.Button, "Button") {
		return fmt.Errorf("invalid button '%s'", m.Button)
	}
	if strings.TrimSpace(m.Action) == "" {
		return fmt.Errorf("%s %s: action cannot be empty", m.Kind, m.Button)
	}
	for _, mod := range m.Mods {
		if !validModifiers[strings.ToLower(mod)] {
			return fmt.Errorf("%s %s: unknown modifier '%s'", m.Kind, m.Button, mod)
		}
	}
	return nil
}

// Validate checks the Behavior for correctness.
func (b *Behavior) Validate() error {
	validFocus := map[string]bool{
		"smart":  true,
		"focus":  true,
		"urgent": true,
		"never":  true,
	}
	if !validFocus[b.FocusOnWindowActivation] {
		return fmt.Errorf("invalid focus_on_window_activation '%s', must be one of: smart, focus, urgent, never", b.FocusOnWindowActivation)
	}
	return nil
}
