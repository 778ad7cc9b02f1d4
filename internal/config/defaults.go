package config

// Default returns the stock session: three monitors with the same bar, eight
// groups on the home row, MonadTall/Max/Floating.
func Default() *Config {
	screens := make([]ScreenConfig, 0, 3)
	for _, s := range []struct {
		name     string
		spacerPx int
	}{
		{"right", 610},
		{"middle", 630},
		{"left", 630},
	} {
		screens = append(screens, ScreenConfig{
			Name: s.name,
			Bar:  defaultBar(s.spacerPx),
		})
	}

	return &Config{
		Status: StatusConfig{
			Devices:       []string{"sda3", "sdb1", "sdc1"},
			DiskCommand:   []string{"df", "-h"},
			KernelCommand: []string{"uname", "-smr"},
			DiskThreshold: 90,
		},
		Theme: Theme{
			Background: "192430",
			Foreground: "ffffff",
			Accent:     "ff7400",
			Alert:      "d75f5f",
			Inactive:   "ffffff",
		},
		WidgetDefaults: WidgetDefaults{
			Font:     "sans",
			FontSize: 13,
			Padding:  3,
		},
		Screens: screens,
		Keys: KeysConfig{
			Mod:          "mod4",
			Terminal:     "alacritty",
			GroupLetters: "asdfuiop",
			Bindings:     defaultBindings(),
		},
		Groups: []string{"WEB", "WRITE", "DEV", "FILE", "DISC", "MATH", "DESK", "MEDI"},
		Layouts: []LayoutConfig{
			{Kind: "monad_tall", BorderFocus: "ffffff", BorderWidth: 0},
			{Kind: "max"},
			{Kind: "floating"},
		},
		FloatingRules: []MatchConfig{
			{WMClass: "confirmreset"}, // gitk
			{WMClass: "makebranch"},   // gitk
			{WMClass: "maketag"},      // gitk
			{WMClass: "ssh-askpass"},
			{Title: "branchdialog"}, // gitk
			{Title: "pinentry"},     // GPG key password entry
		},
		Mouse: []MouseConfig{
			{Kind: "drag", Mods: []string{"mod"}, Button: "Button1", Action: "window.set_position_floating", Start: "window.get_position"},
			{Kind: "drag", Mods: []string{"mod"}, Button: "Button3", Action: "window.set_size_floating", Start: "window.get_size"},
			{Kind: "click", Mods: []string{"mod"}, Button: "Button2", Action: "window.bring_to_front"},
		},
		Behavior: Behavior{
			FollowMouseFocus:        true,
			BringFrontClick:         false,
			CursorWarp:              false,
			AutoFullscreen:          true,
			FocusOnWindowActivation: "smart",
			WMName:                  "LG3D",
		},
	}
}

func defaultBar(spacerPx int) BarConfig {
	const bg = "192430"
	sep := func(w int) WidgetConfig {
		return WidgetConfig{Kind: WidgetSep, LineWidth: w, Background: bg, Foreground: bg}
	}
	return BarConfig{
		Position:   "top",
		Height:     24,
		Opacity:    0.65,
		Background: bg,
		Widgets: []WidgetConfig{
			{Kind: WidgetGroupBox},
			{Kind: WidgetPrompt},
			{Kind: WidgetCurrentLayout},
			sep(spacerPx),
			sep(20),
			sep(15),
			sep(20),
			{Kind: WidgetChord},
			{Kind: WidgetSystray},
			sep(4),
			{Kind: WidgetCapsNumLock, Background: bg},
			{Kind: WidgetClock, Format: "[ %Y-%m-%d %a %I:%M %p ]"},
			sep(10),
			{Kind: WidgetKernel, Foreground: "4e92d0"},
			{Kind: WidgetText, Text: "|   SSD: ", Foreground: "4e92d0"},
			{Kind: WidgetDisk, Foreground: "4e92d0"},
			{Kind: WidgetHDDBusyGraph, Foreground: "4e92d0"},
			{Kind: WidgetMemory, Format: "[{}]", Foreground: "c55050"},
			{Kind: WidgetCPU, Format: "[{}]", Foreground: "ccbb5a"},
		},
	}
}

func defaultBindings() []KeyConfig {
	mod := []string{"mod"}
	shift := []string{"mod", "shift"}
	ctrl := []string{"mod", "control"}
	return []KeyConfig{
		// Switch between windows
		{Mods: mod, Key: "h", Action: "layout.left", Desc: "Move focus to left"},
		{Mods: mod, Key: "l", Action: "layout.right", Desc: "Move focus to right"},
		{Mods: mod, Key: "j", Action: "layout.down", Desc: "Move focus down"},
		{Mods: mod, Key: "k", Action: "layout.up", Desc: "Move focus up"},
		{Mods: mod, Key: "space", Action: "layout.next", Desc: "Move window focus to other window"},

		{Mods: shift, Key: "h", Action: "layout.shuffle_left", Desc: "Move window to the left"},
		{Mods: shift, Key: "l", Action: "layout.shuffle_right", Desc: "Move window to the right"},
		{Mods: shift, Key: "j", Action: "layout.shuffle_down", Desc: "Move window down"},
		{Mods: shift, Key: "k", Action: "layout.shuffle_up", Desc: "Move window up"},

		{Mods: ctrl, Key: "h", Action: "layout.grow_left", Desc: "Grow window to the left"},
		{Mods: ctrl, Key: "l", Action: "layout.grow_right", Desc: "Grow window to the right"},
		{Mods: ctrl, Key: "j", Action: "layout.grow_down", Desc: "Grow window down"},
		{Mods: ctrl, Key: "k", Action: "layout.grow_up", Desc: "Grow window up"},
		{Mods: mod, Key: "n", Action: "layout.normalize", Desc: "Reset all window sizes"},

		{Mods: shift, Key: "Return", Action: "layout.toggle_split", Desc: "Toggle between split and unsplit sides of stack"},
		{Mods: mod, Key: "Return", Action: "spawn", Desc: "Launch terminal"},

		{Mods: mod, Key: "Tab", Action: "next_layout", Desc: "Toggle between layouts"},
		{Mods: mod, Key: "w", Action: "window.kill", Desc: "Kill focused window"},

		{Mods: ctrl, Key: "r", Action: "restart", Desc: "Restart the window manager"},
		{Mods: ctrl, Key: "q", Action: "shutdown", Desc: "Shutdown the window manager"},
		{Mods: mod, Key: "r", Action: "spawncmd", Desc: "Spawn a command using a prompt widget"},
	}
}
