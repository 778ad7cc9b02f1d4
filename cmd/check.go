package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/example/wmstatus/internal/config"
	"github.com/example/wmstatus/internal/keymap"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the config file",
	Long: `Load and validate the config file, expand the key map, and print the
layouts, floating rules, mouse bindings and behavior settings in effect.
--dump prints the resolved config as YAML instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dump, _ := cmd.Flags().GetBool("dump")
		return runCheck(os.Stdout, dump)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Bool("dump", false, "Print the resolved config as YAML")
}

func runCheck(w io.Writer, dump bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return ExitError{Code: 2, Err: fmt.Errorf("%s %w", red("config invalid:"), err)}
	}
	if _, err := keymap.Build(cfg); err != nil {
		return ExitError{Code: 2, Err: fmt.Errorf("%s %w", red("key map invalid:"), err)}
	}

	if dump {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	fmt.Fprintf(w, "%s %s (%d screens, %d groups, %d devices)\n",
		green("config OK"), configFile, len(cfg.Screens), len(cfg.Groups), len(cfg.Status.Devices))
	describeConfig(w, cfg)
	return nil
}

// describeConfig prints the parts of the session that no other command shows.
func describeConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintf(w, "\n%s\n", bold("Layouts"))
	for _, l := range cfg.Layouts {
		line := "  " + l.Kind
		if l.BorderFocus != "" {
			line += fmt.Sprintf(" (border %dpx #%s)", l.BorderWidth, strings.TrimPrefix(l.BorderFocus, "#"))
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintf(w, "\n%s\n", bold("Floating rules"))
	if len(cfg.FloatingRules) == 0 {
		fmt.Fprintln(w, "  none")
	}
	for _, r := range cfg.FloatingRules {
		var parts []string
		if r.WMClass != "" {
			parts = append(parts, "wm_class="+r.WMClass)
		}
		if r.Title != "" {
			parts = append(parts, "title="+r.Title)
		}
		fmt.Fprintf(w, "  %s\n", strings.Join(parts, " "))
	}

	fmt.Fprintf(w, "\n%s\n", bold("Mouse"))
	for _, m := range cfg.Mouse {
		chord := strings.Join(append(append([]string{}, m.Mods...), m.Button), "+")
		line := fmt.Sprintf("  %-6s %-16s %s", m.Kind, chord, m.Action)
		if m.Start != "" {
			line += " (start " + m.Start + ")"
		}
		fmt.Fprintln(w, line)
	}

	b := cfg.Behavior
	fmt.Fprintf(w, "\n%s\n", bold("Behavior"))
	fmt.Fprintf(w, "  wm_name                     %s\n", b.WMName)
	fmt.Fprintf(w, "  focus_on_window_activation  %s\n", b.FocusOnWindowActivation)
	fmt.Fprintf(w, "  follow_mouse_focus          %t\n", b.FollowMouseFocus)
	fmt.Fprintf(w, "  bring_front_click           %t\n", b.BringFrontClick)
	fmt.Fprintf(w, "  cursor_warp                 %t\n", b.CursorWarp)
	fmt.Fprintf(w, "  auto_fullscreen             %t\n", b.AutoFullscreen)
}
