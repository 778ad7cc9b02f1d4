package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/wmstatus/internal/bar"
	"github.com/example/wmstatus/internal/collector"
	v1 "github.com/example/wmstatus/internal/schema/v1"
)

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Collect disk usage and kernel version and print the status bar",
	Long: `Run the disk-usage and kernel commands once, then print the bar line
for one screen, or the full versioned report with --json.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		asJSON, _ := cmd.Flags().GetBool("json")
		screen, _ := cmd.Flags().GetInt("screen")
		noColor, _ := cmd.Flags().GetBool("no-color")
		return runStatus(output, asJSON, screen, !noColor)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	statusCmd.Flags().Bool("json", false, "Print the v1 JSON report instead of the bar line")
	statusCmd.Flags().IntP("screen", "s", 0, "Screen whose bar to print")
	statusCmd.Flags().Bool("no-color", false, "Do not color the bar line")
}

func runStatus(output string, asJSON bool, screen int, colorize bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if screen < 0 || screen >= len(cfg.Screens) {
		return ExitError{Code: 2, Err: fmt.Errorf("screen %d out of range, config has %d", screen, len(cfg.Screens))}
	}

	startedAt := time.Now()
	snap, err := collector.Collect(commandContext(), collector.ExecRunner{}, cfg)
	if err != nil {
		return fmt.Errorf("failed to collect data: %w", err)
	}
	finishedAt := time.Now()

	var data []byte
	if asJSON {
		report := v1.Build(v1.BuildInput{
			Snapshot:   snap,
			Config:     cfg,
			ConfigFile: configFile,
			StartedAt:  startedAt,
			FinishedAt: finishedAt,
			Version:    version,
			GitCommit:  gitCommit,
			BuildTime:  buildTime,
		})
		data, err = json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		data = append(data, '\n')
	} else {
		segs := bar.Build(cfg.Screens[screen], cfg, snap.Summary, snap.Host, finishedAt)
		data = []byte(bar.Render(segs, colorize && output == "") + "\n")
	}

	return writeOutput(os.Stdout, output, data)
}

func writeOutput(stdout io.Writer, output string, data []byte) error {
	if output == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0644); err != nil {
		return fmt.Errorf("failed to write to file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Written to %s\n", output)
	return nil
}
