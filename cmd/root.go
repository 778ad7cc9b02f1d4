package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/wmstatus/internal/collector"
	"github.com/example/wmstatus/internal/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wmstatus",
	Short: "Status bar data and session config for a tiling window manager",
	Long: `wmstatus collects the disk usage and kernel version shown in the
window manager's status bar, and validates and prints the session's
declarative configuration: key bindings, groups, layouts and bar widgets.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

type exitCoder interface {
	ExitCode() int
}

// ExitError allows commands to exit with a specific exit code.
// If Err is nil, no error message is printed.
type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) ExitCode() int { return e.Code }
func (e ExitError) Unwrap() error { return e.Err }
func (e ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

var (
	version   = "dev"
	gitCommit = ""
	buildTime = ""
)

// SetVersion records the build metadata injected into main by the linker.
func SetVersion(v, commit, built string) {
	version, gitCommit, buildTime = v, commit, built
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if ee, ok := err.(exitCoder); ok {
			if msg := strings.TrimSpace(err.Error()); msg != "" {
				fmt.Fprintln(os.Stderr, msg)
			}
			os.Exit(ee.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(3)
	}
}

var (
	configFile string
	verbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "wmstatus.yml", "config file (defaults are used when it does not exist)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log collector timings to stderr")
}

// loadConfig reads --config. Validation failures exit with code 2.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(configFile)
	if err != nil {
		return nil, ExitError{Code: 2, Err: err}
	}
	return cfg, nil
}

func commandContext() context.Context {
	ctx := context.Background()
	if verbose {
		ctx = collector.WithLogger(ctx, log.New(os.Stderr, "wmstatus: ", log.Ltime))
	}
	return ctx
}
