package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/wmstatus/internal/keymap"
)

// keysCmd represents the keys command
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the expanded key binding table",
	Long: `Expand the configured key bindings and the per-group switch/move
bindings into one table. Exits with code 2 if two bindings share a chord.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		return runKeys(asJSON)
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)

	keysCmd.Flags().Bool("json", false, "Print bindings as JSON")
}

func runKeys(asJSON bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	bindings, err := keymap.Build(cfg)
	if err != nil {
		return ExitError{Code: 2, Err: fmt.Errorf("%s %w", red("key map:"), err)}
	}

	if asJSON {
		data, err := json.MarshalIndent(bindings, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return writeOutput(os.Stdout, "", append(data, '\n'))
	}
	return writeOutput(os.Stdout, "", []byte(keymap.Format(bindings)))
}
