package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"grove/internal/keymap"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show the effective key bindings",
	Long: `Show the default key bindings merged with the keys section of the
config file, then the validation result.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := keymap.Defaults()
		if err := keymap.ApplyOverrides(reg, cfg.Keys); err != nil {
			return err
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("CONTEXT", "KEY", "ACTION", "DESCRIPTION")
		for _, ctx := range keymap.Contexts {
			for _, b := range reg.Bindings(ctx) {
				t.Row(string(ctx), b.Key, string(b.Action), b.Action.Description())
			}
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, t.Render())

		result := keymap.NewValidator().Validate(reg)
		fmt.Fprintln(out, result.String())
		if result.HasErrors() {
			return fmt.Errorf("key bindings are invalid")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
