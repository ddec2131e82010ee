package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"grove/internal/adapters/sqlite"
)

var forgetCmd = &cobra.Command{
	Use:   "forget",
	Short: "Forget the saved session for the root",
	Long: `Delete the open directories and panel width grove remembered for the
root directory. The next start shows the tree fully collapsed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := sqlite.NewStore()
		if err := store.Open(); err != nil {
			return err
		}
		defer store.Close()

		if err := store.Forget(rootPath); err != nil {
			return fmt.Errorf("failed to forget session: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Forgot session for %s\n", rootPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(forgetCmd)
}
