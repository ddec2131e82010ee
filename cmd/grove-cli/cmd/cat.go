package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"grove/internal/application/commands"
)

var catCmd = &cobra.Command{
	Use:   "cat <path>",
	Short: "Print a text file",
	Long: `Print a file through the same reader grove uses for tabs. Relative
paths are resolved against the root. Files that are not valid UTF-8 are
rejected.

Example:
  grove-cli cat README.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if !filepath.IsAbs(path) {
			path = filepath.Join(rootPath, path)
		}

		content, err := commands.NewReadFileCommand(repo, path).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catCmd)
}
