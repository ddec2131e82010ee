package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"grove/internal/adapters/editor"
)

var editCmd = &cobra.Command{
	Use:   "edit <path>",
	Short: "Open a file in the external editor",
	Long: `Open a file in the configured editor and wait for it to exit. The
editor comes from the config file, then $VISUAL, then $EDITOR.

Example:
  grove-cli edit notes/todo.md`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if !filepath.IsAbs(path) {
			path = filepath.Join(rootPath, path)
		}

		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", args[0])
		}

		opener := editor.NewOpener()
		if cfg.Editor != "" {
			opener = editor.NewOpenerWith(cfg.Editor)
		}
		return opener.OpenFile(path)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
