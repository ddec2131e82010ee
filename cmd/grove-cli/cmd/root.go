package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"grove/internal/adapters/filesystem"
	"grove/internal/config"
)

var (
	rootPath   string
	configPath string

	cfg  *config.Config
	repo *filesystem.Repository
)

var rootCmd = &cobra.Command{
	Use:   "grove-cli",
	Short: "Non-interactive companion to grove",
	Long: `grove-cli prints what the grove TUI shows without starting it:
the directory tree, the effective key bindings and file contents.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		abs, err := filesystem.ExpandPath(rootPath)
		if err != nil {
			return err
		}
		rootPath = abs
		repo = filesystem.NewRepository()
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", config.Root(), "directory to browse")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.Path(), "path to the config file")
}
