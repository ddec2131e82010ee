package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"grove/internal/adapters/sqlite"
	"grove/internal/application"
	"grove/internal/application/commands"
	"grove/internal/domain"
)

var treeAll bool

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the directory tree",
	Long: `Print the directory tree the way the grove panel lists it.

Directories are collapsed. When session is enabled in the config file,
those open when grove last quit in this root are expanded. --all expands
everything.

Example:
  grove-cli tree --all`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		tree, err := commands.NewBuildTreeCommand(repo, rootPath).Execute(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if treeAll {
			for _, child := range tree.Root.Children {
				domain.Walk(child, func(n *domain.FileNode, depth int) {
					printNode(out, n, depth)
				})
			}
			return nil
		}

		if cfg.Session {
			restoreOpenDirs(ctx, tree)
		}
		for _, row := range tree.Flatten() {
			printNode(out, row.Node, row.Depth)
		}
		return nil
	},
}

func printNode(w io.Writer, n *domain.FileNode, depth int) {
	name := n.Name
	if n.IsDir() {
		name += "/"
	}
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), name)
}

// restoreOpenDirs reopens the directories saved by the last TUI session
func restoreOpenDirs(ctx context.Context, tree *domain.FileTree) {
	store := sqlite.NewStore()
	if err := store.Open(); err != nil {
		log.Printf("session: %v", err)
		return
	}
	defer store.Close()

	state := application.NewState(tree, application.Panel{
		Width: cfg.PanelWidth,
		Step:  cfg.PanelStep,
		Min:   cfg.PanelMin,
		Max:   cfg.PanelMax,
	})
	if _, err := commands.NewRestoreSessionCommand(store, state, rootPath).Execute(ctx); err != nil {
		log.Printf("session: %v", err)
	}
}

func init() {
	treeCmd.Flags().BoolVarP(&treeAll, "all", "a", false, "expand every directory")
	rootCmd.AddCommand(treeCmd)
}
