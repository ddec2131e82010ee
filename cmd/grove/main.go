package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"grove/internal/adapters/clipboard"
	"grove/internal/adapters/editor"
	"grove/internal/adapters/filesystem"
	"grove/internal/adapters/sqlite"
	"grove/internal/adapters/tui"
	"grove/internal/application"
	"grove/internal/application/commands"
	"grove/internal/config"
	"grove/internal/keymap"
)

var (
	rootPath   string
	configPath string
	panelWidth int
	session    bool
)

var rootCmd = &cobra.Command{
	Use:   "grove [dir]",
	Short: "Browse a directory tree and view files in tabs",
	Long: `grove is a terminal file browser with a tabbed editor.

The tree panel lists the directory with folders first. Enter opens a
folder or opens a file in a new tab. Press f1 for the key bindings.

Every directory starts closed. With --session (or session: true in the
config file) the directories open at quit are reopened next time.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			rootPath = args[0]
		}
		return run(cmd)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&rootPath, "root", "r", config.Root(), "directory to browse")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", config.Path(), "path to the config file")
	rootCmd.Flags().IntVarP(&panelWidth, "width", "w", 0, "tree panel width in percent (overrides config)")
	rootCmd.Flags().BoolVar(&session, "session", false, "restore and save open directories for this root (overrides config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command) error {
	ctx := context.Background()

	closeLog, err := setupLogging()
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("width") {
		cfg.PanelWidth = panelWidth
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("session") {
		cfg.Session = session
	}

	keys, result, err := keymap.Load(cfg.Keys)
	if err != nil {
		return err
	}
	if result.HasWarnings() {
		fmt.Fprint(os.Stderr, result.String())
	}

	root, err := filesystem.ExpandPath(rootPath)
	if err != nil {
		return err
	}

	// Initialize adapters
	repo := filesystem.NewRepository()
	opener := editor.NewOpener()
	if cfg.Editor != "" {
		opener = editor.NewOpenerWith(cfg.Editor)
	}

	tree, err := commands.NewBuildTreeCommand(repo, root).Execute(ctx)
	if err != nil {
		return err
	}

	state := application.NewState(tree, application.Panel{
		Width: cfg.PanelWidth,
		Step:  cfg.PanelStep,
		Min:   cfg.PanelMin,
		Max:   cfg.PanelMax,
	})

	var store *sqlite.Store
	if cfg.Session {
		store = openSession(ctx, state, root)
		if store != nil {
			defer store.Close()
		}
	}
	if cmd.Flags().Changed("width") {
		state.SetPanelWidth(cfg.PanelWidth)
	}

	dispatcher := application.NewDispatcher(keys, repo, clipboard.System{})
	app := tui.NewApp(state, dispatcher, opener, filepath.Base(root))

	// Alt screen is restored by bubbletea on exit and on panics
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	if store != nil {
		if err := commands.NewSaveSessionCommand(store, state, root).Execute(ctx); err != nil {
			log.Printf("session: %v", err)
		}
	}
	return nil
}

// setupLogging sends the standard logger to GROVE_DEBUG, or discards it so
// nothing is written over the alt screen
func setupLogging() (func(), error) {
	path := config.DebugLogPath()
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "grove")
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return func() { f.Close() }, nil
}

// openSession opens the session store and restores state for root. Session
// problems are logged and never stop startup.
func openSession(ctx context.Context, state *application.State, root string) *sqlite.Store {
	store := sqlite.NewStore()
	if err := store.Open(); err != nil {
		log.Printf("session: %v", err)
		return nil
	}

	result, err := commands.NewRestoreSessionCommand(store, state, root).Execute(ctx)
	if err != nil {
		log.Printf("session: %v", err)
		return store
	}
	if result.Found {
		log.Printf("session: reopened %d dirs, %d missing", result.Reopened, result.Missing)
	}
	return store
}
