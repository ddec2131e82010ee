package commands

import (
	"context"
	"fmt"

	"grove/internal/application"
	"grove/internal/ports"
)

// RestoreResult contains the result of a session restore
type RestoreResult struct {
	Found    bool
	Reopened int
	// Missing counts remembered directories no longer in the tree
	Missing int
}

// RestoreSessionCommand reopens the directories and panel width saved for a root
type RestoreSessionCommand struct {
	store    ports.SessionStore
	state    *application.State
	RootPath string
}

// NewRestoreSessionCommand creates a new RestoreSessionCommand
func NewRestoreSessionCommand(store ports.SessionStore, state *application.State, rootPath string) *RestoreSessionCommand {
	return &RestoreSessionCommand{
		store:    store,
		state:    state,
		RootPath: rootPath,
	}
}

// Execute runs the restore
func (c *RestoreSessionCommand) Execute(ctx context.Context) (*RestoreResult, error) {
	session, err := c.store.Load(c.RootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return &RestoreResult{}, nil
	}

	result := &RestoreResult{Found: true}
	for _, path := range session.OpenDirs {
		node := c.state.Tree.FindByPath(path)
		if node == nil || !node.IsDir() {
			result.Missing++
			continue
		}
		node.SetOpen(true)
		result.Reopened++
	}
	if session.PanelWidth > 0 {
		c.state.SetPanelWidth(session.PanelWidth)
	}
	return result, nil
}

// SaveSessionCommand stores the open directories and panel width for a root
type SaveSessionCommand struct {
	store    ports.SessionStore
	state    *application.State
	RootPath string
}

// NewSaveSessionCommand creates a new SaveSessionCommand
func NewSaveSessionCommand(store ports.SessionStore, state *application.State, rootPath string) *SaveSessionCommand {
	return &SaveSessionCommand{
		store:    store,
		state:    state,
		RootPath: rootPath,
	}
}

// Execute runs the save
func (c *SaveSessionCommand) Execute(ctx context.Context) error {
	session := &ports.Session{
		RootPath:   c.RootPath,
		PanelWidth: c.state.Panel.Width,
		OpenDirs:   c.state.Tree.OpenPaths(),
	}
	if err := c.store.Save(session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
