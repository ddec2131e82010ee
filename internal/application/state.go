package application

import (
	"grove/internal/domain"
	"grove/internal/keymap"
)

// Focus is the panel that receives focus-scoped key bindings
type Focus int

const (
	FocusFileManager Focus = iota
	FocusEditor
)

func (f Focus) String() string {
	if f == FocusEditor {
		return "editor"
	}
	return "file manager"
}

// Context returns the key binding context consulted for this focus
func (f Focus) Context() keymap.Context {
	if f == FocusEditor {
		return keymap.ContextEditor
	}
	return keymap.ContextFileManager
}

// NoSelection marks an empty tree selection
const NoSelection = -1

// Panel holds the tree panel width as a percentage of the screen
type Panel struct {
	Width int
	Step  int
	Min   int
	Max   int
}

// clamp keeps w within [Min, Max]
func (p Panel) clamp(w int) int {
	return max(p.Min, min(w, p.Max))
}

// State is the complete UI state. It is owned by the run loop and mutated
// only by the dispatcher between renders.
type State struct {
	Tree  *domain.FileTree
	Tabs  *domain.TabContainer
	Focus Focus
	Panel Panel

	Exit     bool
	ShowHelp bool

	// Status is a one-line message for the status bar
	Status    string
	StatusErr bool

	selection int
}

// NewState creates the initial state for a built tree
func NewState(tree *domain.FileTree, panel Panel) *State {
	panel.Width = panel.clamp(panel.Width)
	return &State{
		Tree:      tree,
		Tabs:      domain.NewTabContainer(),
		Focus:     FocusFileManager,
		Panel:     panel,
		selection: NoSelection,
	}
}

// Rows returns the visible flattened tree, computed fresh
func (s *State) Rows() []domain.Row {
	return s.Tree.Flatten()
}

// Selection returns the selected row index, or NoSelection
func (s *State) Selection() int {
	return s.selection
}

// HasSelection reports whether a row is selected
func (s *State) HasSelection() bool {
	return s.selection != NoSelection
}

// SetSelection selects row i, clamped to the visible rows. An empty tree
// clears the selection.
func (s *State) SetSelection(i int) {
	n := s.Tree.Len()
	if n == 0 {
		s.selection = NoSelection
		return
	}
	s.selection = max(0, min(i, n-1))
}

// ClearSelection drops the tree selection
func (s *State) ClearSelection() {
	s.selection = NoSelection
}

// SelectedNode resolves the selection against the current rows
func (s *State) SelectedNode() *domain.FileNode {
	if s.selection == NoSelection {
		return nil
	}
	return s.Tree.ItemAt(s.selection)
}

// revalidateSelection clamps the selection after the row list changed shape
func (s *State) revalidateSelection() {
	if s.selection == NoSelection {
		return
	}
	if n := s.Tree.Len(); s.selection >= n {
		if n == 0 {
			s.selection = NoSelection
		} else {
			s.selection = n - 1
		}
	}
}

// SetPanelWidth sets the panel width, clamped to the panel bounds
func (s *State) SetPanelWidth(w int) {
	s.Panel.Width = s.Panel.clamp(w)
}

// ActiveEditor returns the editor of the selected tab, or nil
func (s *State) ActiveEditor() *domain.Editor {
	tab := s.Tabs.Selected()
	if tab == nil {
		return nil
	}
	return tab.Editor
}

// SetStatus shows an informational message
func (s *State) SetStatus(msg string) {
	s.Status = msg
	s.StatusErr = false
}

// SetError shows an error message
func (s *State) SetError(err error) {
	s.Status = err.Error()
	s.StatusErr = true
}

// ClearStatus removes the status message
func (s *State) ClearStatus() {
	s.Status = ""
	s.StatusErr = false
}
