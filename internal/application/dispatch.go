package application

import (
	"fmt"
	"log"
	"path/filepath"

	"grove/internal/domain"
	"grove/internal/keymap"
	"grove/internal/ports"
)

// KeyEvent is one key press: a modifier set plus a key symbol
type KeyEvent = keymap.Key

// Outcome describes what a dispatch step did, for the run loop
type Outcome struct {
	// Actions that fired, focus table first
	Actions []keymap.Action

	// OpenExternal is set when the active file should be handed to $EDITOR
	OpenExternal string
}

// Handled reports whether any binding consumed the event
func (o Outcome) Handled() bool {
	return len(o.Actions) > 0
}

// Dispatcher maps key events onto state mutations. The focus-scoped table is
// consulted first, then the global table; both are always checked.
type Dispatcher struct {
	keys      *keymap.Registry
	reader    ports.FileReader
	clipboard ports.Clipboard
}

// NewDispatcher creates a dispatcher. clipboard may be nil.
func NewDispatcher(keys *keymap.Registry, reader ports.FileReader, clipboard ports.Clipboard) *Dispatcher {
	return &Dispatcher{
		keys:      keys,
		reader:    reader,
		clipboard: clipboard,
	}
}

// Keys returns the binding registry in use
func (d *Dispatcher) Keys() *keymap.Registry {
	return d.keys
}

// Dispatch applies one key event. After exit nothing is dispatched.
func (d *Dispatcher) Dispatch(s *State, ev KeyEvent) Outcome {
	var out Outcome
	if s.Exit {
		return out
	}

	if action, ok := d.keys.Match(s.Focus.Context(), ev); ok {
		if d.apply(s, action, &out) {
			out.Actions = append(out.Actions, action)
		}
	}
	if action, ok := d.keys.Match(keymap.ContextGlobal, ev); ok {
		if d.apply(s, action, &out) {
			out.Actions = append(out.Actions, action)
		}
	}
	return out
}

// apply runs one action and reports whether it consumed the key.
// Scroll actions only apply in View mode so Write mode keeps its arrows.
func (d *Dispatcher) apply(s *State, action keymap.Action, out *Outcome) bool {
	switch action {
	case keymap.ActionSelectNext:
		if !s.HasSelection() {
			s.SetSelection(0)
		} else {
			s.SetSelection(s.selection + 1)
		}
	case keymap.ActionSelectPrevious:
		// up from nothing lands on the last row
		if !s.HasSelection() {
			s.SetSelection(s.Tree.Len() - 1)
		} else {
			s.SetSelection(s.selection - 1)
		}
	case keymap.ActionSelectFirst:
		s.SetSelection(0)
	case keymap.ActionSelectLast:
		s.SetSelection(s.Tree.Len() - 1)
	case keymap.ActionSelectNone:
		s.ClearSelection()
	case keymap.ActionPanelShrink:
		s.SetPanelWidth(s.Panel.Width - s.Panel.Step)
	case keymap.ActionPanelGrow:
		s.SetPanelWidth(s.Panel.Width + s.Panel.Step)
	case keymap.ActionActivate:
		d.activate(s)

	case keymap.ActionToggleMode:
		ed := s.ActiveEditor()
		if ed == nil {
			return false
		}
		ed.ToggleMode()
	case keymap.ActionScrollUp, keymap.ActionScrollDown, keymap.ActionScrollLeft, keymap.ActionScrollRight:
		ed := s.ActiveEditor()
		if ed == nil || ed.Writable() {
			return false
		}
		scroll(ed, action)
	case keymap.ActionPrevTab:
		// out of range is a no-op
		_ = s.Tabs.Select(s.Tabs.SelectedIndex() - 1)
	case keymap.ActionNextTab:
		_ = s.Tabs.Select(s.Tabs.SelectedIndex() + 1)
	case keymap.ActionCloseTab:
		d.closeTab(s)
	case keymap.ActionCopyBuffer:
		d.copyBuffer(s)
	case keymap.ActionOpenExternal:
		ed := s.ActiveEditor()
		if ed == nil {
			s.SetError(ErrNoActiveTab)
			return true
		}
		out.OpenExternal = ed.FilePath

	case keymap.ActionToggleFocus:
		if s.Focus == FocusFileManager {
			s.Focus = FocusEditor
		} else {
			s.Focus = FocusFileManager
		}
	case keymap.ActionQuit:
		s.Exit = true
	case keymap.ActionHelp:
		s.ShowHelp = !s.ShowHelp

	default:
		return false
	}
	return true
}

func scroll(ed *domain.Editor, action keymap.Action) {
	switch action {
	case keymap.ActionScrollUp:
		ed.ScrollUp()
	case keymap.ActionScrollDown:
		ed.ScrollDown()
	case keymap.ActionScrollLeft:
		ed.ScrollLeft()
	case keymap.ActionScrollRight:
		ed.ScrollRight()
	}
}

// activate toggles the selected directory or opens the selected file
func (d *Dispatcher) activate(s *State) {
	node := s.SelectedNode()
	if node == nil {
		return
	}
	if node.IsDir() {
		s.Tree.Toggle(node.Path)
		s.revalidateSelection()
		return
	}
	if err := d.Open(s, node.Path); err != nil {
		log.Printf("open: %v", err)
		s.SetError(err)
	}
}

// Open reads path and shows it in a new selected tab with focus on the
// editor. On a read failure the state is left unchanged.
func (d *Dispatcher) Open(s *State, path string) error {
	content, err := d.reader.ReadFile(path)
	if err != nil {
		return &OpenError{Path: path, Err: err}
	}

	s.Tabs.Push(domain.NewTab(domain.NewEditor(path, content)))
	if err := s.Tabs.Select(s.Tabs.Len() - 1); err != nil {
		return err
	}
	s.Focus = FocusEditor
	s.ClearStatus()
	return nil
}

// closeTab removes the selected tab. Focus returns to the tree when the
// last tab closes.
func (d *Dispatcher) closeTab(s *State) {
	if _, err := s.Tabs.Remove(s.Tabs.SelectedIndex()); err != nil {
		return
	}
	if s.Tabs.Len() == 0 {
		s.Focus = FocusFileManager
	}
}

func (d *Dispatcher) copyBuffer(s *State) {
	ed := s.ActiveEditor()
	if ed == nil {
		s.SetError(ErrNoActiveTab)
		return
	}
	if d.clipboard == nil {
		s.SetError(ErrClipboardUnavailable)
		return
	}
	if err := d.clipboard.WriteAll(ed.Content); err != nil {
		log.Printf("clipboard: %v", err)
		s.SetError(fmt.Errorf("copy failed: %w", err))
		return
	}
	s.SetStatus(fmt.Sprintf("Copied %s (%d bytes)", ed.Title(), len(ed.Content)))
}

// Reload re-reads every open editor bound to path. Write-mode buffers that
// differed from the new content are reported in the status line.
func (d *Dispatcher) Reload(s *State, path string) error {
	content, err := d.reader.ReadFile(path)
	if err != nil {
		return &OpenError{Path: path, Err: err}
	}

	discarded := 0
	for _, tab := range s.Tabs.Tabs() {
		if tab.Editor.FilePath != path {
			continue
		}
		if tab.Editor.Writable() && tab.Editor.Content != content {
			discarded++
		}
		tab.Editor.Reload(content)
	}

	if discarded > 0 {
		log.Printf("reload %s: replaced %d edited buffers", path, discarded)
		s.SetError(fmt.Errorf("%s reloaded from disk: %w", filepath.Base(path), ErrEditsDiscarded))
	}
	return nil
}
