package domain

import "path/filepath"

// EditMode is the mode of an editor buffer
type EditMode int

const (
	ModeView EditMode = iota
	ModeWrite
)

func (m EditMode) String() string {
	if m == ModeWrite {
		return "WRITE"
	}
	return "VIEW"
}

// Editor is an in-memory text buffer bound to one file path.
// Write mode mutates Content only; nothing is persisted.
type Editor struct {
	Content          string
	FilePath         string
	VerticalScroll   int
	HorizontalScroll int
	Mode             EditMode
}

// NewEditor creates a View-mode editor over a content snapshot
func NewEditor(path, content string) *Editor {
	return &Editor{
		Content:  content,
		FilePath: path,
		Mode:     ModeView,
	}
}

// ToggleMode switches between View and Write
func (e *Editor) ToggleMode() {
	if e.Mode == ModeView {
		e.Mode = ModeWrite
	} else {
		e.Mode = ModeView
	}
}

// Writable reports whether the buffer accepts edits
func (e *Editor) Writable() bool {
	return e.Mode == ModeWrite
}

// SetContent replaces the buffer. Ignored outside Write mode.
func (e *Editor) SetContent(content string) bool {
	if !e.Writable() {
		return false
	}
	e.Content = content
	return true
}

// Title is the base name of the bound file
func (e *Editor) Title() string {
	return filepath.Base(e.FilePath)
}

// ScrollDown moves the view one line down
func (e *Editor) ScrollDown() {
	e.VerticalScroll++
}

// ScrollUp moves the view one line up, saturating at 0
func (e *Editor) ScrollUp() {
	if e.VerticalScroll > 0 {
		e.VerticalScroll--
	}
}

// ScrollRight moves the view one column right
func (e *Editor) ScrollRight() {
	e.HorizontalScroll++
}

// ScrollLeft moves the view one column left, saturating at 0
func (e *Editor) ScrollLeft() {
	if e.HorizontalScroll > 0 {
		e.HorizontalScroll--
	}
}

// Reload replaces the buffer with a fresh snapshot from disk regardless of
// mode. Used after the file was changed by an external editor.
func (e *Editor) Reload(content string) {
	e.Content = content
}
