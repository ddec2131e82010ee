package domain

import "testing"

func TestNewEditor(t *testing.T) {
	ed := NewEditor("/r/notes/todo.md", "hello")

	if ed.Mode != ModeView {
		t.Errorf("Mode = %v, want VIEW", ed.Mode)
	}
	if ed.VerticalScroll != 0 || ed.HorizontalScroll != 0 {
		t.Errorf("scroll = (%d,%d), want (0,0)", ed.VerticalScroll, ed.HorizontalScroll)
	}
	if ed.Title() != "todo.md" {
		t.Errorf("Title = %q, want todo.md", ed.Title())
	}
}

func TestEditor_ToggleMode(t *testing.T) {
	ed := NewEditor("/r/a.txt", "")
	ed.ToggleMode()
	if ed.Mode != ModeWrite {
		t.Fatalf("Mode = %v, want WRITE", ed.Mode)
	}
	ed.ToggleMode()
	if ed.Mode != ModeView {
		t.Errorf("Mode = %v, want VIEW", ed.Mode)
	}
}

func TestEditor_SetContentRequiresWriteMode(t *testing.T) {
	ed := NewEditor("/r/a.txt", "original")

	if ed.SetContent("changed") {
		t.Error("SetContent should refuse in View mode")
	}
	if ed.Content != "original" {
		t.Errorf("Content = %q, want original", ed.Content)
	}

	ed.ToggleMode()
	if !ed.SetContent("changed") {
		t.Error("SetContent should succeed in Write mode")
	}
	if ed.Content != "changed" {
		t.Errorf("Content = %q, want changed", ed.Content)
	}
}

func TestEditor_ScrollSaturatesAtZero(t *testing.T) {
	ed := NewEditor("/r/a.txt", "")

	ed.ScrollUp()
	ed.ScrollLeft()
	if ed.VerticalScroll != 0 || ed.HorizontalScroll != 0 {
		t.Errorf("scroll = (%d,%d), want (0,0)", ed.VerticalScroll, ed.HorizontalScroll)
	}

	ed.ScrollDown()
	ed.ScrollDown()
	ed.ScrollRight()
	ed.ScrollUp()
	if ed.VerticalScroll != 1 {
		t.Errorf("VerticalScroll = %d, want 1", ed.VerticalScroll)
	}
	if ed.HorizontalScroll != 1 {
		t.Errorf("HorizontalScroll = %d, want 1", ed.HorizontalScroll)
	}
}
