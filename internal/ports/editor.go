package ports

import "os/exec"

// EditorOpener hands a file to the user's external editor
type EditorOpener interface {
	// OpenFile runs the editor on path and waits for it to exit
	OpenFile(path string) error

	// Command builds the editor process without starting it, so the TUI
	// can suspend itself while it runs
	Command(path string) (*exec.Cmd, error)
}
