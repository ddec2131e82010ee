package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"grove/internal/ports"
)

// Opener implements ports.EditorOpener
type Opener struct {
	// command overrides $VISUAL and $EDITOR when set
	command string
}

var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates an opener that resolves the editor from the environment
func NewOpener() *Opener {
	return &Opener{}
}

// NewOpenerWith creates an opener for a fixed command line such as "code -w"
func NewOpenerWith(command string) *Opener {
	return &Opener{command: command}
}

// OpenFile opens a file in the user's preferred editor and waits for it
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd for opening a file in the editor, suitable
// for tea.ExecProcess
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	args := strings.Fields(o.findEditor())
	if len(args) == 0 {
		return nil, fmt.Errorf("no editor found: set $VISUAL or $EDITOR")
	}

	cmd := exec.Command(args[0], append(args[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns the editor command line to use
func (o *Opener) findEditor() string {
	if o.command != "" {
		return o.command
	}
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if editor := strings.TrimSpace(os.Getenv(env)); editor != "" {
			return editor
		}
	}

	// Try common editors
	for _, editor := range []string{"nvim", "vim", "vi", "nano"} {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}
	return ""
}
