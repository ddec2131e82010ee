package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"

	"grove/internal/ports"
)

// ErrUnsupported is returned when no clipboard utility is available
var ErrUnsupported = errors.New("no clipboard utility available (install xclip, xsel or wl-clipboard)")

// System implements ports.Clipboard with the OS clipboard
type System struct{}

var _ ports.Clipboard = System{}

// WriteAll copies text to the system clipboard
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}
