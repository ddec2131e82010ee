package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNoActiveTab          = errors.New("no active tab")
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	ErrEditsDiscarded       = errors.New("unsaved edits discarded")
)

// OpenError reports a file that could not be opened into a tab
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}
