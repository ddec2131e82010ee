package commands

import (
	"context"

	"grove/internal/application"
	"grove/internal/ports"
)

// ReadFileCommand reads one file as text
type ReadFileCommand struct {
	reader ports.FileReader
	Path   string
}

// NewReadFileCommand creates a new ReadFileCommand
func NewReadFileCommand(reader ports.FileReader, path string) *ReadFileCommand {
	return &ReadFileCommand{
		reader: reader,
		Path:   path,
	}
}

// Execute runs the read
func (c *ReadFileCommand) Execute(ctx context.Context) (string, error) {
	if err := application.ValidateRequired("path", c.Path); err != nil {
		return "", err
	}
	content, err := c.reader.ReadFile(c.Path)
	if err != nil {
		return "", &application.OpenError{Path: c.Path, Err: err}
	}
	return content, nil
}
