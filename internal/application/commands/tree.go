package commands

import (
	"context"
	"fmt"
	"log"
	"time"

	"grove/internal/domain"
	"grove/internal/ports"
)

// BuildTreeCommand scans a root directory into a file tree
type BuildTreeCommand struct {
	source   ports.TreeSource
	RootPath string
}

// NewBuildTreeCommand creates a new BuildTreeCommand
func NewBuildTreeCommand(source ports.TreeSource, rootPath string) *BuildTreeCommand {
	return &BuildTreeCommand{
		source:   source,
		RootPath: rootPath,
	}
}

// Execute runs the build. Any scan error is fatal to the caller.
func (c *BuildTreeCommand) Execute(ctx context.Context) (*domain.FileTree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	tree, err := c.source.BuildTree(c.RootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build tree for %s: %w", c.RootPath, err)
	}

	count := 0
	domain.Walk(tree.Root, func(*domain.FileNode, int) { count++ })
	log.Printf("built tree for %s: %d nodes in %s", c.RootPath, count, time.Since(start))
	return tree, nil
}
