package ports

import "grove/internal/domain"

// TreeSource builds the file tree for a root directory
type TreeSource interface {
	// BuildTree scans rootPath recursively. Any read error in any subtree
	// fails the whole build.
	BuildTree(rootPath string) (*domain.FileTree, error)
}

// FileReader reads whole files as UTF-8 text
type FileReader interface {
	ReadFile(path string) (string, error)
}

// Filesystem combines the read-only filesystem operations
type Filesystem interface {
	TreeSource
	FileReader
}
