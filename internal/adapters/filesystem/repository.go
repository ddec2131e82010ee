package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"grove/internal/domain"
	"grove/internal/ports"
)

// Repository implements ports.Filesystem on the local disk
type Repository struct{}

var _ ports.Filesystem = (*Repository)(nil)

// NewRepository creates a new filesystem repository
func NewRepository() *Repository {
	return &Repository{}
}

// ExpandPath expands a leading ~ and makes the path absolute
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	return filepath.Abs(path)
}

// BuildTree scans rootPath into a tree. Entries are listed directories first,
// then by name in byte order. The first unreadable entry aborts the scan.
func (r *Repository) BuildTree(rootPath string) (*domain.FileTree, error) {
	abs, err := ExpandPath(rootPath)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to read root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", abs, domain.ErrNotDirectory)
	}

	root, err := readTree(abs, rootName(abs), map[string]bool{})
	if err != nil {
		return nil, err
	}
	return domain.NewFileTree(root), nil
}

func rootName(abs string) string {
	name := filepath.Base(abs)
	if name == string(filepath.Separator) || name == "." {
		return abs
	}
	return name
}

type entry struct {
	name  string
	path  string
	isDir bool
}

// readTree builds the directory node at path. ancestors holds the resolved
// paths of the directories currently being scanned.
func readTree(path, name string, ancestors map[string]bool) (*domain.FileNode, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	if ancestors[resolved] {
		return nil, fmt.Errorf("%s: %w", path, domain.ErrSymlinkLoop)
	}
	ancestors[resolved] = true
	defer delete(ancestors, resolved)

	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dir %s: %w", path, err)
	}

	entries := make([]entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		full := filepath.Join(path, de.Name())
		// Stat follows symlinks so a link to a directory lists as one
		info, err := os.Stat(full)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", full, err)
		}
		entries = append(entries, entry{name: de.Name(), path: full, isDir: info.IsDir()})
	}

	sortEntries(entries)

	children := make([]*domain.FileNode, 0, len(entries))
	for _, e := range entries {
		if !e.isDir {
			children = append(children, domain.NewFile(e.name, e.path))
			continue
		}
		child, err := readTree(e.path, e.name, ancestors)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return domain.NewDir(name, path, children), nil
}

// sortEntries orders directories first, then names ascending by bytes
func sortEntries(entries []entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].isDir != entries[j].isDir {
			return entries[i].isDir
		}
		return entries[i].name < entries[j].name
	})
}

// ReadFile reads the whole file as UTF-8 text
func (r *Repository) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", path, domain.ErrNotText)
	}
	return string(data), nil
}
