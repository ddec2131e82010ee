package domain

// FileNode is a single filesystem entry. A directory owns its children even
// while closed; a file has no children.
type FileNode struct {
	Name     string
	Path     string
	Children []*FileNode

	dir  bool
	open bool
}

// NewFile creates a file node
func NewFile(name, path string) *FileNode {
	return &FileNode{Name: name, Path: path}
}

// NewDir creates a closed directory node owning children
func NewDir(name, path string, children []*FileNode) *FileNode {
	if children == nil {
		children = []*FileNode{}
	}
	return &FileNode{Name: name, Path: path, Children: children, dir: true}
}

// IsDir reports whether the node is a directory
func (n *FileNode) IsDir() bool {
	return n.dir
}

// IsOpen reports whether the node is an open directory. Files are never open.
func (n *FileNode) IsOpen() bool {
	return n.dir && n.open
}

// Toggle flips the open state of a directory. No-op on files.
func (n *FileNode) Toggle() {
	if n.dir {
		n.open = !n.open
	}
}

// SetOpen sets the open state of a directory. No-op on files.
func (n *FileNode) SetOpen(open bool) {
	if n.dir {
		n.open = open
	}
}

// RowKind is the icon class of a visible row
type RowKind int

const (
	RowFile RowKind = iota
	RowDirClosed
	RowDirOpen
)

// Row is one entry of the flattened visible list
type Row struct {
	Node  *FileNode
	Depth int
}

// Kind returns the icon class for the row
func (r Row) Kind() RowKind {
	switch {
	case !r.Node.IsDir():
		return RowFile
	case r.Node.IsOpen():
		return RowDirOpen
	default:
		return RowDirClosed
	}
}

// FileTree owns the root node of a scanned directory
type FileTree struct {
	Root *FileNode
}

// NewFileTree wraps a root directory node
func NewFileTree(root *FileNode) *FileTree {
	return &FileTree{Root: root}
}

// Flatten returns the visible nodes in pre-order, starting at the root's
// children with depth 0. Only open directories are descended into.
// The result is not cached: indices are valid until the next toggle.
func (t *FileTree) Flatten() []Row {
	var rows []Row
	if t == nil || t.Root == nil {
		return rows
	}
	for _, child := range t.Root.Children {
		flattenRecursive(child, 0, &rows)
	}
	return rows
}

func flattenRecursive(n *FileNode, depth int, rows *[]Row) {
	*rows = append(*rows, Row{Node: n, Depth: depth})
	if n.IsOpen() {
		for _, child := range n.Children {
			flattenRecursive(child, depth+1, rows)
		}
	}
}

// Len returns the length of the visible list
func (t *FileTree) Len() int {
	return len(t.Flatten())
}

// ItemAt resolves an index against a fresh flattening.
// Returns nil when the index is out of range.
func (t *FileTree) ItemAt(index int) *FileNode {
	rows := t.Flatten()
	if index < 0 || index >= len(rows) {
		return nil
	}
	return rows[index].Node
}

// FindByPath searches the whole tree, collapsed subtrees included, for the
// node with the given path. The root itself can match.
func (t *FileTree) FindByPath(path string) *FileNode {
	if t == nil || t.Root == nil {
		return nil
	}
	stack := []*FileNode{t.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Path == path {
			return n
		}
		// push in reverse so siblings are visited in listing order
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return nil
}

// Toggle flips the directory at path. Returns false when no node matches.
func (t *FileTree) Toggle(path string) bool {
	n := t.FindByPath(path)
	if n == nil {
		return false
	}
	n.Toggle()
	return true
}

// OpenPaths returns the paths of every open directory, in pre-order
func (t *FileTree) OpenPaths() []string {
	var paths []string
	if t == nil || t.Root == nil {
		return paths
	}
	Walk(t.Root, func(n *FileNode, _ int) {
		if n != t.Root && n.IsOpen() {
			paths = append(paths, n.Path)
		}
	})
	return paths
}

// Walk visits n and every descendant in pre-order regardless of open state
func Walk(n *FileNode, fn func(n *FileNode, depth int)) {
	walkRecursive(n, 0, fn)
}

func walkRecursive(n *FileNode, depth int, fn func(*FileNode, int)) {
	fn(n, depth)
	for _, child := range n.Children {
		walkRecursive(child, depth+1, fn)
	}
}

// WalkDepth is Walk limited to nodes shallower than maxDepth; n itself has
// depth 0. Subtrees below the limit are not entered. maxDepth <= 0 means no
// limit.
func WalkDepth(n *FileNode, maxDepth int, fn func(n *FileNode, depth int)) {
	if maxDepth <= 0 {
		Walk(n, fn)
		return
	}
	walkLimited(n, 0, maxDepth, fn)
}

func walkLimited(n *FileNode, depth, maxDepth int, fn func(*FileNode, int)) {
	fn(n, depth)
	if depth+1 >= maxDepth {
		return
	}
	for _, child := range n.Children {
		walkLimited(child, depth+1, maxDepth, fn)
	}
}
