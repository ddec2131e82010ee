package mcp

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"grove/internal/application"
	"grove/internal/application/commands"
	"grove/internal/domain"
	"grove/internal/ports"
)

// RegisterReadTools adds the read-only file tools for the absolute rootPath
// to the MCP server. The tree is rescanned on every call.
func RegisterReadTools(s *server.MCPServer, fs ports.Filesystem, rootPath string) {
	s.AddTool(treeTool(), treeHandler(fs, rootPath))
	s.AddTool(listTool(), listHandler(fs, rootPath))
	s.AddTool(readFileTool(), readFileHandler(fs, rootPath))
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Display a directory as an indented tree. Directories are listed first and end with '/'."),
		mcp.WithString("path",
			mcp.Description("Directory relative to the root. Omit for the root itself."),
		),
		mcp.WithNumber("depth",
			mcp.Description("Maximum depth to descend (0 or omitted means unlimited)"),
		),
	)
}

func treeHandler(fs ports.Filesystem, rootPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		node, err := lookup(ctx, fs, rootPath, req.GetString("path", ""))
		if err != nil {
			return toolError(err)
		}
		if !node.IsDir() {
			return toolError(fmt.Errorf("%s: %w", node.Name, domain.ErrNotDirectory))
		}

		maxDepth := req.GetInt("depth", 0)
		var sb strings.Builder
		for _, child := range node.Children {
			domain.WalkDepth(child, maxDepth, func(n *domain.FileNode, depth int) {
				fmt.Fprintf(&sb, "%s%s\n", strings.Repeat("  ", depth), displayName(n))
			})
		}
		if sb.Len() == 0 {
			return mcp.NewToolResultText("Empty directory."), nil
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- list ---

func listTool() mcp.Tool {
	return mcp.NewTool("list",
		mcp.WithDescription("List the direct entries of a directory, directories first."),
		mcp.WithString("path",
			mcp.Description("Directory relative to the root. Omit for the root itself."),
		),
	)
}

func listHandler(fs ports.Filesystem, rootPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		node, err := lookup(ctx, fs, rootPath, req.GetString("path", ""))
		if err != nil {
			return toolError(err)
		}
		if !node.IsDir() {
			return toolError(fmt.Errorf("%s: %w", node.Name, domain.ErrNotDirectory))
		}
		return formatEntries(node.Children)
	}
}

// --- read_file ---

func readFileTool() mcp.Tool {
	return mcp.NewTool("read_file",
		mcp.WithDescription("Read a UTF-8 text file under the root."),
		mcp.WithString("path",
			mcp.Description("File path relative to the root"),
			mcp.Required(),
		),
	)
}

func readFileHandler(fs ports.Filesystem, rootPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		rel := req.GetString("path", "")
		if err := application.ValidateRequired("path", rel); err != nil {
			return toolError(err)
		}

		path, err := resolve(rootPath, rel)
		if err != nil {
			return toolError(err)
		}

		content, err := commands.NewReadFileCommand(fs, path).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(content), nil
	}
}

// --- helpers ---

// resolve joins rel onto rootPath and rejects paths leaving the root
func resolve(rootPath, rel string) (string, error) {
	path := filepath.Join(rootPath, filepath.FromSlash(rel))
	r, err := filepath.Rel(rootPath, path)
	if err != nil || r == ".." || strings.HasPrefix(r, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q is outside the root", rel)
	}
	return path, nil
}

// lookup scans the tree and finds the node for rel
func lookup(ctx context.Context, fs ports.Filesystem, rootPath, rel string) (*domain.FileNode, error) {
	path, err := resolve(rootPath, rel)
	if err != nil {
		return nil, err
	}
	tree, err := commands.NewBuildTreeCommand(fs, rootPath).Execute(ctx)
	if err != nil {
		return nil, err
	}
	node := tree.FindByPath(path)
	if node == nil {
		return nil, fmt.Errorf("not found: %s", rel)
	}
	return node, nil
}

func displayName(n *domain.FileNode) string {
	if n.IsDir() {
		return n.Name + "/"
	}
	return n.Name
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntries(entries []*domain.FileNode) (*mcp.CallToolResult, error) {
	if len(entries) == 0 {
		return mcp.NewToolResultText("No entries."), nil
	}
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(displayName(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}
