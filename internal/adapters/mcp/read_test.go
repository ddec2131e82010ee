package mcp

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"grove/internal/adapters/filesystem"
)

func setupRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"a.txt":       "alpha",
		"d.txt":       "delta",
		"b/c.txt":     "gamma",
		"b/e/f.txt":   "phi",
		"outside.txt": "x",
	}
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	res, err := h(context.Background(), req)
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if len(res.Content) == 0 {
		t.Fatal("empty result")
	}
	text, ok := res.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T", res.Content[0])
	}
	return text.Text, res.IsError
}

func TestTreeHandler(t *testing.T) {
	root := setupRoot(t)
	h := treeHandler(filesystem.NewRepository(), root)

	got, isErr := call(t, h, nil)
	if isErr {
		t.Fatalf("error: %s", got)
	}
	want := "b/\n  e/\n    f.txt\n  c.txt\na.txt\nd.txt\noutside.txt\n"
	if got != want {
		t.Errorf("tree =\n%s\nwant\n%s", got, want)
	}

	got, _ = call(t, h, map[string]any{"path": "b", "depth": 1.0})
	if got != "e/\nc.txt\n" {
		t.Errorf("tree b depth 1 = %q", got)
	}
}

func TestListHandler(t *testing.T) {
	root := setupRoot(t)
	h := listHandler(filesystem.NewRepository(), root)

	got, isErr := call(t, h, map[string]any{"path": "b"})
	if isErr {
		t.Fatalf("error: %s", got)
	}
	if got != "e/\nc.txt\n" {
		t.Errorf("list b = %q", got)
	}

	got, isErr = call(t, h, map[string]any{"path": "a.txt"})
	if !isErr || !strings.Contains(got, "not a directory") {
		t.Errorf("list file = %q, isError %v", got, isErr)
	}

	got, isErr = call(t, h, map[string]any{"path": "nope"})
	if !isErr || !strings.Contains(got, "not found") {
		t.Errorf("list missing = %q, isError %v", got, isErr)
	}
}

func TestReadFileHandler(t *testing.T) {
	root := setupRoot(t)
	h := readFileHandler(filesystem.NewRepository(), root)

	tests := []struct {
		name    string
		args    map[string]any
		want    string
		wantErr string
	}{
		{name: "file", args: map[string]any{"path": "b/e/f.txt"}, want: "phi"},
		{name: "missing path", args: nil, wantErr: "path is required"},
		{name: "escape", args: map[string]any{"path": "../etc/passwd"}, wantErr: "outside the root"},
		{name: "missing file", args: map[string]any{"path": "zzz"}, wantErr: "cannot open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, isErr := call(t, h, tt.args)
			if tt.wantErr != "" {
				if !isErr || !strings.Contains(got, tt.wantErr) {
					t.Errorf("result = %q, isError %v, want error containing %q", got, isErr, tt.wantErr)
				}
				return
			}
			if isErr || got != tt.want {
				t.Errorf("result = %q, isError %v, want %q", got, isErr, tt.want)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		rel     string
		want    string
		wantErr bool
	}{
		{"", "/r", false},
		{"a/b", "/r/a/b", false},
		{"a/../b", "/r/b", false},
		{"..", "", true},
		{"../x", "", true},
		{"..foo", "/r/..foo", false},
	}
	for _, tt := range tests {
		got, err := resolve("/r", tt.rel)
		if (err != nil) != tt.wantErr {
			t.Errorf("resolve(%q) error = %v", tt.rel, err)
			continue
		}
		if got != tt.want {
			t.Errorf("resolve(%q) = %q, want %q", tt.rel, got, tt.want)
		}
	}
}
