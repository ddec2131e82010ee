package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"testing"

	"grove/internal/domain"
)

func setupTestTree(t *testing.T, files map[string]string, dirs ...string) string {
	t.Helper()

	root := t.TempDir()
	for _, dir := range dirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0755); err != nil {
			t.Fatalf("failed to create dir %s: %v", dir, err)
		}
	}
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create parent of %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return root
}

func visibleNames(tree *domain.FileTree) []string {
	var out []string
	for _, row := range tree.Flatten() {
		out = append(out, row.Node.Name)
	}
	return out
}

func TestBuildTree_SortsDirectoriesFirstThenName(t *testing.T) {
	root := setupTestTree(t, map[string]string{
		"a.txt":   "a",
		"b/c.txt": "c",
		"d.txt":   "d",
	})

	tree, err := NewRepository().BuildTree(root)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	want := []string{"b", "a.txt", "d.txt"}
	if got := visibleNames(tree); !reflect.DeepEqual(got, want) {
		t.Fatalf("visible = %v, want %v", got, want)
	}

	tree.Toggle(filepath.Join(root, "b"))
	want = []string{"b", "c.txt", "a.txt", "d.txt"}
	if got := visibleNames(tree); !reflect.DeepEqual(got, want) {
		t.Errorf("visible after toggle = %v, want %v", got, want)
	}
}

func TestBuildTree_OrdinalNameCompare(t *testing.T) {
	root := setupTestTree(t, map[string]string{
		"b.txt":  "",
		"B.txt":  "",
		"a.txt":  "",
		"Zdir/x": "",
		"adir/y": "",
		"_under": "",
		"10.txt": "",
		"9.txt":  "",
	})

	tree, err := NewRepository().BuildTree(root)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	want := []string{"Zdir", "adir", "10.txt", "9.txt", "B.txt", "_under", "a.txt", "b.txt"}
	if got := visibleNames(tree); !reflect.DeepEqual(got, want) {
		t.Errorf("visible = %v, want %v", got, want)
	}
}

func TestBuildTree_DirectoriesStartClosedAndOwnChildren(t *testing.T) {
	root := setupTestTree(t, map[string]string{
		"src/main.go":          "package main",
		"src/internal/util.go": "package internal",
	}, "empty")

	tree, err := NewRepository().BuildTree(root)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}

	src := tree.FindByPath(filepath.Join(root, "src"))
	if src == nil {
		t.Fatal("src not found")
	}
	if !src.IsDir() || src.IsOpen() {
		t.Errorf("src IsDir=%v IsOpen=%v, want dir and closed", src.IsDir(), src.IsOpen())
	}
	if len(src.Children) != 2 {
		t.Errorf("src children = %d, want 2", len(src.Children))
	}

	deep := tree.FindByPath(filepath.Join(root, "src", "internal", "util.go"))
	if deep == nil {
		t.Fatal("nested file not found in collapsed subtree")
	}
	if deep.IsDir() {
		t.Error("util.go should be a file")
	}

	empty := tree.FindByPath(filepath.Join(root, "empty"))
	if empty == nil || !empty.IsDir() {
		t.Fatal("empty directory should be a directory node")
	}
	if empty.Children == nil || len(empty.Children) != 0 {
		t.Errorf("empty children = %v, want empty non-nil slice", empty.Children)
	}
}

func TestBuildTree_RootIsNotListed(t *testing.T) {
	root := setupTestTree(t, map[string]string{"only.txt": "x"})

	tree, err := NewRepository().BuildTree(root)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	if tree.Root.Path != root {
		t.Errorf("root path = %q, want %q", tree.Root.Path, root)
	}
	if got := visibleNames(tree); !reflect.DeepEqual(got, []string{"only.txt"}) {
		t.Errorf("visible = %v, want [only.txt]", got)
	}
}

func TestBuildTree_RootMustBeDirectory(t *testing.T) {
	root := setupTestTree(t, map[string]string{"file.txt": "x"})

	_, err := NewRepository().BuildTree(filepath.Join(root, "file.txt"))
	if !errors.Is(err, domain.ErrNotDirectory) {
		t.Errorf("error = %v, want ErrNotDirectory", err)
	}

	_, err = NewRepository().BuildTree(filepath.Join(root, "missing"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want ErrNotExist", err)
	}
}

func TestBuildTree_SymlinkedDirectoryListsAsDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := setupTestTree(t, map[string]string{"real/inside.txt": "x"})
	if err := os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link")); err != nil {
		t.Fatalf("symlink failed: %v", err)
	}

	tree, err := NewRepository().BuildTree(root)
	if err != nil {
		t.Fatalf("BuildTree failed: %v", err)
	}
	link := tree.FindByPath(filepath.Join(root, "link"))
	if link == nil || !link.IsDir() {
		t.Fatal("link should be listed as a directory")
	}
	if len(link.Children) != 1 || link.Children[0].Name != "inside.txt" {
		t.Errorf("link children = %v, want [inside.txt]", link.Children)
	}
}

func TestBuildTree_SymlinkLoopFails(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := setupTestTree(t, nil, "sub")
	if err := os.Symlink(root, filepath.Join(root, "sub", "up")); err != nil {
		t.Fatalf("symlink failed: %v", err)
	}

	_, err := NewRepository().BuildTree(root)
	if !errors.Is(err, domain.ErrSymlinkLoop) {
		t.Errorf("error = %v, want ErrSymlinkLoop", err)
	}
}

func TestBuildTree_BrokenSymlinkFails(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := setupTestTree(t, map[string]string{"ok.txt": "x"})
	if err := os.Symlink(filepath.Join(root, "gone"), filepath.Join(root, "dangling")); err != nil {
		t.Fatalf("symlink failed: %v", err)
	}

	if _, err := NewRepository().BuildTree(root); err == nil {
		t.Error("expected error for dangling symlink")
	}
}

func TestBuildTree_UnreadableSubdirectoryFails(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	root := setupTestTree(t, map[string]string{"locked/secret.txt": "x"})
	locked := filepath.Join(root, "locked")
	if err := os.Chmod(locked, 0000); err != nil {
		t.Fatalf("chmod failed: %v", err)
	}
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	_, err := NewRepository().BuildTree(root)
	if !errors.Is(err, os.ErrPermission) {
		t.Errorf("error = %v, want ErrPermission", err)
	}
}

func TestReadFile(t *testing.T) {
	root := setupTestTree(t, map[string]string{"hello.txt": "héllo\nwörld\n"})
	repo := NewRepository()

	content, err := repo.ReadFile(filepath.Join(root, "hello.txt"))
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if content != "héllo\nwörld\n" {
		t.Errorf("content = %q", content)
	}

	if _, err := repo.ReadFile(filepath.Join(root, "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want ErrNotExist", err)
	}
}

func TestReadFile_RejectsInvalidUTF8(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "blob.bin")
	if err := os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x80}, 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if _, err := NewRepository().ReadFile(path); !errors.Is(err, domain.ErrNotText) {
		t.Errorf("error = %v, want ErrNotText", err)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/projects")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	if want := filepath.Join(home, "projects"); got != want {
		t.Errorf("ExpandPath = %q, want %q", got, want)
	}

	got, err = ExpandPath("relative")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("ExpandPath(relative) = %q, want absolute", got)
	}
}
