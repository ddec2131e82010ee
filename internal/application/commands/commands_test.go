package commands

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"grove/internal/application"
	"grove/internal/domain"
	"grove/internal/ports"
)

type stubFS struct {
	tree  *domain.FileTree
	files map[string]string
	err   error
}

func (s *stubFS) BuildTree(rootPath string) (*domain.FileTree, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tree, nil
}

func (s *stubFS) ReadFile(path string) (string, error) {
	content, ok := s.files[path]
	if !ok {
		return "", fs.ErrNotExist
	}
	return content, nil
}

type memoryStore struct {
	sessions map[string]*ports.Session
	loadErr  error
}

func (m *memoryStore) Open() error  { return nil }
func (m *memoryStore) Close() error { return nil }

func (m *memoryStore) Load(rootPath string) (*ports.Session, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.sessions[rootPath], nil
}

func (m *memoryStore) Save(session *ports.Session) error {
	if m.sessions == nil {
		m.sessions = make(map[string]*ports.Session)
	}
	m.sessions[session.RootPath] = session
	return nil
}

func sampleTree() *domain.FileTree {
	return domain.NewFileTree(domain.NewDir("r", "/r", []*domain.FileNode{
		domain.NewDir("b", "/r/b", []*domain.FileNode{
			domain.NewDir("e", "/r/b/e", []*domain.FileNode{
				domain.NewFile("f.txt", "/r/b/e/f.txt"),
			}),
			domain.NewFile("c.txt", "/r/b/c.txt"),
		}),
		domain.NewFile("a.txt", "/r/a.txt"),
	}))
}

func testPanel() application.Panel {
	return application.Panel{Width: 20, Step: 5, Min: 10, Max: 90}
}

func TestBuildTreeCommand(t *testing.T) {
	src := &stubFS{tree: sampleTree()}
	tree, err := NewBuildTreeCommand(src, "/r").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if tree.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tree.Len())
	}
}

func TestBuildTreeCommand_Error(t *testing.T) {
	src := &stubFS{err: domain.ErrNotDirectory}
	_, err := NewBuildTreeCommand(src, "/r").Execute(context.Background())
	if !errors.Is(err, domain.ErrNotDirectory) {
		t.Errorf("error = %v, want wrapping ErrNotDirectory", err)
	}
	if err != nil && !strings.Contains(err.Error(), "/r") {
		t.Errorf("error %q does not name the root", err)
	}
}

func TestBuildTreeCommand_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBuildTreeCommand(&stubFS{tree: sampleTree()}, "/r").Execute(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestReadFileCommand(t *testing.T) {
	src := &stubFS{files: map[string]string{"/r/a.txt": "alpha"}}

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr error
	}{
		{name: "existing file", path: "/r/a.txt", want: "alpha"},
		{name: "missing file", path: "/r/zzz", wantErr: fs.ErrNotExist},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewReadFileCommand(src, tt.path).Execute(context.Background())
			if tt.wantErr != nil {
				var openErr *application.OpenError
				if !errors.As(err, &openErr) || !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want OpenError wrapping %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadFileCommand_Validate(t *testing.T) {
	_, err := NewReadFileCommand(&stubFS{}, "  ").Execute(context.Background())
	var ve *application.ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("error = %v, want ValidationError", err)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	store := &memoryStore{}
	ctx := context.Background()

	state := application.NewState(sampleTree(), testPanel())
	state.Tree.Toggle("/r/b")
	state.Tree.Toggle("/r/b/e")
	state.SetPanelWidth(35)

	if err := NewSaveSessionCommand(store, state, "/r").Execute(ctx); err != nil {
		t.Fatalf("save: %v", err)
	}

	fresh := application.NewState(sampleTree(), testPanel())
	result, err := NewRestoreSessionCommand(store, fresh, "/r").Execute(ctx)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !result.Found || result.Reopened != 2 || result.Missing != 0 {
		t.Errorf("result = %+v", result)
	}
	if fresh.Panel.Width != 35 {
		t.Errorf("width = %d, want 35", fresh.Panel.Width)
	}
	if got := fresh.Tree.Len(); got != 5 {
		t.Errorf("visible rows = %d, want 5", got)
	}
}

func TestRestoreSession_MissingAndClamped(t *testing.T) {
	store := &memoryStore{sessions: map[string]*ports.Session{
		"/r": {RootPath: "/r", PanelWidth: 200, OpenDirs: []string{"/r/gone", "/r/a.txt", "/r/b"}},
	}}
	state := application.NewState(sampleTree(), testPanel())

	result, err := NewRestoreSessionCommand(store, state, "/r").Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if result.Reopened != 1 || result.Missing != 2 {
		t.Errorf("result = %+v", result)
	}
	if state.Panel.Width != 90 {
		t.Errorf("width = %d, want 90 (clamped)", state.Panel.Width)
	}
}

func TestRestoreSession_None(t *testing.T) {
	state := application.NewState(sampleTree(), testPanel())
	result, err := NewRestoreSessionCommand(&memoryStore{}, state, "/r").Execute(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if result.Found {
		t.Error("Found = true with empty store")
	}
	if state.Panel.Width != 20 {
		t.Errorf("width = %d, want 20", state.Panel.Width)
	}
}

func TestRestoreSession_LoadError(t *testing.T) {
	boom := errors.New("disk on fire")
	state := application.NewState(sampleTree(), testPanel())
	_, err := NewRestoreSessionCommand(&memoryStore{loadErr: boom}, state, "/r").Execute(context.Background())
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want wrapping %v", err, boom)
	}
}
