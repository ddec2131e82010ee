package ports

// Session is the UI state remembered for one root directory
type Session struct {
	RootPath   string
	PanelWidth int
	OpenDirs   []string
}

// SessionStore persists sessions between runs
type SessionStore interface {
	Open() error
	Close() error

	// Load returns the session for rootPath, or nil if none was saved
	Load(rootPath string) (*Session, error)
	Save(session *Session) error
}
