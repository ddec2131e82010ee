package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"grove/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Store implements ports.SessionStore using SQLite
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements SessionStore
var _ ports.SessionStore = (*Store)(nil)

// NewStore creates a store in the XDG data directory
func NewStore() *Store {
	return &Store{dbPath: databasePath()}
}

// NewStoreAt creates a store backed by the given database file
func NewStoreAt(dbPath string) *Store {
	return &Store{dbPath: dbPath}
}

// Path returns the database file path
func (s *Store) Path() string {
	return s.dbPath
}

// Open creates the database and schema if needed
func (s *Store) Open() error {
	if err := os.MkdirAll(filepath.Dir(s.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS sessions (
			root_path TEXT PRIMARY KEY,
			panel_width INTEGER NOT NULL,
			updated_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS open_dirs (
			root_path TEXT NOT NULL,
			path TEXT NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (root_path, path)
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if _, err := db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}
	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns the session saved for rootPath, or nil if there is none
func (s *Store) Load(rootPath string) (*ports.Session, error) {
	session := &ports.Session{RootPath: rootPath}

	err := s.db.QueryRow(`SELECT panel_width FROM sessions WHERE root_path = ?`, rootPath).
		Scan(&session.PanelWidth)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	rows, err := s.db.Query(`SELECT path FROM open_dirs WHERE root_path = ? ORDER BY position`, rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to query open dirs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		session.OpenDirs = append(session.OpenDirs, path)
	}
	return session, rows.Err()
}

// Save replaces the stored session for session.RootPath in one transaction
func (s *Store) Save(session *ports.Session) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT OR REPLACE INTO sessions (root_path, panel_width, updated_at)
		VALUES (?, ?, ?)
	`, session.RootPath, session.PanelWidth, time.Now().Unix()); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM open_dirs WHERE root_path = ?`, session.RootPath); err != nil {
		return fmt.Errorf("failed to clear open dirs: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO open_dirs (root_path, path, position) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, path := range session.OpenDirs {
		if _, err := stmt.Exec(session.RootPath, path, i); err != nil {
			return fmt.Errorf("failed to save open dir %s: %w", path, err)
		}
	}

	return tx.Commit()
}

// Forget deletes the stored session for rootPath
func (s *Store) Forget(rootPath string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM open_dirs WHERE root_path = ?`, rootPath); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM sessions WHERE root_path = ?`, rootPath); err != nil {
		return err
	}
	return tx.Commit()
}

// databasePath returns the path for the SQLite database
func databasePath() string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "grove", "sessions.db")
}
