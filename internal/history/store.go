// Package history keeps a SQLite log of finished downloads.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/ytget/tubedl/internal/logger"
	"github.com/ytget/tubedl/internal/model"
)

// DefaultRecentLimit is the number of entries returned when no limit is given
const DefaultRecentLimit = 20

// Entry is one recorded download
type Entry struct {
	ID          string
	URL         string
	Kind        model.Kind
	Destination string
	State       model.RunState
	Failure     model.FailureKind
	Message     string
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Store records finished downloads in SQLite
type Store struct {
	db  *sql.DB
	log zerolog.Logger
}

// Open opens (and creates if needed) the history database at dbPath
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma %s: %w", pragma, err)
		}
	}

	store := &Store{db: db, log: logger.GetLogger("history")}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS downloads (
			id TEXT PRIMARY KEY,
			url TEXT NOT NULL,
			kind TEXT NOT NULL,
			destination TEXT NOT NULL DEFAULT '',
			state TEXT NOT NULL,
			failure TEXT NOT NULL DEFAULT '',
			message TEXT NOT NULL DEFAULT '',
			started_at INTEGER NOT NULL,
			finished_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_downloads_finished ON downloads(finished_at)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Record stores a finished task. Recording the same task twice replaces the
// earlier entry.
func (s *Store) Record(ctx context.Context, task *model.DownloadTask) error {
	if task == nil || task.ID() == "" {
		return fmt.Errorf("cannot record a task without an ID")
	}
	if !task.State.IsFinished() {
		return fmt.Errorf("cannot record download %s in state %s", task.ID(), task.State)
	}

	finished := task.FinishedAt
	if finished.IsZero() {
		finished = time.Now()
	}

	query := `
		INSERT OR REPLACE INTO downloads (
			id, url, kind, destination, state, failure, message, started_at, finished_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		task.ID(), task.Request.URL, string(task.Request.Kind), task.Request.Destination,
		string(task.State), string(task.Failure), task.LastError,
		task.StartedAt.UnixMilli(), finished.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to record download %s: %w", task.ID(), err)
	}
	s.log.Debug().Str("op", "history/record").Str("id", task.ID()).Str("state", string(task.State)).Msg("Recorded download")
	return nil
}

// Recent returns up to limit entries, newest first
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	query := `
		SELECT id, url, kind, destination, state, failure, message, started_at, finished_at
		FROM downloads
		ORDER BY finished_at DESC, rowid DESC
		LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e                 Entry
			kind, state, fail string
			started, finished int64
		)
		if err := rows.Scan(&e.ID, &e.URL, &kind, &e.Destination, &state, &fail, &e.Message, &started, &finished); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.Kind = model.Kind(kind)
		e.State = model.RunState(state)
		e.Failure = model.FailureKind(fail)
		e.StartedAt = time.UnixMilli(started)
		e.FinishedAt = time.UnixMilli(finished)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
