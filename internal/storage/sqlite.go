// Package storage provides the SQLite-backed farm journal: play sessions
// and the plants, harvests, trades and wins recorded during them.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-farm/internal/farm"
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for the journal.
type Store struct {
	db *sql.DB
}

// EventEntry is one journal row.
type EventEntry struct {
	ID        int64
	SessionID string
	Player    string
	Kind      farm.EventKind
	Detail    string
	GoldDelta int
	CreatedAt time.Time
}

// Session is one play session.
type Session struct {
	ID        string
	Player    string
	StartedAt time.Time
	EndedAt   time.Time // Zero while the session is open
}

// PlayerStats aggregates a player's journal.
type PlayerStats struct {
	Player     string
	Sessions   int
	Plants     int
	Harvests   int
	Trades     int
	Wins       int
	GoldEarned int
	GoldSpent  int
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			player TEXT NOT NULL,
			started_at DATETIME NOT NULL,
			ended_at DATETIME
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_player ON sessions(player);

		CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			player TEXT NOT NULL,
			kind TEXT NOT NULL,
			detail TEXT NOT NULL DEFAULT '',
			gold_delta INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_events_player ON events(player, id DESC);
		CREATE INDEX IF NOT EXISTS idx_events_kind ON events(kind);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// StartSession opens a new play session and returns its ID.
func (s *Store) StartSession(player string, at time.Time) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		"INSERT INTO sessions (id, player, started_at) VALUES (?, ?, ?)",
		id, player, formatTime(at),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot start session: %w", err)
	}
	return id, nil
}

// EndSession marks a session as finished.
func (s *Store) EndSession(id string, at time.Time) error {
	res, err := s.db.Exec("UPDATE sessions SET ended_at = ? WHERE id = ?", formatTime(at), id)
	if err != nil {
		return fmt.Errorf("storage: cannot end session: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("storage: unknown session %s", id)
	}
	return nil
}

// SessionByID returns a session, or nil when it does not exist.
func (s *Store) SessionByID(id string) (*Session, error) {
	var sess Session
	var started, ended any
	err := s.db.QueryRow(
		"SELECT id, player, started_at, ended_at FROM sessions WHERE id = ?", id,
	).Scan(&sess.ID, &sess.Player, &started, &ended)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	sess.StartedAt = parseTime(started)
	sess.EndedAt = parseTime(ended)
	return &sess, nil
}

// RecordEvents appends game events to the journal in one transaction.
func (s *Store) RecordEvents(sessionID, player string, events []farm.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.Prepare(
		`INSERT INTO events (session_id, player, kind, detail, gold_delta, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range events {
		if _, err := stmt.Exec(sessionID, player, string(e.Kind), e.Detail, e.GoldDelta, formatTime(e.At)); err != nil {
			return fmt.Errorf("storage: cannot record event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit events: %w", err)
	}
	return nil
}

// RecentEvents retrieves a player's latest events, newest first.
// An empty player returns events for everyone.
func (s *Store) RecentEvents(player string, limit int) ([]EventEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.queryEvents(
		`SELECT id, session_id, player, kind, detail, gold_delta, created_at
		 FROM events
		 WHERE (? = '' OR player = ?)
		 ORDER BY id DESC
		 LIMIT ?`,
		player, player, limit,
	)
}

// Wins retrieves a player's trophy purchases, newest first.
func (s *Store) Wins(player string) ([]EventEntry, error) {
	return s.queryEvents(
		`SELECT id, session_id, player, kind, detail, gold_delta, created_at
		 FROM events
		 WHERE kind = ? AND (? = '' OR player = ?)
		 ORDER BY id DESC`,
		string(farm.EventTrophy), player, player,
	)
}

func (s *Store) queryEvents(query string, args ...any) ([]EventEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query events: %w", err)
	}
	defer rows.Close()

	var entries []EventEntry
	for rows.Next() {
		var e EventEntry
		var kind string
		var createdAt any
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Player, &kind, &e.Detail, &e.GoldDelta, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Kind = farm.EventKind(kind)
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats retrieves aggregated statistics for a player.
func (s *Store) Stats(player string) (*PlayerStats, error) {
	stats := &PlayerStats{Player: player}

	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM sessions WHERE player = ?", player,
	).Scan(&stats.Sessions)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count sessions: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT
			COALESCE(SUM(CASE WHEN kind = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN kind = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN kind IN (?, ?) THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN kind = ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN gold_delta > 0 THEN gold_delta ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN gold_delta < 0 THEN -gold_delta ELSE 0 END), 0),
			MAX(created_at)
		 FROM events WHERE player = ?`,
		string(farm.EventPlant), string(farm.EventHarvest),
		string(farm.EventTrade), string(farm.EventBoost), string(farm.EventTrophy),
		player,
	).Scan(&stats.Plants, &stats.Harvests, &stats.Trades, &stats.Wins,
		&stats.GoldEarned, &stats.GoldSpent, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// ClearPlayer deletes a player's sessions and events.
func (s *Store) ClearPlayer(player string) error {
	if _, err := s.db.Exec("DELETE FROM events WHERE player = ?", player); err != nil {
		return fmt.Errorf("storage: cannot clear events: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM sessions WHERE player = ?", player); err != nil {
		return fmt.Errorf("storage: cannot clear sessions: %w", err)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
