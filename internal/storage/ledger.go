// Package storage keeps a SQLite ledger of catches and hazard hits.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The ledger lives in memory for play; simulate can write it to a file.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/deepline/internal/core"
)

// MemoryPath opens a private in-memory ledger.
const MemoryPath = ":memory:"

// Ledger records gameplay events per session.
type Ledger struct {
	db *sql.DB
}

// SpeciesTally aggregates events for one species.
type SpeciesTally struct {
	Species  string
	Kind     string // core.EventKind name: "positive" or "negative"
	Count    int
	Total    int // Sum of applied score deltas
	AvgDepth float64
}

// SessionStats aggregates finished sessions.
type SessionStats struct {
	Sessions  int
	HighScore int
	LowScore  int
	AvgScore  float64
	Catches   int
	Hits      int
}

// OpenLedger creates or opens a ledger. An empty path or MemoryPath keeps
// everything in memory; otherwise parent directories are created.
func OpenLedger(path string) (*Ledger, error) {
	memory := path == "" || path == MemoryPath
	dsn := MemoryPath
	if !memory {
		// Expand ~ to home directory
		if strings.HasPrefix(path, "~") {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
			}
			path = filepath.Join(home, path[1:])
		}
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
		}
		dsn = path
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open ledger: %w", err)
	}
	if memory {
		// Every pooled connection would get its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to ledger: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return l, nil
}

// migrate creates the schema if it doesn't exist.
func (l *Ledger) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			score INTEGER,
			catches INTEGER,
			hits INTEGER,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id INTEGER NOT NULL REFERENCES sessions(id),
			species TEXT NOT NULL,
			kind TEXT NOT NULL,
			value INTEGER NOT NULL,
			depth INTEGER NOT NULL,
			at_ms INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id);
	`
	_, err := l.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// BeginSession opens a new session row and returns its ID.
func (l *Ledger) BeginSession(seed int64) (int64, error) {
	res, err := l.db.Exec("INSERT INTO sessions (seed) VALUES (?)", seed)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Record appends the events of one tick in a single transaction.
func (l *Ledger) Record(sessionID int64, events []core.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := l.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	stmt, err := tx.Prepare(
		`INSERT INTO events (session_id, species, kind, value, depth, at_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, ev := range events {
		if _, err := stmt.Exec(sessionID, ev.Label, ev.Kind.String(), ev.Value, ev.Depth, ev.AtMillis); err != nil {
			return fmt.Errorf("storage: cannot record event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit events: %w", err)
	}
	return nil
}

// FinishSession stores the final score line of a session.
func (l *Ledger) FinishSession(sessionID int64, state core.GameState) error {
	_, err := l.db.Exec(
		"UPDATE sessions SET score = ?, catches = ?, hits = ? WHERE id = ?",
		state.Score, state.Catches, state.Hits, sessionID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot finish session: %w", err)
	}
	return nil
}

// Breakdown returns per-species tallies for one session.
// Catches come first, each group ordered by total descending.
func (l *Ledger) Breakdown(sessionID int64) ([]SpeciesTally, error) {
	return l.tallies(
		`SELECT species, kind, COUNT(*), SUM(value), AVG(depth)
		 FROM events
		 WHERE session_id = ?
		 GROUP BY species, kind
		 ORDER BY kind DESC, SUM(value) DESC, species`,
		sessionID,
	)
}

// BreakdownAll returns per-species tallies across every session.
func (l *Ledger) BreakdownAll() ([]SpeciesTally, error) {
	return l.tallies(
		`SELECT species, kind, COUNT(*), SUM(value), AVG(depth)
		 FROM events
		 GROUP BY species, kind
		 ORDER BY kind DESC, SUM(value) DESC, species`,
	)
}

func (l *Ledger) tallies(query string, args ...any) ([]SpeciesTally, error) {
	rows, err := l.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query breakdown: %w", err)
	}
	defer rows.Close()

	var out []SpeciesTally
	for rows.Next() {
		var t SpeciesTally
		if err := rows.Scan(&t.Species, &t.Kind, &t.Count, &t.Total, &t.AvgDepth); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// Stats aggregates all finished sessions.
func (l *Ledger) Stats() (SessionStats, error) {
	var s SessionStats
	err := l.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(MIN(score), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(catches), 0), COALESCE(SUM(hits), 0)
		 FROM sessions
		 WHERE score IS NOT NULL`,
	).Scan(&s.Sessions, &s.HighScore, &s.LowScore, &s.AvgScore, &s.Catches, &s.Hits)
	if err != nil {
		return SessionStats{}, fmt.Errorf("storage: cannot get session stats: %w", err)
	}
	return s, nil
}
