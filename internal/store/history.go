// Package store provides a SQLite-backed history of question/answer exchanges.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // register sqlite driver
)

// History records past exchanges.
type History struct {
	db *sql.DB
}

// Exchange is one stored question/answer pair.
type Exchange struct {
	ID       int64
	AskedAt  time.Time
	Backend  string
	Persona  string
	Question string
	Answer   string
	Income   float64
}

// DefaultPath returns the history database location next to the config file.
func DefaultPath(configDir string) string {
	return filepath.Join(configDir, "history.db")
}

// Open opens or creates the history database at the given path.
func Open(dbPath string) (*History, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening history db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &History{db: db}, nil
}

// Close closes the history database.
func (h *History) Close() error {
	return h.db.Close()
}

// SaveExchange stores one exchange.
func (h *History) SaveExchange(e Exchange) error {
	askedAt := e.AskedAt
	if askedAt.IsZero() {
		askedAt = time.Now()
	}

	_, err := h.db.Exec(`INSERT INTO exchanges
		(asked_at, backend, persona, question, answer, income)
		VALUES (?, ?, ?, ?, ?, ?)`,
		askedAt.UTC().Format(time.RFC3339), e.Backend, e.Persona, e.Question, e.Answer, e.Income,
	)
	return err
}

// Recent returns the newest n exchanges, most recent first.
func (h *History) Recent(n int) ([]Exchange, error) {
	rows, err := h.db.Query(`SELECT id, asked_at, backend, persona, question, answer, income
		FROM exchanges ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Exchange
	for rows.Next() {
		var e Exchange
		var askedStr string
		if err := rows.Scan(&e.ID, &askedStr, &e.Backend, &e.Persona, &e.Question, &e.Answer, &e.Income); err != nil {
			return nil, err
		}
		e.AskedAt, _ = time.Parse(time.RFC3339, askedStr)
		out = append(out, e)
	}
	return out, rows.Err()
}

// Count returns the number of stored exchanges.
func (h *History) Count() (int, error) {
	var count int
	err := h.db.QueryRow("SELECT COUNT(*) FROM exchanges").Scan(&count)
	return count, err
}
