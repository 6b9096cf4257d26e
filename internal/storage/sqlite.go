package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// sqliteTimeLayout is how CURRENT_TIMESTAMP values come back when the
// driver does not convert them itself.
const sqliteTimeLayout = "2006-01-02 15:04:05"

// schema is applied in order; PRAGMA user_version records how many ran.
var schema = []string{
	`CREATE TABLE scores (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id    TEXT    NOT NULL,
		score      INTEGER NOT NULL,
		lines      INTEGER NOT NULL DEFAULT 0,
		level      INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX scores_by_game ON scores(game_id, score DESC, id)`,
}

const (
	insertScore = `INSERT INTO scores (game_id, score, lines, level) VALUES (?, ?, ?, ?)`
	selectTop   = `SELECT id, game_id, score, lines, level, created_at FROM scores
		WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`
	selectBest  = `SELECT COALESCE(MAX(score), 0) FROM scores WHERE game_id = ?`
	selectStats = `SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		COALESCE(SUM(score), 0), MAX(created_at) FROM scores WHERE game_id = ?`
	deleteGame = `DELETE FROM scores WHERE game_id = ?`
)

// SQLiteStore keeps scores in a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

var _ ScoreStore = (*SQLiteStore)(nil)

// OpenSQLite opens the database at path, creating the file, its parent
// directories and the schema as needed. A leading ~ is the home directory.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory for %s: %w", path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open %s: %w", path, err)
	}
	// One writer at a time; SQLite would return SQLITE_BUSY otherwise.
	db.SetMaxOpenConns(1)

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot prepare %s: %w", path, err)
	}
	return &SQLiteStore{db: db}, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand %s: %w", path, err)
	}
	return filepath.Join(home, path[1:]), nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	var version int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return err
	}
	if version >= len(schema) {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range schema[version:] {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	// PRAGMA does not take bind parameters.
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", len(schema))); err != nil {
		return err
	}
	return tx.Commit()
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SaveScore inserts e and returns the new row ID.
func (s *SQLiteStore) SaveScore(ctx context.Context, e ScoreEntry) (int64, error) {
	res, err := s.db.ExecContext(ctx, insertScore, e.GameID, e.Score, e.Lines, e.Level)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	return res.LastInsertId()
}

// TopScores returns the best entries. Equal scores keep insertion order.
func (s *SQLiteStore) TopScores(ctx context.Context, gameID string, limit int) ([]ScoreEntry, error) {
	rows, err := s.db.QueryContext(ctx, selectTop, gameID, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var (
			e       ScoreEntry
			created any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Lines, &e.Level, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot read score: %w", err)
		}
		e.CreatedAt = parseTime(created)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return out, nil
}

// HighScore returns the best score of gameID, or 0.
func (s *SQLiteStore) HighScore(ctx context.Context, gameID string) (int, error) {
	var best int
	if err := s.db.QueryRowContext(ctx, selectBest, gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return best, nil
}

// Stats aggregates all entries of gameID. An aggregate always yields one row.
func (s *SQLiteStore) Stats(ctx context.Context, gameID string) (GameStats, error) {
	st := GameStats{GameID: gameID}
	var last any
	err := s.db.QueryRowContext(ctx, selectStats, gameID).
		Scan(&st.GamesCount, &st.HighScore, &st.AvgScore, &st.TotalScore, &last)
	if err != nil {
		return GameStats{}, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	st.LastPlayed = parseTime(last)
	return st, nil
}

// ClearScores deletes every entry of gameID.
func (s *SQLiteStore) ClearScores(ctx context.Context, gameID string) error {
	if _, err := s.db.ExecContext(ctx, deleteGame, gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// parseTime accepts what the driver returns for DATETIME columns.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if t, err := time.Parse(sqliteTimeLayout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}
