// Package storage persists finished games and serves the leaderboards.
// SQLite is the default backend; Redis can be used to share a leaderboard
// between machines.
package storage

import (
	"context"
	"time"
)

// DefaultLimit is used when a non-positive limit is requested.
const DefaultLimit = 10

// ScoreEntry is one finished game.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	Lines     int
	Level     int
	CreatedAt time.Time
}

// GameStats aggregates all entries of one game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

//go:generate mockgen -destination=mock/mock_store.go -package=storagemock github.com/vovakirdan/cplxtris/internal/storage ScoreStore

// ScoreStore is implemented by every backend.
type ScoreStore interface {
	// SaveScore records e and returns its ID. e.ID and e.CreatedAt are ignored.
	SaveScore(ctx context.Context, e ScoreEntry) (int64, error)

	// TopScores returns up to limit entries, best first.
	TopScores(ctx context.Context, gameID string, limit int) ([]ScoreEntry, error)

	// HighScore returns the best score, or 0 when nothing was recorded.
	HighScore(ctx context.Context, gameID string) (int, error)

	// Stats aggregates all entries of gameID.
	Stats(ctx context.Context, gameID string) (GameStats, error)

	// ClearScores removes every entry of gameID.
	ClearScores(ctx context.Context, gameID string) error

	Close() error
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
