package storage

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cplxtris"

func seqKey() string {
	return keyPrefix + ":score_seq"
}

func entryKey(id int64) string {
	return fmt.Sprintf("%s:score:%d", keyPrefix, id)
}

// boardKey holds a sorted set of entry IDs ranked by score.
func boardKey(gameID string) string {
	return fmt.Sprintf("%s:board:%s", keyPrefix, gameID)
}

func statsKey(gameID string) string {
	return fmt.Sprintf("%s:stats:%s", keyPrefix, gameID)
}

// RedisConfig holds connection settings for RedisStore.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Timeout  time.Duration // connect check
}

// DefaultRedisConfig returns settings for a local server.
func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Addr:    "localhost:6379",
		Timeout: 5 * time.Second,
	}
}

// RedisStore keeps scores in Redis. Each entry is a hash; each game has a
// sorted set of entry IDs and a hash of running totals.
type RedisStore struct {
	client *redis.Client
}

var _ ScoreStore = (*RedisStore)(nil)

// OpenRedis connects to the server in cfg and checks it responds.
func OpenRedis(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRedisConfig().Timeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("storage: cannot connect to redis at %s: %w", cfg.Addr, err)
	}
	return &RedisStore{client: client}, nil
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Close closes the client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// SaveScore stores e and ranks it on the game's board.
func (s *RedisStore) SaveScore(ctx context.Context, e ScoreEntry) (int64, error) {
	id, err := s.client.Incr(ctx, seqKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot allocate score id: %w", err)
	}

	now := time.Now().UTC()
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, entryKey(id),
			"game", e.GameID,
			"score", e.Score,
			"lines", e.Lines,
			"level", e.Level,
			"created", now.UnixNano(),
		)
		pipe.ZAdd(ctx, boardKey(e.GameID), redis.Z{Score: float64(e.Score), Member: id})
		pipe.HIncrBy(ctx, statsKey(e.GameID), "count", 1)
		pipe.HIncrBy(ctx, statsKey(e.GameID), "total", int64(e.Score))
		pipe.HSet(ctx, statsKey(e.GameID), "last", now.UnixNano())
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	return id, nil
}

// TopScores returns the best entries of gameID. Equal scores keep
// insertion order, as in SQLiteStore.
func (s *RedisStore) TopScores(ctx context.Context, gameID string, limit int) ([]ScoreEntry, error) {
	ids, err := s.rankedIDs(ctx, gameID, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	cmds := make([]*redis.MapStringStringCmd, len(ids))
	_, err = s.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, id := range ids {
			cmds[i] = pipe.HGetAll(ctx, entryKey(id))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load scores: %w", err)
	}

	entries := make([]ScoreEntry, 0, len(ids))
	for i, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}
		entries = append(entries, entryFromHash(ids[i], fields))
	}
	return entries, nil
}

// rankedIDs returns up to limit entry IDs by score, highest first, with ties
// in ascending ID order. The sorted set breaks ties by member string, so
// every member sharing the lowest returned score is fetched and re-sorted.
func (s *RedisStore) rankedIDs(ctx context.Context, gameID string, limit int) ([]int64, error) {
	top, err := s.client.ZRevRangeWithScores(ctx, boardKey(gameID), 0, int64(limit-1)).Result()
	if err != nil || len(top) == 0 {
		return nil, err
	}

	cutoff := top[len(top)-1].Score
	members := make([]redis.Z, 0, len(top))
	for _, z := range top {
		if z.Score > cutoff {
			members = append(members, z)
		}
	}
	bound := strconv.FormatFloat(cutoff, 'f', -1, 64)
	tied, err := s.client.ZRangeByScore(ctx, boardKey(gameID), &redis.ZRangeBy{Min: bound, Max: bound}).Result()
	if err != nil {
		return nil, err
	}
	for _, m := range tied {
		members = append(members, redis.Z{Score: cutoff, Member: m})
	}

	type ranked struct {
		id    int64
		score float64
	}
	out := make([]ranked, 0, len(members))
	for _, z := range members {
		raw := fmt.Sprint(z.Member)
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad entry id %q: %w", raw, err)
		}
		out = append(out, ranked{id: id, score: z.Score})
	}
	slices.SortFunc(out, func(a, b ranked) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})

	ids := make([]int64, 0, min(limit, len(out)))
	for _, r := range out[:min(limit, len(out))] {
		ids = append(ids, r.id)
	}
	return ids, nil
}

// HighScore returns the best score of gameID.
func (s *RedisStore) HighScore(ctx context.Context, gameID string) (int, error) {
	top, err := s.client.ZRevRangeWithScores(ctx, boardKey(gameID), 0, 0).Result()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if len(top) == 0 {
		return 0, nil
	}
	return int(top[0].Score), nil
}

// Stats reads the running totals of gameID.
func (s *RedisStore) Stats(ctx context.Context, gameID string) (GameStats, error) {
	stats := GameStats{GameID: gameID}

	fields, err := s.client.HGetAll(ctx, statsKey(gameID)).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return GameStats{}, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	if len(fields) == 0 {
		return stats, nil
	}

	stats.GamesCount, _ = strconv.Atoi(fields["count"])
	stats.TotalScore, _ = strconv.ParseInt(fields["total"], 10, 64)
	if last, err := strconv.ParseInt(fields["last"], 10, 64); err == nil {
		stats.LastPlayed = time.Unix(0, last).UTC()
	}
	if stats.GamesCount > 0 {
		stats.AvgScore = float64(stats.TotalScore) / float64(stats.GamesCount)
	}

	stats.HighScore, err = s.HighScore(ctx, gameID)
	if err != nil {
		return GameStats{}, err
	}
	return stats, nil
}

// ClearScores removes the board, totals and entries of gameID.
func (s *RedisStore) ClearScores(ctx context.Context, gameID string) error {
	ids, err := s.client.ZRange(ctx, boardKey(gameID), 0, -1).Result()
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}

	keys := []string{boardKey(gameID), statsKey(gameID)}
	for _, raw := range ids {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			keys = append(keys, entryKey(id))
		}
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

func entryFromHash(id int64, fields map[string]string) ScoreEntry {
	e := ScoreEntry{ID: id, GameID: fields["game"]}
	e.Score, _ = strconv.Atoi(fields["score"])
	e.Lines, _ = strconv.Atoi(fields["lines"])
	e.Level, _ = strconv.Atoi(fields["level"])
	if created, err := strconv.ParseInt(fields["created"], 10, 64); err == nil {
		e.CreatedAt = time.Unix(0, created).UTC()
	}
	return e
}
