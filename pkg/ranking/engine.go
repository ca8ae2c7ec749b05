// Package ranking implements the score-aggregation-and-ranking engine: the
// atomic submission flow, the top-N and single-player rank reads, and the
// read-through caching in front of them.
package ranking

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/AccelByte/extend-leaderboard-common/pkg/cache"
	"github.com/AccelByte/extend-leaderboard-common/pkg/config"
	"github.com/AccelByte/extend-leaderboard-common/pkg/directory"
	"github.com/AccelByte/extend-leaderboard-common/pkg/domain"
	"github.com/AccelByte/extend-leaderboard-common/pkg/errors"
	"github.com/AccelByte/extend-leaderboard-common/pkg/metrics"
	"github.com/AccelByte/extend-leaderboard-common/pkg/repository"
)

// Engine is the ranking engine. It owns the consistency between the ledger
// and the aggregate store (submissions commit both or neither) and the
// freshness of the read caches (invalidated after every commit that could
// change them, expired by TTL otherwise).
type Engine struct {
	repo    repository.LeaderboardRepository
	players directory.PlayerDirectory
	cache   cache.ResultCache
	metrics *metrics.Metrics
	logger  *slog.Logger

	topN        int
	cacheTTL    time.Duration
	defaultMode string
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithMetrics attaches Prometheus instrumentation to the engine.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// NewEngine creates a ranking engine. All collaborators are injected: the
// durable store, the player directory, and a best-effort result cache (use
// cache.NewNoopResultCache to run without caching).
func NewEngine(
	repo repository.LeaderboardRepository,
	players directory.PlayerDirectory,
	resultCache cache.ResultCache,
	cfg *config.Config,
	logger *slog.Logger,
	opts ...Option,
) *Engine {
	e := &Engine{
		repo:        repo,
		players:     players,
		cache:       resultCache,
		logger:      logger,
		topN:        cfg.TopN,
		cacheTTL:    cfg.CacheTTL(),
		defaultMode: cfg.DefaultGameMode,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// SubmitScore records a game-session score for a player.
//
// Inside a single transaction it appends the session to the ledger, folds the
// score into the player's aggregate total, and recomputes this player's rank
// (count of strictly greater totals, plus one). Any failure rolls the whole
// transaction back; the ledger and aggregate store are never left
// inconsistent with each other.
//
// Cache entries that the commit made stale are invalidated only after the
// commit, so a concurrent reader cannot repopulate the cache with
// pre-submission data that outlives its TTL unnecessarily.
func (e *Engine) SubmitScore(ctx context.Context, userID int64, score int, gameMode string) (*domain.SubmitResult, error) {
	start := time.Now()

	if userID <= 0 {
		return nil, errors.ErrInvalidInput("user_id", "must be positive")
	}
	if score <= 0 {
		return nil, errors.ErrInvalidInput("score", "must be positive")
	}

	mode := gameMode
	if mode == "" {
		mode = e.defaultMode
	}
	if !domain.ValidGameMode(mode) {
		return nil, errors.ErrInvalidInput("game_mode", fmt.Sprintf("must be at most %d characters", domain.MaxGameModeLength))
	}

	result, err := e.submit(ctx, userID, score, mode)
	if err != nil {
		if errors.IsRetryable(err) {
			e.metrics.SubmissionFailed()
			e.logger.Error("score submission failed",
				"user_id", userID,
				"score", score,
				"error", err,
			)
		}
		return nil, err
	}

	// The commit may have changed the top-N list and did change this
	// player's rank entry. Invalidation is issued strictly after commit.
	e.cache.Invalidate(ctx, cache.TopNKey(e.topN), cache.RankKey(userID))

	e.metrics.SubmissionRecorded()
	e.metrics.ObserveDuration(metrics.OpSubmit, time.Since(start))
	e.logger.Info("score submitted",
		"user_id", userID,
		"score", score,
		"game_mode", mode,
		"new_total", result.NewTotalScore,
		"new_rank", result.NewRank,
	)

	return result, nil
}

// submit runs the transactional part of a submission.
func (e *Engine) submit(ctx context.Context, userID int64, score int, mode string) (*domain.SubmitResult, error) {
	player, err := e.players.GetPlayer(ctx, userID)
	if err != nil {
		return nil, err
	}
	if player == nil {
		return nil, errors.ErrPlayerNotFound(userID)
	}

	tx, err := e.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	record := &domain.SessionRecord{
		UserID:   userID,
		Score:    score,
		GameMode: mode,
	}
	if err = tx.InsertSession(ctx, record); err != nil {
		return nil, err
	}

	newTotal, err := tx.IncrementTotal(ctx, userID, score)
	if err != nil {
		return nil, err
	}

	greater, err := tx.CountStrictlyGreater(ctx, newTotal)
	if err != nil {
		return nil, err
	}
	newRank := greater + 1

	if err = tx.UpdateRank(ctx, userID, newRank); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return &domain.SubmitResult{
		UserID:        userID,
		NewTotalScore: newTotal,
		NewRank:       newRank,
	}, nil
}

// GetTopN returns the configured number of highest-total players in
// descending order, read through the cache. AsOf reflects when the list was
// computed from the aggregate store, not when it was served.
func (e *Engine) GetTopN(ctx context.Context) (*domain.TopList, error) {
	start := time.Now()
	key := cache.TopNKey(e.topN)

	if raw, ok := e.cache.Get(ctx, key); ok {
		var list domain.TopList
		if err := json.Unmarshal(raw, &list); err == nil {
			e.metrics.CacheHit(metrics.OpTopN)
			return &list, nil
		}
		// Undecodable payload (older format, corruption): fall through to
		// the store and overwrite it.
	}
	e.metrics.CacheMiss(metrics.OpTopN)

	entries, err := e.repo.TopN(ctx, e.topN)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*domain.TopEntry{}
	}

	list := &domain.TopList{
		Entries: entries,
		AsOf:    time.Now().UTC(),
	}

	e.cacheSet(ctx, key, list)
	e.metrics.ObserveDuration(metrics.OpTopN, time.Since(start))

	return list, nil
}

// GetPlayerRank returns a player's total and freshly computed rank, read
// through the cache. The stored rank hint is never exposed: the rank is
// recomputed against all current totals so the lookup is globally consistent
// even for players who have not submitted recently.
func (e *Engine) GetPlayerRank(ctx context.Context, userID int64) (*domain.PlayerRank, error) {
	start := time.Now()

	if userID <= 0 {
		return nil, errors.ErrInvalidInput("user_id", "must be positive")
	}

	key := cache.RankKey(userID)
	if raw, ok := e.cache.Get(ctx, key); ok {
		var rank domain.PlayerRank
		if err := json.Unmarshal(raw, &rank); err == nil {
			e.metrics.CacheHit(metrics.OpRank)
			return &rank, nil
		}
	}
	e.metrics.CacheMiss(metrics.OpRank)

	rank, err := e.repo.GetPlayerRank(ctx, userID)
	if err != nil {
		return nil, err
	}
	if rank == nil {
		return nil, errors.ErrEntryNotFound(userID)
	}

	e.cacheSet(ctx, key, rank)
	e.metrics.ObserveDuration(metrics.OpRank, time.Since(start))

	return rank, nil
}

// cacheSet serializes a read result into the cache. A marshal failure only
// skips caching; it never fails the read.
func (e *Engine) cacheSet(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		e.logger.Warn("failed to serialize cache payload", "key", key, "error", err)
		return
	}
	e.cache.Set(ctx, key, raw, e.cacheTTL)
}
