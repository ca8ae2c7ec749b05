package domain

import "time"

// DefaultGameMode is used when a submission does not specify a game mode.
const DefaultGameMode = "solo"

// MaxGameModeLength is the maximum length of a game mode tag, matching the
// VARCHAR(50) column on game_sessions.
const MaxGameModeLength = 50

// Player represents a registered player. Players are created out-of-band
// (account service, seeding) and are only read by the leaderboard engine.
type Player struct {
	ID       int64     `json:"id"`
	Username string    `json:"username"`
	JoinDate time.Time `json:"join_date"`
}

// SessionRecord is a single game-session score submission — one row in the
// append-only ledger. Records are immutable once written; the engine never
// updates or deletes them.
type SessionRecord struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Score     int       `json:"score"`
	GameMode  string    `json:"game_mode"`
	CreatedAt time.Time `json:"created_at"`
}

// LeaderboardEntry is the per-player aggregate: cumulative total score and the
// last rank computed for this player. At most one entry exists per player,
// created lazily on the player's first submission.
//
// Rank is nil until the player's first submission commits. The stored rank is
// only recomputed when this player submits, so it can be stale relative to the
// true global ordering after other players submit. It is a hint: rank reads
// always recompute from total_score instead of trusting this field.
type LeaderboardEntry struct {
	UserID     int64 `json:"user_id"`
	TotalScore int64 `json:"total_score"`
	Rank       *int  `json:"rank"`
}

// HasRank reports whether a rank has been computed for this entry.
func (e *LeaderboardEntry) HasRank() bool {
	return e.Rank != nil
}

// SubmitResult is the outcome of a successful score submission.
type SubmitResult struct {
	UserID        int64 `json:"user_id"`
	NewTotalScore int64 `json:"new_total_score"`
	NewRank       int   `json:"new_rank"`
}

// TopEntry is a single row of the top-N listing. Position is 1-based and
// reflects list order (consecutive even across ties), not the stored rank
// hint.
type TopEntry struct {
	Position   int    `json:"position"`
	UserID     int64  `json:"user_id"`
	Username   string `json:"username"`
	TotalScore int64  `json:"total_score"`
}

// TopList is the top-N leaderboard view. AsOf is the time the list was
// computed from the aggregate store, not the time it was served (a cached
// list keeps its original AsOf).
type TopList struct {
	Entries []*TopEntry `json:"leaderboard"`
	AsOf    time.Time   `json:"as_of"`
}

// PlayerRank is a single player's standing. Rank is always freshly computed
// as the count of players with a strictly greater total, plus one
// (competition ranking: tied totals share a rank).
type PlayerRank struct {
	UserID     int64  `json:"user_id"`
	Username   string `json:"username"`
	TotalScore int64  `json:"total_score"`
	Rank       int    `json:"rank"`
}

// ValidGameMode reports whether a (normalized) game mode tag fits the ledger
// column constraints.
func ValidGameMode(mode string) bool {
	return mode != "" && len(mode) <= MaxGameModeLength
}
