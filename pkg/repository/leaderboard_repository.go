package repository

import (
	"context"

	"github.com/AccelByte/extend-leaderboard-common/pkg/domain"
)

// LeaderboardRepository defines the storage operations for the ledger and the
// aggregate store. This interface abstracts database operations to allow for
// testing and different implementations.
//
// The contract the ranking engine requires from any implementation:
// atomic multi-statement transactions, an upsert-with-increment primitive
// that serializes concurrent increments to the same player, and a
// count-greater-than query for rank computation.
type LeaderboardRepository interface {
	// GetEntry retrieves a single player's aggregate entry.
	// Returns nil if no entry exists (the player has never submitted).
	GetEntry(ctx context.Context, userID int64) (*domain.LeaderboardEntry, error)

	// TopN retrieves the n entries with the highest total score, joined with
	// player display names, in descending total order. Positions are filled
	// 1..len from list order. Read-only snapshot; takes no exclusive locks.
	TopN(ctx context.Context, n int) ([]*domain.TopEntry, error)

	// GetPlayerRank retrieves a player's total and a freshly computed rank
	// (count of entries with a strictly greater total, plus one). The stored
	// rank column is deliberately not used — it can be stale for players who
	// have not submitted recently.
	// Returns nil if the player has no aggregate entry.
	GetPlayerRank(ctx context.Context, userID int64) (*domain.PlayerRank, error)

	// SessionScoreSum returns the sum of all ledger scores for a player.
	// Audit/debug helper: at any quiescent point it must equal the player's
	// aggregate total.
	SessionScoreSum(ctx context.Context, userID int64) (int64, error)

	// BeginTx starts a database transaction for the submission flow.
	BeginTx(ctx context.Context) (TxRepository, error)
}

// TxRepository is the transactional view of the store used by a single score
// submission. All writes happen inside it; Commit makes the ledger append,
// the aggregate increment, and the rank update visible as one atomic unit.
type TxRepository interface {
	// InsertSession appends a record to the ledger. On success the record's
	// ID and CreatedAt are populated from the database.
	InsertSession(ctx context.Context, record *domain.SessionRecord) error

	// IncrementTotal upserts the player's aggregate entry: creates it with
	// total = delta when absent, otherwise adds delta to the existing total.
	// Returns the new total. The conflicting-row lock taken by the upsert
	// serializes concurrent increments for the same player until commit, so
	// no increment is ever lost; different players do not block each other.
	IncrementTotal(ctx context.Context, userID int64, delta int) (int64, error)

	// CountStrictlyGreater returns how many aggregate entries have a total
	// strictly greater than the given total.
	CountStrictlyGreater(ctx context.Context, total int64) (int, error)

	// UpdateRank stores the computed rank hint on the player's entry.
	UpdateRank(ctx context.Context, userID int64, rank int) error

	// Commit commits the transaction.
	Commit() error

	// Rollback rolls back the transaction.
	Rollback() error
}
