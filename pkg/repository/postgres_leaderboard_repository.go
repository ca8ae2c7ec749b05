package repository

import (
	"context"
	"database/sql"

	"github.com/AccelByte/extend-leaderboard-common/pkg/domain"
	"github.com/AccelByte/extend-leaderboard-common/pkg/errors"
)

// PostgresLeaderboardRepository implements LeaderboardRepository using
// PostgreSQL.
type PostgresLeaderboardRepository struct {
	db *sql.DB
}

// NewPostgresLeaderboardRepository creates a new PostgreSQL-backed
// leaderboard repository.
func NewPostgresLeaderboardRepository(db *sql.DB) *PostgresLeaderboardRepository {
	return &PostgresLeaderboardRepository{
		db: db,
	}
}

// GetEntry retrieves a single player's aggregate entry.
func (r *PostgresLeaderboardRepository) GetEntry(ctx context.Context, userID int64) (*domain.LeaderboardEntry, error) {
	query := `
		SELECT user_id, total_score, rank
		FROM leaderboard
		WHERE user_id = $1
	`

	var entry domain.LeaderboardEntry
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&entry.UserID,
		&entry.TotalScore,
		&entry.Rank,
	)

	if err == sql.ErrNoRows {
		return nil, nil // No entry exists (lazy initialization on first submit)
	}

	if err != nil {
		return nil, errors.ErrDatabaseError("get entry", err)
	}

	return &entry, nil
}

// TopN retrieves the n highest-total entries joined with display names.
// The user_id tiebreak keeps the listing deterministic when totals are equal;
// positions stay consecutive across ties.
func (r *PostgresLeaderboardRepository) TopN(ctx context.Context, n int) ([]*domain.TopEntry, error) {
	query := `
		SELECT l.user_id, p.username, l.total_score
		FROM leaderboard l
		JOIN players p ON p.id = l.user_id
		ORDER BY l.total_score DESC, l.user_id ASC
		LIMIT $1
	`

	rows, err := r.db.QueryContext(ctx, query, n)
	if err != nil {
		return nil, errors.ErrDatabaseError("top-n query", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []*domain.TopEntry
	for rows.Next() {
		var entry domain.TopEntry
		if err := rows.Scan(&entry.UserID, &entry.Username, &entry.TotalScore); err != nil {
			return nil, errors.ErrDatabaseError("scan top-n row", err)
		}
		entry.Position = len(entries) + 1
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.ErrDatabaseError("iterate top-n rows", err)
	}

	return entries, nil
}

// GetPlayerRank retrieves a player's total with a freshly computed rank.
// The rank subquery counts strictly greater totals so tied totals share a
// rank; the stored rank column is not consulted.
func (r *PostgresLeaderboardRepository) GetPlayerRank(ctx context.Context, userID int64) (*domain.PlayerRank, error) {
	query := `
		SELECT
			l.user_id,
			p.username,
			l.total_score,
			(SELECT COUNT(*) + 1 FROM leaderboard WHERE total_score > l.total_score) AS computed_rank
		FROM leaderboard l
		JOIN players p ON p.id = l.user_id
		WHERE l.user_id = $1
	`

	var rank domain.PlayerRank
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&rank.UserID,
		&rank.Username,
		&rank.TotalScore,
		&rank.Rank,
	)

	if err == sql.ErrNoRows {
		return nil, nil // Player has never submitted a score
	}

	if err != nil {
		return nil, errors.ErrDatabaseError("get player rank", err)
	}

	return &rank, nil
}

// SessionScoreSum returns the sum of all ledger scores for a player.
func (r *PostgresLeaderboardRepository) SessionScoreSum(ctx context.Context, userID int64) (int64, error) {
	query := `
		SELECT COALESCE(SUM(score), 0)
		FROM game_sessions
		WHERE user_id = $1
	`

	var sum int64
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&sum); err != nil {
		return 0, errors.ErrDatabaseError("session score sum", err)
	}

	return sum, nil
}

// BeginTx starts a database transaction and returns a transactional
// repository for the submission flow.
func (r *PostgresLeaderboardRepository) BeginTx(ctx context.Context) (TxRepository, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.ErrDatabaseError("begin transaction", err)
	}

	return &PostgresTxRepository{
		tx: tx,
	}, nil
}

// PostgresTxRepository implements TxRepository for the submission flow.
type PostgresTxRepository struct {
	tx *sql.Tx
}

// InsertSession appends a record to the ledger within the transaction.
func (r *PostgresTxRepository) InsertSession(ctx context.Context, record *domain.SessionRecord) error {
	query := `
		INSERT INTO game_sessions (user_id, score, game_mode)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.tx.QueryRowContext(ctx, query,
		record.UserID,
		record.Score,
		record.GameMode,
	).Scan(&record.ID, &record.CreatedAt)

	if err != nil {
		return errors.ErrDatabaseError("insert session", err)
	}

	return nil
}

// IncrementTotal atomically upserts the player's aggregate entry within the
// transaction. The ON CONFLICT update locks the player's row until commit,
// which serializes concurrent submissions for the same player.
func (r *PostgresTxRepository) IncrementTotal(ctx context.Context, userID int64, delta int) (int64, error) {
	query := `
		INSERT INTO leaderboard (user_id, total_score, rank)
		VALUES ($1, $2, NULL)
		ON CONFLICT (user_id) DO UPDATE SET
			total_score = leaderboard.total_score + EXCLUDED.total_score
		RETURNING total_score
	`

	var newTotal int64
	if err := r.tx.QueryRowContext(ctx, query, userID, delta).Scan(&newTotal); err != nil {
		return 0, errors.ErrDatabaseError("increment total", err)
	}

	return newTotal, nil
}

// CountStrictlyGreater counts entries with a total strictly greater than the
// given total, within the transaction's snapshot.
func (r *PostgresTxRepository) CountStrictlyGreater(ctx context.Context, total int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM leaderboard
		WHERE total_score > $1
	`

	var count int
	if err := r.tx.QueryRowContext(ctx, query, total).Scan(&count); err != nil {
		return 0, errors.ErrDatabaseError("count strictly greater", err)
	}

	return count, nil
}

// UpdateRank stores the computed rank hint on the player's entry within the
// transaction.
func (r *PostgresTxRepository) UpdateRank(ctx context.Context, userID int64, rank int) error {
	query := `
		UPDATE leaderboard
		SET rank = $1
		WHERE user_id = $2
	`

	result, err := r.tx.ExecContext(ctx, query, rank, userID)
	if err != nil {
		return errors.ErrDatabaseError("update rank", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError("check rows affected", err)
	}

	if rowsAffected == 0 {
		// The increment in the same transaction guarantees the row exists;
		// hitting this means the transaction is broken.
		return errors.ErrDatabaseError("update rank", sql.ErrNoRows)
	}

	return nil
}

// Commit commits the transaction.
func (r *PostgresTxRepository) Commit() error {
	if err := r.tx.Commit(); err != nil {
		return errors.ErrDatabaseError("commit transaction", err)
	}
	return nil
}

// Rollback rolls back the transaction.
func (r *PostgresTxRepository) Rollback() error {
	if err := r.tx.Rollback(); err != nil {
		return errors.ErrDatabaseError("rollback transaction", err)
	}
	return nil
}
