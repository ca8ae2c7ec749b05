package directory

import (
	"context"
	"database/sql"

	"github.com/AccelByte/extend-leaderboard-common/pkg/domain"
	"github.com/AccelByte/extend-leaderboard-common/pkg/errors"
)

// PostgresPlayerDirectory implements PlayerDirectory against the players
// table.
type PostgresPlayerDirectory struct {
	db *sql.DB
}

// NewPostgresPlayerDirectory creates a new PostgreSQL-backed player directory.
func NewPostgresPlayerDirectory(db *sql.DB) *PostgresPlayerDirectory {
	return &PostgresPlayerDirectory{
		db: db,
	}
}

// GetPlayer retrieves a player by ID.
func (d *PostgresPlayerDirectory) GetPlayer(ctx context.Context, userID int64) (*domain.Player, error) {
	query := `
		SELECT id, username, join_date
		FROM players
		WHERE id = $1
	`

	var player domain.Player
	err := d.db.QueryRowContext(ctx, query, userID).Scan(
		&player.ID,
		&player.Username,
		&player.JoinDate,
	)

	if err == sql.ErrNoRows {
		return nil, nil // No such player
	}

	if err != nil {
		return nil, errors.ErrDatabaseError("get player", err)
	}

	return &player, nil
}
