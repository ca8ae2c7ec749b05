package directory

import (
	"context"

	"github.com/AccelByte/extend-leaderboard-common/pkg/domain"
)

// PlayerDirectory resolves player identity for the ranking engine. Players
// are created out-of-band; the engine only needs existence checks and
// display-name lookups.
type PlayerDirectory interface {
	// GetPlayer retrieves a player by ID.
	// Returns nil if the player does not exist.
	GetPlayer(ctx context.Context, userID int64) (*domain.Player, error)
}
