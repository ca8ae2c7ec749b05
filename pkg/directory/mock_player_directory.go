package directory

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AccelByte/extend-leaderboard-common/pkg/domain"
)

// MockPlayerDirectory is a mock implementation of PlayerDirectory for testing.
// It uses testify/mock to allow test assertions on method calls.
type MockPlayerDirectory struct {
	mock.Mock
}

// GetPlayer mocks a player lookup.
func (m *MockPlayerDirectory) GetPlayer(ctx context.Context, userID int64) (*domain.Player, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

// NewMockPlayerDirectory creates a new mock player directory.
func NewMockPlayerDirectory() *MockPlayerDirectory {
	return &MockPlayerDirectory{}
}
