package errors

import (
	"errors"
	"fmt"
)

// Error codes for the leaderboard service.
const (
	// Domain errors
	ErrCodePlayerNotFound = "PLAYER_NOT_FOUND"
	ErrCodeEntryNotFound  = "LEADERBOARD_ENTRY_NOT_FOUND"

	// Validation errors
	ErrCodeInvalidInput = "INVALID_INPUT"

	// Database errors
	ErrCodeDatabaseError     = "DATABASE_ERROR"
	ErrCodeTransactionFailed = "TRANSACTION_FAILED"

	// Config errors
	ErrCodeConfigInvalid = "CONFIG_INVALID"
)

// LeaderboardError represents an error in the leaderboard service.
type LeaderboardError struct {
	Code    string
	Message string
	Err     error
}

func (e *LeaderboardError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *LeaderboardError) Unwrap() error {
	return e.Err
}

// NewLeaderboardError creates a new LeaderboardError.
func NewLeaderboardError(code, message string, err error) *LeaderboardError {
	return &LeaderboardError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Domain-specific error constructors

// ErrPlayerNotFound returns an error when a player has no directory entry.
func ErrPlayerNotFound(userID int64) *LeaderboardError {
	return &LeaderboardError{
		Code:    ErrCodePlayerNotFound,
		Message: fmt.Sprintf("player not found: %d", userID),
		Err:     nil,
	}
}

// ErrEntryNotFound returns an error when a player has no leaderboard entry
// (the player has never submitted a score).
func ErrEntryNotFound(userID int64) *LeaderboardError {
	return &LeaderboardError{
		Code:    ErrCodeEntryNotFound,
		Message: fmt.Sprintf("no leaderboard entry for player: %d", userID),
		Err:     nil,
	}
}

// ErrInvalidInput returns an error for a request rejected before any
// transaction begins.
func ErrInvalidInput(field, reason string) *LeaderboardError {
	return &LeaderboardError{
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("invalid %s: %s", field, reason),
		Err:     nil,
	}
}

// ErrDatabaseError wraps durable-store errors. These are retryable: the
// failed operation rolled back completely, so the caller may safely resubmit.
func ErrDatabaseError(operation string, err error) *LeaderboardError {
	return &LeaderboardError{
		Code:    ErrCodeDatabaseError,
		Message: fmt.Sprintf("database error during %s", operation),
		Err:     err,
	}
}

// ErrTransactionFailed wraps a submission transaction failure. The ledger and
// aggregate store are left as they were before the call.
func ErrTransactionFailed(operation string, err error) *LeaderboardError {
	return &LeaderboardError{
		Code:    ErrCodeTransactionFailed,
		Message: fmt.Sprintf("transaction failed during %s", operation),
		Err:     err,
	}
}

// ErrConfigInvalid returns an error for invalid configuration.
func ErrConfigInvalid(reason string) *LeaderboardError {
	return &LeaderboardError{
		Code:    ErrCodeConfigInvalid,
		Message: fmt.Sprintf("invalid configuration: %s", reason),
		Err:     nil,
	}
}

// Classification helpers for the caller's boundary (HTTP layer, test harness).

// IsNotFound reports whether err is a player-not-found or entry-not-found
// condition. Mapped to a client-facing "not found" response; not retryable.
func IsNotFound(err error) bool {
	var lbErr *LeaderboardError
	if !errors.As(err, &lbErr) {
		return false
	}
	return lbErr.Code == ErrCodePlayerNotFound || lbErr.Code == ErrCodeEntryNotFound
}

// IsInvalidInput reports whether err is a validation rejection. No partial
// state exists; not retryable.
func IsInvalidInput(err error) bool {
	var lbErr *LeaderboardError
	if !errors.As(err, &lbErr) {
		return false
	}
	return lbErr.Code == ErrCodeInvalidInput
}

// IsRetryable reports whether err is a backend failure that rolled back
// completely, so the caller may resubmit the same request.
func IsRetryable(err error) bool {
	var lbErr *LeaderboardError
	if !errors.As(err, &lbErr) {
		return false
	}
	return lbErr.Code == ErrCodeDatabaseError || lbErr.Code == ErrCodeTransactionFailed
}
