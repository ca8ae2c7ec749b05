package config

import (
	"errors"
	"fmt"

	"github.com/AccelByte/extend-leaderboard-common/pkg/domain"
)

// maxTopN bounds the top-N listing so a misconfigured deployment cannot turn
// the hot read path into a full-table scan.
const maxTopN = 100

// Validator validates engine configuration.
// It ensures all settings are sane before the application starts.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate performs comprehensive validation of the configuration.
// It checks for:
// - TopN is positive and within the query bound
// - Cache TTL is positive
// - The default game mode fits the ledger column constraints
//
// Returns an error describing the first validation failure encountered.
func (v *Validator) Validate(config *Config) error {
	if config.TopN <= 0 {
		return errors.New("top_n must be positive")
	}
	if config.TopN > maxTopN {
		return fmt.Errorf("top_n must not exceed %d", maxTopN)
	}

	if config.CacheTTLSeconds <= 0 {
		return errors.New("cache_ttl_seconds must be positive")
	}

	if !domain.ValidGameMode(config.DefaultGameMode) {
		return fmt.Errorf("default_game_mode must be non-empty and at most %d characters", domain.MaxGameModeLength)
	}

	return nil
}
