package config

import "time"

// Default engine settings, used for any field absent from the config file.
const (
	DefaultTopN            = 10
	DefaultCacheTTLSeconds = 5
)

// Config represents the engine configuration loaded from leaderboard.yaml.
// This structure is parsed from YAML and validated during application startup.
type Config struct {
	// TopN is the number of entries returned by the top-N query. Fixed per
	// deployment; the top-N cache key is derived from it.
	TopN int `yaml:"top_n"`

	// CacheTTLSeconds is the lifetime of cached read results. Short by
	// design: expiry is the backstop for any invalidation the engine cannot
	// anticipate.
	CacheTTLSeconds int `yaml:"cache_ttl_seconds"`

	// DefaultGameMode is recorded on submissions that omit a game mode.
	DefaultGameMode string `yaml:"default_game_mode"`
}

// CacheTTL returns the cache entry lifetime as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
