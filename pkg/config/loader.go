package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AccelByte/extend-leaderboard-common/pkg/domain"
)

// ConfigLoader loads and validates engine configuration from a YAML file.
// It performs file reading, YAML parsing, default filling, and validation.
type ConfigLoader struct {
	configPath string
	validator  *Validator
	logger     *slog.Logger
}

// NewConfigLoader creates a new ConfigLoader instance.
//
// Parameters:
//   - configPath: Path to the leaderboard.yaml file
//   - logger: Structured logger for operational logging
func NewConfigLoader(configPath string, logger *slog.Logger) *ConfigLoader {
	return &ConfigLoader{
		configPath: configPath,
		validator:  NewValidator(),
		logger:     logger,
	}
}

// LoadConfig loads the configuration file and returns a validated Config.
// This method performs four steps:
// 1. Read the config file from disk
// 2. Parse YAML into Config struct
// 3. Fill defaults for omitted fields
// 4. Validate all settings
//
// If any step fails, returns an error and the application should exit.
// This is a "fail fast" operation - invalid config prevents startup.
func (l *ConfigLoader) LoadConfig() (*Config, error) {
	// Step 1: Read file
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Step 2: Parse YAML
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	// Step 3: Fill defaults for omitted fields
	if config.TopN == 0 {
		config.TopN = DefaultTopN
	}
	if config.CacheTTLSeconds == 0 {
		config.CacheTTLSeconds = DefaultCacheTTLSeconds
	}
	if config.DefaultGameMode == "" {
		config.DefaultGameMode = domain.DefaultGameMode
	}

	// Step 4: Validate
	if err := l.validator.Validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	l.logger.Info("Config loaded successfully",
		"top_n", config.TopN,
		"cache_ttl_seconds", config.CacheTTLSeconds,
		"default_game_mode", config.DefaultGameMode,
		"config_path", l.configPath,
	)

	return &config, nil
}

// DefaultConfig returns a Config with all defaults applied, for callers that
// run without a config file (test harnesses, local tooling).
func DefaultConfig() *Config {
	return &Config{
		TopN:            DefaultTopN,
		CacheTTLSeconds: DefaultCacheTTLSeconds,
		DefaultGameMode: domain.DefaultGameMode,
	}
}
