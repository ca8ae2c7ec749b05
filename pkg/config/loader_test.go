package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/AccelByte/extend-leaderboard-common/pkg/domain"
)

func TestConfigLoader_LoadConfig(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	t.Run("successful load", func(t *testing.T) {
		tmpFile := createTempConfigFile(t, `
top_n: 25
cache_ttl_seconds: 10
default_game_mode: team
`)

		loader := NewConfigLoader(tmpFile, logger)
		config, err := loader.LoadConfig()

		if err != nil {
			t.Fatalf("LoadConfig() unexpected error = %v", err)
		}

		if config == nil {
			t.Fatal("LoadConfig() returned nil config")
		}

		if config.TopN != 25 {
			t.Errorf("expected TopN 25, got %d", config.TopN)
		}
		if config.CacheTTLSeconds != 10 {
			t.Errorf("expected CacheTTLSeconds 10, got %d", config.CacheTTLSeconds)
		}
		if config.DefaultGameMode != "team" {
			t.Errorf("expected DefaultGameMode 'team', got %q", config.DefaultGameMode)
		}
		if config.CacheTTL() != 10*time.Second {
			t.Errorf("expected CacheTTL 10s, got %v", config.CacheTTL())
		}
	})

	t.Run("defaults fill omitted fields", func(t *testing.T) {
		tmpFile := createTempConfigFile(t, `
top_n: 20
`)

		loader := NewConfigLoader(tmpFile, logger)
		config, err := loader.LoadConfig()

		if err != nil {
			t.Fatalf("LoadConfig() unexpected error = %v", err)
		}

		if config.TopN != 20 {
			t.Errorf("expected TopN 20, got %d", config.TopN)
		}
		if config.CacheTTLSeconds != DefaultCacheTTLSeconds {
			t.Errorf("expected default CacheTTLSeconds %d, got %d", DefaultCacheTTLSeconds, config.CacheTTLSeconds)
		}
		if config.DefaultGameMode != domain.DefaultGameMode {
			t.Errorf("expected default game mode %q, got %q", domain.DefaultGameMode, config.DefaultGameMode)
		}
	})

	t.Run("empty file gets all defaults", func(t *testing.T) {
		tmpFile := createTempConfigFile(t, "")

		loader := NewConfigLoader(tmpFile, logger)
		config, err := loader.LoadConfig()

		if err != nil {
			t.Fatalf("LoadConfig() unexpected error = %v", err)
		}

		if config.TopN != DefaultTopN {
			t.Errorf("expected default TopN %d, got %d", DefaultTopN, config.TopN)
		}
	})

	t.Run("file not found", func(t *testing.T) {
		loader := NewConfigLoader("/nonexistent/leaderboard.yaml", logger)
		_, err := loader.LoadConfig()

		if err == nil {
			t.Fatal("LoadConfig() expected error for missing file")
		}
		if !strings.Contains(err.Error(), "failed to read config file") {
			t.Errorf("unexpected error message: %v", err)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		tmpFile := createTempConfigFile(t, "top_n: [not a number")

		loader := NewConfigLoader(tmpFile, logger)
		_, err := loader.LoadConfig()

		if err == nil {
			t.Fatal("LoadConfig() expected error for invalid YAML")
		}
		if !strings.Contains(err.Error(), "failed to parse config YAML") {
			t.Errorf("unexpected error message: %v", err)
		}
	})

	t.Run("validation failure", func(t *testing.T) {
		tmpFile := createTempConfigFile(t, `
top_n: -5
`)

		loader := NewConfigLoader(tmpFile, logger)
		_, err := loader.LoadConfig()

		if err == nil {
			t.Fatal("LoadConfig() expected validation error")
		}
		if !strings.Contains(err.Error(), "config validation failed") {
			t.Errorf("unexpected error message: %v", err)
		}
	})
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.TopN != DefaultTopN {
		t.Errorf("expected TopN %d, got %d", DefaultTopN, config.TopN)
	}
	if config.CacheTTLSeconds != DefaultCacheTTLSeconds {
		t.Errorf("expected CacheTTLSeconds %d, got %d", DefaultCacheTTLSeconds, config.CacheTTLSeconds)
	}
	if config.DefaultGameMode != domain.DefaultGameMode {
		t.Errorf("expected DefaultGameMode %q, got %q", domain.DefaultGameMode, config.DefaultGameMode)
	}

	if err := NewValidator().Validate(config); err != nil {
		t.Errorf("DefaultConfig() should validate, got %v", err)
	}
}

// createTempConfigFile writes content to a temp file and returns its path.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()

	tmpFile := filepath.Join(t.TempDir(), "leaderboard.yaml")
	if err := os.WriteFile(tmpFile, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write temp config file: %v", err)
	}

	return tmpFile
}
