package config

import (
	"strings"
	"testing"
)

func TestValidator_Validate(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name    string
		config  *Config
		wantErr string
	}{
		{
			name: "valid config",
			config: &Config{
				TopN:            10,
				CacheTTLSeconds: 5,
				DefaultGameMode: "solo",
			},
		},
		{
			name: "zero top_n",
			config: &Config{
				TopN:            0,
				CacheTTLSeconds: 5,
				DefaultGameMode: "solo",
			},
			wantErr: "top_n must be positive",
		},
		{
			name: "negative top_n",
			config: &Config{
				TopN:            -1,
				CacheTTLSeconds: 5,
				DefaultGameMode: "solo",
			},
			wantErr: "top_n must be positive",
		},
		{
			name: "top_n above bound",
			config: &Config{
				TopN:            101,
				CacheTTLSeconds: 5,
				DefaultGameMode: "solo",
			},
			wantErr: "top_n must not exceed",
		},
		{
			name: "zero cache ttl",
			config: &Config{
				TopN:            10,
				CacheTTLSeconds: 0,
				DefaultGameMode: "solo",
			},
			wantErr: "cache_ttl_seconds must be positive",
		},
		{
			name: "empty default game mode",
			config: &Config{
				TopN:            10,
				CacheTTLSeconds: 5,
				DefaultGameMode: "",
			},
			wantErr: "default_game_mode",
		},
		{
			name: "overlong default game mode",
			config: &Config{
				TopN:            10,
				CacheTTLSeconds: 5,
				DefaultGameMode: strings.Repeat("x", 51),
			},
			wantErr: "default_game_mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.config)

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
