package domain

import (
	"strings"
	"testing"
)

func TestValidGameMode(t *testing.T) {
	tests := []struct {
		name string
		mode string
		want bool
	}{
		{
			name: "simple mode is valid",
			mode: "solo",
			want: true,
		},
		{
			name: "empty mode is invalid",
			mode: "",
			want: false,
		},
		{
			name: "max length mode is valid",
			mode: strings.Repeat("x", MaxGameModeLength),
			want: true,
		},
		{
			name: "overlong mode is invalid",
			mode: strings.Repeat("x", MaxGameModeLength+1),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidGameMode(tt.mode); got != tt.want {
				t.Errorf("ValidGameMode(%q) = %v, want %v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestLeaderboardEntry_HasRank(t *testing.T) {
	rank := 3

	tests := []struct {
		name  string
		entry *LeaderboardEntry
		want  bool
	}{
		{
			name:  "rank not yet computed",
			entry: &LeaderboardEntry{UserID: 1, TotalScore: 100, Rank: nil},
			want:  false,
		},
		{
			name:  "rank computed",
			entry: &LeaderboardEntry{UserID: 1, TotalScore: 100, Rank: &rank},
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.HasRank(); got != tt.want {
				t.Errorf("HasRank() = %v, want %v", got, tt.want)
			}
		})
	}
}
