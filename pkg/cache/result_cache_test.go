package cache

import (
	"context"
	"testing"
	"time"
)

func TestTopNKey(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{n: 10, want: "leaderboard:top10"},
		{n: 25, want: "leaderboard:top25"},
	}

	for _, tt := range tests {
		if got := TopNKey(tt.n); got != tt.want {
			t.Errorf("TopNKey(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestRankKey(t *testing.T) {
	if got := RankKey(42); got != "rank:42" {
		t.Errorf("RankKey(42) = %q, want %q", got, "rank:42")
	}
}

func TestNoopResultCache(t *testing.T) {
	ctx := context.Background()
	c := NewNoopResultCache()

	// Set then Get must still miss
	c.Set(ctx, "leaderboard:top10", []byte(`{}`), time.Second)

	if value, ok := c.Get(ctx, "leaderboard:top10"); ok || value != nil {
		t.Errorf("Get() = (%v, %v), want miss", value, ok)
	}

	// Invalidate must not panic
	c.Invalidate(ctx, "leaderboard:top10", "rank:1")
}
