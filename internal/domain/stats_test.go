package domain_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/aura-labs/aura/internal/domain"
)

func TestStreakMultiplierTiers(t *testing.T) {
	cases := []struct {
		streak int
		want   float64
	}{
		{0, 1.0}, {1, 1.0}, {2, 1.0},
		{3, 1.2}, {6, 1.2},
		{7, 1.5}, {29, 1.5},
		{30, 2.0}, {99, 2.0},
		{100, 3.0}, {365, 3.0},
	}
	for _, tc := range cases {
		if got := domain.StreakMultiplier(tc.streak); got != tc.want {
			t.Errorf("StreakMultiplier(%d) = %.1f, want %.1f", tc.streak, got, tc.want)
		}
	}
}

func TestLevelForPoints(t *testing.T) {
	cases := []struct {
		points, level int
	}{
		{0, 1}, {99, 1}, {100, 2}, {199, 2}, {200, 3}, {1000, 11},
	}
	for _, tc := range cases {
		if got := domain.LevelForPoints(tc.points); got != tc.level {
			t.Errorf("LevelForPoints(%d) = %d, want %d", tc.points, got, tc.level)
		}
	}
}

func TestPointsWithMultipliers(t *testing.T) {
	stats := domain.DefaultUserStats()
	if got := stats.PointsWithMultipliers(15, 1.0); got != 15 {
		t.Errorf("no multipliers: got %d, want 15", got)
	}

	stats.CurrentStreak = 7    // 1.5x
	stats.ComboMultiplier = 1.4
	stats.OnFireMode = true // 2.0x
	// round(15 * 1.0 * 1.5 * 1.4 * 2.0) = round(63) = 63
	if got := stats.PointsWithMultipliers(15, 1.0); got != 63 {
		t.Errorf("stacked multipliers: got %d, want 63", got)
	}

	// A zero stored combo multiplier prices as 1.0.
	stats = domain.DefaultUserStats()
	stats.ComboMultiplier = 0
	if got := stats.PointsWithMultipliers(10, 1.0); got != 10 {
		t.Errorf("zero combo: got %d, want 10", got)
	}
}

func TestPointsWithMultipliers_Rounds(t *testing.T) {
	stats := domain.DefaultUserStats()
	stats.CurrentStreak = 3 // 1.2x
	// 10 * 1.2 = 12; 25 * 1.2 = 30; 18 * 1.2 = 21.6 -> 22
	if got := stats.PointsWithMultipliers(18, 1.0); got != 22 {
		t.Errorf("expected round-half-up result 22, got %d", got)
	}
	if math.Round(21.6) != 22 {
		t.Fatal("sanity")
	}
}

func TestRecentRing_DropOldest(t *testing.T) {
	ring := domain.NewRecentRing(3)
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		ring.Push(domain.RecentActivity{Timestamp: base.Add(time.Duration(i) * time.Minute)})
	}
	if ring.Len() != 3 {
		t.Fatalf("expected capacity 3, got %d", ring.Len())
	}
	entries := ring.Entries()
	if !entries[0].Timestamp.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("expected oldest two evicted, first entry at %v", entries[0].Timestamp)
	}
}

func TestRecentRing_CountSince(t *testing.T) {
	ring := domain.NewRecentRing(10)
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 6; i++ {
		ring.Push(domain.RecentActivity{Timestamp: base.Add(time.Duration(i) * 3 * time.Minute)})
	}
	// Entries at +0,3,6,9,12,15 min; cutoff at +6 keeps 4 of them.
	if got := ring.CountSince(base.Add(6 * time.Minute)); got != 4 {
		t.Errorf("expected 4 in window, got %d", got)
	}
}

func TestRecentRing_JSONRoundTrip(t *testing.T) {
	ring := domain.NewRecentRing(domain.RecentWindowSize)
	base := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	ring.Push(domain.RecentActivity{Timestamp: base, Category: domain.CatHealth})

	raw, err := json.Marshal(ring)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back domain.RecentRing
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", back.Len())
	}
	// Restored rings keep evicting at the standard capacity.
	for i := 0; i < 20; i++ {
		back.Push(domain.RecentActivity{Timestamp: base.Add(time.Duration(i) * time.Second)})
	}
	if back.Len() != domain.RecentWindowSize {
		t.Errorf("expected capacity %d after restore, got %d", domain.RecentWindowSize, back.Len())
	}
}

func TestTierForPoints(t *testing.T) {
	cases := []struct {
		points int
		name   string
	}{
		{0, "Dormant"}, {99, "Dormant"},
		{100, "Awakening"}, {600, "Flickering"},
		{9999, "Transcendent"}, {10000, "Legendary"}, {50000, "Legendary"},
	}
	for _, tc := range cases {
		if got := domain.TierForPoints(tc.points); got.Name != tc.name {
			t.Errorf("TierForPoints(%d) = %s, want %s", tc.points, got.Name, tc.name)
		}
	}
}

func TestUserStatsValidate(t *testing.T) {
	good := domain.DefaultUserStats()
	if err := good.Validate(); err != nil {
		t.Errorf("default stats must validate: %v", err)
	}

	bad := domain.DefaultUserStats()
	bad.TotalPoints = -1
	if err := bad.Validate(); err == nil {
		t.Error("negative points must fail")
	}

	bad = domain.DefaultUserStats()
	bad.CurrentStreak = 5
	bad.LongestStreak = 2
	if err := bad.Validate(); err == nil {
		t.Error("longest below current must fail")
	}
}
