package domain

import (
	"encoding/json"
	"math"
	"time"
)

// ─── User Stats (reward engine aggregate) ───────────────────────────────────

// RecentActivity is one entry in the last-10 completions window that
// drives on-fire detection.
type RecentActivity struct {
	Timestamp time.Time `json:"timestamp"`
	Category  Category  `json:"category"`
}

// RecentRing is a fixed-capacity queue of recent completions with
// drop-oldest eviction. Serializes as a plain JSON array.
type RecentRing struct {
	entries  []RecentActivity
	capacity int
}

// RecentWindowSize is the on-fire detection window capacity.
const RecentWindowSize = 10

// NewRecentRing creates an empty ring with the given capacity.
func NewRecentRing(capacity int) RecentRing {
	return RecentRing{capacity: capacity}
}

// Push appends an entry, evicting the oldest when full.
func (r *RecentRing) Push(e RecentActivity) {
	if r.capacity == 0 {
		r.capacity = RecentWindowSize
	}
	r.entries = append(r.entries, e)
	if len(r.entries) > r.capacity {
		r.entries = r.entries[len(r.entries)-r.capacity:]
	}
}

// Len returns the number of stored entries.
func (r RecentRing) Len() int { return len(r.entries) }

// CountSince returns how many entries fall at or after the cutoff.
func (r RecentRing) CountSince(cutoff time.Time) int {
	n := 0
	for _, e := range r.entries {
		if !e.Timestamp.Before(cutoff) {
			n++
		}
	}
	return n
}

// Entries returns a copy of the stored entries, oldest first.
func (r RecentRing) Entries() []RecentActivity {
	out := make([]RecentActivity, len(r.entries))
	copy(out, r.entries)
	return out
}

// MarshalJSON emits the ring as its entry array.
func (r RecentRing) MarshalJSON() ([]byte, error) {
	if r.entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.entries)
}

// UnmarshalJSON restores the ring from an entry array.
func (r *RecentRing) UnmarshalJSON(data []byte) error {
	r.capacity = RecentWindowSize
	r.entries = nil
	if err := json.Unmarshal(data, &r.entries); err != nil {
		return err
	}
	if len(r.entries) > r.capacity {
		r.entries = r.entries[len(r.entries)-r.capacity:]
	}
	return nil
}

// DayCompletion is one day in the 365-day trailing streak history.
type DayCompletion struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Completed bool   `json:"completed"`
}

// ChallengeProgress tracks advancement toward one daily challenge.
type ChallengeProgress struct {
	ChallengeID string    `json:"challenge_id"`
	Progress    int       `json:"progress"`
	LastUpdated time.Time `json:"last_updated"`
}

// UserStats is the reward engine's aggregate root. Its streak fields
// are a separate bounded context from HabitData's streak — the two
// counters track different completion criteria and may diverge.
type UserStats struct {
	TotalPoints         int                   `json:"total_points"`
	BonusPoints         int                   `json:"bonus_points"` // claimed challenge XP
	Level               int                   `json:"level"`
	CompletedActivities int                   `json:"completed_activities"`
	CurrentStreak       int                   `json:"current_streak"`
	LongestStreak       int                   `json:"longest_streak"`
	LastActivityDate    string                `json:"last_activity_date,omitempty"` // YYYY-MM-DD
	StreakFreezes       int                   `json:"streak_freezes"`
	StreakHistory       []DayCompletion       `json:"streak_history"`
	Achievements        []UnlockedAchievement `json:"achievements"`

	ActiveChallenges    []DailyChallenge    `json:"active_challenges"`
	ChallengeProgress   []ChallengeProgress `json:"challenge_progress"`
	CompletedChallenges []string            `json:"completed_challenges"`

	// Transient combo state. Authoritative combo fields mutate only on
	// the next activity completion — display countdowns do not reset them.
	ComboCount            int       `json:"combo_count"`
	ComboMultiplier       float64   `json:"combo_multiplier"`
	ComboCategory         Category  `json:"combo_category,omitempty"`
	ComboStartTime        time.Time `json:"combo_start_time,omitzero"`
	LastComboActivityTime time.Time `json:"last_combo_activity_time,omitzero"`

	OnFireMode       bool       `json:"on_fire_mode"`
	OnFireStartTime  time.Time  `json:"on_fire_start_time,omitzero"`
	OnFireActivities int        `json:"on_fire_activities"`
	RecentActivities RecentRing `json:"recent_activities"`
}

// DefaultUserStats returns a fresh stats aggregate.
// New users start with 3 free streak freezes.
func DefaultUserStats() UserStats {
	return UserStats{
		Level:               1,
		StreakFreezes:       3,
		ComboMultiplier:     1.0,
		StreakHistory:       []DayCompletion{},
		Achievements:        []UnlockedAchievement{},
		ActiveChallenges:    []DailyChallenge{},
		ChallengeProgress:   []ChallengeProgress{},
		CompletedChallenges: []string{},
		RecentActivities:    NewRecentRing(RecentWindowSize),
	}
}

// Validate checks structural shape of a loaded stats blob.
func (s UserStats) Validate() error {
	if s.TotalPoints < 0 || s.BonusPoints < 0 || s.Level < 1 {
		return ErrInvalidState
	}
	if s.CurrentStreak < 0 || s.LongestStreak < s.CurrentStreak {
		return ErrInvalidState
	}
	if s.StreakFreezes < 0 {
		return ErrInvalidState
	}
	if s.ComboCount < 0 || s.ComboMultiplier < 0 {
		return ErrInvalidState
	}
	for _, c := range s.ActiveChallenges {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// LevelForPoints computes the level invariant: floor(points/100) + 1.
func LevelForPoints(totalPoints int) int {
	return totalPoints/100 + 1
}

// StreakMultiplier returns the point multiplier for a reward-engine
// streak. Tiers are non-overlapping, highest threshold first.
func StreakMultiplier(streak int) float64 {
	switch {
	case streak >= 100:
		return 3.0
	case streak >= 30:
		return 2.0
	case streak >= 7:
		return 1.5
	case streak >= 3:
		return 1.2
	default:
		return 1.0
	}
}

// OnFireMultiplier returns the point multiplier for on-fire mode.
func (s UserStats) OnFireMultiplier() float64 {
	if s.OnFireMode {
		return 2.0
	}
	return 1.0
}

// PointsWithMultipliers computes an activity's final points from the
// multiplier state active right now. Applied once, at creation time.
func (s UserStats) PointsWithMultipliers(basePoints int, categoryMultiplier float64) int {
	combo := s.ComboMultiplier
	if combo == 0 {
		combo = 1.0
	}
	raw := float64(basePoints) * categoryMultiplier *
		StreakMultiplier(s.CurrentStreak) * combo * s.OnFireMultiplier()
	return int(math.Round(raw))
}

// ─── Aura Tiers ─────────────────────────────────────────────────────────────

// AuraTier is a named progression band over total points.
type AuraTier struct {
	Name    string
	MinAura int
}

var auraTiers = []AuraTier{
	{Name: "Dormant", MinAura: 0},
	{Name: "Awakening", MinAura: 100},
	{Name: "Kindling", MinAura: 300},
	{Name: "Flickering", MinAura: 600},
	{Name: "Steady", MinAura: 1000},
	{Name: "Radiant", MinAura: 1500},
	{Name: "Blazing", MinAura: 2500},
	{Name: "Brilliant", MinAura: 4000},
	{Name: "Transcendent", MinAura: 6000},
	{Name: "Legendary", MinAura: 10000},
}

// TierForPoints returns the highest aura tier reached by totalPoints.
func TierForPoints(totalPoints int) AuraTier {
	for i := len(auraTiers) - 1; i >= 0; i-- {
		if totalPoints >= auraTiers[i].MinAura {
			return auraTiers[i]
		}
	}
	return auraTiers[0]
}
