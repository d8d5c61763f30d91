package domain

import "time"

// ─── Daily Challenge Types ──────────────────────────────────────────────────

// ChallengeType categorizes what a daily challenge measures.
type ChallengeType string

const (
	ChallengeCategory ChallengeType = "category"
	ChallengePoints   ChallengeType = "points"
	ChallengeCombo    ChallengeType = "combo"
	ChallengeTime     ChallengeType = "time"
	ChallengeVariety  ChallengeType = "variety"
	ChallengeStreak   ChallengeType = "streak"
)

// ChallengeTypes lists all types in their canonical weighting order.
var ChallengeTypes = []ChallengeType{
	ChallengeCategory, ChallengePoints, ChallengeCombo,
	ChallengeTime, ChallengeVariety, ChallengeStreak,
}

// Difficulty is the challenge tier.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ChallengeReward is what claiming a completed challenge grants.
type ChallengeReward struct {
	XP            int    `json:"xp"`
	StreakFreezes int    `json:"streak_freezes,omitempty"`
	Special       string `json:"special,omitempty"`
}

// DailyChallenge is one rotating per-day task. A batch of exactly 3 is
// generated at the start of each calendar day.
type DailyChallenge struct {
	ID          string          `json:"id"`
	Type        ChallengeType   `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Target      int             `json:"target"`
	Current     int             `json:"current"`
	Category    Category        `json:"category,omitempty"`   // category-type only
	TimeLimit   int             `json:"time_limit,omitempty"` // minutes, time-type only
	Reward      ChallengeReward `json:"reward"`
	Difficulty  Difficulty      `json:"difficulty"`
	CreatedAt   time.Time       `json:"created_at"`
	ExpiresAt   time.Time       `json:"expires_at"`
	Completed   bool            `json:"is_completed"` // monotonic
	Claimed     bool            `json:"is_claimed"`   // terminal
}

// IsExpiredAt reports whether the challenge deadline has passed.
// Expiry is derived from the clock, never persisted as authoritative.
func (c DailyChallenge) IsExpiredAt(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// ProgressPct returns completion percentage, uncapped below, capped at 100.
func (c DailyChallenge) ProgressPct() float64 {
	if c.Target <= 0 {
		return 100.0
	}
	pct := float64(c.Current) / float64(c.Target) * 100.0
	if pct > 100.0 {
		pct = 100.0
	}
	return pct
}

// Validate checks structural shape of a loaded challenge.
func (c DailyChallenge) Validate() error {
	if c.ID == "" || c.Target <= 0 || c.Current < 0 {
		return ErrInvalidState
	}
	switch c.Type {
	case ChallengeCategory, ChallengePoints, ChallengeCombo,
		ChallengeTime, ChallengeVariety, ChallengeStreak:
	default:
		return ErrInvalidState
	}
	switch c.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return ErrInvalidState
	}
	return nil
}

// GenerationContext is the user snapshot fed to the challenge generator.
type GenerationContext struct {
	UserLevel                int
	CurrentStreak            int
	TotalCompletedActivities int
	FavoriteCategory         Category // empty if none
	RecentCategories         []Category
	TodayCompletedActivities int
}
