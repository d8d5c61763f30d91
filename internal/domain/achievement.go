package domain

import "time"

// ─── Achievement Types ──────────────────────────────────────────────────────

// RequirementType says which cumulative stat an achievement tests.
type RequirementType string

const (
	ReqPoints     RequirementType = "points"     // total points >= value
	ReqActivities RequirementType = "activities" // completed activities >= value
	ReqCategory   RequirementType = "category"   // completions in category >= value
	ReqStreak     RequirementType = "streak"     // current streak >= value
)

// Requirement is an achievement's unlock condition.
type Requirement struct {
	Type     RequirementType `json:"type"`
	Value    int             `json:"value"`
	Category Category        `json:"category,omitempty"` // category-type only
}

// AchievementDef defines one catalog entry.
type AchievementDef struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Requirement Requirement `json:"requirement"`
}

// UnlockedAchievement records when an achievement was earned.
// UnlockedAt is set exactly once and never reverts.
type UnlockedAchievement struct {
	ID         string    `json:"id"`
	UnlockedAt time.Time `json:"unlocked_at"`
}
