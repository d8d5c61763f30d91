package domain

// ─── Celebration Events ─────────────────────────────────────────────────────
// State-mutating operations return a list of celebration events instead
// of calling a global side-effect hook. The presentation layer decides
// how to render them (confetti, haptics, plain text); event delivery
// failure never affects engine state.

// EventType categorizes a celebration event.
type EventType string

const (
	EventLevelUp             EventType = "level_up"
	EventStreakMilestone     EventType = "streak_milestone" // 7 / 30 / 100 days
	EventAchievementUnlocked EventType = "achievement_unlocked"
	EventChallengeMilestone  EventType = "challenge_milestone" // 50% / 90% progress
	EventChallengeCompleted  EventType = "challenge_completed"
	EventChallengeClaimed    EventType = "challenge_claimed"
	EventComboStarted        EventType = "combo_started"
	EventOnFireActivated     EventType = "on_fire_activated"
)

// Event is one celebration emitted by a state mutation.
type Event struct {
	Type    EventType `json:"type"`
	Message string    `json:"message"`
	Value   int       `json:"value,omitempty"` // level, streak days, points, …
}
