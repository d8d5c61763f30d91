package cli

import (
	"fmt"

	"github.com/aura-labs/aura/internal/domain"
)

// printEvents renders celebration events emitted by a state change.
func printEvents(events []domain.Event) {
	for _, e := range events {
		switch e.Type {
		case domain.EventLevelUp:
			fmt.Printf("🎉 %s\n", e.Message)
		case domain.EventStreakMilestone:
			fmt.Printf("🔥 %s\n", e.Message)
		case domain.EventAchievementUnlocked:
			fmt.Printf("🏆 %s\n", e.Message)
		case domain.EventChallengeCompleted, domain.EventChallengeClaimed:
			fmt.Printf("✅ %s\n", e.Message)
		case domain.EventComboStarted:
			fmt.Printf("⚡ %s\n", e.Message)
		case domain.EventOnFireActivated:
			fmt.Printf("🔥 %s\n", e.Message)
		default:
			fmt.Println(e.Message)
		}
	}
}

// activityStatus renders a completion marker for list output.
func activityStatus(a domain.Activity) string {
	if a.Completed {
		return "done"
	}
	return "open"
}
