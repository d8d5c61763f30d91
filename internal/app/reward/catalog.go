package reward

import (
	"time"

	"github.com/aura-labs/aura/internal/domain"
)

// Catalog is the fixed achievement set. Unlocks are monotonic: once an
// achievement is earned it never reverts, even if the stat that earned
// it later drops below the threshold.
var Catalog = []domain.AchievementDef{
	{ID: "first_activity", Title: "First Step", Description: "Complete your very first activity", Icon: "🌟",
		Requirement: domain.Requirement{Type: domain.ReqActivities, Value: 1}},
	{ID: "activities_10", Title: "Getting Started", Description: "Complete 10 activities", Icon: "⭐",
		Requirement: domain.Requirement{Type: domain.ReqActivities, Value: 10}},
	{ID: "activities_25", Title: "Momentum Builder", Description: "Complete 25 activities", Icon: "🌠",
		Requirement: domain.Requirement{Type: domain.ReqActivities, Value: 25}},
	{ID: "activities_100", Title: "Centurion", Description: "Complete 100 activities", Icon: "💯",
		Requirement: domain.Requirement{Type: domain.ReqActivities, Value: 100}},

	{ID: "points_100", Title: "Aura Spark", Description: "Collect 100 total aura points", Icon: "✨",
		Requirement: domain.Requirement{Type: domain.ReqPoints, Value: 100}},
	{ID: "points_500", Title: "Aura Collector", Description: "Collect 500 total aura points", Icon: "💎",
		Requirement: domain.Requirement{Type: domain.ReqPoints, Value: 500}},
	{ID: "points_1000", Title: "Aura Hoarder", Description: "Collect 1,000 total aura points", Icon: "💰",
		Requirement: domain.Requirement{Type: domain.ReqPoints, Value: 1000}},
	{ID: "points_5000", Title: "Aura Master", Description: "Collect 5,000 total aura points", Icon: "⚜️",
		Requirement: domain.Requirement{Type: domain.ReqPoints, Value: 5000}},
	{ID: "points_10000", Title: "Aura Legend", Description: "Collect 10,000 total aura points", Icon: "🏆",
		Requirement: domain.Requirement{Type: domain.ReqPoints, Value: 10000}},

	{ID: "streak_3", Title: "Three in a Row", Description: "Stay active 3 days in a row", Icon: "🔥",
		Requirement: domain.Requirement{Type: domain.ReqStreak, Value: 3}},
	{ID: "streak_7", Title: "Week Warrior", Description: "Stay active 7 days in a row", Icon: "🔥",
		Requirement: domain.Requirement{Type: domain.ReqStreak, Value: 7}},
	{ID: "streak_30", Title: "Monthly Master", Description: "Stay active 30 days in a row", Icon: "🗓️",
		Requirement: domain.Requirement{Type: domain.ReqStreak, Value: 30}},
	{ID: "streak_100", Title: "Century of Discipline", Description: "Stay active 100 days in a row", Icon: "💯",
		Requirement: domain.Requirement{Type: domain.ReqStreak, Value: 100}},

	{ID: "health_10", Title: "Health Foundation", Description: "Complete 10 health activities", Icon: "💪",
		Requirement: domain.Requirement{Type: domain.ReqCategory, Value: 10, Category: domain.CatHealth}},
	{ID: "productivity_10", Title: "Getting Things Done", Description: "Complete 10 productivity activities", Icon: "⚡",
		Requirement: domain.Requirement{Type: domain.ReqCategory, Value: 10, Category: domain.CatProductivity}},
	{ID: "social_10", Title: "Social Starter", Description: "Complete 10 social activities", Icon: "👋",
		Requirement: domain.Requirement{Type: domain.ReqCategory, Value: 10, Category: domain.CatSocial}},
	{ID: "mindfulness_10", Title: "Mental Clarity", Description: "Complete 10 mindfulness activities", Icon: "🧠",
		Requirement: domain.Requirement{Type: domain.ReqCategory, Value: 10, Category: domain.CatMindfulness}},
	{ID: "learning_10", Title: "Scholar", Description: "Complete 10 learning activities", Icon: "📚",
		Requirement: domain.Requirement{Type: domain.ReqCategory, Value: 10, Category: domain.CatLearning}},
}

// AchievementByID looks up a catalog entry.
func AchievementByID(id string) (domain.AchievementDef, bool) {
	for _, a := range Catalog {
		if a.ID == id {
			return a, true
		}
	}
	return domain.AchievementDef{}, false
}

// evaluateAchievements unlocks any catalog entries whose requirements
// the current stats meet and returns the newly unlocked definitions.
func evaluateAchievements(stats *domain.UserStats, completed []domain.Activity, now time.Time) []domain.AchievementDef {
	unlocked := make(map[string]bool, len(stats.Achievements))
	for _, a := range stats.Achievements {
		unlocked[a.ID] = true
	}

	byCategory := map[domain.Category]int{}
	for _, a := range completed {
		byCategory[a.Category]++
	}

	var fresh []domain.AchievementDef
	for _, def := range Catalog {
		if unlocked[def.ID] {
			continue
		}
		var met bool
		switch def.Requirement.Type {
		case domain.ReqPoints:
			met = stats.TotalPoints >= def.Requirement.Value
		case domain.ReqActivities:
			met = len(completed) >= def.Requirement.Value
		case domain.ReqCategory:
			met = byCategory[def.Requirement.Category] >= def.Requirement.Value
		case domain.ReqStreak:
			met = stats.CurrentStreak >= def.Requirement.Value
		}
		if met {
			stats.Achievements = append(stats.Achievements, domain.UnlockedAchievement{
				ID:         def.ID,
				UnlockedAt: now,
			})
			fresh = append(fresh, def)
		}
	}
	return fresh
}
