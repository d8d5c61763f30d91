package challenge

import "github.com/aura-labs/aura/internal/domain"

// template is a blueprint a generated challenge is stamped from.
// TimeLimit is minutes; zero means no limit.
type template struct {
	Title       string
	Description string
	Target      int
	TimeLimit   int
	Icon        string
}

// templates indexes blueprints by type then difficulty. Two to four
// variants per cell keeps daily batches from feeling repetitive.
var templates = map[domain.ChallengeType]map[domain.Difficulty][]template{
	domain.ChallengeCategory: {
		domain.DifficultyEasy: {
			{Title: "Health Focus", Description: "Complete 2 health activities today", Target: 2, Icon: "💚"},
			{Title: "Productive Day", Description: "Complete 2 productivity activities", Target: 2, Icon: "⚡"},
			{Title: "Social Butterfly", Description: "Complete 1 social activity", Target: 1, Icon: "👥"},
			{Title: "Mindful Moment", Description: "Complete 2 mindfulness activities", Target: 2, Icon: "🧘"},
		},
		domain.DifficultyMedium: {
			{Title: "Health Enthusiast", Description: "Complete 3 health activities today", Target: 3, Icon: "💪"},
			{Title: "Productivity Powerhouse", Description: "Complete 3 productivity tasks", Target: 3, Icon: "🚀"},
			{Title: "Social Connector", Description: "Complete 2 social activities", Target: 2, Icon: "🤝"},
			{Title: "Mindful Practice", Description: "Complete 3 mindfulness sessions", Target: 3, Icon: "🧠"},
		},
		domain.DifficultyHard: {
			{Title: "Health Champion", Description: "Complete 4 health activities today", Target: 4, Icon: "🏆"},
			{Title: "Productivity Master", Description: "Complete 4 productivity activities", Target: 4, Icon: "🎯"},
			{Title: "Social Networker", Description: "Complete 3 social activities", Target: 3, Icon: "🌟"},
			{Title: "Mindfulness Expert", Description: "Complete 4 mindfulness sessions", Target: 4, Icon: "✨"},
		},
	},
	domain.ChallengePoints: {
		domain.DifficultyEasy: {
			{Title: "Point Collector", Description: "Earn 50 aura points today", Target: 50, Icon: "⭐"},
			{Title: "Daily Goal", Description: "Earn 75 aura points today", Target: 75, Icon: "🎯"},
		},
		domain.DifficultyMedium: {
			{Title: "Point Hunter", Description: "Earn 100 aura points today", Target: 100, Icon: "💎"},
			{Title: "Score Seeker", Description: "Earn 150 aura points today", Target: 150, Icon: "🏅"},
		},
		domain.DifficultyHard: {
			{Title: "Point Master", Description: "Earn 200 aura points today", Target: 200, Icon: "👑"},
			{Title: "High Scorer", Description: "Earn 250 aura points today", Target: 250, Icon: "🌟"},
		},
	},
	domain.ChallengeCombo: {
		domain.DifficultyEasy: {
			{Title: "Double Up", Description: "Complete 2 activities in a row", Target: 2, Icon: "🔥"},
			{Title: "Triple Threat", Description: "Complete 3 activities in a row", Target: 3, Icon: "⚡"},
		},
		domain.DifficultyMedium: {
			{Title: "Combo Master", Description: "Complete 4 activities in a row", Target: 4, Icon: "💥"},
			{Title: "Streak Builder", Description: "Complete 5 activities in a row", Target: 5, Icon: "🚀"},
		},
		domain.DifficultyHard: {
			{Title: "Combo Champion", Description: "Complete 6 activities in a row", Target: 6, Icon: "👑"},
			{Title: "Unstoppable", Description: "Complete 7 activities in a row", Target: 7, Icon: "💫"},
		},
	},
	domain.ChallengeTime: {
		domain.DifficultyEasy: {
			{Title: "Quick Start", Description: "Complete an activity within 30 minutes", Target: 1, TimeLimit: 30, Icon: "⏰"},
			{Title: "Speed Runner", Description: "Complete an activity within 15 minutes", Target: 1, TimeLimit: 15, Icon: "⚡"},
		},
		domain.DifficultyMedium: {
			{Title: "Time Challenge", Description: "Complete 2 activities within 45 minutes", Target: 2, TimeLimit: 45, Icon: "⏱️"},
			{Title: "Rapid Fire", Description: "Complete 2 activities within 30 minutes", Target: 2, TimeLimit: 30, Icon: "🔥"},
		},
		domain.DifficultyHard: {
			{Title: "Blitz Mode", Description: "Complete 3 activities within 60 minutes", Target: 3, TimeLimit: 60, Icon: "💨"},
			{Title: "Speed Demon", Description: "Complete 3 activities within 45 minutes", Target: 3, TimeLimit: 45, Icon: "🚀"},
		},
	},
	domain.ChallengeVariety: {
		domain.DifficultyEasy: {
			{Title: "Well Rounded", Description: "Try 2 different categories today", Target: 2, Icon: "🌈"},
			{Title: "Explorer", Description: "Try 3 different categories today", Target: 3, Icon: "🗺️"},
		},
		domain.DifficultyMedium: {
			{Title: "Diversified", Description: "Try 3 different categories today", Target: 3, Icon: "🎨"},
			{Title: "Renaissance", Description: "Try 4 different categories today", Target: 4, Icon: "🎭"},
		},
		domain.DifficultyHard: {
			{Title: "Polymath", Description: "Try 4 different categories today", Target: 4, Icon: "🧠"},
			{Title: "Universal", Description: "Try 5 different categories today", Target: 5, Icon: "🌟"},
		},
	},
	domain.ChallengeStreak: {
		domain.DifficultyEasy: {
			{Title: "Consistency", Description: "Maintain your current streak for 2 more days", Target: 2, Icon: "📅"},
			{Title: "Building Momentum", Description: "Maintain your streak for 3 more days", Target: 3, Icon: "🔥"},
		},
		domain.DifficultyMedium: {
			{Title: "Dedicated", Description: "Maintain your streak for 5 more days", Target: 5, Icon: "💪"},
			{Title: "Committed", Description: "Maintain your streak for 7 more days", Target: 7, Icon: "🎯"},
		},
		domain.DifficultyHard: {
			{Title: "Unbreakable", Description: "Maintain your streak for 10 more days", Target: 10, Icon: "💎"},
			{Title: "Legendary", Description: "Maintain your streak for 14 more days", Target: 14, Icon: "👑"},
		},
	},
}

// maxTargets caps the scaled target so high-level users never get
// handed an impossible day.
var maxTargets = map[domain.ChallengeType]int{
	domain.ChallengeCategory: 6,
	domain.ChallengePoints:   300,
	domain.ChallengeCombo:    8,
	domain.ChallengeTime:     4,
	domain.ChallengeVariety:  6,
	domain.ChallengeStreak:   21,
}
