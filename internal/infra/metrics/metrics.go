// Package metrics provides Prometheus metrics for the aura engine —
// counters and gauges for activities, points, streaks, challenges, and
// achievements.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Activities ─────────────────────────────────────────────────────────────

// ActivitiesCompleted tracks completed activities by category.
var ActivitiesCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "aura",
	Name:      "activities_completed_total",
	Help:      "Total completed activities.",
}, []string{"category"})

// PointsEarned tracks aura points earned by category.
var PointsEarned = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "aura",
	Name:      "points_earned_total",
	Help:      "Total aura points earned.",
}, []string{"category"})

// ─── Progression ────────────────────────────────────────────────────────────

// UserLevel tracks the current user level.
var UserLevel = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "aura",
	Name:      "user_level",
	Help:      "Current user level.",
})

// StreakDays tracks the current daily activity streak.
var StreakDays = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "aura",
	Name:      "streak_days",
	Help:      "Current daily activity streak in days.",
})

// ComboCount tracks the current combo chain length.
var ComboCount = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "aura",
	Name:      "combo_count",
	Help:      "Current combo chain length.",
})

// OnFireMode tracks whether on-fire mode is active (1=on, 0=off).
var OnFireMode = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "aura",
	Name:      "on_fire_mode",
	Help:      "Whether on-fire mode is active (1=on, 0=off).",
})

// ─── Challenges ─────────────────────────────────────────────────────────────

// ChallengesGenerated tracks generated daily challenges by type.
var ChallengesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "aura",
	Name:      "challenges_generated_total",
	Help:      "Total daily challenges generated.",
}, []string{"type"})

// ChallengesCompleted tracks completed daily challenges by type.
var ChallengesCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "aura",
	Name:      "challenges_completed_total",
	Help:      "Total daily challenges completed.",
}, []string{"type"})

// ChallengesClaimed tracks claimed challenge rewards by difficulty.
var ChallengesClaimed = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "aura",
	Name:      "challenges_claimed_total",
	Help:      "Total challenge rewards claimed.",
}, []string{"difficulty"})

// ─── Health ─────────────────────────────────────────────────────────────────

// HealthCheckStatus tracks health check results (1=healthy, 0=unhealthy).
var HealthCheckStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "aura",
	Name:      "health_check_status",
	Help:      "Health check result per component (1=healthy, 0=unhealthy).",
}, []string{"check"})

// ─── Achievements ───────────────────────────────────────────────────────────

// AchievementsUnlocked tracks unlocked achievements.
var AchievementsUnlocked = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "aura",
	Name:      "achievements_unlocked_total",
	Help:      "Total achievements unlocked.",
})
