package reward

import (
	"time"

	"github.com/aura-labs/aura/internal/domain"
)

// streakHistoryDays is how far back the per-day completion history is kept.
const streakHistoryDays = 365

// streakUpdate is the outcome of advancing the per-day activity streak.
type streakUpdate struct {
	Streak     int
	UsedFreeze bool
}

// nextDailyStreak advances the streak for a completion on the day of
// now. A one-day gap extends the streak; a longer gap consumes a
// streak freeze to preserve it, or resets to 1 when none remain.
func nextDailyStreak(stats domain.UserStats, now time.Time) streakUpdate {
	if stats.LastActivityDate == "" {
		return streakUpdate{Streak: 1}
	}

	last, err := time.ParseInLocation(domain.ISODate, stats.LastActivityDate, now.Location())
	if err != nil {
		return streakUpdate{Streak: 1}
	}
	if domain.SameDay(last, now) {
		return streakUpdate{Streak: stats.CurrentStreak}
	}

	switch gap := domain.DaysBetween(last, now); {
	case gap == 1:
		return streakUpdate{Streak: stats.CurrentStreak + 1}
	case gap > 1 && stats.StreakFreezes > 0:
		return streakUpdate{Streak: stats.CurrentStreak, UsedFreeze: true}
	case gap > 1:
		return streakUpdate{Streak: 1}
	default:
		return streakUpdate{Streak: stats.CurrentStreak}
	}
}

// upsertStreakHistory records today's completion flag and prunes
// entries older than the trailing year.
func upsertStreakHistory(history []domain.DayCompletion, date string, completed bool, now time.Time) []domain.DayCompletion {
	found := false
	for i, h := range history {
		if h.Date == date {
			history[i].Completed = completed
			found = true
			break
		}
	}
	if !found {
		history = append(history, domain.DayCompletion{Date: date, Completed: completed})
	}

	cutoff := now.AddDate(0, 0, -streakHistoryDays)
	kept := history[:0]
	for _, h := range history {
		d, err := time.ParseInLocation(domain.ISODate, h.Date, now.Location())
		if err != nil {
			continue
		}
		if !d.Before(cutoff) {
			kept = append(kept, h)
		}
	}
	return kept
}

// reconcileStreak recomputes the streak a stored aggregate should show
// right now, without consuming a freeze. A streak lapses on read only
// when the gap has grown past one day and no freeze could cover it.
func reconcileStreak(stats domain.UserStats, now time.Time) int {
	if stats.LastActivityDate == "" {
		return 0
	}
	last, err := time.ParseInLocation(domain.ISODate, stats.LastActivityDate, now.Location())
	if err != nil {
		return 0
	}
	gap := domain.DaysBetween(last, now)
	if gap <= 1 || stats.StreakFreezes > 0 {
		return stats.CurrentStreak
	}
	return 0
}
