// Package domain holds the pure types of the Aura engine: the habit
// streak aggregate, activities and user stats, daily challenges, the
// achievement catalog types, and celebration events.
package domain

import (
	"fmt"
	"time"
)

// ─── Habit Streak Types ─────────────────────────────────────────────────────

// DailyRecord is one pass/fail mark for a calendar date.
// Unique by date — marking the same date twice overwrites in place.
type DailyRecord struct {
	Date       string `json:"date"` // YYYY-MM-DD
	Successful bool   `json:"successful"`
	Timestamp  int64  `json:"timestamp"` // epoch millis of the mark
}

// StreakEndReason says why a streak terminated.
type StreakEndReason string

const (
	EndManualReset     StreakEndReason = "manual_reset"
	EndUnsuccessfulDay StreakEndReason = "unsuccessful_day"
)

// StreakHistoryEntry records a terminated streak. Immutable once appended.
type StreakHistoryEntry struct {
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Duration  int             `json:"duration"` // days, always > 0
	EndReason StreakEndReason `json:"end_reason"`
}

// HabitSettings controls retroactive marking.
type HabitSettings struct {
	AllowRetroactive bool `json:"allow_retroactive"`
	GracePeriodHours int  `json:"grace_period_hours"`
}

// HabitData is the habit-tracking aggregate root.
// Invariants: BestStreak >= CurrentStreak; StreakStartDate is non-empty
// iff CurrentStreak > 0.
type HabitData struct {
	CurrentStreak   int                  `json:"current_streak"`
	StreakStartDate string               `json:"streak_start_date,omitempty"` // empty when no streak
	BestStreak      int                  `json:"best_streak"`
	DailyRecords    []DailyRecord        `json:"daily_records"`
	StreakHistory   []StreakHistoryEntry `json:"streak_history"`
	Settings        HabitSettings        `json:"settings"`
	LastUpdated     int64                `json:"last_updated"` // epoch millis
}

// DefaultHabitSettings returns the out-of-the-box retroactive policy.
func DefaultHabitSettings() HabitSettings {
	return HabitSettings{AllowRetroactive: true, GracePeriodHours: 24}
}

// DefaultHabitData returns a fresh habit aggregate.
func DefaultHabitData() HabitData {
	return HabitData{
		DailyRecords:  []DailyRecord{},
		StreakHistory: []StreakHistoryEntry{},
		Settings:      DefaultHabitSettings(),
		LastUpdated:   time.Now().UnixMilli(),
	}
}

// Validate checks structural shape field by field. Loaders discard the
// blob and reset to defaults when this fails — corruption is non-fatal.
func (h HabitData) Validate() error {
	if h.CurrentStreak < 0 {
		return fmt.Errorf("%w: negative current streak", ErrInvalidState)
	}
	if h.BestStreak < 0 {
		return fmt.Errorf("%w: negative best streak", ErrInvalidState)
	}
	if h.BestStreak < h.CurrentStreak {
		return fmt.Errorf("%w: best streak below current streak", ErrInvalidState)
	}
	if (h.CurrentStreak > 0) != (h.StreakStartDate != "") {
		return fmt.Errorf("%w: streak start date inconsistent with current streak", ErrInvalidState)
	}
	if h.Settings.GracePeriodHours < 0 {
		return fmt.Errorf("%w: negative grace period", ErrInvalidState)
	}
	for _, r := range h.DailyRecords {
		if _, err := time.Parse(ISODate, r.Date); err != nil {
			return fmt.Errorf("%w: bad record date %q", ErrInvalidState, r.Date)
		}
	}
	for _, s := range h.StreakHistory {
		if s.Duration <= 0 {
			return fmt.Errorf("%w: zero-length streak history entry", ErrInvalidState)
		}
		if s.EndReason != EndManualReset && s.EndReason != EndUnsuccessfulDay {
			return fmt.Errorf("%w: bad end reason %q", ErrInvalidState, s.EndReason)
		}
	}
	return nil
}

// Record returns the daily record for a date, if present.
func (h HabitData) Record(date string) (DailyRecord, bool) {
	for _, r := range h.DailyRecords {
		if r.Date == date {
			return r, true
		}
	}
	return DailyRecord{}, false
}
