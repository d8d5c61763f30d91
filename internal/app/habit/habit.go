// Package habit implements the habit streak engine: daily pass/fail
// marks, consecutive-day streak computation, and streak history.
// Its streak counter is a separate bounded context from the reward
// engine's per-day streak — the two track different criteria.
package habit

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/aura-labs/aura/internal/domain"
	"github.com/aura-labs/aura/internal/infra/store"
)

// Service maintains the HabitData aggregate.
type Service struct {
	store    *store.Store
	defaults domain.HabitSettings
}

// NewService creates a habit service. The settings seed fresh data
// only; stored settings always win once data exists.
func NewService(st *store.Store, defaults domain.HabitSettings) *Service {
	return &Service{store: st, defaults: defaults}
}

// Data loads the current habit aggregate.
func (s *Service) Data() (domain.HabitData, error) {
	data, err := s.store.LoadHabitData()
	if err != nil {
		return domain.HabitData{}, err
	}
	if len(data.DailyRecords) == 0 && len(data.StreakHistory) == 0 && data.CurrentStreak == 0 {
		data.Settings = s.defaults
	}
	return data, nil
}

// MarkDaySuccessful marks a date as a successful day.
func (s *Service) MarkDaySuccessful(date time.Time) (domain.HabitData, error) {
	return s.MarkDaySuccessfulAt(date, time.Now())
}

// MarkDaySuccessfulAt is the clock-injected variant of MarkDaySuccessful.
// It validates the date, upserts a successful record, and recomputes
// the streak by scanning backward from today.
func (s *Service) MarkDaySuccessfulAt(date, now time.Time) (domain.HabitData, error) {
	data, err := s.Data()
	if err != nil {
		return domain.HabitData{}, err
	}
	if err := domain.CanMarkDate(date, now, data.Settings); err != nil {
		return domain.HabitData{}, err
	}

	data.DailyRecords = upsertRecord(data.DailyRecords, domain.DailyRecord{
		Date:       domain.ToISODate(date),
		Successful: true,
		Timestamp:  now.UnixMilli(),
	})

	streak := currentStreak(data.DailyRecords, now)
	data.CurrentStreak = streak
	data.StreakStartDate = streakStartDate(streak, now)
	if streak > data.BestStreak {
		data.BestStreak = streak
	}

	if err := s.store.SaveHabitData(data); err != nil {
		return domain.HabitData{}, err
	}
	return data, nil
}

// MarkDayUnsuccessful marks a date as a failed day, unconditionally
// truncating any running streak. Streak freezes never apply here.
func (s *Service) MarkDayUnsuccessful(date time.Time) (domain.HabitData, error) {
	return s.MarkDayUnsuccessfulAt(date, time.Now())
}

// MarkDayUnsuccessfulAt is the clock-injected variant of MarkDayUnsuccessful.
func (s *Service) MarkDayUnsuccessfulAt(date, now time.Time) (domain.HabitData, error) {
	data, err := s.Data()
	if err != nil {
		return domain.HabitData{}, err
	}
	if err := domain.CanMarkDate(date, now, data.Settings); err != nil {
		return domain.HabitData{}, err
	}

	dateStr := domain.ToISODate(date)
	data.DailyRecords = upsertRecord(data.DailyRecords, domain.DailyRecord{
		Date:       dateStr,
		Successful: false,
		Timestamp:  now.UnixMilli(),
	})

	if data.CurrentStreak > 0 && data.StreakStartDate != "" {
		data.StreakHistory = append(data.StreakHistory, domain.StreakHistoryEntry{
			StartDate: data.StreakStartDate,
			EndDate:   dateStr,
			Duration:  data.CurrentStreak,
			EndReason: domain.EndUnsuccessfulDay,
		})
	}
	data.CurrentStreak = 0
	data.StreakStartDate = ""

	if err := s.store.SaveHabitData(data); err != nil {
		return domain.HabitData{}, err
	}
	return data, nil
}

// ResetStreak terminates the current streak, recording it in history.
// Irreversible; no undo.
func (s *Service) ResetStreak(manual bool) (domain.HabitData, error) {
	return s.ResetStreakAt(manual, time.Now())
}

// ResetStreakAt is the clock-injected variant of ResetStreak.
func (s *Service) ResetStreakAt(manual bool, now time.Time) (domain.HabitData, error) {
	data, err := s.Data()
	if err != nil {
		return domain.HabitData{}, err
	}

	if data.CurrentStreak > 0 && data.StreakStartDate != "" {
		reason := domain.EndUnsuccessfulDay
		if manual {
			reason = domain.EndManualReset
		}
		data.StreakHistory = append(data.StreakHistory, domain.StreakHistoryEntry{
			StartDate: data.StreakStartDate,
			EndDate:   domain.ToISODate(now),
			Duration:  data.CurrentStreak,
			EndReason: reason,
		})
	}
	data.CurrentStreak = 0
	data.StreakStartDate = ""

	if err := s.store.SaveHabitData(data); err != nil {
		return domain.HabitData{}, err
	}
	return data, nil
}

// Export returns the habit aggregate as pretty-printed JSON for backup.
func (s *Service) Export() (string, error) {
	data, err := s.Data()
	if err != nil {
		return "", err
	}
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("export habit data: %w", err)
	}
	return string(raw), nil
}

// Import replaces the habit aggregate from a JSON backup.
// The blob must pass structural validation.
func (s *Service) Import(raw string) (domain.HabitData, error) {
	var data domain.HabitData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return domain.HabitData{}, fmt.Errorf("import habit data: %w", err)
	}
	if err := data.Validate(); err != nil {
		return domain.HabitData{}, fmt.Errorf("import habit data: %w", err)
	}
	if err := s.store.SaveHabitData(data); err != nil {
		return domain.HabitData{}, err
	}
	return data, nil
}

// ─── Streak Computation ─────────────────────────────────────────────────────

// upsertRecord replaces the record for its date, or appends.
// Last write wins; one record per calendar date.
func upsertRecord(records []domain.DailyRecord, rec domain.DailyRecord) []domain.DailyRecord {
	for i, r := range records {
		if r.Date == rec.Date {
			records[i] = rec
			return records
		}
	}
	return append(records, rec)
}

// currentStreak counts strictly consecutive successful calendar days
// backward from today. The scan stops at the first gap or the first
// unsuccessful record.
func currentStreak(records []domain.DailyRecord, now time.Time) int {
	if len(records) == 0 {
		return 0
	}

	sorted := make([]domain.DailyRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date > sorted[j].Date })

	streak := 0
	today := domain.StartOfDay(now)
	for _, rec := range sorted {
		if !rec.Successful {
			break
		}
		expected := domain.ToISODate(today.AddDate(0, 0, -streak))
		if rec.Date != expected {
			break
		}
		streak++
	}
	return streak
}

// streakStartDate is the earliest date of the consecutive run ending today.
func streakStartDate(streak int, now time.Time) string {
	if streak == 0 {
		return ""
	}
	return domain.ToISODate(domain.StartOfDay(now).AddDate(0, 0, -(streak - 1)))
}
