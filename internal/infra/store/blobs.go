package store

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/aura-labs/aura/internal/domain"
)

// Typed accessors for the engine aggregates. Load paths treat
// corruption as non-fatal: a blob that fails to parse or fails
// structural validation is removed and replaced with defaults rather
// than surfacing a crash. Save failures propagate to the caller; the
// in-memory mutation is not rolled back and the next successful save
// catches persisted state up.

// LoadHabitData returns the habit aggregate, or defaults when absent
// or corrupted.
func (s *Store) LoadHabitData() (domain.HabitData, error) {
	raw, err := s.Get(KeyHabitData)
	if err != nil {
		return domain.HabitData{}, fmt.Errorf("load habit data: %w", err)
	}
	if raw == "" {
		return domain.DefaultHabitData(), nil
	}

	var data domain.HabitData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		log.Printf("[store] habit data corrupted, resetting to default: %v", err)
		_ = s.Remove(KeyHabitData)
		return domain.DefaultHabitData(), nil
	}
	if err := data.Validate(); err != nil {
		log.Printf("[store] habit data invalid, resetting to default: %v", err)
		_ = s.Remove(KeyHabitData)
		return domain.DefaultHabitData(), nil
	}
	return data, nil
}

// SaveHabitData validates and persists the habit aggregate,
// refreshing LastUpdated.
func (s *Store) SaveHabitData(data domain.HabitData) error {
	if err := data.Validate(); err != nil {
		return fmt.Errorf("save habit data: %w", err)
	}
	data.LastUpdated = time.Now().UnixMilli()

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("save habit data: %w", err)
	}
	if err := s.Set(KeyHabitData, string(raw)); err != nil {
		return fmt.Errorf("save habit data: %w", err)
	}
	return nil
}

// LoadUserStats returns the reward-engine aggregate, or defaults when
// absent or corrupted.
func (s *Store) LoadUserStats() (domain.UserStats, error) {
	raw, err := s.Get(KeyUserStats)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("load user stats: %w", err)
	}
	if raw == "" {
		return domain.DefaultUserStats(), nil
	}

	var stats domain.UserStats
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		log.Printf("[store] user stats corrupted, resetting to default: %v", err)
		_ = s.Remove(KeyUserStats)
		return domain.DefaultUserStats(), nil
	}
	if err := stats.Validate(); err != nil {
		log.Printf("[store] user stats invalid, resetting to default: %v", err)
		_ = s.Remove(KeyUserStats)
		return domain.DefaultUserStats(), nil
	}
	return stats, nil
}

// SaveUserStats validates and persists the reward-engine aggregate.
func (s *Store) SaveUserStats(stats domain.UserStats) error {
	if err := stats.Validate(); err != nil {
		return fmt.Errorf("save user stats: %w", err)
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("save user stats: %w", err)
	}
	if err := s.Set(KeyUserStats, string(raw)); err != nil {
		return fmt.Errorf("save user stats: %w", err)
	}
	return nil
}

// LoadActivities returns the activity list, or an empty list when
// absent or corrupted.
func (s *Store) LoadActivities() ([]domain.Activity, error) {
	raw, err := s.Get(KeyActivities)
	if err != nil {
		return nil, fmt.Errorf("load activities: %w", err)
	}
	if raw == "" {
		return []domain.Activity{}, nil
	}

	var activities []domain.Activity
	if err := json.Unmarshal([]byte(raw), &activities); err != nil {
		log.Printf("[store] activities corrupted, resetting to default: %v", err)
		_ = s.Remove(KeyActivities)
		return []domain.Activity{}, nil
	}
	if err := domain.ValidateActivities(activities); err != nil {
		log.Printf("[store] activities invalid, resetting to default: %v", err)
		_ = s.Remove(KeyActivities)
		return []domain.Activity{}, nil
	}
	return activities, nil
}

// SaveActivities validates and persists the activity list.
func (s *Store) SaveActivities(activities []domain.Activity) error {
	if err := domain.ValidateActivities(activities); err != nil {
		return fmt.Errorf("save activities: %w", err)
	}
	raw, err := json.Marshal(activities)
	if err != nil {
		return fmt.Errorf("save activities: %w", err)
	}
	if err := s.Set(KeyActivities, string(raw)); err != nil {
		return fmt.Errorf("save activities: %w", err)
	}
	return nil
}
