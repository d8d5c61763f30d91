// Package reward implements the activity and reward engine: activity
// logging with multiplier-priced points, the combo and on-fire state
// machines, the per-day activity streak, achievements, and daily
// challenge lifecycle. State-mutating operations return celebration
// events; the caller decides how to render them.
package reward

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/aura-labs/aura/internal/app/challenge"
	"github.com/aura-labs/aura/internal/domain"
	"github.com/aura-labs/aura/internal/infra/metrics"
	"github.com/aura-labs/aura/internal/infra/store"
)

// Service orchestrates the reward-engine aggregates.
type Service struct {
	store *store.Store
	gen   *challenge.Generator

	mu         sync.Mutex
	suppressed map[string]time.Time // notification dedupe keys with expiry
}

// NewService creates a reward service using the given challenge generator.
func NewService(st *store.Store, gen *challenge.Generator) *Service {
	return &Service{
		store:      st,
		gen:        gen,
		suppressed: make(map[string]time.Time),
	}
}

// Activities returns all logged activities.
func (s *Service) Activities() ([]domain.Activity, error) {
	return s.store.LoadActivities()
}

// TodayActivities returns activities created on the day of now.
func (s *Service) TodayActivities(now time.Time) ([]domain.Activity, error) {
	all, err := s.store.LoadActivities()
	if err != nil {
		return nil, err
	}
	today := make([]domain.Activity, 0, len(all))
	for _, a := range all {
		if domain.SameDay(a.CreatedAt, now) {
			today = append(today, a)
		}
	}
	return today, nil
}

// Stats returns the reward-engine aggregate with the streak reconciled
// against the current clock.
func (s *Service) Stats() (domain.UserStats, error) {
	return s.StatsAt(time.Now())
}

// StatsAt is the clock-injected variant of Stats. A streak that lapsed
// since the last write is zeroed on read and the correction persisted.
func (s *Service) StatsAt(now time.Time) (domain.UserStats, error) {
	stats, err := s.store.LoadUserStats()
	if err != nil {
		return domain.UserStats{}, err
	}
	if current := reconcileStreak(stats, now); current != stats.CurrentStreak {
		stats.CurrentStreak = current
		if err := s.store.SaveUserStats(stats); err != nil {
			return domain.UserStats{}, err
		}
	}
	return stats, nil
}

// AddActivity logs a new incomplete activity. Points are priced once,
// here, from the multiplier state active right now.
func (s *Service) AddActivity(title string, category domain.Category, description, emoji string) (domain.Activity, error) {
	return s.AddActivityAt(title, category, description, emoji, time.Now())
}

// AddActivityAt is the clock-injected variant of AddActivity.
func (s *Service) AddActivityAt(title string, category domain.Category, description, emoji string, now time.Time) (domain.Activity, error) {
	if title == "" {
		return domain.Activity{}, domain.ErrEmptyTitle
	}
	cfg, ok := domain.CategoryByID(category)
	if !ok {
		return domain.Activity{}, fmt.Errorf("%w: %s", domain.ErrUnknownCategory, category)
	}

	stats, err := s.StatsAt(now)
	if err != nil {
		return domain.Activity{}, err
	}

	activity := domain.Activity{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Category:    category,
		Points:      stats.PointsWithMultipliers(cfg.BasePoints, cfg.Multiplier),
		CreatedAt:   now,
		Emoji:       emoji,
	}

	activities, err := s.store.LoadActivities()
	if err != nil {
		return domain.Activity{}, err
	}
	activities = append(activities, activity)
	if err := s.store.SaveActivities(activities); err != nil {
		return domain.Activity{}, err
	}
	return activity, nil
}

// ToggleActivity flips an activity's completion state and runs the full
// stats recompute. Completing an activity feeds the combo, on-fire,
// streak, challenge, and achievement machinery; un-completing only
// recomputes derived totals.
func (s *Service) ToggleActivity(id string) (domain.Activity, []domain.Event, error) {
	return s.ToggleActivityAt(id, time.Now())
}

// ToggleActivityAt is the clock-injected variant of ToggleActivity.
func (s *Service) ToggleActivityAt(id string, now time.Time) (domain.Activity, []domain.Event, error) {
	activities, err := s.store.LoadActivities()
	if err != nil {
		return domain.Activity{}, nil, err
	}

	idx := -1
	for i, a := range activities {
		if a.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.Activity{}, nil, fmt.Errorf("%w: %s", domain.ErrActivityNotFound, id)
	}

	activities[idx].Completed = !activities[idx].Completed
	if activities[idx].Completed {
		ts := now
		activities[idx].CompletedAt = &ts
	} else {
		activities[idx].CompletedAt = nil
	}
	if err := s.store.SaveActivities(activities); err != nil {
		return domain.Activity{}, nil, err
	}

	var completed *domain.Activity
	if activities[idx].Completed {
		completed = &activities[idx]
		metrics.ActivitiesCompleted.WithLabelValues(string(completed.Category)).Inc()
		metrics.PointsEarned.WithLabelValues(string(completed.Category)).Add(float64(completed.Points))
	}

	stats, err := s.store.LoadUserStats()
	if err != nil {
		return domain.Activity{}, nil, err
	}
	events := s.recomputeStats(&stats, activities, completed, now)
	if err := s.store.SaveUserStats(stats); err != nil {
		return domain.Activity{}, nil, err
	}
	return activities[idx], events, nil
}

// DeleteActivity removes an activity and recomputes derived stats.
// Achievements already unlocked stay unlocked.
func (s *Service) DeleteActivity(id string) error {
	return s.DeleteActivityAt(id, time.Now())
}

// DeleteActivityAt is the clock-injected variant of DeleteActivity.
func (s *Service) DeleteActivityAt(id string, now time.Time) error {
	activities, err := s.store.LoadActivities()
	if err != nil {
		return err
	}

	kept := activities[:0]
	found := false
	for _, a := range activities {
		if a.ID == id {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return fmt.Errorf("%w: %s", domain.ErrActivityNotFound, id)
	}
	if err := s.store.SaveActivities(kept); err != nil {
		return err
	}

	stats, err := s.store.LoadUserStats()
	if err != nil {
		return err
	}
	s.recomputeStats(&stats, kept, nil, now)
	return s.store.SaveUserStats(stats)
}

// TodayPoints sums points of activities completed on the day of now.
func (s *Service) TodayPoints(now time.Time) (int, error) {
	activities, err := s.store.LoadActivities()
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, a := range activities {
		if a.Completed && a.CompletedAt != nil && domain.SameDay(*a.CompletedAt, now) {
			sum += a.Points
		}
	}
	return sum, nil
}

// FavoriteCategory returns the category with the most completions, or
// empty when nothing is completed yet.
func FavoriteCategory(activities []domain.Activity) domain.Category {
	counts := map[domain.Category]int{}
	for _, a := range activities {
		if a.Completed {
			counts[a.Category]++
		}
	}
	var best domain.Category
	bestN := 0
	for _, c := range domain.Categories {
		if n := counts[c.ID]; n > bestN {
			best, bestN = c.ID, n
		}
	}
	return best
}

// ─── Stats Recompute ────────────────────────────────────────────────────────

// recomputeStats rebuilds every derived stat from the activity list and
// advances the transient state machines when a completion triggered the
// recompute. It mutates stats in place and returns celebration events
// in the order they occurred.
func (s *Service) recomputeStats(stats *domain.UserStats, activities []domain.Activity, completed *domain.Activity, now time.Time) []domain.Event {
	var events []domain.Event

	var completedActs []domain.Activity
	pointsSum := 0
	for _, a := range activities {
		if a.Completed {
			completedActs = append(completedActs, a)
			pointsSum += a.Points
		}
	}
	stats.TotalPoints = pointsSum + stats.BonusPoints
	stats.CompletedActivities = len(completedActs)

	newLevel := domain.LevelForPoints(stats.TotalPoints)
	if newLevel > stats.Level {
		events = append(events, domain.Event{
			Type:    domain.EventLevelUp,
			Message: fmt.Sprintf("Level up! You reached level %d", newLevel),
			Value:   newLevel,
		})
	}
	stats.Level = newLevel

	if completed != nil {
		t := nextCombo(*stats, completed.Category, now)
		applyCombo(stats, t, completed.Category, now)
		if !t.NewCombo && t.Count == 2 {
			events = append(events, domain.Event{
				Type:    domain.EventComboStarted,
				Message: "Combo! Keep the chain going",
				Value:   t.Count,
			})
		}

		if activated, _ := checkOnFire(stats, completed.Category, now); activated {
			events = append(events, domain.Event{
				Type:    domain.EventOnFireActivated,
				Message: "You're on fire! Double points for 10 minutes",
			})
		}

		events = append(events, s.applyChallengeProgress(stats, *completed, activities, now)...)
	}

	// Per-day activity streak. Only completions dated today advance it.
	today := domain.ToISODate(now)
	todayCompleted := 0
	for _, a := range completedActs {
		at := a.CreatedAt
		if a.CompletedAt != nil {
			at = *a.CompletedAt
		}
		if domain.ToISODate(at) == today {
			todayCompleted++
		}
	}

	prevStreak := stats.CurrentStreak
	if todayCompleted > 0 {
		upd := nextDailyStreak(*stats, now)
		if upd.UsedFreeze && stats.StreakFreezes > 0 {
			stats.StreakFreezes--
		}
		stats.CurrentStreak = upd.Streak
		stats.LastActivityDate = today
	}
	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	stats.StreakHistory = upsertStreakHistory(stats.StreakHistory, today, todayCompleted > 0, now)

	if growth := stats.CurrentStreak - prevStreak; growth > 0 {
		events = append(events, s.advanceStreakChallenges(stats, growth, now)...)
	}
	if stats.CurrentStreak != prevStreak {
		switch stats.CurrentStreak {
		case 7, 30, 100:
			events = append(events, domain.Event{
				Type:    domain.EventStreakMilestone,
				Message: fmt.Sprintf("%d day streak!", stats.CurrentStreak),
				Value:   stats.CurrentStreak,
			})
		}
	}

	for _, def := range evaluateAchievements(stats, completedActs, now) {
		metrics.AchievementsUnlocked.Inc()
		events = append(events, domain.Event{
			Type:    domain.EventAchievementUnlocked,
			Message: fmt.Sprintf("Achievement unlocked: %s %s", def.Icon, def.Title),
		})
	}

	metrics.UserLevel.Set(float64(stats.Level))
	metrics.StreakDays.Set(float64(stats.CurrentStreak))
	metrics.ComboCount.Set(float64(stats.ComboCount))
	if stats.OnFireMode {
		metrics.OnFireMode.Set(1)
	} else {
		metrics.OnFireMode.Set(0)
	}
	return events
}
