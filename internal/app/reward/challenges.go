package reward

import (
	"fmt"
	"time"

	"github.com/aura-labs/aura/internal/domain"
	"github.com/aura-labs/aura/internal/infra/metrics"
)

// suppressionTTL is how long a fired milestone notification stays
// deduplicated.
const suppressionTTL = 5 * time.Minute

// EnsureDailyChallenges makes sure today's challenge batch exists,
// generating a fresh one when the stored batch is from a previous day.
func (s *Service) EnsureDailyChallenges() ([]domain.DailyChallenge, error) {
	return s.EnsureDailyChallengesAt(time.Now())
}

// EnsureDailyChallengesAt is the clock-injected variant of
// EnsureDailyChallenges. Same-day calls are idempotent and preserve
// progress on the current batch.
func (s *Service) EnsureDailyChallengesAt(now time.Time) ([]domain.DailyChallenge, error) {
	stats, err := s.store.LoadUserStats()
	if err != nil {
		return nil, err
	}

	if len(stats.ActiveChallenges) > 0 &&
		domain.SameDay(stats.ActiveChallenges[0].CreatedAt, now) {
		return stats.ActiveChallenges, nil
	}

	activities, err := s.store.LoadActivities()
	if err != nil {
		return nil, err
	}
	todayCompleted := 0
	var recentCategories []domain.Category
	for _, a := range activities {
		if !domain.SameDay(a.CreatedAt, now) {
			continue
		}
		recentCategories = append(recentCategories, a.Category)
		if a.Completed {
			todayCompleted++
		}
	}

	batch := s.gen.GenerateDaily(domain.GenerationContext{
		UserLevel:                stats.Level,
		CurrentStreak:            stats.CurrentStreak,
		TotalCompletedActivities: stats.CompletedActivities,
		FavoriteCategory:         FavoriteCategory(activities),
		RecentCategories:         recentCategories,
		TodayCompletedActivities: todayCompleted,
	}, now)

	stats.ActiveChallenges = batch
	stats.ChallengeProgress = make([]domain.ChallengeProgress, 0, len(batch))
	for _, c := range batch {
		stats.ChallengeProgress = append(stats.ChallengeProgress, domain.ChallengeProgress{
			ChallengeID: c.ID,
			LastUpdated: now,
		})
		metrics.ChallengesGenerated.WithLabelValues(string(c.Type)).Inc()
	}

	if err := s.store.SaveUserStats(stats); err != nil {
		return nil, err
	}
	return batch, nil
}

// ActiveChallenges returns the current batch. Expiry is derived by
// callers via IsExpiredAt, never stored.
func (s *Service) ActiveChallenges() ([]domain.DailyChallenge, error) {
	stats, err := s.store.LoadUserStats()
	if err != nil {
		return nil, err
	}
	out := make([]domain.DailyChallenge, len(stats.ActiveChallenges))
	copy(out, stats.ActiveChallenges)
	return out, nil
}

// ClaimableChallenges returns completed, unclaimed, unexpired challenges.
func (s *Service) ClaimableChallenges(now time.Time) ([]domain.DailyChallenge, error) {
	stats, err := s.store.LoadUserStats()
	if err != nil {
		return nil, err
	}
	var out []domain.DailyChallenge
	for _, c := range stats.ActiveChallenges {
		if c.Completed && !c.Claimed && !c.IsExpiredAt(now) {
			out = append(out, c)
		}
	}
	return out, nil
}

// ClaimChallenge applies a completed challenge's reward.
func (s *Service) ClaimChallenge(id string) (domain.ChallengeReward, []domain.Event, error) {
	return s.ClaimChallengeAt(id, time.Now())
}

// ClaimChallengeAt is the clock-injected variant of ClaimChallenge.
// Rewards apply exactly once: a re-claim is a silent no-op. Claimed XP
// is banked as bonus points so later recomputes never lose it.
func (s *Service) ClaimChallengeAt(id string, now time.Time) (domain.ChallengeReward, []domain.Event, error) {
	stats, err := s.store.LoadUserStats()
	if err != nil {
		return domain.ChallengeReward{}, nil, err
	}

	idx := -1
	for i, c := range stats.ActiveChallenges {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.ChallengeReward{}, nil, fmt.Errorf("%w: %s", domain.ErrChallengeNotFound, id)
	}

	c := stats.ActiveChallenges[idx]
	if c.Claimed {
		return domain.ChallengeReward{}, nil, nil
	}
	if !c.Completed {
		return domain.ChallengeReward{}, nil, domain.ErrChallengeNotCompleted
	}
	if c.IsExpiredAt(now) {
		return domain.ChallengeReward{}, nil, domain.ErrChallengeExpired
	}

	stats.ActiveChallenges[idx].Claimed = true
	stats.CompletedChallenges = append(stats.CompletedChallenges, c.ID)
	stats.BonusPoints += c.Reward.XP
	stats.TotalPoints += c.Reward.XP
	stats.StreakFreezes += c.Reward.StreakFreezes

	events := []domain.Event{{
		Type:    domain.EventChallengeClaimed,
		Message: fmt.Sprintf("%s: reward claimed, +%d XP", c.Title, c.Reward.XP),
		Value:   c.Reward.XP,
	}}

	newLevel := domain.LevelForPoints(stats.TotalPoints)
	if newLevel > stats.Level {
		events = append(events, domain.Event{
			Type:    domain.EventLevelUp,
			Message: fmt.Sprintf("Level up! You reached level %d", newLevel),
			Value:   newLevel,
		})
	}
	stats.Level = newLevel

	if err := s.store.SaveUserStats(stats); err != nil {
		return domain.ChallengeReward{}, nil, err
	}
	metrics.ChallengesClaimed.WithLabelValues(string(c.Difficulty)).Inc()
	metrics.UserLevel.Set(float64(stats.Level))
	return c.Reward, events, nil
}

// ChallengeProgressFor returns stored progress toward one challenge.
func (s *Service) ChallengeProgressFor(id string) (int, error) {
	stats, err := s.store.LoadUserStats()
	if err != nil {
		return 0, err
	}
	for _, p := range stats.ChallengeProgress {
		if p.ChallengeID == id {
			return p.Progress, nil
		}
	}
	return 0, nil
}

// applyChallengeProgress feeds one completion into every live challenge
// in the batch and emits milestone and completion events. Milestones
// fire once per crossing, deduplicated for suppressionTTL.
func (s *Service) applyChallengeProgress(stats *domain.UserStats, completed domain.Activity, activities []domain.Activity, now time.Time) []domain.Event {
	var events []domain.Event

	// Distinct categories completed today, for variety challenges.
	distinct := map[domain.Category]bool{}
	for _, a := range activities {
		if a.Completed && domain.SameDay(a.CreatedAt, now) {
			distinct[a.Category] = true
		}
	}

	for i := range stats.ActiveChallenges {
		c := &stats.ActiveChallenges[i]
		if c.Completed || c.Claimed || c.IsExpiredAt(now) {
			continue
		}

		next := c.Current
		switch c.Type {
		case domain.ChallengeCategory:
			if c.Category == completed.Category {
				next++
			}
		case domain.ChallengePoints:
			next += completed.Points
		case domain.ChallengeCombo, domain.ChallengeTime:
			next++
		case domain.ChallengeVariety:
			// Progress is the distinct count, not an increment.
			next = len(distinct)
		case domain.ChallengeStreak:
			// Advanced by daily streak growth, not per completion.
		}
		events = append(events, s.setChallengeProgress(stats, i, next, now)...)
	}
	return events
}

// advanceStreakChallenges credits daily-streak growth to live streak
// challenges.
func (s *Service) advanceStreakChallenges(stats *domain.UserStats, delta int, now time.Time) []domain.Event {
	if delta <= 0 {
		return nil
	}
	var events []domain.Event
	for i := range stats.ActiveChallenges {
		c := stats.ActiveChallenges[i]
		if c.Type != domain.ChallengeStreak || c.Completed || c.Claimed || c.IsExpiredAt(now) {
			continue
		}
		events = append(events, s.setChallengeProgress(stats, i, c.Current+delta, now)...)
	}
	return events
}

// setChallengeProgress writes new progress for the i-th active
// challenge, clamped to the target, and emits the milestone and
// completion events the move crosses.
func (s *Service) setChallengeProgress(stats *domain.UserStats, i, next int, now time.Time) []domain.Event {
	c := &stats.ActiveChallenges[i]
	old := c.Current
	if next > c.Target {
		next = c.Target
	}
	if next == old {
		return nil
	}

	c.Current = next
	for j := range stats.ChallengeProgress {
		if stats.ChallengeProgress[j].ChallengeID == c.ID {
			stats.ChallengeProgress[j].Progress = next
			stats.ChallengeProgress[j].LastUpdated = now
			break
		}
	}

	var events []domain.Event
	oldPct := float64(old) / float64(c.Target) * 100
	newPct := float64(next) / float64(c.Target) * 100
	if oldPct < 50 && newPct >= 50 && !s.suppress(c.ID+"-50", now) {
		events = append(events, domain.Event{
			Type:    domain.EventChallengeMilestone,
			Message: fmt.Sprintf("%s: Halfway there!", c.Title),
			Value:   50,
		})
	}
	if oldPct < 90 && newPct >= 90 && !s.suppress(c.ID+"-90", now) {
		events = append(events, domain.Event{
			Type:    domain.EventChallengeMilestone,
			Message: fmt.Sprintf("%s: Almost done!", c.Title),
			Value:   90,
		})
	}
	if next >= c.Target {
		c.Completed = true
		metrics.ChallengesCompleted.WithLabelValues(string(c.Type)).Inc()
		if !s.suppress(c.ID+"-completed", now) {
			events = append(events, domain.Event{
				Type:    domain.EventChallengeCompleted,
				Message: fmt.Sprintf("%s: Challenge completed!", c.Title),
				Value:   100,
			})
		}
	}
	return events
}

// suppress reports whether key fired within the TTL, recording it if not.
func (s *Service) suppress(key string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, exp := range s.suppressed {
		if !now.Before(exp) {
			delete(s.suppressed, k)
		}
	}
	if exp, ok := s.suppressed[key]; ok && now.Before(exp) {
		return true
	}
	s.suppressed[key] = now.Add(suppressionTTL)
	return false
}
