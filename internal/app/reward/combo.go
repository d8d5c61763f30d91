package reward

import (
	"time"

	"github.com/aura-labs/aura/internal/domain"
	"github.com/aura-labs/aura/internal/infra/metrics"
)

// comboWindow is how long a combo stays alive between completions.
const comboWindow = 60 * time.Second

// comboTransition is the outcome of feeding one completion into the
// combo state machine.
type comboTransition struct {
	Count      int
	Multiplier float64
	NewCombo   bool
}

// nextCombo advances the combo chain for a completion at now. A
// completion within comboWindow of the previous one extends the chain;
// anything else, including the very first completion, starts a fresh
// chain at multiplier 1.0. Expiry is lazy — an idle chain only dies
// when the next completion arrives late.
func nextCombo(stats domain.UserStats, category domain.Category, now time.Time) comboTransition {
	if !stats.LastComboActivityTime.IsZero() &&
		now.Sub(stats.LastComboActivityTime) <= comboWindow {
		count := stats.ComboCount + 1
		mult := 1.0 + float64(count)*0.1
		if mult > 2.0 {
			mult = 2.0
		}
		if stats.ComboCategory == category {
			mult += 0.2
		}
		return comboTransition{Count: count, Multiplier: mult}
	}
	return comboTransition{Count: 1, Multiplier: 1.0, NewCombo: true}
}

// ResetCombo explicitly zeroes the combo state and persists it. This
// is the only eager combo reset; expiry otherwise stays lazy and no
// timer ever calls this.
func (s *Service) ResetCombo() error {
	stats, err := s.store.LoadUserStats()
	if err != nil {
		return err
	}
	stats.ComboCount = 0
	stats.ComboMultiplier = 1.0
	stats.ComboCategory = ""
	stats.ComboStartTime = time.Time{}
	stats.LastComboActivityTime = time.Time{}
	if err := s.store.SaveUserStats(stats); err != nil {
		return err
	}
	metrics.ComboCount.Set(0)
	return nil
}

// applyCombo writes a transition into the stats. Category and
// last-activity time update on every transition; the start time only
// when a fresh chain begins.
func applyCombo(stats *domain.UserStats, t comboTransition, category domain.Category, now time.Time) {
	stats.ComboCount = t.Count
	stats.ComboMultiplier = t.Multiplier
	stats.ComboCategory = category
	stats.LastComboActivityTime = now
	if t.NewCombo {
		stats.ComboStartTime = now
	}
}
