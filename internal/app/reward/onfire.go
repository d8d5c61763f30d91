package reward

import (
	"time"

	"github.com/aura-labs/aura/internal/domain"
)

const (
	// onFireThreshold completions within onFireWindow activate on-fire mode.
	onFireThreshold = 5
	onFireWindow    = 10 * time.Minute
)

// checkOnFire pushes the completion into the recent-activity window and
// advances the on-fire state machine. Activation and deactivation are
// mutually exclusive on a single completion: an expired session
// deactivates first and may re-activate on a later one.
func checkOnFire(stats *domain.UserStats, category domain.Category, now time.Time) (activated, deactivated bool) {
	stats.RecentActivities.Push(domain.RecentActivity{Timestamp: now, Category: category})

	inWindow := stats.RecentActivities.CountSince(now.Add(-onFireWindow))
	switch {
	case !stats.OnFireMode && inWindow >= onFireThreshold:
		stats.OnFireMode = true
		stats.OnFireStartTime = now
		stats.OnFireActivities = 1
		return true, false
	case stats.OnFireMode && now.Sub(stats.OnFireStartTime) > onFireWindow:
		stats.OnFireMode = false
		stats.OnFireStartTime = time.Time{}
		stats.OnFireActivities = 0
		return false, true
	case stats.OnFireMode:
		stats.OnFireActivities++
	}
	return false, false
}
