// Package challenge generates the rotating daily challenge batch.
// The generator is pure: it reads a user snapshot and a clock, writes
// nothing, and draws all randomness from an injected source so callers
// can seed it for reproducible output.
package challenge

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/aura-labs/aura/internal/domain"
)

// BatchSize is the number of challenges generated per day.
const BatchSize = 3

// Generator stamps out daily challenge batches.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator backed by its own time-seeded source.
func NewGenerator() *Generator {
	return NewSeededGenerator(time.Now().UnixNano())
}

// NewSeededGenerator creates a generator with deterministic output for
// a given seed. Tests use this.
func NewSeededGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// GenerateDaily produces the day's batch of exactly BatchSize
// challenges, all expiring at the end of the calendar day of now.
func (g *Generator) GenerateDaily(ctx domain.GenerationContext, now time.Time) []domain.DailyChallenge {
	expiresAt := domain.EndOfDay(now)
	batch := make([]domain.DailyChallenge, 0, BatchSize)

	for i := 0; i < BatchSize; i++ {
		typ := g.selectType(ctx, batch)
		diff := g.selectDifficulty(ctx.UserLevel)
		tpl := g.pickTemplate(typ, diff)

		var category domain.Category
		if typ == domain.ChallengeCategory {
			category = g.selectCategory(ctx)
		}

		batch = append(batch, domain.DailyChallenge{
			ID:          fmt.Sprintf("challenge-%d-%d", now.UnixMilli(), i),
			Type:        typ,
			Title:       tpl.Title,
			Description: tpl.Description,
			Icon:        tpl.Icon,
			Target:      scaleTarget(tpl.Target, typ, ctx),
			Current:     0,
			Category:    category,
			TimeLimit:   tpl.TimeLimit,
			Reward:      g.reward(typ, diff, ctx.UserLevel),
			Difficulty:  diff,
			CreatedAt:   now,
			ExpiresAt:   expiresAt,
		})
	}
	return batch
}

// selectType draws a challenge type from the weighted distribution.
// Weights shift with the user snapshot, and types already in the batch
// are damped so a day rarely repeats itself.
func (g *Generator) selectType(ctx domain.GenerationContext, batch []domain.DailyChallenge) domain.ChallengeType {
	weights := map[domain.ChallengeType]float64{
		domain.ChallengeCategory: 0.30,
		domain.ChallengePoints:   0.25,
		domain.ChallengeCombo:    0.15,
		domain.ChallengeTime:     0.10,
		domain.ChallengeVariety:  0.10,
		domain.ChallengeStreak:   0.10,
	}

	if ctx.FavoriteCategory != "" {
		weights[domain.ChallengeCategory] += 0.10
		weights[domain.ChallengePoints] += 0.05
	}
	if ctx.TodayCompletedActivities > 0 {
		weights[domain.ChallengeCombo] += 0.10
		weights[domain.ChallengeTime] += 0.05
	}
	if ctx.CurrentStreak > 3 {
		weights[domain.ChallengeStreak] += 0.10
	}
	for _, c := range batch {
		weights[c.Type] *= 0.7
	}

	// Walk types in canonical order so the draw is stable for a seed.
	var total float64
	for _, typ := range domain.ChallengeTypes {
		total += weights[typ]
	}
	r := g.rng.Float64() * total
	var cum float64
	for _, typ := range domain.ChallengeTypes {
		cum += weights[typ]
		if r <= cum {
			return typ
		}
	}
	return domain.ChallengeCategory
}

// selectDifficulty draws a tier from the level-banded distribution.
func (g *Generator) selectDifficulty(level int) domain.Difficulty {
	var easy, medium float64
	switch {
	case level <= 5:
		easy, medium = 0.70, 0.25
	case level <= 15:
		easy, medium = 0.50, 0.40
	default:
		easy, medium = 0.30, 0.50
	}

	r := g.rng.Float64()
	switch {
	case r <= easy:
		return domain.DifficultyEasy
	case r <= easy+medium:
		return domain.DifficultyMedium
	default:
		return domain.DifficultyHard
	}
}

func (g *Generator) pickTemplate(typ domain.ChallengeType, diff domain.Difficulty) template {
	pool := templates[typ][diff]
	return pool[g.rng.Intn(len(pool))]
}

// scaleTarget grows the template target for experienced users, capped
// per type.
func scaleTarget(target int, typ domain.ChallengeType, ctx domain.GenerationContext) int {
	scaled := target
	if ctx.UserLevel > 10 {
		scaled = int(math.Ceil(float64(scaled) * 1.2))
	}
	if ctx.CurrentStreak > 7 {
		scaled = int(math.Ceil(float64(scaled) * 1.1))
	}
	if max := maxTargets[typ]; scaled > max {
		scaled = max
	}
	return scaled
}

// selectCategory picks the category a category-type challenge binds to:
// the favorite most of the time, otherwise drifting toward categories
// the user has not touched recently.
func (g *Generator) selectCategory(ctx domain.GenerationContext) domain.Category {
	all := make([]domain.Category, 0, len(domain.Categories))
	for _, c := range domain.Categories {
		all = append(all, c.ID)
	}

	if ctx.FavoriteCategory != "" && g.rng.Float64() < 0.6 {
		return ctx.FavoriteCategory
	}

	recent := make(map[domain.Category]bool, len(ctx.RecentCategories))
	for _, c := range ctx.RecentCategories {
		recent[c] = true
	}
	nonRecent := make([]domain.Category, 0, len(all))
	for _, c := range all {
		if !recent[c] {
			nonRecent = append(nonRecent, c)
		}
	}

	nonRecentProb := 1.0
	if len(ctx.RecentCategories) > 0 {
		nonRecentProb = 0.3
	}
	if len(nonRecent) > 0 && g.rng.Float64() < nonRecentProb {
		return nonRecent[g.rng.Intn(len(nonRecent))]
	}
	return all[g.rng.Intn(len(all))]
}

// reward computes the claim payout for a challenge before it is issued.
func (g *Generator) reward(typ domain.ChallengeType, diff domain.Difficulty, level int) domain.ChallengeReward {
	var xp int
	switch diff {
	case domain.DifficultyMedium:
		xp = 50
	case domain.DifficultyHard:
		xp = 100
	default:
		xp = 25
	}
	if level > 20 {
		xp = int(math.Ceil(float64(xp) * 1.5))
	} else if level > 10 {
		xp = int(math.Ceil(float64(xp) * 1.25))
	}

	r := domain.ChallengeReward{XP: xp}
	if diff == domain.DifficultyHard && g.rng.Float64() < 0.3 {
		r.StreakFreezes = 1
	}
	if typ == domain.ChallengeStreak && diff == domain.DifficultyHard {
		r.Special = "Streak Freeze Bonus"
	}
	return r
}
