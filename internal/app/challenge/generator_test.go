package challenge_test

import (
	"math"
	"testing"
	"time"

	"github.com/aura-labs/aura/internal/app/challenge"
	"github.com/aura-labs/aura/internal/domain"
)

func testContext() domain.GenerationContext {
	return domain.GenerationContext{
		UserLevel:                3,
		CurrentStreak:            1,
		TotalCompletedActivities: 12,
		RecentCategories:         []domain.Category{domain.CatHealth},
	}
}

func TestGenerateDaily_BatchOfThree(t *testing.T) {
	gen := challenge.NewSeededGenerator(42)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	batch := gen.GenerateDaily(testContext(), now)
	if len(batch) != challenge.BatchSize {
		t.Fatalf("expected %d challenges, got %d", challenge.BatchSize, len(batch))
	}

	seen := map[string]bool{}
	for _, c := range batch {
		if err := c.Validate(); err != nil {
			t.Errorf("challenge %s invalid: %v", c.ID, err)
		}
		if seen[c.ID] {
			t.Errorf("duplicate challenge id %s", c.ID)
		}
		seen[c.ID] = true
		if c.Current != 0 {
			t.Errorf("challenge %s starts at progress %d", c.ID, c.Current)
		}
		if c.Completed || c.Claimed {
			t.Errorf("challenge %s not issued fresh", c.ID)
		}
		if !domain.SameDay(c.ExpiresAt, now) {
			t.Errorf("challenge %s expires on %v, want same day as %v", c.ID, c.ExpiresAt, now)
		}
		if c.ExpiresAt.Before(now) {
			t.Errorf("challenge %s already expired at issue", c.ID)
		}
	}
}

func TestGenerateDaily_DeterministicForSeed(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	ctx := testContext()

	a := challenge.NewSeededGenerator(7).GenerateDaily(ctx, now)
	b := challenge.NewSeededGenerator(7).GenerateDaily(ctx, now)

	for i := range a {
		if a[i].Type != b[i].Type || a[i].Title != b[i].Title ||
			a[i].Difficulty != b[i].Difficulty || a[i].Target != b[i].Target {
			t.Errorf("challenge %d differs across same-seed runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateDaily_CategoryChallengesCarryCategory(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	ctx := testContext()

	// Many seeds guarantee category-type challenges show up.
	for seed := int64(0); seed < 25; seed++ {
		for _, c := range challenge.NewSeededGenerator(seed).GenerateDaily(ctx, now) {
			if c.Type == domain.ChallengeCategory {
				if _, ok := domain.CategoryByID(c.Category); !ok {
					t.Errorf("seed %d: category challenge has unknown category %q", seed, c.Category)
				}
			} else if c.Category != "" {
				t.Errorf("seed %d: %s challenge carries category %q", seed, c.Type, c.Category)
			}
			if c.Type == domain.ChallengeTime && c.TimeLimit <= 0 {
				t.Errorf("seed %d: time challenge missing time limit", seed)
			}
		}
	}
}

func TestGenerateDaily_TargetsRespectCaps(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	ctx := domain.GenerationContext{
		UserLevel:     40, // both scale factors apply
		CurrentStreak: 120,
	}
	caps := map[domain.ChallengeType]int{
		domain.ChallengeCategory: 6,
		domain.ChallengePoints:   300,
		domain.ChallengeCombo:    8,
		domain.ChallengeTime:     4,
		domain.ChallengeVariety:  6,
		domain.ChallengeStreak:   21,
	}

	for seed := int64(0); seed < 50; seed++ {
		for _, c := range challenge.NewSeededGenerator(seed).GenerateDaily(ctx, now) {
			if c.Target > caps[c.Type] {
				t.Errorf("seed %d: %s target %d exceeds cap %d", seed, c.Type, c.Target, caps[c.Type])
			}
			if c.Target <= 0 {
				t.Errorf("seed %d: %s target %d not positive", seed, c.Type, c.Target)
			}
		}
	}
}

func TestGenerateDaily_RewardScalesWithDifficultyAndLevel(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)

	base := map[domain.Difficulty]int{
		domain.DifficultyEasy:   25,
		domain.DifficultyMedium: 50,
		domain.DifficultyHard:   100,
	}

	// Level 3: no multiplier. Level 12: 1.25x. Level 25: 1.5x.
	cases := []struct {
		level int
		mult  float64
	}{
		{3, 1.0},
		{12, 1.25},
		{25, 1.5},
	}
	for _, tc := range cases {
		ctx := domain.GenerationContext{UserLevel: tc.level}
		for seed := int64(0); seed < 30; seed++ {
			for _, c := range challenge.NewSeededGenerator(seed).GenerateDaily(ctx, now) {
				want := int(math.Ceil(float64(base[c.Difficulty]) * tc.mult))
				if c.Reward.XP != want {
					t.Errorf("level %d seed %d: %s reward %d, want %d",
						tc.level, seed, c.Difficulty, c.Reward.XP, want)
				}
				if c.Type == domain.ChallengeStreak && c.Difficulty == domain.DifficultyHard &&
					c.Reward.Special == "" {
					t.Errorf("level %d seed %d: hard streak challenge missing special reward", tc.level, seed)
				}
			}
		}
	}
}

func TestGenerateDaily_LowLevelSkewsEasy(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	ctx := domain.GenerationContext{UserLevel: 1}

	counts := map[domain.Difficulty]int{}
	for seed := int64(0); seed < 100; seed++ {
		for _, c := range challenge.NewSeededGenerator(seed).GenerateDaily(ctx, now) {
			counts[c.Difficulty]++
		}
	}
	if counts[domain.DifficultyEasy] <= counts[domain.DifficultyHard] {
		t.Errorf("expected easy to dominate at level 1, got easy=%d hard=%d",
			counts[domain.DifficultyEasy], counts[domain.DifficultyHard])
	}
}
