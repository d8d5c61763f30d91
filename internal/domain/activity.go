package domain

import "time"

// ─── Activity Types ─────────────────────────────────────────────────────────

// Category classifies an activity. Eight fixed categories.
type Category string

const (
	CatHealth       Category = "health"
	CatProductivity Category = "productivity"
	CatSocial       Category = "social"
	CatMindfulness  Category = "mindfulness"
	CatCreativity   Category = "creativity"
	CatLearning     Category = "learning"
	CatAdventure    Category = "adventure"
	CatSelfCare     Category = "self-care"
)

// CategoryConfig carries the display and scoring parameters of a category.
type CategoryConfig struct {
	ID         Category `json:"id"`
	Name       string   `json:"name"`
	Icon       string   `json:"icon"`
	BasePoints int      `json:"base_points"`
	Multiplier float64  `json:"multiplier"`
}

// Categories is the full category catalog, in display order.
var Categories = []CategoryConfig{
	{ID: CatHealth, Name: "Health", Icon: "💪", BasePoints: 15, Multiplier: 1.0},
	{ID: CatProductivity, Name: "Productivity", Icon: "⚡", BasePoints: 20, Multiplier: 1.0},
	{ID: CatSocial, Name: "Social", Icon: "👥", BasePoints: 10, Multiplier: 1.0},
	{ID: CatMindfulness, Name: "Mindfulness", Icon: "🧘", BasePoints: 15, Multiplier: 1.0},
	{ID: CatCreativity, Name: "Creativity", Icon: "🎨", BasePoints: 12, Multiplier: 1.0},
	{ID: CatLearning, Name: "Learning", Icon: "📚", BasePoints: 18, Multiplier: 1.0},
	{ID: CatAdventure, Name: "Adventure", Icon: "🗺️", BasePoints: 25, Multiplier: 1.0},
	{ID: CatSelfCare, Name: "Self-Care", Icon: "🌸", BasePoints: 10, Multiplier: 1.0},
}

// CategoryByID looks up a category config. ok is false for unknown IDs.
func CategoryByID(id Category) (CategoryConfig, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return CategoryConfig{}, false
}

// Activity is one user-logged activity. Points are computed once at
// creation time from the multiplier state active at that moment and
// never change retroactively.
type Activity struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    Category   `json:"category"`
	Points      int        `json:"points"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Completed   bool       `json:"is_completed"`
	Emoji       string     `json:"emoji,omitempty"`
}

// ValidateActivities checks structural shape of a loaded activity list.
func ValidateActivities(activities []Activity) error {
	for _, a := range activities {
		if a.ID == "" || a.Title == "" {
			return ErrInvalidState
		}
		if _, ok := CategoryByID(a.Category); !ok {
			return ErrInvalidState
		}
		if a.Points < 0 || a.CreatedAt.IsZero() {
			return ErrInvalidState
		}
	}
	return nil
}
