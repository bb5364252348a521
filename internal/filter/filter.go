// Package filter is the pure recipe filtering engine. It operates on
// the cached catalog slice and never mutates it; re-applying the same
// criteria to its own output is a no-op.
package filter

import (
	"math"
	"strings"

	"github.com/ShyneADL/recipe-app/internal/model"
)

// Sidebar defaults. The upper bounds come from the widest values the
// catalog actually contains, so the default criteria pass everything.
const (
	DefaultCaloriesMax = 1000
	DefaultMacroMax    = 100
)

// CategoryAll and DifficultyAll disable their respective predicates.
const (
	CategoryAll   = "all"
	DifficultyAll = "All"
)

// Range is an inclusive nutrient bound.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v lies inside the range, inclusive.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Criteria is the full set of user-chosen constraints. The zero value
// is NOT the identity filter; use Default for that.
type Criteria struct {
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Query      string `json:"query"`

	Calories Range `json:"calories"`
	Protein  Range `json:"protein"`
	Carbs    Range `json:"carbs"`
	Fats     Range `json:"fats"`
}

// Default returns the identity criteria: every predicate passes.
func Default() Criteria {
	return Criteria{
		Category:   CategoryAll,
		Difficulty: DifficultyAll,
		Calories:   Range{Min: 0, Max: DefaultCaloriesMax},
		Protein:    Range{Min: 0, Max: DefaultMacroMax},
		Carbs:      Range{Min: 0, Max: DefaultMacroMax},
		Fats:       Range{Min: 0, Max: DefaultMacroMax},
	}
}

// Unbounded returns criteria with every predicate disabled, including
// the nutrient ranges. Free-text search starts here so the name query
// is the only thing that filters: a recipe whose calories fall outside
// the sidebar defaults must still be findable by name.
func Unbounded() Criteria {
	return Criteria{
		Category:   CategoryAll,
		Difficulty: DifficultyAll,
		Calories:   Range{Min: 0, Max: math.MaxFloat64},
		Protein:    Range{Min: 0, Max: math.MaxFloat64},
		Carbs:      Range{Min: 0, Max: math.MaxFloat64},
		Fats:       Range{Min: 0, Max: math.MaxFloat64},
	}
}

// Normalize enforces min <= max on every range by clamping the minimum,
// the same way the range inputs clamp. It returns the criteria for
// chaining.
func (c Criteria) Normalize() Criteria {
	clamp := func(r Range) Range {
		if r.Min > r.Max {
			r.Min = r.Max
		}
		return r
	}
	c.Calories = clamp(c.Calories)
	c.Protein = clamp(c.Protein)
	c.Carbs = clamp(c.Carbs)
	c.Fats = clamp(c.Fats)
	return c
}

// Matches reports whether a single recipe passes every active
// predicate. Category matching is exact; the free-text query is a
// case-insensitive substring match on the recipe name.
func (c Criteria) Matches(r *model.Recipe) bool {
	if c.Category != "" && c.Category != CategoryAll && r.Category.Category != c.Category {
		return false
	}
	if c.Difficulty != "" && c.Difficulty != DifficultyAll && r.Difficulty != c.Difficulty {
		return false
	}
	if !c.Calories.Contains(r.Calories) ||
		!c.Protein.Contains(r.ProteinInGrams) ||
		!c.Carbs.Contains(r.CarbohydratesInGrams) ||
		!c.Fats.Contains(r.FatInGrams) {
		return false
	}
	if c.Query != "" {
		if !strings.Contains(strings.ToLower(r.Recipe), strings.ToLower(c.Query)) {
			return false
		}
	}
	return true
}

// Apply filters recipes by the given criteria. Input order is
// preserved and the input slice is never modified. An empty result is
// an empty (non-nil) slice so callers can tell "no matches" from "not
// loaded".
func Apply(recipes []model.Recipe, criteria Criteria) []model.Recipe {
	criteria = criteria.Normalize()
	out := make([]model.Recipe, 0, len(recipes))
	for i := range recipes {
		if criteria.Matches(&recipes[i]) {
			out = append(out, recipes[i])
		}
	}
	return out
}
