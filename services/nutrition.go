// services/nutrition.go
//
// The pure nutrition core: unit-scaled entry creation, macro aggregation and
// goal classification. Nothing here touches the database, so everything is
// unit-testable without postgres.
package services

import (
	"fmt"
	"math"
	"strings"

	"backend/models"
)

// DayTotals carries the five tracked macros summed over a set of entries.
type DayTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Fiber    float64 `json:"fiber"`
}

func (t *DayTotals) add(e models.DietEntry) {
	t.Calories += e.Calories
	t.Protein += e.Protein
	t.Fat += e.Fat
	t.Carbs += e.Carbs
	t.Fiber += e.Fiber
}

// InferUnit derives the display unit from a food's portion description.
// Only unit tokens count: "100g", "g", "250ml". Words that merely contain
// the letters, like "glass", do not. A portion mentioning both units
// resolves to "g"; the tie-break order is fixed here so scaling stays
// deterministic.
func InferUnit(portion string) string {
	hasG, hasML := false, false
	tokens := strings.FieldsFunc(strings.ToLower(portion), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
	for _, tok := range tokens {
		switch strings.TrimLeft(tok, "0123456789") {
		case "g":
			hasG = true
		case "ml":
			hasML = true
		}
	}
	switch {
	case hasG:
		return "g"
	case hasML:
		return "ml"
	default:
		return "unit"
	}
}

// ScaleFood converts a catalog food plus a requested quantity into a diet
// entry with absolute macro values. Catalog macros are per 100 of the food's
// base measure; quantity must be a positive finite number. No rounding
// happens here, display rounding belongs to the presentation layer.
func ScaleFood(food models.Food, quantity float64) (models.DietEntry, error) {
	if quantity <= 0 || math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return models.DietEntry{}, fmt.Errorf("quantity must be a positive number, got %v", quantity)
	}
	f := quantity / 100.0
	return models.DietEntry{
		FoodID:   food.ID,
		FoodName: food.Name,
		Quantity: quantity,
		Unit:     InferUnit(food.Portion),
		Calories: food.Calories * f,
		Protein:  food.Protein * f,
		Fat:      food.Fat * f,
		Carbs:    food.Carbs * f,
		Fiber:    food.Fiber * f,
	}, nil
}

// AggregateEntries sums macros over any set of entries. The sum is
// commutative, so insertion and iteration order never change the totals; an
// empty set yields all zeros.
func AggregateEntries(entries []models.DietEntry) DayTotals {
	var t DayTotals
	for _, e := range entries {
		t.add(e)
	}
	return t
}

// AggregateDay sums the entries belonging to one day bucket.
func AggregateDay(entries []models.DietEntry, day string) DayTotals {
	var t DayTotals
	for _, e := range entries {
		if e.Day == day {
			t.add(e)
		}
	}
	return t
}

// AggregateWeek sums every entry regardless of day.
func AggregateWeek(entries []models.DietEntry) DayTotals {
	return AggregateEntries(entries)
}

// AveragePerDay divides weekly totals by the fixed seven day buckets. Exact
// division; rounding is deferred to presentation.
func AveragePerDay(week DayTotals) DayTotals {
	return DayTotals{
		Calories: week.Calories / 7,
		Protein:  week.Protein / 7,
		Fat:      week.Fat / 7,
		Carbs:    week.Carbs / 7,
		Fiber:    week.Fiber / 7,
	}
}

// Goal classification tiers, first match wins in ClassifyCalories.
const (
	TierDeficient  = "deficient"
	TierNearTarget = "near_target"
	TierOptimal    = "optimal"
	TierExcess     = "excess"
	TierNoTarget   = "no_target"
)

type GoalStatus struct {
	Tier    string  `json:"tier"`
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
}

// ClassifyCalories buckets a day's calories against the target. A
// non-positive target never divides: it yields the distinct no_target status
// instead of propagating NaN or Inf.
func ClassifyCalories(dailyCalories, target float64) GoalStatus {
	if target <= 0 {
		return GoalStatus{Tier: TierNoTarget, Label: "no valid target"}
	}
	// multiply before dividing so round targets hit the tier boundaries
	// exactly (2200/2000 must be 110, not 110.000...01)
	p := dailyCalories * 100 / target
	st := GoalStatus{Percent: round2(p)}
	switch {
	case p < 70:
		st.Tier, st.Label = TierDeficient, "well below target"
	case p < 90:
		st.Tier, st.Label = TierNearTarget, "approaching target"
	case p <= 110:
		st.Tier, st.Label = TierOptimal, "on target"
	default:
		st.Tier, st.Label = TierExcess, "over target"
	}
	return st
}

// goalTolerance is the accepted drift in kcal between a goal's declared
// calories and the energy implied by its macros (4/4/9 kcal per gram, fiber
// excluded from the energy check).
const goalTolerance = 50.0

// ValidateCustomGoal rejects internally inconsistent goals at the save
// boundary. Goals are never silently auto-corrected.
func ValidateCustomGoal(g models.CustomGoal) error {
	if g.Calories < 0 || g.Protein < 0 || g.Carbs < 0 || g.Fat < 0 || g.Fiber < 0 {
		return fmt.Errorf("goal values must be non-negative")
	}
	implied := 4*g.Protein + 4*g.Carbs + 9*g.Fat
	if math.Abs(g.Calories-implied) > goalTolerance {
		return fmt.Errorf(
			"declared %.0f kcal but macros imply %.0f kcal; difference exceeds the %.0f kcal tolerance",
			g.Calories, implied, goalTolerance,
		)
	}
	return nil
}

// EffectiveTarget returns the calorie target a diet is evaluated against:
// the custom goal when present and consistent, else the basal estimate.
func EffectiveTarget(d *models.Diet) float64 {
	if d.Goal != nil && ValidateCustomGoal(*d.Goal) == nil && d.Goal.Calories > 0 {
		return d.Goal.Calories
	}
	return d.TMB
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
