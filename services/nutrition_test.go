package services

import (
	"math"
	"testing"

	"backend/models"
)

func TestInferUnit(t *testing.T) {
	tests := []struct {
		portion string
		want    string
	}{
		{"100g", "g"},
		{"100 g", "g"},
		{"250ml", "ml"},
		{"1 unit", "unit"},
		{"", "unit"},
		{"2 slices", "unit"},
		// "glass" contains a 'g' but is not a unit token
		{"1 glass (200ml)", "ml"},
		{"1 glass", "unit"},
		{"1 grande slice", "unit"},
		// mentions both units; "g" wins the tie-break
		{"100g (about 95ml)", "g"},
	}
	for _, tt := range tests {
		if got := InferUnit(tt.portion); got != tt.want {
			t.Errorf("InferUnit(%q) = %q, want %q", tt.portion, got, tt.want)
		}
	}
}

func TestScaleFood(t *testing.T) {
	chicken := models.Food{
		Name:     "Grilled chicken breast",
		Portion:  "100g",
		Calories: 165,
		Protein:  31,
		Fat:      3.6,
		Carbs:    0,
		Fiber:    0,
	}

	entry, err := ScaleFood(chicken, 150)
	if err != nil {
		t.Fatalf("ScaleFood(150) error: %v", err)
	}
	if entry.Calories != 247.5 {
		t.Errorf("Calories = %v, want 247.5", entry.Calories)
	}
	if entry.Protein != 46.5 {
		t.Errorf("Protein = %v, want 46.5", entry.Protein)
	}
	if entry.Unit != "g" {
		t.Errorf("Unit = %q, want %q", entry.Unit, "g")
	}
	if entry.FoodName != chicken.Name {
		t.Errorf("FoodName = %q, want %q", entry.FoodName, chicken.Name)
	}

	// quantity 100 reproduces the catalog values exactly
	same, err := ScaleFood(chicken, 100)
	if err != nil {
		t.Fatalf("ScaleFood(100) error: %v", err)
	}
	if same.Calories != chicken.Calories || same.Protein != chicken.Protein {
		t.Errorf("ScaleFood(100) = %+v, want catalog values back", same)
	}
}

func TestScaleFoodLinearity(t *testing.T) {
	oats := models.Food{Name: "Oats", Portion: "100g", Calories: 389, Protein: 16.9, Fat: 6.9, Carbs: 66.3, Fiber: 10.6}

	half, _ := ScaleFood(oats, 50)
	double, _ := ScaleFood(oats, 200)

	if got, want := half.Calories*4, double.Calories; math.Abs(got-want) > 1e-9 {
		t.Errorf("4*ScaleFood(50).Calories = %v, want %v", got, want)
	}
	if got, want := half.Fiber*4, double.Fiber; math.Abs(got-want) > 1e-9 {
		t.Errorf("4*ScaleFood(50).Fiber = %v, want %v", got, want)
	}
}

func TestScaleFoodRejectsBadQuantities(t *testing.T) {
	f := models.Food{Name: "Rice", Portion: "100g", Calories: 130}
	for _, q := range []float64{0, -10, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := ScaleFood(f, q); err == nil {
			t.Errorf("ScaleFood(%v) = nil error, want rejection", q)
		}
	}
}

func TestAggregateEntries(t *testing.T) {
	entries := []models.DietEntry{
		{Day: "monday", Calories: 300, Protein: 20, Fat: 10, Carbs: 30, Fiber: 5},
		{Day: "monday", Calories: 500, Protein: 35, Fat: 15, Carbs: 55, Fiber: 8},
		{Day: "tuesday", Calories: 450, Protein: 30, Fat: 12, Carbs: 50, Fiber: 6},
	}

	week := AggregateWeek(entries)
	if week.Calories != 1250 {
		t.Errorf("week Calories = %v, want 1250", week.Calories)
	}
	if week.Protein != 85 {
		t.Errorf("week Protein = %v, want 85", week.Protein)
	}

	mon := AggregateDay(entries, "monday")
	if mon.Calories != 800 || mon.Fiber != 13 {
		t.Errorf("monday totals = %+v, want Calories 800, Fiber 13", mon)
	}

	if got := AggregateDay(entries, "sunday"); got != (DayTotals{}) {
		t.Errorf("empty day totals = %+v, want zeros", got)
	}
	if got := AggregateEntries(nil); got != (DayTotals{}) {
		t.Errorf("AggregateEntries(nil) = %+v, want zeros", got)
	}
}

func TestAggregateOrderIndependent(t *testing.T) {
	a := models.DietEntry{Calories: 120.5, Protein: 3.3}
	b := models.DietEntry{Calories: 87.25, Protein: 11.1}
	c := models.DietEntry{Calories: 301, Protein: 0.5}

	fwd := AggregateEntries([]models.DietEntry{a, b, c})
	rev := AggregateEntries([]models.DietEntry{c, b, a})
	if fwd != rev {
		t.Errorf("aggregation depends on order: %+v vs %+v", fwd, rev)
	}
}

func TestAveragePerDay(t *testing.T) {
	week := DayTotals{Calories: 14000, Protein: 700, Fat: 350, Carbs: 1400, Fiber: 210}
	avg := AveragePerDay(week)
	if avg.Calories != 2000 {
		t.Errorf("avg Calories = %v, want 2000", avg.Calories)
	}
	if avg.Protein != 100 {
		t.Errorf("avg Protein = %v, want 100", avg.Protein)
	}
	// the divisor is the fixed seven buckets, not the count of planned days
	sparse := DayTotals{Calories: 700}
	if got := AveragePerDay(sparse).Calories; got != 100 {
		t.Errorf("sparse avg Calories = %v, want 100", got)
	}
}

func TestClassifyCalories(t *testing.T) {
	tests := []struct {
		name     string
		calories float64
		target   float64
		wantTier string
	}{
		{"well below", 1000, 2000, TierDeficient},
		{"just under 70", 1399, 2000, TierDeficient},
		{"exactly 70 pct", 1400, 2000, TierNearTarget},
		{"just under 90", 1799, 2000, TierNearTarget},
		{"exactly 90 pct", 1800, 2000, TierOptimal},
		{"exactly on target", 2000, 2000, TierOptimal},
		{"exactly 110 pct", 2200, 2000, TierOptimal},
		{"exactly 110 pct odd target", 1540, 1400, TierOptimal},
		{"just over 110", 2201, 2000, TierExcess},
		{"far over", 4000, 2000, TierExcess},
		{"zero target", 1500, 0, TierNoTarget},
		{"negative target", 1500, -100, TierNoTarget},
		{"zero intake zero target", 0, 0, TierNoTarget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyCalories(tt.calories, tt.target)
			if got.Tier != tt.wantTier {
				t.Errorf("ClassifyCalories(%v, %v).Tier = %q, want %q",
					tt.calories, tt.target, got.Tier, tt.wantTier)
			}
		})
	}
}

func TestClassifyCaloriesPercent(t *testing.T) {
	st := ClassifyCalories(1500, 2000)
	if st.Percent != 75 {
		t.Errorf("Percent = %v, want 75", st.Percent)
	}
	if st := ClassifyCalories(0, 0); st.Percent != 0 {
		t.Errorf("no-target Percent = %v, want 0", st.Percent)
	}
}

func TestValidateCustomGoal(t *testing.T) {
	ok := models.CustomGoal{Calories: 2000, Protein: 150, Carbs: 200, Fat: 60, Fiber: 30}
	// implied: 4*150 + 4*200 + 9*60 = 1940, within the 50 kcal tolerance of 1980
	ok.Calories = 1980
	if err := ValidateCustomGoal(ok); err != nil {
		t.Errorf("consistent goal rejected: %v", err)
	}

	// same macros declared as 2000 kcal: |2000-1940| = 60 > 50, rejected
	bad := models.CustomGoal{Calories: 2000, Protein: 150, Carbs: 200, Fat: 60}
	if err := ValidateCustomGoal(bad); err == nil {
		t.Error("inconsistent goal accepted, want rejection")
	}

	neg := models.CustomGoal{Calories: -1}
	if err := ValidateCustomGoal(neg); err == nil {
		t.Error("negative goal accepted, want rejection")
	}

	// exactly at the tolerance boundary passes
	edge := models.CustomGoal{Calories: 1990, Protein: 150, Carbs: 200, Fat: 60}
	if err := ValidateCustomGoal(edge); err != nil {
		t.Errorf("goal at tolerance boundary rejected: %v", err)
	}
}

func TestEffectiveTarget(t *testing.T) {
	base := models.Diet{TMB: 1800}
	if got := EffectiveTarget(&base); got != 1800 {
		t.Errorf("EffectiveTarget without goal = %v, want TMB 1800", got)
	}

	withGoal := models.Diet{
		TMB:  1800,
		Goal: &models.CustomGoal{Calories: 1940, Protein: 150, Carbs: 200, Fat: 60},
	}
	if got := EffectiveTarget(&withGoal); got != 1940 {
		t.Errorf("EffectiveTarget with goal = %v, want 1940", got)
	}

	// an inconsistent goal is ignored in favor of the basal estimate
	brokenGoal := models.Diet{
		TMB:  1800,
		Goal: &models.CustomGoal{Calories: 3000, Protein: 10, Carbs: 10, Fat: 10},
	}
	if got := EffectiveTarget(&brokenGoal); got != 1800 {
		t.Errorf("EffectiveTarget with broken goal = %v, want TMB 1800", got)
	}
}
