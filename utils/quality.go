package utils

import (
	"fmt"
	"math"
)

// WarningSeverity categorizes how serious the flag is.
type WarningSeverity string

const (
	Info    WarningSeverity = "info"
	Caution WarningSeverity = "caution"
	High    WarningSeverity = "high"
)

// Warning is a structured finding shown next to a day in the diet view.
type Warning struct {
	Code      string          `json:"code"`
	Severity  WarningSeverity `json:"severity"`
	Message   string          `json:"message"`
	Metric    string          `json:"metric,omitempty"`
	Value     float64         `json:"value,omitempty"`
	Reference string          `json:"reference,omitempty"`
}

// AssessDayBalance flags nutritional imbalances in one day of a diet plan.
// Inputs are the day's absolute totals plus the calorie target the day is
// evaluated against. Only emits findings when inputs are present; an empty
// day yields no warnings.
func AssessDayBalance(calories, protein, fat, carbs, fiber, targetCalories float64) []Warning {
	warnings := []Warning{}
	if calories <= 0 {
		return warnings
	}

	// Fiber: DGA reference is 14 g per 1000 kcal.
	fiberRef := 14 * calories / 1000
	if fiberRef > 0 && fiber < 0.5*fiberRef {
		warnings = append(warnings, Warning{
			Code:      "LOW_FIBER",
			Severity:  Caution,
			Message:   fmt.Sprintf("Fiber is low for this day: %.0f g vs a %.0f g reference.", fiber, fiberRef),
			Metric:    "fiber",
			Value:     round1(fiber),
			Reference: "DGA 14 g / 1000 kcal",
		})
	}

	// AMDR bands on the energy share of each macro.
	protPct := 4 * protein / calories * 100
	fatPct := 9 * fat / calories * 100
	carbPct := 4 * carbs / calories * 100

	if protPct < 10 {
		warnings = append(warnings, Warning{
			Code:      "LOW_PROTEIN_SHARE",
			Severity:  Caution,
			Message:   fmt.Sprintf("Protein supplies only %.0f%% of calories (AMDR 10-35%%).", protPct),
			Metric:    "protein",
			Value:     round1(protPct),
			Reference: "AMDR 10-35% kcal",
		})
	}
	if fatPct > 35 {
		warnings = append(warnings, Warning{
			Code:      "HIGH_FAT_SHARE",
			Severity:  Caution,
			Message:   fmt.Sprintf("Fat supplies %.0f%% of calories (AMDR 20-35%%).", fatPct),
			Metric:    "fat",
			Value:     round1(fatPct),
			Reference: "AMDR 20-35% kcal",
		})
	}
	if carbPct > 65 {
		warnings = append(warnings, Warning{
			Code:      "HIGH_CARB_SHARE",
			Severity:  Info,
			Message:   fmt.Sprintf("Carbohydrates supply %.0f%% of calories (AMDR 45-65%%).", carbPct),
			Metric:    "carbs",
			Value:     round1(carbPct),
			Reference: "AMDR 45-65% kcal",
		})
	}

	// Gross deviation from the target is already classified tier-wise by the
	// goal evaluator; flag only the extreme case here.
	if targetCalories > 0 && calories > 1.5*targetCalories {
		warnings = append(warnings, Warning{
			Code:     "FAR_OVER_TARGET",
			Severity: High,
			Message:  fmt.Sprintf("Day exceeds the calorie target by more than half: %.0f vs %.0f kcal.", calories, targetCalories),
			Metric:   "calories",
			Value:    round1(calories),
		})
	}

	return warnings
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
