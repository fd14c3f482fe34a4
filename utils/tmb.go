package utils

import (
	"math"
	"strings"
)

// activityMultipliers is the single source of truth for valid activity
// levels; unrecognized or missing levels fall back to sedentary.
var activityMultipliers = map[string]float64{
	"sedentary":         1.2,
	"lightly_active":    1.375,
	"moderately_active": 1.55,
	"very_active":       1.725,
	"extremely_active":  1.9,
}

const defaultActivityMultiplier = 1.2

// EstimateTMB computes the basal daily calorie need via Mifflin-St Jeor
// scaled by the client's activity multiplier.
//
// Returns ok=false when weight, height or age is non-positive or gender is
// not male/female; callers show "cannot calculate" instead of a number.
// Rounding is half away from zero (math.Round), so the 1978.5 case rounds
// to 1979.
func EstimateTMB(weightKg, heightCm float64, age int, gender, activityLevel string) (float64, bool) {
	if weightKg <= 0 || heightCm <= 0 || age <= 0 {
		return 0, false
	}
	g := strings.ToLower(strings.TrimSpace(gender))
	if g != "male" && g != "female" {
		return 0, false
	}

	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	if g == "male" {
		base += 5
	} else {
		base -= 161
	}

	mult, ok := activityMultipliers[strings.ToLower(strings.TrimSpace(activityLevel))]
	if !ok {
		mult = defaultActivityMultiplier
	}
	return math.Round(base * mult), true
}

// ActivityLevels lists the accepted ordered tiers, for input validation.
func ActivityLevels() []string {
	return []string{"sedentary", "lightly_active", "moderately_active", "very_active", "extremely_active"}
}
