package utils

import "errors"

// Plausibility bounds; measurements outside them are treated as data-entry
// mistakes rather than computed into a meaningless index.
const (
	minHeightCm = 50
	maxHeightCm = 250
	minWeightKg = 10
	maxWeightKg = 400
)

// CalculateBMI returns weight / height², with height given in centimeters
// and weight in kilograms. Shown next to the basal estimate on a client's
// health summary.
func CalculateBMI(heightCm, weightKg float64) (float64, error) {
	if heightCm <= 0 || weightKg <= 0 {
		return 0, errors.New("height and weight must be positive")
	}
	if heightCm < minHeightCm || heightCm > maxHeightCm || weightKg < minWeightKg || weightKg > maxWeightKg {
		return 0, errors.New("height/weight out of plausible range")
	}

	h := heightCm / 100.0
	return weightKg / (h * h), nil
}

// BMICategory maps an index value onto the WHO bands.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal weight"
	case bmi < 30.0:
		return "Overweight"
	case bmi < 35.0:
		return "Obesity class I"
	case bmi < 40.0:
		return "Obesity class II"
	default:
		return "Obesity class III"
	}
}
