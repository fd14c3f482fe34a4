package utils

import (
	"math"
	"testing"
)

func TestCalculateBMI(t *testing.T) {
	got, err := CalculateBMI(180, 81)
	if err != nil {
		t.Fatalf("CalculateBMI error: %v", err)
	}
	if math.Abs(got-25.0) > 1e-9 {
		t.Errorf("CalculateBMI(180, 81) = %v, want 25.0", got)
	}
}

func TestCalculateBMIRejectsBadInput(t *testing.T) {
	cases := []struct {
		name           string
		height, weight float64
	}{
		{"zero height", 0, 70},
		{"zero weight", 170, 0},
		{"negative", -170, 70},
		{"implausible height", 300, 70},
		{"implausible weight", 170, 500},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CalculateBMI(tt.height, tt.weight); err == nil {
				t.Errorf("CalculateBMI(%v, %v) = nil error, want rejection", tt.height, tt.weight)
			}
		})
	}
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi  float64
		want string
	}{
		{17.0, "Underweight"},
		{18.5, "Normal weight"},
		{24.9, "Normal weight"},
		{25.0, "Overweight"},
		{30.0, "Obesity class I"},
		{35.0, "Obesity class II"},
		{40.0, "Obesity class III"},
	}
	for _, tt := range tests {
		if got := BMICategory(tt.bmi); got != tt.want {
			t.Errorf("BMICategory(%v) = %q, want %q", tt.bmi, got, tt.want)
		}
	}
}
