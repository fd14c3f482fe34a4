package utils

import "testing"

func TestEstimateTMB(t *testing.T) {
	// 80 kg, 180 cm, 30 y male, moderately active:
	// base = 800 + 1125 - 150 + 5 = 1780; 1780 * 1.55 = 2759
	got, ok := EstimateTMB(80, 180, 30, "male", "moderately_active")
	if !ok {
		t.Fatal("EstimateTMB returned ok=false for complete inputs")
	}
	if got != 2759 {
		t.Errorf("EstimateTMB = %v, want 2759", got)
	}
}

func TestEstimateTMBFemale(t *testing.T) {
	// 60 kg, 165 cm, 25 y female, sedentary:
	// base = 600 + 1031.25 - 125 - 161 = 1345.25; * 1.2 = 1614.3 → 1614
	got, ok := EstimateTMB(60, 165, 25, "female", "sedentary")
	if !ok {
		t.Fatal("EstimateTMB returned ok=false for complete inputs")
	}
	if got != 1614 {
		t.Errorf("EstimateTMB = %v, want 1614", got)
	}
}

func TestEstimateTMBHalfRoundsAwayFromZero(t *testing.T) {
	// 73 kg, 171 cm, 31 y male, sedentary:
	// base = 730 + 1068.75 - 155 + 5 = 1648.75; * 1.2 = 1978.5 → 1979
	got, ok := EstimateTMB(73, 171, 31, "male", "sedentary")
	if !ok {
		t.Fatal("ok=false")
	}
	if got != 1979 {
		t.Errorf("EstimateTMB = %v, want 1979 (half rounds up, not to even)", got)
	}
}

func TestEstimateTMBMissingFields(t *testing.T) {
	tests := []struct {
		name          string
		weight, height float64
		age           int
		gender        string
	}{
		{"zero weight", 0, 180, 30, "male"},
		{"zero height", 80, 0, 30, "male"},
		{"zero age", 80, 180, 0, "male"},
		{"negative weight", -5, 180, 30, "male"},
		{"empty gender", 80, 180, 30, ""},
		{"unknown gender", 80, 180, 30, "other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EstimateTMB(tt.weight, tt.height, tt.age, tt.gender, "sedentary")
			if ok {
				t.Errorf("ok = true, want false")
			}
			if got != 0 {
				t.Errorf("value = %v, want 0 sentinel", got)
			}
		})
	}
}

func TestEstimateTMBUnknownActivityDefaultsToSedentary(t *testing.T) {
	known, _ := EstimateTMB(80, 180, 30, "male", "sedentary")
	unknown, ok := EstimateTMB(80, 180, 30, "male", "couch_potato")
	if !ok {
		t.Fatal("unknown activity level should not invalidate the estimate")
	}
	if known != unknown {
		t.Errorf("unknown activity = %v, want sedentary fallback %v", unknown, known)
	}

	missing, _ := EstimateTMB(80, 180, 30, "male", "")
	if missing != known {
		t.Errorf("empty activity = %v, want sedentary fallback %v", missing, known)
	}
}

func TestEstimateTMBGenderCaseInsensitive(t *testing.T) {
	a, _ := EstimateTMB(80, 180, 30, "male", "sedentary")
	b, ok := EstimateTMB(80, 180, 30, " Male ", "sedentary")
	if !ok || a != b {
		t.Errorf("gender normalization broken: %v vs %v (ok=%v)", a, b, ok)
	}
}
