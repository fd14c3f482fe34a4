package utils

import "testing"

func hasWarning(ws []Warning, code string) bool {
	for _, w := range ws {
		if w.Code == code {
			return true
		}
	}
	return false
}

func TestAssessDayBalanceEmptyDay(t *testing.T) {
	if ws := AssessDayBalance(0, 0, 0, 0, 0, 2000); len(ws) != 0 {
		t.Errorf("empty day produced %d warnings, want 0", len(ws))
	}
}

func TestAssessDayBalanceLowFiber(t *testing.T) {
	// 2000 kcal → 28 g reference; 5 g is well under half of it
	ws := AssessDayBalance(2000, 100, 60, 200, 5, 2000)
	if !hasWarning(ws, "LOW_FIBER") {
		t.Error("expected LOW_FIBER warning")
	}
	// 20 g is above half the reference
	ws = AssessDayBalance(2000, 100, 60, 200, 20, 2000)
	if hasWarning(ws, "LOW_FIBER") {
		t.Error("unexpected LOW_FIBER warning at 20 g")
	}
}

func TestAssessDayBalanceMacroShares(t *testing.T) {
	// protein share: 4*40/2000 = 8% < 10%
	ws := AssessDayBalance(2000, 40, 60, 250, 28, 2000)
	if !hasWarning(ws, "LOW_PROTEIN_SHARE") {
		t.Error("expected LOW_PROTEIN_SHARE warning")
	}

	// fat share: 9*100/2000 = 45% > 35%
	ws = AssessDayBalance(2000, 100, 100, 150, 28, 2000)
	if !hasWarning(ws, "HIGH_FAT_SHARE") {
		t.Error("expected HIGH_FAT_SHARE warning")
	}

	// carb share: 4*340/2000 = 68% > 65%
	ws = AssessDayBalance(2000, 100, 40, 340, 28, 2000)
	if !hasWarning(ws, "HIGH_CARB_SHARE") {
		t.Error("expected HIGH_CARB_SHARE warning")
	}
}

func TestAssessDayBalanceFarOverTarget(t *testing.T) {
	ws := AssessDayBalance(3100, 150, 80, 300, 30, 2000)
	if !hasWarning(ws, "FAR_OVER_TARGET") {
		t.Error("expected FAR_OVER_TARGET at 155% of target")
	}

	ws = AssessDayBalance(2900, 150, 80, 300, 30, 2000)
	if hasWarning(ws, "FAR_OVER_TARGET") {
		t.Error("unexpected FAR_OVER_TARGET at 145% of target")
	}

	// no target, no deviation warning
	ws = AssessDayBalance(5000, 150, 80, 300, 30, 0)
	if hasWarning(ws, "FAR_OVER_TARGET") {
		t.Error("FAR_OVER_TARGET emitted without a target")
	}
}
