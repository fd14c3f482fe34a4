package services

import (
	"testing"

	"backend/models"
)

func sampleTemplate() *models.Diet {
	goal := &models.CustomGoal{Calories: 1940, Protein: 150, Carbs: 200, Fat: 60, Fiber: 30}
	tpl := &models.Diet{
		UserID:      1,
		Name:        "Cutting base",
		IsTemplate:  true,
		Category:    "weight_loss",
		Description: "12-week cut",
		UsageCount:  4,
		Goal:        goal,
		Entries: []models.DietEntry{
			{Day: "monday", SlotID: "breakfast", Position: 0, FoodID: 10, FoodName: "Oats", Quantity: 60, Unit: "g", Calories: 233.4},
			{Day: "monday", SlotID: "lunch", Position: 0, FoodID: 11, FoodName: "Chicken", Quantity: 150, Unit: "g", Calories: 247.5},
		},
		Slots: []models.MealSlot{
			{SlotID: "breakfast", Name: "Breakfast", Order: 0},
			{SlotID: "lunch", Name: "Lunch", Order: 1},
		},
		Supplements: []models.Supplement{
			{Name: "Creatine", Quantity: "5g", TimeOfDay: "morning"},
		},
	}
	tpl.ID = 42
	return tpl
}

func TestBuildDietFromTemplate(t *testing.T) {
	tpl := sampleTemplate()
	clientID := uint(7)

	diet := BuildDietFromTemplate(tpl, &clientID, "Maria Silva", 1979)

	if diet.IsTemplate {
		t.Error("instantiated diet still flagged as template")
	}
	if diet.Name != "Cutting base - Maria Silva" {
		t.Errorf("Name = %q, want %q", diet.Name, "Cutting base - Maria Silva")
	}
	if diet.TemplateID == nil || *diet.TemplateID != tpl.ID {
		t.Error("diet lost the back-reference to its template")
	}
	if diet.TMB != 1979 {
		t.Errorf("TMB = %v, want 1979", diet.TMB)
	}
	if diet.ClientID == nil || *diet.ClientID != clientID {
		t.Error("client id not carried over")
	}
	if len(diet.Entries) != len(tpl.Entries) {
		t.Fatalf("entries = %d, want %d", len(diet.Entries), len(tpl.Entries))
	}
	if len(diet.Slots) != 2 || len(diet.Supplements) != 1 {
		t.Errorf("slots/supplements = %d/%d, want 2/1", len(diet.Slots), len(diet.Supplements))
	}
	if diet.Goal == nil || diet.Goal.Calories != tpl.Goal.Calories {
		t.Error("goal not copied")
	}
	// template-only fields must not leak onto the diet
	if diet.Category != "" || diet.Description != "" || diet.UsageCount != 0 {
		t.Errorf("template metadata leaked: category %q description %q usage %d",
			diet.Category, diet.Description, diet.UsageCount)
	}
}

func TestBuildDietFromTemplateDeepCopy(t *testing.T) {
	tpl := sampleTemplate()
	diet := BuildDietFromTemplate(tpl, nil, "Ana", 1600)

	diet.Entries[0].Quantity = 999
	diet.Entries[0].Calories = 9999
	diet.Slots[0].Name = "Changed"
	diet.Goal.Calories = 1

	if tpl.Entries[0].Quantity == 999 {
		t.Error("mutating the diet's entries altered the template")
	}
	if tpl.Slots[0].Name == "Changed" {
		t.Error("mutating the diet's slots altered the template")
	}
	if tpl.Goal.Calories == 1 {
		t.Error("mutating the diet's goal altered the template")
	}
}

func TestBuildDietFromTemplateZeroedIdentity(t *testing.T) {
	tpl := sampleTemplate()
	diet := BuildDietFromTemplate(tpl, nil, "Ana", 1600)

	if diet.ID != 0 {
		t.Errorf("new diet carries ID %d, want 0", diet.ID)
	}
	for i, e := range diet.Entries {
		if e.ID != 0 || e.DietID != 0 {
			t.Errorf("entry %d carries identity (id %d, diet_id %d)", i, e.ID, e.DietID)
		}
	}
}

func TestBuildTemplateFromDiet(t *testing.T) {
	clientID := uint(7)
	diet := &models.Diet{
		UserID:     1,
		Name:       "Maria week 3",
		ClientID:   &clientID,
		ClientName: "Maria Silva",
		TMB:        1979,
		ShareID:    "abc123",
		UsageCount: 9,
		Entries: []models.DietEntry{
			{Day: "monday", SlotID: "lunch", FoodName: "Chicken", Calories: 247.5},
		},
		Goal: &models.CustomGoal{Calories: 1940, Protein: 150, Carbs: 200, Fat: 60},
	}
	diet.ID = 13

	tpl := BuildTemplateFromDiet(diet, "High protein base", "From Maria's plan", "muscle_gain")

	if !tpl.IsTemplate {
		t.Error("converted template not flagged as template")
	}
	if tpl.Name != "High protein base" || tpl.Category != "muscle_gain" {
		t.Errorf("name/category = %q/%q", tpl.Name, tpl.Category)
	}
	if tpl.ClientID != nil || tpl.ClientName != "" || tpl.TMB != 0 || tpl.ShareID != "" {
		t.Error("client-identifying fields not stripped")
	}
	if tpl.UsageCount != 0 {
		t.Errorf("UsageCount = %d, want 0 on a fresh template", tpl.UsageCount)
	}
	if len(tpl.Entries) != 1 || tpl.Entries[0].Calories != 247.5 {
		t.Error("grid contents not copied")
	}
}

func TestBuildTemplateStats(t *testing.T) {
	tpl := sampleTemplate()
	st := BuildTemplateStats(tpl)

	if st.TemplateID != tpl.ID || st.UsageCount != 4 || st.EntryCount != 2 {
		t.Errorf("stats identity = %+v", st)
	}
	wantWeek := 233.4 + 247.5
	if st.Week.Calories != wantWeek {
		t.Errorf("week Calories = %v, want %v", st.Week.Calories, wantWeek)
	}
	if st.DailyAverage.Calories != wantWeek/7 {
		t.Errorf("daily average = %v, want %v", st.DailyAverage.Calories, wantWeek/7)
	}
}
