package services

import (
	"reflect"
	"testing"

	"backend/models"
)

func TestBuildGridAllDaysPresent(t *testing.T) {
	g := BuildGrid(nil)
	if len(g) != 7 {
		t.Fatalf("grid has %d days, want 7", len(g))
	}
	for _, d := range models.WeekDays {
		if _, ok := g[d]; !ok {
			t.Errorf("day %q missing from empty grid", d)
		}
	}
}

func TestBuildGridOrdersByPosition(t *testing.T) {
	entries := []models.DietEntry{
		{Day: "monday", SlotID: "lunch", Position: 2, FoodName: "Rice"},
		{Day: "monday", SlotID: "lunch", Position: 0, FoodName: "Chicken"},
		{Day: "monday", SlotID: "lunch", Position: 1, FoodName: "Salad"},
	}
	g := BuildGrid(entries)

	got := make([]string, 0, 3)
	for _, e := range g["monday"]["lunch"] {
		got = append(got, e.FoodName)
	}
	want := []string{"Chicken", "Salad", "Rice"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lunch order = %v, want %v", got, want)
	}
}

func TestBuildGridToleratesUnknownDay(t *testing.T) {
	entries := []models.DietEntry{{Day: "someday", SlotID: "lunch", FoodName: "Soup"}}
	g := BuildGrid(entries)
	if len(g["someday"]["lunch"]) != 1 {
		t.Error("entry with unknown day label was dropped")
	}
}

func TestGridAddEntry(t *testing.T) {
	g := BuildGrid(nil)
	g.AddEntry("tuesday", "breakfast", models.DietEntry{FoodName: "Oats", Calories: 389})
	g.AddEntry("tuesday", "breakfast", models.DietEntry{FoodName: "Banana", Calories: 89})

	list := g["tuesday"]["breakfast"]
	if len(list) != 2 {
		t.Fatalf("slot has %d entries, want 2", len(list))
	}
	if list[0].FoodName != "Oats" || list[1].FoodName != "Banana" {
		t.Errorf("insertion order not preserved: %v, %v", list[0].FoodName, list[1].FoodName)
	}
	if list[0].Day != "tuesday" || list[0].SlotID != "breakfast" {
		t.Errorf("entry keys not stamped: day %q slot %q", list[0].Day, list[0].SlotID)
	}

	// other days untouched
	for _, d := range models.WeekDays {
		if d == "tuesday" {
			continue
		}
		if len(g.DayEntries(d)) != 0 {
			t.Errorf("day %q gained entries from AddEntry on tuesday", d)
		}
	}
}

func TestGridRemoveEntry(t *testing.T) {
	g := BuildGrid(nil)
	g.AddEntry("friday", "dinner", models.DietEntry{FoodName: "Fish"})
	g.AddEntry("friday", "dinner", models.DietEntry{FoodName: "Potato"})
	g.AddEntry("friday", "dinner", models.DietEntry{FoodName: "Greens"})

	g.RemoveEntry("friday", "dinner", 1)
	list := g["friday"]["dinner"]
	if len(list) != 2 {
		t.Fatalf("slot has %d entries after removal, want 2", len(list))
	}
	if list[0].FoodName != "Fish" || list[1].FoodName != "Greens" {
		t.Errorf("wrong entry removed: %v, %v", list[0].FoodName, list[1].FoodName)
	}

	// out-of-range indexes are a no-op
	g.RemoveEntry("friday", "dinner", 5)
	g.RemoveEntry("friday", "dinner", -1)
	g.RemoveEntry("sunday", "dinner", 0)
	if len(g["friday"]["dinner"]) != 2 {
		t.Error("out-of-range removal mutated the slot")
	}
}

func TestGridListSlotIDs(t *testing.T) {
	g := BuildGrid([]models.DietEntry{
		{Day: "monday", SlotID: "lunch"},
		{Day: "wednesday", SlotID: "breakfast"},
		{Day: "friday", SlotID: "lunch"},
		{Day: "sunday", SlotID: "late_snack"},
	})
	got := g.ListSlotIDs()
	want := []string{"breakfast", "late_snack", "lunch"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListSlotIDs() = %v, want %v", got, want)
	}
}

func TestGridAggregate(t *testing.T) {
	g := BuildGrid([]models.DietEntry{
		{Day: "monday", SlotID: "breakfast", Calories: 400, Protein: 20},
		{Day: "monday", SlotID: "lunch", Calories: 600, Protein: 40},
		{Day: "tuesday", SlotID: "lunch", Calories: 550, Protein: 35},
	})

	mon := g.AggregateDay("monday")
	if mon.Calories != 1000 || mon.Protein != 60 {
		t.Errorf("monday = %+v, want Calories 1000, Protein 60", mon)
	}

	week := g.AggregateWeek()
	if week.Calories != 1550 || week.Protein != 95 {
		t.Errorf("week = %+v, want Calories 1550, Protein 95", week)
	}
}

func TestGridFlattenRoundTrip(t *testing.T) {
	entries := []models.DietEntry{
		{Day: "monday", SlotID: "breakfast", Position: 0, FoodName: "Oats"},
		{Day: "monday", SlotID: "lunch", Position: 0, FoodName: "Chicken"},
		{Day: "monday", SlotID: "lunch", Position: 1, FoodName: "Rice"},
		{Day: "thursday", SlotID: "dinner", Position: 0, FoodName: "Fish"},
	}
	flat := BuildGrid(entries).Flatten()
	if len(flat) != len(entries) {
		t.Fatalf("Flatten() returned %d entries, want %d", len(flat), len(entries))
	}
	// totals survive the round trip
	if AggregateEntries(flat) != AggregateEntries(entries) {
		t.Error("Flatten() changed aggregate totals")
	}
}
