// services/grid.go
package services

import (
	"sort"

	"backend/models"
)

// MealGrid is the in-memory shape of a diet's week: day → slot id → ordered
// entries. It is built once from the flat DietEntry rows at the load
// boundary; aggregation and rendering both read from it.
type MealGrid map[string]map[string][]models.DietEntry

// BuildGrid normalizes a diet's entries into the weekly grid. All seven days
// are present even when empty. Entries keep their stored position order
// within each slot. Slot ids with no matching MealSlot definition still land
// in the grid: rendering shows them as unnamed, aggregation does not care.
func BuildGrid(entries []models.DietEntry) MealGrid {
	g := make(MealGrid, len(models.WeekDays))
	for _, d := range models.WeekDays {
		g[d] = make(map[string][]models.DietEntry)
	}
	for _, e := range entries {
		if g[e.Day] == nil {
			// unknown day label; tolerate rather than drop silently
			g[e.Day] = make(map[string][]models.DietEntry)
		}
		g[e.Day][e.SlotID] = append(g[e.Day][e.SlotID], e)
	}
	for _, day := range g {
		for slot, list := range day {
			sort.SliceStable(list, func(i, j int) bool { return list[i].Position < list[j].Position })
			day[slot] = list
		}
	}
	return g
}

// AddEntry appends an entry to grid[day][slotID], creating the slot list if
// absent. Every other day and slot is left untouched.
func (g MealGrid) AddEntry(day, slotID string, e models.DietEntry) {
	if g[day] == nil {
		g[day] = make(map[string][]models.DietEntry)
	}
	e.Day = day
	e.SlotID = slotID
	g[day][slotID] = append(g[day][slotID], e)
}

// RemoveEntry drops the entry at index from grid[day][slotID]. Out-of-range
// indexes are a no-op; nothing else in the grid is disturbed.
func (g MealGrid) RemoveEntry(day, slotID string, index int) {
	list := g[day][slotID]
	if index < 0 || index >= len(list) {
		return
	}
	g[day][slotID] = append(list[:index:index], list[index+1:]...)
}

// ListSlotIDs returns the sorted union of slot ids used anywhere in the
// grid, independent of the diet's slot definition list. Drives dynamic
// column rendering even when a slot id has no matching definition.
func (g MealGrid) ListSlotIDs() []string {
	seen := map[string]struct{}{}
	var ids []string
	for _, day := range g {
		for slot := range day {
			if _, ok := seen[slot]; !ok {
				seen[slot] = struct{}{}
				ids = append(ids, slot)
			}
		}
	}
	sort.Strings(ids)
	return ids
}

// DayEntries flattens one day's slots into a single list.
func (g MealGrid) DayEntries(day string) []models.DietEntry {
	var out []models.DietEntry
	for _, list := range g[day] {
		out = append(out, list...)
	}
	return out
}

// AggregateDay folds one day of the grid into totals. Iteration order over
// slots is irrelevant: the sum is commutative.
func (g MealGrid) AggregateDay(day string) DayTotals {
	return AggregateEntries(g.DayEntries(day))
}

// AggregateWeek folds the whole grid into totals.
func (g MealGrid) AggregateWeek() DayTotals {
	var t DayTotals
	for _, day := range g {
		for _, list := range day {
			for _, e := range list {
				t.add(e)
			}
		}
	}
	return t
}

// Flatten returns every entry in the grid in day/slot/position order,
// suitable for persisting back as rows.
func (g MealGrid) Flatten() []models.DietEntry {
	var out []models.DietEntry
	for _, d := range models.WeekDays {
		slots := make([]string, 0, len(g[d]))
		for slot := range g[d] {
			slots = append(slots, slot)
		}
		sort.Strings(slots)
		for _, slot := range slots {
			out = append(out, g[d][slot]...)
		}
	}
	return out
}
