// services/diet_service.go
package services

import (
	"context"
	"fmt"
	"sort"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type DietService struct {
	db *gorm.DB
}

func NewDietService(db *gorm.DB) *DietService {
	return &DietService{db: db}
}

// DefaultSlots is the seed slot list for a new diet. The set is fully
// editable afterwards; nothing else assumes these five exist.
func DefaultSlots() []models.MealSlot {
	return []models.MealSlot{
		{SlotID: "breakfast", Name: "Breakfast", Order: 1},
		{SlotID: "morning_snack", Name: "Morning snack", Order: 2},
		{SlotID: "lunch", Name: "Lunch", Order: 3},
		{SlotID: "afternoon_snack", Name: "Afternoon snack", Order: 4},
		{SlotID: "dinner", Name: "Dinner", Order: 5},
	}
}

type DietInput struct {
	Name     string `json:"name" binding:"required"`
	ClientID *uint  `json:"client_id"`
	// TMB overrides the value computed from the client when positive.
	TMB float64 `json:"tmb"`
}

// CreateDiet is step two of the wizard: the caller has picked a client (or
// none) and a name; the basal estimate comes from the client's measurements
// unless an explicit override is given.
func (s *DietService) CreateDiet(ctx context.Context, userID uint, in DietInput) (*models.Diet, error) {
	diet := &models.Diet{
		UserID: userID,
		Name:   in.Name,
		TMB:    in.TMB,
		Slots:  DefaultSlots(),
	}

	if in.ClientID != nil {
		var client models.Client
		if err := s.db.WithContext(ctx).
			Where("id = ? AND user_id = ?", *in.ClientID, userID).
			First(&client).Error; err != nil {
			return nil, fmt.Errorf("client not found")
		}
		diet.ClientID = &client.ID
		diet.ClientName = client.Name
		if in.TMB <= 0 {
			if tmb, ok := utils.EstimateTMB(client.WeightKg, client.HeightCm, client.Age, client.Gender, client.ActivityLevel); ok {
				diet.TMB = tmb
			}
		}
	}

	if err := s.db.WithContext(ctx).Create(diet).Error; err != nil {
		return nil, err
	}
	return diet, nil
}

func (s *DietService) loadDiet(ctx context.Context, userID, dietID uint, isTemplate bool) (*models.Diet, error) {
	var diet models.Diet
	err := s.db.WithContext(ctx).
		Preload("Goal").
		Preload("Entries").
		Preload("Slots").
		Preload("Supplements").
		Where("id = ? AND user_id = ? AND is_template = ?", dietID, userID, isTemplate).
		First(&diet).Error
	if err != nil {
		return nil, err
	}
	return &diet, nil
}

// loadOwned fetches a diet or template by id without caring which of the two
// it is. Grid, goal, slot and supplement editing work the same on both.
func (s *DietService) loadOwned(ctx context.Context, userID, dietID uint) (*models.Diet, error) {
	var diet models.Diet
	err := s.db.WithContext(ctx).
		Preload("Goal").
		Preload("Entries").
		Preload("Slots").
		Preload("Supplements").
		Where("id = ? AND user_id = ?", dietID, userID).
		First(&diet).Error
	if err != nil {
		return nil, err
	}
	return &diet, nil
}

func (s *DietService) GetDiet(ctx context.Context, userID, dietID uint) (*models.Diet, error) {
	return s.loadDiet(ctx, userID, dietID, false)
}

func (s *DietService) ListDiets(ctx context.Context, userID uint) ([]models.Diet, error) {
	var diets []models.Diet
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_template = ?", userID, false).
		Order("created_at DESC").
		Find(&diets).Error
	return diets, err
}

type DietUpdateInput struct {
	Name       string  `json:"name"`
	ClientName string  `json:"client_name"`
	TMB        float64 `json:"tmb"`
}

func (s *DietService) UpdateDiet(ctx context.Context, userID, dietID uint, in DietUpdateInput) (*models.Diet, error) {
	diet, err := s.loadDiet(ctx, userID, dietID, false)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		diet.Name = in.Name
	}
	if in.ClientName != "" {
		diet.ClientName = in.ClientName
	}
	if in.TMB > 0 {
		diet.TMB = in.TMB
	}
	if err := s.db.WithContext(ctx).Save(diet).Error; err != nil {
		return nil, err
	}
	return diet, nil
}

// DeleteDiet removes the diet and all owned rows. Works for templates too.
func (s *DietService) DeleteDiet(ctx context.Context, userID, dietID uint) error {
	var diet models.Diet
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", dietID, userID).
		First(&diet).Error; err != nil {
		return err
	}

	db := s.db.WithContext(ctx)
	for _, m := range []interface{}{&models.DietEntry{}, &models.MealSlot{}, &models.Supplement{}, &models.CustomGoal{}} {
		if err := db.Where("diet_id = ?", diet.ID).Delete(m).Error; err != nil {
			return err
		}
	}
	return db.Delete(&diet).Error
}

// ---------- entries ----------

type EntryInput struct {
	Day      string  `json:"day" binding:"required"`
	SlotID   string  `json:"slot_id" binding:"required"`
	FoodID   uint    `json:"food_id" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required"`
}

// AddEntry scales the referenced catalog food and appends the snapshot to
// the requested day/slot. The food's current macros are copied; later
// catalog edits leave this entry alone.
func (s *DietService) AddEntry(ctx context.Context, userID, dietID uint, in EntryInput) (*models.DietEntry, error) {
	if !models.IsWeekDay(in.Day) {
		return nil, fmt.Errorf("unknown day %q", in.Day)
	}

	diet, err := s.loadOwned(ctx, userID, dietID)
	if err != nil {
		return nil, err
	}

	var food models.Food
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", in.FoodID, userID).
		First(&food).Error; err != nil {
		return nil, fmt.Errorf("food not found")
	}

	entry, err := ScaleFood(food, in.Quantity)
	if err != nil {
		return nil, err
	}
	entry.DietID = diet.ID
	entry.Day = in.Day
	entry.SlotID = in.SlotID

	var count int64
	s.db.WithContext(ctx).Model(&models.DietEntry{}).
		Where("diet_id = ? AND day = ? AND slot_id = ?", diet.ID, in.Day, in.SlotID).
		Count(&count)
	entry.Position = int(count)

	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// RemoveEntry deletes one entry. Removal plus re-add is the only edit path
// for entries; they are never mutated in place.
func (s *DietService) RemoveEntry(ctx context.Context, userID, dietID, entryID uint) error {
	diet, err := s.loadOwned(ctx, userID, dietID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Where("id = ? AND diet_id = ?", entryID, diet.ID).
		Delete(&models.DietEntry{}).Error
}

// ---------- goal ----------

type GoalInput struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// UpsertGoal validates and saves a custom macro goal. Inconsistent goals are
// rejected here, at the save boundary, never silently corrected.
func (s *DietService) UpsertGoal(ctx context.Context, userID, dietID uint, in GoalInput) (*models.CustomGoal, error) {
	diet, err := s.loadOwned(ctx, userID, dietID)
	if err != nil {
		return nil, err
	}

	goal := models.CustomGoal{
		DietID:   diet.ID,
		Calories: in.Calories,
		Protein:  in.Protein,
		Carbs:    in.Carbs,
		Fat:      in.Fat,
		Fiber:    in.Fiber,
	}
	if err := ValidateCustomGoal(goal); err != nil {
		return nil, err
	}

	if diet.Goal != nil {
		goal.ID = diet.Goal.ID
		goal.CreatedAt = diet.Goal.CreatedAt
		if err := s.db.WithContext(ctx).Save(&goal).Error; err != nil {
			return nil, err
		}
		return &goal, nil
	}
	if err := s.db.WithContext(ctx).Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (s *DietService) ClearGoal(ctx context.Context, userID, dietID uint) error {
	diet, err := s.loadOwned(ctx, userID, dietID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Where("diet_id = ?", diet.ID).
		Delete(&models.CustomGoal{}).Error
}

// ---------- slots ----------

type SlotInput struct {
	SlotID string `json:"slot_id" binding:"required"`
	Name   string `json:"name" binding:"required"`
	Order  int    `json:"order"`
}

func (s *DietService) AddSlot(ctx context.Context, userID, dietID uint, in SlotInput) (*models.MealSlot, error) {
	diet, err := s.loadOwned(ctx, userID, dietID)
	if err != nil {
		return nil, err
	}
	for _, slot := range diet.Slots {
		if slot.SlotID == in.SlotID {
			return nil, fmt.Errorf("slot %q already defined", in.SlotID)
		}
	}
	slot := models.MealSlot{DietID: diet.ID, SlotID: in.SlotID, Name: in.Name, Order: in.Order}
	if err := s.db.WithContext(ctx).Create(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (s *DietService) UpdateSlot(ctx context.Context, userID, dietID uint, slotID string, name string, order int) (*models.MealSlot, error) {
	diet, err := s.loadOwned(ctx, userID, dietID)
	if err != nil {
		return nil, err
	}
	var slot models.MealSlot
	if err := s.db.WithContext(ctx).
		Where("diet_id = ? AND slot_id = ?", diet.ID, slotID).
		First(&slot).Error; err != nil {
		return nil, err
	}
	slot.Name = name
	slot.Order = order
	if err := s.db.WithContext(ctx).Save(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// RemoveSlot deletes the definition only. Entries already placed under the
// slot id stay in the grid and degrade to an unnamed column.
func (s *DietService) RemoveSlot(ctx context.Context, userID, dietID uint, slotID string) error {
	diet, err := s.loadOwned(ctx, userID, dietID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Where("diet_id = ? AND slot_id = ?", diet.ID, slotID).
		Delete(&models.MealSlot{}).Error
}

// ---------- supplements ----------

type SupplementInput struct {
	Name      string `json:"name" binding:"required"`
	Quantity  string `json:"quantity"`
	TimeOfDay string `json:"time_of_day"`
	Comment   string `json:"comment"`
}

func (s *DietService) AddSupplement(ctx context.Context, userID, dietID uint, in SupplementInput) (*models.Supplement, error) {
	diet, err := s.loadOwned(ctx, userID, dietID)
	if err != nil {
		return nil, err
	}
	sup := models.Supplement{
		DietID:    diet.ID,
		Name:      in.Name,
		Quantity:  in.Quantity,
		TimeOfDay: in.TimeOfDay,
		Comment:   in.Comment,
	}
	if err := s.db.WithContext(ctx).Create(&sup).Error; err != nil {
		return nil, err
	}
	return &sup, nil
}

func (s *DietService) RemoveSupplement(ctx context.Context, userID, dietID, supplementID uint) error {
	diet, err := s.loadOwned(ctx, userID, dietID)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Where("id = ? AND diet_id = ?", supplementID, diet.ID).
		Delete(&models.Supplement{}).Error
}

// ---------- sharing ----------

// EnsureShareID mints the diet's opaque public token on first call and
// returns the existing one afterwards.
func (s *DietService) EnsureShareID(ctx context.Context, userID, dietID uint) (string, error) {
	diet, err := s.loadDiet(ctx, userID, dietID, false)
	if err != nil {
		return "", err
	}
	if diet.ShareID != "" {
		return diet.ShareID, nil
	}
	diet.ShareID = utils.GenerateRandomToken(24)
	if err := s.db.WithContext(ctx).Model(&models.Diet{}).
		Where("id = ?", diet.ID).
		Update("share_id", diet.ShareID).Error; err != nil {
		return "", err
	}
	return diet.ShareID, nil
}

// GetByShareID resolves a public token without any user scoping; this backs
// the unauthenticated share view. The owner gets a best-effort notification
// that the link was opened.
func (s *DietService) GetByShareID(ctx context.Context, shareID string) (*models.Diet, error) {
	var diet models.Diet
	err := s.db.WithContext(ctx).
		Preload("Goal").
		Preload("Entries").
		Preload("Slots").
		Preload("Supplements").
		Where("share_id = ? AND is_template = ?", shareID, false).
		First(&diet).Error
	if err != nil {
		return nil, err
	}

	EmitEvent(diet.UserID, "diet.shared_view", fmt.Sprintf("The shared plan %q was viewed.", diet.Name))
	return &diet, nil
}

// ---------- summary ----------

type SlotInfo struct {
	SlotID string `json:"slot_id"`
	Name   string `json:"name"`
	Order  int    `json:"order"`
}

type DaySummary struct {
	Day      string          `json:"day"`
	Totals   DayTotals       `json:"totals"`
	Status   GoalStatus      `json:"status"`
	Warnings []utils.Warning `json:"warnings,omitempty"`
}

type DietSummary struct {
	DietID       uint         `json:"diet_id"`
	Name         string       `json:"name"`
	ClientName   string       `json:"client_name,omitempty"`
	Target       float64      `json:"target"`
	Days         []DaySummary `json:"days"`
	Week         DayTotals    `json:"week"`
	DailyAverage DayTotals    `json:"daily_average"`
	Slots        []SlotInfo   `json:"slots"`
	Supplements  int          `json:"supplement_count"`
}

// BuildDietSummary produces the display-ready aggregated form of a loaded
// diet: per-day totals with goal classification, weekly totals and the slot
// column list. Pure; also used to serialize the public share view, which
// needs no authenticated caller.
func BuildDietSummary(diet *models.Diet) DietSummary {
	grid := BuildGrid(diet.Entries)
	target := EffectiveTarget(diet)

	out := DietSummary{
		DietID:      diet.ID,
		Name:        diet.Name,
		ClientName:  diet.ClientName,
		Target:      target,
		Week:        grid.AggregateWeek(),
		Slots:       slotColumns(diet.Slots, grid),
		Supplements: len(diet.Supplements),
	}
	out.DailyAverage = AveragePerDay(out.Week)

	for _, day := range models.WeekDays {
		totals := grid.AggregateDay(day)
		out.Days = append(out.Days, DaySummary{
			Day:      day,
			Totals:   totals,
			Status:   ClassifyCalories(totals.Calories, target),
			Warnings: utils.AssessDayBalance(totals.Calories, totals.Protein, totals.Fat, totals.Carbs, totals.Fiber, target),
		})
	}
	return out
}

// slotColumns merges the defined slot list with any orphan slot ids found in
// the grid. Orphans keep their id and render as "unnamed"; they sort after
// the defined slots.
func slotColumns(defs []models.MealSlot, grid MealGrid) []SlotInfo {
	defined := map[string]bool{}
	out := make([]SlotInfo, 0, len(defs))
	for _, d := range defs {
		defined[d.SlotID] = true
		out = append(out, SlotInfo{SlotID: d.SlotID, Name: d.Name, Order: d.Order})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })

	for _, id := range grid.ListSlotIDs() {
		if !defined[id] {
			out = append(out, SlotInfo{SlotID: id, Name: "unnamed"})
		}
	}
	return out
}

// Summary loads a diet and aggregates it for display.
func (s *DietService) Summary(ctx context.Context, userID, dietID uint) (*DietSummary, error) {
	diet, err := s.loadDiet(ctx, userID, dietID, false)
	if err != nil {
		return nil, err
	}
	sum := BuildDietSummary(diet)
	return &sum, nil
}
