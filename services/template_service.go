// services/template_service.go
package services

import (
	"context"
	"fmt"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

// Valid template categories; anything else is rejected at save.
var templateCategories = map[string]bool{
	"weight_loss": true,
	"muscle_gain": true,
	"maintenance": true,
	"health":      true,
	"custom":      true,
}

type TemplateService struct {
	db *gorm.DB
}

func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{db: db}
}

type TemplateInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
}

func (in TemplateInput) validate() error {
	if !templateCategories[in.Category] {
		return fmt.Errorf("unknown category %q", in.Category)
	}
	return nil
}

func (s *TemplateService) Create(ctx context.Context, userID uint, in TemplateInput) (*models.Diet, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	tpl := &models.Diet{
		UserID:      userID,
		Name:        in.Name,
		IsTemplate:  true,
		Description: in.Description,
		Category:    in.Category,
		Slots:       DefaultSlots(),
	}
	if err := s.db.WithContext(ctx).Create(tpl).Error; err != nil {
		return nil, err
	}
	return tpl, nil
}

func (s *TemplateService) Get(ctx context.Context, userID, templateID uint) (*models.Diet, error) {
	var tpl models.Diet
	err := s.db.WithContext(ctx).
		Preload("Goal").
		Preload("Entries").
		Preload("Slots").
		Preload("Supplements").
		Where("id = ? AND user_id = ? AND is_template = ?", templateID, userID, true).
		First(&tpl).Error
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (s *TemplateService) List(ctx context.Context, userID uint, category string) ([]models.Diet, error) {
	q := s.db.WithContext(ctx).
		Where("user_id = ? AND is_template = ?", userID, true).
		Order("updated_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var tpls []models.Diet
	err := q.Find(&tpls).Error
	return tpls, err
}

func (s *TemplateService) Update(ctx context.Context, userID, templateID uint, in TemplateInput) (*models.Diet, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	tpl, err := s.Get(ctx, userID, templateID)
	if err != nil {
		return nil, err
	}
	tpl.Name = in.Name
	tpl.Description = in.Description
	tpl.Category = in.Category
	if err := s.db.WithContext(ctx).Save(tpl).Error; err != nil {
		return nil, err
	}
	return tpl, nil
}

// ---------- cloning (pure) ----------

// The clone helpers produce fresh rows with zeroed identity so that the new
// diet and its source template share no live references. Mutating one must
// never alter the other.

func cloneEntries(entries []models.DietEntry) []models.DietEntry {
	out := make([]models.DietEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, models.DietEntry{
			Day:      e.Day,
			SlotID:   e.SlotID,
			Position: e.Position,
			FoodID:   e.FoodID,
			FoodName: e.FoodName,
			Quantity: e.Quantity,
			Unit:     e.Unit,
			Calories: e.Calories,
			Protein:  e.Protein,
			Fat:      e.Fat,
			Carbs:    e.Carbs,
			Fiber:    e.Fiber,
		})
	}
	return out
}

func cloneSlots(slots []models.MealSlot) []models.MealSlot {
	out := make([]models.MealSlot, 0, len(slots))
	for _, sl := range slots {
		out = append(out, models.MealSlot{SlotID: sl.SlotID, Name: sl.Name, Order: sl.Order})
	}
	return out
}

func cloneSupplements(sups []models.Supplement) []models.Supplement {
	out := make([]models.Supplement, 0, len(sups))
	for _, sup := range sups {
		out = append(out, models.Supplement{
			Name:      sup.Name,
			Quantity:  sup.Quantity,
			TimeOfDay: sup.TimeOfDay,
			Comment:   sup.Comment,
		})
	}
	return out
}

func cloneGoal(g *models.CustomGoal) *models.CustomGoal {
	if g == nil {
		return nil
	}
	return &models.CustomGoal{
		Calories: g.Calories,
		Protein:  g.Protein,
		Carbs:    g.Carbs,
		Fat:      g.Fat,
		Fiber:    g.Fiber,
	}
}

// BuildDietFromTemplate deep-copies a template's grid, slots, supplements
// and goal into a new client diet. Pure; persistence and the usage counter
// are Instantiate's business.
func BuildDietFromTemplate(tpl *models.Diet, clientID *uint, clientName string, tmb float64) *models.Diet {
	tplID := tpl.ID
	return &models.Diet{
		UserID:      tpl.UserID,
		Name:        fmt.Sprintf("%s - %s", tpl.Name, clientName),
		IsTemplate:  false,
		ClientID:    clientID,
		ClientName:  clientName,
		TMB:         tmb,
		TemplateID:  &tplID,
		Goal:        cloneGoal(tpl.Goal),
		Entries:     cloneEntries(tpl.Entries),
		Slots:       cloneSlots(tpl.Slots),
		Supplements: cloneSupplements(tpl.Supplements),
	}
}

// BuildTemplateFromDiet is the inverse: it strips the client-identifying
// fields (client, TMB, share id) and resets the usage counter.
func BuildTemplateFromDiet(diet *models.Diet, name, description, category string) *models.Diet {
	return &models.Diet{
		UserID:      diet.UserID,
		Name:        name,
		IsTemplate:  true,
		Description: description,
		Category:    category,
		UsageCount:  0,
		Goal:        cloneGoal(diet.Goal),
		Entries:     cloneEntries(diet.Entries),
		Slots:       cloneSlots(diet.Slots),
		Supplements: cloneSupplements(diet.Supplements),
	}
}

// ---------- instantiation ----------

// Instantiate assigns a template to a client: the grid is deep-copied into a
// fresh diet and the template's usage counter goes up by one. The counter
// update is best effort; if it fails after the diet was created the diet
// stands and the miss is logged, since usage counts are advisory only.
func (s *TemplateService) Instantiate(ctx context.Context, userID, templateID, clientID uint) (*models.Diet, error) {
	tpl, err := s.Get(ctx, userID, templateID)
	if err != nil {
		return nil, err
	}

	var client models.Client
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", clientID, userID).
		First(&client).Error; err != nil {
		return nil, fmt.Errorf("client not found")
	}

	tmb, _ := utils.EstimateTMB(client.WeightKg, client.HeightCm, client.Age, client.Gender, client.ActivityLevel)

	diet := BuildDietFromTemplate(tpl, &client.ID, client.Name, tmb)
	if err := s.db.WithContext(ctx).Create(diet).Error; err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&models.Diet{}).
		Where("id = ?", tpl.ID).
		UpdateColumn("usage_count", gorm.Expr("usage_count + ?", 1)).Error; err != nil {
		utils.Logger().Warnw("template usage counter not incremented",
			"template_id", tpl.ID, "diet_id", diet.ID, "error", err)
	}

	EmitEvent(userID, "template.assigned",
		fmt.Sprintf("Template %q was assigned to %s.", tpl.Name, client.Name))

	return diet, nil
}

// ConvertDietToTemplate snapshots an existing client diet into a reusable
// template.
func (s *TemplateService) ConvertDietToTemplate(ctx context.Context, userID, dietID uint, in TemplateInput) (*models.Diet, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	var diet models.Diet
	if err := s.db.WithContext(ctx).
		Preload("Goal").
		Preload("Entries").
		Preload("Slots").
		Preload("Supplements").
		Where("id = ? AND user_id = ? AND is_template = ?", dietID, userID, false).
		First(&diet).Error; err != nil {
		return nil, err
	}

	tpl := BuildTemplateFromDiet(&diet, in.Name, in.Description, in.Category)
	if err := s.db.WithContext(ctx).Create(tpl).Error; err != nil {
		return nil, err
	}
	return tpl, nil
}

// ---------- stats ----------

type TemplateStats struct {
	TemplateID   uint      `json:"template_id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	UsageCount   int       `json:"usage_count"`
	EntryCount   int       `json:"entry_count"`
	Week         DayTotals `json:"week"`
	DailyAverage DayTotals `json:"daily_average"`
}

// BuildTemplateStats computes a template's display statistics. Pure.
func BuildTemplateStats(tpl *models.Diet) TemplateStats {
	week := AggregateWeek(tpl.Entries)
	return TemplateStats{
		TemplateID:   tpl.ID,
		Name:         tpl.Name,
		Category:     tpl.Category,
		UsageCount:   tpl.UsageCount,
		EntryCount:   len(tpl.Entries),
		Week:         week,
		DailyAverage: AveragePerDay(week),
	}
}

func (s *TemplateService) Stats(ctx context.Context, userID, templateID uint) (*TemplateStats, error) {
	tpl, err := s.Get(ctx, userID, templateID)
	if err != nil {
		return nil, err
	}
	out := BuildTemplateStats(tpl)
	return &out, nil
}
