// services/dashboard_service.go
package services

import (
	"context"
	"errors"

	"backend/models"

	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// ---------- Overview ----------

type RecentDiet struct {
	ID         uint       `json:"id"`
	Name       string     `json:"name"`
	ClientName string     `json:"client_name"`
	Target     float64    `json:"target"`
	Status     GoalStatus `json:"status"` // weekly average vs target
}

type TopTemplate struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	UsageCount int    `json:"usage_count"`
}

type DashboardOverview struct {
	Clients   int64 `json:"clients"`
	Diets     int64 `json:"diets"`
	Templates int64 `json:"templates"`
	Foods     int64 `json:"foods"`

	RecentDiets  []RecentDiet  `json:"recent_diets"`
	TopTemplates []TopTemplate `json:"top_templates"`
}

func (s *DashboardService) Overview(ctx context.Context, userID uint) (*DashboardOverview, error) {
	out := &DashboardOverview{}
	db := s.db.WithContext(ctx)

	if err := db.Model(&models.Client{}).Where("user_id = ?", userID).Count(&out.Clients).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Diet{}).Where("user_id = ? AND is_template = ?", userID, false).Count(&out.Diets).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Diet{}).Where("user_id = ? AND is_template = ?", userID, true).Count(&out.Templates).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Food{}).Where("user_id = ?", userID).Count(&out.Foods).Error; err != nil {
		return nil, err
	}

	var recent []models.Diet
	if err := db.
		Preload("Goal").
		Preload("Entries").
		Where("user_id = ? AND is_template = ?", userID, false).
		Order("updated_at DESC").
		Limit(5).
		Find(&recent).Error; err != nil {
		return nil, err
	}
	for i := range recent {
		d := &recent[i]
		avg := AveragePerDay(AggregateWeek(d.Entries))
		out.RecentDiets = append(out.RecentDiets, RecentDiet{
			ID:         d.ID,
			Name:       d.Name,
			ClientName: d.ClientName,
			Target:     EffectiveTarget(d),
			Status:     ClassifyCalories(avg.Calories, EffectiveTarget(d)),
		})
	}

	var tops []models.Diet
	if err := db.
		Where("user_id = ? AND is_template = ?", userID, true).
		Order("usage_count DESC").
		Limit(5).
		Find(&tops).Error; err != nil {
		return nil, err
	}
	for _, t := range tops {
		out.TopTemplates = append(out.TopTemplates, TopTemplate{
			ID: t.ID, Name: t.Name, Category: t.Category, UsageCount: t.UsageCount,
		})
	}

	return out, nil
}

// ---------- Weekly overview of one diet ----------

type DayChart struct {
	Day         string             `json:"day"`
	Percentages map[string]float64 `json:"percentages"`
}

type Metric struct {
	Actual  float64 `json:"actual"`
	Target  float64 `json:"target"`
	Percent float64 `json:"percent"`
}

type DayDetailed struct {
	Day     string            `json:"day"`
	Metrics map[string]Metric `json:"metrics"`
	Status  GoalStatus        `json:"status"`
}

type WeeklyOverviewResponse struct {
	DietID uint   `json:"diet_id"`
	Mode   string `json:"mode"` // chart|detailed
	Days   any    `json:"days"`
}

// WeeklyOverview renders a diet's week either as bare percentages (chart
// mode) or as actual/target/percent triples (detailed mode). Macro targets
// come from the custom goal when present; the calorie target always goes
// through EffectiveTarget.
func (s *DashboardService) WeeklyOverview(ctx context.Context, userID, dietID uint, mode string) (*WeeklyOverviewResponse, error) {
	if mode != "chart" && mode != "detailed" {
		return nil, errors.New("mode must be 'chart' or 'detailed'")
	}

	var diet models.Diet
	if err := s.db.WithContext(ctx).
		Preload("Goal").
		Preload("Entries").
		Where("id = ? AND user_id = ? AND is_template = ?", dietID, userID, false).
		First(&diet).Error; err != nil {
		return nil, err
	}

	grid := BuildGrid(diet.Entries)
	calTarget := EffectiveTarget(&diet)

	var protTarget, carbTarget, fatTarget, fiberTarget float64
	if diet.Goal != nil {
		protTarget = diet.Goal.Protein
		carbTarget = diet.Goal.Carbs
		fatTarget = diet.Goal.Fat
		fiberTarget = diet.Goal.Fiber
	}

	out := &WeeklyOverviewResponse{DietID: diet.ID, Mode: mode}

	if mode == "chart" {
		var days []DayChart
		for _, day := range models.WeekDays {
			t := grid.AggregateDay(day)
			days = append(days, DayChart{
				Day: day,
				Percentages: map[string]float64{
					"calories": pct(t.Calories, calTarget),
					"protein":  pct(t.Protein, protTarget),
					"carbs":    pct(t.Carbs, carbTarget),
					"fat":      pct(t.Fat, fatTarget),
					"fiber":    pct(t.Fiber, fiberTarget),
				},
			})
		}
		out.Days = days
		return out, nil
	}

	var days []DayDetailed
	for _, day := range models.WeekDays {
		t := grid.AggregateDay(day)
		days = append(days, DayDetailed{
			Day:    day,
			Status: ClassifyCalories(t.Calories, calTarget),
			Metrics: map[string]Metric{
				"calories":  {Actual: round2(t.Calories), Target: round2(calTarget), Percent: pct(t.Calories, calTarget)},
				"protein_g": {Actual: round2(t.Protein), Target: round2(protTarget), Percent: pct(t.Protein, protTarget)},
				"carbs_g":   {Actual: round2(t.Carbs), Target: round2(carbTarget), Percent: pct(t.Carbs, carbTarget)},
				"fat_g":     {Actual: round2(t.Fat), Target: round2(fatTarget), Percent: pct(t.Fat, fatTarget)},
				"fiber_g":   {Actual: round2(t.Fiber), Target: round2(fiberTarget), Percent: pct(t.Fiber, fiberTarget)},
			},
		})
	}
	out.Days = days
	return out, nil
}

func pct(actual, goal float64) float64 {
	if goal <= 0 {
		if actual <= 0 {
			return 0
		}
		return 100
	}
	return round2((actual / goal) * 100.0)
}
