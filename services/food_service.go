// services/food_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"backend/models"

	"gorm.io/gorm"
)

type FoodService struct {
	db  *gorm.DB
	rek *RekognitionService
}

func NewFoodService(db *gorm.DB, rek *RekognitionService) *FoodService {
	return &FoodService{db: db, rek: rek}
}

type FoodInput struct {
	Name     string  `json:"name" binding:"required"`
	Group    string  `json:"group"`
	Portion  string  `json:"portion" binding:"required"` // e.g. "100g", "250ml", "1 unit"
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Fiber    float64 `json:"fiber"`
}

func (in FoodInput) validate() error {
	if in.Calories < 0 || in.Protein < 0 || in.Fat < 0 || in.Carbs < 0 || in.Fiber < 0 {
		return fmt.Errorf("macro values must be non-negative")
	}
	return nil
}

func (s *FoodService) Create(ctx context.Context, userID uint, in FoodInput) (*models.Food, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	food := &models.Food{
		UserID:   userID,
		Name:     in.Name,
		Group:    in.Group,
		Portion:  in.Portion,
		Calories: in.Calories,
		Protein:  in.Protein,
		Fat:      in.Fat,
		Carbs:    in.Carbs,
		Fiber:    in.Fiber,
	}
	if err := s.db.WithContext(ctx).Create(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

func (s *FoodService) Update(ctx context.Context, userID, foodID uint, in FoodInput) (*models.Food, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	var food models.Food
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", foodID, userID).
		First(&food).Error; err != nil {
		return nil, err
	}

	food.Name = in.Name
	food.Group = in.Group
	food.Portion = in.Portion
	food.Calories = in.Calories
	food.Protein = in.Protein
	food.Fat = in.Fat
	food.Carbs = in.Carbs
	food.Fiber = in.Fiber

	if err := s.db.WithContext(ctx).Save(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) Delete(ctx context.Context, userID, foodID uint) error {
	return s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", foodID, userID).
		Delete(&models.Food{}).Error
}

func (s *FoodService) Get(ctx context.Context, userID, foodID uint) (*models.Food, error) {
	var food models.Food
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", foodID, userID).
		First(&food).Error
	if err != nil {
		return nil, err // could be ErrRecordNotFound
	}
	return &food, nil
}

// List returns the user's catalog, optionally filtered by group and a
// case-insensitive name query.
func (s *FoodService) List(ctx context.Context, userID uint, group, query string) ([]models.Food, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("name ASC")
	if group != "" {
		q = q.Where("food_group = ?", group)
	}
	if query != "" {
		q = q.Where("name ILIKE ?", "%"+query+"%")
	}
	var foods []models.Food
	err := q.Find(&foods).Error
	return foods, err
}

// Recognize runs label detection on a base64 photo and searches the user's
// catalog for each detected label, best match first.
func (s *FoodService) Recognize(ctx context.Context, userID uint, base64Img string) ([]models.Food, error) {
	if s.rek == nil {
		return nil, fmt.Errorf("image recognition is not configured")
	}
	labels, err := s.rek.RecognizeLabels(base64Img)
	if err != nil {
		return nil, err
	}
	if len(labels) == 0 {
		return nil, fmt.Errorf("no labels detected")
	}

	var foods []models.Food
	for _, label := range labels {
		var matches []models.Food
		if err := s.db.WithContext(ctx).
			Where("user_id = ? AND name ILIKE ?", userID, "%"+strings.TrimSpace(label)+"%").
			Limit(5).
			Find(&matches).Error; err != nil {
			return nil, err
		}
		foods = append(foods, matches...)
	}
	return foods, nil
}
