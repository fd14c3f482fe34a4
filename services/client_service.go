// services/client_service.go
package services

import (
	"context"
	"fmt"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type ClientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db}
}

type ClientInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`

	Age      int     `json:"age"`
	WeightKg float64 `json:"weight_kg"`
	HeightCm float64 `json:"height_cm"`
	Gender   string  `json:"gender"`

	ActivityLevel string `json:"activity_level"`
	GoalLabel     string `json:"goal_label"`
	PhotoBase64   string `json:"photo_base64"`

	Personal  *models.PersonalData        `json:"personal"`
	Health    *models.HealthAnswers       `json:"health"`
	Training  *models.TrainingPreferences `json:"training"`
	Lifestyle *models.LifestyleHabits     `json:"lifestyle"`
}

func (s *ClientService) apply(client *models.Client, in ClientInput) error {
	client.Name = in.Name
	client.Email = in.Email
	client.Phone = in.Phone
	client.Age = in.Age
	client.WeightKg = in.WeightKg
	client.HeightCm = in.HeightCm
	client.Gender = in.Gender
	client.ActivityLevel = in.ActivityLevel
	client.GoalLabel = in.GoalLabel

	if in.Personal != nil {
		client.Personal = *in.Personal
	}
	if in.Health != nil {
		client.Health = *in.Health
	}
	if in.Training != nil {
		client.Training = *in.Training
	}
	if in.Lifestyle != nil {
		client.Lifestyle = *in.Lifestyle
	}

	if in.PhotoBase64 != "" {
		url, err := utils.UploadClientPhoto(in.PhotoBase64, fmt.Sprintf("u%d-%s", client.UserID, client.Name))
		if err != nil {
			return fmt.Errorf("failed to upload photo: %w", err)
		}
		client.Photo = url
	}
	return nil
}

func (s *ClientService) Create(ctx context.Context, userID uint, in ClientInput) (*models.Client, error) {
	client := &models.Client{UserID: userID}
	if err := s.apply(client, in); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Create(client).Error; err != nil {
		return nil, err
	}
	return client, nil
}

func (s *ClientService) Update(ctx context.Context, userID, clientID uint, in ClientInput) (*models.Client, error) {
	var client models.Client
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", clientID, userID).
		First(&client).Error; err != nil {
		return nil, err
	}
	if err := s.apply(&client, in); err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Save(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) Delete(ctx context.Context, userID, clientID uint) error {
	return s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", clientID, userID).
		Delete(&models.Client{}).Error
}

func (s *ClientService) Get(ctx context.Context, userID, clientID uint) (*models.Client, error) {
	var client models.Client
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", clientID, userID).
		First(&client).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (s *ClientService) List(ctx context.Context, userID uint, query string) ([]models.Client, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("name ASC")
	if query != "" {
		q = q.Where("name ILIKE ?", "%"+query+"%")
	}
	var clients []models.Client
	err := q.Find(&clients).Error
	return clients, err
}

// HealthSummary is the computed block on a client's profile page.
type HealthSummary struct {
	TMB          float64 `json:"tmb,omitempty"`
	TMBAvailable bool    `json:"tmb_available"`
	BMI          float64 `json:"bmi,omitempty"`
	BMICategory  string  `json:"bmi_category,omitempty"`
}

// Health computes the client's basal estimate and BMI. Either value can be
// unavailable when measurements are missing; that is reported, not an error.
func (s *ClientService) Health(ctx context.Context, userID, clientID uint) (*HealthSummary, error) {
	client, err := s.Get(ctx, userID, clientID)
	if err != nil {
		return nil, err
	}

	out := &HealthSummary{}
	out.TMB, out.TMBAvailable = utils.EstimateTMB(
		client.WeightKg, client.HeightCm, client.Age, client.Gender, client.ActivityLevel,
	)
	if bmi, err := utils.CalculateBMI(client.HeightCm, client.WeightKg); err == nil {
		out.BMI = bmi
		out.BMICategory = utils.BMICategory(bmi)
	}
	return out, nil
}
