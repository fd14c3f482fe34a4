package services

import (
	"errors"

	"backend/config"
	"backend/models"
	"backend/utils"
)

func RegisterUser(email, password, fullName, clinicName string) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:      email,
		Password:   hashedPassword,
		FullName:   fullName,
		ClinicName: clinicName,
	}

	return config.DB.Create(&user).Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return "", errors.New("user not found or disabled")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

type UserProfile struct {
	ID         uint   `json:"id"`
	Email      string `json:"email"`
	FullName   string `json:"full_name"`
	ClinicName string `json:"clinic_name"`
}

func GetUserProfile(userID uint) (*UserProfile, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &UserProfile{
		ID:         user.ID,
		Email:      user.Email,
		FullName:   user.FullName,
		ClinicName: user.ClinicName,
	}, nil
}

func UpdateUserProfile(userID uint, fullName, clinicName string) error {
	return config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"full_name":   fullName,
			"clinic_name": clinicName,
		}).Error
}
