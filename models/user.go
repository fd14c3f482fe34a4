package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the nutritionist account that owns every other record.
type User struct {
	gorm.Model
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"`
	FullName      string
	ClinicName    string
	ResetToken    string
	ResetTokenExp time.Time
	Disabled      bool `gorm:"default:false"`
}
