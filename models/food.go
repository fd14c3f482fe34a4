package models

import "gorm.io/gorm"

// Food is a catalog entry. Macro values are stored per 100 of the base
// measure implied by Portion ("100g", "250ml", "1 unit"). Diet entries copy
// the name and scaled macros at insert time, so editing a catalog food never
// rewrites diets that already reference it.
type Food struct {
	gorm.Model
	UserID  uint   `gorm:"index;not null"`
	Name    string `gorm:"not null"`
	Group   string `gorm:"column:food_group"`
	Portion string

	Calories float64
	Protein  float64
	Fat      float64
	Carbs    float64
	Fiber    float64
}
