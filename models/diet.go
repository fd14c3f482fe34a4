package models

import "gorm.io/gorm"

// WeekDays is the fixed set of day buckets in a weekly plan. Meal slots are
// user-definable; days are not.
var WeekDays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

func IsWeekDay(day string) bool {
	for _, d := range WeekDays {
		if d == day {
			return true
		}
	}
	return false
}

// Diet doubles as a template. IsTemplate flips the row into the reusable,
// client-agnostic variant: Category/Description/UsageCount apply and the
// client-facing fields stay empty. Instantiating a template deep-copies its
// entries, slots and supplements into a fresh Diet; the two rows share
// nothing afterwards.
type Diet struct {
	gorm.Model
	UserID     uint   `gorm:"index;not null"`
	Name       string `gorm:"not null"`
	IsTemplate bool   `gorm:"index;default:false"`

	// client-facing fields (empty on templates)
	ClientID   *uint
	ClientName string
	TMB        float64
	ShareID    string `gorm:"index"`
	TemplateID *uint  // template this diet was instantiated from, if any

	// template-only fields
	Category    string `gorm:"size:32"` // weight_loss | muscle_gain | maintenance | health | custom
	Description string `gorm:"type:text"`
	UsageCount  int    `gorm:"default:0"`

	Goal        *CustomGoal  `gorm:"foreignKey:DietID"`
	Entries     []DietEntry  `gorm:"foreignKey:DietID"`
	Slots       []MealSlot   `gorm:"foreignKey:DietID"`
	Supplements []Supplement `gorm:"foreignKey:DietID"`
}

// DietEntry is one food placed into a meal slot on a given day. It snapshots
// the food's name and the macro values scaled to Quantity; it never points
// back at live catalog data.
type DietEntry struct {
	gorm.Model
	DietID   uint   `gorm:"index;not null"`
	Day      string `gorm:"size:16;not null"`
	SlotID   string `gorm:"size:64;not null"`
	Position int

	FoodID   uint
	FoodName string
	Quantity float64
	Unit     string `gorm:"size:8"` // "g" | "ml" | "unit"

	Calories float64
	Protein  float64
	Fat      float64
	Carbs    float64
	Fiber    float64
}

// MealSlot is the display metadata for one slot id. Entries referencing a
// slot id with no MealSlot row still aggregate; they just render unnamed.
type MealSlot struct {
	gorm.Model
	DietID uint   `gorm:"index;not null"`
	SlotID string `gorm:"size:64;not null"`
	Name   string
	Order  int `gorm:"column:slot_order"`
}

type Supplement struct {
	gorm.Model
	DietID    uint   `gorm:"index;not null"`
	Name      string `gorm:"not null"`
	Quantity  string
	TimeOfDay string
	Comment   string `gorm:"type:text"`
}

// CustomGoal overrides the TMB as the diet's calorie target when present and
// internally consistent (see services.ValidateCustomGoal).
type CustomGoal struct {
	gorm.Model
	DietID   uint `gorm:"uniqueIndex;not null"`
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
}
