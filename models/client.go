package models

import "gorm.io/gorm"

// Questionnaire blocks are pure data attached to a client. They carry no
// computed behavior; only the measurement fields on Client itself feed the
// basal estimate.

type PersonalData struct {
	Occupation    string
	MaritalStatus string
	Children      int
	Notes         string `gorm:"type:text"`
}

// HealthAnswers is a PAR-Q style screening block.
type HealthAnswers struct {
	HeartCondition   bool
	ChestPain        bool
	Dizziness        bool
	BoneJointProblem bool
	BloodPressureMed bool
	OtherReason      bool
	Details          string `gorm:"type:text"`
}

type TrainingPreferences struct {
	TrainsCurrently bool
	Modality        string
	WeeklySessions  int
	PreferredTime   string
}

type LifestyleHabits struct {
	SleepHours       float64
	WaterLitersDay   float64
	AlcoholFrequency string
	Smokes           bool
	MealsPerDay      int
	Restrictions     string `gorm:"type:text"` // comma-separated food restrictions
}

type Client struct {
	gorm.Model
	UserID uint   `gorm:"index;not null"`
	Name   string `gorm:"not null"`
	Email  string
	Phone  string

	// measurements required for the basal estimate
	Age      int
	WeightKg float64
	HeightCm float64
	Gender   string `gorm:"size:16"` // "male" | "female"

	ActivityLevel string `gorm:"size:32"` // sedentary | lightly_active | moderately_active | very_active | extremely_active
	GoalLabel     string
	Photo         string

	Personal  PersonalData        `gorm:"embedded;embeddedPrefix:personal_"`
	Health    HealthAnswers       `gorm:"embedded;embeddedPrefix:parq_"`
	Training  TrainingPreferences `gorm:"embedded;embeddedPrefix:training_"`
	Lifestyle LifestyleHabits     `gorm:"embedded;embeddedPrefix:lifestyle_"`
}
