package models

import "time"

// Notification is an in-app event for the nutritionist: a template was
// assigned, a shared diet was viewed, and similar.
type Notification struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"index"`
	Kind      string `gorm:"size:32"` // "template.assigned" | "diet.shared_view"
	Message   string `gorm:"type:text"`
	Read      bool   `gorm:"default:false"`
	CreatedAt time.Time
}
