package models

import (
	"time"

	"gorm.io/gorm"
)

// PlannedIntervention represents a scheduled future visit. Completing it
// turns it into an Intervention and removes the plan in one transaction.
type PlannedIntervention struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ClientID  uint           `gorm:"not null;index" json:"client_id"`
	Date      string         `gorm:"not null;index" json:"date"` // ISO YYYY-MM-DD
	Type      string         `gorm:"not null" json:"type"`
	Notes     string         `gorm:"type:text" json:"notes"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the PlannedIntervention model
func (PlannedIntervention) TableName() string {
	return "planned_interventions"
}
