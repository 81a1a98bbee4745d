package models

import (
	"time"

	"gorm.io/gorm"
)

// Intervention represents a completed service visit for a client.
// ClientID is not a database-level foreign key: deleting a client removes
// its interventions atomically, but a system may still reference a client
// that is gone, so lookups must tolerate the gap.
type Intervention struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	ClientID   uint           `gorm:"not null;index" json:"client_id"`
	Type       string         `gorm:"not null;index" json:"type"`
	Date       string         `gorm:"not null;index" json:"date"` // ISO YYYY-MM-DD at the storage boundary
	Duration   float64        `gorm:"not null;check:duration > 0" json:"duration"` // hours
	Cost       float64        `gorm:"not null;check:cost > 0" json:"cost"`
	LabelID    *uint          `gorm:"index" json:"label_id"` // nullable, optional label
	Technician string         `json:"technician"`
	Notes      string         `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Intervention model
func (Intervention) TableName() string {
	return "interventions"
}
