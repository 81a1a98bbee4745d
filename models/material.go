package models

import (
	"time"

	"gorm.io/gorm"
)

// Material represents stock kept for service interventions
type Material struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null;index" json:"name"`
	Quantity  int            `gorm:"not null;check:quantity > 0" json:"quantity"`
	Price     float64        `gorm:"not null;check:price > 0" json:"price"` // unit price
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Material model
func (Material) TableName() string {
	return "materials"
}
