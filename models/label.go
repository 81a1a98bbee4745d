package models

import (
	"time"

	"gorm.io/gorm"
)

// Label is a free-form tag attachable to an intervention
type Label struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null;index" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the Label model
func (Label) TableName() string {
	return "labels"
}
