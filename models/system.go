package models

import (
	"time"

	"gorm.io/gorm"
)

// System represents a physical installation (impianto) under contract at a
// client's site. Deleting a system removes its work orders and recurring
// maintenances; deleting a client does NOT remove its systems, so a system
// can outlive the client it points at.
type System struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ClientID  uint           `gorm:"not null;index" json:"client_id"`
	Type      string         `gorm:"not null;index" json:"type"`
	Contract  string         `gorm:"index" json:"contract"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the System model
func (System) TableName() string {
	return "systems"
}

// RecurringMaintenance represents a periodic maintenance obligation tied to
// a client's system
type RecurringMaintenance struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	ClientID  uint           `gorm:"not null;index" json:"client_id"`
	SystemID  uint           `gorm:"not null;index" json:"system_id"`
	Type      string         `gorm:"not null;index" json:"type"`
	Frequency string         `gorm:"not null;index" json:"frequency"` // e.g. "monthly", "quarterly"
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the RecurringMaintenance model
func (RecurringMaintenance) TableName() string {
	return "recurring_maintenances"
}
