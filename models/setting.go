package models

import "time"

// SettingKeyTheme is the only preference that survives across sessions
const SettingKeyTheme = "theme"

// Setting is a persisted key-value pair for user preferences
type Setting struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;not null" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}

// AllModels returns every model to auto-migrate, in dependency order
func AllModels() []interface{} {
	return []interface{}{
		&Client{},
		&Label{},
		&Intervention{},
		&Material{},
		&PlannedIntervention{},
		&System{},
		&WorkOrder{},
		&RecurringMaintenance{},
		&Setting{},
	}
}
