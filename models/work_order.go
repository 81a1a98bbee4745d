package models

import (
	"time"

	"gorm.io/gorm"
)

// Work order statuses form a closed enumeration
const (
	WorkOrderStatusPlanned    = "planned"
	WorkOrderStatusInProgress = "in_progress"
	WorkOrderStatusCompleted  = "completed"
)

// WorkOrderStatuses lists every valid work order status
var WorkOrderStatuses = []string{
	WorkOrderStatusPlanned,
	WorkOrderStatusInProgress,
	WorkOrderStatusCompleted,
}

// WorkOrder represents a unit of work (commessa) against a system
type WorkOrder struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	SystemID    uint           `gorm:"not null;index" json:"system_id"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Status      string         `gorm:"not null;index;default:'planned'" json:"status"` // planned, in_progress, completed
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName specifies the table name for the WorkOrder model
func (WorkOrder) TableName() string {
	return "work_orders"
}

// ValidWorkOrderStatus reports whether s is one of the closed status set
func ValidWorkOrderStatus(s string) bool {
	for _, status := range WorkOrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}
