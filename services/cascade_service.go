package services

import (
	"fmt"

	"github.com/polotecnico/gestionale-api/models"
	"gorm.io/gorm"
)

// ownedKind is a record kind removed together with its owner
type ownedKind struct {
	model      interface{}
	foreignKey string
}

// cascadeOwnership declares which kinds each parent owns. Deleting a
// parent removes the parent row and every owned row whose foreign key
// matches, all inside one transaction.
//
// Client deliberately does not own System: the shipped tool leaves a
// client's systems behind when the client is deleted, and making that
// symmetric is a pending product decision. Every client lookup from a
// system therefore tolerates the gap.
var cascadeOwnership = map[string][]ownedKind{
	models.Client{}.TableName(): {
		{model: &models.Intervention{}, foreignKey: "client_id"},
		{model: &models.PlannedIntervention{}, foreignKey: "client_id"},
	},
	models.System{}.TableName(): {
		{model: &models.WorkOrder{}, foreignKey: "system_id"},
		{model: &models.RecurringMaintenance{}, foreignKey: "system_id"},
	},
}

// CascadeDelete removes the parent record and everything it owns in a
// single all-or-nothing transaction. A failure anywhere leaves every
// store untouched. Returns gorm.ErrRecordNotFound when the parent does
// not exist.
func CascadeDelete(db *gorm.DB, parent interface{ TableName() string }, id uint) error {
	owned, ok := cascadeOwnership[parent.TableName()]
	if !ok {
		return fmt.Errorf("no cascade ownership declared for %s", parent.TableName())
	}

	return db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(parent, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		for _, kind := range owned {
			if err := tx.Where(kind.foreignKey+" = ?", id).Delete(kind.model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DeleteClientCascade removes a client with its interventions and planned
// interventions
func DeleteClientCascade(db *gorm.DB, clientID uint) error {
	return CascadeDelete(db, &models.Client{}, clientID)
}

// DeleteSystemCascade removes a system with its work orders and recurring
// maintenances
func DeleteSystemCascade(db *gorm.DB, systemID uint) error {
	return CascadeDelete(db, &models.System{}, systemID)
}
