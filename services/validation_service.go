package services

import (
	"errors"
	"strings"

	"github.com/polotecnico/gestionale-api/models"
	"github.com/polotecnico/gestionale-api/utils"
)

// Validation rules run in a fixed order and return the first failing
// reason: required fields, then numeric positivity, then format. Messages
// are user-facing and in the tool's locale.

// ValidateClient checks a client before it is persisted
func ValidateClient(client *models.Client) error {
	if strings.TrimSpace(client.Name) == "" {
		return errors.New("Il nome del cliente è obbligatorio")
	}
	if strings.TrimSpace(client.Address) == "" {
		return errors.New("L'indirizzo del cliente è obbligatorio")
	}
	if strings.TrimSpace(client.Phone) == "" {
		return errors.New("Il telefono del cliente è obbligatorio")
	}
	if client.Email == "" || !strings.Contains(client.Email, "@") {
		return errors.New("L'email del cliente non è valida")
	}
	return nil
}

// ValidateIntervention checks an intervention before it is persisted
func ValidateIntervention(intervention *models.Intervention) error {
	if intervention.ClientID == 0 {
		return errors.New("Il cliente è obbligatorio")
	}
	if strings.TrimSpace(intervention.Type) == "" {
		return errors.New("Il tipo di intervento è obbligatorio")
	}
	if intervention.Date == "" {
		return errors.New("La data è obbligatoria")
	}
	if intervention.Duration <= 0 {
		return errors.New("La durata deve essere maggiore di zero")
	}
	if intervention.Cost <= 0 {
		return errors.New("Il costo deve essere maggiore di zero")
	}
	if !utils.ValidISODate(intervention.Date) {
		return errors.New("La data non è valida")
	}
	return nil
}

// ValidateMaterial checks a material before it is persisted
func ValidateMaterial(material *models.Material) error {
	if strings.TrimSpace(material.Name) == "" {
		return errors.New("Il nome del materiale è obbligatorio")
	}
	if material.Quantity <= 0 {
		return errors.New("La quantità deve essere maggiore di zero")
	}
	if material.Price <= 0 {
		return errors.New("Il prezzo deve essere maggiore di zero")
	}
	return nil
}

// ValidatePlannedIntervention checks a planned intervention before it is
// persisted. The original tool skipped this; validation is now uniform
// across every record kind.
func ValidatePlannedIntervention(planned *models.PlannedIntervention) error {
	if planned.ClientID == 0 {
		return errors.New("Il cliente è obbligatorio")
	}
	if planned.Date == "" {
		return errors.New("La data è obbligatoria")
	}
	if strings.TrimSpace(planned.Type) == "" {
		return errors.New("Il tipo di intervento è obbligatorio")
	}
	if !utils.ValidISODate(planned.Date) {
		return errors.New("La data non è valida")
	}
	return nil
}

// ValidateSystem checks a system before it is persisted
func ValidateSystem(system *models.System) error {
	if system.ClientID == 0 {
		return errors.New("Il cliente è obbligatorio")
	}
	if strings.TrimSpace(system.Type) == "" {
		return errors.New("Il tipo di impianto è obbligatorio")
	}
	return nil
}

// ValidateWorkOrder checks a work order before it is persisted
func ValidateWorkOrder(workOrder *models.WorkOrder) error {
	if workOrder.SystemID == 0 {
		return errors.New("L'impianto è obbligatorio")
	}
	if strings.TrimSpace(workOrder.Description) == "" {
		return errors.New("La descrizione della commessa è obbligatoria")
	}
	if !models.ValidWorkOrderStatus(workOrder.Status) {
		return errors.New("Lo stato della commessa non è valido")
	}
	return nil
}
