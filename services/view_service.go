package services

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/polotecnico/gestionale-api/models"
	"gorm.io/gorm"
)

// View identifies one screen of the single-page frontend. The set is
// closed: loading dispatches through an exhaustive switch, never through
// a loosely-typed name lookup.
type View string

const (
	ViewDashboard        View = "dashboard"
	ViewNewIntervention  View = "new-intervention"
	ViewInterventionList View = "intervention-list"
	ViewMaterials        View = "materials"
	ViewFinancialReport  View = "financial-report"
	ViewClients          View = "clients"
	ViewPlanning         View = "planning"
	ViewInvoicing        View = "invoicing"
	ViewSystems          View = "systems"
	ViewWorkOrders       View = "work-orders"
	ViewCalendar         View = "calendar"
)

// AllViews lists every navigable view
var AllViews = []View{
	ViewDashboard,
	ViewNewIntervention,
	ViewInterventionList,
	ViewMaterials,
	ViewFinancialReport,
	ViewClients,
	ViewPlanning,
	ViewInvoicing,
	ViewSystems,
	ViewWorkOrders,
	ViewCalendar,
}

// ParseView maps a navigation name onto the closed view set
func ParseView(name string) (View, bool) {
	for _, view := range AllViews {
		if string(view) == name {
			return view, true
		}
	}
	return "", false
}

// ViewState is the complete input of one render: active view, filter
// criteria, pagination cursor and theme. It is immutable per render; a
// navigation builds a new state instead of mutating a shared one.
// Changing the filter does not touch Page — the cursor belongs to the
// caller.
type ViewState struct {
	View   View               `json:"view"`
	Filter InterventionFilter `json:"filter"`
	Page   int                `json:"page"`
	Theme  string             `json:"theme"`
}

// Display names rendered in place of a referenced record that no longer
// exists. A dangling reference is tolerated, never a crash.
const (
	MissingClientName = "Cliente non trovato"
	MissingSystemName = "Impianto non trovato"
)

// PlannedRow is a planned intervention with its client name resolved
type PlannedRow struct {
	models.PlannedIntervention
	ClientName string `json:"client_name"`
}

// SystemRow is a system with its client name resolved. The client may be
// gone: client deletion does not cascade onto systems.
type SystemRow struct {
	models.System
	ClientName string `json:"client_name"`
}

// WorkOrderRow is a work order with its system type resolved
type WorkOrderRow struct {
	models.WorkOrder
	SystemType string `json:"system_type"`
}

// MaintenanceRow is a recurring maintenance with both parents resolved
type MaintenanceRow struct {
	models.RecurringMaintenance
	ClientName string `json:"client_name"`
	SystemType string `json:"system_type"`
}

// CalendarEvent is a planned intervention shaped for the calendar widget
type CalendarEvent struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Start      string `json:"start"`
	AllDay     bool   `json:"all_day"`
	ClientID   uint   `json:"client_id"`
	ClientName string `json:"client_name"`
	Notes      string `json:"notes"`
}

// ViewData is the typed bundle a view renders from. Only the fields the
// active view needs are populated.
type ViewData struct {
	State              ViewState             `json:"state"`
	Summary            *DashboardSummary     `json:"summary,omitempty"`
	Monthly            []MonthlyStat         `json:"monthly,omitempty"`
	Clients            []models.Client       `json:"clients,omitempty"`
	Labels             []models.Label        `json:"labels,omitempty"`
	Interventions      []InterventionRow     `json:"interventions,omitempty"`
	TotalInterventions int                   `json:"total_interventions,omitempty"`
	TotalPages         int                   `json:"total_pages,omitempty"`
	Materials          []models.Material     `json:"materials,omitempty"`
	Financial          *FinancialReport      `json:"financial,omitempty"`
	Planned            []PlannedRow          `json:"planned,omitempty"`
	Systems            []SystemRow           `json:"systems,omitempty"`
	WorkOrders         []WorkOrderRow        `json:"work_orders,omitempty"`
	Maintenances       []MaintenanceRow      `json:"maintenances,omitempty"`
	Events             []CalendarEvent       `json:"events,omitempty"`
}

// ErrStaleView is returned when a load finishes after a newer navigation
// already started; the stale result must be discarded, not rendered.
var ErrStaleView = errors.New("view load superseded by a newer navigation")

// ViewLoader coordinates view loads. Every load takes a fresh generation
// token; a load that completes under a newer generation reports itself
// stale so a slow fetch can never overwrite a faster, later view.
type ViewLoader struct {
	generation atomic.Uint64
}

// Invalidate marks every in-flight load stale. Called on navigation so a
// load started for the previous view cannot render over the new one.
func (l *ViewLoader) Invalidate() {
	l.generation.Add(1)
}

// Load fetches the records the view needs and returns its data bundle
func (l *ViewLoader) Load(db *gorm.DB, state ViewState) (*ViewData, error) {
	token := l.generation.Add(1)

	data, err := buildViewData(db, state)
	if err != nil {
		return nil, err
	}
	if l.generation.Load() != token {
		return nil, ErrStaleView
	}
	return data, nil
}

func buildViewData(db *gorm.DB, state ViewState) (*ViewData, error) {
	data := &ViewData{State: state}

	switch state.View {
	case ViewDashboard:
		var interventions []models.Intervention
		if err := db.Find(&interventions).Error; err != nil {
			return nil, err
		}
		var clientCount, plannedCount int64
		if err := db.Model(&models.Client{}).Count(&clientCount).Error; err != nil {
			return nil, err
		}
		if err := db.Model(&models.PlannedIntervention{}).Count(&plannedCount).Error; err != nil {
			return nil, err
		}
		summary := BuildDashboardSummary(interventions, int(clientCount), int(plannedCount))
		data.Summary = &summary
		data.Monthly = MonthlyAggregation(interventions)

	case ViewNewIntervention:
		if err := db.Order("name").Find(&data.Clients).Error; err != nil {
			return nil, err
		}
		if err := db.Order("name").Find(&data.Labels).Error; err != nil {
			return nil, err
		}

	case ViewInterventionList:
		rows, err := LoadInterventionRows(db)
		if err != nil {
			return nil, err
		}
		filtered := FilterInterventions(rows, state.Filter)
		data.TotalInterventions = len(filtered)
		data.TotalPages = TotalPages(len(filtered), DefaultPageSize)
		data.Interventions = Paginate(filtered, state.Page, DefaultPageSize)

	case ViewMaterials:
		if err := db.Find(&data.Materials).Error; err != nil {
			return nil, err
		}

	case ViewFinancialReport:
		var interventions []models.Intervention
		if err := db.Find(&interventions).Error; err != nil {
			return nil, err
		}
		report := BuildFinancialReport(interventions)
		data.Financial = &report

	case ViewClients:
		if err := db.Order("name").Find(&data.Clients).Error; err != nil {
			return nil, err
		}

	case ViewPlanning:
		if err := db.Order("name").Find(&data.Clients).Error; err != nil {
			return nil, err
		}
		planned, err := LoadPlannedRows(db)
		if err != nil {
			return nil, err
		}
		data.Planned = planned

	case ViewInvoicing:
		if err := db.Order("name").Find(&data.Clients).Error; err != nil {
			return nil, err
		}

	case ViewSystems:
		if err := db.Order("name").Find(&data.Clients).Error; err != nil {
			return nil, err
		}
		systems, err := LoadSystemRows(db)
		if err != nil {
			return nil, err
		}
		data.Systems = systems

	case ViewWorkOrders:
		systems, err := LoadSystemRows(db)
		if err != nil {
			return nil, err
		}
		data.Systems = systems
		workOrders, err := LoadWorkOrderRows(db)
		if err != nil {
			return nil, err
		}
		data.WorkOrders = workOrders

	case ViewCalendar:
		events, err := LoadCalendarEvents(db)
		if err != nil {
			return nil, err
		}
		data.Events = events

	default:
		return nil, fmt.Errorf("unknown view %q", state.View)
	}

	return data, nil
}

// clientNameIndex maps client ids to names for display joins
func clientNameIndex(db *gorm.DB) (map[uint]string, error) {
	var clients []models.Client
	if err := db.Find(&clients).Error; err != nil {
		return nil, err
	}
	index := make(map[uint]string, len(clients))
	for _, client := range clients {
		index[client.ID] = client.Name
	}
	return index, nil
}

func resolveClientName(index map[uint]string, id uint) string {
	if name, ok := index[id]; ok {
		return name
	}
	return MissingClientName
}

// LoadInterventionRows reads every intervention with its client and label
// names resolved for display
func LoadInterventionRows(db *gorm.DB) ([]InterventionRow, error) {
	var interventions []models.Intervention
	if err := db.Order("date").Find(&interventions).Error; err != nil {
		return nil, err
	}
	clientNames, err := clientNameIndex(db)
	if err != nil {
		return nil, err
	}
	var labels []models.Label
	if err := db.Find(&labels).Error; err != nil {
		return nil, err
	}
	labelNames := make(map[uint]string, len(labels))
	for _, label := range labels {
		labelNames[label.ID] = label.Name
	}

	rows := make([]InterventionRow, 0, len(interventions))
	for _, intervention := range interventions {
		row := InterventionRow{
			Intervention: intervention,
			ClientName:   resolveClientName(clientNames, intervention.ClientID),
		}
		if intervention.LabelID != nil {
			row.LabelName = labelNames[*intervention.LabelID]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadPlannedRows reads every planned intervention with its client name
// resolved
func LoadPlannedRows(db *gorm.DB) ([]PlannedRow, error) {
	var planned []models.PlannedIntervention
	if err := db.Order("date").Find(&planned).Error; err != nil {
		return nil, err
	}
	clientNames, err := clientNameIndex(db)
	if err != nil {
		return nil, err
	}

	rows := make([]PlannedRow, 0, len(planned))
	for _, plan := range planned {
		rows = append(rows, PlannedRow{
			PlannedIntervention: plan,
			ClientName:          resolveClientName(clientNames, plan.ClientID),
		})
	}
	return rows, nil
}

// LoadSystemRows reads every system with its client name resolved
func LoadSystemRows(db *gorm.DB) ([]SystemRow, error) {
	var systems []models.System
	if err := db.Find(&systems).Error; err != nil {
		return nil, err
	}
	clientNames, err := clientNameIndex(db)
	if err != nil {
		return nil, err
	}

	rows := make([]SystemRow, 0, len(systems))
	for _, system := range systems {
		rows = append(rows, SystemRow{
			System:     system,
			ClientName: resolveClientName(clientNames, system.ClientID),
		})
	}
	return rows, nil
}

// LoadWorkOrderRows reads every work order with its system type resolved
func LoadWorkOrderRows(db *gorm.DB) ([]WorkOrderRow, error) {
	var workOrders []models.WorkOrder
	if err := db.Find(&workOrders).Error; err != nil {
		return nil, err
	}
	var systems []models.System
	if err := db.Find(&systems).Error; err != nil {
		return nil, err
	}
	systemTypes := make(map[uint]string, len(systems))
	for _, system := range systems {
		systemTypes[system.ID] = system.Type
	}

	rows := make([]WorkOrderRow, 0, len(workOrders))
	for _, workOrder := range workOrders {
		systemType, ok := systemTypes[workOrder.SystemID]
		if !ok {
			systemType = MissingSystemName
		}
		rows = append(rows, WorkOrderRow{
			WorkOrder:  workOrder,
			SystemType: systemType,
		})
	}
	return rows, nil
}

// LoadMaintenanceRows reads every recurring maintenance with both parent
// names resolved
func LoadMaintenanceRows(db *gorm.DB) ([]MaintenanceRow, error) {
	var maintenances []models.RecurringMaintenance
	if err := db.Find(&maintenances).Error; err != nil {
		return nil, err
	}
	clientNames, err := clientNameIndex(db)
	if err != nil {
		return nil, err
	}
	var systems []models.System
	if err := db.Find(&systems).Error; err != nil {
		return nil, err
	}
	systemTypes := make(map[uint]string, len(systems))
	for _, system := range systems {
		systemTypes[system.ID] = system.Type
	}

	rows := make([]MaintenanceRow, 0, len(maintenances))
	for _, maintenance := range maintenances {
		systemType, ok := systemTypes[maintenance.SystemID]
		if !ok {
			systemType = MissingSystemName
		}
		rows = append(rows, MaintenanceRow{
			RecurringMaintenance: maintenance,
			ClientName:           resolveClientName(clientNames, maintenance.ClientID),
			SystemType:           systemType,
		})
	}
	return rows, nil
}

// LoadCalendarEvents shapes planned interventions for the calendar widget
func LoadCalendarEvents(db *gorm.DB) ([]CalendarEvent, error) {
	rows, err := LoadPlannedRows(db)
	if err != nil {
		return nil, err
	}

	events := make([]CalendarEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, CalendarEvent{
			ID:         row.ID,
			Title:      row.Type,
			Start:      row.Date,
			AllDay:     true,
			ClientID:   row.ClientID,
			ClientName: row.ClientName,
			Notes:      row.Notes,
		})
	}
	return events, nil
}
