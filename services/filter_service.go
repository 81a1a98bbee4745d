package services

import (
	"strings"

	"github.com/polotecnico/gestionale-api/models"
	"github.com/polotecnico/gestionale-api/utils"
)

// DefaultPageSize is the fixed page size of the intervention list
const DefaultPageSize = 10

// InterventionFilter holds the list-view filter criteria. All fields are
// optional; an empty filter matches everything.
type InterventionFilter struct {
	Search    string `form:"search" json:"search"`
	Type      string `form:"type" json:"type"`
	DateStart string `form:"date_start" json:"date_start"`
	DateEnd   string `form:"date_end" json:"date_end"`
}

// Empty reports whether no criterion is set
func (f InterventionFilter) Empty() bool {
	return f.Search == "" && f.Type == "" && f.DateStart == "" && f.DateEnd == ""
}

// InterventionRow is an intervention joined with the display names the
// list view shows
type InterventionRow struct {
	models.Intervention
	ClientName string `json:"client_name"`
	LabelName  string `json:"label_name,omitempty"`
}

// FilterInterventions applies the list-view filter: case-insensitive
// substring match of the free-text term against client name OR type,
// exact type match, and inclusive date range. Pure; the input slice is
// not modified.
func FilterInterventions(rows []InterventionRow, filter InterventionFilter) []InterventionRow {
	if filter.Empty() {
		return rows
	}

	search := strings.ToLower(filter.Search)
	matched := make([]InterventionRow, 0, len(rows))
	for _, row := range rows {
		if search != "" &&
			!strings.Contains(strings.ToLower(row.ClientName), search) &&
			!strings.Contains(strings.ToLower(row.Type), search) {
			continue
		}
		if filter.Type != "" && row.Type != filter.Type {
			continue
		}
		if !utils.InDateRange(row.Date, filter.DateStart, filter.DateEnd) {
			continue
		}
		matched = append(matched, row)
	}
	return matched
}

// Paginate slices items to page (1-based) of the given size. A page past
// the end yields an empty slice, not an error.
func Paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages returns the number of pages the paginator renders
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return (total + pageSize - 1) / pageSize
}
