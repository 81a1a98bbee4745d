package services

import (
	"testing"

	"github.com/polotecnico/gestionale-api/models"
	"github.com/stretchr/testify/assert"
)

func TestMonthlyAggregation(t *testing.T) {
	interventions := []models.Intervention{
		{Date: "2024-01-05", Cost: 100},
		{Date: "2024-01-20", Cost: 50},
		{Date: "2024-02-01", Cost: 30},
	}

	stats := MonthlyAggregation(interventions)

	assert.Equal(t, []MonthlyStat{
		{Month: "2024-01", Count: 2, Total: 150},
		{Month: "2024-02", Count: 1, Total: 30},
	}, stats)
}

func TestMonthlyAggregationEmpty(t *testing.T) {
	stats := MonthlyAggregation(nil)
	assert.Empty(t, stats)
}

func TestMonthlyAggregationSortsAcrossYears(t *testing.T) {
	interventions := []models.Intervention{
		{Date: "2024-02-10", Cost: 10},
		{Date: "2023-12-01", Cost: 20},
		{Date: "2024-01-15", Cost: 30},
	}

	stats := MonthlyAggregation(interventions)

	months := make([]string, 0, len(stats))
	for _, stat := range stats {
		months = append(months, stat.Month)
	}
	assert.Equal(t, []string{"2023-12", "2024-01", "2024-02"}, months)
}

func TestBuildDashboardSummary(t *testing.T) {
	interventions := []models.Intervention{
		{Cost: 100},
		{Cost: 50},
	}

	summary := BuildDashboardSummary(interventions, 3, 2)

	assert.Equal(t, 2, summary.TotalInterventions)
	assert.Equal(t, 150.0, summary.TotalRevenue)
	assert.Equal(t, 75.0, summary.AverageRevenue)
	assert.Equal(t, 3, summary.TotalClients)
	assert.Equal(t, 2, summary.PlannedInterventions)
}

func TestBuildDashboardSummaryEmpty(t *testing.T) {
	summary := BuildDashboardSummary(nil, 0, 0)

	assert.Equal(t, 0, summary.TotalInterventions)
	assert.Equal(t, 0.0, summary.TotalRevenue)
	// No interventions means average zero, not NaN
	assert.Equal(t, 0.0, summary.AverageRevenue)
}

func TestBuildFinancialReport(t *testing.T) {
	interventions := []models.Intervention{
		{Date: "2024-02-01", Cost: 30},
		{Date: "2024-01-05", Cost: 100},
		{Date: "2024-01-20", Cost: 50},
	}

	report := BuildFinancialReport(interventions)

	assert.Equal(t, 3, report.TotalInterventions)
	assert.Equal(t, 180.0, report.TotalRevenue)
	assert.Equal(t, []string{"2024-01-05", "2024-01-20", "2024-02-01"}, report.Dates)
	assert.Equal(t, []float64{100, 50, 30}, report.Costs)
}

func TestBuildFinancialReportEmpty(t *testing.T) {
	report := BuildFinancialReport(nil)

	assert.Equal(t, 0, report.TotalInterventions)
	assert.Equal(t, 0.0, report.TotalRevenue)
	assert.Empty(t, report.Dates)
	assert.Empty(t, report.Costs)
}
