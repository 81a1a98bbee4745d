package services

import (
	"sort"

	"github.com/polotecnico/gestionale-api/models"
	"github.com/polotecnico/gestionale-api/utils"
)

// MonthlyStat is one month's intervention count and revenue for the
// dashboard charts
type MonthlyStat struct {
	Month string  `json:"month"` // YYYY-MM
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

// MonthlyAggregation groups interventions by calendar month, ascending.
// Counts and sums stay parallel so the frontend can feed them straight
// into its chart series.
func MonthlyAggregation(interventions []models.Intervention) []MonthlyStat {
	counts := make(map[string]int)
	totals := make(map[string]float64)
	for _, intervention := range interventions {
		month := utils.MonthKey(intervention.Date)
		counts[month]++
		totals[month] += intervention.Cost
	}

	months := make([]string, 0, len(counts))
	for month := range counts {
		months = append(months, month)
	}
	sort.Strings(months)

	stats := make([]MonthlyStat, 0, len(months))
	for _, month := range months {
		stats = append(stats, MonthlyStat{
			Month: month,
			Count: counts[month],
			Total: totals[month],
		})
	}
	return stats
}

// DashboardSummary is the recap block of the dashboard view
type DashboardSummary struct {
	TotalInterventions   int     `json:"total_interventions"`
	TotalRevenue         float64 `json:"total_revenue"`
	AverageRevenue       float64 `json:"average_revenue"`
	TotalClients         int     `json:"total_clients"`
	PlannedInterventions int     `json:"planned_interventions"`
}

// BuildDashboardSummary computes the dashboard recap. The average is zero
// when there are no interventions, not NaN.
func BuildDashboardSummary(interventions []models.Intervention, clientCount, plannedCount int) DashboardSummary {
	summary := DashboardSummary{
		TotalInterventions:   len(interventions),
		TotalClients:         clientCount,
		PlannedInterventions: plannedCount,
	}
	for _, intervention := range interventions {
		summary.TotalRevenue += intervention.Cost
	}
	if summary.TotalInterventions > 0 {
		summary.AverageRevenue = summary.TotalRevenue / float64(summary.TotalInterventions)
	}
	return summary
}

// FinancialReport is the financial-report view payload: the totals plus
// the per-intervention revenue series the chart plots
type FinancialReport struct {
	TotalInterventions int       `json:"total_interventions"`
	TotalRevenue       float64   `json:"total_revenue"`
	Dates              []string  `json:"dates"`
	Costs              []float64 `json:"costs"`
}

// BuildFinancialReport aggregates all interventions into the financial
// report, series ordered by date then insertion
func BuildFinancialReport(interventions []models.Intervention) FinancialReport {
	sorted := make([]models.Intervention, len(interventions))
	copy(sorted, interventions)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, errA := utils.ParseISODate(sorted[i].Date)
		b, errB := utils.ParseISODate(sorted[j].Date)
		if errA != nil || errB != nil {
			return sorted[i].Date < sorted[j].Date
		}
		return a.Before(b)
	})

	report := FinancialReport{
		TotalInterventions: len(sorted),
		Dates:              make([]string, 0, len(sorted)),
		Costs:              make([]float64, 0, len(sorted)),
	}
	for _, intervention := range sorted {
		report.TotalRevenue += intervention.Cost
		report.Dates = append(report.Dates, intervention.Date)
		report.Costs = append(report.Costs, intervention.Cost)
	}
	return report
}
