package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/polotecnico/gestionale-api/config"
	"github.com/polotecnico/gestionale-api/models"
	"github.com/polotecnico/gestionale-api/services"
)

// GetDashboard handles GET /api/v1/reports/dashboard - the recap block
// plus the monthly chart series
func GetDashboard(c *gin.Context) {
	db := config.GetDB()

	var interventions []models.Intervention
	if err := db.Find(&interventions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load interventions",
			},
		})
		return
	}

	var clientCount, plannedCount int64
	if err := db.Model(&models.Client{}).Count(&clientCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to count clients",
			},
		})
		return
	}
	if err := db.Model(&models.PlannedIntervention{}).Count(&plannedCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to count planned interventions",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"summary": services.BuildDashboardSummary(interventions, int(clientCount), int(plannedCount)),
			"monthly": services.MonthlyAggregation(interventions),
		},
	})
}

// GetMonthlyReport handles GET /api/v1/reports/monthly - parallel counts
// and revenue sums per month, ascending
func GetMonthlyReport(c *gin.Context) {
	db := config.GetDB()

	var interventions []models.Intervention
	if err := db.Find(&interventions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load interventions",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    services.MonthlyAggregation(interventions),
	})
}

// GetFinancialReport handles GET /api/v1/reports/financial
func GetFinancialReport(c *gin.Context) {
	db := config.GetDB()

	var interventions []models.Intervention
	if err := db.Find(&interventions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load interventions",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    services.BuildFinancialReport(interventions),
	})
}
