package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/polotecnico/gestionale-api/config"
	"github.com/polotecnico/gestionale-api/models"
	"github.com/polotecnico/gestionale-api/services"
)

// ListCalendarEvents handles GET /api/v1/calendar/events - planned
// interventions shaped for the calendar widget
func ListCalendarEvents(c *gin.Context) {
	db := config.GetDB()
	events, err := services.LoadCalendarEvents(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load calendar events",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    events,
	})
}

// CreateCalendarEvent handles POST /api/v1/calendar/events - the
// day-click action: a new planned intervention on the clicked date
func CreateCalendarEvent(c *gin.Context) {
	var req CreatePlannedInterventionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	planned := models.PlannedIntervention{
		ClientID: req.ClientID,
		Date:     req.Date,
		Type:     req.Type,
		Notes:    req.Notes,
	}

	if err := services.ValidatePlannedIntervention(&planned); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": err.Error(),
			},
		})
		return
	}

	db := config.GetDB()
	if err := db.Create(&planned).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create calendar event",
			},
		})
		return
	}

	event := services.CalendarEvent{
		ID:       planned.ID,
		Title:    planned.Type,
		Start:    planned.Date,
		AllDay:   true,
		ClientID: planned.ClientID,
		Notes:    planned.Notes,
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    event,
	})
}
