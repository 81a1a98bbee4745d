package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/polotecnico/gestionale-api/config"
	"github.com/polotecnico/gestionale-api/models"
	"github.com/polotecnico/gestionale-api/services"
	"gorm.io/gorm"
)

// CreatePlannedInterventionRequest represents the request body for
// scheduling a future visit
type CreatePlannedInterventionRequest struct {
	ClientID uint   `json:"client_id"`
	Date     string `json:"date"`
	Type     string `json:"type"`
	Notes    string `json:"notes"`
}

// CompletePlannedInterventionRequest carries the fields a completed visit
// has that a plan does not
type CompletePlannedInterventionRequest struct {
	Duration   float64 `json:"duration"`
	Cost       float64 `json:"cost"`
	LabelID    *uint   `json:"label_id"`
	Technician string  `json:"technician"`
}

// CreatePlannedIntervention handles POST /api/v1/planned-interventions
func CreatePlannedIntervention(c *gin.Context) {
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
				"message": "Failed to create planned intervention",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    planned,
	})
}

// ListPlannedInterventions handles GET /api/v1/planned-interventions
func ListPlannedInterventions(c *gin.Context) {
	db := config.GetDB()
	rows, err := services.LoadPlannedRows(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load planned interventions",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    rows,
	})
}

// CompletePlannedIntervention handles POST /api/v1/planned-interventions/:id/complete
// The plan becomes a validated Intervention (the caller supplies the
// duration and cost a plan does not carry) and the plan row is removed,
// both inside one transaction.
func CompletePlannedIntervention(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req CompletePlannedInterventionRequest
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

	db := config.GetDB()
	var planned models.PlannedIntervention
	if err := db.First(&planned, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "Planned intervention not found",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load planned intervention",
			},
		})
		return
	}

	intervention := models.Intervention{
		ClientID:   planned.ClientID,
		Type:       planned.Type,
		Date:       planned.Date,
		Duration:   req.Duration,
		Cost:       req.Cost,
		LabelID:    req.LabelID,
		Technician: req.Technician,
		Notes:      planned.Notes,
	}

	if err := services.ValidateIntervention(&intervention); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": err.Error(),
			},
		})
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&intervention).Error; err != nil {
			return err
		}
		return tx.Delete(&models.PlannedIntervention{}, planned.ID).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to complete planned intervention",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    intervention,
	})
}

// DeletePlannedIntervention handles DELETE /api/v1/planned-interventions/:id
func DeletePlannedIntervention(c *gin.Context) {
	deleteByID(c, &models.PlannedIntervention{}, "Planned intervention")
}
