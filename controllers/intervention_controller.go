package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/polotecnico/gestionale-api/config"
	"github.com/polotecnico/gestionale-api/models"
	"github.com/polotecnico/gestionale-api/services"
	"gorm.io/gorm"
)

// CreateInterventionRequest represents the request body for recording a
// completed service visit
type CreateInterventionRequest struct {
	ClientID   uint    `json:"client_id"`
	Type       string  `json:"type"`
	Date       string  `json:"date"`
	Duration   float64 `json:"duration"`
	Cost       float64 `json:"cost"`
	LabelID    *uint   `json:"label_id"`
	Technician string  `json:"technician"`
	Notes      string  `json:"notes"`
}

// CreateIntervention handles POST /api/v1/interventions
func CreateIntervention(c *gin.Context) {
	var req CreateInterventionRequest
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

	intervention := models.Intervention{
		ClientID:   req.ClientID,
		Type:       req.Type,
		Date:       req.Date,
		Duration:   req.Duration,
		Cost:       req.Cost,
		LabelID:    req.LabelID,
		Technician: req.Technician,
		Notes:      req.Notes,
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

	db := config.GetDB()
	if err := db.Create(&intervention).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create intervention",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    intervention,
	})
}

// ListInterventions handles GET /api/v1/interventions - the filtered,
// paginated list view. Filter criteria and the page cursor arrive as
// query parameters; changing a filter does not touch the caller's cursor.
func ListInterventions(c *gin.Context) {
	var filter services.InterventionFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid filter parameters",
				"details": err.Error(),
			},
		})
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	db := config.GetDB()
	rows, err := services.LoadInterventionRows(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load interventions",
			},
		})
		return
	}

	filtered := services.FilterInterventions(rows, filter)
	paged := services.Paginate(filtered, page, services.DefaultPageSize)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    paged,
		"meta": gin.H{
			"total":       len(filtered),
			"page":        page,
			"page_size":   services.DefaultPageSize,
			"total_pages": services.TotalPages(len(filtered), services.DefaultPageSize),
		},
	})
}

// DeleteIntervention handles DELETE /api/v1/interventions/:id
func DeleteIntervention(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	db := config.GetDB()
	result := db.Delete(&models.Intervention{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete intervention",
			},
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "Intervention not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Intervention deleted",
	})
}

// deleteByID is the shared single-row delete used by the simple record
// kinds (materials, labels, planned interventions, work orders)
func deleteByID(c *gin.Context, model interface{}, kind string) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	db := config.GetDB()
	result := db.Delete(model, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete " + kind,
			},
		})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": kind + " not found",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": kind + " deleted",
	})
}

// firstOr404 loads a record by id, writing the standard error responses.
// Returns false when the record is absent or the load failed.
func firstOr404(c *gin.Context, dest interface{}, id uint, kind string) bool {
	db := config.GetDB()
	if err := db.First(dest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": kind + " not found",
				},
			})
			return false
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load " + kind,
			},
		})
		return false
	}
	return true
}
