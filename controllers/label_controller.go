package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/polotecnico/gestionale-api/config"
	"github.com/polotecnico/gestionale-api/models"
)

// CreateLabelRequest represents the request body for creating a label
type CreateLabelRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateLabel handles POST /api/v1/labels. Labels carry no domain
// invariant beyond a name.
func CreateLabel(c *gin.Context) {
	var req CreateLabelRequest
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

	label := models.Label{Name: req.Name}

	db := config.GetDB()
	if err := db.Create(&label).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create label",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    label,
	})
}

// ListLabels handles GET /api/v1/labels
func ListLabels(c *gin.Context) {
	db := config.GetDB()
	var labels []models.Label
	if err := db.Order("name").Find(&labels).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load labels",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    labels,
	})
}

// DeleteLabel handles DELETE /api/v1/labels/:id
func DeleteLabel(c *gin.Context) {
	deleteByID(c, &models.Label{}, "Label")
}
