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

// CreateSystemRequest represents the request body for registering an
// installation at a client's site
type CreateSystemRequest struct {
	ClientID uint   `json:"client_id"`
	Type     string `json:"type"`
	Contract string `json:"contract"`
}

// CreateRecurringMaintenanceRequest represents the request body for a
// periodic maintenance obligation
type CreateRecurringMaintenanceRequest struct {
	ClientID  uint   `json:"client_id"`
	SystemID  uint   `json:"system_id"`
	Type      string `json:"type"`
	Frequency string `json:"frequency"`
}

// CreateSystem handles POST /api/v1/systems
func CreateSystem(c *gin.Context) {
	var req CreateSystemRequest
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

	system := models.System{
		ClientID: req.ClientID,
		Type:     req.Type,
		Contract: req.Contract,
	}

	if err := services.ValidateSystem(&system); err != nil {
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
	if err := db.Create(&system).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create system",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    system,
	})
}

// ListSystems handles GET /api/v1/systems. Client names are resolved for
// display; a system whose client was deleted renders a placeholder
// instead of failing.
func ListSystems(c *gin.Context) {
	db := config.GetDB()
	rows, err := services.LoadSystemRows(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load systems",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    rows,
	})
}

// GetSystemDetail handles GET /api/v1/systems/:id - the system with its
// work orders and recurring maintenances
func GetSystemDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	db := config.GetDB()
	var system models.System
	if !firstOr404(c, &system, id, "System") {
		return
	}

	// The referenced client may be gone; render a placeholder, not an error
	clientName := services.MissingClientName
	var client models.Client
	if err := db.First(&client, system.ClientID).Error; err == nil {
		clientName = client.Name
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load client",
			},
		})
		return
	}

	var workOrders []models.WorkOrder
	if err := db.Where("system_id = ?", id).Find(&workOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load work orders",
			},
		})
		return
	}

	var maintenances []models.RecurringMaintenance
	if err := db.Where("system_id = ?", id).Find(&maintenances).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load recurring maintenances",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"system":       system,
			"client_name":  clientName,
			"work_orders":  workOrders,
			"maintenances": maintenances,
		},
	})
}

// DeleteSystem handles DELETE /api/v1/systems/:id - removes the system
// and every work order and recurring maintenance that belongs to it, all
// in one transaction
func DeleteSystem(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	db := config.GetDB()
	if err := services.DeleteSystemCascade(db, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "NOT_FOUND",
					"message": "System not found",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to delete system",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "System and related work orders deleted",
	})
}

// CreateRecurringMaintenance handles POST /api/v1/recurring-maintenances
func CreateRecurringMaintenance(c *gin.Context) {
	var req CreateRecurringMaintenanceRequest
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

	if req.ClientID == 0 || req.SystemID == 0 || req.Type == "" || req.Frequency == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Cliente, impianto, tipo e frequenza sono obbligatori",
			},
		})
		return
	}

	maintenance := models.RecurringMaintenance{
		ClientID:  req.ClientID,
		SystemID:  req.SystemID,
		Type:      req.Type,
		Frequency: req.Frequency,
	}

	db := config.GetDB()
	if err := db.Create(&maintenance).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create recurring maintenance",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    maintenance,
	})
}

// ListRecurringMaintenances handles GET /api/v1/recurring-maintenances
func ListRecurringMaintenances(c *gin.Context) {
	db := config.GetDB()
	rows, err := services.LoadMaintenanceRows(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load recurring maintenances",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    rows,
	})
}
