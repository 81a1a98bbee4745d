package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/polotecnico/gestionale-api/config"
	"github.com/polotecnico/gestionale-api/models"
	"github.com/polotecnico/gestionale-api/services"
)

// CreateWorkOrderRequest represents the request body for opening a work
// order against a system
type CreateWorkOrderRequest struct {
	SystemID    uint   `json:"system_id"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// UpdateWorkOrderStatusRequest represents the request body for the
// change-status action
type UpdateWorkOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateWorkOrder handles POST /api/v1/work-orders
func CreateWorkOrder(c *gin.Context) {
	var req CreateWorkOrderRequest
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

	if req.Status == "" {
		req.Status = models.WorkOrderStatusPlanned
	}

	workOrder := models.WorkOrder{
		SystemID:    req.SystemID,
		Description: req.Description,
		Status:      req.Status,
	}

	if err := services.ValidateWorkOrder(&workOrder); err != nil {
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
	if err := db.Create(&workOrder).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to create work order",
			},
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    workOrder,
	})
}

// ListWorkOrders handles GET /api/v1/work-orders
func ListWorkOrders(c *gin.Context) {
	db := config.GetDB()
	rows, err := services.LoadWorkOrderRows(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load work orders",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    rows,
	})
}

// UpdateWorkOrderStatus handles PUT /api/v1/work-orders/:id/status - the
// only in-place mutation in the system besides the theme preference
func UpdateWorkOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateWorkOrderStatusRequest
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

	if !models.ValidWorkOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_STATUS",
				"message": "Lo stato della commessa non è valido",
			},
		})
		return
	}

	var workOrder models.WorkOrder
	if !firstOr404(c, &workOrder, id, "Work order") {
		return
	}

	db := config.GetDB()
	if err := db.Model(&workOrder).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to update work order status",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    workOrder,
	})
}

// DeleteWorkOrder handles DELETE /api/v1/work-orders/:id
func DeleteWorkOrder(c *gin.Context) {
	deleteByID(c, &models.WorkOrder{}, "Work order")
}
