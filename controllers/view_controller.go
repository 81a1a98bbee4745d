package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/polotecnico/gestionale-api/config"
	"github.com/polotecnico/gestionale-api/services"
)

// viewLoader is the process-wide rendering coordinator; its generation
// counter makes a superseded load report itself stale instead of
// overwriting a newer view.
var viewLoader = &services.ViewLoader{}

// GetView handles GET /api/v1/views/:view - one request per screen of
// the single-page frontend, returning exactly the records that screen
// renders. Filter criteria, page cursor and theme ride along as query
// parameters and come back echoed in the state.
func GetView(c *gin.Context) {
	view, ok := services.ParseView(c.Param("view"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "UNKNOWN_VIEW",
				"message": "Unknown view: " + c.Param("view"),
			},
		})
		return
	}

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

	state := services.ViewState{
		View:   view,
		Filter: filter,
		Page:   page,
		Theme:  c.Query("theme"),
	}

	data, err := viewLoader.Load(config.GetDB(), state)
	if err != nil {
		if errors.Is(err, services.ErrStaleView) {
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "STALE_VIEW",
					"message": "View load superseded by a newer navigation",
				},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load view",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}
