package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/polotecnico/gestionale-api/config"
	"github.com/polotecnico/gestionale-api/models"
	"gorm.io/gorm"
)

// Valid theme values; the preference survives across sessions
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// UpdateThemeRequest represents the request body for the theme toggle
type UpdateThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// GetTheme handles GET /api/v1/settings/theme. Defaults to light when no
// preference has been stored yet.
func GetTheme(c *gin.Context) {
	db := config.GetDB()

	var setting models.Setting
	err := db.Where("key = ?", models.SettingKeyTheme).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"data":    gin.H{"theme": ThemeLight},
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to load theme preference",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"theme": setting.Value},
	})
}

// UpdateTheme handles PUT /api/v1/settings/theme
func UpdateTheme(c *gin.Context) {
	var req UpdateThemeRequest
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

	if req.Theme != ThemeLight && req.Theme != ThemeDark {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_THEME",
				"message": "Theme must be 'light' or 'dark'",
			},
		})
		return
	}

	db := config.GetDB()

	var setting models.Setting
	err := db.Where("key = ?", models.SettingKeyTheme).First(&setting).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		setting = models.Setting{Key: models.SettingKeyTheme, Value: req.Theme}
		err = db.Create(&setting).Error
	case err == nil:
		err = db.Model(&setting).Update("value", req.Theme).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "DATABASE_ERROR",
				"message": "Failed to save theme preference",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"theme": req.Theme},
	})
}
