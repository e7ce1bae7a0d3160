package controllers

import (
	"errors"
	"net/http"

	"resort-backend/config"
	"resort-backend/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetHotelSettings handles GET /api/settings/hotel — the property identity
// the public site renders in its header and contact blocks.
func GetHotelSettings(c *gin.Context) {
	var hotel models.HotelSetting
	if err := config.DB.First(&hotel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, gin.H{"hotel": models.HotelSetting{}})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"hotel": hotel})
}
