package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venaeki0-svg/vena/config"
	"github.com/venaeki0-svg/vena/models"
)

// GetProfileHandler returns the single company profile row.
func GetProfileHandler(c *gin.Context) {
	var profile models.Profile
	if err := config.DB.First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not configured"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler replaces the company profile, category lists, workflow
// configuration and templates.
func UpdateProfileHandler(c *gin.Context) {
	var profile models.Profile
	if err := config.DB.First(&profile).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not configured"})
		return
	}

	var input models.Profile
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.ID = profile.ID
	input.CreatedAt = profile.CreatedAt
	if err := config.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, input)
}
