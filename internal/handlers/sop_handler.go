package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venaeki0-svg/vena/config"
	"github.com/venaeki0-svg/vena/models"
)

func ListSOPsHandler(c *gin.Context) {
	var sops []models.SOP
	query := config.DB.Order("title")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	if err := query.Find(&sops).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch SOPs"})
		return
	}
	if sops == nil {
		sops = make([]models.SOP, 0)
	}
	c.JSON(http.StatusOK, sops)
}

func CreateSOPHandler(c *gin.Context) {
	var sop models.SOP
	if err := c.ShouldBindJSON(&sop); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := config.DB.Create(&sop).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create SOP"})
		return
	}
	c.JSON(http.StatusCreated, sop)
}

func UpdateSOPHandler(c *gin.Context) {
	var sop models.SOP
	if err := config.DB.First(&sop, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "SOP not found"})
		return
	}

	var input models.SOP
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sop.Title = input.Title
	sop.Category = input.Category
	sop.Content = input.Content
	if err := config.DB.Save(&sop).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update SOP"})
		return
	}
	c.JSON(http.StatusOK, sop)
}

func DeleteSOPHandler(c *gin.Context) {
	if result := config.DB.Delete(&models.SOP{}, c.Param("id")); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete SOP"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "SOP not found"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "SOP deleted successfully"})
	}
}
