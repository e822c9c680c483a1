package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venaeki0-svg/vena/config"
	"github.com/venaeki0-svg/vena/models"
)

func ListAssetsHandler(c *gin.Context) {
	var assets []models.Asset
	query := config.DB.Order("name")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if c.Query("all") == "true" {
		if err := query.Find(&assets).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch assets"})
			return
		}
		if assets == nil {
			assets = make([]models.Asset, 0)
		}
		c.JSON(http.StatusOK, assets)
		return
	}

	var totalRows int64
	query.Model(&models.Asset{}).Count(&totalRows)

	if err := query.Scopes(Paginate(c)).Find(&assets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch assets"})
		return
	}
	if assets == nil {
		assets = make([]models.Asset, 0)
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, assets, totalRows))
}

func CreateAssetHandler(c *gin.Context) {
	var asset models.Asset
	if err := c.ShouldBindJSON(&asset); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := config.DB.Create(&asset).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create asset"})
		return
	}
	c.JSON(http.StatusCreated, asset)
}

func UpdateAssetHandler(c *gin.Context) {
	var asset models.Asset
	if err := config.DB.First(&asset, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		return
	}

	var input models.Asset
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.ID = asset.ID
	input.CreatedAt = asset.CreatedAt
	if err := config.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update asset"})
		return
	}
	c.JSON(http.StatusOK, input)
}

func DeleteAssetHandler(c *gin.Context) {
	if result := config.DB.Delete(&models.Asset{}, c.Param("id")); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete asset"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Asset deleted successfully"})
	}
}
