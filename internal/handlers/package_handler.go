package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venaeki0-svg/vena/config"
	"github.com/venaeki0-svg/vena/models"
)

// ListPackagesHandler fetches all sellable packages.
func ListPackagesHandler(c *gin.Context) {
	var packages []models.ServicePackage
	if err := config.DB.Order("price").Find(&packages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch packages"})
		return
	}
	if packages == nil {
		packages = make([]models.ServicePackage, 0)
	}
	c.JSON(http.StatusOK, packages)
}

// CreatePackageHandler creates a package.
func CreatePackageHandler(c *gin.Context) {
	var pkg models.ServicePackage
	if err := c.ShouldBindJSON(&pkg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if pkg.Name == "" || pkg.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and positive price are required"})
		return
	}
	if err := config.DB.Create(&pkg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create package"})
		return
	}
	c.JSON(http.StatusCreated, pkg)
}

// UpdatePackageHandler updates a package.
func UpdatePackageHandler(c *gin.Context) {
	var pkg models.ServicePackage
	if err := config.DB.First(&pkg, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
		return
	}

	var input models.ServicePackage
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.ID = pkg.ID
	input.CreatedAt = pkg.CreatedAt
	if err := config.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update package"})
		return
	}
	c.JSON(http.StatusOK, input)
}

// DeletePackageHandler removes a package. Projects keep the package name as
// a snapshot, so deletion does not cascade.
func DeletePackageHandler(c *gin.Context) {
	if result := config.DB.Delete(&models.ServicePackage{}, c.Param("id")); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete package"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Package deleted successfully"})
	}
}

// ListAddOnsHandler fetches all add-ons.
func ListAddOnsHandler(c *gin.Context) {
	var addOns []models.AddOn
	if err := config.DB.Order("name").Find(&addOns).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch add-ons"})
		return
	}
	if addOns == nil {
		addOns = make([]models.AddOn, 0)
	}
	c.JSON(http.StatusOK, addOns)
}

// CreateAddOnHandler creates an add-on.
func CreateAddOnHandler(c *gin.Context) {
	var addOn models.AddOn
	if err := c.ShouldBindJSON(&addOn); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if addOn.Name == "" || addOn.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and positive price are required"})
		return
	}
	if err := config.DB.Create(&addOn).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create add-on"})
		return
	}
	c.JSON(http.StatusCreated, addOn)
}

// UpdateAddOnHandler updates an add-on.
func UpdateAddOnHandler(c *gin.Context) {
	var addOn models.AddOn
	if err := config.DB.First(&addOn, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Add-on not found"})
		return
	}

	var input models.AddOn
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	addOn.Name = input.Name
	addOn.Price = input.Price
	if err := config.DB.Save(&addOn).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update add-on"})
		return
	}
	c.JSON(http.StatusOK, addOn)
}

// DeleteAddOnHandler removes an add-on.
func DeleteAddOnHandler(c *gin.Context) {
	if result := config.DB.Delete(&models.AddOn{}, c.Param("id")); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete add-on"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Add-on not found"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Add-on deleted successfully"})
	}
}
