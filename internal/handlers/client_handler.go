package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venaeki0-svg/vena/config"
	"github.com/venaeki0-svg/vena/models"
)

// ListClientsHandler fetches clients, paginated unless all=true.
func ListClientsHandler(c *gin.Context) {
	var clients []models.Client
	query := config.DB.Order("name")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if c.Query("all") == "true" {
		if err := query.Find(&clients).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch clients"})
			return
		}
		if clients == nil {
			clients = make([]models.Client, 0)
		}
		c.JSON(http.StatusOK, clients)
		return
	}

	var totalRows int64
	query.Model(&models.Client{}).Count(&totalRows)

	if err := query.Scopes(Paginate(c)).Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch clients"})
		return
	}
	if clients == nil {
		clients = make([]models.Client, 0)
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, clients, totalRows))
}

// CreateClientHandler creates a client and mints its portal access token.
func CreateClientHandler(c *gin.Context) {
	var client models.Client
	if err := c.ShouldBindJSON(&client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client.PortalAccessID = uuid.NewString()
	if client.Since.IsZero() {
		client.Since = time.Now()
	}

	if err := config.DB.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create client: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, client)
}

// GetClientHandler fetches a single client with its projects.
func GetClientHandler(c *gin.Context) {
	var client models.Client
	if err := config.DB.Preload("Projects").First(&client, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// UpdateClientHandler updates client fields. The portal access token is not
// editable.
func UpdateClientHandler(c *gin.Context) {
	var client models.Client
	if err := config.DB.First(&client, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	var input models.Client
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client.Name = input.Name
	client.Email = input.Email
	client.Phone = input.Phone
	client.Instagram = input.Instagram
	client.Status = input.Status
	client.ClientType = input.ClientType
	client.LastContact = input.LastContact
	if !input.Since.IsZero() {
		client.Since = input.Since
	}

	if err := config.DB.Save(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update client"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClientHandler removes a client together with its projects, their
// assignments and their transactions, then re-derives all balances.
func DeleteClientHandler(c *gin.Context) {
	id := c.Param("id")

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var client models.Client
		if err := tx.First(&client, id).Error; err != nil {
			return err
		}

		var projectIDs []uint
		if err := tx.Model(&models.Project{}).Where("client_id = ?", client.ID).Pluck("id", &projectIDs).Error; err != nil {
			return err
		}

		if len(projectIDs) > 0 {
			if err := tx.Where("project_id IN ?", projectIDs).Delete(&models.Transaction{}).Error; err != nil {
				return err
			}
			if err := tx.Where("project_id IN ?", projectIDs).Delete(&models.TeamProjectPayment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", projectIDs).Delete(&models.Project{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(&client).Error; err != nil {
			return err
		}
		return recomputeDerivedState(tx)
	})

	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete client"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
