package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venaeki0-svg/vena/config"
	"github.com/venaeki0-svg/vena/models"
)

// ListLeadsHandler fetches leads, newest first, paginated unless all=true.
func ListLeadsHandler(c *gin.Context) {
	var leads []models.Lead
	query := config.DB.Order("date DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if c.Query("all") == "true" {
		if err := query.Find(&leads).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch leads"})
			return
		}
		if leads == nil {
			leads = make([]models.Lead, 0)
		}
		c.JSON(http.StatusOK, leads)
		return
	}

	var totalRows int64
	query.Model(&models.Lead{}).Count(&totalRows)

	if err := query.Scopes(Paginate(c)).Find(&leads).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch leads"})
		return
	}
	if leads == nil {
		leads = make([]models.Lead, 0)
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, leads, totalRows))
}

// CreateLeadHandler registers a new prospect.
func CreateLeadHandler(c *gin.Context) {
	var lead models.Lead
	if err := c.ShouldBindJSON(&lead); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if lead.Date.IsZero() {
		lead.Date = time.Now()
	}
	if err := config.DB.Create(&lead).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create lead"})
		return
	}

	NotifyEvent("Prospek Baru", lead.Name+" masuk melalui "+string(lead.ContactChannel), "leads", &lead.ID)
	c.JSON(http.StatusCreated, lead)
}

// UpdateLeadHandler updates lead fields and status.
func UpdateLeadHandler(c *gin.Context) {
	var lead models.Lead
	if err := config.DB.First(&lead, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}

	var input models.Lead
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lead.Name = input.Name
	lead.ContactChannel = input.ContactChannel
	lead.Location = input.Location
	lead.Status = input.Status
	lead.Notes = input.Notes
	if !input.Date.IsZero() {
		lead.Date = input.Date
	}

	if err := config.DB.Save(&lead).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update lead"})
		return
	}
	c.JSON(http.StatusOK, lead)
}

// DeleteLeadHandler removes a lead.
func DeleteLeadHandler(c *gin.Context) {
	if result := config.DB.Delete(&models.Lead{}, c.Param("id")); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete lead"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Lead deleted successfully"})
	}
}

// ConvertLeadHandler turns a lead into a client, optionally creating a first
// project with a down payment transaction and an applied promo code, all in
// one database transaction. The lead is marked converted, not deleted.
func ConvertLeadHandler(c *gin.Context) {
	var input struct {
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Project *struct {
			ProjectName string    `json:"projectName" binding:"required"`
			ProjectType string    `json:"projectType"`
			Date        time.Time `json:"date"`
			Location    string    `json:"location"`
			TotalCost   int64     `json:"totalCost"`
			PackageID   *uint     `json:"packageId"`
			PromoCode   string    `json:"promoCode"`
			DPAmount    int64     `json:"dpAmount"`
			DPCardID    *uint     `json:"dpCardId"`
		} `json:"project"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var client models.Client
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var lead models.Lead
		if err := tx.First(&lead, c.Param("id")).Error; err != nil {
			return err
		}

		client = models.Client{
			Name:           lead.Name,
			Email:          input.Email,
			Phone:          input.Phone,
			Since:          time.Now(),
			Status:         models.ClientActive,
			ClientType:     models.ClientDirect,
			PortalAccessID: uuid.NewString(),
		}
		if err := tx.Create(&client).Error; err != nil {
			return err
		}

		if input.Project != nil {
			totalCost := input.Project.TotalCost

			if input.Project.PromoCode != "" {
				var promo models.PromoCode
				code := strings.ToUpper(strings.TrimSpace(input.Project.PromoCode))
				if err := tx.Where("code = ?", code).First(&promo).Error; err != nil {
					return fmt.Errorf("promo code not found")
				}
				if reason := promoUsableReason(&promo); reason != "" {
					return fmt.Errorf("%s", reason)
				}
				ok, err := evaluatePromoCondition(promo.Condition, map[string]interface{}{
					"total":       totalCost,
					"projectType": input.Project.ProjectType,
				})
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("booking does not meet the promo conditions")
				}
				totalCost -= promoDiscount(&promo, totalCost)
				promo.UsageCount++
				if err := tx.Save(&promo).Error; err != nil {
					return err
				}
			}

			project := models.Project{
				ProjectName:   input.Project.ProjectName,
				ClientID:      client.ID,
				ProjectType:   input.Project.ProjectType,
				Date:          input.Project.Date,
				Location:      input.Project.Location,
				TotalCost:     totalCost,
				PackageID:     input.Project.PackageID,
				PaymentStatus: models.PaymentUnpaid,
			}
			if project.Date.IsZero() {
				project.Date = time.Now()
			}
			if err := tx.Create(&project).Error; err != nil {
				return err
			}

			if input.Project.DPAmount > 0 {
				dp := models.Transaction{
					Date:        time.Now(),
					Description: models.CategoryProjectDownPayment + " " + project.ProjectName,
					Amount:      input.Project.DPAmount,
					Type:        models.TransactionIncome,
					Category:    models.CategoryProjectDownPayment,
					ProjectID:   &project.ID,
					CardID:      input.Project.DPCardID,
				}
				if err := tx.Create(&dp).Error; err != nil {
					return err
				}
				if err := recomputeDerivedState(tx); err != nil {
					return err
				}
			}
		}

		lead.Status = models.LeadConverted
		return tx.Save(&lead).Error
	})

	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Lead not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert lead: " + err.Error()})
		return
	}

	NotifyEvent("Lead Dikonversi", client.Name+" menjadi klien baru", "clients", &client.ID)
	c.JSON(http.StatusCreated, client)
}
