package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/venaeki0-svg/vena/config"
	"github.com/venaeki0-svg/vena/models"
)

// ListProjectsHandler fetches projects with their client, paginated unless
// all=true.
func ListProjectsHandler(c *gin.Context) {
	var projects []models.Project
	query := config.DB.Preload("Client").Order("date DESC")

	if clientID := c.Query("clientId"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if paymentStatus := c.Query("paymentStatus"); paymentStatus != "" {
		query = query.Where("payment_status = ?", paymentStatus)
	}

	if c.Query("all") == "true" {
		if err := query.Find(&projects).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch projects"})
			return
		}
		if projects == nil {
			projects = make([]models.Project, 0)
		}
		c.JSON(http.StatusOK, projects)
		return
	}

	var totalRows int64
	query.Model(&models.Project{}).Count(&totalRows)

	if err := query.Scopes(Paginate(c)).Find(&projects).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch projects"})
		return
	}
	if projects == nil {
		projects = make([]models.Project, 0)
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, projects, totalRows))
}

// CreateProjectHandler creates a project and one payment assignment per team
// member. A new project always starts unpaid; the derived fields cannot be
// set from the request.
func CreateProjectHandler(c *gin.Context) {
	var project models.Project
	if err := c.ShouldBindJSON(&project); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if project.ClientID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "clientId is required"})
		return
	}
	if project.TotalCost <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "totalCost must be positive"})
		return
	}

	project.AmountPaid = 0
	project.PaymentStatus = models.PaymentUnpaid
	if project.Date.IsZero() {
		project.Date = time.Now()
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		return syncTeamPayments(tx, &project)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, project)
}

// GetProjectHandler fetches a single project with client and assignments.
func GetProjectHandler(c *gin.Context) {
	var project models.Project
	if err := config.DB.Preload("Client").First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var payments []models.TeamProjectPayment
	config.DB.Where("project_id = ?", project.ID).Find(&payments)

	c.JSON(http.StatusOK, gin.H{
		"project":      project,
		"teamPayments": payments,
	})
}

// UpdateProjectHandler updates editable project fields, re-syncs the team
// assignments and re-derives payment state (the total cost may have changed).
func UpdateProjectHandler(c *gin.Context) {
	var project models.Project
	if err := config.DB.First(&project, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var input models.Project
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.TotalCost <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "totalCost must be positive"})
		return
	}

	project.ProjectName = input.ProjectName
	project.ProjectType = input.ProjectType
	project.PackageID = input.PackageID
	project.PackageName = input.PackageName
	project.AddOnNames = input.AddOnNames
	project.DeadlineDate = input.DeadlineDate
	project.Location = input.Location
	project.Progress = input.Progress
	project.Status = input.Status
	project.ActiveSubStatuses = input.ActiveSubStatuses
	project.TotalCost = input.TotalCost
	project.Team = input.Team
	project.Revisions = input.Revisions
	project.FinalDriveLink = input.FinalDriveLink
	project.PrintingCost = input.PrintingCost
	project.TransportCost = input.TransportCost
	if !input.Date.IsZero() {
		project.Date = input.Date
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&project).Error; err != nil {
			return err
		}
		if err := syncTeamPayments(tx, &project); err != nil {
			return err
		}
		return recomputeDerivedState(tx)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project: " + err.Error()})
		return
	}

	config.DB.First(&project, project.ID)
	c.JSON(http.StatusOK, project)
}

// DeleteProjectHandler removes a project, its assignments and transactions,
// then re-derives balances.
func DeleteProjectHandler(c *gin.Context) {
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, c.Param("id")).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&models.TeamProjectPayment{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&project).Error; err != nil {
			return err
		}
		return recomputeDerivedState(tx)
	})

	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// syncTeamPayments keeps one TeamProjectPayment per assigned team member.
// Paid assignments are never removed, the money already left.
func syncTeamPayments(tx *gorm.DB, project *models.Project) error {
	var existing []models.TeamProjectPayment
	if err := tx.Where("project_id = ?", project.ID).Find(&existing).Error; err != nil {
		return err
	}

	byMember := make(map[uint]*models.TeamProjectPayment, len(existing))
	for i := range existing {
		byMember[existing[i].TeamMemberID] = &existing[i]
	}

	assigned := make(map[uint]bool, len(project.Team))
	for _, member := range project.Team {
		assigned[member.MemberID] = true
		if pay, ok := byMember[member.MemberID]; ok {
			if pay.Status == models.TeamPayUnpaid && (pay.Fee != member.Fee || pay.Reward != member.Reward) {
				pay.Fee = member.Fee
				pay.Reward = member.Reward
				if err := tx.Save(pay).Error; err != nil {
					return err
				}
			}
			continue
		}
		pay := models.TeamProjectPayment{
			ProjectID:    project.ID,
			TeamMemberID: member.MemberID,
			Date:         project.Date,
			Status:       models.TeamPayUnpaid,
			Fee:          member.Fee,
			Reward:       member.Reward,
		}
		if err := tx.Create(&pay).Error; err != nil {
			return err
		}
	}

	for memberID, pay := range byMember {
		if !assigned[memberID] && pay.Status == models.TeamPayUnpaid {
			if err := tx.Delete(pay).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
