package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/venaeki0-svg/vena/config"
	"github.com/venaeki0-svg/vena/models"
)

// ClientPortalHandler serves the token-addressed client portal: the client's
// projects with progress, payment state and contracts. No session, the
// access id is the credential.
func ClientPortalHandler(c *gin.Context) {
	var client models.Client
	if err := config.DB.Where("portal_access_id = ?", c.Param("accessId")).First(&client).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Portal not found"})
		return
	}

	var projects []models.Project
	config.DB.Where("client_id = ?", client.ID).Order("date DESC").Find(&projects)

	var contracts []models.Contract
	config.DB.Where("client_id = ?", client.ID).Find(&contracts)

	var transactions []models.Transaction
	projectIDs := make([]uint, 0, len(projects))
	for _, p := range projects {
		projectIDs = append(projectIDs, p.ID)
	}
	if len(projectIDs) > 0 {
		config.DB.Where("project_id IN ?", projectIDs).Order("date DESC").Find(&transactions)
	}

	var profile models.Profile
	config.DB.First(&profile)

	c.JSON(http.StatusOK, gin.H{
		"client":              client,
		"projects":            projects,
		"contracts":           contracts,
		"transactions":        transactions,
		"projectStatusConfig": profile.ProjectStatusConfig,
	})
}

// ClientConfirmStageHandler lets the client sign off a delivery stage of
// their own project.
func ClientConfirmStageHandler(c *gin.Context) {
	var client models.Client
	if err := config.DB.Where("portal_access_id = ?", c.Param("accessId")).First(&client).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Portal not found"})
		return
	}

	var project models.Project
	if err := config.DB.Where("id = ? AND client_id = ?", c.Param("projectId"), client.ID).First(&project).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var input struct {
		Stage string `json:"stage" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch input.Stage {
	case "editing":
		project.IsEditingConfirmedByClient = true
	case "printing":
		project.IsPrintingConfirmedByClient = true
	case "delivery":
		project.IsDeliveryConfirmedByClient = true
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "stage must be editing, printing or delivery"})
		return
	}

	if err := config.DB.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm stage"})
		return
	}

	NotifyEvent("Konfirmasi Klien", client.Name+" mengkonfirmasi tahap "+input.Stage+" proyek "+project.ProjectName, "projects", &project.ID)
	c.JSON(http.StatusOK, project)
}

// ClientConfirmSubStatusHandler records the client's sign-off (and optional
// note) on one workflow sub-step.
func ClientConfirmSubStatusHandler(c *gin.Context) {
	var client models.Client
	if err := config.DB.Where("portal_access_id = ?", c.Param("accessId")).First(&client).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Portal not found"})
		return
	}

	var project models.Project
	if err := config.DB.Where("id = ? AND client_id = ?", c.Param("projectId"), client.ID).First(&project).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var input struct {
		SubStatus string `json:"subStatus" binding:"required"`
		Note      string `json:"note"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	confirmed := false
	for _, s := range project.ConfirmedSubStatuses {
		if s == input.SubStatus {
			confirmed = true
			break
		}
	}
	if !confirmed {
		project.ConfirmedSubStatuses = append(project.ConfirmedSubStatuses, input.SubStatus)
	}
	if input.Note != "" {
		if project.ClientSubStatusNotes == nil {
			project.ClientSubStatusNotes = models.StringMap{}
		}
		project.ClientSubStatusNotes[input.SubStatus] = input.Note
	}

	if err := config.DB.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to confirm sub-status"})
		return
	}
	c.JSON(http.StatusOK, project)
}

// FreelancerPortalHandler serves the token-addressed freelancer portal:
// assignments, payslips, reward ledger and balance, plus the SOP library.
func FreelancerPortalHandler(c *gin.Context) {
	var member models.TeamMember
	if err := config.DB.Where("portal_access_id = ?", c.Param("accessId")).First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Portal not found"})
		return
	}

	var payments []models.TeamProjectPayment
	config.DB.Where("team_member_id = ?", member.ID).Order("date DESC").Find(&payments)

	projectIDs := make([]uint, 0, len(payments))
	for _, p := range payments {
		projectIDs = append(projectIDs, p.ProjectID)
	}
	var projects []models.Project
	if len(projectIDs) > 0 {
		config.DB.Where("id IN ?", projectIDs).Find(&projects)
	}

	var records []models.TeamPaymentRecord
	config.DB.Where("team_member_id = ?", member.ID).Order("date DESC").Find(&records)

	var rewardEntries []models.RewardLedgerEntry
	config.DB.Where("team_member_id = ?", member.ID).Order("date DESC").Find(&rewardEntries)

	var sops []models.SOP
	config.DB.Order("title").Find(&sops)

	c.JSON(http.StatusOK, gin.H{
		"member":         member,
		"teamPayments":   payments,
		"projects":       projects,
		"paymentRecords": records,
		"rewardLedger":   rewardEntries,
		"sops":           sops,
	})
}

// FreelancerUpdateRevisionHandler lets a freelancer progress a revision that
// is assigned to them.
func FreelancerUpdateRevisionHandler(c *gin.Context) {
	var member models.TeamMember
	if err := config.DB.Where("portal_access_id = ?", c.Param("accessId")).First(&member).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Portal not found"})
		return
	}

	var project models.Project
	if err := config.DB.First(&project, c.Param("projectId")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}

	var input struct {
		Status          models.RevisionStatus `json:"status" binding:"required"`
		FreelancerNotes string                `json:"freelancerNotes"`
		DriveLink       string                `json:"driveLink"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	revisionID := c.Param("revisionId")
	found := false
	for i := range project.Revisions {
		rev := &project.Revisions[i]
		if rev.ID != revisionID {
			continue
		}
		if rev.FreelancerID != member.ID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Revision is not assigned to you"})
			return
		}
		rev.Status = input.Status
		rev.FreelancerNotes = input.FreelancerNotes
		rev.DriveLink = input.DriveLink
		if input.Status == models.RevisionCompleted {
			now := time.Now()
			rev.CompletedDate = &now
		}
		found = true
		break
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Revision not found"})
		return
	}

	if err := config.DB.Save(&project).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update revision"})
		return
	}

	NotifyEvent("Update Revisi", member.Name+" memperbarui revisi proyek "+project.ProjectName, "projects", &project.ID)
	c.JSON(http.StatusOK, project)
}
