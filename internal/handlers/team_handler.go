package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/venaeki0-svg/vena/config"
	"github.com/venaeki0-svg/vena/models"
)

// ListTeamMembersHandler fetches the freelancer roster.
func ListTeamMembersHandler(c *gin.Context) {
	var members []models.TeamMember
	query := config.DB.Order("name")

	if c.Query("all") == "true" {
		if err := query.Find(&members).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch team members"})
			return
		}
		if members == nil {
			members = make([]models.TeamMember, 0)
		}
		c.JSON(http.StatusOK, members)
		return
	}

	var totalRows int64
	query.Model(&models.TeamMember{}).Count(&totalRows)

	if err := query.Scopes(Paginate(c)).Find(&members).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch team members"})
		return
	}
	if members == nil {
		members = make([]models.TeamMember, 0)
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, members, totalRows))
}

// CreateTeamMemberHandler adds a freelancer and mints their portal token.
func CreateTeamMemberHandler(c *gin.Context) {
	var member models.TeamMember
	if err := c.ShouldBindJSON(&member); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member.RewardBalance = 0
	member.PortalAccessID = uuid.NewString()

	if err := config.DB.Create(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team member: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, member)
}

// GetTeamMemberHandler fetches one freelancer with their assignments and
// reward ledger.
func GetTeamMemberHandler(c *gin.Context) {
	var member models.TeamMember
	if err := config.DB.First(&member, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		return
	}

	var payments []models.TeamProjectPayment
	config.DB.Where("team_member_id = ?", member.ID).Order("date DESC").Find(&payments)

	var rewardEntries []models.RewardLedgerEntry
	config.DB.Where("team_member_id = ?", member.ID).Order("date DESC").Find(&rewardEntries)

	c.JSON(http.StatusOK, gin.H{
		"member":       member,
		"teamPayments": payments,
		"rewardLedger": rewardEntries,
	})
}

// UpdateTeamMemberHandler updates roster fields. The reward balance and
// portal token are not editable.
func UpdateTeamMemberHandler(c *gin.Context) {
	var member models.TeamMember
	if err := config.DB.First(&member, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		return
	}

	var input models.TeamMember
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member.Name = input.Name
	member.Role = input.Role
	member.Email = input.Email
	member.Phone = input.Phone
	member.StandardFee = input.StandardFee
	member.BankAccount = input.BankAccount
	member.Rating = input.Rating
	member.PerformanceNotes = input.PerformanceNotes

	if err := config.DB.Save(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update team member"})
		return
	}
	c.JSON(http.StatusOK, member)
}

// AddPerformanceNoteHandler appends one performance note to a freelancer.
func AddPerformanceNoteHandler(c *gin.Context) {
	var member models.TeamMember
	if err := config.DB.First(&member, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
		return
	}

	var input struct {
		Type models.PerformanceNoteType `json:"type" binding:"required"`
		Note string                     `json:"note" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member.PerformanceNotes = append(member.PerformanceNotes, models.PerformanceNote{
		ID:   uuid.NewString(),
		Date: time.Now(),
		Type: input.Type,
		Note: input.Note,
	})

	if err := config.DB.Save(&member).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add note"})
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeleteTeamMemberHandler removes a freelancer who has no unpaid assignments.
func DeleteTeamMemberHandler(c *gin.Context) {
	id := c.Param("id")

	var cnt int64
	config.DB.Model(&models.TeamProjectPayment{}).
		Where("team_member_id = ? AND status = ?", id, models.TeamPayUnpaid).
		Count(&cnt)
	if cnt > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Team member has unpaid assignments"})
		return
	}

	if result := config.DB.Delete(&models.TeamMember{}, id); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete team member"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Team member not found"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Team member deleted successfully"})
	}
}
