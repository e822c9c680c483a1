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

// ListTeamPaymentsHandler fetches assignments, filterable by member, project
// and status.
func ListTeamPaymentsHandler(c *gin.Context) {
	var payments []models.TeamProjectPayment
	query := config.DB.Order("date DESC")

	if memberID := c.Query("teamMemberId"); memberID != "" {
		query = query.Where("team_member_id = ?", memberID)
	}
	if projectID := c.Query("projectId"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch team payments"})
		return
	}
	if payments == nil {
		payments = make([]models.TeamProjectPayment, 0)
	}
	c.JSON(http.StatusOK, payments)
}

// ListPaymentRecordsHandler fetches issued payslips, newest first.
func ListPaymentRecordsHandler(c *gin.Context) {
	var records []models.TeamPaymentRecord
	query := config.DB.Order("date DESC")

	if memberID := c.Query("teamMemberId"); memberID != "" {
		query = query.Where("team_member_id = ?", memberID)
	}

	if err := query.Find(&records).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch payment records"})
		return
	}
	if records == nil {
		records = make([]models.TeamPaymentRecord, 0)
	}
	c.JSON(http.StatusOK, records)
}

// PayTeamMemberHandler settles a batch of one freelancer's unpaid assignments
// in a single transfer: one fee transaction per assignment, one reward credit
// per assignment that carries a reward, one payslip, then a full re-derive.
func PayTeamMemberHandler(c *gin.Context) {
	var input struct {
		TeamMemberID      uint   `json:"teamMemberId" binding:"required"`
		ProjectPaymentIDs []uint `json:"projectPaymentIds" binding:"required"`
		CardID            uint   `json:"cardId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(input.ProjectPaymentIDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "projectPaymentIds must not be empty"})
		return
	}

	var record models.TeamPaymentRecord
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var member models.TeamMember
		if err := tx.First(&member, input.TeamMemberID).Error; err != nil {
			return fmt.Errorf("team member not found")
		}
		if err := tx.First(&models.Card{}, input.CardID).Error; err != nil {
			return fmt.Errorf("card not found")
		}

		var payments []models.TeamProjectPayment
		if err := tx.Where("id IN ? AND team_member_id = ?", input.ProjectPaymentIDs, member.ID).
			Find(&payments).Error; err != nil {
			return err
		}
		if len(payments) != len(input.ProjectPaymentIDs) {
			return fmt.Errorf("one or more assignments not found for this member")
		}

		var rewardPocket *models.FinancialPocket
		var pool models.FinancialPocket
		if err := tx.Where("type = ?", models.PocketRewardPool).First(&pool).Error; err == nil {
			rewardPocket = &pool
		}

		now := time.Now()
		var total int64
		for i := range payments {
			pay := &payments[i]
			if pay.Status == models.TeamPayPaid {
				return fmt.Errorf("assignment %d is already paid", pay.ID)
			}

			var project models.Project
			if err := tx.First(&project, pay.ProjectID).Error; err != nil {
				return err
			}

			feeTxn := models.Transaction{
				Date:                 now,
				Description:          fmt.Sprintf("%s %s - Proyek %s", models.CategoryFreelancerFee, member.Name, project.ProjectName),
				Amount:               pay.Fee,
				Type:                 models.TransactionExpense,
				Category:             models.CategoryFreelancerFee,
				CardID:               &input.CardID,
				ProjectID:            &pay.ProjectID,
				TeamMemberID:         &member.ID,
				TeamProjectPaymentID: &pay.ID,
			}
			if err := tx.Create(&feeTxn).Error; err != nil {
				return err
			}
			total += pay.Fee

			if pay.Reward > 0 {
				rewardTxn := models.Transaction{
					Date:         now,
					Description:  fmt.Sprintf("Hadiah untuk %s (Proyek: %s)", member.Name, project.ProjectName),
					Amount:       pay.Reward,
					Type:         models.TransactionExpense,
					Category:     models.CategoryFreelancerReward,
					CardID:       &input.CardID,
					ProjectID:    &pay.ProjectID,
					TeamMemberID: &member.ID,
					PocketEffect: models.PocketCredit,
				}
				if rewardPocket != nil {
					rewardTxn.PocketID = &rewardPocket.ID
				}
				if err := tx.Create(&rewardTxn).Error; err != nil {
					return err
				}
			}
		}

		record = models.TeamPaymentRecord{
			RecordNumber:      fmt.Sprintf("PAY-FR-%d-%s", member.ID, strings.ToUpper(uuid.NewString()[:8])),
			TeamMemberID:      member.ID,
			Date:              now,
			ProjectPaymentIDs: models.UintList(input.ProjectPaymentIDs),
			TotalAmount:       total,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		return recomputeDerivedState(tx)
	})

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	InvalidateDashboardCache()
	c.JSON(http.StatusCreated, record)
}

// WithdrawRewardHandler pays out part of a freelancer's reward balance. The
// balance can never go below zero.
func WithdrawRewardHandler(c *gin.Context) {
	var input struct {
		TeamMemberID uint  `json:"teamMemberId" binding:"required"`
		Amount       int64 `json:"amount" binding:"required"`
		CardID       uint  `json:"cardId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
		return
	}

	var txn models.Transaction
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var member models.TeamMember
		if err := tx.First(&member, input.TeamMemberID).Error; err != nil {
			return fmt.Errorf("team member not found")
		}
		if member.RewardBalance < input.Amount {
			return fmt.Errorf("insufficient reward balance")
		}

		var rewardPocket *models.FinancialPocket
		var pool models.FinancialPocket
		if err := tx.Where("type = ?", models.PocketRewardPool).First(&pool).Error; err == nil {
			rewardPocket = &pool
		}

		txn = models.Transaction{
			Date:         time.Now(),
			Description:  "Penarikan saldo hadiah oleh " + member.Name,
			Amount:       input.Amount,
			Type:         models.TransactionExpense,
			Category:     models.CategoryRewardWithdrawal,
			CardID:       &input.CardID,
			TeamMemberID: &member.ID,
			PocketEffect: models.PocketDebit,
		}
		if rewardPocket != nil {
			txn.PocketID = &rewardPocket.ID
		}
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}

		return recomputeDerivedState(tx)
	})

	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	InvalidateDashboardCache()
	c.JSON(http.StatusCreated, txn)
}
