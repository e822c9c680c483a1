package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/venaeki0-svg/vena/config"
	"github.com/venaeki0-svg/vena/models"
)

// ListCardsHandler fetches all cards with their derived balances.
func ListCardsHandler(c *gin.Context) {
	var cards []models.Card
	if err := config.DB.Order("bank_name").Find(&cards).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch cards"})
		return
	}
	if cards == nil {
		cards = make([]models.Card, 0)
	}
	c.JSON(http.StatusOK, cards)
}

// CreateCardHandler registers a card. An optional opening balance is booked
// as an income transaction so the derived balance stays consistent.
func CreateCardHandler(c *gin.Context) {
	var input struct {
		models.Card
		OpeningBalance int64 `json:"openingBalance"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.BankName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bankName is required"})
		return
	}

	card := input.Card
	card.Balance = 0

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&card).Error; err != nil {
			return err
		}
		if input.OpeningBalance > 0 {
			opening := models.Transaction{
				Date:        time.Now(),
				Description: "Saldo awal " + card.BankName,
				Amount:      input.OpeningBalance,
				Type:        models.TransactionIncome,
				Category:    "Saldo Awal",
				CardID:      &card.ID,
			}
			if err := tx.Create(&opening).Error; err != nil {
				return err
			}
		}
		return recomputeDerivedState(tx)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create card: " + err.Error()})
		return
	}

	config.DB.First(&card, card.ID)
	c.JSON(http.StatusCreated, card)
}

// UpdateCardHandler updates card metadata. Balance is derived, not editable.
func UpdateCardHandler(c *gin.Context) {
	var card models.Card
	if err := config.DB.First(&card, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}

	var input models.Card
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	card.CardHolderName = input.CardHolderName
	card.BankName = input.BankName
	card.CardType = input.CardType
	card.LastFourDigits = input.LastFourDigits
	card.ExpiryDate = input.ExpiryDate
	card.ColorGradient = input.ColorGradient

	if err := config.DB.Save(&card).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update card"})
		return
	}
	c.JSON(http.StatusOK, card)
}

// DeleteCardHandler removes a card that no transaction references.
func DeleteCardHandler(c *gin.Context) {
	id := c.Param("id")

	var cnt int64
	config.DB.Model(&models.Transaction{}).Where("card_id = ?", id).Count(&cnt)
	if cnt > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Card has transactions and cannot be deleted"})
		return
	}

	if result := config.DB.Delete(&models.Card{}, id); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete card"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Card deleted successfully"})
	}
}

// ListPocketsHandler fetches all pockets with derived amounts.
func ListPocketsHandler(c *gin.Context) {
	var pockets []models.FinancialPocket
	if err := config.DB.Order("name").Find(&pockets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch pockets"})
		return
	}
	if pockets == nil {
		pockets = make([]models.FinancialPocket, 0)
	}
	c.JSON(http.StatusOK, pockets)
}

// CreatePocketHandler creates a pocket. Only one reward pool pocket may
// exist, it mirrors the freelancer reward balances.
func CreatePocketHandler(c *gin.Context) {
	var pocket models.FinancialPocket
	if err := c.ShouldBindJSON(&pocket); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pocket.Amount = 0

	if pocket.Type == models.PocketRewardPool {
		var cnt int64
		config.DB.Model(&models.FinancialPocket{}).Where("type = ?", models.PocketRewardPool).Count(&cnt)
		if cnt > 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Reward pool pocket already exists"})
			return
		}
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&pocket).Error; err != nil {
			return err
		}
		return recomputeDerivedState(tx)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create pocket: " + err.Error()})
		return
	}

	config.DB.First(&pocket, pocket.ID)
	c.JSON(http.StatusCreated, pocket)
}

// UpdatePocketHandler updates pocket metadata. Amount stays derived.
func UpdatePocketHandler(c *gin.Context) {
	var pocket models.FinancialPocket
	if err := config.DB.First(&pocket, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pocket not found"})
		return
	}

	var input models.FinancialPocket
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pocket.Name = input.Name
	pocket.Description = input.Description
	pocket.Icon = input.Icon
	pocket.GoalAmount = input.GoalAmount
	pocket.LockEndDate = input.LockEndDate
	pocket.SourceCardID = input.SourceCardID

	if err := config.DB.Save(&pocket).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pocket"})
		return
	}
	c.JSON(http.StatusOK, pocket)
}

// DeletePocketHandler removes a pocket. Its transactions stay in the log with
// a dangling pocket reference; the ledger simply stops counting them.
func DeletePocketHandler(c *gin.Context) {
	if result := config.DB.Delete(&models.FinancialPocket{}, c.Param("id")); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pocket"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pocket not found"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Pocket deleted successfully"})
	}
}
