package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/venaeki0-svg/vena/config"
	"github.com/venaeki0-svg/vena/models"
)

// ListTransactionsHandler fetches transactions newest first, filterable by
// project, card, pocket, type and category.
func ListTransactionsHandler(c *gin.Context) {
	var txns []models.Transaction
	query := config.DB.Order("date DESC, id DESC")

	if projectID := c.Query("projectId"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}
	if cardID := c.Query("cardId"); cardID != "" {
		query = query.Where("card_id = ?", cardID)
	}
	if pocketID := c.Query("pocketId"); pocketID != "" {
		query = query.Where("pocket_id = ?", pocketID)
	}
	if txType := c.Query("type"); txType != "" {
		query = query.Where("type = ?", txType)
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	if c.Query("all") == "true" {
		if err := query.Find(&txns).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch transactions"})
			return
		}
		if txns == nil {
			txns = make([]models.Transaction, 0)
		}
		c.JSON(http.StatusOK, txns)
		return
	}

	var totalRows int64
	query.Model(&models.Transaction{}).Count(&totalRows)

	if err := query.Scopes(Paginate(c)).Find(&txns).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch transactions"})
		return
	}
	if txns == nil {
		txns = make([]models.Transaction, 0)
	}
	c.JSON(http.StatusOK, CreatePaginatedResponse(c, txns, totalRows))
}

func validateTransaction(t *models.Transaction) string {
	if t.Amount <= 0 {
		return "amount must be positive"
	}
	if t.Type != models.TransactionIncome && t.Type != models.TransactionExpense {
		return "type must be Pemasukan or Pengeluaran"
	}
	if t.Description == "" {
		return "description is required"
	}
	if t.PocketEffect != "" && t.PocketEffect != models.PocketCredit && t.PocketEffect != models.PocketDebit {
		return "pocketEffect must be credit or debit"
	}
	return ""
}

// CreateTransactionHandler appends one row to the log and re-derives every
// balance in the same database transaction.
func CreateTransactionHandler(c *gin.Context) {
	var txn models.Transaction
	if err := c.ShouldBindJSON(&txn); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := validateTransaction(&txn); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if txn.Date.IsZero() {
		txn.Date = time.Now()
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if txn.ProjectID != nil {
			if err := tx.First(&models.Project{}, *txn.ProjectID).Error; err != nil {
				return err
			}
		}
		if txn.CardID != nil {
			if err := tx.First(&models.Card{}, *txn.CardID).Error; err != nil {
				return err
			}
		}
		if err := tx.Create(&txn).Error; err != nil {
			return err
		}
		return recomputeDerivedState(tx)
	})

	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Referenced project or card does not exist"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction: " + err.Error()})
		return
	}
	InvalidateDashboardCache()
	if txn.Type == models.TransactionIncome && txn.ProjectID != nil {
		NotifyEvent("Pembayaran Diterima", txn.Description, "projects", txn.ProjectID)
	}
	c.JSON(http.StatusCreated, txn)
}

// UpdateTransactionHandler rewrites one log row and re-derives balances.
func UpdateTransactionHandler(c *gin.Context) {
	var txn models.Transaction
	if err := config.DB.First(&txn, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}

	var input models.Transaction
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := validateTransaction(&input); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	txn.Description = input.Description
	txn.Amount = input.Amount
	txn.Type = input.Type
	txn.Category = input.Category
	txn.Method = input.Method
	txn.ProjectID = input.ProjectID
	txn.CardID = input.CardID
	txn.PocketID = input.PocketID
	txn.PocketEffect = input.PocketEffect
	txn.TeamMemberID = input.TeamMemberID
	txn.TeamProjectPaymentID = input.TeamProjectPaymentID
	if !input.Date.IsZero() {
		txn.Date = input.Date
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&txn).Error; err != nil {
			return err
		}
		return recomputeDerivedState(tx)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction: " + err.Error()})
		return
	}
	InvalidateDashboardCache()
	c.JSON(http.StatusOK, txn)
}

// DeleteTransactionHandler removes one log row and re-derives balances.
func DeleteTransactionHandler(c *gin.Context) {
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var txn models.Transaction
		if err := tx.First(&txn, c.Param("id")).Error; err != nil {
			return err
		}
		if err := tx.Delete(&txn).Error; err != nil {
			return err
		}
		return recomputeDerivedState(tx)
	})

	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}
	InvalidateDashboardCache()
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}
