package models

import (
	"time"

	"gorm.io/gorm"
)

// RewardLedgerEntry is one signed credit or debit on a freelancer's reward
// balance, derived from reward transactions. Persisted so the freelancer
// portal can read the history, but always rebuilt from the transaction log.
type RewardLedgerEntry struct {
	gorm.Model
	TeamMemberID  uint      `json:"teamMemberId" gorm:"index;not null"`
	TransactionID uint      `json:"transactionId" gorm:"uniqueIndex"`
	Date          time.Time `json:"date"`
	Description   string    `json:"description"`
	// Negative for withdrawals.
	Amount int64 `json:"amount"`
}
