package models

import (
	"time"

	"gorm.io/gorm"
)

// TransactionType marks the direction of a money movement.
type TransactionType string

const (
	TransactionIncome  TransactionType = "Pemasukan"
	TransactionExpense TransactionType = "Pengeluaran"
)

// PocketEffect says whether a transaction adds to or takes from the pocket it
// references. Set at creation time; legacy rows may leave it empty, in which
// case the ledger falls back to the historical description prefixes.
type PocketEffect string

const (
	PocketCredit PocketEffect = "credit"
	PocketDebit  PocketEffect = "debit"
)

// Well-known transaction categories. The category list itself is free-form
// and editable on the vendor profile; these are the ones the ledger engine
// gives special meaning to.
const (
	CategoryProjectDownPayment = "DP Proyek"
	CategoryProjectSettlement  = "Pelunasan Proyek"
	CategoryFreelancerFee      = "Gaji Freelancer"
	CategoryFreelancerReward   = "Hadiah Freelancer"
	CategoryRewardWithdrawal   = "Penarikan Hadiah Freelancer"
	CategoryInternalTransfer   = "Transfer Internal"
)

// Transaction is one immutable financial fact. Amounts are whole rupiah.
// Every derived balance in the system is a fold over these rows.
type Transaction struct {
	gorm.Model
	Date        time.Time       `json:"date" gorm:"index;not null"`
	Description string          `json:"description" gorm:"not null"`
	Amount      int64           `json:"amount" gorm:"not null"`
	Type        TransactionType `json:"type" gorm:"index;not null"`
	Category    string          `json:"category" gorm:"index"`
	Method      string          `json:"method"`

	ProjectID *uint `json:"projectId" gorm:"index"`
	CardID    *uint `json:"cardId" gorm:"index"`
	PocketID  *uint `json:"pocketId" gorm:"index"`

	// Explicit relationship fields replacing the free-text matching the old
	// dashboard relied on. Optional so historical rows keep deriving.
	PocketEffect         PocketEffect `json:"pocketEffect"`
	TeamMemberID         *uint        `json:"teamMemberId" gorm:"index"`
	TeamProjectPaymentID *uint        `json:"teamProjectPaymentId" gorm:"index"`
}
