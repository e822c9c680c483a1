package models

import (
	"time"

	"gorm.io/gorm"
)

type PocketType string

const (
	PocketSaving     PocketType = "Nabung & Bayar"
	PocketLocked     PocketType = "Terkunci"
	PocketExpense    PocketType = "Anggaran Pengeluaran"
	PocketRewardPool PocketType = "Tabungan Hadiah Freelancer"
)

// FinancialPocket is a named sub-allocation of funds. Amount is derived:
// ordinary pockets fold their own transactions, the reward pool is the sum
// of every freelancer's reward balance.
type FinancialPocket struct {
	gorm.Model
	Name         string     `json:"name" gorm:"not null"`
	Description  string     `json:"description"`
	Icon         string     `json:"icon"`
	Type         PocketType `json:"type" gorm:"not null"`
	Amount       int64      `json:"amount"`
	GoalAmount   int64      `json:"goalAmount"`
	LockEndDate  *time.Time `json:"lockEndDate"`
	SourceCardID *uint      `json:"sourceCardId"`
}
