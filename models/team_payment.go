package models

import (
	"time"

	"gorm.io/gorm"
)

type TeamPayStatus string

const (
	TeamPayUnpaid TeamPayStatus = "Unpaid"
	TeamPayPaid   TeamPayStatus = "Paid"
)

// TeamProjectPayment is one (project, freelancer) assignment's agreed fee and
// reward. Status flips to Paid when a matching fee transaction exists.
type TeamProjectPayment struct {
	gorm.Model
	ProjectID    uint          `json:"projectId" gorm:"index;not null"`
	TeamMemberID uint          `json:"teamMemberId" gorm:"index;not null"`
	Date         time.Time     `json:"date"`
	Status       TeamPayStatus `json:"status" gorm:"default:'Unpaid'"`
	Fee          int64         `json:"fee"`
	Reward       int64         `json:"reward"`
}

// TeamPaymentRecord is the payslip written when one or more assignments are
// paid out in a single transfer.
type TeamPaymentRecord struct {
	gorm.Model
	RecordNumber      string    `json:"recordNumber" gorm:"uniqueIndex;not null"`
	TeamMemberID      uint      `json:"teamMemberId" gorm:"index;not null"`
	Date              time.Time `json:"date"`
	ProjectPaymentIDs UintList  `json:"projectPaymentIds" gorm:"type:jsonb"`
	TotalAmount       int64     `json:"totalAmount"`
}
