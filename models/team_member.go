package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

type PerformanceNoteType string

const (
	NotePraise       PerformanceNoteType = "Pujian"
	NoteLateDeadline PerformanceNoteType = "Terlambat Deadline"
	NoteGeneral      PerformanceNoteType = "Catatan Umum"
)

type PerformanceNote struct {
	ID   string              `json:"id"`
	Date time.Time           `json:"date"`
	Type PerformanceNoteType `json:"type"`
	Note string              `json:"note"`
}

type PerformanceNotes []PerformanceNote

func (n PerformanceNotes) Value() (driver.Value, error) { return json.Marshal(n) }
func (n *PerformanceNotes) Scan(value interface{}) error {
	return jsonbScan(value, n)
}

// TeamMember is a freelancer on the studio roster. RewardBalance is derived
// from the reward ledger and written back by the ledger engine.
type TeamMember struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null"`
	Role        string `json:"role"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	StandardFee int64  `json:"standardFee"`
	BankAccount string `json:"noRek"`
	Rating      int    `json:"rating"`

	RewardBalance int64 `json:"rewardBalance"`

	PerformanceNotes PerformanceNotes `json:"performanceNotes" gorm:"type:jsonb"`
	PortalAccessID   string           `json:"portalAccessId" gorm:"uniqueIndex;not null"`
}
