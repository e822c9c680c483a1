package models

import (
	"time"

	"gorm.io/gorm"
)

type SatisfactionLevel string

const (
	VerySatisfied SatisfactionLevel = "Sangat Puas"
	Satisfied     SatisfactionLevel = "Puas"
	Neutral       SatisfactionLevel = "Biasa Saja"
	Unsatisfied   SatisfactionLevel = "Tidak Puas"
)

// ClientFeedback is a satisfaction report submitted through the public form
// or the client portal.
type ClientFeedback struct {
	gorm.Model
	ClientName   string            `json:"clientName" gorm:"not null"`
	Satisfaction SatisfactionLevel `json:"satisfaction"`
	Rating       int               `json:"rating"`
	Feedback     string            `json:"feedback"`
	Date         time.Time         `json:"date"`
}
