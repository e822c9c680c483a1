package models

import "gorm.io/gorm"

type CardType string

const (
	CardDebit   CardType = "Debit"
	CardCredit  CardType = "Kredit"
	CardPrepaid CardType = "Prabayar"
)

// Card is a bank account or cash box. Balance is derived from transactions
// referencing the card; no overdraft rule, so it may go negative.
type Card struct {
	gorm.Model
	CardHolderName string   `json:"cardHolderName"`
	BankName       string   `json:"bankName" gorm:"not null"`
	CardType       CardType `json:"cardType"`
	LastFourDigits string   `json:"lastFourDigits"`
	ExpiryDate     string   `json:"expiryDate"`
	Balance        int64    `json:"balance"`
	ColorGradient  string   `json:"colorGradient"`
}
