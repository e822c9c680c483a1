package models

import "gorm.io/gorm"

// SOP is a standard operating procedure document shared with freelancers.
type SOP struct {
	gorm.Model
	Title    string `json:"title" gorm:"not null"`
	Category string `json:"category"`
	Content  string `json:"content" gorm:"type:text"`
}
