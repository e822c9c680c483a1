package models

import (
	"time"

	"gorm.io/gorm"
)

type LeadStatus string

const (
	LeadDiscussion LeadStatus = "Sedang Diskusi"
	LeadFollowUp   LeadStatus = "Menunggu Follow Up"
	LeadConverted  LeadStatus = "Dikonversi"
	LeadRejected   LeadStatus = "Ditolak"
)

type ContactChannel string

const (
	ChannelWhatsApp   ContactChannel = "WhatsApp"
	ChannelInstagram  ContactChannel = "Instagram"
	ChannelWebsite    ContactChannel = "Website"
	ChannelReferral   ContactChannel = "Referensi"
	ChannelSuggestion ContactChannel = "Saran Klien"
	ChannelOther      ContactChannel = "Lainnya"
)

// Lead is a prospect that has not been converted to a client yet.
type Lead struct {
	gorm.Model
	Name           string         `json:"name" gorm:"not null"`
	ContactChannel ContactChannel `json:"contactChannel"`
	Location       string         `json:"location"`
	Status         LeadStatus     `json:"status" gorm:"default:'Sedang Diskusi'"`
	Date           time.Time      `json:"date"`
	Notes          string         `json:"notes"`
}
