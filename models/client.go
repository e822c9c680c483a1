package models

import (
	"time"

	"gorm.io/gorm"
)

type ClientStatus string

const (
	ClientActive   ClientStatus = "Aktif"
	ClientInactive ClientStatus = "Tidak Aktif"
	ClientLost     ClientStatus = "Hilang"
)

type ClientType string

const (
	ClientDirect ClientType = "Langsung"
	ClientVendor ClientType = "Vendor"
)

// Client is a customer of the studio. PortalAccessID is the opaque token the
// self-service portal is addressed by; it is generated once at creation.
type Client struct {
	gorm.Model
	Name           string       `json:"name" gorm:"not null"`
	Email          string       `json:"email"`
	Phone          string       `json:"phone"`
	Instagram      string       `json:"instagram"`
	Since          time.Time    `json:"since"`
	Status         ClientStatus `json:"status" gorm:"default:'Aktif'"`
	ClientType     ClientType   `json:"clientType" gorm:"default:'Langsung'"`
	LastContact    *time.Time   `json:"lastContact"`
	PortalAccessID string       `json:"portalAccessId" gorm:"uniqueIndex;not null"`

	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:ClientID"`
}
