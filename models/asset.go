package models

import (
	"time"

	"gorm.io/gorm"
)

type AssetStatus string

const (
	AssetAvailable   AssetStatus = "Tersedia"
	AssetInUse       AssetStatus = "Digunakan"
	AssetMaintenance AssetStatus = "Perbaikan"
)

// Asset is a piece of studio equipment.
type Asset struct {
	gorm.Model
	Name          string      `json:"name" gorm:"not null"`
	Category      string      `json:"category"`
	PurchaseDate  time.Time   `json:"purchaseDate"`
	PurchasePrice int64       `json:"purchasePrice"`
	SerialNumber  string      `json:"serialNumber"`
	Status        AssetStatus `json:"status" gorm:"default:'Tersedia'"`
	Notes         string      `json:"notes"`
}
