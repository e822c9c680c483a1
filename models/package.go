package models

import (
	"database/sql/driver"
	"encoding/json"

	"gorm.io/gorm"
)

// PhysicalItem is one printed deliverable inside a package.
type PhysicalItem struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type PhysicalItems []PhysicalItem

func (p PhysicalItems) Value() (driver.Value, error) { return json.Marshal(p) }
func (p *PhysicalItems) Scan(value interface{}) error {
	return jsonbScan(value, p)
}

// ServicePackage is a sellable bundle (crew, deliverables, price).
type ServicePackage struct {
	gorm.Model
	Name           string        `json:"name" gorm:"not null"`
	Price          int64         `json:"price" gorm:"not null"`
	Photographers  string        `json:"photographers"`
	Videographers  string        `json:"videographers"`
	PhysicalItems  PhysicalItems `json:"physicalItems" gorm:"type:jsonb"`
	DigitalItems   StringList    `json:"digitalItems" gorm:"type:jsonb"`
	ProcessingTime string        `json:"processingTime"`

	DefaultPrintingCost  int64 `json:"defaultPrintingCost"`
	DefaultTransportCost int64 `json:"defaultTransportCost"`
}

func (ServicePackage) TableName() string { return "packages" }

// AddOn is an optional extra sold on top of a package.
type AddOn struct {
	gorm.Model
	Name  string `json:"name" gorm:"not null"`
	Price int64  `json:"price" gorm:"not null"`
}
