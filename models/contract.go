package models

import (
	"time"

	"gorm.io/gorm"
)

// Contract is a signed work agreement for one project. The rendered text is
// produced on demand from the profile's contract template; only the agreed
// terms are stored here.
type Contract struct {
	gorm.Model
	ContractNumber  string    `json:"contractNumber" gorm:"uniqueIndex;not null"`
	ClientID        uint      `json:"clientId" gorm:"index"`
	Client          *Client   `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	ProjectID       uint      `json:"projectId" gorm:"index"`
	Project         *Project  `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	SigningDate     time.Time `json:"signingDate"`
	SigningLocation string    `json:"signingLocation"`

	ClientName1    string `json:"clientName1"`
	ClientAddress1 string `json:"clientAddress1"`
	ClientPhone1   string `json:"clientPhone1"`
	ClientName2    string `json:"clientName2"`
	ClientAddress2 string `json:"clientAddress2"`
	ClientPhone2   string `json:"clientPhone2"`

	ShootingDuration   string     `json:"shootingDuration"`
	GuaranteedPhotos   string     `json:"guaranteedPhotos"`
	AlbumDetails       string     `json:"albumDetails"`
	DigitalFilesFormat string     `json:"digitalFilesFormat"`
	OtherItems         string     `json:"otherItems"`
	PersonnelCount     string     `json:"personnelCount"`
	DeliveryTimeframe  string     `json:"deliveryTimeframe"`
	DPDate             *time.Time `json:"dpDate"`
	FinalPaymentDate   *time.Time `json:"finalPaymentDate"`
	CancellationPolicy string     `json:"cancellationPolicy"`
	Jurisdiction       string     `json:"jurisdiction"`
}
