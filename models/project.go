package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// PaymentStatus is derived from amountPaid vs totalCost, never set by hand.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "Belum Bayar"
	PaymentPartial PaymentStatus = "DP Terbayar"
	PaymentPaid    PaymentStatus = "Lunas"
)

// AssignedTeamMember is one freelancer slot on a project, with the agreed
// fee and reward for that assignment.
type AssignedTeamMember struct {
	MemberID uint   `json:"memberId"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Fee      int64  `json:"fee"`
	Reward   int64  `json:"reward"`
	SubJob   string `json:"subJob,omitempty"`
}

type AssignedTeamMembers []AssignedTeamMember

func (a AssignedTeamMembers) Value() (driver.Value, error) { return json.Marshal(a) }
func (a *AssignedTeamMembers) Scan(value interface{}) error {
	return jsonbScan(value, a)
}

// RevisionStatus tracks a revision round assigned to a freelancer.
type RevisionStatus string

const (
	RevisionPending    RevisionStatus = "Menunggu Revisi"
	RevisionInProgress RevisionStatus = "Sedang Dikerjakan"
	RevisionCompleted  RevisionStatus = "Revisi Selesai"
)

type Revision struct {
	ID              string         `json:"id"`
	Date            time.Time      `json:"date"`
	AdminNotes      string         `json:"adminNotes"`
	Deadline        time.Time      `json:"deadline"`
	FreelancerID    uint           `json:"freelancerId"`
	Status          RevisionStatus `json:"status"`
	FreelancerNotes string         `json:"freelancerNotes,omitempty"`
	DriveLink       string         `json:"driveLink,omitempty"`
	CompletedDate   *time.Time     `json:"completedDate,omitempty"`
}

type Revisions []Revision

func (r Revisions) Value() (driver.Value, error) { return json.Marshal(r) }
func (r *Revisions) Scan(value interface{}) error {
	return jsonbScan(value, r)
}

// Project is one booked job. TotalCost is fixed at creation; AmountPaid and
// PaymentStatus are derived from the transaction log and written back by the
// ledger engine, never edited directly.
type Project struct {
	gorm.Model
	ProjectName string     `json:"projectName" gorm:"not null"`
	ClientID    uint       `json:"clientId" gorm:"index"`
	Client      *Client    `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	ProjectType string     `json:"projectType"`
	PackageID   *uint      `json:"packageId"`
	PackageName string     `json:"packageName"`
	AddOnNames  StringList `json:"addOns" gorm:"type:jsonb"`

	Date         time.Time  `json:"date"`
	DeadlineDate *time.Time `json:"deadlineDate"`
	Location     string     `json:"location"`

	Progress          int        `json:"progress"`
	Status            string     `json:"status"`
	ActiveSubStatuses StringList `json:"activeSubStatuses" gorm:"type:jsonb"`

	TotalCost     int64         `json:"totalCost" gorm:"not null"`
	AmountPaid    int64         `json:"amountPaid"`
	PaymentStatus PaymentStatus `json:"paymentStatus" gorm:"default:'Belum Bayar'"`

	Team      AssignedTeamMembers `json:"team" gorm:"type:jsonb"`
	Revisions Revisions           `json:"revisions" gorm:"type:jsonb"`

	FinalDriveLink string `json:"finalDriveLink"`
	PrintingCost   int64  `json:"printingCost"`
	TransportCost  int64  `json:"transportCost"`

	IsEditingConfirmedByClient  bool `json:"isEditingConfirmedByClient"`
	IsPrintingConfirmedByClient bool `json:"isPrintingConfirmedByClient"`
	IsDeliveryConfirmedByClient bool `json:"isDeliveryConfirmedByClient"`

	ConfirmedSubStatuses StringList `json:"confirmedSubStatuses" gorm:"type:jsonb"`
	ClientSubStatusNotes StringMap  `json:"clientSubStatusNotes" gorm:"type:jsonb"`
}
