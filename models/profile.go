package models

import (
	"database/sql/driver"
	"encoding/json"

	"gorm.io/gorm"
)

// SubStatusConfig is one sub-step under a project status.
type SubStatusConfig struct {
	Name string `json:"name"`
	Note string `json:"note"`
}

// ProjectStatusConfig is one configurable step of the project workflow.
type ProjectStatusConfig struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Color       string            `json:"color"`
	SubStatuses []SubStatusConfig `json:"subStatuses"`
	Note        string            `json:"note"`
}

type ProjectStatusConfigs []ProjectStatusConfig

func (c ProjectStatusConfigs) Value() (driver.Value, error) { return json.Marshal(c) }
func (c *ProjectStatusConfigs) Scan(value interface{}) error {
	return jsonbScan(value, c)
}

// Profile is the vendor's own company profile. A single row; it carries the
// editable category lists, the project workflow configuration and the
// contract template the contract renderer fills in.
type Profile struct {
	gorm.Model
	FullName         string `json:"fullName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	CompanyName      string `json:"companyName"`
	Website          string `json:"website"`
	Address          string `json:"address"`
	BankAccount      string `json:"bankAccount"`
	AuthorizedSigner string `json:"authorizedSigner"`
	IDNumber         string `json:"idNumber"`
	Bio              string `json:"bio" gorm:"type:text"`

	IncomeCategories  StringList `json:"incomeCategories" gorm:"type:jsonb"`
	ExpenseCategories StringList `json:"expenseCategories" gorm:"type:jsonb"`
	ProjectTypes      StringList `json:"projectTypes" gorm:"type:jsonb"`
	EventTypes        StringList `json:"eventTypes" gorm:"type:jsonb"`
	AssetCategories   StringList `json:"assetCategories" gorm:"type:jsonb"`
	SOPCategories     StringList `json:"sopCategories" gorm:"type:jsonb"`

	ProjectStatusConfig ProjectStatusConfigs `json:"projectStatusConfig" gorm:"type:jsonb"`

	BriefingTemplate   string `json:"briefingTemplate" gorm:"type:text"`
	TermsAndConditions string `json:"termsAndConditions" gorm:"type:text"`
	ContractTemplate   string `json:"contractTemplate" gorm:"type:text"`
}
