package models

import (
	"time"

	"gorm.io/gorm"
)

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// PromoCode is a booking discount. Condition optionally holds a boolean
// expression over the booking (e.g. "total >= 10000000") evaluated when the
// code is validated; an empty condition always passes.
type PromoCode struct {
	gorm.Model
	Code          string       `json:"code" gorm:"uniqueIndex;not null"`
	DiscountType  DiscountType `json:"discountType" gorm:"not null"`
	DiscountValue int64        `json:"discountValue" gorm:"not null"`
	IsActive      bool         `json:"isActive" gorm:"default:true"`
	UsageCount    int          `json:"usageCount"`
	MaxUsage      *int         `json:"maxUsage"`
	ExpiryDate    *time.Time   `json:"expiryDate"`
	Condition     string       `json:"condition"`
}
