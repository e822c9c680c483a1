package models

import "gorm.io/gorm"

type UserRole string

const (
	RoleAdmin  UserRole = "Admin"
	RoleMember UserRole = "Member"
)

// User is a dashboard login. Admins can do everything; members carry an
// explicit list of views they may access.
type User struct {
	gorm.Model
	Email    string   `json:"email" gorm:"uniqueIndex;not null"`
	Password string   `json:"-" gorm:"not null"`
	FullName string   `json:"fullName"`
	Role     UserRole `json:"role" gorm:"default:'Member'"`

	Permissions StringList `json:"permissions" gorm:"type:jsonb"`
}
