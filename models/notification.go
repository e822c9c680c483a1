package models

import "gorm.io/gorm"

// Notification is an in-app event shown on the dashboard bell and pushed to
// connected websocket clients.
type Notification struct {
	gorm.Model
	Title   string `json:"title" gorm:"not null"`
	Message string `json:"message"`
	IsRead  bool   `json:"isRead"`
	Icon    string `json:"icon"`
	// LinkView/LinkID let the UI jump to the related record.
	LinkView string `json:"linkView"`
	LinkID   *uint  `json:"linkId"`
}
