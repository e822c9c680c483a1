package models

import (
	"time"

	"gorm.io/gorm"
)

type PostStatus string

const (
	PostDraft     PostStatus = "Draf"
	PostScheduled PostStatus = "Terjadwal"
	PostPosted    PostStatus = "Diposting"
	PostCanceled  PostStatus = "Dibatalkan"
)

// SocialMediaPost is a planned publication tied to a project.
type SocialMediaPost struct {
	gorm.Model
	ProjectID     *uint      `json:"projectId" gorm:"index"`
	ClientName    string     `json:"clientName"`
	PostType      string     `json:"postType"`
	Platform      string     `json:"platform"`
	ScheduledDate time.Time  `json:"scheduledDate"`
	Caption       string     `json:"caption" gorm:"type:text"`
	MediaURL      string     `json:"mediaUrl"`
	Status        PostStatus `json:"status" gorm:"default:'Draf'"`
	Notes         string     `json:"notes"`
}
