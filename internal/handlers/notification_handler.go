package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venaeki0-svg/vena/config"
	"github.com/venaeki0-svg/vena/models"
)

// ListNotificationsHandler fetches notifications newest first.
func ListNotificationsHandler(c *gin.Context) {
	var notifications []models.Notification
	query := config.DB.Order("created_at DESC").Limit(100)

	if c.Query("unread") == "true" {
		query = query.Where("is_read = ?", false)
	}

	if err := query.Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch notifications"})
		return
	}
	if notifications == nil {
		notifications = make([]models.Notification, 0)
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkNotificationReadHandler marks one notification as read.
func MarkNotificationReadHandler(c *gin.Context) {
	result := config.DB.Model(&models.Notification{}).
		Where("id = ?", c.Param("id")).
		Update("is_read", true)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
}

// MarkAllNotificationsReadHandler clears the unread badge.
func MarkAllNotificationsReadHandler(c *gin.Context) {
	if err := config.DB.Model(&models.Notification{}).
		Where("is_read = ?", false).
		Update("is_read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
}
