package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/venaeki0-svg/vena/config"
	"github.com/venaeki0-svg/vena/models"
)

func ListFeedbackHandler(c *gin.Context) {
	var feedback []models.ClientFeedback
	if err := config.DB.Order("date DESC").Find(&feedback).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch feedback"})
		return
	}
	if feedback == nil {
		feedback = make([]models.ClientFeedback, 0)
	}
	c.JSON(http.StatusOK, feedback)
}

// SubmitFeedbackHandler accepts a satisfaction report. Exposed without auth
// so the public form and the client portal can both post to it.
func SubmitFeedbackHandler(c *gin.Context) {
	var feedback models.ClientFeedback
	if err := c.ShouldBindJSON(&feedback); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if feedback.ClientName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "clientName is required"})
		return
	}
	if feedback.Rating < 1 || feedback.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}
	if feedback.Date.IsZero() {
		feedback.Date = time.Now()
	}

	if err := config.DB.Create(&feedback).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit feedback"})
		return
	}

	NotifyEvent("Masukan Baru", feedback.ClientName+" mengirim masukan", "feedback", &feedback.ID)
	c.JSON(http.StatusCreated, feedback)
}

func DeleteFeedbackHandler(c *gin.Context) {
	if result := config.DB.Delete(&models.ClientFeedback{}, c.Param("id")); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete feedback"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Feedback not found"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Feedback deleted successfully"})
	}
}
