package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"

	"github.com/venaeki0-svg/vena/config"
	"github.com/venaeki0-svg/vena/models"
)

func ListSocialPostsHandler(c *gin.Context) {
	var posts []models.SocialMediaPost
	query := config.DB.Order("scheduled_date DESC")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if projectID := c.Query("projectId"); projectID != "" {
		query = query.Where("project_id = ?", projectID)
	}

	if err := query.Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not fetch posts"})
		return
	}
	if posts == nil {
		posts = make([]models.SocialMediaPost, 0)
	}
	c.JSON(http.StatusOK, posts)
}

func CreateSocialPostHandler(c *gin.Context) {
	var post models.SocialMediaPost
	if err := c.ShouldBindJSON(&post); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := config.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}
	c.JSON(http.StatusCreated, post)
}

func UpdateSocialPostHandler(c *gin.Context) {
	var post models.SocialMediaPost
	if err := config.DB.First(&post, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var input models.SocialMediaPost
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input.ID = post.ID
	input.CreatedAt = post.CreatedAt
	if err := config.DB.Save(&input).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		return
	}
	c.JSON(http.StatusOK, input)
}

func DeleteSocialPostHandler(c *gin.Context) {
	if result := config.DB.Delete(&models.SocialMediaPost{}, c.Param("id")); result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
	} else if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
	}
}

// SuggestCaptionHandler asks Gemini for a caption draft based on the post's
// project. Unavailable when the Gemini client is not configured.
func SuggestCaptionHandler(c *gin.Context) {
	if config.GeminiClient == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI caption suggestions are not configured"})
		return
	}

	var input struct {
		ProjectID *uint  `json:"projectId"`
		Platform  string `json:"platform"`
		PostType  string `json:"postType"`
		Notes     string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var projectContext string
	if input.ProjectID != nil {
		var project models.Project
		if err := config.DB.Preload("Client").First(&project, *input.ProjectID).Error; err == nil {
			clientName := ""
			if project.Client != nil {
				clientName = project.Client.Name
			}
			projectContext = fmt.Sprintf("Proyek: %s (%s) untuk klien %s di %s.",
				project.ProjectName, project.ProjectType, clientName, project.Location)
		}
	}

	prompt := fmt.Sprintf(
		"Kamu adalah admin media sosial sebuah vendor fotografi pernikahan bernama Vena Pictures. "+
			"Buat satu caption %s untuk %s dalam bahasa Indonesia yang hangat dan profesional, "+
			"maksimal 3 kalimat plus hashtag yang relevan. %s %s",
		input.PostType, input.Platform, projectContext, input.Notes)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := config.GeminiClient.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Caption generation failed: " + err.Error()})
		return
	}

	var caption string
	if len(resp.Candidates) > 0 && len(resp.Candidates[0].Content.Parts) > 0 {
		if textPart, ok := resp.Candidates[0].Content.Parts[0].(genai.Text); ok {
			caption = string(textPart)
		}
	}
	if caption == "" {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Caption generation returned no text"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"caption": caption})
}
