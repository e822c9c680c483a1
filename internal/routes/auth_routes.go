package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/venaeki0-svg/vena/internal/handlers"
)

// RegisterAuthRoutes registers the public authentication routes.
func RegisterAuthRoutes(r *gin.Engine) {
	r.POST("/login", handlers.LoginHandler)
	r.GET("/logout", handlers.LogoutHandler)
}

// RegisterPortalRoutes registers the token-addressed self-service portals and
// the public feedback form. The portal access id in the URL is the only
// credential.
func RegisterPortalRoutes(r *gin.Engine) {
	portal := r.Group("/portal")
	{
		portal.GET("/client/:accessId", handlers.ClientPortalHandler)
		portal.POST("/client/:accessId/projects/:projectId/confirm-stage", handlers.ClientConfirmStageHandler)
		portal.POST("/client/:accessId/projects/:projectId/confirm-substatus", handlers.ClientConfirmSubStatusHandler)

		portal.GET("/freelancer/:accessId", handlers.FreelancerPortalHandler)
		portal.POST("/freelancer/:accessId/projects/:projectId/revisions/:revisionId", handlers.FreelancerUpdateRevisionHandler)
	}

	r.POST("/feedback", handlers.SubmitFeedbackHandler)
}
