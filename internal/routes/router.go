package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/venaeki0-svg/vena/internal/middleware"
)

// SetupRoutes registers every route of the application.
func SetupRoutes(r *gin.Engine) {
	// Public routes: login, the token-addressed portals and the feedback form.
	RegisterAuthRoutes(r)
	RegisterPortalRoutes(r)

	// Everything else requires a valid session token.
	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterAPIRoutes(authRequired)
	}
}
