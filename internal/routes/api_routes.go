package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/venaeki0-svg/vena/internal/handlers"
	"github.com/venaeki0-svg/vena/internal/middleware"
)

// RegisterAPIRoutes registers every authenticated API route. Route groups
// that expose a dashboard view carry the matching view permission.
func RegisterAPIRoutes(api *gin.RouterGroup) {
	apiGroup := api.Group("/api")
	{
		apiGroup.GET("/me", handlers.MeHandler)

		dashboard := apiGroup.Group("/dashboard")
		{
			dashboard.GET("/summary", handlers.DashboardSummaryHandler)
		}

		leads := apiGroup.Group("/leads", middleware.PermissionMiddleware("prospek"))
		{
			leads.GET("", handlers.ListLeadsHandler)
			leads.POST("", handlers.CreateLeadHandler)
			leads.PUT("/:id", handlers.UpdateLeadHandler)
			leads.DELETE("/:id", handlers.DeleteLeadHandler)
			leads.POST("/:id/convert", handlers.ConvertLeadHandler)
		}

		clients := apiGroup.Group("/clients", middleware.PermissionMiddleware("klien"))
		{
			clients.GET("", handlers.ListClientsHandler)
			clients.POST("", handlers.CreateClientHandler)
			clients.GET("/:id", handlers.GetClientHandler)
			clients.PUT("/:id", handlers.UpdateClientHandler)
			clients.DELETE("/:id", handlers.DeleteClientHandler)
		}

		projects := apiGroup.Group("/projects", middleware.PermissionMiddleware("proyek"))
		{
			projects.GET("", handlers.ListProjectsHandler)
			projects.POST("", handlers.CreateProjectHandler)
			projects.GET("/:id", handlers.GetProjectHandler)
			projects.PUT("/:id", handlers.UpdateProjectHandler)
			projects.DELETE("/:id", handlers.DeleteProjectHandler)
		}

		team := apiGroup.Group("/team", middleware.PermissionMiddleware("freelancer"))
		{
			team.GET("", handlers.ListTeamMembersHandler)
			team.POST("", handlers.CreateTeamMemberHandler)
			team.GET("/:id", handlers.GetTeamMemberHandler)
			team.PUT("/:id", handlers.UpdateTeamMemberHandler)
			team.DELETE("/:id", handlers.DeleteTeamMemberHandler)
			team.POST("/:id/performance-notes", handlers.AddPerformanceNoteHandler)

			team.GET("/payments", handlers.ListTeamPaymentsHandler)
			team.GET("/payment-records", handlers.ListPaymentRecordsHandler)
			team.POST("/pay", handlers.PayTeamMemberHandler)
			team.POST("/withdraw-reward", handlers.WithdrawRewardHandler)
		}

		finance := apiGroup.Group("/finance", middleware.PermissionMiddleware("keuangan"))
		{
			finance.GET("/transactions", handlers.ListTransactionsHandler)
			finance.POST("/transactions", handlers.CreateTransactionHandler)
			finance.PUT("/transactions/:id", handlers.UpdateTransactionHandler)
			finance.DELETE("/transactions/:id", handlers.DeleteTransactionHandler)

			finance.GET("/cards", handlers.ListCardsHandler)
			finance.POST("/cards", handlers.CreateCardHandler)
			finance.PUT("/cards/:id", handlers.UpdateCardHandler)
			finance.DELETE("/cards/:id", handlers.DeleteCardHandler)

			finance.GET("/pockets", handlers.ListPocketsHandler)
			finance.POST("/pockets", handlers.CreatePocketHandler)
			finance.PUT("/pockets/:id", handlers.UpdatePocketHandler)
			finance.DELETE("/pockets/:id", handlers.DeletePocketHandler)
		}

		packages := apiGroup.Group("/packages", middleware.PermissionMiddleware("paket"))
		{
			packages.GET("", handlers.ListPackagesHandler)
			packages.POST("", handlers.CreatePackageHandler)
			packages.PUT("/:id", handlers.UpdatePackageHandler)
			packages.DELETE("/:id", handlers.DeletePackageHandler)

			packages.GET("/add-ons", handlers.ListAddOnsHandler)
			packages.POST("/add-ons", handlers.CreateAddOnHandler)
			packages.PUT("/add-ons/:id", handlers.UpdateAddOnHandler)
			packages.DELETE("/add-ons/:id", handlers.DeleteAddOnHandler)
		}

		contracts := apiGroup.Group("/contracts", middleware.PermissionMiddleware("kontrak"))
		{
			contracts.GET("", handlers.ListContractsHandler)
			contracts.POST("", handlers.CreateContractHandler)
			contracts.GET("/:id", handlers.GetContractHandler)
			contracts.PUT("/:id", handlers.UpdateContractHandler)
			contracts.DELETE("/:id", handlers.DeleteContractHandler)
			contracts.GET("/:id/render", handlers.RenderContractHandler)
		}

		promos := apiGroup.Group("/promo-codes", middleware.PermissionMiddleware("promo"))
		{
			promos.GET("", handlers.ListPromoCodesHandler)
			promos.POST("", handlers.CreatePromoCodeHandler)
			promos.PUT("/:id", handlers.UpdatePromoCodeHandler)
			promos.DELETE("/:id", handlers.DeletePromoCodeHandler)
			promos.POST("/validate", handlers.ValidatePromoCodeHandler)
		}

		assets := apiGroup.Group("/assets", middleware.PermissionMiddleware("aset"))
		{
			assets.GET("", handlers.ListAssetsHandler)
			assets.POST("", handlers.CreateAssetHandler)
			assets.PUT("/:id", handlers.UpdateAssetHandler)
			assets.DELETE("/:id", handlers.DeleteAssetHandler)
		}

		sops := apiGroup.Group("/sops", middleware.PermissionMiddleware("sop"))
		{
			sops.GET("", handlers.ListSOPsHandler)
			sops.POST("", handlers.CreateSOPHandler)
			sops.PUT("/:id", handlers.UpdateSOPHandler)
			sops.DELETE("/:id", handlers.DeleteSOPHandler)
		}

		social := apiGroup.Group("/social-posts", middleware.PermissionMiddleware("media-sosial"))
		{
			social.GET("", handlers.ListSocialPostsHandler)
			social.POST("", handlers.CreateSocialPostHandler)
			social.PUT("/:id", handlers.UpdateSocialPostHandler)
			social.DELETE("/:id", handlers.DeleteSocialPostHandler)
			social.POST("/suggest-caption", handlers.SuggestCaptionHandler)
		}

		feedback := apiGroup.Group("/feedback", middleware.PermissionMiddleware("masukan"))
		{
			feedback.GET("", handlers.ListFeedbackHandler)
			feedback.DELETE("/:id", handlers.DeleteFeedbackHandler)
		}

		notifications := apiGroup.Group("/notifications")
		{
			notifications.GET("", handlers.ListNotificationsHandler)
			notifications.GET("/ws", handlers.NotificationWSEndpoint)
			notifications.POST("/:id/read", handlers.MarkNotificationReadHandler)
			notifications.POST("/read-all", handlers.MarkAllNotificationsReadHandler)
		}

		profile := apiGroup.Group("/profile", middleware.PermissionMiddleware("pengaturan"))
		{
			profile.GET("", handlers.GetProfileHandler)
			profile.PUT("", handlers.UpdateProfileHandler)
		}

		users := apiGroup.Group("/users", middleware.PermissionMiddleware("pengaturan"))
		{
			users.GET("", handlers.ListUsersHandler)
			users.POST("", handlers.CreateUserHandler)
			users.PUT("/:id", handlers.UpdateUserHandler)
			users.DELETE("/:id", handlers.DeleteUserHandler)
		}
	}
}
