package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/venaeki0-svg/vena/config"
	"github.com/venaeki0-svg/vena/internal/handlers"
	"github.com/venaeki0-svg/vena/internal/routes"
	"github.com/venaeki0-svg/vena/models"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using process environment")
	}

	config.ConnectDB()
	config.InitJWT()
	config.ConnectRedis()
	if err := config.InitGoogleServices(); err != nil {
		slog.Warn("Gemini client unavailable", "error", err)
	}

	if err := config.DB.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Lead{},
		&models.Client{},
		&models.Project{},
		&models.TeamMember{},
		&models.TeamProjectPayment{},
		&models.TeamPaymentRecord{},
		&models.RewardLedgerEntry{},
		&models.Transaction{},
		&models.Card{},
		&models.FinancialPocket{},
		&models.ServicePackage{},
		&models.AddOn{},
		&models.Contract{},
		&models.PromoCode{},
		&models.Asset{},
		&models.SOP{},
		&models.ClientFeedback{},
		&models.SocialMediaPost{},
		&models.Notification{},
	); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	config.SeedDefaults()

	go handlers.GlobalHub.Run()

	r := gin.Default()
	routes.SetupRoutes(r)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
