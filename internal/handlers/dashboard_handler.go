package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/venaeki0-svg/vena/config"
	"github.com/venaeki0-svg/vena/models"
)

const dashboardCacheKey = "dashboard:summary"

type dashboardSummary struct {
	MonthIncome      int64 `json:"monthIncome"`
	MonthExpense     int64 `json:"monthExpense"`
	TotalCardBalance int64 `json:"totalCardBalance"`
	TotalPocketFunds int64 `json:"totalPocketFunds"`
	ActiveProjects   int64 `json:"activeProjects"`
	UnpaidProjects   int64 `json:"unpaidProjects"`
	NewLeads         int64 `json:"newLeads"`
	UnpaidTeamFees   int64 `json:"unpaidTeamFees"`

	UpcomingProjects []models.Project `json:"upcomingProjects"`
}

// DashboardSummaryHandler aggregates the landing numbers, cached in Redis
// for a couple of minutes since every session loads it.
func DashboardSummaryHandler(c *gin.Context) {
	if config.RDB != nil {
		cached, err := config.RDB.Get(config.Ctx, dashboardCacheKey).Result()
		if err == nil {
			var summary dashboardSummary
			if json.Unmarshal([]byte(cached), &summary) == nil {
				c.JSON(http.StatusOK, summary)
				return
			}
		}
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var summary dashboardSummary

	config.DB.Model(&models.Transaction{}).
		Where("type = ? AND date >= ?", models.TransactionIncome, monthStart).
		Select("COALESCE(SUM(amount), 0)").Scan(&summary.MonthIncome)
	config.DB.Model(&models.Transaction{}).
		Where("type = ? AND date >= ?", models.TransactionExpense, monthStart).
		Select("COALESCE(SUM(amount), 0)").Scan(&summary.MonthExpense)
	config.DB.Model(&models.Card{}).
		Select("COALESCE(SUM(balance), 0)").Scan(&summary.TotalCardBalance)
	config.DB.Model(&models.FinancialPocket{}).
		Select("COALESCE(SUM(amount), 0)").Scan(&summary.TotalPocketFunds)

	config.DB.Model(&models.Project{}).
		Where("status NOT IN ?", []string{"Selesai", "Dibatalkan"}).
		Count(&summary.ActiveProjects)
	config.DB.Model(&models.Project{}).
		Where("payment_status <> ?", models.PaymentPaid).
		Count(&summary.UnpaidProjects)
	config.DB.Model(&models.Lead{}).
		Where("status IN ?", []models.LeadStatus{models.LeadDiscussion, models.LeadFollowUp}).
		Count(&summary.NewLeads)
	config.DB.Model(&models.TeamProjectPayment{}).
		Where("status = ?", models.TeamPayUnpaid).
		Select("COALESCE(SUM(fee), 0)").Scan(&summary.UnpaidTeamFees)

	config.DB.Where("date >= ? AND status NOT IN ?", now, []string{"Selesai", "Dibatalkan"}).
		Order("date").Limit(5).Find(&summary.UpcomingProjects)
	if summary.UpcomingProjects == nil {
		summary.UpcomingProjects = make([]models.Project, 0)
	}

	if config.RDB != nil {
		if data, err := json.Marshal(summary); err == nil {
			if err := config.RDB.Set(config.Ctx, dashboardCacheKey, data, 2*time.Minute).Err(); err != nil {
				slog.Warn("failed to cache dashboard summary", "error", err)
			}
		}
	}

	c.JSON(http.StatusOK, summary)
}

// InvalidateDashboardCache drops the cached summary after financial writes.
func InvalidateDashboardCache() {
	if config.RDB == nil {
		return
	}
	if err := config.RDB.Del(config.Ctx, dashboardCacheKey).Err(); err != nil {
		slog.Warn("failed to invalidate dashboard cache", "error", err)
	}
}
