package adminController

import (
	"net/http"

	"github.com/7248-om/gshock12/logger"
	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Stats is the dashboard summary.
type Stats struct {
	Users            int64   `json:"users"`
	Orders           int64   `json:"orders"`
	PaidOrders       int64   `json:"paidOrders"`
	PendingOrders    int64   `json:"pendingOrders"`
	Revenue          float64 `json:"revenue"`
	MenuItems        int64   `json:"menuItems"`
	Artworks         int64   `json:"artworks"`
	PendingWorkshops int64   `json:"pendingWorkshops"`
	NewLeads         int64   `json:"newLeads"`
	ChatInteractions int64   `json:"chatInteractions"`
}

func GetAllAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admins []models.User
		if err := db.Where("role = ?", models.RoleAdmin).Order("created_at ASC").Find(&admins).Error; err != nil {
			logger.WithComponent("admin").WithError(err).Error("❌ Failed to fetch admins")
			response.Error(c, http.StatusInternalServerError, "Failed to fetch admins", err)
			return
		}
		c.JSON(http.StatusOK, admins)
	}
}

func GetStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var s Stats
		counts := []struct {
			dst   *int64
			model interface{}
			where []interface{}
		}{
			{&s.Users, &models.User{}, nil},
			{&s.Orders, &models.Order{}, nil},
			{&s.PaidOrders, &models.Order{}, []interface{}{"payment_status = ?", models.PaymentStatusPaid}},
			{&s.PendingOrders, &models.Order{}, []interface{}{"payment_status = ?", models.PaymentStatusPending}},
			{&s.MenuItems, &models.MenuItem{}, nil},
			{&s.Artworks, &models.Artwork{}, nil},
			{&s.PendingWorkshops, &models.Workshop{}, []interface{}{"status = ?", models.WorkshopPending}},
			{&s.NewLeads, &models.FranchiseLead{}, []interface{}{"status = ?", models.LeadNew}},
			{&s.ChatInteractions, &models.Interaction{}, nil},
		}
		for _, q := range counts {
			tx := db.Model(q.model)
			if len(q.where) > 0 {
				tx = tx.Where(q.where[0], q.where[1:]...)
			}
			if err := tx.Count(q.dst).Error; err != nil {
				response.Error(c, http.StatusInternalServerError, "Failed to load stats", err)
				return
			}
		}

		if err := db.Model(&models.Order{}).
			Where("payment_status = ?", models.PaymentStatusPaid).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&s.Revenue).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to load stats", err)
			return
		}

		c.JSON(http.StatusOK, s)
	}
}
