package adminController

import (
	"net/http"

	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListPendingApprovals returns the records waiting on an admin decision:
// workshops still Pending and franchise leads still New.
func ListPendingApprovals(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var workshops []models.Workshop
		if err := db.Where("status = ?", models.WorkshopPending).Order("date ASC").Find(&workshops).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to fetch pending workshops", err)
			return
		}

		var leads []models.FranchiseLead
		if err := db.Where("status = ?", models.LeadNew).Order("created_at DESC").Find(&leads).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to fetch new leads", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"workshops": workshops,
			"leads":     leads,
		})
	}
}
