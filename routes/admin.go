package routes

import (
	adminController "github.com/7248-om/gshock12/controllers/admin"
	mediacontroller "github.com/7248-om/gshock12/controllers/media"
	qrcontroller "github.com/7248-om/gshock12/controllers/qr"
	"github.com/7248-om/gshock12/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers the "/api/admin/*" tools and media upload.
// Requires an admin session token.
func SetupAdminRoutes(api *gin.RouterGroup, d Dependencies) {
	adminGroup := api.Group("/admin")
	adminGroup.Use(d.authed(), middleware.RequireAdmin)
	{
		// ─────────── Dashboard ───────────
		adminGroup.GET("/stats", adminController.GetStats(d.DB))
		adminGroup.GET("/admins", adminController.GetAllAdmins(d.DB))
		adminGroup.GET("/pending", adminController.ListPendingApprovals(d.DB))

		// ─────────── Table QR codes ───────────
		qrGroup := adminGroup.Group("/qr")
		{
			qrGroup.POST("", qrcontroller.CreateTableQR(d.DB, d.QR, d.Store))
			qrGroup.GET("", qrcontroller.GetTableQRs(d.DB))
			qrGroup.DELETE("/:id", qrcontroller.DeleteTableQR(d.DB, d.Store))
		}
	}

	api.POST("/media/upload", d.adminOnly(mediacontroller.HandleFileUpload(d.Store))...)
}
