package routes

import (
	chatcontroller "github.com/7248-om/gshock12/controllers/chat"
	franchisecontroller "github.com/7248-om/gshock12/controllers/franchise"
	marketingcontroller "github.com/7248-om/gshock12/controllers/marketing"
	reviewscontroller "github.com/7248-om/gshock12/controllers/reviews"
	synesthesiacontroller "github.com/7248-om/gshock12/controllers/synesthesia"
	"github.com/7248-om/gshock12/middleware"
	"github.com/gin-gonic/gin"
)

// SetupEngagementRoutes registers the customer-facing extras: franchise
// enquiries, mood pairing, the chat barista, marketing email and reviews.
func SetupEngagementRoutes(api *gin.RouterGroup, d Dependencies) {
	franchises := api.Group("/franchises")
	{
		franchises.POST("", franchisecontroller.CreateLead(d.DB))
		franchises.GET("", d.adminOnly(franchisecontroller.GetLeads(d.DB))...)
		franchises.PUT("/:id/status", d.adminOnly(franchisecontroller.UpdateLeadStatus(d.DB))...)
		franchises.DELETE("/:id", d.adminOnly(franchisecontroller.DeleteLead(d.DB))...)
	}

	api.GET("/synesthesia/pair", synesthesiacontroller.GetPairing(d.DB))

	api.POST("/chat",
		middleware.OptionalToken(d.Tokens, d.DB),
		d.ChatLimiter.Handler(),
		chatcontroller.Chat(d.DB, d.Generator),
	)

	marketing := api.Group("/marketing", d.authed(), middleware.RequireAdmin)
	{
		marketing.GET("/recipients", marketingcontroller.GetRecipients(d.DB))
		marketing.POST("/broadcast", marketingcontroller.Broadcast(d.DB, d.Broadcaster))
		marketing.POST("/template", marketingcontroller.SaveTemplate(d.DB))
		marketing.GET("/templates", marketingcontroller.GetTemplates(d.DB))
	}

	api.GET("/google-reviews", reviewscontroller.GetGoogleReviews(d.Reviews))
}
