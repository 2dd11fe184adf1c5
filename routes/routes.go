package routes

import (
	"net/http"
	"time"

	"github.com/7248-om/gshock12/auth"
	"github.com/7248-om/gshock12/chatbot"
	"github.com/7248-om/gshock12/config"
	"github.com/7248-om/gshock12/mailer"
	"github.com/7248-om/gshock12/metrics"
	"github.com/7248-om/gshock12/middleware"
	"github.com/7248-om/gshock12/payment"
	"github.com/7248-om/gshock12/qr"
	"github.com/7248-om/gshock12/realtime"
	"github.com/7248-om/gshock12/reviews"
	"github.com/7248-om/gshock12/uploads"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dependencies is everything the handlers need. Vendor bridges left nil
// make their endpoints answer 503; local helpers left nil are built from Config.
type Dependencies struct {
	DB     *gorm.DB
	Config *config.Configuration
	Tokens *auth.TokenIssuer

	Verifier    auth.IdentityVerifier
	Gateway     payment.Gateway
	Generator   chatbot.Generator
	Broadcaster *mailer.Broadcaster
	Reviews     reviews.Fetcher

	Hub         *realtime.Hub
	Events      realtime.Publisher // defaults to Hub
	Store       *uploads.Store
	QR          qr.Generator
	ChatLimiter *middleware.RateLimiter
}

// SetupRoutes is the single entry-point that wires every route group.
func SetupRoutes(r *gin.Engine, d Dependencies) {
	if d.Hub == nil {
		d.Hub = realtime.NewHub()
	}
	if d.Events == nil {
		d.Events = d.Hub
	}
	if d.Store == nil {
		d.Store = uploads.NewStore(d.Config.UploadDir, d.Config.PublicBaseURL)
	}
	if d.QR == nil {
		d.QR = qr.TableGenerator{FrontendURL: d.Config.FrontendURL}
	}
	if d.Reviews == nil {
		d.Reviews = reviews.NewPlacesClient(d.Config.GooglePlacesURL, d.Config.GooglePlaceID, d.Config.GoogleAPIKey)
	}
	if d.ChatLimiter == nil {
		d.ChatLimiter = middleware.NewRateLimiter(d.Config.ChatRatePerMinute, d.Config.ChatRateBurst)
	}

	// 1️⃣ Health and operations
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
	r.GET("/api", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message":   "Rabuste Coffee API",
			"status":    "running",
			"timestamp": time.Now().UTC(),
		})
	})
	r.GET("/metrics", middleware.ValidateAPIKey(d.Config.MetricsAPIKey), metrics.Handler())
	r.Static("/uploads", d.Store.Dir)

	api := r.Group("/api")

	// 2️⃣ Auth and users
	SetupAuthRoutes(api, d)
	SetupUserRoutes(api, d)

	// 3️⃣ Catalog
	SetupCatalogRoutes(api, d)

	// 4️⃣ Orders and payments
	SetupOrderRoutes(api, d)
	SetupPaymentRoutes(api, d)

	// 5️⃣ Leads, pairing, chat, marketing, reviews
	SetupEngagementRoutes(api, d)

	// 6️⃣ Admin tools
	SetupAdminRoutes(api, d)
}

func (d Dependencies) authed() gin.HandlerFunc {
	return middleware.ValidateToken(d.Tokens, d.DB)
}

// adminOnly prefixes h with token and admin checks.
func (d Dependencies) adminOnly(h gin.HandlerFunc) []gin.HandlerFunc {
	return []gin.HandlerFunc{d.authed(), middleware.RequireAdmin, h}
}
