package routes

import (
	paymentControllers "github.com/7248-om/gshock12/controllers/payment"
	"github.com/7248-om/gshock12/middleware"
	"github.com/gin-gonic/gin"
)

func SetupPaymentRoutes(api *gin.RouterGroup, d Dependencies) {
	h := paymentControllers.NewHandler(d.DB, d.Gateway, d.Config.PaymentCurrency, d.Events)

	payments := api.Group("/payments")
	{
		// Webhook endpoint: middleware checks the gateway signature over the raw body
		payments.POST("/webhook",
			middleware.RazorpayWebhookAuth(d.Config.RazorpayWebhookSecret),
			h.Webhook,
		)

		checkout := payments.Group("", d.authed())
		checkout.POST("/create-order", h.CreateOrder)
		checkout.POST("/verify", h.Verify)
		checkout.POST("/failure", h.Failure)
		checkout.GET("/:orderId", h.GetOrder)
	}
}
