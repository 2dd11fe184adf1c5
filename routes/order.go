package routes

import (
	orderControllers "github.com/7248-om/gshock12/controllers/order"
	"github.com/7248-om/gshock12/middleware"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(api *gin.RouterGroup, d Dependencies) {
	orders := api.Group("/orders")
	orders.Use(d.authed())
	{
		// Own orders
		orders.GET("/my", orderControllers.GetMyOrdersHandler(d.DB))

		// Admin dashboard feed; browsers pass the token as ?token=
		orders.GET("/ws", middleware.RequireAdmin, d.Hub.Handler())

		// Fetch all orders / export (admin)
		orders.GET("", middleware.RequireAdmin, orderControllers.GetAllOrdersHandler(d.DB))
		orders.GET("/export", middleware.RequireAdmin, orderControllers.ExportOrdersToExcel(d.DB))

		// Owner or admin
		orders.GET("/:id", orderControllers.GetOrderByIDHandler(d.DB))

		// Update fulfilment status (e.g., shipped, cancelled)
		orders.PUT("/:id/status", middleware.RequireAdmin, orderControllers.UpdateOrderStatusHandler(d.DB, d.Events))

		orders.DELETE("/:id", middleware.RequireAdmin, orderControllers.DeleteOrderHandler(d.DB))
	}
}
