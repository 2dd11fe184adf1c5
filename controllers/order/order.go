package orderControllers

import (
	"net/http"

	"github.com/7248-om/gshock12/middleware"
	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/realtime"
	"github.com/7248-om/gshock12/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GetAllOrdersHandler lists every order, newest first (admin).
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to fetch orders", err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetMyOrdersHandler lists the caller's own orders.
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Where("user_id = ?", middleware.UserID(c)).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to fetch orders", err)
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GetOrderByIDHandler returns one order to its owner or an admin.
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			First(&order, "id = ?", c.Param("id")).Error; err != nil {
			response.StoreError(c, "Order not found", err)
			return
		}

		if !order.OwnedBy(middleware.UserID(c)) && !middleware.IsAdmin(c) {
			response.Error(c, http.StatusForbidden, "Not authorized to view this order", nil)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

func UpdateOrderStatusHandler(db *gorm.DB, events realtime.Publisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "status is required")
			return
		}
		newStatus, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, "id = ?", c.Param("id")).Error; err != nil {
			response.StoreError(c, "Order not found", err)
			return
		}
		if err := db.Model(&order).Update("order_status", newStatus).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to update order status", err)
			return
		}

		order.OrderStatus = newStatus
		events.Publish(realtime.EventOrderStatus, order)
		c.JSON(http.StatusOK, order)
	}
}

func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")
		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			response.StoreError(c, "Order not found", err)
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Delete(&order).Error
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to delete order", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
