package paymentControllers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/7248-om/gshock12/logger"
	"github.com/7248-om/gshock12/metrics"
	"github.com/7248-om/gshock12/middleware"
	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/payment"
	"github.com/7248-om/gshock12/realtime"
	"github.com/7248-om/gshock12/response"
	"github.com/7248-om/gshock12/validation"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type OrderItemInput struct {
	ItemID   string  `json:"itemId" binding:"required"`
	ItemType string  `json:"itemType" binding:"required,item_type"`
	Name     string  `json:"name" binding:"required"`
	Price    float64 `json:"price" binding:"gte=0"`
	Quantity int     `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	Items       []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	TotalAmount float64          `json:"totalAmount" binding:"required,gt=0"`
}

type VerifyRequest struct {
	OrderID           string `json:"orderId"`
	PaymentID         string `json:"paymentId"`
	RazorpaySignature string `json:"razorpaySignature"`
}

type FailureRequest struct {
	OrderID string `json:"orderId"`
	Error   string `json:"error"`
}

// Handler serves the checkout endpoints. Gateway may be nil when the
// payment provider is not configured.
type Handler struct {
	DB       *gorm.DB
	Gateway  payment.Gateway
	Currency string
	Events   realtime.Publisher
	now      func() time.Time
}

func NewHandler(db *gorm.DB, gateway payment.Gateway, currency string, events realtime.Publisher) *Handler {
	return &Handler{DB: db, Gateway: gateway, Currency: currency, Events: events, now: time.Now}
}

// CreateOrder opens a gateway order and stores the matching pending order.
func (h *Handler) CreateOrder(c *gin.Context) {
	if h.Gateway == nil {
		response.Error(c, http.StatusServiceUnavailable, "Payment gateway is not configured", payment.ErrGatewayUnavailable)
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, validation.Message(err), err)
		return
	}

	userID := middleware.UserID(c)
	amount := int64(math.Round(req.TotalAmount * 100))
	gwOrder, err := h.Gateway.CreateOrder(c.Request.Context(), payment.OrderRequest{
		Amount:   amount,
		Currency: h.Currency,
		Receipt:  fmt.Sprintf("order_%d", h.now().UnixMilli()),
		Notes: map[string]string{
			"userId":    userID,
			"itemCount": strconv.Itoa(len(req.Items)),
		},
	})
	if err != nil {
		metrics.RecordPayment("gateway_error")
		response.Error(c, http.StatusInternalServerError, "Failed to create payment order", err)
		return
	}

	order := models.Order{
		UserID:          userID,
		TotalAmount:     req.TotalAmount,
		Currency:        h.Currency,
		PaymentStatus:   models.PaymentStatusPending,
		OrderStatus:     models.OrderStatusPending,
		RazorpayOrderID: gwOrder.ID,
	}
	for _, it := range req.Items {
		order.Items = append(order.Items, models.OrderItem{
			ItemID:   it.ItemID,
			ItemType: it.ItemType,
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}
	if err := h.DB.Create(&order).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to save order", err)
		return
	}

	h.Events.Publish(realtime.EventOrderCreated, order)
	metrics.RecordPayment("created")
	// amount is in minor units as Razorpay Checkout expects; totalAmount is the order total.
	c.JSON(http.StatusCreated, gin.H{
		"razorpayOrderId": gwOrder.ID,
		"orderId":         order.ID,
		"amount":          amount,
		"totalAmount":     order.TotalAmount,
		"currency":        h.Currency,
		"keyId":           h.Gateway.KeyID(),
	})
}

// Verify checks the checkout signature and marks the order paid.
func (h *Handler) Verify(c *gin.Context) {
	if h.Gateway == nil {
		response.Error(c, http.StatusServiceUnavailable, "Payment gateway is not configured", payment.ErrGatewayUnavailable)
		return
	}

	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderID == "" || req.PaymentID == "" || req.RazorpaySignature == "" {
		response.BadRequest(c, "orderId, paymentId and razorpaySignature are required")
		return
	}

	order, ok := h.loadOwned(c, req.OrderID)
	if !ok {
		return
	}

	if !payment.VerifySignature(h.Gateway.Secret(), order.RazorpayOrderID, req.PaymentID, req.RazorpaySignature) {
		metrics.RecordPayment("invalid_signature")
		logger.WithComponent("payments").WithField("order_id", order.ID).Warn("payment signature mismatch")
		response.BadRequest(c, "Invalid payment signature")
		return
	}

	paid, err := payment.MarkPaid(h.DB, order.ID, req.PaymentID, req.RazorpaySignature)
	if !h.transitionOK(c, err) {
		return
	}

	h.Events.Publish(realtime.EventOrderPaid, *paid)
	metrics.RecordPayment("paid")
	c.JSON(http.StatusOK, gin.H{"message": "Payment verified successfully", "order": paid})
}

// Failure records a checkout the customer could not complete.
func (h *Handler) Failure(c *gin.Context) {
	var req FailureRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.OrderID == "" {
		response.BadRequest(c, "orderId is required")
		return
	}

	if _, ok := h.loadOwned(c, req.OrderID); !ok {
		return
	}

	reason := req.Error
	if reason == "" {
		reason = "Payment failed"
	}
	failed, err := payment.MarkFailed(h.DB, req.OrderID, reason)
	if !h.transitionOK(c, err) {
		return
	}

	h.Events.Publish(realtime.EventOrderFailed, *failed)
	metrics.RecordPayment("failed")
	c.JSON(http.StatusOK, gin.H{"message": "Payment failure recorded", "order": failed})
}

// GetOrder returns an order with its items to its owner or an admin.
func (h *Handler) GetOrder(c *gin.Context) {
	order, ok := h.loadOwned(c, c.Param("orderId"))
	if !ok {
		return
	}
	c.JSON(http.StatusOK, order)
}

// Webhook applies payment.captured, order.paid and payment.failed events and
// acknowledges every other event type. The body has already been
// authenticated by middleware.RazorpayWebhookAuth.
func (h *Handler) Webhook(c *gin.Context) {
	body, _ := c.Get(middleware.ContextRawBody)
	raw, _ := body.([]byte)

	ev, err := payment.ParseWebhook(raw)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid webhook payload", err)
		return
	}

	log := logger.WithComponent("payments").WithFields(logrus.Fields{
		"event":            ev.Event,
		"gateway_order_id": ev.GatewayOrderID,
	})

	var order *models.Order
	switch ev.Event {
	case payment.EventPaymentCaptured, payment.EventOrderPaid:
		order, err = payment.MarkPaidByGatewayOrder(h.DB, ev.GatewayOrderID, ev.PaymentID)
		if err == nil {
			h.Events.Publish(realtime.EventOrderPaid, *order)
			metrics.RecordPayment("paid")
		}
	case payment.EventPaymentFailed:
		reason := ev.Reason
		if reason == "" {
			reason = "Payment failed"
		}
		order, err = payment.MarkFailedByGatewayOrder(h.DB, ev.GatewayOrderID, reason)
		if err == nil {
			h.Events.Publish(realtime.EventOrderFailed, *order)
			metrics.RecordPayment("failed")
		}
	default:
		log.Info("ignoring webhook event")
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	switch {
	case errors.Is(err, payment.ErrOrderNotFound):
		log.Warn("webhook for unknown order")
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
	case errors.Is(err, payment.ErrAlreadyFailed), errors.Is(err, payment.ErrAlreadyPaid):
		log.WithError(err).Warn("webhook conflicts with terminal payment state")
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
	case err != nil:
		response.Error(c, http.StatusInternalServerError, "Failed to apply webhook", err)
	default:
		log.Info("webhook applied")
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func (h *Handler) loadOwned(c *gin.Context, orderID string) (*models.Order, bool) {
	var order models.Order
	if err := h.DB.Preload("Items").First(&order, "id = ?", orderID).Error; err != nil {
		response.StoreError(c, "Order not found", err)
		return nil, false
	}
	if !order.OwnedBy(middleware.UserID(c)) && !middleware.IsAdmin(c) {
		response.Error(c, http.StatusForbidden, "Not authorized to access this order", nil)
		return nil, false
	}
	return &order, true
}

func (h *Handler) transitionOK(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, payment.ErrOrderNotFound):
		response.Error(c, http.StatusNotFound, "Order not found", nil)
	case errors.Is(err, payment.ErrAlreadyFailed), errors.Is(err, payment.ErrAlreadyPaid):
		response.Error(c, http.StatusConflict, err.Error(), nil)
	default:
		response.Error(c, http.StatusInternalServerError, "Failed to update order", err)
	}
	return false
}
