package models

import (
	"errors"
	"strings"
)

type OrderStatus string
type PaymentStatus string

const (
	// Fulfilment statuses
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"

	// Payment statuses; pending moves to exactly one terminal state
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

const (
	ItemTypeMenu     = "menu"
	ItemTypeArtwork  = "artwork"
	ItemTypeWorkshop = "workshop"
)

type Order struct {
	Base
	UserID            string        `gorm:"not null;index;size:36" json:"userId"`
	User              *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items             []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount       float64       `gorm:"not null" json:"totalAmount"`
	Currency          string        `gorm:"type:VARCHAR(3)" json:"currency"`
	PaymentStatus     PaymentStatus `gorm:"type:VARCHAR(10);default:'pending';index" json:"paymentStatus"`
	OrderStatus       OrderStatus   `gorm:"type:VARCHAR(12);default:'pending'" json:"orderStatus"`
	RazorpayOrderID   string        `gorm:"index" json:"razorpayOrderId"`
	RazorpayPaymentID string        `json:"razorpayPaymentId,omitempty"`
	RazorpaySignature string        `json:"razorpaySignature,omitempty"`
	FailureReason     string        `json:"failureReason,omitempty"`
}

type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	OrderID  string  `gorm:"index;size:36" json:"-"`
	ItemID   string  `gorm:"size:36" json:"itemId"`
	ItemType string  `gorm:"type:VARCHAR(10)" json:"itemType"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OwnedBy reports whether the order belongs to the given user.
func (o *Order) OwnedBy(userID string) bool {
	return o.UserID != "" && o.UserID == userID
}

// ParseOrderStatus maps free text to a fulfilment status.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch s := OrderStatus(strings.ToLower(strings.TrimSpace(status))); s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return s, nil
	default:
		return "", errors.New("invalid status. Must be pending, processing, shipped, delivered, or cancelled")
	}
}

func ValidItemType(t string) bool {
	return t == ItemTypeMenu || t == ItemTypeArtwork || t == ItemTypeWorkshop
}

// EventKey keys order events on the message bus.
func (o Order) EventKey() string {
	return o.ID
}
