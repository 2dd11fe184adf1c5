package payment

import (
	"errors"

	"github.com/7248-om/gshock12/models"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	// ErrAlreadyFailed: a failed order can never become paid.
	ErrAlreadyFailed = errors.New("order payment already failed")
	// ErrAlreadyPaid: a paid order can never become failed.
	ErrAlreadyPaid = errors.New("order is already paid")
)

// MarkPaid moves an order to paid and records the gateway payment.
// Replaying it on a paid order overwrites the payment fields.
func MarkPaid(db *gorm.DB, orderID, paymentID, signature string) (*models.Order, error) {
	return markPaid(db, "id", orderID, paymentID, signature)
}

// MarkPaidByGatewayOrder is MarkPaid keyed by the gateway order id.
func MarkPaidByGatewayOrder(db *gorm.DB, gatewayOrderID, paymentID string) (*models.Order, error) {
	return markPaid(db, "razorpay_order_id", gatewayOrderID, paymentID, "")
}

// MarkFailed moves a pending order to failed with the given reason.
func MarkFailed(db *gorm.DB, orderID, reason string) (*models.Order, error) {
	return markFailed(db, "id", orderID, reason)
}

func MarkFailedByGatewayOrder(db *gorm.DB, gatewayOrderID, reason string) (*models.Order, error) {
	return markFailed(db, "razorpay_order_id", gatewayOrderID, reason)
}

func markPaid(db *gorm.DB, column, value, paymentID, signature string) (*models.Order, error) {
	updates := map[string]interface{}{
		"payment_status":      models.PaymentStatusPaid,
		"razorpay_payment_id": paymentID,
		"failure_reason":      "",
	}
	if signature != "" {
		updates["razorpay_signature"] = signature
	}

	res := db.Model(&models.Order{}).
		Where(column+" = ? AND payment_status <> ?", value, models.PaymentStatusFailed).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	return reload(db, column, value, res.RowsAffected, ErrAlreadyFailed)
}

func markFailed(db *gorm.DB, column, value, reason string) (*models.Order, error) {
	res := db.Model(&models.Order{}).
		Where(column+" = ? AND payment_status <> ?", value, models.PaymentStatusPaid).
		Updates(map[string]interface{}{
			"payment_status": models.PaymentStatusFailed,
			"failure_reason": reason,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	return reload(db, column, value, res.RowsAffected, ErrAlreadyPaid)
}

// reload returns the order after a conditional update. When nothing matched,
// the order either does not exist or is in the blocking terminal state.
func reload(db *gorm.DB, column, value string, affected int64, blocked error) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Items").Where(column+" = ?", value).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return &order, blocked
	}
	return &order, nil
}
