package payment

import (
	"errors"

	"github.com/tidwall/gjson"
)

const (
	EventPaymentCaptured = "payment.captured"
	EventPaymentFailed   = "payment.failed"
	EventOrderPaid       = "order.paid"
)

// WebhookEvent is the part of a Razorpay webhook the service acts on.
type WebhookEvent struct {
	Event          string
	GatewayOrderID string
	PaymentID      string
	Reason         string
}

// Handled reports whether the service acts on this event type.
func (e *WebhookEvent) Handled() bool {
	switch e.Event {
	case EventPaymentCaptured, EventPaymentFailed, EventOrderPaid:
		return true
	}
	return false
}

// ParseWebhook extracts the payment entity from a webhook body. Only the
// handled event types must carry an order id.
func ParseWebhook(body []byte) (*WebhookEvent, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("invalid webhook payload")
	}
	doc := gjson.ParseBytes(body)
	ev := &WebhookEvent{
		Event:          doc.Get("event").String(),
		GatewayOrderID: doc.Get("payload.payment.entity.order_id").String(),
		PaymentID:      doc.Get("payload.payment.entity.id").String(),
		Reason:         doc.Get("payload.payment.entity.error_description").String(),
	}
	if ev.GatewayOrderID == "" {
		ev.GatewayOrderID = doc.Get("payload.order.entity.id").String()
	}
	if ev.Event == "" {
		return nil, errors.New("webhook payload has no event")
	}
	if ev.Handled() && ev.GatewayOrderID == "" {
		return nil, errors.New("webhook payload has no order id")
	}
	return ev, nil
}
