package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/7248-om/gshock12/logger"
	"github.com/7248-om/gshock12/payment"
	"github.com/gin-gonic/gin"
)

// ContextRawBody holds the webhook body that was signature-checked.
const ContextRawBody = "raw_body"

// MaxWebhookBody caps the webhook body read into memory.
const MaxWebhookBody = 1 << 20

// RazorpayWebhookAuth verifies X-Razorpay-Signature over the raw body before
// the handler runs. Without a configured secret every webhook is refused.
func RazorpayWebhookAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Webhook secret is not configured"})
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxWebhookBody))
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": "webhook body too large"})
			return
		}
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "failed to read webhook body"})
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		if !payment.VerifyWebhookSignature(secret, body, c.GetHeader("X-Razorpay-Signature")) {
			logger.WithComponent("webhook").Warn("invalid webhook signature")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid webhook signature"})
			return
		}

		c.Set(ContextRawBody, body)
		c.Next()
	}
}
