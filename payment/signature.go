package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// Signature is hex(HMAC-SHA256(secret, gatewayOrderID + "|" + paymentID)).
func Signature(secret, gatewayOrderID, paymentID string) string {
	return sign(secret, []byte(gatewayOrderID+"|"+paymentID))
}

// VerifySignature compares the expected checkout signature with the supplied one
// in constant time. The comparison is exact: no trimming or case folding.
func VerifySignature(secret, gatewayOrderID, paymentID, supplied string) bool {
	if secret == "" || supplied == "" {
		return false
	}
	return hmac.Equal([]byte(Signature(secret, gatewayOrderID, paymentID)), []byte(supplied))
}

// VerifyWebhookSignature checks X-Razorpay-Signature against the raw request body.
func VerifyWebhookSignature(secret string, body []byte, supplied string) bool {
	if secret == "" || supplied == "" {
		return false
	}
	return hmac.Equal([]byte(sign(secret, body)), []byte(supplied))
}

func sign(secret string, msg []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(msg)
	return hex.EncodeToString(mac.Sum(nil))
}
