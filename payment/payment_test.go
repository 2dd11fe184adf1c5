package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignature(t *testing.T) {
	const want = "444ab3353f39d9a6cd042ce01e598f3a2819f46159b58f0ff40d4eed15d8e158"
	assert.Equal(t, want, Signature("test_secret", "order_1", "pay_1"))

	assert.True(t, VerifySignature("test_secret", "order_1", "pay_1", want))
	assert.False(t, VerifySignature("test_secret", "order_1", "pay_1", strings.ToUpper(want)))
	assert.False(t, VerifySignature("test_secret", "order_1", "pay_2", want))
	assert.False(t, VerifySignature("test_secret", "order_1", "pay_1", want[:len(want)-1]+"0"))
	assert.False(t, VerifySignature("", "order_1", "pay_1", want))
}

func TestVerifyWebhookSignature(t *testing.T) {
	body := []byte(`{"event":"payment.captured"}`)
	sig := "4673dd707ef4c41b987cb7fefe1583142dc702388c93145b7814b9ad3d3c183e"
	assert.True(t, VerifyWebhookSignature("whsec", body, sig))
	assert.False(t, VerifyWebhookSignature("whsec", append(body, ' '), sig))
}

func TestParseWebhook(t *testing.T) {
	ev, err := ParseWebhook([]byte(`{
		"event": "payment.failed",
		"payload": {"payment": {"entity": {"id": "pay_9", "order_id": "order_9", "error_description": "card declined"}}}
	}`))
	require.NoError(t, err)
	assert.Equal(t, EventPaymentFailed, ev.Event)
	assert.Equal(t, "order_9", ev.GatewayOrderID)
	assert.Equal(t, "pay_9", ev.PaymentID)
	assert.Equal(t, "card declined", ev.Reason)
	assert.True(t, ev.Handled())

	ev, err = ParseWebhook([]byte(`{"event":"settlement.processed","payload":{}}`))
	require.NoError(t, err)
	assert.False(t, ev.Handled())
	assert.Empty(t, ev.GatewayOrderID)

	_, err = ParseWebhook([]byte(`not json`))
	assert.Error(t, err)
	_, err = ParseWebhook([]byte(`{"payload":{}}`))
	assert.Error(t, err)
	_, err = ParseWebhook([]byte(`{"event":"payment.captured"}`))
	assert.Error(t, err)
}

func TestRazorpayCreateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_key", user)
		assert.Equal(t, "rzp_secret", pass)
		assert.Equal(t, "/orders", r.URL.Path)

		var in OrderRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, int64(45050), in.Amount)

		_ = json.NewEncoder(w).Encode(GatewayOrder{ID: "order_abc", Amount: in.Amount, Currency: in.Currency, Receipt: in.Receipt, Status: "created"})
	}))
	defer srv.Close()

	client, err := NewRazorpayClient("rzp_key", "rzp_secret", srv.URL+"/")
	require.NoError(t, err)

	order, err := client.CreateOrder(context.Background(), OrderRequest{Amount: 45050, Currency: "INR", Receipt: "order_1"})
	require.NoError(t, err)
	assert.Equal(t, "order_abc", order.ID)
	assert.Equal(t, "created", order.Status)
}

func TestRazorpayCreateOrderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"description":"bad amount"}}`))
	}))
	defer srv.Close()

	client, err := NewRazorpayClient("k", "s", srv.URL)
	require.NoError(t, err)
	_, err = client.CreateOrder(context.Background(), OrderRequest{Amount: 1})
	assert.ErrorContains(t, err, "bad amount")

	_, err = NewRazorpayClient("", "", "")
	assert.ErrorIs(t, err, ErrGatewayUnavailable)
}

func TestTransitions(t *testing.T) {
	db := testutil.NewDB(t)
	user := models.User{Email: "a@b.com", Role: models.RoleUser}
	require.NoError(t, db.Create(&user).Error)

	newOrder := func(gatewayID string) *models.Order {
		o := &models.Order{UserID: user.ID, TotalAmount: 100, RazorpayOrderID: gatewayID, PaymentStatus: models.PaymentStatusPending}
		require.NoError(t, db.Create(o).Error)
		return o
	}

	t.Run("pending to paid then replay", func(t *testing.T) {
		o := newOrder("order_1")
		got, err := MarkPaid(db, o.ID, "pay_1", "sig")
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusPaid, got.PaymentStatus)
		assert.Equal(t, "pay_1", got.RazorpayPaymentID)

		got, err = MarkPaid(db, o.ID, "pay_1", "sig2")
		require.NoError(t, err)
		assert.Equal(t, "sig2", got.RazorpaySignature)

		_, err = MarkFailed(db, o.ID, "late failure")
		assert.ErrorIs(t, err, ErrAlreadyPaid)
	})

	t.Run("failed cannot become paid", func(t *testing.T) {
		o := newOrder("order_2")
		got, err := MarkFailedByGatewayOrder(db, "order_2", "declined")
		require.NoError(t, err)
		assert.Equal(t, models.PaymentStatusFailed, got.PaymentStatus)
		assert.Equal(t, "declined", got.FailureReason)

		got, err = MarkPaid(db, o.ID, "pay_2", "sig")
		assert.ErrorIs(t, err, ErrAlreadyFailed)
		assert.Equal(t, models.PaymentStatusFailed, got.PaymentStatus)
		assert.Empty(t, got.RazorpayPaymentID)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := MarkPaidByGatewayOrder(db, "order_missing", "pay")
		assert.ErrorIs(t, err, ErrOrderNotFound)
	})
}
