package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var ErrGatewayUnavailable = errors.New("payment gateway is not configured")

// OrderRequest is the remote order to create; Amount is in minor units (paise).
type OrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Gateway is the remote payment provider.
type Gateway interface {
	CreateOrder(ctx context.Context, req OrderRequest) (*GatewayOrder, error)
	KeyID() string
	// Secret is the key used to sign checkout results.
	Secret() string
}

type RazorpayClient struct {
	keyID     string
	keySecret string
	apiURL    string
	http      *http.Client
}

func NewRazorpayClient(keyID, keySecret, apiURL string) (*RazorpayClient, error) {
	if keyID == "" || keySecret == "" {
		return nil, ErrGatewayUnavailable
	}
	if apiURL == "" {
		apiURL = "https://api.razorpay.com/v1"
	}
	return &RazorpayClient{
		keyID:     keyID,
		keySecret: keySecret,
		apiURL:    strings.TrimRight(apiURL, "/"),
		http:      &http.Client{Timeout: 15 * time.Second},
	}, nil
}

func (r *RazorpayClient) KeyID() string  { return r.keyID }
func (r *RazorpayClient) Secret() string { return r.keySecret }

// CreateOrder posts to /orders and returns the gateway order.
func (r *RazorpayClient) CreateOrder(ctx context.Context, in OrderRequest) (*GatewayOrder, error) {
	jsonData, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.apiURL+"/orders", bytes.NewReader(jsonData))
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(r.keyID, r.keySecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach Razorpay: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("razorpay API error (%d): %s", resp.StatusCode, string(body))
	}

	var order GatewayOrder
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("failed to parse Razorpay response: %w", err)
	}
	if order.ID == "" {
		return nil, errors.New("razorpay returned empty order id")
	}
	return &order, nil
}
