package reviews

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
)

var ErrNotConfigured = errors.New("Missing GOOGLE_PLACE_ID or GOOGLE_API_KEY")

// Summary is what the site shows under the reviews section.
type Summary struct {
	Rating       *float64        `json:"rating"`
	TotalReviews int64           `json:"totalReviews"`
	Reviews      json.RawMessage `json:"reviews"`
}

// APIError is a non-OK status returned by the Places API.
type APIError struct {
	Status  string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("places api status %s: %s", e.Status, e.Message)
}

type Fetcher interface {
	Fetch(ctx context.Context) (*Summary, error)
}

// PlacesClient reads rating and reviews from the Places Details endpoint.
type PlacesClient struct {
	endpoint string
	placeID  string
	apiKey   string
	http     *http.Client
}

func NewPlacesClient(endpoint, placeID, apiKey string) *PlacesClient {
	return &PlacesClient{
		endpoint: endpoint,
		placeID:  placeID,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *PlacesClient) Fetch(ctx context.Context) (*Summary, error) {
	if p.placeID == "" || p.apiKey == "" {
		return nil, ErrNotConfigured
	}

	q := url.Values{}
	q.Set("place_id", p.placeID)
	q.Set("fields", "rating,reviews,user_ratings_total")
	q.Set("key", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return parseDetails(body)
}

func parseDetails(body []byte) (*Summary, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("places api returned invalid JSON")
	}
	doc := gjson.ParseBytes(body)

	if status := doc.Get("status").String(); status != "OK" {
		msg := doc.Get("error_message").String()
		if msg == "" {
			msg = "Google API error"
		}
		return nil, &APIError{Status: status, Message: msg}
	}

	result := doc.Get("result")
	s := &Summary{
		TotalReviews: result.Get("user_ratings_total").Int(),
		Reviews:      json.RawMessage("[]"),
	}
	if r := result.Get("rating"); r.Exists() && r.Float() != 0 {
		v := r.Float()
		s.Rating = &v
	}
	if revs := result.Get("reviews"); revs.IsArray() {
		s.Reviews = json.RawMessage(revs.Raw)
	}
	return s, nil
}
