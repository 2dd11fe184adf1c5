package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/7248-om/gshock12/validation"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// NewRouter returns a bare gin engine in test mode with the custom binding rules installed.
func NewRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.Register())
	return gin.New()
}

// As injects an authenticated identity the way the token middleware would.
func As(userID, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", role)
		c.Next()
	}
}

// Do performs a request; a non-nil body that is not an io.Reader is sent as JSON.
func Do(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	isJSON := false
	switch b := body.(type) {
	case nil:
	case io.Reader:
		reader = b
	case string:
		reader = bytes.NewBufferString(b)
		isJSON = true
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
		isJSON = true
	}

	req := httptest.NewRequest(method, path, reader)
	if isJSON {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Decode unmarshals a recorder body into v.
func Decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}
