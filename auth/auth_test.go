package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	ids map[string]*Identity
}

func (f *fakeVerifier) Verify(_ context.Context, idToken string) (*Identity, error) {
	if id, ok := f.ids[idToken]; ok {
		return id, nil
	}
	return nil, errors.New("token rejected")
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)
	signed, err := issuer.Issue("u-1", "a@b.com", "admin")
	require.NoError(t, err)

	claims, err := issuer.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.Subject)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)

	_, err = NewTokenIssuer("other", time.Hour).Parse(signed)
	assert.Error(t, err)
}

func TestTokenExpired(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Minute)
	issuer.now = func() time.Time { return time.Now().Add(-time.Hour) }
	signed, err := issuer.Issue("u-1", "a@b.com", "user")
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret", time.Minute).Parse(signed)
	assert.Error(t, err)
}

func TestLoginHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := testutil.NewDB(t)
	issuer := NewTokenIssuer("secret", time.Hour)
	verifier := &fakeVerifier{ids: map[string]*Identity{
		"good":    {UID: "fb-1", Email: "Guest@Cafe.com"},
		"admin":   {UID: "fb-2", Email: "owner@cafe.com", Name: "Owner"},
		"noemail": {UID: "fb-3"},
	}}

	r := gin.New()
	r.POST("/api/auth/login", LoginHandler(db, verifier, issuer, []string{"owner@cafe.com"}))

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantRole   string
		wantName   string
	}{
		{name: "missing token", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "rejected token", body: `{"idToken":"bad"}`, wantStatus: http.StatusUnauthorized},
		{name: "no email claim", body: `{"idToken":"noemail"}`, wantStatus: http.StatusBadRequest},
		{name: "new user", body: `{"idToken":"good"}`, wantStatus: http.StatusOK, wantRole: "user", wantName: "guest"},
		{name: "returning user", body: `{"idToken":"good"}`, wantStatus: http.StatusOK, wantRole: "user", wantName: "guest"},
		{name: "admin email", body: `{"idToken":"admin"}`, wantStatus: http.StatusOK, wantRole: "admin", wantName: "Owner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			require.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus != http.StatusOK {
				return
			}

			var resp struct {
				Token string      `json:"token"`
				User  models.User `json:"user"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, models.Role(tt.wantRole), resp.User.Role)
			assert.Equal(t, tt.wantName, resp.User.Name)

			claims, err := issuer.Parse(resp.Token)
			require.NoError(t, err)
			assert.Equal(t, resp.User.ID, claims.Subject)
		})
	}

	var count int64
	db.Model(&models.User{}).Where("email = ?", "guest@cafe.com").Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestLoginWithoutVerifier(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", LoginHandler(testutil.NewDB(t), nil, NewTokenIssuer("s", time.Hour), nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"idToken":"x"}`))
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
