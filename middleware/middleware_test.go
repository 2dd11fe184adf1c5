package middleware

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/7248-om/gshock12/auth"
	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func whoami(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"id": UserID(c), "admin": IsAdmin(c)})
}

func get(r http.Handler, path, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedUsers(t *testing.T) *gorm.DB {
	t.Helper()
	db := testutil.NewDB(t)
	require.NoError(t, db.Create(&models.User{Base: models.Base{ID: "u1"}, Email: "u@x.com", Role: models.RoleUser}).Error)
	require.NoError(t, db.Create(&models.User{Base: models.Base{ID: "a1"}, Email: "a@x.com", Role: models.RoleAdmin}).Error)
	return db
}

func TestValidateToken(t *testing.T) {
	tokens := auth.NewTokenIssuer("secret", time.Hour)
	db := seedUsers(t)
	r := testutil.NewRouter(t)
	r.GET("/me", ValidateToken(tokens, db), whoami)
	r.GET("/admin", ValidateToken(tokens, db), RequireAdmin, whoami)

	user, err := tokens.Issue("u1", "u@x.com", "user")
	require.NoError(t, err)
	admin, err := tokens.Issue("a1", "a@x.com", "admin")
	require.NoError(t, err)
	forged, err := auth.NewTokenIssuer("other", time.Hour).Issue("a1", "a@x.com", "admin")
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/me", "Bearer "+forged).Code)

	w := get(r, "/me", "Bearer "+user)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"u1","admin":false}`, w.Body.String())

	// websocket clients pass the token in the query string
	assert.Equal(t, http.StatusOK, get(r, "/me?token="+user, "").Code)

	w = get(r, "/admin", "Bearer "+user)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error":"Forbidden - admin access required"}`, w.Body.String())
	assert.Equal(t, http.StatusOK, get(r, "/admin", "bearer "+admin).Code)
}

func TestValidateTokenUsesCurrentRole(t *testing.T) {
	tokens := auth.NewTokenIssuer("secret", time.Hour)
	db := seedUsers(t)
	r := testutil.NewRouter(t)
	r.GET("/admin", ValidateToken(tokens, db), RequireAdmin, whoami)

	admin, err := tokens.Issue("a1", "a@x.com", "admin")
	require.NoError(t, err)
	user, err := tokens.Issue("u1", "u@x.com", "user")
	require.NoError(t, err)
	ghost, err := tokens.Issue("gone", "g@x.com", "admin")
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", "a1").Update("role", models.RoleUser).Error)
	require.NoError(t, db.Model(&models.User{}).Where("id = ?", "u1").Update("role", models.RoleAdmin).Error)

	assert.Equal(t, http.StatusForbidden, get(r, "/admin", "Bearer "+admin).Code)
	assert.Equal(t, http.StatusOK, get(r, "/admin", "Bearer "+user).Code)

	w := get(r, "/admin", "Bearer "+ghost)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"User no longer exists"}`, w.Body.String())
}

func TestOptionalToken(t *testing.T) {
	tokens := auth.NewTokenIssuer("secret", time.Hour)
	r := testutil.NewRouter(t)
	r.GET("/chat", OptionalToken(tokens, seedUsers(t)), whoami)

	user, err := tokens.Issue("u1", "u@x.com", "user")
	require.NoError(t, err)
	ghost, err := tokens.Issue("gone", "g@x.com", "user")
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"","admin":false}`, get(r, "/chat", "").Body.String())
	assert.JSONEq(t, `{"id":"","admin":false}`, get(r, "/chat", "Bearer junk").Body.String())
	assert.JSONEq(t, `{"id":"u1","admin":false}`, get(r, "/chat", "Bearer "+user).Body.String())
	assert.JSONEq(t, `{"id":"","admin":false}`, get(r, "/chat", "Bearer "+ghost).Body.String())
}

func TestRequireAdminWithoutIdentity(t *testing.T) {
	r := testutil.NewRouter(t)
	r.GET("/admin", RequireAdmin, whoami)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/admin", "").Code)
}

func TestValidateAPIKey(t *testing.T) {
	r := testutil.NewRouter(t)
	r.GET("/open", ValidateAPIKey(""), whoami)
	r.GET("/ops", ValidateAPIKey("k"), whoami)

	assert.Equal(t, http.StatusOK, get(r, "/open", "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "/ops", "").Code)

	req := httptest.NewRequest(http.MethodGet, "/ops", nil)
	req.Header.Set("X-API-KEY", "k")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	r := testutil.NewRouter(t)
	r.GET("/chat", rl.Handler(), whoami)
	r.GET("/as/:id", func(c *gin.Context) { c.Set(ContextUserID, c.Param("id")) }, rl.Handler(), whoami)

	assert.Equal(t, http.StatusOK, get(r, "/chat", "").Code)
	assert.Equal(t, http.StatusOK, get(r, "/chat", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "/chat", "").Code)

	// a signed-in user has a separate bucket from the shared IP
	assert.Equal(t, http.StatusOK, get(r, "/as/u1", "").Code)

	rl.Cleanup(1)
	assert.Equal(t, http.StatusOK, get(r, "/chat", "").Code)
}

func TestRazorpayWebhookAuth(t *testing.T) {
	r := testutil.NewRouter(t)
	r.POST("/hook", RazorpayWebhookAuth("whsec"), func(c *gin.Context) {
		raw, _ := c.Get(ContextRawBody)
		body, _ := io.ReadAll(c.Request.Body)
		c.JSON(http.StatusOK, gin.H{"raw": string(raw.([]byte)), "body": string(body)})
	})
	r.POST("/unconfigured", RazorpayWebhookAuth(""), whoami)

	payload := `{"event":"payment.captured"}`
	mac := hmac.New(sha256.New, []byte("whsec"))
	mac.Write([]byte(payload))
	sig := hex.EncodeToString(mac.Sum(nil))

	post := func(path, sig string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(payload))
		req.Header.Set("X-Razorpay-Signature", sig)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := post("/hook", sig)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"raw":`+strconv.Quote(payload)+`,"body":`+strconv.Quote(payload)+`}`, w.Body.String())

	assert.Equal(t, http.StatusForbidden, post("/hook", "deadbeef").Code)
	assert.Equal(t, http.StatusServiceUnavailable, post("/unconfigured", sig).Code)

	huge := bytes.Repeat([]byte("a"), MaxWebhookBody+1)
	req := httptest.NewRequest(http.MethodPost, "/hook", bytes.NewReader(huge))
	req.Header.Set("X-Razorpay-Signature", sig)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
