package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/7248-om/gshock12/auth"
	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Context keys set by the token middleware.
const (
	ContextUserID = "user_id"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// ValidateToken rejects requests without a valid session token. The role
// comes from the user's current row, not the token, so role changes apply
// immediately; tokens of deleted users are rejected.
func ValidateToken(tokens *auth.TokenIssuer, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := extractToken(c)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			return
		}

		claims, err := tokens.Parse(raw)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		user, err := currentUser(db, claims.Subject)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "User no longer exists"})
			return
		}
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to load user", err)
			return
		}

		setIdentity(c, user)
		c.Next()
	}
}

// OptionalToken attaches the caller's identity when a valid token is present
// and otherwise lets the request through as a guest.
func OptionalToken(tokens *auth.TokenIssuer, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := extractToken(c); raw != "" {
			if claims, err := tokens.Parse(raw); err == nil {
				if user, err := currentUser(db, claims.Subject); err == nil {
					setIdentity(c, user)
				}
			}
		}
		c.Next()
	}
}

// RequireAdmin must run after ValidateToken.
func RequireAdmin(c *gin.Context) {
	if _, ok := c.Get(ContextUserID); !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if c.GetString(ContextRole) != string(models.RoleAdmin) {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden - admin access required"})
		return
	}
	c.Next()
}

// UserID returns the authenticated user id, or "" for guests.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

func IsAdmin(c *gin.Context) bool {
	return c.GetString(ContextRole) == string(models.RoleAdmin)
}

func currentUser(db *gorm.DB, id string) (*models.User, error) {
	if id == "" {
		return nil, gorm.ErrRecordNotFound
	}
	var user models.User
	if err := db.Select("id", "email", "role").First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func setIdentity(c *gin.Context, user *models.User) {
	c.Set(ContextUserID, user.ID)
	c.Set(ContextEmail, user.Email)
	c.Set(ContextRole, string(user.Role))
}

// extractToken reads "Authorization: Bearer <token>"; browsers cannot set
// headers on websocket upgrades so ?token= is accepted as well.
func extractToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header != "" {
		if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
			return strings.TrimSpace(header[7:])
		}
		return strings.TrimSpace(header)
	}
	return c.Query("token")
}
