package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/7248-om/gshock12/logger"
	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type loginRequest struct {
	IDToken string `json:"idToken"`
}

// LoginHandler exchanges a Firebase ID token for a local session token,
// creating the user on first login.
func LoginHandler(db *gorm.DB, verifier IdentityVerifier, tokens *TokenIssuer, adminEmails []string) gin.HandlerFunc {
	admins := make(map[string]bool, len(adminEmails))
	for _, e := range adminEmails {
		admins[strings.ToLower(e)] = true
	}

	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.IDToken) == "" {
			response.BadRequest(c, "idToken is required")
			return
		}
		if verifier == nil {
			response.Error(c, http.StatusServiceUnavailable, "Login is not configured", nil)
			return
		}

		id, err := verifier.Verify(c.Request.Context(), req.IDToken)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid Firebase ID token", err)
			return
		}
		email := strings.ToLower(strings.TrimSpace(id.Email))
		if email == "" {
			response.BadRequest(c, "Token has no email claim")
			return
		}

		user, err := upsertUser(db, id, email, admins[email])
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to save user", err)
			return
		}

		token, err := tokens.Issue(user.ID, user.Email, string(user.Role))
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to issue token", err)
			return
		}

		logger.WithComponent("auth").WithField("user_id", user.ID).Info("user logged in")
		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"token":   token,
			"user":    user,
		})
	}
}

func upsertUser(db *gorm.DB, id *Identity, email string, isAdmin bool) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		name := id.Name
		if name == "" {
			name = strings.SplitN(email, "@", 2)[0]
		}
		user = models.User{
			Email:       email,
			Name:        name,
			Role:        models.RoleUser,
			FirebaseUID: id.UID,
			Picture:     id.Picture,
		}
		if isAdmin {
			user.Role = models.RoleAdmin
		}
		if err := db.Create(&user).Error; err != nil {
			return nil, err
		}
		return &user, nil

	case err != nil:
		return nil, err
	}

	updates := map[string]interface{}{}
	if user.FirebaseUID == "" && id.UID != "" {
		updates["firebase_uid"] = id.UID
	}
	if user.Picture == "" && id.Picture != "" {
		updates["picture"] = id.Picture
	}
	if isAdmin && user.Role != models.RoleAdmin {
		updates["role"] = string(models.RoleAdmin)
	}
	if len(updates) > 0 {
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &user, nil
}
