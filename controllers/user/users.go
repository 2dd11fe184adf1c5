package userControllers

import (
	"net/http"
	"strings"

	"github.com/7248-om/gshock12/middleware"
	"github.com/7248-om/gshock12/models"
	"github.com/7248-om/gshock12/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpdateUserInput struct {
	Name    *string `json:"name"`
	Picture *string `json:"picture"`
}

type UpdateRoleInput struct {
	Role string `json:"role" binding:"required"`
}

// GET /users/me
func GetMe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, "id = ?", middleware.UserID(c)).Error; err != nil {
			response.StoreError(c, "User not found", err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// GET /users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "email", "name", "role", "picture", "created_at", "updated_at").
			Order("created_at desc").
			Find(&users).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to fetch users", err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// PUT /users/me
func UpdateMe(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := db.First(&user, "id = ?", middleware.UserID(c)).Error; err != nil {
			response.StoreError(c, "User not found", err)
			return
		}

		var input UpdateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}

		updates := make(map[string]interface{})
		if input.Name != nil {
			if strings.TrimSpace(*input.Name) == "" {
				response.BadRequest(c, "name cannot be empty")
				return
			}
			updates["name"] = strings.TrimSpace(*input.Name)
		}
		if input.Picture != nil {
			updates["picture"] = *input.Picture
		}

		if len(updates) > 0 {
			if err := db.Model(&user).Updates(updates).Error; err != nil {
				response.Error(c, http.StatusInternalServerError, "Failed to update user", err)
				return
			}
		}
		c.JSON(http.StatusOK, user)
	}
}

// PUT /users/:id/role
func UpdateUserRole(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input UpdateRoleInput
		if err := c.ShouldBindJSON(&input); err != nil || !models.ValidRole(input.Role) {
			response.BadRequest(c, "role must be one of: user, admin")
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", c.Param("id")).Error; err != nil {
			response.StoreError(c, "User not found", err)
			return
		}
		if err := db.Model(&user).Update("role", input.Role).Error; err != nil {
			response.Error(c, http.StatusInternalServerError, "Failed to update role", err)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
