package routes

import (
	userControllers "github.com/7248-om/gshock12/controllers/user"
	"github.com/7248-om/gshock12/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes registers "/api/users/*". Requires a session token.
func SetupUserRoutes(api *gin.RouterGroup, d Dependencies) {
	userGroup := api.Group("/users")
	userGroup.Use(d.authed())
	{
		// ──────────────── Own profile ────────────────
		userGroup.GET("/me", userControllers.GetMe(d.DB))
		userGroup.PUT("/me", userControllers.UpdateMe(d.DB))

		// ──────────────── Admin ────────────────
		userGroup.GET("", middleware.RequireAdmin, userControllers.GetAllUsers(d.DB))
		userGroup.PUT("/:id/role", middleware.RequireAdmin, userControllers.UpdateUserRole(d.DB))
	}
}
