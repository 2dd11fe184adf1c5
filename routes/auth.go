package routes

import (
	"github.com/7248-om/gshock12/auth"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers the public "/api/auth/*" endpoints.
func SetupAuthRoutes(api *gin.RouterGroup, d Dependencies) {
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", auth.LoginHandler(d.DB, d.Verifier, d.Tokens, d.Config.AdminEmailList()))
	}
}
