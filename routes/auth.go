package routes

import (
	"github.com/gin-gonic/gin"

	userControllers "github.com/PKoev99/VenomGames/controllers/user"
)

// SetupAuthRoutes registers registration and login.
func SetupAuthRoutes(r *gin.Engine, svcs Services) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", userControllers.Register(svcs.Users))
		auth.POST("/login", userControllers.Login(svcs.Users))
	}
}
