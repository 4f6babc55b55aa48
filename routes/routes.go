package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/PKoev99/VenomGames/config"
	orderControllers "github.com/PKoev99/VenomGames/controllers/order"
	"github.com/PKoev99/VenomGames/services"
)

// Services bundles everything the route groups need.
type Services struct {
	Users      *services.UserService
	Games      *services.GameService
	Categories *services.CategoryService
	Reviews    *services.ReviewService
	Orders     *services.OrderService
	Cart       *services.CartService
}

// SetupRoutes is the single entry point that wires up the public, user,
// and admin route groups.
func SetupRoutes(r *gin.Engine, svcs Services, auth config.AuthConfig) {
	feed := orderControllers.NewOrderFeed()

	// Public routes (no middleware)
	SetupAuthRoutes(r, svcs)
	SetupPublicRoutes(r, svcs)
	r.GET("/orders/ws", feed.Handler())

	// User routes (JWT-protected)
	SetupUserRoutes(r, svcs, auth.JWTSecret, feed)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, svcs, auth.AdminAPIKey)
}
