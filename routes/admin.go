package routes

import (
	"github.com/gin-gonic/gin"

	categoryControllers "github.com/PKoev99/VenomGames/controllers/category"
	gameControllers "github.com/PKoev99/VenomGames/controllers/game"
	orderControllers "github.com/PKoev99/VenomGames/controllers/order"
	userControllers "github.com/PKoev99/VenomGames/controllers/user"
	"github.com/PKoev99/VenomGames/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints, guarded by the
// admin API key.
func SetupAdminRoutes(r *gin.Engine, svcs Services, apiKey string) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey(apiKey))
	{
		// Catalog management
		admin.POST("/games", gameControllers.CreateGame(svcs.Games))
		admin.PUT("/games/:id", gameControllers.UpdateGame(svcs.Games))
		admin.DELETE("/games/:id", gameControllers.DeleteGame(svcs.Games))
		admin.GET("/games/export", gameControllers.ExportGamesToExcel(svcs.Games))

		admin.POST("/categories", categoryControllers.CreateCategory(svcs.Categories))
		admin.PUT("/categories/:id", categoryControllers.UpdateCategory(svcs.Categories))
		admin.DELETE("/categories/:id", categoryControllers.DeleteCategory(svcs.Categories))

		// Orders
		admin.GET("/orders", orderControllers.GetAllOrders(svcs.Orders))
		admin.DELETE("/orders/:id", orderControllers.DeleteOrder(svcs.Orders))

		// Users
		admin.GET("/users", userControllers.GetAllUsers(svcs.Users))
		admin.PUT("/users/:id/role", userControllers.AssignRole(svcs.Users))
	}
}
