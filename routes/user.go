package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/PKoev99/VenomGames/controllers/cart"
	orderControllers "github.com/PKoev99/VenomGames/controllers/order"
	reviewControllers "github.com/PKoev99/VenomGames/controllers/review"
	userControllers "github.com/PKoev99/VenomGames/controllers/user"
	"github.com/PKoev99/VenomGames/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, svcs Services, jwtSecret string, feed *orderControllers.OrderFeed) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken(jwtSecret))
	{
		// Profile
		userGroup.GET("/", userControllers.GetProfile(svcs.Users))
		userGroup.PUT("/", userControllers.UpdateProfile(svcs.Users))

		// Shopping cart
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(svcs.Cart))
			cartGroup.GET("/count", cartControllers.GetItemCount(svcs.Cart))
			cartGroup.POST("/items", cartControllers.AddItem(svcs.Cart))
			cartGroup.PUT("/items/:item_id", cartControllers.UpdateItem(svcs.Cart))
			cartGroup.DELETE("/items/:item_id", cartControllers.RemoveItem(svcs.Cart))
			cartGroup.POST("/checkout", cartControllers.Checkout(svcs.Cart, feed))
		}

		// Order history
		userGroup.GET("/orders", orderControllers.GetUserOrders(svcs.Orders))
		userGroup.GET("/orders/:id", orderControllers.GetOrderByID(svcs.Orders))

		// Reviews
		userGroup.POST("/reviews", reviewControllers.CreateReview(svcs.Reviews))
		userGroup.PUT("/reviews/:id", reviewControllers.UpdateReview(svcs.Reviews))
		userGroup.DELETE("/reviews/:id", reviewControllers.DeleteReview(svcs.Reviews))
	}
}
