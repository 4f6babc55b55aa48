package routes

import (
	"github.com/gin-gonic/gin"

	categoryControllers "github.com/PKoev99/VenomGames/controllers/category"
	gameControllers "github.com/PKoev99/VenomGames/controllers/game"
	reviewControllers "github.com/PKoev99/VenomGames/controllers/review"
)

// SetupPublicRoutes registers the browsing endpoints: catalog, categories
// and reviews need no authentication.
func SetupPublicRoutes(r *gin.Engine, svcs Services) {
	games := r.Group("/games")
	{
		games.GET("/", gameControllers.GetGames(svcs.Games))
		games.GET("/featured", gameControllers.GetFeaturedGames(svcs.Games))
		games.GET("/:id", gameControllers.GetGameByID(svcs.Games))
		games.GET("/:id/reviews", reviewControllers.GetGameReviews(svcs.Reviews))
	}

	categories := r.Group("/categories")
	{
		categories.GET("/", categoryControllers.GetAllCategories(svcs.Categories))
		categories.GET("/:id", categoryControllers.GetCategoryByID(svcs.Categories))
	}

	r.GET("/reviews", reviewControllers.GetReviews(svcs.Reviews))
}
