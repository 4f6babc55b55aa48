package gameControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PKoev99/VenomGames/services"
)

// GET /games
// Optional filters: search (title/description contains), category_id,
// min_price, max_price.
func GetGames(svc *services.GameService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q services.GameQuery
		q.Title = c.Query("search")

		if v := c.Query("category_id"); v != "" {
			id, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			q.CategoryID = uint(id)
		}
		if v := c.Query("min_price"); v != "" {
			p, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			q.MinPrice = &p
		}
		if v := c.Query("max_price"); v != "" {
			p, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			q.MaxPrice = &p
		}

		games, err := svc.Search(c.Request.Context(), q)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch games"})
			return
		}
		c.JSON(http.StatusOK, games)
	}
}

// GET /games/featured
func GetFeaturedGames(svc *services.GameService) gin.HandlerFunc {
	return func(c *gin.Context) {
		games, err := svc.GetFeatured(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured games"})
			return
		}
		c.JSON(http.StatusOK, games)
	}
}

// GET /games/:id
func GetGameByID(svc *services.GameService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
			return
		}

		game, err := svc.GetByID(c.Request.Context(), uint(id))
		if err != nil {
			if services.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch game"})
			return
		}
		c.JSON(http.StatusOK, game)
	}
}

// POST /admin/games
func CreateGame(svc *services.GameService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input services.GameInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		game, err := svc.Create(c.Request.Context(), input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game"})
			return
		}
		c.JSON(http.StatusCreated, game)
	}
}

// PUT /admin/games/:id
func UpdateGame(svc *services.GameService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
			return
		}

		var input services.GameInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		game, err := svc.Update(c.Request.Context(), uint(id), input)
		if err != nil {
			if services.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update game"})
			return
		}
		c.JSON(http.StatusOK, game)
	}
}

// DELETE /admin/games/:id
func DeleteGame(svc *services.GameService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game id"})
			return
		}

		if err := svc.Delete(c.Request.Context(), uint(id)); err != nil {
			if services.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Game deleted successfully"})
	}
}
