package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PKoev99/VenomGames/services"
)

type AddItemInput struct {
	GameID   uint `json:"game_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1"`
}

type UpdateItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// GET /user/cart
func GetCart(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		cart, err := svc.GetActiveCart(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// POST /user/cart/items
func AddItem(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := svc.AddItem(c.Request.Context(), userID, input.GameID, input.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		cart, err := svc.GetActiveCart(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, cart)
	}
}

// PUT /user/cart/items/:item_id
func UpdateItem(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item_id"})
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if err := svc.UpdateItemQuantity(c.Request.Context(), userID, uint(itemID), input.Quantity); err != nil {
			if services.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item updated"})
	}
}

// DELETE /user/cart/items/:item_id
func RemoveItem(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item_id"})
			return
		}

		removed, err := svc.RemoveItem(c.Request.Context(), userID, uint(itemID))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}
		if !removed {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// GET /user/cart/count
func GetItemCount(svc *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		count, err := svc.GetCartItemCount(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count cart items"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}

// Broadcaster receives each completed order summary, for the live feed.
type Broadcaster interface {
	Broadcast(v any)
}

// POST /user/cart/checkout
func Checkout(svc *services.CartService, feed Broadcaster) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		summary, err := svc.CompleteOrder(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete order"})
			return
		}

		if feed != nil {
			feed.Broadcast(summary)
		}
		c.JSON(http.StatusOK, summary)
	}
}
