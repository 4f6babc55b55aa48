package orderControllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PKoev99/VenomGames/services"
)

// GET /admin/orders
// Optional filters: user_id, start_date, end_date (RFC 3339 dates).
func GetAllOrders(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var q services.OrderQuery
		q.UserID = c.Query("user_id")

		if from, to := c.Query("start_date"), c.Query("end_date"); from != "" && to != "" {
			start, err1 := time.Parse(time.RFC3339, from)
			end, err2 := time.Parse(time.RFC3339, to)
			if err1 != nil || err2 != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date range"})
				return
			}
			q.StartDate = &start
			q.EndDate = &end
		}

		orders, err := svc.Search(c.Request.Context(), q)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders
func GetUserOrders(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		orders, err := svc.GetByUser(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders/:id
func GetOrderByID(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		order, err := svc.GetByID(c.Request.Context(), uint(id))
		if err != nil {
			if services.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// DELETE /admin/orders/:id
func DeleteOrder(svc *services.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		if err := svc.Delete(c.Request.Context(), uint(id)); err != nil {
			if services.IsNotFound(err) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
