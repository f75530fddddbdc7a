package handlers

import (
	"net/http"

	"canteen-api/lifecycle"
	"canteen-api/repository"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	orders *repository.OrderRepository
}

func NewAdminHandler(orders *repository.OrderRepository) *AdminHandler {
	return &AdminHandler{orders: orders}
}

// ListOrders returns all orders, newest first, with items parsed from the
// stored text. ?view=kitchen narrows to paid-and-unfinished orders for the
// kitchen screen; ?view=payments narrows to paid orders for reconciliation.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
		return
	}

	switch c.Query("view") {
	case "kitchen":
		orders = lifecycle.FilterKitchen(orders)
	case "payments":
		orders = lifecycle.FilterPayments(orders)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

// KitchenOrders returns the orders the kitchen screen works through:
// paid for and still somewhere in the preparation pipeline.
func (h *AdminHandler) KitchenOrders(c *gin.Context) {
	orders, err := h.orders.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch orders"})
		return
	}
	orders = lifecycle.FilterKitchen(orders)
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(orders), "orders": orders})
}

// Statistics returns the admin dashboard aggregates
func (h *AdminHandler) Statistics(c *gin.Context) {
	stats, err := h.orders.AggregateStatistics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch statistics"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "statistics": stats})
}
