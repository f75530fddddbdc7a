package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"canteen-api/lifecycle"
	"canteen-api/models"
	"canteen-api/repository"
	"canteen-api/statemachine"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	manager *lifecycle.Manager
	orders  *repository.OrderRepository
}

func NewOrderHandler(manager *lifecycle.Manager, orders *repository.OrderRepository) *OrderHandler {
	return &OrderHandler{manager: manager, orders: orders}
}

type CreateOrderRequest struct {
	UserID      string             `json:"user_id" binding:"required"`
	UserName    string             `json:"user_name" binding:"required"`
	Items       []models.OrderItem `json:"items" binding:"required,min=1"`
	Amount      float64            `json:"amount" binding:"required"`
	PaymentType models.PaymentType `json:"payment_type" binding:"required"`
}

// Create places a new order and returns the queue token with an order
// snapshot for the confirmation screen.
func (h *OrderHandler) Create(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "All order fields are required"})
		return
	}

	order, err := h.manager.CreateOrder(req.UserID, req.UserName, req.Items, req.Amount, req.PaymentType)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrNoItems):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Order items are required"})
		case errors.Is(err, lifecycle.ErrInvalidPaymentType):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment type"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to place order"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   order.Token,
		"message": "Order placed successfully",
		"order":   order,
	})
}

// ListUserOrders returns a user's order history, newest first
func (h *OrderHandler) ListUserOrders(c *gin.Context) {
	orders, err := h.orders.ListByUser(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch user orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders})
}

// GetByToken returns the full order behind a queue token. A missing token is
// a success:false body, not a 404: clients poll before the order exists.
func (h *OrderHandler) GetByToken(c *gin.Context) {
	order, err := h.orders.GetByToken(c.Param("token"))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

type updateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateStatus moves an order along the preparation pipeline
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Status is required"})
		return
	}

	if err := h.manager.UpdateOrderStatus(id, req.Status); err != nil {
		var transition *statemachine.InvalidTransitionError
		switch {
		case errors.Is(err, lifecycle.ErrUnknownOrderStatus):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
		case errors.As(err, &transition):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": transition.Error()})
		case errors.Is(err, repository.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated successfully"})
}

type updatePaymentRequest struct {
	PaymentStatus models.PaymentStatus `json:"payment_status" binding:"required"`
}

// UpdatePayment sets the billing state of an order
func (h *OrderHandler) UpdatePayment(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req updatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment status is required"})
		return
	}

	if err := h.manager.UpdatePaymentStatus(id, req.PaymentStatus); err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrUnknownPaymentStatus):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid payment status"})
		case errors.Is(err, repository.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update payment status"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment status updated successfully"})
}

// Delete hard-deletes an order. Administrative escape hatch.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	if err := h.orders.Delete(id); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to delete order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order deleted successfully"})
}

// orderID parses the :id path param. A non-numeric id can't match any order,
// so it reports the same 404 the lookup would.
func orderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		return 0, false
	}
	return uint(id), true
}
