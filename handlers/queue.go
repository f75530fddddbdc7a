package handlers

import (
	"net/http"

	"canteen-api/queueview"

	"github.com/gin-gonic/gin"
)

type QueueHandler struct {
	queue *queueview.Projector
}

func NewQueueHandler(queue *queueview.Projector) *QueueHandler {
	return &QueueHandler{queue: queue}
}

// Status returns just the preparation state behind a token. Polling clients
// treat not_found as "not yet visible", so it's a 200, not an error.
func (h *QueueHandler) Status(c *gin.Context) {
	status, err := h.queue.StatusOf(c.Param("token"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to get queue status"})
		return
	}
	if !status.Found {
		c.JSON(http.StatusOK, gin.H{"success": false, "status": "not_found", "message": "Token not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": status.OrderStatus})
}
