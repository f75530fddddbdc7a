package handlers

import (
	"net/http"

	"canteen-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuHandler struct {
	db *gorm.DB
}

func NewMenuHandler(db *gorm.DB) *MenuHandler {
	return &MenuHandler{db: db}
}

// List returns the canteen menu (public). Filter by category or veg.
func (h *MenuHandler) List(c *gin.Context) {
	var items []models.MenuItem
	query := h.db.Where("is_available = ?", true)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if isVeg := c.Query("is_veg"); isVeg == "true" {
		query = query.Where("is_veg = ?", true)
	}

	if err := query.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to fetch menu"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(items), "menu": items})
}
