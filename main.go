package main

import (
	"log"
	"net/http"
	"os"

	"canteen-api/config"
	"canteen-api/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database
	db := config.InitDB(config.DBPath())

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Canteen Queue API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Canteen Queue Server is running",
			"roles":   []string{"student", "faculty", "admin", "kitchen"},
			"endpoints": []string{
				"POST /register - User registration",
				"POST /login - User login",
				"GET /api/menu - Canteen menu",
				"POST /api/orders - Create order",
				"GET /api/admin/orders - All orders (admin)",
				"GET /api/user/orders/:userId - User order history",
				"GET /api/orders/token/:token - Order by queue token",
				"GET /api/queue/:token - Queue status",
				"PUT /api/orders/:id/status - Update order status",
				"PUT /api/orders/:id/payment - Update payment status",
				"GET /api/admin/statistics - Dashboard statistics",
			},
		})
	})

	// Register all routes
	routes.SetupRoutes(r, db)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
