package routes

import (
	"canteen-api/handlers"
	"canteen-api/lifecycle"
	"canteen-api/middleware"
	"canteen-api/models"
	"canteen-api/queueview"
	"canteen-api/repository"
	"canteen-api/token"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes wires the repositories, lifecycle manager and handlers onto
// the router. Everything hangs off the injected db handle.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	orderRepo := repository.NewOrderRepository(db)
	userRepo := repository.NewUserRepository(db)

	allocator := token.NewAllocator(orderRepo)
	manager := lifecycle.NewManager(orderRepo, allocator)
	projector := queueview.NewProjector(orderRepo)

	authHandler := handlers.NewAuthHandler(userRepo)
	orderHandler := handlers.NewOrderHandler(manager, orderRepo)
	adminHandler := handlers.NewAdminHandler(orderRepo)
	queueHandler := handlers.NewQueueHandler(projector)
	menuHandler := handlers.NewMenuHandler(db)

	// ── Auth ───────────────────────────────────────────────────────
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// ── API consumed by the frontend ───────────────────────────────
	api := r.Group("/api")
	{
		api.GET("/menu", menuHandler.List)
		api.GET("/state-machine", handlers.GetStateMachineInfo)

		api.POST("/orders", orderHandler.Create)
		api.GET("/orders/token/:token", orderHandler.GetByToken)
		api.PUT("/orders/:id/status", orderHandler.UpdateStatus)
		api.PUT("/orders/:id/payment", orderHandler.UpdatePayment)
		api.DELETE("/orders/:id", orderHandler.Delete)

		api.GET("/user/orders/:userId", orderHandler.ListUserOrders)
		api.GET("/user/:userId", authHandler.GetUser)

		api.GET("/queue/:token", queueHandler.Status)

		api.GET("/admin/orders", adminHandler.ListOrders)
		api.GET("/admin/statistics", adminHandler.Statistics)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", authHandler.GetProfile)
	}

	// ── Kitchen staff routes ───────────────────────────────────────
	kitchen := r.Group("/api/kitchen")
	kitchen.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleKitchen, models.RoleAdmin))
	{
		kitchen.GET("/orders", adminHandler.KitchenOrders)
	}
}
