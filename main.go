package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/brewluxe/brewluxe-api/config"
	"github.com/brewluxe/brewluxe-api/controllers"
	"github.com/brewluxe/brewluxe-api/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	// Basic logging
	log.Println("Starting BrewLuxe API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to the store; failure at startup is fatal
	db, err := config.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Create tables if absent
	if err := migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	router := setupRouter(db)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	// Close the store connection on interrupt; in-flight requests are not awaited
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		} else {
			log.Println("Database connection closed")
		}
	}
}

// migrate creates the three tables when they do not already exist
func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.MenuItem{},
		&models.Product{},
		&models.Order{},
	)
}

// setupRouter assembles the API routes around a store connection
func setupRouter(db *gorm.DB) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	menu := controllers.NewMenuController(db)
	products := controllers.NewProductController(db)
	orders := controllers.NewOrderController(db)
	admin := controllers.NewAdminController(db)

	api := router.Group("/api")
	{
		api.GET("/menu", menu.ListMenuItems)
		api.GET("/menu/:id", menu.GetMenuItem)
		api.POST("/menu", menu.CreateMenuItem)
		api.PUT("/menu/:id", menu.UpdateMenuItem)
		api.DELETE("/menu/:id", menu.DeleteMenuItem)

		api.GET("/products", products.ListProducts)
		api.GET("/products/:id", products.GetProduct)
		api.POST("/products", products.CreateProduct)
		api.PUT("/products/:id", products.UpdateProduct)
		api.DELETE("/products/:id", products.DeleteProduct)

		api.GET("/orders", orders.ListOrders)
		api.POST("/orders", orders.CreateOrder)

		api.POST("/admin/seed", admin.Seed)
		api.GET("/admin/stats", admin.Stats)

		api.GET("/health", controllers.HealthCheck)
	}

	return router
}
