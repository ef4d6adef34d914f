package controllers

import (
	"net/http"

	"github.com/brewluxe/brewluxe-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// StoreStats is the aggregate counters payload for GET /api/admin/stats
type StoreStats struct {
	MenuItemCount int64   `json:"menuItemCount"`
	ProductCount  int64   `json:"productCount"`
	OrderCount    int64   `json:"orderCount"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// AdminController handles the /api/admin routes
type AdminController struct {
	db *gorm.DB
}

// NewAdminController creates an admin controller bound to the given store connection
func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{db: db}
}

// Seed handles POST /api/admin/seed - wipes the catalog tables and reloads
// the fixture set. Runs as independent statements, not a transaction.
// Orders are left untouched.
func (ac *AdminController) Seed(c *gin.Context) {
	if err := ac.db.Exec("DELETE FROM menu_items").Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := ac.db.Exec("DELETE FROM products").Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	menuItems := models.MenuItemFixtures()
	if err := ac.db.Create(&menuItems).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	products := models.ProductFixtures()
	if err := ac.db.Create(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Database seeded with sample data",
		"menuItems": len(menuItems),
		"products":  len(products),
	})
}

// Stats handles GET /api/admin/stats - one aggregate query over the three tables.
// Revenue is coalesced to 0 so an empty orders table never yields null.
func (ac *AdminController) Stats(c *gin.Context) {
	var stats StoreStats
	err := ac.db.Raw(`SELECT
		(SELECT COUNT(*) FROM menu_items) AS menu_item_count,
		(SELECT COUNT(*) FROM products) AS product_count,
		(SELECT COUNT(*) FROM orders) AS order_count,
		(SELECT COALESCE(SUM(total), 0) FROM orders) AS total_revenue`).Scan(&stats).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}
