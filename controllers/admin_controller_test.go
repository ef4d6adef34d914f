package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brewluxe/brewluxe-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAdminTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.MenuItem{}, &models.Product{}, &models.Order{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func setupAdminTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	ac := NewAdminController(db)
	router.POST("/api/admin/seed", ac.Seed)
	router.GET("/api/admin/stats", ac.Stats)

	return router
}

func TestSeed(t *testing.T) {
	db := setupAdminTestDB(t)
	router := setupAdminTestRouter(db)

	// Custom rows that the seed must wipe
	db.Create(&models.MenuItem{Name: "Custom Drink", Price: 9.99, Category: "custom"})
	db.Create(&models.Product{Name: "Custom Beans", Price: 29.99, Rating: 1})

	req, _ := http.NewRequest("POST", "/api/admin/seed", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, float64(8), response["menuItems"])
	assert.Equal(t, float64(6), response["products"])

	var menuCount, productCount int64
	db.Model(&models.MenuItem{}).Count(&menuCount)
	db.Model(&models.Product{}).Count(&productCount)
	assert.Equal(t, int64(8), menuCount)
	assert.Equal(t, int64(6), productCount)

	// Prior custom rows are gone
	var custom int64
	db.Model(&models.MenuItem{}).Where("name = ?", "Custom Drink").Count(&custom)
	assert.Equal(t, int64(0), custom)
}

func TestSeedIsRepeatable(t *testing.T) {
	db := setupAdminTestDB(t)
	router := setupAdminTestRouter(db)

	for i := 0; i < 2; i++ {
		req, _ := http.NewRequest("POST", "/api/admin/seed", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	var menuCount, productCount int64
	db.Model(&models.MenuItem{}).Count(&menuCount)
	db.Model(&models.Product{}).Count(&productCount)
	assert.Equal(t, int64(8), menuCount, "Seeding twice should still leave exactly 8 menu items")
	assert.Equal(t, int64(6), productCount, "Seeding twice should still leave exactly 6 products")
}

func TestSeedLeavesOrdersAlone(t *testing.T) {
	db := setupAdminTestDB(t)
	router := setupAdminTestRouter(db)

	db.Create(&models.Order{OrderNumber: "BRW-9001", CustomerName: "Keep Me", Items: `[]`, Total: 1.00, Status: "pending", OrderType: "pickup"})

	req, _ := http.NewRequest("POST", "/api/admin/seed", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	assert.Equal(t, int64(1), orderCount)
}

func TestStats(t *testing.T) {
	db := setupAdminTestDB(t)
	router := setupAdminTestRouter(db)

	t.Run("Empty store reports zeros, not null", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/api/admin/stats", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var stats StoreStats
		err := json.Unmarshal(w.Body.Bytes(), &stats)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), stats.MenuItemCount)
		assert.Equal(t, int64(0), stats.ProductCount)
		assert.Equal(t, int64(0), stats.OrderCount)
		assert.Equal(t, float64(0), stats.TotalRevenue)
	})

	t.Run("Counts and revenue reflect inserted rows", func(t *testing.T) {
		db.Create(&models.MenuItem{Name: "Espresso", Price: 3.50, Category: "espresso"})
		db.Create(&models.MenuItem{Name: "Latte", Price: 4.50, Category: "latte"})
		db.Create(&models.Product{Name: "Kenya AA", Price: 20.99, Rating: 5})
		db.Create(&models.Order{OrderNumber: "BRW-5001", CustomerName: "A", Items: `[]`, Total: 10.25, Status: "pending", OrderType: "pickup"})
		db.Create(&models.Order{OrderNumber: "BRW-5002", CustomerName: "B", Items: `[]`, Total: 4.75, Status: "pending", OrderType: "pickup"})

		req, _ := http.NewRequest("GET", "/api/admin/stats", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var stats StoreStats
		err := json.Unmarshal(w.Body.Bytes(), &stats)
		assert.NoError(t, err)
		assert.Equal(t, int64(2), stats.MenuItemCount)
		assert.Equal(t, int64(1), stats.ProductCount)
		assert.Equal(t, int64(2), stats.OrderCount)
		assert.InDelta(t, 15.00, stats.TotalRevenue, 0.001)
	})
}
