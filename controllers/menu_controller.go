package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/brewluxe/brewluxe-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MenuItemRequest represents the request body for creating or updating a menu item.
// Price is a pointer so that an explicit 0 is distinguishable from an absent field.
type MenuItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Image       string   `json:"image"`
	Category    string   `json:"category"`
}

// MenuController handles the /api/menu routes
type MenuController struct {
	db *gorm.DB
}

// NewMenuController creates a menu controller bound to the given store connection
func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{db: db}
}

// ListMenuItems handles GET /api/menu - returns all menu items sorted by category, then name
func (mc *MenuController) ListMenuItems(c *gin.Context) {
	items := []models.MenuItem{}
	if err := mc.db.Order("category, name").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetMenuItem handles GET /api/menu/:id
func (mc *MenuController) GetMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var item models.MenuItem
	if err := mc.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// CreateMenuItem handles POST /api/menu
func (mc *MenuController) CreateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and price are required"})
		return
	}

	item := models.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Image:       req.Image,
		Category:    req.Category,
	}
	if item.Category == "" {
		item.Category = "espresso"
	}

	if err := mc.db.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateMenuItem handles PUT /api/menu/:id - full replacement of the stored fields
func (mc *MenuController) UpdateMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and price are required"})
		return
	}

	category := req.Category
	if category == "" {
		category = "espresso"
	}

	// Updates also refreshes the updated_at column
	result := mc.db.Model(&models.MenuItem{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"price":       *req.Price,
		"image":       req.Image,
		"category":    category,
	})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          id,
		"name":        req.Name,
		"description": req.Description,
		"price":       *req.Price,
		"image":       req.Image,
		"category":    category,
	})
}

// DeleteMenuItem handles DELETE /api/menu/:id - deletion is permanent
func (mc *MenuController) DeleteMenuItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	result := mc.db.Delete(&models.MenuItem{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted", "id": id})
}
