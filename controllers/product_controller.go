package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/brewluxe/brewluxe-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProductRequest represents the request body for creating or updating a product
type ProductRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Rating      int      `json:"rating"`
	Image       string   `json:"image"`
}

// ProductController handles the /api/products routes
type ProductController struct {
	db *gorm.DB
}

// NewProductController creates a product controller bound to the given store connection
func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{db: db}
}

// ListProducts handles GET /api/products - returns all products sorted by name
func (pc *ProductController) ListProducts(c *gin.Context) {
	products := []models.Product{}
	if err := pc.db.Order("name").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /api/products/:id
func (pc *ProductController) GetProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var product models.Product
	if err := pc.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, product)
}

// CreateProduct handles POST /api/products
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and price are required"})
		return
	}

	product := models.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Rating:      req.Rating,
		Image:       req.Image,
	}
	if product.Rating == 0 {
		product.Rating = 5
	}

	if err := pc.db.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /api/products/:id - full replacement of the stored fields
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name and price are required"})
		return
	}

	rating := req.Rating
	if rating == 0 {
		rating = 5
	}

	result := pc.db.Model(&models.Product{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"price":       *req.Price,
		"rating":      rating,
		"image":       req.Image,
	})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          id,
		"name":        req.Name,
		"description": req.Description,
		"price":       *req.Price,
		"rating":      rating,
		"image":       req.Image,
	})
}

// DeleteProduct handles DELETE /api/products/:id - deletion is permanent
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	result := pc.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": result.Error.Error()})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted", "id": id})
}
