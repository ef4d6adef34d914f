package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/brewluxe/brewluxe-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateOrderRequest represents the request body for creating an order.
// Items is accepted as arbitrary JSON and stored in its serialized form;
// the store never inspects it.
type CreateOrderRequest struct {
	OrderNumber   string          `json:"orderNumber" binding:"required"`
	CustomerName  string          `json:"customerName" binding:"required"`
	CustomerEmail string          `json:"customerEmail"`
	CustomerPhone string          `json:"customerPhone"`
	OrderType     string          `json:"orderType"`
	Items         json.RawMessage `json:"items" binding:"required"`
	Total         *float64        `json:"total" binding:"required,gte=0"`
}

// OrderController handles the /api/orders routes
type OrderController struct {
	db *gorm.DB
}

// NewOrderController creates an order controller bound to the given store connection
func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{db: db}
}

// ListOrders handles GET /api/orders - returns all orders, most recent first
func (oc *OrderController) ListOrders(c *gin.Context) {
	orders := []models.Order{}
	if err := oc.db.Order("created_at DESC").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CreateOrder handles POST /api/orders - appends an immutable order record.
// Status is always "pending" on creation regardless of any caller-supplied value.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	order := models.Order{
		OrderNumber:   req.OrderNumber,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		OrderType:     req.OrderType,
		Items:         string(req.Items),
		Total:         *req.Total,
		Status:        "pending",
	}
	if order.OrderType == "" {
		order.OrderType = "pickup"
	}

	if err := oc.db.Create(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "order number already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": order.ID, "orderNumber": order.OrderNumber})
}
