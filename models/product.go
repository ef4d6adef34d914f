package models

import "time"

// Product represents a retail coffee bean bag sold by the storefront
type Product struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"default:''" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Rating      int       `gorm:"not null;default:5" json:"rating"`
	Image       string    `gorm:"default:''" json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}
