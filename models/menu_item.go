package models

import "time"

// MenuItem represents a purchasable beverage on the storefront menu
type MenuItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `gorm:"default:''" json:"description"`
	Price       float64   `gorm:"not null" json:"price"`
	Image       string    `gorm:"default:''" json:"image"`
	Category    string    `gorm:"not null;default:'espresso'" json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName specifies the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}
