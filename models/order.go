package models

import "time"

// Order represents an immutable record of a completed checkout.
// Line items are persisted as an opaque serialized blob in Items; the
// store never decomposes them into rows. Orders are only ever created
// and listed, never updated or deleted.
type Order struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	OrderNumber   string    `gorm:"uniqueIndex;not null" json:"orderNumber"`
	CustomerName  string    `gorm:"not null" json:"customerName"`
	CustomerEmail string    `gorm:"not null;default:''" json:"customerEmail"`
	CustomerPhone string    `gorm:"default:''" json:"customerPhone"`
	OrderType     string    `gorm:"not null;default:'pickup'" json:"orderType"`
	Items         string    `gorm:"type:text;not null" json:"items"`
	Total         float64   `gorm:"not null" json:"total"`
	Status        string    `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
