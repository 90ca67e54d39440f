package models

import "time"

// Product is a single catalog entry (e.g. "Retatrutide 15mg").
// Price and CostPrice are independent; cost may legitimately exceed price.
type Product struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Name              string    `gorm:"size:100;not null" json:"name"`
	Sub               string    `gorm:"size:100;not null" json:"sub"` // free-form type label, e.g. "Lyophilized"
	Price             float64   `gorm:"not null" json:"price"`
	CostPrice         float64   `gorm:"not null;default:0" json:"costPrice"`
	StockQuantity     int       `gorm:"not null;default:0" json:"stockQuantity"`
	LowStockThreshold int       `gorm:"not null;default:5" json:"lowStockThreshold"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
