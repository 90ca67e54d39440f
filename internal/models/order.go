package models

import "time"

// Order is a customer purchase. PublicID is the UUID exposed to the
// storefront; the invoice number shown on emails is its last 8 hex digits.
type Order struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	PublicID string `gorm:"size:36;not null;uniqueIndex" json:"publicId"`

	Title     string `gorm:"size:20" json:"title"` // Dr., Ms., ...
	FirstName string `gorm:"size:100;not null" json:"firstName"`
	LastName  string `gorm:"size:100;not null" json:"lastName"`
	Email     string `gorm:"size:100;not null" json:"email"`
	Phone     string `gorm:"size:40" json:"phone"`

	Street         string `gorm:"size:200" json:"street"`
	Street2        string `gorm:"size:200" json:"street2"`
	City           string `gorm:"size:100" json:"city"`
	State          string `gorm:"size:100" json:"state"`
	Zip            string `gorm:"size:20" json:"zip"`
	ShippingOption string `gorm:"size:100" json:"shippingOption"`

	Items []OrderItem `json:"items"`

	Subtotal      float64 `gorm:"not null" json:"subtotal"`
	ProcessingFee float64 `gorm:"not null" json:"processingFee"`
	ShippingCost  float64 `gorm:"not null;default:0" json:"shippingCost"`
	Total         float64 `gorm:"not null" json:"total"`

	Notes string `json:"notes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	OrderID  uint    `gorm:"index;not null" json:"-"`
	Name     string  `gorm:"size:200;not null" json:"name"`
	Quantity int     `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"not null" json:"price"`
}

// HasAddress reports whether any shipping address field is present.
func (o *Order) HasAddress() bool {
	return o.Street != "" || o.Street2 != "" || o.City != "" || o.State != "" || o.Zip != ""
}
