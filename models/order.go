package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	HotelID uint  `gorm:"index;not null" json:"hotelId"`
	StayID  *uint `gorm:"index" json:"stayId,omitempty"`

	Type          OrderType       `gorm:"size:16;not null" json:"type"`
	Status        OrderStatus     `gorm:"size:16;not null;default:pending" json:"status"`
	Discount      decimal.Decimal `gorm:"type:decimal(12,2)" json:"discount"`
	PaymentMethod PaymentMethod   `gorm:"size:32" json:"paymentMethod,omitempty"`
	Items         []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`

	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (o Order) GetID() uint { return o.ID }

// OrderItem keeps the name and price the item had when ordered; later menu
// edits do not touch it.
type OrderItem struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	OrderID    uint            `gorm:"index;not null" json:"orderId"`
	MenuItemID uint            `json:"menuItemId"`
	Name       string          `gorm:"size:255" json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
}
