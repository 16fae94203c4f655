package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	HotelID         uint            `gorm:"index;not null" json:"hotelId"`
	Name            string          `gorm:"size:255;not null" json:"name"`
	Category        string          `gorm:"size:100" json:"category"`
	Price           decimal.Decimal `gorm:"type:decimal(12,2)" json:"price"`
	PrepTimeMinutes int             `json:"prepTimeMinutes"`
	Ingredients     string          `gorm:"type:text" json:"ingredients"`
	Status          MenuItemStatus  `gorm:"size:16;not null;default:available" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m MenuItem) GetID() uint { return m.ID }
