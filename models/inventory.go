package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type InventoryItem struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	HotelID      uint            `gorm:"index;not null" json:"hotelId"`
	Name         string          `gorm:"size:255;not null" json:"name"`
	Unit         string          `gorm:"size:32" json:"unit"`
	Quantity     decimal.Decimal `gorm:"type:decimal(12,3)" json:"quantity"`
	ReorderLevel decimal.Decimal `gorm:"type:decimal(12,3)" json:"reorderLevel"`
	UnitCost     decimal.Decimal `gorm:"type:decimal(12,2)" json:"unitCost"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (i InventoryItem) GetID() uint { return i.ID }

func (i InventoryItem) NeedsReorder() bool {
	return i.Quantity.LessThanOrEqual(i.ReorderLevel)
}
