package models

import (
	"time"

	"gorm.io/datatypes"
)

// Hotel is a managed property. Every other record is scoped to one.
type Hotel struct {
	ID           uint                        `gorm:"primaryKey" json:"id"`
	Name         string                      `gorm:"size:255;not null" json:"name"`
	CurrencyCode string                      `gorm:"size:3;not null" json:"currencyCode"`
	Address      string                      `gorm:"type:text" json:"address"`
	Amenities    datatypes.JSONSlice[string] `json:"amenities"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}

func (h Hotel) GetID() uint { return h.ID }
