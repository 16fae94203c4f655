package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// RoomType has its own lifecycle; rooms reference it by ID.
type RoomType struct {
	ID           uint                        `gorm:"primaryKey" json:"id"`
	HotelID      uint                        `gorm:"index;not null" json:"hotelId"`
	Name         string                      `gorm:"size:150;not null" json:"name"`
	Capacity     int                         `json:"capacity"`
	NightlyPrice decimal.Decimal             `gorm:"type:decimal(12,2)" json:"nightlyPrice"`
	Amenities    datatypes.JSONSlice[string] `json:"amenities"`
	Description  string                      `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (rt RoomType) GetID() uint { return rt.ID }
