package models

import (
	"time"
)

type Room struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	HotelID uint `gorm:"not null;uniqueIndex:idx_hotel_room_number" json:"hotelId"`

	// room numbers are unique within a hotel, not globally
	RoomNumber string     `gorm:"column:room_number;size:50;not null;uniqueIndex:idx_hotel_room_number" json:"roomNumber"`
	Floor      int        `json:"floor"`
	RoomTypeID uint       `gorm:"column:room_type_id;index" json:"roomTypeId"`
	Status     RoomStatus `gorm:"size:32;not null;default:available" json:"status"`

	LastCleanedAt *time.Time `json:"lastCleanedAt,omitempty"`
	Note          string     `gorm:"type:text" json:"note"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r Room) GetID() uint { return r.ID }
