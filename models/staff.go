package models

import "time"

type Staff struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	HotelID  uint   `gorm:"index" json:"hotelId"`
	FullName string `gorm:"size:255" json:"fullName"`
	Email    string `gorm:"uniqueIndex;size:150" json:"email"`
	Password string `gorm:"size:255" json:"-"` // bcrypt hash
	Role     string `gorm:"size:50" json:"role"`

	// hotel the member is currently working in; changed by switch-hotel
	ActiveHotelID *uint `json:"activeHotelId,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s Staff) GetID() uint { return s.ID }
