package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stay is a guest's occupancy of one room: a reservation, a booking or a walk-in.
type Stay struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	HotelID       uint   `gorm:"index;not null" json:"hotelId"`
	ReferenceCode string `gorm:"column:reference_code;size:64;index" json:"referenceCode"`

	GuestName  string `gorm:"size:255;not null" json:"guestName"`
	GuestEmail string `gorm:"size:255" json:"guestEmail"`
	GuestPhone string `gorm:"size:50" json:"guestPhone"`

	RoomID       uint       `gorm:"column:room_id;index" json:"roomId"`
	Type         StayType   `gorm:"size:16;not null" json:"type"`
	CheckInDate  time.Time  `gorm:"column:check_in_date;index" json:"checkInDate"`
	CheckOutDate time.Time  `gorm:"column:check_out_date" json:"checkOutDate"`
	Adults       int        `gorm:"default:1" json:"adults"`
	Children     int        `gorm:"default:0" json:"children"`
	Status       StayStatus `gorm:"size:16;not null" json:"status"`

	PaymentMethod PaymentMethod   `gorm:"size:32" json:"paymentMethod,omitempty"`
	PaymentStatus PaymentStatus   `gorm:"size:16;not null" json:"paymentStatus"`
	PaidAmount    decimal.Decimal `gorm:"type:decimal(12,2)" json:"paidAmount"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2)" json:"totalAmount"`
	PaymentDate   *time.Time      `json:"paymentDate,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s Stay) GetID() uint { return s.ID }

// Balance is what is still owed on the folio.
func (s Stay) Balance() decimal.Decimal {
	if s.PaymentStatus == PaymentPaid {
		return decimal.Zero
	}
	return s.TotalAmount.Sub(s.PaidAmount)
}
