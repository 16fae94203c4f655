package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ScheduledService is a booked extra (spa, airport transfer, tour).
type ScheduledService struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	HotelID       uint            `gorm:"index;not null" json:"hotelId"`
	ServiceID     uint            `json:"serviceId"`
	ServiceName   string          `gorm:"size:255" json:"serviceName"`
	StayID        *uint           `gorm:"index" json:"stayId,omitempty"`
	ScheduledAt   time.Time       `gorm:"index" json:"scheduledAt"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(12,2)" json:"totalAmount"`
	PaymentStatus PaymentStatus   `gorm:"size:16;not null" json:"paymentStatus"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s ScheduledService) GetID() uint { return s.ID }
