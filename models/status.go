package models

// RoomStatus is the housekeeping/occupancy state of a room.
type RoomStatus string

const (
	RoomAvailable         RoomStatus = "available"
	RoomOccupied          RoomStatus = "occupied"
	RoomMarkedForCleaning RoomStatus = "marked_for_cleaning"
	RoomMaintenance       RoomStatus = "maintenance"
	RoomCleaning          RoomStatus = "cleaning"
	RoomUnavailable       RoomStatus = "unavailable"
)

var RoomStatuses = []RoomStatus{
	RoomAvailable, RoomOccupied, RoomMarkedForCleaning,
	RoomMaintenance, RoomCleaning, RoomUnavailable,
}

func (s RoomStatus) Valid() bool {
	for _, v := range RoomStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// StayType distinguishes how a stay entered the system.
type StayType string

const (
	StayReserved StayType = "reserved"
	StayBooked   StayType = "booked"
	StayWalkIn   StayType = "walk_in"
)

func (t StayType) Valid() bool {
	return t == StayReserved || t == StayBooked || t == StayWalkIn
}

type StayStatus string

const (
	StayConfirmed  StayStatus = "confirmed"
	StayCheckedIn  StayStatus = "checked_in"
	StayCheckedOut StayStatus = "checked_out"
	StayCancelled  StayStatus = "cancelled"
)

func (s StayStatus) Valid() bool {
	switch s {
	case StayConfirmed, StayCheckedIn, StayCheckedOut, StayCancelled:
		return true
	}
	return false
}

// PaymentStatus is shared by stays and scheduled services.
type PaymentStatus string

const (
	PaymentPaid      PaymentStatus = "paid"
	PaymentPending   PaymentStatus = "pending"
	PaymentRefunded  PaymentStatus = "refunded"
	PaymentCancelled PaymentStatus = "cancelled"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPaid, PaymentPending, PaymentRefunded, PaymentCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "cash"
	PaymentCard         PaymentMethod = "card"
	PaymentBankTransfer PaymentMethod = "bank_transfer"
	PaymentMobile       PaymentMethod = "mobile"
	PaymentRoomCharge   PaymentMethod = "room_charge"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentBankTransfer, PaymentMobile, PaymentRoomCharge:
		return true
	}
	return false
}

type OrderType string

const (
	OrderHotelGuest OrderType = "hotel_guest"
	OrderRestaurant OrderType = "restaurant"
	OrderOther      OrderType = "other"
)

func (t OrderType) Valid() bool {
	return t == OrderHotelGuest || t == OrderRestaurant || t == OrderOther
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderReady     OrderStatus = "ready"
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderReady, OrderPaid, OrderCancelled:
		return true
	}
	return false
}

type MenuItemStatus string

const (
	MenuAvailable   MenuItemStatus = "available"
	MenuUnavailable MenuItemStatus = "unavailable"
)

func (s MenuItemStatus) Valid() bool {
	return s == MenuAvailable || s == MenuUnavailable
}
