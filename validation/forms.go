package validation

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"hotel-ops/models"
)

type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (f LoginForm) Validate() error { return Struct(f).Err() }

// HotelForm is the property registration form.
type HotelForm struct {
	Name         string   `json:"name" validate:"required,max=255"`
	CurrencyCode string   `json:"currencyCode" validate:"required,iso4217"`
	Address      string   `json:"address" validate:"max=1000"`
	Amenities    []string `json:"amenities"`
}

func (f HotelForm) Validate() error {
	errs := Struct(f)
	for _, a := range f.Amenities {
		if strings.TrimSpace(a) == "" {
			errs.Add("amenities", "must not contain blank entries")
			break
		}
	}
	return errs.Err()
}

type SwitchHotelForm struct {
	HotelID uint `json:"hotelId" validate:"required"`
}

func (f SwitchHotelForm) Validate() error { return Struct(f).Err() }

// RoomForm serves both add-room (ID zero) and update-room.
type RoomForm struct {
	ID         uint              `json:"id"`
	RoomNumber string            `json:"roomNumber" validate:"required,max=50"`
	Floor      int               `json:"floor"`
	RoomTypeID uint              `json:"roomTypeId" validate:"required"`
	Status     models.RoomStatus `json:"status" validate:"omitempty,oneof=available occupied marked_for_cleaning maintenance cleaning unavailable"`
	Note       string            `json:"note" validate:"max=2000"`
}

func (f RoomForm) Validate() error { return Struct(f).Err() }

func (f RoomForm) ValidateUpdate() error {
	errs := Struct(f)
	if f.ID == 0 {
		errs.Add("id", "is required")
	}
	return errs.Err()
}

type RoomStatusForm struct {
	RoomID uint              `json:"roomId" validate:"required"`
	Status models.RoomStatus `json:"status" validate:"required,oneof=available occupied marked_for_cleaning maintenance cleaning unavailable"`
	Note   string            `json:"note" validate:"max=2000"`
}

func (f RoomStatusForm) Validate() error { return Struct(f).Err() }

type MarkCleaningForm struct {
	RoomID uint   `json:"roomId" validate:"required"`
	Note   string `json:"note" validate:"max=2000"`
}

func (f MarkCleaningForm) Validate() error { return Struct(f).Err() }

type RoomTypeForm struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name" validate:"required,max=150"`
	Capacity     int             `json:"capacity" validate:"required,min=1,max=50"`
	NightlyPrice decimal.Decimal `json:"nightlyPrice"`
	Amenities    []string        `json:"amenities"`
	Description  string          `json:"description" validate:"max=2000"`
}

func (f RoomTypeForm) Validate() error {
	errs := Struct(f)
	if !f.NightlyPrice.IsPositive() {
		errs.Add("nightlyPrice", "must be greater than 0")
	}
	return errs.Err()
}

type MenuForm struct {
	ID              uint                  `json:"id"`
	Name            string                `json:"name" validate:"required,max=255"`
	Category        string                `json:"category" validate:"required,max=100"`
	Price           decimal.Decimal       `json:"price"`
	PrepTimeMinutes int                   `json:"prepTimeMinutes" validate:"min=0,max=600"`
	Ingredients     string                `json:"ingredients" validate:"max=4000"`
	Status          models.MenuItemStatus `json:"status" validate:"omitempty,oneof=available unavailable"`
}

func (f MenuForm) Validate() error {
	errs := Struct(f)
	if !f.Price.IsPositive() {
		errs.Add("price", "must be greater than 0")
	}
	return errs.Err()
}

// StayForm covers reservation, booking and walk-in creation.
type StayForm struct {
	GuestName     string               `json:"guestName" validate:"required,max=255"`
	GuestEmail    string               `json:"guestEmail" validate:"required,email"`
	GuestPhone    string               `json:"guestPhone" validate:"required,phone"`
	RoomID        uint                 `json:"roomId" validate:"required"`
	Type          models.StayType      `json:"type" validate:"required,oneof=reserved booked walk_in"`
	CheckInDate   string               `json:"checkInDate" validate:"required,datetime=2006-01-02"`
	CheckOutDate  string               `json:"checkOutDate" validate:"required,datetime=2006-01-02"`
	Adults        int                  `json:"adults" validate:"min=1"`
	Children      int                  `json:"children" validate:"min=0"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod" validate:"omitempty,oneof=cash card bank_transfer mobile room_charge"`
	PaymentStatus models.PaymentStatus `json:"paymentStatus" validate:"required,oneof=paid pending refunded cancelled"`
	PaidAmount    decimal.Decimal      `json:"paidAmount"`
	TotalAmount   decimal.Decimal      `json:"totalAmount"`
	PaymentDate   string               `json:"paymentDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// Validate checks tags plus the cross-field rules. A walk-in must check in
// on now's own calendar date, read in now's location.
func (f StayForm) Validate(now time.Time) error {
	return f.validate(now, 0)
}

// ValidateAnyZone is Validate for callers that do not know the desk's time
// zone: a walk-in may be dated one day either side of now's date.
func (f StayForm) ValidateAnyZone(now time.Time) error {
	return f.validate(now, 1)
}

func (f StayForm) validate(now time.Time, skewDays int) error {
	errs := Struct(f)
	f.checkDates(errs, now, skewDays)
	f.checkAmounts(errs)
	return errs.Err()
}

func (f StayForm) checkDates(errs Errors, now time.Time, skewDays int) {
	in, inErr := ParseDate(f.CheckInDate)
	out, outErr := ParseDate(f.CheckOutDate)
	if inErr != nil || outErr != nil {
		return
	}
	if !out.After(in) {
		errs.Add("checkOutDate", "must be after the check-in date")
	}
	if f.Type == models.StayWalkIn && !withinDays(in, now, skewDays) {
		errs.Add("checkInDate", "must be today for a walk-in")
	}
	if f.PaymentDate != "" {
		if pd, err := ParseDate(f.PaymentDate); err == nil && pd.After(in) {
			errs.Add("paymentDate", "must not be after the check-in date")
		}
	}
}

func (f StayForm) checkAmounts(errs Errors) {
	if f.TotalAmount.IsNegative() {
		errs.Add("totalAmount", "must not be negative")
	}
	if f.PaidAmount.IsNegative() {
		errs.Add("paidAmount", "must not be negative")
	}
	if f.PaidAmount.GreaterThan(f.TotalAmount) {
		errs.Add("paidAmount", "must not exceed the total amount")
	}
	if f.PaymentStatus == models.PaymentPaid && f.PaymentMethod == "" {
		errs.Add("paymentMethod", "is required when the stay is paid")
	}
}

// Guests is the head count used against room capacity.
func (f StayForm) Guests() int { return f.Adults + f.Children }

// Dates returns the parsed stay dates; call after Validate.
func (f StayForm) Dates() (in, out time.Time, payment *time.Time) {
	in, _ = ParseDate(f.CheckInDate)
	out, _ = ParseDate(f.CheckOutDate)
	if f.PaymentDate != "" {
		if pd, err := ParseDate(f.PaymentDate); err == nil {
			payment = &pd
		}
	}
	return in, out, payment
}

// StayUpdateForm edits an existing stay. Status fields take any known value.
type StayUpdateForm struct {
	ID     uint              `json:"id" validate:"required"`
	Status models.StayStatus `json:"status" validate:"required,oneof=confirmed checked_in checked_out cancelled"`
	StayForm
}

func (f StayUpdateForm) Validate() error {
	errs := Struct(f)
	// walk-in "today" rule applies at creation only
	f.StayForm.Type = models.StayBooked
	f.checkDates(errs, time.Time{}, 0)
	f.checkAmounts(errs)
	return errs.Err()
}

type OrderLine struct {
	MenuItemID uint `json:"menuItemId" validate:"required"`
	Quantity   int  `json:"quantity" validate:"required,min=1,max=100"`
}

type OrderForm struct {
	Type          models.OrderType     `json:"type" validate:"required,oneof=hotel_guest restaurant other"`
	StayID        *uint                `json:"stayId" validate:"required_if=Type hotel_guest"`
	Items         []OrderLine          `json:"items" validate:"required,min=1,dive"`
	Discount      decimal.Decimal      `json:"discount"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod" validate:"omitempty,oneof=cash card bank_transfer mobile room_charge"`
}

func (f OrderForm) Validate() error {
	errs := Struct(f)
	if f.Discount.IsNegative() {
		errs.Add("discount", "must not be negative")
	}
	return errs.Err()
}

type OrderStatusForm struct {
	OrderID       uint                 `json:"orderId" validate:"required"`
	Status        models.OrderStatus   `json:"status" validate:"required,oneof=pending ready paid cancelled"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod" validate:"omitempty,oneof=cash card bank_transfer mobile room_charge"`
}

func (f OrderStatusForm) Validate() error {
	errs := Struct(f)
	if f.Status == models.OrderPaid && f.PaymentMethod == "" {
		errs.Add("paymentMethod", "is required to mark an order paid")
	}
	return errs.Err()
}

type ScheduleServiceForm struct {
	ServiceID     uint                 `json:"serviceId" validate:"required"`
	ServiceName   string               `json:"serviceName" validate:"required,max=255"`
	StayID        *uint                `json:"stayId"`
	ScheduledAt   string               `json:"scheduledAt" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	TotalAmount   decimal.Decimal      `json:"totalAmount"`
	PaymentStatus models.PaymentStatus `json:"paymentStatus" validate:"required,oneof=paid pending refunded cancelled"`
}

func (f ScheduleServiceForm) Validate() error {
	errs := Struct(f)
	if f.TotalAmount.IsNegative() {
		errs.Add("totalAmount", "must not be negative")
	}
	return errs.Err()
}

func (f ScheduleServiceForm) When() time.Time {
	t, _ := time.Parse(time.RFC3339, f.ScheduledAt)
	return t
}

type ServicePaymentForm struct {
	ID            uint                 `json:"id" validate:"required"`
	PaymentStatus models.PaymentStatus `json:"paymentStatus" validate:"required,oneof=paid pending refunded cancelled"`
}

func (f ServicePaymentForm) Validate() error { return Struct(f).Err() }

type InventoryForm struct {
	Name         string          `json:"name" validate:"required,max=255"`
	Unit         string          `json:"unit" validate:"required,max=32"`
	Quantity     decimal.Decimal `json:"quantity"`
	ReorderLevel decimal.Decimal `json:"reorderLevel"`
	UnitCost     decimal.Decimal `json:"unitCost"`
}

func (f InventoryForm) Validate() error {
	errs := Struct(f)
	for field, v := range map[string]decimal.Decimal{
		"quantity":     f.Quantity,
		"reorderLevel": f.ReorderLevel,
		"unitCost":     f.UnitCost,
	} {
		if v.IsNegative() {
			errs.Add(field, "must not be negative")
		}
	}
	return errs.Err()
}
