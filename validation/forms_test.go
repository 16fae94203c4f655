package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"hotel-ops/models"
)

var today = time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)

func validStay() StayForm {
	return StayForm{
		GuestName:     "Ada Lovelace",
		GuestEmail:    "ada@example.com",
		GuestPhone:    "+44 20 7946 0958",
		RoomID:        3,
		Type:          models.StayReserved,
		CheckInDate:   "2024-06-20",
		CheckOutDate:  "2024-06-22",
		Adults:        2,
		PaymentMethod: models.PaymentCard,
		PaymentStatus: models.PaymentPending,
		PaidAmount:    decimal.NewFromInt(50),
		TotalAmount:   decimal.NewFromInt(200),
	}
}

func fieldErrors(t *testing.T, err error) Errors {
	t.Helper()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}
	fe, ok := AsErrors(err)
	if !ok {
		t.Fatalf("error %v is not validation.Errors", err)
	}
	return fe
}

func TestValidStayPasses(t *testing.T) {
	if err := validStay().Validate(today); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStayRequiredAndFormatErrors(t *testing.T) {
	f := validStay()
	f.GuestName = ""
	f.GuestEmail = "not-an-email"
	f.GuestPhone = "12"
	f.Type = "drop_in"

	fe := fieldErrors(t, f.Validate(today))
	for _, field := range []string{"guestName", "guestEmail", "guestPhone", "type"} {
		if _, ok := fe[field]; !ok {
			t.Errorf("missing error for %s in %v", field, fe)
		}
	}
}

func TestStayCheckoutMustFollowCheckin(t *testing.T) {
	f := validStay()
	f.CheckOutDate = "2024-06-20"
	fe := fieldErrors(t, f.Validate(today))
	if fe["checkOutDate"] != "must be after the check-in date" {
		t.Errorf("checkOutDate error = %q", fe["checkOutDate"])
	}
}

func TestStayPaymentDateNotAfterCheckin(t *testing.T) {
	f := validStay()
	f.PaymentDate = "2024-06-21"
	fe := fieldErrors(t, f.Validate(today))
	if _, ok := fe["paymentDate"]; !ok {
		t.Errorf("expected paymentDate error, got %v", fe)
	}

	f.PaymentDate = "2024-06-20"
	if err := f.Validate(today); err != nil {
		t.Errorf("payment on the check-in date should pass: %v", err)
	}
}

func TestStayMalformedDate(t *testing.T) {
	f := validStay()
	f.CheckInDate = "20/06/2024"
	fe := fieldErrors(t, f.Validate(today))
	if fe["checkInDate"] != "must be a date in YYYY-MM-DD format" {
		t.Errorf("checkInDate error = %q", fe["checkInDate"])
	}
}

func TestWalkInMustStartToday(t *testing.T) {
	f := validStay()
	f.Type = models.StayWalkIn
	fe := fieldErrors(t, f.Validate(today))
	if _, ok := fe["checkInDate"]; !ok {
		t.Errorf("expected checkInDate error, got %v", fe)
	}

	f.CheckInDate = "2024-06-10"
	f.CheckOutDate = "2024-06-11"
	if err := f.Validate(today); err != nil {
		t.Errorf("same-day walk-in should pass: %v", err)
	}
}

func TestWalkInUsesLocalCalendarDate(t *testing.T) {
	sydney := time.FixedZone("AEDT", 11*60*60)
	morning := time.Date(2024, 3, 10, 8, 0, 0, 0, sydney) // 2024-03-09 21:00 UTC

	f := validStay()
	f.Type = models.StayWalkIn
	f.CheckInDate = "2024-03-10"
	f.CheckOutDate = "2024-03-11"
	if err := f.Validate(morning); err != nil {
		t.Fatalf("walk-in dated with the local day should pass: %v", err)
	}

	f.CheckInDate = "2024-03-09"
	f.CheckOutDate = "2024-03-10"
	fe := fieldErrors(t, f.Validate(morning))
	if fe["checkInDate"] != "must be today for a walk-in" {
		t.Errorf("checkInDate error = %q", fe["checkInDate"])
	}
}

func TestWalkInAnyZoneAllowsOneDaySkew(t *testing.T) {
	f := validStay()
	f.Type = models.StayWalkIn
	for _, in := range []string{"2024-06-09", "2024-06-10", "2024-06-11"} {
		f.CheckInDate = in
		f.CheckOutDate = "2024-06-12"
		if err := f.ValidateAnyZone(today); err != nil {
			t.Errorf("check-in %s: %v", in, err)
		}
	}

	f.CheckInDate = "2024-06-08"
	fe := fieldErrors(t, f.ValidateAnyZone(today))
	if _, ok := fe["checkInDate"]; !ok {
		t.Errorf("expected checkInDate error two days out, got %v", fe)
	}
}

func TestStayAmounts(t *testing.T) {
	f := validStay()
	f.PaidAmount = decimal.NewFromInt(300)
	fe := fieldErrors(t, f.Validate(today))
	if _, ok := fe["paidAmount"]; !ok {
		t.Errorf("expected paidAmount error, got %v", fe)
	}

	f = validStay()
	f.PaymentStatus = models.PaymentPaid
	f.PaymentMethod = ""
	fe = fieldErrors(t, f.Validate(today))
	if _, ok := fe["paymentMethod"]; !ok {
		t.Errorf("expected paymentMethod error, got %v", fe)
	}
}

func TestStayUpdateFieldNamesAreFlat(t *testing.T) {
	f := StayUpdateForm{ID: 1, Status: "lost", StayForm: validStay()}
	f.GuestEmail = ""
	fe := fieldErrors(t, f.Validate())
	if _, ok := fe["status"]; !ok {
		t.Errorf("expected status error, got %v", fe)
	}
	if _, ok := fe["guestEmail"]; !ok {
		t.Errorf("expected guestEmail error, got %v", fe)
	}
}

func TestStayUpdateAllowsPastCheckinForWalkIn(t *testing.T) {
	f := StayUpdateForm{ID: 1, Status: models.StayCheckedOut, StayForm: validStay()}
	f.Type = models.StayWalkIn
	if err := f.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestOrderForm(t *testing.T) {
	f := OrderForm{Type: models.OrderHotelGuest, Items: []OrderLine{{MenuItemID: 1, Quantity: 0}}}
	fe := fieldErrors(t, f.Validate())
	if _, ok := fe["stayId"]; !ok {
		t.Errorf("hotel guest order needs stayId: %v", fe)
	}
	if _, ok := fe["items[0].quantity"]; !ok {
		t.Errorf("expected items[0].quantity error: %v", fe)
	}

	f = OrderForm{Type: models.OrderRestaurant}
	fe = fieldErrors(t, f.Validate())
	if _, ok := fe["items"]; !ok {
		t.Errorf("expected items error: %v", fe)
	}

	f = OrderForm{Type: models.OrderRestaurant, Items: []OrderLine{{MenuItemID: 1, Quantity: 2}}}
	if err := f.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestOrderStatusPaidNeedsMethod(t *testing.T) {
	fe := fieldErrors(t, OrderStatusForm{OrderID: 1, Status: models.OrderPaid}.Validate())
	if _, ok := fe["paymentMethod"]; !ok {
		t.Errorf("expected paymentMethod error: %v", fe)
	}
}

func TestHotelFormCurrency(t *testing.T) {
	fe := fieldErrors(t, HotelForm{Name: "Sea View", CurrencyCode: "XYZ1"}.Validate())
	if _, ok := fe["currencyCode"]; !ok {
		t.Errorf("expected currencyCode error: %v", fe)
	}
	if err := (HotelForm{Name: "Sea View", CurrencyCode: "EUR"}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPriceMustBePositive(t *testing.T) {
	fe := fieldErrors(t, MenuForm{Name: "Tea", Category: "Drinks"}.Validate())
	if _, ok := fe["price"]; !ok {
		t.Errorf("expected price error: %v", fe)
	}
	fe = fieldErrors(t, RoomTypeForm{Name: "Double", Capacity: 2, NightlyPrice: decimal.NewFromInt(-1)}.Validate())
	if _, ok := fe["nightlyPrice"]; !ok {
		t.Errorf("expected nightlyPrice error: %v", fe)
	}
}

func TestScheduleServiceTimestamp(t *testing.T) {
	f := ScheduleServiceForm{ServiceID: 1, ServiceName: "Spa", ScheduledAt: "2024-06-10 10:00", PaymentStatus: models.PaymentPending}
	fe := fieldErrors(t, f.Validate())
	if _, ok := fe["scheduledAt"]; !ok {
		t.Errorf("expected scheduledAt error: %v", fe)
	}
	f.ScheduledAt = "2024-06-10T10:00:00Z"
	if err := f.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if f.When().Hour() != 10 {
		t.Errorf("When = %s", f.When())
	}
}

func TestErrorsErrIsNilWhenEmpty(t *testing.T) {
	if err := (Errors{}).Err(); err != nil {
		t.Errorf("empty Errors should give nil, got %v", err)
	}
	var target Errors
	if !errors.As(Errors{"a": "b"}.Err(), &target) {
		t.Error("Errors should be recoverable with errors.As")
	}
}
