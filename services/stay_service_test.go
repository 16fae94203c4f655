package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"hotel-ops/models"
	"hotel-ops/validation"
)

func stayForm(roomID uint, typ models.StayType) validation.StayForm {
	return validation.StayForm{
		GuestName:     "Ada Lovelace",
		GuestEmail:    "Ada@Example.com",
		GuestPhone:    "+44 20 7946 0000",
		RoomID:        roomID,
		Type:          typ,
		CheckInDate:   "2024-03-10",
		CheckOutDate:  "2024-03-12",
		Adults:        2,
		PaymentMethod: models.PaymentCard,
		PaymentStatus: models.PaymentPaid,
		PaidAmount:    decimal.NewFromInt(160),
		TotalAmount:   decimal.NewFromInt(160),
	}
}

func newStays(t *testing.T) (*StayService, fixture) {
	db := newTestDB(t)
	f := seedHotel(t, db, "Harbour View")
	svc := NewStayService(db)
	svc.Now = clock
	return svc, f
}

func roomStatus(t *testing.T, svc *StayService, roomID uint) models.RoomStatus {
	t.Helper()
	var room models.Room
	if err := svc.DB.First(&room, roomID).Error; err != nil {
		t.Fatalf("load room: %v", err)
	}
	return room.Status
}

func TestWalkInOccupiesRoom(t *testing.T) {
	svc, f := newStays(t)

	stay, err := svc.Create(context.Background(), f.hotel.ID, stayForm(f.room.ID, models.StayWalkIn))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if stay.Status != models.StayCheckedIn {
		t.Errorf("status = %s, want checked_in", stay.Status)
	}
	if stay.GuestEmail != "ada@example.com" {
		t.Errorf("email not normalised: %s", stay.GuestEmail)
	}
	if len(stay.ReferenceCode) != 13 {
		t.Errorf("reference code %q", stay.ReferenceCode)
	}
	if got := roomStatus(t, svc, f.room.ID); got != models.RoomOccupied {
		t.Errorf("room status = %s, want occupied", got)
	}
}

func TestReservationLeavesRoomAlone(t *testing.T) {
	svc, f := newStays(t)

	form := stayForm(f.room.ID, models.StayReserved)
	form.CheckInDate = "2024-04-01"
	form.CheckOutDate = "2024-04-03"
	stay, err := svc.Create(context.Background(), f.hotel.ID, form)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if stay.Status != models.StayConfirmed {
		t.Errorf("status = %s, want confirmed", stay.Status)
	}
	if got := roomStatus(t, svc, f.room.ID); got != models.RoomAvailable {
		t.Errorf("room status = %s, want available", got)
	}
}

func TestWalkInRefusedWhenRoomTaken(t *testing.T) {
	svc, f := newStays(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, f.hotel.ID, stayForm(f.room.ID, models.StayWalkIn)); err != nil {
		t.Fatalf("first walk-in: %v", err)
	}
	_, err := svc.Create(ctx, f.hotel.ID, stayForm(f.room.ID, models.StayWalkIn))
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("second walk-in err = %v, want ErrConflict", err)
	}

	var n int64
	svc.DB.Model(&models.Stay{}).Count(&n)
	if n != 1 {
		t.Errorf("stays = %d, want 1", n)
	}
}

func TestStayOverCapacity(t *testing.T) {
	svc, f := newStays(t)

	form := stayForm(f.room.ID, models.StayBooked)
	form.Adults = 2
	form.Children = 1
	_, err := svc.Create(context.Background(), f.hotel.ID, form)
	errs, ok := validation.AsErrors(err)
	if !ok {
		t.Fatalf("err = %v, want validation errors", err)
	}
	if _, ok := errs["adults"]; !ok {
		t.Errorf("missing adults error: %v", errs)
	}
}

func TestStayRoomFromAnotherHotel(t *testing.T) {
	svc, f := newStays(t)
	other := seedHotel(t, svc.DB, "Elsewhere")

	_, err := svc.Create(context.Background(), f.hotel.ID, stayForm(other.room.ID, models.StayBooked))
	errs, ok := validation.AsErrors(err)
	if !ok || errs["roomId"] == "" {
		t.Fatalf("err = %v, want roomId validation error", err)
	}
}

func TestUpdateStayHasNoRoomSideEffect(t *testing.T) {
	svc, f := newStays(t)
	ctx := context.Background()

	stay, err := svc.Create(ctx, f.hotel.ID, stayForm(f.room.ID, models.StayWalkIn))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	upd := validation.StayUpdateForm{ID: stay.ID, Status: models.StayCheckedOut, StayForm: stayForm(f.room.ID, models.StayWalkIn)}
	upd.PaymentStatus = models.PaymentPending
	upd.PaidAmount = decimal.NewFromInt(60)

	got, err := svc.Update(ctx, f.hotel.ID, upd)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Status != models.StayCheckedOut || got.PaymentStatus != models.PaymentPending {
		t.Errorf("stay = %s/%s", got.Status, got.PaymentStatus)
	}
	if !got.Balance().Equal(decimal.NewFromInt(100)) {
		t.Errorf("balance = %s, want 100", got.Balance())
	}
	if status := roomStatus(t, svc, f.room.ID); status != models.RoomOccupied {
		t.Errorf("room status changed to %s", status)
	}
}

func TestUpdateUnknownStay(t *testing.T) {
	svc, f := newStays(t)

	upd := validation.StayUpdateForm{ID: 999, Status: models.StayConfirmed, StayForm: stayForm(f.room.ID, models.StayBooked)}
	_, err := svc.Update(context.Background(), f.hotel.ID, upd)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
