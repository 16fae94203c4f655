package services

import (
	"context"
	"errors"
	"testing"

	"hotel-ops/models"
	"hotel-ops/validation"
)

func TestCreateRoomDefaultsToAvailable(t *testing.T) {
	db := newTestDB(t)
	f := seedHotel(t, db, "Harbour View")
	svc := NewRoomService(db)

	room, err := svc.Create(context.Background(), f.hotel.ID, validation.RoomForm{
		RoomNumber: " 102 ",
		Floor:      1,
		RoomTypeID: f.standard.ID,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if room.RoomNumber != "102" || room.Status != models.RoomAvailable {
		t.Errorf("room = %+v", room)
	}
}

func TestRoomNumberUniquePerHotel(t *testing.T) {
	db := newTestDB(t)
	f := seedHotel(t, db, "Harbour View")
	other := seedHotel(t, db, "Hilltop")
	svc := NewRoomService(db)
	ctx := context.Background()

	_, err := svc.Create(ctx, f.hotel.ID, validation.RoomForm{RoomNumber: "101", RoomTypeID: f.standard.ID})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("duplicate err = %v, want ErrConflict", err)
	}

	// "101" already exists in the other hotel too; adding "201" there is fine
	if _, err := svc.Create(ctx, other.hotel.ID, validation.RoomForm{RoomNumber: "201", RoomTypeID: other.standard.ID}); err != nil {
		t.Fatalf("other hotel: %v", err)
	}
}

func TestCreateRoomRejectsForeignRoomType(t *testing.T) {
	db := newTestDB(t)
	f := seedHotel(t, db, "Harbour View")
	other := seedHotel(t, db, "Hilltop")
	svc := NewRoomService(db)

	_, err := svc.Create(context.Background(), f.hotel.ID, validation.RoomForm{RoomNumber: "305", RoomTypeID: other.standard.ID})
	errs, ok := validation.AsErrors(err)
	if !ok || errs["roomTypeId"] == "" {
		t.Fatalf("err = %v, want roomTypeId error", err)
	}
}

func TestCleaningCycleStampsLastCleaned(t *testing.T) {
	db := newTestDB(t)
	f := seedHotel(t, db, "Harbour View")
	svc := NewRoomService(db)
	svc.Now = clock
	ctx := context.Background()

	room, err := svc.MarkForCleaning(ctx, f.hotel.ID, validation.MarkCleaningForm{RoomID: f.room.ID, Note: "late checkout"})
	if err != nil {
		t.Fatalf("MarkForCleaning: %v", err)
	}
	if room.Status != models.RoomMarkedForCleaning || room.Note != "late checkout" {
		t.Errorf("room = %s %q", room.Status, room.Note)
	}
	if room.LastCleanedAt != nil {
		t.Errorf("stamped too early")
	}

	room, err = svc.UpdateStatus(ctx, f.hotel.ID, validation.RoomStatusForm{RoomID: f.room.ID, Status: models.RoomAvailable})
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if room.LastCleanedAt == nil || !room.LastCleanedAt.Equal(fixedNow) {
		t.Errorf("LastCleanedAt = %v, want %v", room.LastCleanedAt, fixedNow)
	}
	if room.Note != "late checkout" {
		t.Errorf("note dropped: %q", room.Note)
	}
}

func TestUpdateStatusUnknownRoom(t *testing.T) {
	db := newTestDB(t)
	f := seedHotel(t, db, "Harbour View")
	svc := NewRoomService(db)

	_, err := svc.UpdateStatus(context.Background(), f.hotel.ID, validation.RoomStatusForm{RoomID: 404, Status: models.RoomMaintenance})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
