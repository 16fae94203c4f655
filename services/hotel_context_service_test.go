package services

import (
	"context"
	"errors"
	"testing"

	"hotel-ops/models"
	"hotel-ops/validation"
)

func TestSwitchHotel(t *testing.T) {
	db := newTestDB(t)
	first := seedHotel(t, db, "Harbour View")
	second := seedHotel(t, db, "Hilltop")
	staff := models.Staff{HotelID: first.hotel.ID, Email: "desk@example.com", Role: "manager"}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatalf("create staff: %v", err)
	}

	svc := NewHotelContextService(db, nil, 0)
	ctx := context.Background()

	if _, err := svc.Active(ctx, staff.ID); !errors.Is(err, ErrNoActiveHotel) {
		t.Fatalf("Active before switch: %v, want ErrNoActiveHotel", err)
	}

	hotel, err := svc.Switch(ctx, staff.ID, validation.SwitchHotelForm{HotelID: second.hotel.ID})
	if err != nil {
		t.Fatalf("Switch: %v", err)
	}
	if hotel.Name != "Hilltop" {
		t.Errorf("switched to %q", hotel.Name)
	}

	active, err := svc.Active(ctx, staff.ID)
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if active != second.hotel.ID {
		t.Errorf("active = %d, want %d", active, second.hotel.ID)
	}
}

func TestSwitchToUnknownHotel(t *testing.T) {
	db := newTestDB(t)
	svc := NewHotelContextService(db, nil, 0)

	_, err := svc.Switch(context.Background(), 1, validation.SwitchHotelForm{HotelID: 42})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
