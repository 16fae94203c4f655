package workflow

import (
	"errors"
	"testing"

	"hotel-ops/models"
)

func TestOrderTransitions(t *testing.T) {
	cases := []struct {
		from, to models.OrderStatus
		method   models.PaymentMethod
		want     error
	}{
		{models.OrderPending, models.OrderReady, "", nil},
		{models.OrderPending, models.OrderCancelled, "", nil},
		{models.OrderReady, models.OrderPaid, models.PaymentCard, nil},
		{models.OrderReady, models.OrderPaid, "", ErrPaymentMethodRequired},
		{models.OrderReady, models.OrderPaid, "bitcoin", ErrPaymentMethodRequired},
		{models.OrderPending, models.OrderPaid, models.PaymentCash, ErrIllegalTransition},
		{models.OrderReady, models.OrderCancelled, "", ErrIllegalTransition},
		{models.OrderPaid, models.OrderPending, "", ErrIllegalTransition},
		{models.OrderCancelled, models.OrderReady, "", ErrIllegalTransition},
		{models.OrderPending, "served", "", ErrUnknownStatus},
	}
	for _, c := range cases {
		err := CheckOrderTransition(c.from, c.to, c.method)
		if c.want == nil && err != nil {
			t.Errorf("%s -> %s: unexpected error %v", c.from, c.to, err)
		}
		if c.want != nil && !errors.Is(err, c.want) {
			t.Errorf("%s -> %s: err = %v, want %v", c.from, c.to, err, c.want)
		}
	}
}

func TestTerminalOrderStatuses(t *testing.T) {
	for _, s := range []models.OrderStatus{models.OrderPaid, models.OrderCancelled} {
		if !IsTerminal(s) || len(OrderActions(s)) != 0 {
			t.Errorf("%s should be terminal", s)
		}
	}
	if IsTerminal(models.OrderPending) {
		t.Error("pending is not terminal")
	}
	if got := OrderActions(models.OrderReady); len(got) != 1 || got[0] != ActionMarkPaid {
		t.Errorf("ready actions = %v", got)
	}
}

func TestRoomTransitions(t *testing.T) {
	for _, to := range models.RoomStatuses {
		if err := CheckRoomTransition(models.RoomOccupied, to); err != nil {
			t.Errorf("occupied -> %s: %v", to, err)
		}
	}
	if err := CheckRoomTransition(models.RoomAvailable, "haunted"); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("err = %v, want ErrUnknownStatus", err)
	}
}

func TestStampsCleaning(t *testing.T) {
	if !StampsCleaning(models.RoomCleaning, models.RoomAvailable) {
		t.Error("cleaning -> available should stamp")
	}
	if !StampsCleaning(models.RoomMarkedForCleaning, models.RoomAvailable) {
		t.Error("marked -> available should stamp")
	}
	if StampsCleaning(models.RoomOccupied, models.RoomAvailable) {
		t.Error("occupied -> available should not stamp")
	}
}

func TestStayUpdateIsFreeForm(t *testing.T) {
	if err := CheckStayUpdate(models.StayCheckedOut, models.PaymentRefunded); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := CheckStayUpdate("lost", models.PaymentPaid); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("err = %v", err)
	}
	if InitialStayStatus(models.StayWalkIn) != models.StayCheckedIn {
		t.Error("walk-ins start checked in")
	}
	if InitialStayStatus(models.StayReserved) != models.StayConfirmed {
		t.Error("reservations start confirmed")
	}
}
