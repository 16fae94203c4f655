// Package workflow holds the status rules for orders, rooms and stays.
package workflow

import (
	"errors"
	"fmt"

	"hotel-ops/models"
)

var (
	ErrUnknownStatus         = errors.New("unknown status")
	ErrIllegalTransition     = errors.New("illegal status transition")
	ErrPaymentMethodRequired = errors.New("payment method required to mark an order paid")
)

// OrderAction is one button on an order card.
type OrderAction string

const (
	ActionMarkReady OrderAction = "mark_ready"
	ActionCancel    OrderAction = "cancel"
	ActionMarkPaid  OrderAction = "mark_paid"
)

// Target is the status an action moves the order to.
func (a OrderAction) Target() models.OrderStatus {
	switch a {
	case ActionMarkReady:
		return models.OrderReady
	case ActionCancel:
		return models.OrderCancelled
	case ActionMarkPaid:
		return models.OrderPaid
	}
	return ""
}

var orderActions = map[models.OrderStatus][]OrderAction{
	models.OrderPending: {ActionMarkReady, ActionCancel},
	models.OrderReady:   {ActionMarkPaid},
	// paid and cancelled are terminal
}

// OrderActions lists the actions offered for an order in the given status.
func OrderActions(status models.OrderStatus) []OrderAction {
	return append([]OrderAction(nil), orderActions[status]...)
}

// IsTerminal reports whether no further action exists for status.
func IsTerminal(status models.OrderStatus) bool {
	return len(orderActions[status]) == 0
}

// CheckOrderTransition validates moving an order from one status to another.
// Marking paid needs a valid payment method.
func CheckOrderTransition(from, to models.OrderStatus, method models.PaymentMethod) error {
	if !from.Valid() || !to.Valid() {
		return fmt.Errorf("%w: %q -> %q", ErrUnknownStatus, from, to)
	}
	allowed := false
	for _, a := range orderActions[from] {
		if a.Target() == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return fmt.Errorf("%w: order %s -> %s", ErrIllegalTransition, from, to)
	}
	if to == models.OrderPaid && !method.Valid() {
		return ErrPaymentMethodRequired
	}
	return nil
}

// CheckRoomTransition accepts any known target: rooms are edited freely and
// marked for cleaning from any state.
func CheckRoomTransition(from, to models.RoomStatus) error {
	if !to.Valid() {
		return fmt.Errorf("%w: room status %q", ErrUnknownStatus, to)
	}
	return nil
}

// StampsCleaning reports whether a room moving from -> to has just been
// cleaned.
func StampsCleaning(from, to models.RoomStatus) bool {
	return to == models.RoomAvailable &&
		(from == models.RoomCleaning || from == models.RoomMarkedForCleaning)
}

// WalkInRoomStatus is the status a room takes once a walk-in is created
// against it.
func WalkInRoomStatus() models.RoomStatus { return models.RoomOccupied }

// CheckStayUpdate accepts any known stay status and payment status.
func CheckStayUpdate(status models.StayStatus, payment models.PaymentStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: stay status %q", ErrUnknownStatus, status)
	}
	if !payment.Valid() {
		return fmt.Errorf("%w: payment status %q", ErrUnknownStatus, payment)
	}
	return nil
}

// InitialStayStatus is the status a new stay starts in.
func InitialStayStatus(t models.StayType) models.StayStatus {
	if t == models.StayWalkIn {
		return models.StayCheckedIn
	}
	return models.StayConfirmed
}
