package client

import (
	"context"
	"fmt"
	"net/http"

	"hotel-ops/models"
	"hotel-ops/validation"
	"hotel-ops/workflow"
)

func (c *Client) FetchStays(ctx context.Context) ([]models.Stay, error) {
	return fetchInto(ctx, c, c.Store.Stays, "/hotel/stays", true)
}

// checkCapacity uses the room and room type already in the store. Nothing is
// checked when either is missing; the server repeats the check anyway.
func (c *Client) checkCapacity(form validation.StayForm) error {
	room, ok := c.Store.Rooms.Get(form.RoomID)
	if !ok {
		return nil
	}
	rt, ok := c.Store.RoomTypes.Get(room.RoomTypeID)
	if !ok || rt.Capacity == 0 {
		return nil
	}
	if form.Guests() > rt.Capacity {
		return validation.Errors{
			"adults": fmt.Sprintf("party of %d exceeds the room capacity of %d", form.Guests(), rt.Capacity),
		}
	}
	return nil
}

// CreateStay submits a reservation, booking or walk-in. A walk-in also flips
// its room to occupied in the store without refetching the room.
func (c *Client) CreateStay(ctx context.Context, form validation.StayForm) (models.Stay, error) {
	if err := form.Validate(c.Now()); err != nil {
		return models.Stay{}, err
	}
	if err := c.checkCapacity(form); err != nil {
		return models.Stay{}, err
	}
	stay, kept, err := createInto(ctx, c, c.Store.Stays, "/hotel/create-stay", form)
	if err != nil {
		return models.Stay{}, err
	}
	if kept && stay.Type == models.StayWalkIn {
		c.Store.SetRoomStatus(stay.RoomID, workflow.WalkInRoomStatus())
	}
	return stay, nil
}

// UpdateStay edits a stay. Status and payment status are sent as chosen.
func (c *Client) UpdateStay(ctx context.Context, form validation.StayUpdateForm) (models.Stay, error) {
	if err := form.Validate(); err != nil {
		return models.Stay{}, err
	}
	if err := c.checkCapacity(form.StayForm); err != nil {
		return models.Stay{}, err
	}
	var stay models.Stay
	if err := c.do(ctx, http.MethodPut, "/hotel/update-stay", form, &stay); err != nil {
		return models.Stay{}, err
	}
	c.Store.Stays.Update(stay)
	return stay, nil
}
