package client

import (
	"context"
	"net/http"
	"strconv"

	"hotel-ops/models"
	"hotel-ops/validation"
)

func (c *Client) FetchRooms(ctx context.Context) ([]models.Room, error) {
	return fetchInto(ctx, c, c.Store.Rooms, "/hotel/rooms", false)
}

func (c *Client) AddRoom(ctx context.Context, form validation.RoomForm) (models.Room, error) {
	if err := form.Validate(); err != nil {
		return models.Room{}, err
	}
	room, _, err := createInto(ctx, c, c.Store.Rooms, "/hotel/add-room", form)
	return room, err
}

func (c *Client) UpdateRoom(ctx context.Context, form validation.RoomForm) (models.Room, error) {
	if err := form.ValidateUpdate(); err != nil {
		return models.Room{}, err
	}
	return c.putRoom(ctx, http.MethodPut, "/hotel/update-room", form)
}

func (c *Client) UpdateRoomStatus(ctx context.Context, form validation.RoomStatusForm) (models.Room, error) {
	if err := form.Validate(); err != nil {
		return models.Room{}, err
	}
	return c.putRoom(ctx, http.MethodPut, "/hotel/update-room-status", form)
}

func (c *Client) MarkRoomForCleaning(ctx context.Context, form validation.MarkCleaningForm) (models.Room, error) {
	if err := form.Validate(); err != nil {
		return models.Room{}, err
	}
	return c.putRoom(ctx, http.MethodPatch, "/hotel/mark-room-for-cleaning", form)
}

func (c *Client) putRoom(ctx context.Context, method, path string, body interface{}) (models.Room, error) {
	var room models.Room
	if err := c.do(ctx, method, path, body, &room); err != nil {
		return models.Room{}, err
	}
	c.Store.Rooms.Update(room)
	return room, nil
}

func (c *Client) FetchRoomTypes(ctx context.Context) ([]models.RoomType, error) {
	return fetchInto(ctx, c, c.Store.RoomTypes, "/hotel/room-types", false)
}

func (c *Client) AddRoomType(ctx context.Context, form validation.RoomTypeForm) (models.RoomType, error) {
	if err := form.Validate(); err != nil {
		return models.RoomType{}, err
	}
	rt, _, err := createInto(ctx, c, c.Store.RoomTypes, "/hotel/add-room-type", form)
	return rt, err
}

func (c *Client) UpdateRoomType(ctx context.Context, form validation.RoomTypeForm) (models.RoomType, error) {
	if err := form.Validate(); err != nil {
		return models.RoomType{}, err
	}
	var rt models.RoomType
	if err := c.do(ctx, http.MethodPut, "/hotel/update-room-type", form, &rt); err != nil {
		return models.RoomType{}, err
	}
	c.Store.RoomTypes.Update(rt)
	return rt, nil
}

func (c *Client) DeleteRoomType(ctx context.Context, id uint) error {
	path := "/hotel/delete-room-type?id=" + strconv.FormatUint(uint64(id), 10)
	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}
	c.Store.RoomTypes.Delete(id)
	return nil
}
