package client

import (
	"context"
	"net/http"

	"hotel-ops/models"
	"hotel-ops/validation"
)

func (c *Client) FetchHotels(ctx context.Context) ([]models.Hotel, error) {
	return fetchInto(ctx, c, c.Store.Hotels, "/hotel/hotels", false)
}

func (c *Client) AddHotel(ctx context.Context, form validation.HotelForm) (models.Hotel, error) {
	if err := form.Validate(); err != nil {
		return models.Hotel{}, err
	}
	hotel, _, err := createInto(ctx, c, c.Store.Hotels, "/hotel/add-hotel", form)
	return hotel, err
}

// SwitchHotel changes the active hotel server side, then drops every
// collection fetched for the previous one.
func (c *Client) SwitchHotel(ctx context.Context, hotelID uint) (models.Hotel, error) {
	form := validation.SwitchHotelForm{HotelID: hotelID}
	if err := form.Validate(); err != nil {
		return models.Hotel{}, err
	}
	var hotel models.Hotel
	if err := c.do(ctx, http.MethodPost, "/hotel/switch-hotel", form, &hotel); err != nil {
		return models.Hotel{}, err
	}
	c.Store.SwitchHotel(hotel.ID)
	return hotel, nil
}

// CurrentHotel asks the server which hotel is active and records it.
func (c *Client) CurrentHotel(ctx context.Context) (models.Hotel, error) {
	var hotel models.Hotel
	if err := c.do(ctx, http.MethodGet, "/hotel/current", nil, &hotel); err != nil {
		return models.Hotel{}, err
	}
	if c.Store.ActiveHotelID() != hotel.ID {
		c.Store.SwitchHotel(hotel.ID)
	}
	return hotel, nil
}
