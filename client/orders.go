package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"hotel-ops/models"
	"hotel-ops/validation"
	"hotel-ops/workflow"
)

// ErrActionNotOffered is returned for an order action that the order's
// current status does not offer. No request is sent.
var ErrActionNotOffered = errors.New("action not offered for this order")

func (c *Client) FetchMenu(ctx context.Context) ([]models.MenuItem, error) {
	return fetchInto(ctx, c, c.Store.Menu, "/hotel/menu", false)
}

func (c *Client) CreateMenuItem(ctx context.Context, form validation.MenuForm) (models.MenuItem, error) {
	if err := form.Validate(); err != nil {
		return models.MenuItem{}, err
	}
	item, _, err := createInto(ctx, c, c.Store.Menu, "/hotel/create-menu", form)
	return item, err
}

func (c *Client) UpdateMenuItem(ctx context.Context, form validation.MenuForm) (models.MenuItem, error) {
	if err := form.Validate(); err != nil {
		return models.MenuItem{}, err
	}
	var item models.MenuItem
	if err := c.do(ctx, http.MethodPut, "/hotel/update-menu", form, &item); err != nil {
		return models.MenuItem{}, err
	}
	c.Store.Menu.Update(item)
	return item, nil
}

func (c *Client) FetchOrders(ctx context.Context) ([]models.Order, error) {
	return fetchInto(ctx, c, c.Store.Orders, "/hotel/orders", true)
}

func (c *Client) CreateOrder(ctx context.Context, form validation.OrderForm) (models.Order, error) {
	if err := form.Validate(); err != nil {
		return models.Order{}, err
	}
	order, _, err := createInto(ctx, c, c.Store.Orders, "/hotel/create-order", form)
	return order, err
}

// UpdateOrderStatus performs one of the actions the order's status offers.
// method is only used by mark_paid.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID uint, action workflow.OrderAction, method models.PaymentMethod) (models.Order, error) {
	order, ok := c.Store.Orders.Get(orderID)
	if !ok {
		return models.Order{}, fmt.Errorf("order %d is not loaded", orderID)
	}
	offered := false
	for _, a := range workflow.OrderActions(order.Status) {
		if a == action {
			offered = true
			break
		}
	}
	if !offered {
		return models.Order{}, fmt.Errorf("%w: %s on %s", ErrActionNotOffered, action, order.Status)
	}

	form := validation.OrderStatusForm{OrderID: orderID, Status: action.Target()}
	if action == workflow.ActionMarkPaid {
		form.PaymentMethod = method
	}
	if err := form.Validate(); err != nil {
		return models.Order{}, err
	}
	var updated models.Order
	if err := c.do(ctx, http.MethodPut, "/hotel/update-order-status", form, &updated); err != nil {
		return models.Order{}, err
	}
	c.Store.Orders.Update(updated)
	return updated, nil
}

func (c *Client) FetchScheduledServices(ctx context.Context) ([]models.ScheduledService, error) {
	return fetchInto(ctx, c, c.Store.Services, "/hotel/scheduled-services", true)
}

func (c *Client) ScheduleService(ctx context.Context, form validation.ScheduleServiceForm) (models.ScheduledService, error) {
	if err := form.Validate(); err != nil {
		return models.ScheduledService{}, err
	}
	svc, _, err := createInto(ctx, c, c.Store.Services, "/hotel/schedule-service", form)
	return svc, err
}

func (c *Client) UpdateScheduledService(ctx context.Context, form validation.ServicePaymentForm) (models.ScheduledService, error) {
	if err := form.Validate(); err != nil {
		return models.ScheduledService{}, err
	}
	var svc models.ScheduledService
	if err := c.do(ctx, http.MethodPut, "/hotel/update-scheduled-service", form, &svc); err != nil {
		return models.ScheduledService{}, err
	}
	c.Store.Services.Update(svc)
	return svc, nil
}
