package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"hotel-ops/models"
	"hotel-ops/reports"
	"hotel-ops/validation"
	"hotel-ops/workflow"
)

type OrderService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{DB: db, Now: time.Now}
}

func (s *OrderService) List(ctx context.Context, hotelID uint, period reports.Period) ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.WithContext(ctx).
		Scopes(hotelScope(hotelID), withinPeriod("created_at", period, s.Now().UTC())).
		Preload("Items").
		Order("created_at DESC, id DESC").
		Find(&orders).Error
	return orders, err
}

func (s *OrderService) Get(ctx context.Context, hotelID, id uint) (models.Order, error) {
	var order models.Order
	err := s.DB.WithContext(ctx).Scopes(hotelScope(hotelID)).Preload("Items").First(&order, id).Error
	if err != nil {
		return models.Order{}, notFound(err, "order")
	}
	return order, nil
}

// Create places a pending order. Each line copies the menu item's current
// name and price.
func (s *OrderService) Create(ctx context.Context, hotelID uint, form validation.OrderForm) (models.Order, error) {
	if err := form.Validate(); err != nil {
		return models.Order{}, err
	}

	db := s.DB.WithContext(ctx)
	if form.StayID != nil {
		var n int64
		if err := db.Model(&models.Stay{}).Scopes(hotelScope(hotelID)).
			Where("id = ?", *form.StayID).Count(&n).Error; err != nil {
			return models.Order{}, err
		}
		if n == 0 {
			return models.Order{}, validation.Errors{"stayId": "does not exist in this hotel"}
		}
	}

	ids := make([]uint, 0, len(form.Items))
	for _, line := range form.Items {
		ids = append(ids, line.MenuItemID)
	}
	var menu []models.MenuItem
	if err := db.Scopes(hotelScope(hotelID)).Where("id IN ?", ids).Find(&menu).Error; err != nil {
		return models.Order{}, err
	}
	byID := make(map[uint]models.MenuItem, len(menu))
	for _, m := range menu {
		byID[m.ID] = m
	}

	errs := validation.Errors{}
	items := make([]models.OrderItem, 0, len(form.Items))
	subtotal := decimal.Zero
	for i, line := range form.Items {
		m, ok := byID[line.MenuItemID]
		field := fmt.Sprintf("items[%d].menuItemId", i)
		switch {
		case !ok:
			errs.Add(field, "does not exist on this menu")
			continue
		case m.Status != models.MenuAvailable:
			errs.Add(field, m.Name+" is not available")
			continue
		}
		items = append(items, models.OrderItem{
			MenuItemID: m.ID,
			Name:       m.Name,
			Quantity:   line.Quantity,
			Price:      m.Price,
		})
		subtotal = subtotal.Add(m.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	if len(errs) == 0 && form.Discount.GreaterThan(subtotal) {
		errs.Add("discount", "must not exceed the order subtotal")
	}
	if err := errs.Err(); err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		HotelID:       hotelID,
		StayID:        form.StayID,
		Type:          form.Type,
		Status:        models.OrderPending,
		Discount:      form.Discount,
		PaymentMethod: form.PaymentMethod,
		Items:         items,
	}
	if err := db.Create(&order).Error; err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// UpdateStatus moves one order along pending -> ready -> paid, or cancels a
// pending one.
func (s *OrderService) UpdateStatus(ctx context.Context, hotelID uint, form validation.OrderStatusForm) (models.Order, error) {
	if err := form.Validate(); err != nil {
		return models.Order{}, err
	}
	order, err := s.Get(ctx, hotelID, form.OrderID)
	if err != nil {
		return models.Order{}, err
	}
	if err := workflow.CheckOrderTransition(order.Status, form.Status, form.PaymentMethod); err != nil {
		if errors.Is(err, workflow.ErrIllegalTransition) {
			return models.Order{}, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		return models.Order{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	updates := map[string]interface{}{"status": form.Status}
	if form.Status == models.OrderPaid {
		updates["payment_method"] = form.PaymentMethod
	}
	if err := s.DB.WithContext(ctx).Model(&models.Order{}).
		Where("id = ?", order.ID).
		Updates(updates).Error; err != nil {
		return models.Order{}, err
	}
	order.Status = form.Status
	if form.Status == models.OrderPaid {
		order.PaymentMethod = form.PaymentMethod
	}
	return order, nil
}
