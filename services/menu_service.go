package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"hotel-ops/models"
	"hotel-ops/validation"
)

type MenuService struct {
	DB *gorm.DB
}

func NewMenuService(db *gorm.DB) *MenuService {
	return &MenuService{DB: db}
}

func (s *MenuService) List(ctx context.Context, hotelID uint) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := s.DB.WithContext(ctx).Scopes(hotelScope(hotelID)).Order("category, name").Find(&items).Error
	return items, err
}

func (s *MenuService) Create(ctx context.Context, hotelID uint, form validation.MenuForm) (models.MenuItem, error) {
	if err := form.Validate(); err != nil {
		return models.MenuItem{}, err
	}
	status := form.Status
	if status == "" {
		status = models.MenuAvailable
	}
	item := models.MenuItem{
		HotelID:         hotelID,
		Name:            strings.TrimSpace(form.Name),
		Category:        strings.TrimSpace(form.Category),
		Price:           form.Price,
		PrepTimeMinutes: form.PrepTimeMinutes,
		Ingredients:     form.Ingredients,
		Status:          status,
	}
	if err := s.DB.WithContext(ctx).Create(&item).Error; err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

// Update changes a menu item. Existing orders keep the price they were
// placed at.
func (s *MenuService) Update(ctx context.Context, hotelID uint, form validation.MenuForm) (models.MenuItem, error) {
	if form.ID == 0 {
		return models.MenuItem{}, validation.Errors{"id": "is required"}
	}
	if err := form.Validate(); err != nil {
		return models.MenuItem{}, err
	}
	var item models.MenuItem
	if err := s.DB.WithContext(ctx).Scopes(hotelScope(hotelID)).First(&item, form.ID).Error; err != nil {
		return models.MenuItem{}, notFound(err, "menu item")
	}
	item.Name = strings.TrimSpace(form.Name)
	item.Category = strings.TrimSpace(form.Category)
	item.Price = form.Price
	item.PrepTimeMinutes = form.PrepTimeMinutes
	item.Ingredients = form.Ingredients
	if form.Status != "" {
		item.Status = form.Status
	}
	if err := s.DB.WithContext(ctx).Save(&item).Error; err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}
