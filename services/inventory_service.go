package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"hotel-ops/models"
	"hotel-ops/validation"
)

type InventoryService struct {
	DB *gorm.DB
}

func NewInventoryService(db *gorm.DB) *InventoryService {
	return &InventoryService{DB: db}
}

func (s *InventoryService) List(ctx context.Context, hotelID uint) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := s.DB.WithContext(ctx).Scopes(hotelScope(hotelID)).Order("name").Find(&items).Error
	return items, err
}

func (s *InventoryService) Create(ctx context.Context, hotelID uint, form validation.InventoryForm) (models.InventoryItem, error) {
	if err := form.Validate(); err != nil {
		return models.InventoryItem{}, err
	}
	item := models.InventoryItem{
		HotelID:      hotelID,
		Name:         strings.TrimSpace(form.Name),
		Unit:         strings.TrimSpace(form.Unit),
		Quantity:     form.Quantity,
		ReorderLevel: form.ReorderLevel,
		UnitCost:     form.UnitCost,
	}
	if err := s.DB.WithContext(ctx).Create(&item).Error; err != nil {
		return models.InventoryItem{}, err
	}
	return item, nil
}
