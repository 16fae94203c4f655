package services

import (
	"context"

	"gorm.io/gorm"

	"hotel-ops/models"
)

type StaffService struct {
	DB *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{DB: db}
}

// List is the roster of the given hotel.
func (s *StaffService) List(ctx context.Context, hotelID uint) ([]models.Staff, error) {
	var staff []models.Staff
	err := s.DB.WithContext(ctx).Scopes(hotelScope(hotelID)).Order("full_name").Find(&staff).Error
	return staff, err
}
