package services

import (
	"context"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-ops/models"
	"hotel-ops/validation"
)

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

// Create registers a new property.
func (s *HotelService) Create(ctx context.Context, form validation.HotelForm) (models.Hotel, error) {
	if err := form.Validate(); err != nil {
		return models.Hotel{}, err
	}
	amenities := make([]string, 0, len(form.Amenities))
	for _, a := range form.Amenities {
		amenities = append(amenities, strings.TrimSpace(a))
	}
	hotel := models.Hotel{
		Name:         strings.TrimSpace(form.Name),
		CurrencyCode: strings.ToUpper(form.CurrencyCode),
		Address:      strings.TrimSpace(form.Address),
		Amenities:    datatypes.NewJSONSlice(amenities),
	}
	if err := s.DB.WithContext(ctx).Create(&hotel).Error; err != nil {
		return models.Hotel{}, err
	}
	return hotel, nil
}

func (s *HotelService) List(ctx context.Context) ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := s.DB.WithContext(ctx).Order("name").Find(&hotels).Error
	return hotels, err
}

func (s *HotelService) Get(ctx context.Context, id uint) (models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.WithContext(ctx).First(&hotel, id).Error; err != nil {
		return models.Hotel{}, notFound(err, "hotel")
	}
	return hotel, nil
}
