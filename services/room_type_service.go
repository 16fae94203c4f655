package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-ops/models"
	"hotel-ops/validation"
)

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) List(ctx context.Context, hotelID uint) ([]models.RoomType, error) {
	var types []models.RoomType
	err := s.DB.WithContext(ctx).Scopes(hotelScope(hotelID)).Order("name").Find(&types).Error
	return types, err
}

func (s *RoomTypeService) Get(ctx context.Context, hotelID, id uint) (models.RoomType, error) {
	var rt models.RoomType
	if err := s.DB.WithContext(ctx).Scopes(hotelScope(hotelID)).First(&rt, id).Error; err != nil {
		return models.RoomType{}, notFound(err, "room type")
	}
	return rt, nil
}

// amenities of a room type are a subset of what the hotel offers
func (s *RoomTypeService) checkAmenities(ctx context.Context, hotelID uint, amenities []string) error {
	if len(amenities) == 0 {
		return nil
	}
	var hotel models.Hotel
	if err := s.DB.WithContext(ctx).First(&hotel, hotelID).Error; err != nil {
		return notFound(err, "hotel")
	}
	offered := make(map[string]bool, len(hotel.Amenities))
	for _, a := range hotel.Amenities {
		offered[strings.ToLower(a)] = true
	}
	var missing []string
	for _, a := range amenities {
		if !offered[strings.ToLower(strings.TrimSpace(a))] {
			missing = append(missing, a)
		}
	}
	if len(missing) > 0 {
		return validation.Errors{"amenities": "not offered by the hotel: " + strings.Join(missing, ", ")}
	}
	return nil
}

func (s *RoomTypeService) Create(ctx context.Context, hotelID uint, form validation.RoomTypeForm) (models.RoomType, error) {
	if err := form.Validate(); err != nil {
		return models.RoomType{}, err
	}
	if err := s.checkAmenities(ctx, hotelID, form.Amenities); err != nil {
		return models.RoomType{}, err
	}
	rt := models.RoomType{
		HotelID:      hotelID,
		Name:         strings.TrimSpace(form.Name),
		Capacity:     form.Capacity,
		NightlyPrice: form.NightlyPrice,
		Amenities:    datatypes.NewJSONSlice(form.Amenities),
		Description:  form.Description,
	}
	if err := s.DB.WithContext(ctx).Create(&rt).Error; err != nil {
		return models.RoomType{}, err
	}
	return rt, nil
}

func (s *RoomTypeService) Update(ctx context.Context, hotelID uint, form validation.RoomTypeForm) (models.RoomType, error) {
	if form.ID == 0 {
		return models.RoomType{}, validation.Errors{"id": "is required"}
	}
	if err := form.Validate(); err != nil {
		return models.RoomType{}, err
	}
	rt, err := s.Get(ctx, hotelID, form.ID)
	if err != nil {
		return models.RoomType{}, err
	}
	if err := s.checkAmenities(ctx, hotelID, form.Amenities); err != nil {
		return models.RoomType{}, err
	}
	rt.Name = strings.TrimSpace(form.Name)
	rt.Capacity = form.Capacity
	rt.NightlyPrice = form.NightlyPrice
	rt.Amenities = datatypes.NewJSONSlice(form.Amenities)
	rt.Description = form.Description
	if err := s.DB.WithContext(ctx).Save(&rt).Error; err != nil {
		return models.RoomType{}, err
	}
	return rt, nil
}

// Delete refuses while any room still references the type.
func (s *RoomTypeService) Delete(ctx context.Context, hotelID, id uint) error {
	if _, err := s.Get(ctx, hotelID, id); err != nil {
		return err
	}
	var inUse int64
	if err := s.DB.WithContext(ctx).Model(&models.Room{}).
		Scopes(hotelScope(hotelID)).
		Where("room_type_id = ?", id).
		Count(&inUse).Error; err != nil {
		return err
	}
	if inUse > 0 {
		return fmt.Errorf("%w: room type is used by %d room(s)", ErrConflict, inUse)
	}
	return s.DB.WithContext(ctx).Delete(&models.RoomType{}, id).Error
}
