package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hotel-ops/models"
	"hotel-ops/validation"
)

// HotelContextService tracks which hotel each staff member is working in.
// The staff row is the source of truth; Redis, when configured, caches the
// lookup done on every request.
type HotelContextService struct {
	DB    *gorm.DB
	Redis *redis.Client
	TTL   time.Duration
}

func NewHotelContextService(db *gorm.DB, rdb *redis.Client, ttl time.Duration) *HotelContextService {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &HotelContextService{DB: db, Redis: rdb, TTL: ttl}
}

func cacheKey(staffID uint) string {
	return "hotel-ctx:staff:" + strconv.FormatUint(uint64(staffID), 10)
}

// Active returns the staff member's current hotel or ErrNoActiveHotel.
func (s *HotelContextService) Active(ctx context.Context, staffID uint) (uint, error) {
	if s.Redis != nil {
		raw, err := s.Redis.Get(ctx, cacheKey(staffID)).Result()
		if err == nil {
			if id, convErr := strconv.ParseUint(raw, 10, 64); convErr == nil {
				return uint(id), nil
			}
		} else if !errors.Is(err, redis.Nil) {
			log.Printf("⚠️ hotel context cache read failed: %v", err)
		}
	}

	var staff models.Staff
	if err := s.DB.WithContext(ctx).First(&staff, staffID).Error; err != nil {
		return 0, notFound(err, "staff member")
	}
	if staff.ActiveHotelID == nil || *staff.ActiveHotelID == 0 {
		return 0, ErrNoActiveHotel
	}
	s.remember(ctx, staffID, *staff.ActiveHotelID)
	return *staff.ActiveHotelID, nil
}

// Switch points the staff member at another hotel.
func (s *HotelContextService) Switch(ctx context.Context, staffID uint, form validation.SwitchHotelForm) (models.Hotel, error) {
	if err := form.Validate(); err != nil {
		return models.Hotel{}, err
	}

	var hotel models.Hotel
	if err := s.DB.WithContext(ctx).First(&hotel, form.HotelID).Error; err != nil {
		return models.Hotel{}, notFound(err, "hotel")
	}

	res := s.DB.WithContext(ctx).Model(&models.Staff{}).
		Where("id = ?", staffID).
		Update("active_hotel_id", hotel.ID)
	if res.Error != nil {
		return models.Hotel{}, fmt.Errorf("switch hotel: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return models.Hotel{}, &notFoundError{what: "staff member"}
	}

	s.remember(ctx, staffID, hotel.ID)
	log.Printf("🏨 staff %d switched to hotel %d", staffID, hotel.ID)
	return hotel, nil
}

func (s *HotelContextService) remember(ctx context.Context, staffID, hotelID uint) {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Set(ctx, cacheKey(staffID), hotelID, s.TTL).Err(); err != nil {
		log.Printf("⚠️ hotel context cache write failed: %v", err)
	}
}
