package services

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"hotel-ops/models"
	"hotel-ops/reports"
	"hotel-ops/validation"
)

// ScheduledServiceService books extras such as spa slots or transfers.
type ScheduledServiceService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewScheduledServiceService(db *gorm.DB) *ScheduledServiceService {
	return &ScheduledServiceService{DB: db, Now: time.Now}
}

func (s *ScheduledServiceService) List(ctx context.Context, hotelID uint, period reports.Period) ([]models.ScheduledService, error) {
	var out []models.ScheduledService
	err := s.DB.WithContext(ctx).
		Scopes(hotelScope(hotelID), withinPeriod("scheduled_at", period, s.Now().UTC())).
		Order("scheduled_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

func (s *ScheduledServiceService) Schedule(ctx context.Context, hotelID uint, form validation.ScheduleServiceForm) (models.ScheduledService, error) {
	if err := form.Validate(); err != nil {
		return models.ScheduledService{}, err
	}
	if form.StayID != nil {
		var n int64
		if err := s.DB.WithContext(ctx).Model(&models.Stay{}).Scopes(hotelScope(hotelID)).
			Where("id = ?", *form.StayID).Count(&n).Error; err != nil {
			return models.ScheduledService{}, err
		}
		if n == 0 {
			return models.ScheduledService{}, validation.Errors{"stayId": "does not exist in this hotel"}
		}
	}
	svc := models.ScheduledService{
		HotelID:       hotelID,
		ServiceID:     form.ServiceID,
		ServiceName:   strings.TrimSpace(form.ServiceName),
		StayID:        form.StayID,
		ScheduledAt:   form.When().UTC(),
		TotalAmount:   form.TotalAmount,
		PaymentStatus: form.PaymentStatus,
	}
	if err := s.DB.WithContext(ctx).Create(&svc).Error; err != nil {
		return models.ScheduledService{}, err
	}
	return svc, nil
}

func (s *ScheduledServiceService) UpdatePayment(ctx context.Context, hotelID uint, form validation.ServicePaymentForm) (models.ScheduledService, error) {
	if err := form.Validate(); err != nil {
		return models.ScheduledService{}, err
	}
	var svc models.ScheduledService
	if err := s.DB.WithContext(ctx).Scopes(hotelScope(hotelID)).First(&svc, form.ID).Error; err != nil {
		return models.ScheduledService{}, notFound(err, "scheduled service")
	}
	svc.PaymentStatus = form.PaymentStatus
	if err := s.DB.WithContext(ctx).Save(&svc).Error; err != nil {
		return models.ScheduledService{}, err
	}
	return svc, nil
}
