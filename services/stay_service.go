package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-ops/models"
	"hotel-ops/reports"
	"hotel-ops/validation"
	"hotel-ops/workflow"
)

// StayService handles reservations, bookings and walk-ins.
type StayService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewStayService(db *gorm.DB) *StayService {
	return &StayService{DB: db, Now: time.Now}
}

func newReferenceCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ST-" + strings.ToUpper(raw[:10])
}

// List returns the hotel's stays overlapping the period, latest check-in first.
func (s *StayService) List(ctx context.Context, hotelID uint, period reports.Period) ([]models.Stay, error) {
	var stays []models.Stay
	err := s.DB.WithContext(ctx).
		Scopes(hotelScope(hotelID), staysOverlapping(period, s.Now().UTC())).
		Order("check_in_date DESC, id DESC").
		Find(&stays).Error
	return stays, err
}

func (s *StayService) Get(ctx context.Context, hotelID, id uint) (models.Stay, error) {
	var stay models.Stay
	if err := s.DB.WithContext(ctx).Scopes(hotelScope(hotelID)).First(&stay, id).Error; err != nil {
		return models.Stay{}, notFound(err, "stay")
	}
	return stay, nil
}

// lockRoom loads the room inside tx and checks the party fits its room type.
func lockRoom(tx *gorm.DB, hotelID, roomID uint, guests int) (models.Room, error) {
	var room models.Room
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(hotelScope(hotelID)).
		First(&room, roomID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, validation.Errors{"roomId": "does not exist in this hotel"}
		}
		return models.Room{}, err
	}

	var rt models.RoomType
	if err := tx.First(&rt, room.RoomTypeID).Error; err != nil {
		return models.Room{}, notFound(err, "room type")
	}
	if rt.Capacity > 0 && guests > rt.Capacity {
		return models.Room{}, validation.Errors{
			"adults": fmt.Sprintf("party of %d exceeds the room capacity of %d", guests, rt.Capacity),
		}
	}
	return room, nil
}

// Create records a new stay. A walk-in also flips its room to occupied in
// the same transaction and is refused when the room is not available.
func (s *StayService) Create(ctx context.Context, hotelID uint, form validation.StayForm) (models.Stay, error) {
	now := s.Now()
	if err := form.ValidateAnyZone(now); err != nil {
		return models.Stay{}, err
	}
	in, out, paidOn := form.Dates()

	stay := models.Stay{
		HotelID:       hotelID,
		ReferenceCode: newReferenceCode(),
		GuestName:     strings.TrimSpace(form.GuestName),
		GuestEmail:    strings.ToLower(strings.TrimSpace(form.GuestEmail)),
		GuestPhone:    strings.TrimSpace(form.GuestPhone),
		RoomID:        form.RoomID,
		Type:          form.Type,
		CheckInDate:   in,
		CheckOutDate:  out,
		Adults:        form.Adults,
		Children:      form.Children,
		Status:        workflow.InitialStayStatus(form.Type),
		PaymentMethod: form.PaymentMethod,
		PaymentStatus: form.PaymentStatus,
		PaidAmount:    form.PaidAmount,
		TotalAmount:   form.TotalAmount,
		PaymentDate:   paidOn,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		room, err := lockRoom(tx, hotelID, form.RoomID, form.Guests())
		if err != nil {
			return err
		}

		if form.Type == models.StayWalkIn && room.Status != models.RoomAvailable {
			return fmt.Errorf("%w: room %s is %s", ErrConflict, room.RoomNumber, room.Status)
		}

		if err := tx.Create(&stay).Error; err != nil {
			return err
		}

		if form.Type == models.StayWalkIn {
			if err := tx.Model(&models.Room{}).
				Where("id = ?", room.ID).
				Update("status", workflow.WalkInRoomStatus()).Error; err != nil {
				return err
			}
			log.Printf("🛎️ walk-in %s checked into room %s", stay.ReferenceCode, room.RoomNumber)
		}
		return nil
	})
	if err != nil {
		return models.Stay{}, err
	}
	return stay, nil
}

// Update edits an existing stay. Status and payment status take any known
// value; no room side effects happen here.
func (s *StayService) Update(ctx context.Context, hotelID uint, form validation.StayUpdateForm) (models.Stay, error) {
	if err := form.Validate(); err != nil {
		return models.Stay{}, err
	}
	if err := workflow.CheckStayUpdate(form.Status, form.PaymentStatus); err != nil {
		return models.Stay{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	in, out, paidOn := form.Dates()

	var stay models.Stay
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Scopes(hotelScope(hotelID)).First(&stay, form.ID).Error; err != nil {
			return notFound(err, "stay")
		}
		if _, err := lockRoom(tx, hotelID, form.RoomID, form.Guests()); err != nil {
			return err
		}

		stay.GuestName = strings.TrimSpace(form.GuestName)
		stay.GuestEmail = strings.ToLower(strings.TrimSpace(form.GuestEmail))
		stay.GuestPhone = strings.TrimSpace(form.GuestPhone)
		stay.RoomID = form.RoomID
		stay.Type = form.Type
		stay.CheckInDate = in
		stay.CheckOutDate = out
		stay.Adults = form.Adults
		stay.Children = form.Children
		stay.Status = form.Status
		stay.PaymentMethod = form.PaymentMethod
		stay.PaymentStatus = form.PaymentStatus
		stay.PaidAmount = form.PaidAmount
		stay.TotalAmount = form.TotalAmount
		stay.PaymentDate = paidOn

		return tx.Save(&stay).Error
	})
	if err != nil {
		return models.Stay{}, err
	}
	return stay, nil
}
