package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"hotel-ops/models"
	"hotel-ops/validation"
	"hotel-ops/workflow"
)

type RoomService struct {
	DB  *gorm.DB
	Now func() time.Time
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db, Now: time.Now}
}

func (s *RoomService) List(ctx context.Context, hotelID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := s.DB.WithContext(ctx).Scopes(hotelScope(hotelID)).Order("room_number").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) Get(ctx context.Context, hotelID, id uint) (models.Room, error) {
	var room models.Room
	err := s.DB.WithContext(ctx).Scopes(hotelScope(hotelID)).First(&room, id).Error
	if err != nil {
		return models.Room{}, notFound(err, "room")
	}
	return room, nil
}

func (s *RoomService) checkRoomType(ctx context.Context, hotelID, roomTypeID uint) error {
	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.RoomType{}).
		Scopes(hotelScope(hotelID)).
		Where("id = ?", roomTypeID).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return validation.Errors{"roomTypeId": "does not exist in this hotel"}
	}
	return nil
}

// Create adds a room. Room numbers are unique per hotel.
func (s *RoomService) Create(ctx context.Context, hotelID uint, form validation.RoomForm) (models.Room, error) {
	if err := form.Validate(); err != nil {
		return models.Room{}, err
	}
	if err := s.checkRoomType(ctx, hotelID, form.RoomTypeID); err != nil {
		return models.Room{}, err
	}

	status := form.Status
	if status == "" {
		status = models.RoomAvailable
	}
	room := models.Room{
		HotelID:    hotelID,
		RoomNumber: strings.TrimSpace(form.RoomNumber),
		Floor:      form.Floor,
		RoomTypeID: form.RoomTypeID,
		Status:     status,
		Note:       form.Note,
	}
	if err := s.DB.WithContext(ctx).Create(&room).Error; err != nil {
		if isDuplicateKey(err) {
			log.Printf("❌ Duplicate Room Number: %s (hotel %d)", room.RoomNumber, hotelID)
			return models.Room{}, fmt.Errorf("%w: room number %q already exists", ErrConflict, room.RoomNumber)
		}
		return models.Room{}, err
	}
	return room, nil
}

// Update edits number, floor, type, status and note.
func (s *RoomService) Update(ctx context.Context, hotelID uint, form validation.RoomForm) (models.Room, error) {
	if err := form.ValidateUpdate(); err != nil {
		return models.Room{}, err
	}
	room, err := s.Get(ctx, hotelID, form.ID)
	if err != nil {
		return models.Room{}, err
	}
	if form.RoomTypeID != room.RoomTypeID {
		if err := s.checkRoomType(ctx, hotelID, form.RoomTypeID); err != nil {
			return models.Room{}, err
		}
	}

	room.RoomNumber = strings.TrimSpace(form.RoomNumber)
	room.Floor = form.Floor
	room.RoomTypeID = form.RoomTypeID
	room.Note = form.Note
	if form.Status != "" {
		if err := s.applyStatus(&room, form.Status); err != nil {
			return models.Room{}, err
		}
	}

	if err := s.DB.WithContext(ctx).Save(&room).Error; err != nil {
		if isDuplicateKey(err) {
			return models.Room{}, fmt.Errorf("%w: room number %q already exists", ErrConflict, room.RoomNumber)
		}
		return models.Room{}, err
	}
	return room, nil
}

// UpdateStatus sets any known status; the note is replaced when given.
func (s *RoomService) UpdateStatus(ctx context.Context, hotelID uint, form validation.RoomStatusForm) (models.Room, error) {
	if err := form.Validate(); err != nil {
		return models.Room{}, err
	}
	return s.changeStatus(ctx, hotelID, form.RoomID, form.Status, form.Note)
}

func (s *RoomService) MarkForCleaning(ctx context.Context, hotelID uint, form validation.MarkCleaningForm) (models.Room, error) {
	if err := form.Validate(); err != nil {
		return models.Room{}, err
	}
	return s.changeStatus(ctx, hotelID, form.RoomID, models.RoomMarkedForCleaning, form.Note)
}

func (s *RoomService) changeStatus(ctx context.Context, hotelID, roomID uint, to models.RoomStatus, note string) (models.Room, error) {
	room, err := s.Get(ctx, hotelID, roomID)
	if err != nil {
		return models.Room{}, err
	}
	if err := s.applyStatus(&room, to); err != nil {
		return models.Room{}, err
	}
	if note != "" {
		room.Note = note
	}
	if err := s.DB.WithContext(ctx).Save(&room).Error; err != nil {
		return models.Room{}, err
	}
	return room, nil
}

func (s *RoomService) applyStatus(room *models.Room, to models.RoomStatus) error {
	if err := workflow.CheckRoomTransition(room.Status, to); err != nil {
		if errors.Is(err, workflow.ErrUnknownStatus) {
			return validation.Errors{"status": "is not a known room status"}
		}
		return err
	}
	if workflow.StampsCleaning(room.Status, to) {
		now := s.Now().UTC()
		room.LastCleanedAt = &now
	}
	room.Status = to
	return nil
}
