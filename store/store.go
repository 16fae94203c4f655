package store

import (
	"sync"

	"hotel-ops/models"
)

type resetter interface {
	Reset()
}

// Store groups one collection per entity type plus the selected hotel.
type Store struct {
	mu            sync.RWMutex
	activeHotelID uint

	Hotels    *Collection[models.Hotel]
	Rooms     *Collection[models.Room]
	RoomTypes *Collection[models.RoomType]
	Stays     *Collection[models.Stay]
	Orders    *Collection[models.Order]
	Menu      *Collection[models.MenuItem]
	Services  *Collection[models.ScheduledService]
	Staff     *Collection[models.Staff]
	Inventory *Collection[models.InventoryItem]
}

func New() *Store {
	return &Store{
		Hotels:    NewCollection[models.Hotel]("hotels"),
		Rooms:     NewCollection[models.Room]("rooms"),
		RoomTypes: NewCollection[models.RoomType]("room_types"),
		Stays:     NewCollection[models.Stay]("stays"),
		Orders:    NewCollection[models.Order]("orders"),
		Menu:      NewCollection[models.MenuItem]("menu"),
		Services:  NewCollection[models.ScheduledService]("scheduled_services"),
		Staff:     NewCollection[models.Staff]("staff"),
		Inventory: NewCollection[models.InventoryItem]("inventory"),
	}
}

// hotelScoped is the single list of collections that belong to the active
// hotel. The hotel list itself is account-wide and survives a switch.
func (s *Store) hotelScoped() []resetter {
	return []resetter{
		s.Rooms,
		s.RoomTypes,
		s.Stays,
		s.Orders,
		s.Menu,
		s.Services,
		s.Staff,
		s.Inventory,
	}
}

func (s *Store) ActiveHotelID() uint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeHotelID
}

// SwitchHotel changes the active hotel and drops everything fetched for the
// previous one.
func (s *Store) SwitchHotel(hotelID uint) {
	s.mu.Lock()
	s.activeHotelID = hotelID
	s.mu.Unlock()
	s.InvalidateAll()
}

func (s *Store) InvalidateAll() {
	for _, c := range s.hotelScoped() {
		c.Reset()
	}
}

// SetRoomStatus rewrites one room's status in place. Reports whether the room
// was present.
func (s *Store) SetRoomStatus(roomID uint, status models.RoomStatus) bool {
	room, ok := s.Rooms.Get(roomID)
	if !ok {
		return false
	}
	room.Status = status
	s.Rooms.Update(room)
	return true
}
