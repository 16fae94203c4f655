package routes

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hotel-ops/services"
)

type Services struct {
	Auth              *services.AuthService
	Staff             *services.StaffService
	Hotels            *services.HotelService
	HotelContext      *services.HotelContextService
	Rooms             *services.RoomService
	RoomTypes         *services.RoomTypeService
	Stays             *services.StayService
	Menu              *services.MenuService
	Orders            *services.OrderService
	ScheduledServices *services.ScheduledServiceService
	Inventory         *services.InventoryService
	Reports           *services.ReportService
}

// NewServices builds the service set over one database handle. rdb may be
// nil.
func NewServices(db *gorm.DB, rdb *redis.Client, jwtSecret string, tokenTTL, hotelCtxTTL time.Duration) Services {
	s := Services{
		Auth:              services.NewAuthService(db, jwtSecret, tokenTTL),
		Staff:             services.NewStaffService(db),
		Hotels:            services.NewHotelService(db),
		HotelContext:      services.NewHotelContextService(db, rdb, hotelCtxTTL),
		Rooms:             services.NewRoomService(db),
		RoomTypes:         services.NewRoomTypeService(db),
		Stays:             services.NewStayService(db),
		Menu:              services.NewMenuService(db),
		Orders:            services.NewOrderService(db),
		ScheduledServices: services.NewScheduledServiceService(db),
		Inventory:         services.NewInventoryService(db),
	}
	s.Reports = services.NewReportService(s.Hotels, s.Stays, s.Orders, s.ScheduledServices)
	return s
}

// SetNow overrides the clock on every time-aware service.
func (s Services) SetNow(now func() time.Time) {
	s.Rooms.Now = now
	s.Stays.Now = now
	s.Orders.Now = now
	s.ScheduledServices.Now = now
	s.Reports.Now = now
}
