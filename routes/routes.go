package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-ops/controllers"
	"hotel-ops/middleware"
	"hotel-ops/services"
)

// Controllers bundles every handler the router mounts.
type Controllers struct {
	Auth      *controllers.AuthController
	Hotel     *controllers.HotelController
	Room      *controllers.RoomController
	RoomType  *controllers.RoomTypeController
	Stay      *controllers.StayController
	Menu      *controllers.MenuController
	Order     *controllers.OrderController
	Service   *controllers.ScheduledServiceController
	Inventory *controllers.InventoryController
	Report    *controllers.ReportController
}

// SetupRouter wires middleware and routes. Everything under /hotel needs a
// bearer token; everything but the hotel registry also needs an active hotel.
func SetupRouter(
	ctl Controllers,
	auth *services.AuthService,
	hotelCtx *services.HotelContextService,
	origins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger())

	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/auth/login", ctl.Auth.Login)

	hotel := r.Group("/hotel", middleware.RequireAuth(auth))
	{
		hotel.POST("/add-hotel", ctl.Hotel.AddHotel)
		hotel.GET("/hotels", ctl.Hotel.ListHotels)
		hotel.POST("/switch-hotel", ctl.Hotel.SwitchHotel)
	}

	scoped := hotel.Group("", middleware.RequireHotel(hotelCtx))
	{
		scoped.GET("/current", ctl.Hotel.Current)

		// Rooms
		scoped.GET("/rooms", ctl.Room.GetRooms)
		scoped.POST("/add-room", ctl.Room.CreateRoom)
		scoped.PUT("/update-room", ctl.Room.UpdateRoom)
		scoped.PUT("/update-room-status", ctl.Room.UpdateRoomStatus)
		scoped.PATCH("/mark-room-for-cleaning", ctl.Room.MarkForCleaning)

		scoped.GET("/room-types", ctl.RoomType.GetRoomTypes)
		scoped.POST("/add-room-type", ctl.RoomType.CreateRoomType)
		scoped.PUT("/update-room-type", ctl.RoomType.UpdateRoomType)
		scoped.DELETE("/delete-room-type", ctl.RoomType.DeleteRoomType)

		// Stays
		scoped.GET("/stays", ctl.Stay.GetStays)
		scoped.POST("/create-stay", ctl.Stay.CreateStay)
		scoped.PUT("/update-stay", ctl.Stay.UpdateStay)

		// Food & beverage
		scoped.GET("/menu", ctl.Menu.GetMenu)
		scoped.POST("/create-menu", ctl.Menu.CreateMenuItem)
		scoped.PUT("/update-menu", ctl.Menu.UpdateMenuItem)
		scoped.GET("/orders", ctl.Order.GetOrders)
		scoped.POST("/create-order", ctl.Order.CreateOrder)
		scoped.PUT("/update-order-status", ctl.Order.UpdateOrderStatus)

		scoped.GET("/scheduled-services", ctl.Service.GetScheduledServices)
		scoped.POST("/schedule-service", ctl.Service.ScheduleService)
		scoped.PUT("/update-scheduled-service", ctl.Service.UpdateScheduledService)

		scoped.GET("/staff", ctl.Auth.ListStaff)
		scoped.GET("/inventory", ctl.Inventory.GetInventory)
		scoped.POST("/add-inventory", ctl.Inventory.AddInventory)

		// Reports
		scoped.GET("/revenue", ctl.Report.Revenue)
		scoped.GET("/export/stays", ctl.Report.ExportStays)
		scoped.GET("/export/transactions", ctl.Report.ExportTransactions)
	}

	return r
}

// NewControllers builds every controller from the service set.
func NewControllers(s Services) Controllers {
	return Controllers{
		Auth:      controllers.NewAuthController(s.Auth, s.Staff),
		Hotel:     controllers.NewHotelController(s.Hotels, s.HotelContext),
		Room:      controllers.NewRoomController(s.Rooms),
		RoomType:  controllers.NewRoomTypeController(s.RoomTypes),
		Stay:      controllers.NewStayController(s.Stays),
		Menu:      controllers.NewMenuController(s.Menu),
		Order:     controllers.NewOrderController(s.Orders),
		Service:   controllers.NewScheduledServiceController(s.ScheduledServices),
		Inventory: controllers.NewInventoryController(s.Inventory),
		Report:    controllers.NewReportController(s.Reports, s.Stays),
	}
}
