package services

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-ops/config"
	"hotel-ops/models"
)

var fixedNow = time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

type fixture struct {
	hotel    models.Hotel
	standard models.RoomType
	room     models.Room
}

func seedHotel(t *testing.T, db *gorm.DB, name string) fixture {
	t.Helper()
	f := fixture{}
	f.hotel = models.Hotel{
		Name:         name,
		CurrencyCode: "USD",
		Amenities:    datatypes.NewJSONSlice([]string{"wifi", "breakfast"}),
	}
	if err := db.Create(&f.hotel).Error; err != nil {
		t.Fatalf("create hotel: %v", err)
	}
	f.standard = models.RoomType{
		HotelID:      f.hotel.ID,
		Name:         "Standard",
		Capacity:     2,
		NightlyPrice: decimal.NewFromInt(80),
	}
	if err := db.Create(&f.standard).Error; err != nil {
		t.Fatalf("create room type: %v", err)
	}
	f.room = models.Room{
		HotelID:    f.hotel.ID,
		RoomNumber: "101",
		Floor:      1,
		RoomTypeID: f.standard.ID,
		Status:     models.RoomAvailable,
	}
	if err := db.Create(&f.room).Error; err != nil {
		t.Fatalf("create room: %v", err)
	}
	return f
}
