package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-ops/models"
)

// Migrate creates or updates every table, parents first.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Hotel{},
		&models.Staff{},
		&models.RoomType{},
		&models.Room{},
		&models.Stay{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.ScheduledService{},
		&models.InventoryItem{},
	)
}

// SeedDatabase makes sure a fresh install has one property and a manager who
// can log in to it.
func SeedDatabase(db *gorm.DB, email, password string) error {
	var hotel models.Hotel
	var hotelCount int64
	db.Model(&models.Hotel{}).Count(&hotelCount)
	if hotelCount == 0 {
		hotel = models.Hotel{
			Name:         "Main Property",
			CurrencyCode: "USD",
			Amenities:    datatypes.NewJSONSlice([]string{"wifi", "breakfast", "parking"}),
		}
		if err := db.Create(&hotel).Error; err != nil {
			return fmt.Errorf("seed hotel: %w", err)
		}
		log.Println("Hotel seeded")

		roomTypes := []models.RoomType{
			{HotelID: hotel.ID, Name: "Standard", Capacity: 2, NightlyPrice: decimal.NewFromInt(80)},
			{HotelID: hotel.ID, Name: "Deluxe", Capacity: 3, NightlyPrice: decimal.NewFromInt(140)},
			{HotelID: hotel.ID, Name: "Family", Capacity: 5, NightlyPrice: decimal.NewFromInt(190)},
		}
		if err := db.Create(&roomTypes).Error; err != nil {
			return fmt.Errorf("seed room types: %w", err)
		}
		log.Println("RoomTypes seeded")
	} else if err := db.Order("id").First(&hotel).Error; err != nil {
		return fmt.Errorf("load first hotel: %w", err)
	}

	var staffCount int64
	db.Model(&models.Staff{}).Count(&staffCount)
	if staffCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		manager := models.Staff{
			HotelID:       hotel.ID,
			FullName:      "Front Office Manager",
			Email:         email,
			Password:      string(hash),
			Role:          "manager",
			ActiveHotelID: &hotel.ID,
		}
		if err := db.Create(&manager).Error; err != nil {
			return fmt.Errorf("seed manager: %w", err)
		}
		log.Printf("Default manager seeded (%s)", email)
	}
	return nil
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "UTC")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}
	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotel_ops")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		user, pass, host, port, dbName,
	), nil
}

func resolvePostgresDSN() string {
	if raw := strings.TrimSpace(os.Getenv("DATABASE_URL")); raw != "" {
		return raw
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		envOrDefault("DB_HOST", "127.0.0.1"),
		envOrDefault("DB_USER", "postgres"),
		envOrDefault("DB_PASS", ""),
		envOrDefault("DB_NAME", "hotel_ops"),
		envOrDefault("DB_PORT", "5432"),
		envOrDefault("DB_SSLMODE", "disable"),
	)
}

func dialector(driver string) (gorm.Dialector, error) {
	switch driver {
	case "postgres", "postgresql":
		return postgres.Open(resolvePostgresDSN()), nil
	case "mysql", "":
		dsn, err := resolveMySQLDSN()
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	}
	return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
}

// ConnectDatabase opens the configured database, migrates and seeds it.
func ConnectDatabase(cfg Config) (*gorm.DB, error) {
	dial, err := dialector(cfg.DBDriver)
	if err != nil {
		return nil, err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(dial, &gorm.Config{Logger: newLogger, NowFunc: func() time.Time { return time.Now().UTC() }})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if err := SeedDatabase(db, cfg.SeedEmail, cfg.SeedPassword); err != nil {
		return nil, err
	}
	return db, nil
}
