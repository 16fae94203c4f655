package services

import (
	"time"

	"gorm.io/gorm"

	"hotel-ops/reports"
)

func hotelScope(hotelID uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("hotel_id = ?", hotelID)
	}
}

// withinPeriod limits column to the period's [from, to) window.
func withinPeriod(column string, p reports.Period, now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		from, to, ok := p.Window(now)
		if !ok {
			return db
		}
		return db.Where(column+" >= ? AND "+column+" < ?", from.UTC(), to.UTC())
	}
}

// staysOverlapping keeps stays whose [check-in, check-out] touches the window.
func staysOverlapping(p reports.Period, now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		from, to, ok := p.Window(now)
		if !ok {
			return db
		}
		return db.Where("check_in_date < ? AND check_out_date >= ?", to.UTC(), from.UTC())
	}
}
