package services

import (
	"context"
	"time"

	"hotel-ops/reports"
	"hotel-ops/utils"
)

// ReportService loads the period's records and derives the figures from them.
type ReportService struct {
	Hotels   *HotelService
	Stays    *StayService
	Orders   *OrderService
	Services *ScheduledServiceService
	Now      func() time.Time
}

func NewReportService(h *HotelService, st *StayService, o *OrderService, sv *ScheduledServiceService) *ReportService {
	return &ReportService{Hotels: h, Stays: st, Orders: o, Services: sv, Now: time.Now}
}

type RevenueReport struct {
	Period   reports.Period        `json:"period"`
	From     *time.Time            `json:"from,omitempty"`
	To       *time.Time            `json:"to,omitempty"`
	Currency string                `json:"currency"`
	Summary  reports.Summary       `json:"summary"`
	Display  map[string]string     `json:"display"`
	Folios   []reports.Folio       `json:"folios"`
	Timeline []reports.Transaction `json:"timeline"`
}

func (s *ReportService) Revenue(ctx context.Context, hotelID uint, period reports.Period) (RevenueReport, error) {
	now := s.Now().UTC()
	hotel, err := s.Hotels.Get(ctx, hotelID)
	if err != nil {
		return RevenueReport{}, err
	}
	stays, err := s.Stays.List(ctx, hotelID, period)
	if err != nil {
		return RevenueReport{}, err
	}
	orders, err := s.Orders.List(ctx, hotelID, period)
	if err != nil {
		return RevenueReport{}, err
	}
	svcs, err := s.Services.List(ctx, hotelID, period)
	if err != nil {
		return RevenueReport{}, err
	}

	sum := reports.Compute(stays, orders, svcs, now)
	rep := RevenueReport{
		Period:   period,
		Currency: hotel.CurrencyCode,
		Summary:  sum,
		Display: map[string]string{
			"roomsRevenue":             utils.FormatMoney(hotel.CurrencyCode, sum.RoomsRevenue),
			"foodAndBeverageRevenue":   utils.FormatMoney(hotel.CurrencyCode, sum.FoodAndBeverageRevenue),
			"scheduledServicesRevenue": utils.FormatMoney(hotel.CurrencyCode, sum.ScheduledServicesRevenue),
			"totalRevenue":             utils.FormatMoney(hotel.CurrencyCode, sum.TotalRevenue),
			"outstandingBalance":       utils.FormatMoney(hotel.CurrencyCode, sum.OutstandingBalance),
			"averageTransaction":       utils.FormatMoney(hotel.CurrencyCode, sum.AverageTransaction),
		},
		Folios:   reports.Folios(stays),
		Timeline: reports.Timeline(stays, orders, svcs, now),
	}
	if from, to, ok := period.Window(now); ok {
		rep.From, rep.To = &from, &to
	}
	return rep, nil
}
