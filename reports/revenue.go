// Package reports derives financial figures from the records currently held
// in memory. Nothing here is stored; every figure is recomputed from its
// inputs.
package reports

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"hotel-ops/models"
)

type Summary struct {
	RoomsRevenue             decimal.Decimal `json:"roomsRevenue"`
	FoodAndBeverageRevenue   decimal.Decimal `json:"foodAndBeverageRevenue"`
	ScheduledServicesRevenue decimal.Decimal `json:"scheduledServicesRevenue"`
	TotalRevenue             decimal.Decimal `json:"totalRevenue"`
	OutstandingBalance       decimal.Decimal `json:"outstandingBalance"`
	TransactionCount         int             `json:"transactionCount"`
	AverageTransaction       decimal.Decimal `json:"averageTransaction"`
}

// Compute aggregates the three collections. The inputs are expected to be
// filtered to the reporting period already; now only drives the in-house
// check for room revenue.
func Compute(stays []models.Stay, orders []models.Order, services []models.ScheduledService, now time.Time) Summary {
	var sum Summary
	count := 0

	for _, s := range stays {
		if StayEarnsRoomRevenue(s, now) {
			sum.RoomsRevenue = sum.RoomsRevenue.Add(s.TotalAmount)
			count++
		}
		if s.PaymentStatus != models.PaymentPaid {
			sum.OutstandingBalance = sum.OutstandingBalance.Add(s.Balance())
		}
	}

	for _, o := range orders {
		if o.Status == models.OrderPaid {
			sum.FoodAndBeverageRevenue = sum.FoodAndBeverageRevenue.Add(OrderTotal(o))
			count++
		}
	}

	for _, sv := range services {
		if ServiceCountsAsRevenue(sv) {
			sum.ScheduledServicesRevenue = sum.ScheduledServicesRevenue.Add(sv.TotalAmount)
			count++
		}
	}

	sum.TotalRevenue = sum.RoomsRevenue.
		Add(sum.FoodAndBeverageRevenue).
		Add(sum.ScheduledServicesRevenue)
	sum.TransactionCount = count
	sum.AverageTransaction = Average(sum.TotalRevenue, count)
	return sum
}

// Average divides total by n, rounded to cents; zero when n is zero.
func Average(total decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(n))).Round(2)
}

// StayEarnsRoomRevenue: paid, and today falls inside [check-in, check-out].
// All conditions must hold.
func StayEarnsRoomRevenue(s models.Stay, now time.Time) bool {
	if s.PaymentStatus != models.PaymentPaid {
		return false
	}
	today := localDay(now)
	in := storedDay(s.CheckInDate)
	out := storedDay(s.CheckOutDate)
	if in.After(today) {
		return false
	}
	return !today.Before(in) && !today.After(out)
}

// OrderTotal is Σ(price at order time × quantity) − discount.
func OrderTotal(o models.Order) decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total.Sub(o.Discount)
}

// ServiceCountsAsRevenue: pending services are booked revenue too.
func ServiceCountsAsRevenue(s models.ScheduledService) bool {
	return s.PaymentStatus == models.PaymentPaid || s.PaymentStatus == models.PaymentPending
}

// Stay dates are calendar dates kept as midnight UTC; today is the caller's
// local date. Both are compared as plain Y/M/D.
func storedDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func localDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type Folio struct {
	StayID        uint                 `json:"stayId"`
	ReferenceCode string               `json:"referenceCode"`
	GuestName     string               `json:"guestName"`
	RoomID        uint                 `json:"roomId"`
	PaymentStatus models.PaymentStatus `json:"paymentStatus"`
	Total         decimal.Decimal      `json:"total"`
	Paid          decimal.Decimal      `json:"paid"`
	Balance       decimal.Decimal      `json:"balance"`
}

// Folios lists the open folios: stays whose payment is not settled.
func Folios(stays []models.Stay) []Folio {
	out := make([]Folio, 0)
	for _, s := range stays {
		if s.PaymentStatus == models.PaymentPaid {
			continue
		}
		out = append(out, Folio{
			StayID:        s.ID,
			ReferenceCode: s.ReferenceCode,
			GuestName:     s.GuestName,
			RoomID:        s.RoomID,
			PaymentStatus: s.PaymentStatus,
			Total:         s.TotalAmount,
			Paid:          s.PaidAmount,
			Balance:       s.Balance(),
		})
	}
	return out
}

type TransactionKind string

const (
	KindRoom    TransactionKind = "room"
	KindOrder   TransactionKind = "order"
	KindService TransactionKind = "service"
)

type Transaction struct {
	Kind   TransactionKind `json:"kind"`
	RefID  uint            `json:"refId"`
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
	Status string          `json:"status"`
	At     time.Time       `json:"at"`
}

// Timeline lists the records counted by Compute, newest first.
func Timeline(stays []models.Stay, orders []models.Order, services []models.ScheduledService, now time.Time) []Transaction {
	out := make([]Transaction, 0)
	for _, s := range stays {
		if !StayEarnsRoomRevenue(s, now) {
			continue
		}
		at := s.CheckInDate
		if s.PaymentDate != nil {
			at = *s.PaymentDate
		}
		out = append(out, Transaction{
			Kind: KindRoom, RefID: s.ID, Label: s.GuestName,
			Amount: s.TotalAmount, Status: string(s.PaymentStatus), At: at,
		})
	}
	for _, o := range orders {
		if o.Status != models.OrderPaid {
			continue
		}
		out = append(out, Transaction{
			Kind: KindOrder, RefID: o.ID, Label: string(o.Type),
			Amount: OrderTotal(o), Status: string(o.Status), At: o.CreatedAt,
		})
	}
	for _, sv := range services {
		if !ServiceCountsAsRevenue(sv) {
			continue
		}
		out = append(out, Transaction{
			Kind: KindService, RefID: sv.ID, Label: sv.ServiceName,
			Amount: sv.TotalAmount, Status: string(sv.PaymentStatus), At: sv.ScheduledAt,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].At.After(out[j].At) })
	return out
}
