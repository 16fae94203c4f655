// Package export writes stays and revenue transactions as CSV or JSON
// downloads.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"time"

	"hotel-ops/models"
	"hotel-ops/reports"
)

var stayCSVHeader = []string{
	"id", "reference", "guest", "email", "phone", "room_id", "type", "status",
	"check_in", "check_out", "adults", "children",
	"payment_method", "payment_status", "paid", "total", "balance",
}

// WriteStaysCSV writes one row per stay.
func WriteStaysCSV(w io.Writer, stays []models.Stay) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(stayCSVHeader); err != nil {
		return err
	}
	for _, s := range stays {
		row := []string{
			strconv.FormatUint(uint64(s.ID), 10),
			s.ReferenceCode,
			s.GuestName,
			s.GuestEmail,
			s.GuestPhone,
			strconv.FormatUint(uint64(s.RoomID), 10),
			string(s.Type),
			string(s.Status),
			s.CheckInDate.Format("2006-01-02"),
			s.CheckOutDate.Format("2006-01-02"),
			strconv.Itoa(s.Adults),
			strconv.Itoa(s.Children),
			string(s.PaymentMethod),
			string(s.PaymentStatus),
			s.PaidAmount.StringFixed(2),
			s.TotalAmount.StringFixed(2),
			s.Balance().StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTransactionsCSV writes the revenue timeline.
func WriteTransactionsCSV(w io.Writer, txs []reports.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"at", "kind", "ref_id", "label", "status", "amount"}); err != nil {
		return err
	}
	for _, t := range txs {
		if err := cw.Write([]string{
			t.At.UTC().Format(time.RFC3339),
			string(t.Kind),
			strconv.FormatUint(uint64(t.RefID), 10),
			t.Label,
			t.Status,
			t.Amount.StringFixed(2),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes v as an indented JSON document.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
