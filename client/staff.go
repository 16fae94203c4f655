package client

import (
	"context"
	"io"
	"time"

	"hotel-ops/export"
	"hotel-ops/models"
	"hotel-ops/reports"
	"hotel-ops/validation"
)

func (c *Client) FetchStaff(ctx context.Context) ([]models.Staff, error) {
	return fetchInto(ctx, c, c.Store.Staff, "/hotel/staff", false)
}

func (c *Client) FetchInventory(ctx context.Context) ([]models.InventoryItem, error) {
	return fetchInto(ctx, c, c.Store.Inventory, "/hotel/inventory", false)
}

func (c *Client) AddInventory(ctx context.Context, form validation.InventoryForm) (models.InventoryItem, error) {
	if err := form.Validate(); err != nil {
		return models.InventoryItem{}, err
	}
	item, _, err := createInto(ctx, c, c.Store.Inventory, "/hotel/add-inventory", form)
	return item, err
}

// Revenue recomputes the summary from what the store currently holds, which
// covers the period chosen with SetPeriod.
func (c *Client) Revenue(now time.Time) reports.Summary {
	return reports.Compute(c.Store.Stays.All(), c.Store.Orders.All(), c.Store.Services.All(), now)
}

// Folios lists the open folios among the loaded stays.
func (c *Client) Folios() []reports.Folio {
	return reports.Folios(c.Store.Stays.All())
}

// ExportStays writes the loaded stays; format is "csv" or "json".
func (c *Client) ExportStays(w io.Writer, format string) error {
	if format == "json" {
		return export.WriteJSON(w, c.Store.Stays.All())
	}
	return export.WriteStaysCSV(w, c.Store.Stays.All())
}

// ExportTransactions writes the revenue timeline of the loaded records.
func (c *Client) ExportTransactions(w io.Writer, format string) error {
	txs := reports.Timeline(c.Store.Stays.All(), c.Store.Orders.All(), c.Store.Services.All(), c.Now())
	if format == "json" {
		return export.WriteJSON(w, txs)
	}
	return export.WriteTransactionsCSV(w, txs)
}
