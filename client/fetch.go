package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"hotel-ops/reports"
	"hotel-ops/store"
)

// ErrStaleResponse is returned by a fetch whose collection was reset while
// the request was in flight, after a hotel switch or a period change. Nothing
// was stored; fetch again.
var ErrStaleResponse = errors.New("collection was reset while the request was in flight")

// fetchInto loads path into col unless col already holds a fetch. The
// generation is read before the period so a concurrent SetPeriod either
// lands in the request or invalidates its response.
func fetchInto[T store.Entity](ctx context.Context, c *Client, col *store.Collection[T], path string, periodic bool) ([]T, error) {
	if col.Fetched() {
		return col.All(), nil
	}
	gen := col.Generation()
	if periodic {
		path = c.withPeriod(path)
	}
	var items []T
	if err := c.do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	if !col.SetAllIf(gen, items) {
		return nil, ErrStaleResponse
	}
	return items, nil
}

// createInto posts form and adds the created record to col. The record is
// returned either way; it is only kept when col was not reset meanwhile.
func createInto[T store.Entity](ctx context.Context, c *Client, col *store.Collection[T], path string, form interface{}) (T, bool, error) {
	gen := col.Generation()
	var item T
	if err := c.do(ctx, http.MethodPost, path, form, &item); err != nil {
		var zero T
		return zero, false, err
	}
	return item, col.AddIf(gen, item), nil
}

// SetPeriod chooses the reporting period sent with stay, order and scheduled
// service fetches. Changing it drops those three collections.
func (c *Client) SetPeriod(p reports.Period) error {
	parsed, err := reports.ParsePeriod(string(p))
	if err != nil {
		return err
	}
	c.mu.Lock()
	changed := parsed != c.period
	c.period = parsed
	c.mu.Unlock()
	if changed {
		c.Store.Stays.Reset()
		c.Store.Orders.Reset()
		c.Store.Services.Reset()
	}
	return nil
}

func (c *Client) Period() reports.Period {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.period
}

func (c *Client) withPeriod(path string) string {
	p := c.Period()
	if p == "" || p == reports.PeriodAll {
		return path
	}
	return path + "?period=" + url.QueryEscape(string(p))
}
