// Package client talks to the front-desk REST API and mirrors every
// confirmed change into a store.Store. The store is only written after a 2xx
// response; a failed request leaves it untouched and is not retried.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"hotel-ops/models"
	"hotel-ops/reports"
	"hotel-ops/store"
	"hotel-ops/validation"
)

// RequestError is a non-2xx answer from the API.
type RequestError struct {
	Status  int
	Message string
	Fields  validation.Errors
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed (%d): %s", e.Status, e.Message)
}

type envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Error   string            `json:"error"`
	Fields  validation.Errors `json:"fields"`
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Store   *store.Store

	// Now is "today" for walk-in checks and revenue.
	Now func() time.Time

	mu     sync.RWMutex
	token  string
	period reports.Period
}

func New(baseURL string, st *store.Store) *Client {
	if st == nil {
		st = store.New()
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		Store:   st,
		Now:     time.Now,
		period:  reports.PeriodAll,
	}
}

func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// do sends one request and decodes the data member of the envelope into out.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s body: %w", path, err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := env.Error
		if decodeErr != nil || msg == "" {
			msg = strings.TrimSpace(string(raw))
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		log.Printf("❌ %s %s -> %d: %s", method, path, resp.StatusCode, msg)
		return &RequestError{Status: resp.StatusCode, Message: msg, Fields: env.Fields}
	}
	if decodeErr != nil {
		return fmt.Errorf("decode %s response: %w", path, decodeErr)
	}
	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s data: %w", path, err)
	}
	return nil
}

type Session struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	Staff     models.Staff `json:"staff"`
}

// Login exchanges credentials for a token and keeps it for later calls.
func (c *Client) Login(ctx context.Context, form validation.LoginForm) (Session, error) {
	if err := form.Validate(); err != nil {
		return Session{}, err
	}
	var sess Session
	if err := c.do(ctx, http.MethodPost, "/auth/login", form, &sess); err != nil {
		return Session{}, err
	}
	c.SetToken(sess.Token)
	return sess, nil
}

// Logout forgets the token and every hotel scoped collection.
func (c *Client) Logout() {
	c.SetToken("")
	c.Store.InvalidateAll()
	c.Store.Hotels.Reset()
}
