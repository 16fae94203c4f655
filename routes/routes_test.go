package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-ops/config"
)

var testNow = time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

type envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields"`
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := config.SeedDatabase(db, "manager@hotel.local", "manager123"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	svcs := NewServices(db, nil, "test-secret", time.Hour, time.Minute)
	svcs.SetNow(func() time.Time { return testNow })
	router := SetupRouter(NewControllers(svcs), svcs.Auth, svcs.HotelContext, []string{"*"})
	return &testServer{t: t, router: router}
}

func (s *testServer) do(method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	s.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			s.t.Fatalf("marshal: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			s.t.Fatalf("%s %s: decode %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w, env
}

func (s *testServer) login() {
	s.t.Helper()
	w, env := s.do(http.MethodPost, "/auth/login", map[string]string{
		"email":    "manager@hotel.local",
		"password": "manager123",
	})
	if w.Code != http.StatusOK {
		s.t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}
	var sess struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &sess); err != nil || sess.Token == "" {
		s.t.Fatalf("login payload %s: %v", env.Data, err)
	}
	s.token = sess.Token
}

func decode(t *testing.T, raw json.RawMessage, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(raw, v); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w, _ := s.do(http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health = %d", w.Code)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Errorf("missing request id header")
	}
}

func TestHotelRoutesNeedToken(t *testing.T) {
	s := newTestServer(t)
	w, env := s.do(http.MethodGet, "/hotel/rooms", nil)
	if w.Code != http.StatusUnauthorized || env.Success {
		t.Fatalf("rooms without token = %d %+v", w.Code, env)
	}

	s.token = "not-a-jwt"
	w, _ = s.do(http.MethodGet, "/hotel/rooms", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("rooms with bad token = %d", w.Code)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	s := newTestServer(t)
	w, env := s.do(http.MethodPost, "/auth/login", map[string]string{"email": "manager@hotel.local", "password": "nope"})
	if w.Code != http.StatusUnauthorized || env.Success {
		t.Fatalf("login = %d %+v", w.Code, env)
	}
}

func TestValidationErrorsCarryFields(t *testing.T) {
	s := newTestServer(t)
	s.login()

	w, env := s.do(http.MethodPost, "/hotel/add-room", map[string]interface{}{"floor": 2})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("add-room = %d %s", w.Code, w.Body.String())
	}
	if env.Fields["roomNumber"] == "" || env.Fields["roomTypeId"] == "" {
		t.Errorf("fields = %v", env.Fields)
	}
}

func TestFrontDeskFlow(t *testing.T) {
	s := newTestServer(t)
	s.login()

	w, env := s.do(http.MethodGet, "/hotel/current", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("current = %d %s", w.Code, w.Body.String())
	}
	var hotel struct {
		ID           uint   `json:"id"`
		CurrencyCode string `json:"currencyCode"`
	}
	decode(t, env.Data, &hotel)

	w, env = s.do(http.MethodGet, "/hotel/room-types", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("room-types = %d", w.Code)
	}
	var types []struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	decode(t, env.Data, &types)
	if len(types) != 3 {
		t.Fatalf("seeded room types = %d, want 3", len(types))
	}

	w, env = s.do(http.MethodPost, "/hotel/add-room", map[string]interface{}{
		"roomNumber": "101", "floor": 1, "roomTypeId": types[0].ID,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add-room = %d %s", w.Code, w.Body.String())
	}
	var room struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	decode(t, env.Data, &room)

	w, _ = s.do(http.MethodPost, "/hotel/add-room", map[string]interface{}{
		"roomNumber": "101", "roomTypeId": types[0].ID,
	})
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate room = %d, want 409", w.Code)
	}

	w, _ = s.do(http.MethodDelete, "/hotel/delete-room-type?id="+jsonNumber(types[0].ID), nil)
	if w.Code != http.StatusConflict {
		t.Errorf("delete used room type = %d, want 409", w.Code)
	}

	w, _ = s.do(http.MethodPost, "/hotel/create-stay", map[string]interface{}{
		"guestName":     "Ada Lovelace",
		"guestEmail":    "ada@example.com",
		"guestPhone":    "+44 20 7946 0000",
		"roomId":        room.ID,
		"type":          "walk_in",
		"checkInDate":   "2024-03-10",
		"checkOutDate":  "2024-03-11",
		"adults":        1,
		"paymentMethod": "cash",
		"paymentStatus": "paid",
		"paidAmount":    80,
		"totalAmount":   80,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create-stay = %d %s", w.Code, w.Body.String())
	}

	w, env = s.do(http.MethodGet, "/hotel/rooms", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("rooms = %d", w.Code)
	}
	var rooms []struct {
		Status string `json:"status"`
	}
	decode(t, env.Data, &rooms)
	if len(rooms) != 1 || rooms[0].Status != "occupied" {
		t.Errorf("rooms after walk-in = %+v", rooms)
	}

	w, env = s.do(http.MethodGet, "/hotel/revenue?period=today", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("revenue = %d %s", w.Code, w.Body.String())
	}
	var rep struct {
		Summary struct {
			RoomsRevenue     string `json:"roomsRevenue"`
			TransactionCount int    `json:"transactionCount"`
		} `json:"summary"`
		Display map[string]string `json:"display"`
	}
	decode(t, env.Data, &rep)
	if rep.Summary.RoomsRevenue != "80" || rep.Summary.TransactionCount != 1 {
		t.Errorf("summary = %+v", rep.Summary)
	}
	if rep.Display["totalRevenue"] != "USD 80.00" {
		t.Errorf("display = %v", rep.Display)
	}

	w, _ = s.do(http.MethodGet, "/hotel/revenue?period=fortnight", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown period = %d, want 400", w.Code)
	}

	w, _ = s.do(http.MethodGet, "/hotel/export/stays?format=csv", nil)
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Header().Get("Content-Type"), "text/csv") {
		t.Fatalf("export = %d %s", w.Code, w.Header().Get("Content-Type"))
	}
	if lines := strings.Count(strings.TrimSpace(w.Body.String()), "\n"); lines != 1 {
		t.Errorf("export lines = %d, want header + 1 row", lines+1)
	}
}

func TestOrderWorkflowOverHTTP(t *testing.T) {
	s := newTestServer(t)
	s.login()

	w, env := s.do(http.MethodPost, "/hotel/create-menu", map[string]interface{}{
		"name": "Pad Thai", "category": "Mains", "price": "9.50",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create-menu = %d %s", w.Code, w.Body.String())
	}
	var item struct {
		ID uint `json:"id"`
	}
	decode(t, env.Data, &item)

	w, env = s.do(http.MethodPost, "/hotel/create-order", map[string]interface{}{
		"type":  "restaurant",
		"items": []map[string]interface{}{{"menuItemId": item.ID, "quantity": 2}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create-order = %d %s", w.Code, w.Body.String())
	}
	var order struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	}
	decode(t, env.Data, &order)
	if order.Status != "pending" {
		t.Fatalf("new order status = %s", order.Status)
	}

	steps := []struct {
		body map[string]interface{}
		code int
	}{
		{map[string]interface{}{"orderId": order.ID, "status": "paid", "paymentMethod": "cash"}, http.StatusConflict},
		{map[string]interface{}{"orderId": order.ID, "status": "ready"}, http.StatusOK},
		{map[string]interface{}{"orderId": order.ID, "status": "cancelled"}, http.StatusConflict},
		{map[string]interface{}{"orderId": order.ID, "status": "paid"}, http.StatusUnprocessableEntity},
		{map[string]interface{}{"orderId": order.ID, "status": "paid", "paymentMethod": "card"}, http.StatusOK},
	}
	for i, step := range steps {
		w, _ := s.do(http.MethodPut, "/hotel/update-order-status", step.body)
		if w.Code != step.code {
			t.Errorf("step %d: %d, want %d (%s)", i, w.Code, step.code, w.Body.String())
		}
	}
}

func TestSwitchHotel(t *testing.T) {
	s := newTestServer(t)
	s.login()

	w, env := s.do(http.MethodPost, "/hotel/add-hotel", map[string]interface{}{
		"name": "Hilltop Lodge", "currencyCode": "EUR", "amenities": []string{"wifi"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("add-hotel = %d %s", w.Code, w.Body.String())
	}
	var added struct {
		ID uint `json:"id"`
	}
	decode(t, env.Data, &added)

	if w, _ := s.do(http.MethodPost, "/hotel/switch-hotel", map[string]interface{}{"hotelId": added.ID}); w.Code != http.StatusOK {
		t.Fatalf("switch = %d %s", w.Code, w.Body.String())
	}

	_, env = s.do(http.MethodGet, "/hotel/current", nil)
	var current struct {
		ID           uint   `json:"id"`
		CurrencyCode string `json:"currencyCode"`
	}
	decode(t, env.Data, &current)
	if current.ID != added.ID || current.CurrencyCode != "EUR" {
		t.Errorf("current = %+v", current)
	}

	_, env = s.do(http.MethodGet, "/hotel/room-types", nil)
	var types []json.RawMessage
	decode(t, env.Data, &types)
	if len(types) != 0 {
		t.Errorf("new hotel sees %d room types", len(types))
	}

	if w, _ := s.do(http.MethodPost, "/hotel/switch-hotel", map[string]interface{}{"hotelId": 999}); w.Code != http.StatusNotFound {
		t.Errorf("switch to unknown = %d, want 404", w.Code)
	}
}

func jsonNumber(n uint) string {
	raw, _ := json.Marshal(n)
	return string(raw)
}
