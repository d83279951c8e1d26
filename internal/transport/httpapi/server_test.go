package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Avisha2803/resort-booking-agent/internal/core"
)

type fakeChat struct {
	reply   string
	persona core.Persona
	gotHist []core.Message
	gotSess string
}

func (f *fakeChat) Chat(ctx context.Context, history []core.Message, sessionID string) (string, core.Persona) {
	f.gotHist = history
	f.gotSess = sessionID
	return f.reply, f.persona
}

type fakeInvoker struct {
	result string
	err    error
}

func (f *fakeInvoker) Declarations(names ...string) []core.Tool { return nil }
func (f *fakeInvoker) Call(ctx context.Context, name, args string) (string, error) {
	return f.result, f.err
}

type fakeMenuRepo struct{ count int }

func (f *fakeMenuRepo) List(ctx context.Context) ([]core.MenuItem, error) { return nil, nil }
func (f *fakeMenuRepo) FindByName(ctx context.Context, name string) (*core.MenuItem, error) {
	return nil, core.ErrNotFound
}
func (f *fakeMenuRepo) Insert(ctx context.Context, item core.MenuItem) error { return nil }
func (f *fakeMenuRepo) Count(ctx context.Context) (int, error)               { return f.count, nil }

type fakeOrdersRepo struct {
	orders    []core.Order
	updateErr error
	gotID     int64
	gotStatus string
	gotFilter core.ListFilter
}

func (f *fakeOrdersRepo) Create(ctx context.Context, order *core.Order) error { return nil }
func (f *fakeOrdersRepo) List(ctx context.Context, filter core.ListFilter) ([]core.Order, error) {
	f.gotFilter = filter
	return f.orders, nil
}
func (f *fakeOrdersRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	f.gotID = id
	f.gotStatus = status
	return f.updateErr
}
func (f *fakeOrdersRepo) Count(ctx context.Context) (int, error) { return len(f.orders), nil }

type fakeRequestsRepo struct {
	requests  []core.ServiceRequest
	updateErr error
}

func (f *fakeRequestsRepo) Create(ctx context.Context, req *core.ServiceRequest) error { return nil }
func (f *fakeRequestsRepo) List(ctx context.Context, filter core.ListFilter) ([]core.ServiceRequest, error) {
	return f.requests, nil
}
func (f *fakeRequestsRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return f.updateErr
}
func (f *fakeRequestsRepo) Count(ctx context.Context) (int, error) { return len(f.requests), nil }

type serverFixture struct {
	server   *Server
	chat     *fakeChat
	orders   *fakeOrdersRepo
	requests *fakeRequestsRepo
}

func newFixture() *serverFixture {
	chat := &fakeChat{reply: "hello", persona: core.PersonaReceptionist}
	orders := &fakeOrdersRepo{}
	requests := &fakeRequestsRepo{}
	server := NewServer(":0", chat, &fakeInvoker{result: "THE MENU"}, &fakeMenuRepo{count: 64}, orders, requests)
	return &serverFixture{server: server, chat: chat, orders: orders, requests: requests}
}

func (f *serverFixture) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	f.server.srv.Handler.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("invalid response JSON: %v\n%s", err, rec.Body.String())
	}
}

func TestChatEndpoint(t *testing.T) {
	f := newFixture()
	f.chat.reply = "Welcome!"
	f.chat.persona = core.PersonaRestaurant

	rec := f.do(t, http.MethodPost, "/chat",
		`{"history": [{"role": "user", "content": "menu please"}], "session_id": "web-1"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp chatResponse
	decode(t, rec, &resp)
	if resp.Response != "Welcome!" || resp.AgentType != "Restaurant" {
		t.Errorf("response = %+v", resp)
	}
	if f.chat.gotSess != "web-1" {
		t.Errorf("session = %q", f.chat.gotSess)
	}
	if len(f.chat.gotHist) != 1 || f.chat.gotHist[0].Content != "menu please" {
		t.Errorf("history = %+v", f.chat.gotHist)
	}
}

func TestChatEndpointRejectsBadJSON(t *testing.T) {
	f := newFixture()
	rec := f.do(t, http.MethodPost, "/chat", `{"history": `)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestListOrders(t *testing.T) {
	f := newFixture()
	f.orders.orders = []core.Order{{ID: 1, RoomNumber: "101", Status: "Pending"}}

	rec := f.do(t, http.MethodGet, "/orders?status=Pending&room_number=101&limit=5", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Orders []core.Order `json:"orders"`
		Count  int          `json:"count"`
	}
	decode(t, rec, &resp)
	if resp.Count != 1 || len(resp.Orders) != 1 {
		t.Errorf("response = %+v", resp)
	}

	want := core.ListFilter{Status: "Pending", RoomNumber: "101", Limit: 5}
	if f.orders.gotFilter != want {
		t.Errorf("filter = %+v, want %+v", f.orders.gotFilter, want)
	}
}

func TestListOrdersDefaultLimit(t *testing.T) {
	f := newFixture()
	f.do(t, http.MethodGet, "/orders", "")
	if f.orders.gotFilter.Limit != 100 {
		t.Errorf("limit = %d, want 100", f.orders.gotFilter.Limit)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPut, "/orders/7", `{"status": "Preparing"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if f.orders.gotID != 7 || f.orders.gotStatus != "Preparing" {
		t.Errorf("update = (%d, %q)", f.orders.gotID, f.orders.gotStatus)
	}
}

func TestUpdateOrderRejectsInvalidStatus(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPut, "/orders/7", `{"status": "Eaten"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Pending, Preparing, Delivered, Cancelled") {
		t.Errorf("error should list valid statuses: %s", rec.Body.String())
	}
}

func TestUpdateOrderNotFound(t *testing.T) {
	f := newFixture()
	f.orders.updateErr = core.ErrNotFound

	rec := f.do(t, http.MethodPut, "/orders/999", `{"status": "Delivered"}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestUpdateOrderRejectsBadID(t *testing.T) {
	f := newFixture()
	rec := f.do(t, http.MethodPut, "/orders/abc", `{"status": "Delivered"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestUpdateRequestStatus(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodPut, "/requests/3", `{"status": "In Progress"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}

	// "Preparing" belongs to orders, not requests
	rec = f.do(t, http.MethodPut, "/requests/3", `{"status": "Preparing"}`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestMenuEndpoint(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodGet, "/menu", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp map[string]string
	decode(t, rec, &resp)
	if resp["menu"] != "THE MENU" {
		t.Errorf("menu = %q", resp["menu"])
	}
}

func TestHealthEndpoint(t *testing.T) {
	f := newFixture()
	f.orders.orders = []core.Order{{ID: 1}, {ID: 2}}

	rec := f.do(t, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Status string         `json:"status"`
		Stats  map[string]int `json:"stats"`
	}
	decode(t, rec, &resp)
	if resp.Status != "healthy" {
		t.Errorf("status = %q", resp.Status)
	}
	if resp.Stats["orders"] != 2 || resp.Stats["menu_items"] != 64 {
		t.Errorf("stats = %+v", resp.Stats)
	}
}

func TestRootEndpoint(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodGet, "/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Eco Resort Agent System") {
		t.Errorf("body = %s", rec.Body.String())
	}

	rec = f.do(t, http.MethodGet, "/nope", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown path status = %d, want 404", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	f := newFixture()

	rec := f.do(t, http.MethodOptions, "/chat", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS header")
	}
}
