package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/RhuMuda-BookingService/internal/api/middleware"
	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/RhuMuda-BookingService/internal/infra/storage/booking"
	packagesRepo "github.com/m04kA/RhuMuda-BookingService/internal/infra/storage/packages"
	"github.com/m04kA/RhuMuda-BookingService/internal/infra/storage/session"
	"github.com/m04kA/RhuMuda-BookingService/internal/integrations/bookingapi"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/bookings"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/catalog"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/packages"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/wizard"
	createBookingUC "github.com/m04kA/RhuMuda-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/RhuMuda-BookingService/pkg/logger"
)

// memoryStore in-memory реализация репозиториев пакетов и бронирований
type memoryStore struct {
	mu       sync.Mutex
	packages []domain.PackageOption
	bookings map[string]*domain.Booking
	nextID   int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		packages: []domain.PackageOption{
			{ID: "boat1", Title: "Private Boat", Type: domain.PackageBoat, Capacity: 8, Pricing: domain.PrivateBoatPricing(750)},
			{ID: "fish1", Title: "Squid Jigging", Type: domain.PackageFishing, Pricing: domain.RangePricing(1400, 1500)},
		},
		bookings: map[string]*domain.Booking{},
	}
}

func (m *memoryStore) List(ctx context.Context, kind *domain.PackageKind) ([]domain.PackageOption, error) {
	var out []domain.PackageOption
	for _, p := range m.packages {
		if kind == nil || p.Type == *kind {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryStore) GetByID(ctx context.Context, id string) (*domain.PackageOption, error) {
	for _, p := range m.packages {
		if p.ID == id {
			pkg := p
			return &pkg, nil
		}
	}
	return nil, packagesRepo.ErrPackageNotFound
}

type bookingTable struct{ *memoryStore }

func (m bookingTable) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bookings[b.BookingID]; ok {
		return nil, bookingRepo.ErrDuplicateBookingID
	}
	if b.IdempotencyKey != "" && m.byKey(b.IdempotencyKey) != nil {
		return nil, bookingRepo.ErrDuplicateIdempotencyKey
	}
	m.nextID++
	out := *b
	out.ID = m.nextID
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	m.bookings[b.BookingID] = &out
	return &out, nil
}

func (m bookingTable) byKey(key string) *domain.Booking {
	for _, b := range m.bookings {
		if b.IdempotencyKey == key {
			return b
		}
	}
	return nil
}

func (m bookingTable) GetByIdempotencyKey(ctx context.Context, key string) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b := m.byKey(key)
	if b == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	out := *b
	return &out, nil
}

func (m bookingTable) ExistsByBookingID(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.bookings[id]
	return ok, nil
}

func (m bookingTable) GetByBookingID(ctx context.Context, id string) (*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	out := *b
	return &out, nil
}

func (m bookingTable) ListByEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*domain.Booking
	for _, b := range m.bookings {
		if strings.EqualFold(b.Customer.Email, email) {
			c := *b
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m bookingTable) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

type directTx struct{}

func (directTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type testServer struct {
	*httptest.Server
	store *memoryStore
}

// newTestServer поднимает booking API и визард в одном сервере; визард ходит в API по HTTP
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithOptions(t, Options{})
}

func newTestServerWithOptions(t *testing.T, opts Options) *testServer {
	t.Helper()
	log := logger.Nop()

	var router http.Handler
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		router.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	store := newMemoryStore()
	client := bookingapi.NewClient(srv.URL, 5*time.Second, log)
	cat := catalog.NewCatalog(client, 0, nil, log)

	router = NewRouter(Services{
		Packages:      packages.NewService(store, log),
		CreateBooking: createBookingUC.NewUseCase(bookingTable{store}, store, directTx{}, nil, log),
		Bookings:      bookings.NewService(bookingTable{store}, store, log),
		Sessions:      session.NewStore(time.Hour, 0, nil, log),
		NewWizard: func() *wizard.Service {
			return wizard.NewService(cat, client, nil, log)
		},
	}, opts, log)

	return &testServer{Server: srv, store: store}
}

func (s *testServer) do(t *testing.T, method, path, sessionID string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	return s.doFrom(t, "", method, path, sessionID, body)
}

// doFrom запрос от имени клиента за прокси (X-Forwarded-For)
func (s *testServer) doFrom(t *testing.T, clientIP, method, path, sessionID string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set(middleware.SessionHeader, sessionID)
	}
	if clientIP != "" {
		req.Header.Set("X-Forwarded-For", clientIP)
	}

	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func bookingDate() string {
	return time.Now().AddDate(0, 0, 10).Format(domain.DateFormat)
}

// bookingPayload валидное тело POST /api/bookings
func bookingPayload(email string) map[string]interface{} {
	return map[string]interface{}{
		"customerInfo": map[string]string{
			"firstName":    "Aisyah",
			"lastName":     "Rahman",
			"phoneNumber":  "+60123456789",
			"email":        email,
			"addressLine1": "12 Jalan Sultan",
			"postalCode":   "20000",
			"city":         "Kuala Terengganu",
			"country":      "Malaysia",
		},
		"reservationDetails": map[string]interface{}{
			"jettyLocation":      "Rhumuda",
			"bookingDate":        bookingDate(),
			"numberOfPassengers": 4,
			"packageType":        "boat1",
			"addOns":             []string{"lunch"},
		},
		"otherOptions": map[string]string{},
	}
}

func TestRouter_InquiryFlow(t *testing.T) {
	srv := newTestServer(t)

	// 1. Старт с предзаполнением из поиска
	resp, body := srv.do(t, http.MethodPost, "/inquiry", "", map[string]interface{}{
		"jettyPoint": "Rhumuda",
		"passengers": 4,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	sid, _ := body["sessionId"].(string)
	require.NotEmpty(t, sid)
	assert.Equal(t, sid, resp.Header.Get(middleware.SessionHeader))
	assert.Equal(t, "customer-info", body["activeStep"])

	// 2. Пустой шаг не пропускает дальше
	resp, body = srv.do(t, http.MethodPost, "/inquiry/next", sid, nil)
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "customer-info", body["step"])
	assert.Len(t, body["fields"], len(domain.CustomerInfoRequiredFields))

	// 3. Заполняем данные клиента
	resp, body = srv.do(t, http.MethodPut, "/inquiry/info", sid, map[string]string{
		"firstName":    "Aisyah",
		"lastName":     "Rahman",
		"phoneNumber":  "+60123456789",
		"email":        "aisyah@example.com",
		"addressLine1": "12 Jalan Sultan",
		"postalCode":   "20000",
		"city":         "Kuala Terengganu",
		"country":      "Malaysia",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, body["fieldErrors"])

	resp, body = srv.do(t, http.MethodPost, "/inquiry/next", sid, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "reservation-details", body["activeStep"])

	// 4. Шаг бронирования: каталог загружен через booking API
	resp, body = srv.do(t, http.MethodGet, "/inquiry/reservation", sid, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cat := body["catalog"].(map[string]interface{})
	assert.Equal(t, string(catalog.StatusLoaded), cat["status"])
	assert.Len(t, cat["packages"], 2)
	reservation := body["reservationDetails"].(map[string]interface{})
	assert.Equal(t, "Rhumuda", reservation["jettyLocation"])
	assert.EqualValues(t, 4, reservation["numberOfPassengers"])

	resp, _ = srv.do(t, http.MethodPut, "/inquiry/reservation", sid, map[string]interface{}{
		"bookingDate": bookingDate(),
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = srv.do(t, http.MethodPut, "/inquiry/reservation/package", sid, map[string]string{"packageId": "boat1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 750, body["totalAmount"])

	for _, id := range []string{"lunch", "guide"} {
		resp, body = srv.do(t, http.MethodPost, "/inquiry/reservation/addons/"+id, sid, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, true, body["selected"])
	}
	assert.EqualValues(t, 770, body["totalAmount"])

	resp, _ = srv.do(t, http.MethodPost, "/inquiry/next", sid, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// 5. До подтверждения сводки нет
	resp, _ = srv.do(t, http.MethodGet, "/inquiry/summary", sid, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, _ = srv.do(t, http.MethodPut, "/inquiry/options", sid, map[string]string{"remarks": "Birthday trip"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// 6. Отправка заявки
	resp, body = srv.do(t, http.MethodPost, "/inquiry/next", sid, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "confirmation", body["activeStep"])

	resp, body = srv.do(t, http.MethodGet, "/inquiry/summary", sid, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	conf := body["confirmation"].(map[string]interface{})
	bookingID, _ := conf["bookingId"].(string)
	assert.True(t, domain.IsValidBookingID(bookingID), bookingID)
	assert.EqualValues(t, 770, conf["totalAmount"])
	assert.Equal(t, "pending", conf["status"])
	jetty := body["jetty"].(map[string]interface{})
	assert.Equal(t, "Rhumuda", jetty["location"])

	// Подтверждение терминально
	resp, _ = srv.do(t, http.MethodPost, "/inquiry/back", sid, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// 7. Бронирование сохранено в booking API
	resp, body = srv.do(t, http.MethodGet, "/api/bookings/"+bookingID, "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 770, body["totalAmount"])
	assert.Equal(t, "Birthday trip", body["otherOptions"].(map[string]interface{})["remarks"])

	resp, body = srv.do(t, http.MethodGet, "/api/bookings?email=AISYAH@example.com", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, body["total"])

	resp, _ = srv.do(t, http.MethodPatch, "/api/bookings/"+bookingID+"/cancel", "", map[string]string{"email": "someone@else.com"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body = srv.do(t, http.MethodPatch, "/api/bookings/"+bookingID+"/cancel", "", map[string]string{"email": "aisyah@example.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "cancelled", body["status"])

	resp, _ = srv.do(t, http.MethodPatch, "/api/bookings/"+bookingID+"/cancel", "", map[string]string{"email": "aisyah@example.com"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// 8. Restart - единственный выход из подтверждения
	resp, body = srv.do(t, http.MethodPost, "/inquiry/restart", sid, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "customer-info", body["activeStep"])
	assert.Nil(t, body["confirmation"])
}

func TestRouter_InquiryWithoutSession(t *testing.T) {
	srv := newTestServer(t)

	// чтение шага без сессии отдает пустые данные
	resp, body := srv.do(t, http.MethodGet, "/inquiry/options", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "customer-info", body["activeStep"])

	resp, body = srv.do(t, http.MethodGet, "/inquiry/reservation", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, body["addOnCatalog"], len(domain.AddOnCatalog))

	resp, _ = srv.do(t, http.MethodPut, "/inquiry/info", "", map[string]string{"email": "a@b.c"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = srv.do(t, http.MethodPost, "/inquiry/next", "not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = srv.do(t, http.MethodPost, "/inquiry/next", "7f6d3f0e-9c1c-4d3b-a0a6-2f9b1c9e0d11", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = srv.do(t, http.MethodGet, "/inquiry/summary", "", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRouter_InvalidFieldValues(t *testing.T) {
	srv := newTestServer(t)

	_, body := srv.do(t, http.MethodPost, "/inquiry", "", nil)
	sid := body["sessionId"].(string)

	tests := []struct {
		name string
		path string
		body interface{}
		want int
	}{
		{"unknown jetty", "/inquiry/reservation", map[string]string{"jettyLocation": "Marang"}, http.StatusBadRequest},
		{"date in the past", "/inquiry/reservation", map[string]string{"bookingDate": "2000-01-01"}, http.StatusBadRequest},
		{"too many passengers", "/inquiry/reservation", map[string]int{"numberOfPassengers": 21}, http.StatusBadRequest},
		{"unknown package", "/inquiry/reservation/package", map[string]string{"packageId": "boat9"}, http.StatusNotFound},
		{"malformed body", "/inquiry/options", "not an object", http.StatusBadRequest},
		{"alternative date in the past", "/inquiry/options", map[string]string{"alternativeDate1": "2000-01-01"}, http.StatusBadRequest},
		{"alternative date today", "/inquiry/options", map[string]string{"alternativeDate2": time.Now().Format(domain.DateFormat)}, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, _ := srv.do(t, http.MethodPut, tt.path, sid, tt.body)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}

	resp, _ := srv.do(t, http.MethodPost, "/inquiry/reservation/addons/jetski", sid, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = srv.do(t, http.MethodPost, "/inquiry/back", sid, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestRouter_Packages(t *testing.T) {
	srv := newTestServer(t)

	resp, err := srv.Client().Get(srv.URL + "/services/fishing")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pkgs []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pkgs))
	require.Len(t, pkgs, 1)
	assert.Equal(t, "fish1", pkgs[0]["id"])

	r2, _ := srv.do(t, http.MethodGet, "/api/packages?type=jetski", "", nil)
	assert.Equal(t, http.StatusBadRequest, r2.StatusCode)

	r3, body := srv.do(t, http.MethodGet, "/api/packages/boat1", "", nil)
	require.Equal(t, http.StatusOK, r3.StatusCode)
	assert.EqualValues(t, 750, body["privateBoatPrice"])

	r4, _ := srv.do(t, http.MethodGet, "/api/packages/boat9", "", nil)
	assert.Equal(t, http.StatusNotFound, r4.StatusCode)
}

func TestRouter_CreateBookingRejectsInvalidPayload(t *testing.T) {
	srv := newTestServer(t)

	resp, body := srv.do(t, http.MethodPost, "/api/bookings", "", map[string]interface{}{
		"customerInfo": map[string]string{"email": "a@b.c"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body["message"], "firstName")

	resp, _ = srv.do(t, http.MethodGet, "/api/bookings/not-an-id", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = srv.do(t, http.MethodGet, "/api/bookings/BK000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = srv.do(t, http.MethodGet, "/api/bookings?email=nope", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRouter_CreateBookingRejectsPastAlternativeDate(t *testing.T) {
	srv := newTestServer(t)

	payload := bookingPayload("aisyah@example.com")
	payload["otherOptions"] = map[string]string{"alternativeDate1": "2000-01-01"}

	resp, body := srv.do(t, http.MethodPost, "/api/bookings", "", payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "alternative dates must be after today", body["message"])

	payload["otherOptions"] = map[string]string{"alternativeDate1": time.Now().AddDate(0, 0, 12).Format(domain.DateFormat)}
	resp, body = srv.do(t, http.MethodPost, "/api/bookings", "", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, domain.IsValidBookingID(body["bookingId"].(string)))
}

// submitInquiry проходит визард до отправки от имени clientIP, возвращает ответ на отправку
func submitInquiry(t *testing.T, srv *testServer, clientIP string) (*http.Response, map[string]interface{}) {
	t.Helper()

	resp, body := srv.doFrom(t, clientIP, http.MethodPost, "/inquiry", "", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	sid := body["sessionId"].(string)

	payload := bookingPayload("guest@example.com")
	steps := []struct {
		method, path string
		body         interface{}
	}{
		{http.MethodPut, "/inquiry/info", payload["customerInfo"]},
		{http.MethodPost, "/inquiry/next", nil},
		{http.MethodPut, "/inquiry/reservation", map[string]interface{}{
			"jettyLocation":      "Rhumuda",
			"bookingDate":        bookingDate(),
			"numberOfPassengers": 2,
		}},
		{http.MethodPut, "/inquiry/reservation/package", map[string]string{"packageId": "fish1"}},
		{http.MethodPost, "/inquiry/next", nil},
	}
	for _, st := range steps {
		resp, _ = srv.doFrom(t, clientIP, st.method, st.path, sid, st.body)
		require.Equal(t, http.StatusOK, resp.StatusCode, st.path)
	}

	return srv.doFrom(t, clientIP, http.MethodPost, "/inquiry/next", sid, nil)
}

func TestRouter_RateLimitPerClient(t *testing.T) {
	rl := middleware.NewRateLimiter(10, 3, time.Minute, true, nil)
	srv := newTestServerWithOptions(t, Options{RateLimiter: rl})

	// отправок больше, чем burst, но от разных клиентов
	for i := 1; i <= 5; i++ {
		ip := fmt.Sprintf("203.0.113.%d", i)
		resp, body := submitInquiry(t, srv, ip)
		require.Equal(t, http.StatusOK, resp.StatusCode, ip)
		assert.Equal(t, "confirmation", body["activeStep"], ip)
	}
	assert.Len(t, srv.store.bookings, 5)

	// прямые обращения к booking API ограничиваются по IP клиента
	for i := 0; i < 3; i++ {
		resp, _ := srv.doFrom(t, "198.51.100.7", http.MethodPost, "/api/bookings", "", bookingPayload("direct@example.com"))
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}
	resp, _ := srv.doFrom(t, "198.51.100.7", http.MethodPost, "/api/bookings", "", bookingPayload("direct@example.com"))
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Equal(t, "60", resp.Header.Get("Retry-After"))

	// один клиент упирается в лимит на старте и отправке: 2 токена на заявку
	resp, _ = submitInquiry(t, srv, "192.0.2.44")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = srv.doFrom(t, "192.0.2.44", http.MethodPost, "/inquiry", "", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = srv.doFrom(t, "192.0.2.44", http.MethodPost, "/inquiry", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
}

func TestRouter_CreateBookingRepeatedIdempotencyKey(t *testing.T) {
	srv := newTestServer(t)

	payload := bookingPayload("aisyah@example.com")
	payload["idempotencyKey"] = "3b8d1c52-6f0e-4d7a-9c21-8e5f4a7b0c13"

	resp, first := srv.do(t, http.MethodPost, "/api/bookings", "", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, second := srv.do(t, http.MethodPost, "/api/bookings", "", payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.Equal(t, first["bookingId"], second["bookingId"])
	assert.Len(t, srv.store.bookings, 1)
}
