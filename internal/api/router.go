package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers/cancel_booking"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers/create_booking"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers/get_booking"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers/get_inquiry_step"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers/get_inquiry_summary"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers/get_package"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers/get_user_bookings"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers/list_packages"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers/navigate_inquiry"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers/select_package"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers/start_inquiry"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers/toggle_addon"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/handlers/update_inquiry_step"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/middleware"
	"github.com/m04kA/RhuMuda-BookingService/internal/domain"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/bookings/models"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/wizard"
)

// PackageService каталог пакетов booking API
type PackageService interface {
	List(ctx context.Context, kind string) ([]domain.PackageOption, error)
	GetByID(ctx context.Context, id string) (*domain.PackageOption, error)
}

// BookingService сохраненные бронирования
type BookingService interface {
	GetByBookingID(ctx context.Context, bookingID string) (*domain.BookingConfirmation, error)
	ListByEmail(ctx context.Context, email string) (*models.BookingListResponse, error)
	Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) error
}

// SessionStore сессии визарда
type SessionStore interface {
	Create(w *wizard.Service) (string, error)
	Get(id string) (*wizard.Service, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder HTTP метрики и endpoint для Prometheus
type MetricsRecorder interface {
	middleware.HTTPMetricsRecorder
	Handler() http.Handler
}

// Services зависимости маршрутов. Пустые группы не регистрируются.
type Services struct {
	Packages      PackageService
	CreateBooking create_booking.BookingCreator
	Bookings      BookingService
	Sessions      SessionStore
	NewWizard     func() *wizard.Service
}

// Options необязательные части роутера
type Options struct {
	Metrics     MetricsRecorder // nil - метрики выключены
	MetricsPath string
	RateLimiter *middleware.RateLimiter // nil - без ограничения частоты
}

// NewRouter регистрирует маршруты booking API и визарда
func NewRouter(svc Services, opts Options, logger Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.SecurityHeaders)

	// Добавляем metrics middleware (если метрики включены)
	if opts.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(opts.Metrics))
		r.Handle(opts.MetricsPath, opts.Metrics.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// ============================================================
	// BOOKING API
	// ============================================================
	api := r.PathPrefix("/api").Subrouter()

	if svc.Packages != nil {
		listPackages := list_packages.NewHandler(svc.Packages, logger)
		getPackage := get_package.NewHandler(svc.Packages, logger)

		api.HandleFunc("/packages", listPackages.Handle).Methods(http.MethodGet)
		api.HandleFunc("/packages/{packageId}", getPackage.Handle).Methods(http.MethodGet)
		// страницы услуг по типу
		r.HandleFunc("/services/{type}", listPackages.Handle).Methods(http.MethodGet)
	}

	if svc.CreateBooking != nil {
		createBooking := create_booking.NewHandler(svc.CreateBooking, logger)

		var h http.Handler = http.HandlerFunc(createBooking.Handle)
		if opts.RateLimiter != nil {
			// отправки визарда ограничиваются по IP клиента на /inquiry/next
			h = opts.RateLimiter.LimitExternal(h)
		}
		api.Handle("/bookings", h).Methods(http.MethodPost)
	}

	if svc.Bookings != nil {
		api.HandleFunc("/bookings", get_user_bookings.NewHandler(svc.Bookings, logger).Handle).
			Methods(http.MethodGet)
		api.HandleFunc("/bookings/{bookingId}", get_booking.NewHandler(svc.Bookings, logger).Handle).
			Methods(http.MethodGet)
		api.HandleFunc("/bookings/{bookingId}/cancel", cancel_booking.NewHandler(svc.Bookings, logger).Handle).
			Methods(http.MethodPatch)
	}

	// ============================================================
	// INQUIRY WIZARD (сессия в заголовке X-Session-ID)
	// ============================================================
	if svc.Sessions != nil && svc.NewWizard != nil {
		registerInquiryRoutes(r, svc, opts, logger)
	}

	return r
}

func registerInquiryRoutes(r *mux.Router, svc Services, opts Options, logger Logger) {
	inquiry := r.PathPrefix("/inquiry").Subrouter()

	// Чтение шагов: без сессии отдаются пустые данные
	optional := middleware.OptionalSession(svc.Sessions)
	// Изменения требуют сессию
	required := middleware.Session(svc.Sessions)

	start := http.Handler(http.HandlerFunc(start_inquiry.NewHandler(svc.Sessions, svc.NewWizard, logger).Handle))
	if opts.RateLimiter != nil {
		start = opts.RateLimiter.Limit(start)
	}
	inquiry.Handle("", start).Methods(http.MethodPost)

	steps := []struct {
		path string
		step domain.Step
	}{
		{"/info", domain.StepCustomerInfo},
		{"/reservation", domain.StepReservationDetails},
		{"/options", domain.StepOtherOptions},
	}
	for _, s := range steps {
		inquiry.Handle(s.path, optional(http.HandlerFunc(
			get_inquiry_step.NewHandler(s.step, svc.NewWizard, logger).Handle))).Methods(http.MethodGet)
		inquiry.Handle(s.path, required(http.HandlerFunc(
			update_inquiry_step.NewHandler(s.step, logger).Handle))).Methods(http.MethodPut)
	}

	inquiry.Handle("/summary", optional(http.HandlerFunc(
		get_inquiry_summary.NewHandler(logger).Handle))).Methods(http.MethodGet)
	inquiry.Handle("/reservation/addons/{addOnId}", required(http.HandlerFunc(
		toggle_addon.NewHandler(logger).Handle))).Methods(http.MethodPost)
	inquiry.Handle("/reservation/package", required(http.HandlerFunc(
		select_package.NewHandler(logger).Handle))).Methods(http.MethodPut)

	for _, action := range []navigate_inquiry.Action{
		navigate_inquiry.ActionNext,
		navigate_inquiry.ActionBack,
		navigate_inquiry.ActionRestart,
	} {
		h := http.Handler(http.HandlerFunc(navigate_inquiry.NewHandler(action, logger).Handle))
		if action == navigate_inquiry.ActionNext && opts.RateLimiter != nil {
			h = opts.RateLimiter.LimitUnless(notSubmitting, h)
		}
		inquiry.Handle("/"+string(action), required(h)).Methods(http.MethodPost)
	}
}

// notSubmitting next отправляет заявку только с шага other-options
func notSubmitting(r *http.Request) bool {
	wz, ok := middleware.GetWizard(r.Context())
	return !ok || wz.ActiveStep() != domain.StepOtherOptions
}
