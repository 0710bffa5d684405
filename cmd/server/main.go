package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/cors"

	"github.com/m04kA/RhuMuda-BookingService/internal/api"
	"github.com/m04kA/RhuMuda-BookingService/internal/api/middleware"
	"github.com/m04kA/RhuMuda-BookingService/internal/config"
	bookingRepo "github.com/m04kA/RhuMuda-BookingService/internal/infra/storage/booking"
	packagesRepo "github.com/m04kA/RhuMuda-BookingService/internal/infra/storage/packages"
	"github.com/m04kA/RhuMuda-BookingService/internal/infra/storage/session"
	"github.com/m04kA/RhuMuda-BookingService/internal/integrations/bookingapi"
	bookingsService "github.com/m04kA/RhuMuda-BookingService/internal/service/bookings"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/catalog"
	packagesService "github.com/m04kA/RhuMuda-BookingService/internal/service/packages"
	"github.com/m04kA/RhuMuda-BookingService/internal/service/wizard"
	createBookingUC "github.com/m04kA/RhuMuda-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/RhuMuda-BookingService/pkg/dbmetrics"
	"github.com/m04kA/RhuMuda-BookingService/pkg/logger"
	"github.com/m04kA/RhuMuda-BookingService/pkg/metrics"
	"github.com/m04kA/RhuMuda-BookingService/pkg/txmanager"
)

const rateLimitIdleTTL = 10 * time.Minute

func main() {
	configPath := flag.String("config", "config.toml", "path to config file")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting RhuMuda-BookingService...")
	log.Info("Configuration loaded from %s", *configPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		routerMetrics    api.MetricsRecorder
		dbRecorder       dbmetrics.MetricsRecorder
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		routerMetrics = metricsCollector
		dbRecorder = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Без метрик обертка просто проксирует запросы
	wrappedDB := dbmetrics.WrapWithDefault(db, dbRecorder, ctx.Done())
	txManager := txmanager.NewTransactionManager(wrappedDB)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	packagesRepository := packagesRepo.NewRepository(wrappedDB)

	// Сервисы и use cases
	bookingSvc := bookingsService.NewService(bookingRepository, packagesRepository, log)
	packagesSvc := packagesService.NewService(packagesRepository, log)
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		packagesRepository,
		txManager,
		metricsCollector,
		log,
	)

	// Визард ходит в booking API по HTTP, как и фронтенд
	apiClient := bookingapi.NewClient(
		cfg.BookingAPI.URL,
		time.Duration(cfg.BookingAPI.Timeout)*time.Second,
		log,
	)
	packageCatalog := catalog.NewCatalog(
		apiClient,
		time.Duration(cfg.Catalog.RefreshInterval)*time.Second,
		metricsCollector,
		log,
	)
	log.Info("Booking API client initialized (url=%s timeout=%ds)", cfg.BookingAPI.URL, cfg.BookingAPI.Timeout)

	sessions := session.NewStore(cfg.Sessions.TTL(), cfg.Sessions.MaxSessions, metricsCollector, log)
	go sessions.Run(ctx, time.Duration(cfg.Sessions.CleanupInterval)*time.Second)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerMinute,
			cfg.RateLimit.Burst,
			rateLimitIdleTTL,
			cfg.RateLimit.TrustProxy,
			metricsCollector,
		)
		go limiter.Run(ctx, time.Minute)
		log.Info("Rate limit enabled (%d/min, burst %d)", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	router := api.NewRouter(api.Services{
		Packages:      packagesSvc,
		CreateBooking: createBookingUseCase,
		Bookings:      bookingSvc,
		Sessions:      sessions,
		NewWizard: func() *wizard.Service {
			return wizard.NewService(packageCatalog, apiClient, metricsCollector, log)
		},
	}, api.Options{
		Metrics:     routerMetrics,
		MetricsPath: cfg.Metrics.Path,
		RateLimiter: limiter,
	}, log)

	// CORS для фронтенда
	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.SessionHeader},
		ExposedHeaders: []string{middleware.SessionHeader},
	}).Handler(router)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
		IdleTimeout:  cfg.Server.IdleTimeoutDuration(),
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeoutDuration())
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		return
	}
	log.Info("Server stopped")
}
