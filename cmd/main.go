package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelCheckoutHandler "github.com/m04kA/CMP-BookingGateway/internal/api/handlers/cancel_checkout"
	checkAvailabilityHandler "github.com/m04kA/CMP-BookingGateway/internal/api/handlers/check_availability"
	getBlockedDaysHandler "github.com/m04kA/CMP-BookingGateway/internal/api/handlers/get_blocked_days"
	getCheckoutStatusHandler "github.com/m04kA/CMP-BookingGateway/internal/api/handlers/get_checkout_status"
	startCheckoutHandler "github.com/m04kA/CMP-BookingGateway/internal/api/handlers/start_checkout"
	"github.com/m04kA/CMP-BookingGateway/internal/api/middleware"
	"github.com/m04kA/CMP-BookingGateway/internal/config"
	reservationsCache "github.com/m04kA/CMP-BookingGateway/internal/infra/cache/reservations"
	bookingServiceClient "github.com/m04kA/CMP-BookingGateway/internal/integrations/bookingservice"
	paymentServiceClient "github.com/m04kA/CMP-BookingGateway/internal/integrations/paymentservice"
	checkoutService "github.com/m04kA/CMP-BookingGateway/internal/service/checkout"
	checkAvailabilityUC "github.com/m04kA/CMP-BookingGateway/internal/usecase/check_availability"
	getBlockedDaysUC "github.com/m04kA/CMP-BookingGateway/internal/usecase/get_blocked_days"
	startCheckoutUC "github.com/m04kA/CMP-BookingGateway/internal/usecase/start_checkout"
	"github.com/m04kA/CMP-BookingGateway/pkg/logger"
	"github.com/m04kA/CMP-BookingGateway/pkg/metrics"
)

// ReservationsProvider источник списков броней для usecases
type ReservationsProvider interface {
	GetReservations(ctx context.Context, cabinID int64) ([]bookingServiceClient.Reservation, error)
}

// CacheInvalidator сброс кэша броней после успешного холда
type CacheInvalidator interface {
	Invalidate(ctx context.Context, cabinID int64)
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting CMP-BookingGateway...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем интеграционных клиентов
	bookingClient := bookingServiceClient.NewClient(
		cfg.BookingService.URL,
		time.Duration(cfg.BookingService.Timeout)*time.Second,
		log,
	)
	paymentClient := paymentServiceClient.NewClient(
		cfg.PaymentService.URL,
		time.Duration(cfg.PaymentService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (BookingService=%s timeout=%ds, PaymentService=%s timeout=%ds)",
		cfg.BookingService.URL, cfg.BookingService.Timeout, cfg.PaymentService.URL, cfg.PaymentService.Timeout)

	// Источник списков броней: с кэшем или напрямую
	var (
		reservationsProvider ReservationsProvider = bookingClient
		invalidator          CacheInvalidator     = reservationsCache.NoopInvalidator{}
	)

	if cfg.Cache.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		defer rdb.Close()

		cache := reservationsCache.New(rdb, bookingClient, time.Duration(cfg.Cache.TTLSeconds)*time.Second, log)
		reservationsProvider = cache
		invalidator = cache
		log.Info("Reservations cache enabled (redis=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTLSeconds)
	}

	// Инициализируем оркестратор checkout
	checkoutSvc := checkoutService.NewService(
		bookingClient,
		paymentClient,
		checkoutService.Options{
			PollInterval: time.Duration(cfg.Checkout.PollIntervalSeconds) * time.Second,
			MaxAttempts:  cfg.Checkout.MaxPollAttempts,
			BackURLBase:  cfg.Checkout.BackURLBase,
		},
		metricsRecorder(metricsCollector),
		log,
	)
	defer checkoutSvc.Close()

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingClient,
		reservationsProvider,
		cfg.Checkout.MinimumNights,
		log,
	)
	getBlockedDaysUseCase := getBlockedDaysUC.NewUseCase(
		reservationsProvider,
		log,
	)
	startCheckoutUseCase := startCheckoutUC.NewUseCase(
		bookingClient,
		reservationsProvider,
		checkoutSvc,
		invalidator,
		cfg.Checkout.MinimumNights,
		log,
	)

	// Инициализируем handlers
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getBlockedDays := getBlockedDaysHandler.NewHandler(getBlockedDaysUseCase, log)
	startCheckout := startCheckoutHandler.NewHandler(startCheckoutUseCase, log)
	getCheckoutStatus := getCheckoutStatusHandler.NewHandler(checkoutSvc, log)
	cancelCheckout := cancelCheckoutHandler.NewHandler(checkoutSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Заблокированные дни для календаря кабинки
	api.HandleFunc("/cabins/{cabinId}/blocked-days", getBlockedDays.Handle).Methods(http.MethodGet)

	// Проверка доступности диапазона дат
	api.HandleFunc("/cabins/{cabinId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(log))

	// Старт checkout: холд + платежное намерение + опрос статуса
	protected.HandleFunc("/checkout", startCheckout.Handle).Methods(http.MethodPost)

	// Статус checkout-сессии
	protected.HandleFunc("/checkout/{sessionId}", getCheckoutStatus.Handle).Methods(http.MethodGet)

	// Удаление завершенной checkout-сессии
	protected.HandleFunc("/checkout/{sessionId}", cancelCheckout.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// metricsRecorder адаптирует *metrics.Metrics к интерфейсу оркестратора
// Возвращает nil-интерфейс, когда метрики выключены
func metricsRecorder(m *metrics.Metrics) checkoutService.MetricsRecorder {
	if m == nil {
		return nil
	}
	return m
}
