package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	addReviewHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/add_review"
	cancelBookingHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/complete_booking"
	confirmBookingHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/create_booking"
	createClientHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/create_client"
	createProviderHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/create_provider"
	getAllProvidersHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/get_all_providers"
	getBookingHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/get_booking"
	getClientHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/get_client"
	getClientHistoryHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/get_client_history"
	getProviderHistoryHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/get_provider_history"
	rescheduleBookingHandler "github.com/m04kA/SMC-MarketplaceService/internal/api/handlers/reschedule_booking"
	"github.com/m04kA/SMC-MarketplaceService/internal/api/middleware"
	"github.com/m04kA/SMC-MarketplaceService/internal/config"
	bookingRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/booking"
	clientRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/client"
	providerRepo "github.com/m04kA/SMC-MarketplaceService/internal/infra/storage/provider"
	bookingsService "github.com/m04kA/SMC-MarketplaceService/internal/service/bookings"
	clientsService "github.com/m04kA/SMC-MarketplaceService/internal/service/clients"
	providersService "github.com/m04kA/SMC-MarketplaceService/internal/service/providers"
	addReviewUC "github.com/m04kA/SMC-MarketplaceService/internal/usecase/add_review"
	createBookingUC "github.com/m04kA/SMC-MarketplaceService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-MarketplaceService/pkg/dbmetrics"
	"github.com/m04kA/SMC-MarketplaceService/pkg/logger"
	"github.com/m04kA/SMC-MarketplaceService/pkg/metrics"
	"github.com/m04kA/SMC-MarketplaceService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-MarketplaceService/pkg/txmanager"
	"github.com/m04kA/SMC-MarketplaceService/pkg/uuidgen"
)

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

	log.Info("Starting SMC-MarketplaceService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
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
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		providerRepository *providerRepo.Repository
		clientRepository   *clientRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		providerRepository = providerRepo.NewRepository(wrappedDB)
		clientRepository = clientRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		providerRepository = providerRepo.NewRepository(db)
		clientRepository = clientRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	idGen := uuidgen.New()
	providerSvc := providersService.NewService(providerRepository, idGen, log)
	clientSvc := clientsService.NewService(clientRepository, idGen, log)
	bookingSvc := bookingsService.NewService(bookingRepository, providerRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		providerRepository,
		clientRepository,
		txMgr,
		log,
	)
	addReviewUseCase := addReviewUC.NewUseCase(
		bookingRepository,
		providerRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createProvider := createProviderHandler.NewHandler(providerSvc, log)
	getAllProviders := getAllProvidersHandler.NewHandler(providerSvc, log)
	createClient := createClientHandler.NewHandler(clientSvc, log)
	getClient := getClientHandler.NewHandler(clientSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(bookingSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	completeBooking := completeBookingHandler.NewHandler(bookingSvc, log)
	addReview := addReviewHandler.NewHandler(addReviewUseCase, log)
	getProviderHistory := getProviderHistoryHandler.NewHandler(bookingSvc, log)
	getClientHistory := getClientHistoryHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Поставщики услуг ---
	api.HandleFunc("/providers", createProvider.Handle).Methods(http.MethodPost)
	api.HandleFunc("/providers", getAllProviders.Handle).Methods(http.MethodGet)
	api.HandleFunc("/providers/{providerId}/bookings", getProviderHistory.Handle).Methods(http.MethodGet)

	// --- Клиенты ---
	api.HandleFunc("/clients", createClient.Handle).Methods(http.MethodPost)
	api.HandleFunc("/clients/{clientId}", getClient.Handle).Methods(http.MethodGet)
	api.HandleFunc("/clients/{clientId}/bookings", getClientHistory.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/bookings/{bookingId}/complete", completeBooking.Handle).Methods(http.MethodPatch)

	// --- Отзывы ---
	api.HandleFunc("/bookings/{bookingId}/reviews", addReview.Handle).Methods(http.MethodPost)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
