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

	getAvailableSlotsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_available_slots"
	getFacilityConfigHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_facility_config"
	getFacilityReservationsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_facility_reservations"
	getPriceQuoteHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_price_quote"
	getReservationHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_reservation"
	updateFacilityConfigHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/update_facility_config"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtService/internal/config"
	facilityRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/facility"
	reservationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/reservation"
	tenantServiceClient "github.com/m04kA/SMC-CourtService/internal/integrations/tenantservice"
	configService "github.com/m04kA/SMC-CourtService/internal/service/config"
	reservationsService "github.com/m04kA/SMC-CourtService/internal/service/reservations"
	getAvailableSlotsUC "github.com/m04kA/SMC-CourtService/internal/usecase/get_available_slots"
	getPriceQuoteUC "github.com/m04kA/SMC-CourtService/internal/usecase/get_price_quote"
	"github.com/m04kA/SMC-CourtService/pkg/civiltime"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/logger"
	"github.com/m04kA/SMC-CourtService/pkg/metrics"
	"github.com/m04kA/SMC-CourtService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CourtService/pkg/txmanager"
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

	log.Info("Starting SMC-CourtService...")
	log.Info("Configuration loaded from config.toml")

	// Гражданская таймзона сервиса (площадка может переопределить своей)
	converter, err := civiltime.NewConverter(cfg.Service.Timezone)
	if err != nil {
		log.Fatal("Failed to load service timezone %q: %v", cfg.Service.Timezone, err)
	}
	log.Info("Service timezone: %s", cfg.Service.Timezone)

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

	// Инициализируем клиента каталога тенантов
	tenantClient := tenantServiceClient.NewClient(
		cfg.TenantService.URL,
		time.Duration(cfg.TenantService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (TenantService=%s timeout=%ds)",
		cfg.TenantService.URL, cfg.TenantService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		facilityRepository    *facilityRepo.Repository
		reservationRepository *reservationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в сервисе конфигурации)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		facilityRepository = facilityRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		facilityRepository = facilityRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	configSvc := configService.NewService(
		facilityRepository,
		tenantClient,
		txMgr,
		log,
	)
	reservationsSvc := reservationsService.NewService(
		reservationRepository,
		tenantClient,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		reservationRepository,
		facilityRepository,
		tenantClient,
		converter,
		log,
	)
	getPriceQuoteUseCase := getPriceQuoteUC.NewUseCase(
		facilityRepository,
		tenantClient,
		converter,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getPriceQuote := getPriceQuoteHandler.NewHandler(getPriceQuoteUseCase, log)
	getFacilityConfig := getFacilityConfigHandler.NewHandler(configSvc, log)
	updateFacilityConfig := updateFacilityConfigHandler.NewHandler(configSvc, log)
	getFacilityReservations := getFacilityReservationsHandler.NewHandler(reservationsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты площадки на день
	api.HandleFunc("/facilities/{facilityId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Расчет цены слота
	api.HandleFunc("/facilities/{facilityId}/price-quote",
		getPriceQuote.Handle).Methods(http.MethodGet)

	// Конфигурация площадки
	api.HandleFunc("/facilities/{facilityId}/config",
		getFacilityConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Управление площадкой (для менеджеров) ---
	// Обновление конфигурации площадки
	protected.HandleFunc("/facilities/{facilityId}/config",
		updateFacilityConfig.Handle).Methods(http.MethodPut)

	// Список броней площадки
	protected.HandleFunc("/facilities/{facilityId}/reservations",
		getFacilityReservations.Handle).Methods(http.MethodGet)

	// Получение брони по ID
	protected.HandleFunc("/reservations/{reservationId}",
		getReservation.Handle).Methods(http.MethodGet)

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
