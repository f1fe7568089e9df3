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

	cancellationQuoteHandler "github.com/m04kA/CMP-EstimateService/internal/api/handlers/cancellation_quote"
	estimateHandler "github.com/m04kA/CMP-EstimateService/internal/api/handlers/estimate"
	getPricingConfigHandler "github.com/m04kA/CMP-EstimateService/internal/api/handlers/get_pricing_config"
	getPricingVersionsHandler "github.com/m04kA/CMP-EstimateService/internal/api/handlers/get_pricing_versions"
	previewEstimateHandler "github.com/m04kA/CMP-EstimateService/internal/api/handlers/preview_estimate"
	updatePricingConfigHandler "github.com/m04kA/CMP-EstimateService/internal/api/handlers/update_pricing_config"
	"github.com/m04kA/CMP-EstimateService/internal/api/middleware"
	"github.com/m04kA/CMP-EstimateService/internal/config"
	pricingConfigRepo "github.com/m04kA/CMP-EstimateService/internal/infra/storage/pricingconfig"
	userServiceClient "github.com/m04kA/CMP-EstimateService/internal/integrations/userservice"
	pricingService "github.com/m04kA/CMP-EstimateService/internal/service/pricing"
	cancellationQuoteUC "github.com/m04kA/CMP-EstimateService/internal/usecase/cancellation_quote"
	estimateBookingUC "github.com/m04kA/CMP-EstimateService/internal/usecase/estimate_booking"
	previewEstimateUC "github.com/m04kA/CMP-EstimateService/internal/usecase/preview_estimate"
	"github.com/m04kA/CMP-EstimateService/pkg/dbmetrics"
	"github.com/m04kA/CMP-EstimateService/pkg/logger"
	"github.com/m04kA/CMP-EstimateService/pkg/metrics"
	"github.com/m04kA/CMP-EstimateService/pkg/simpletxmanager"
	"github.com/m04kA/CMP-EstimateService/pkg/txmanager"
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

	log.Info("Starting CMP-EstimateService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем клиент UserService
	userClient := userServiceClient.NewClient(
		cfg.UserService.URL,
		time.Duration(cfg.UserService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (UserService=%s timeout=%ds)",
		cfg.UserService.URL, cfg.UserService.Timeout)

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		configRepository *pricingConfigRepo.Repository
		txMgr            pricingService.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		configRepository = pricingConfigRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		configRepository = pricingConfigRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервис rate card
	pricingSvc := pricingService.NewService(
		configRepository,
		userClient,
		txMgr,
		log,
	)

	// Инициализируем use cases
	estimateBookingUseCase := estimateBookingUC.NewUseCase(
		configRepository,
		userClient,
		log,
	)
	cancellationQuoteUseCase := cancellationQuoteUC.NewUseCase(
		configRepository,
		log,
	)
	previewEstimateUseCase := previewEstimateUC.NewUseCase(
		userClient,
		log,
	)

	// Инициализируем handlers
	estimate := estimateHandler.NewHandler(estimateBookingUseCase, log)
	cancellationQuote := cancellationQuoteHandler.NewHandler(cancellationQuoteUseCase, log)
	getPricingConfig := getPricingConfigHandler.NewHandler(pricingSvc, log)
	updatePricingConfig := updatePricingConfigHandler.NewHandler(pricingSvc, log)
	getPricingVersions := getPricingVersionsHandler.NewHandler(pricingSvc, log)
	previewEstimate := previewEstimateHandler.NewHandler(previewEstimateUseCase, log)

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

	// Расчёт стоимости и длительности заказа
	api.HandleFunc("/estimates", estimate.Handle).Methods(http.MethodPost)

	// Расчёт штрафа за отмену бронирования
	api.HandleFunc("/estimates/cancellation-quote", cancellationQuote.Handle).Methods(http.MethodPost)

	// Получение действующего rate card
	api.HandleFunc("/pricing-config", getPricingConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Обновление rate card (создаёт новую версию)
	protected.HandleFunc("/pricing-config", updatePricingConfig.Handle).Methods(http.MethodPut)

	// История версий rate card
	protected.HandleFunc("/pricing-config/versions", getPricingVersions.Handle).Methods(http.MethodGet)

	// Preview расчёта по кандидатному rate card
	protected.HandleFunc("/pricing-config/preview", previewEstimate.Handle).Methods(http.MethodPost)

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
