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

	cancelBookingHandler "github.com/strizhka-app/booking-service/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/strizhka-app/booking-service/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/strizhka-app/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/strizhka-app/booking-service/internal/api/handlers/get_booking"
	getShopConfigHandler "github.com/strizhka-app/booking-service/internal/api/handlers/get_shop_config"
	paymentWebhooksHandler "github.com/strizhka-app/booking-service/internal/api/handlers/payment_webhooks"
	sweepExpiredHandler "github.com/strizhka-app/booking-service/internal/api/handlers/sweep_expired"
	"github.com/strizhka-app/booking-service/internal/api/middleware"
	"github.com/strizhka-app/booking-service/internal/config"
	sweepCron "github.com/strizhka-app/booking-service/internal/cron"
	bookingRepo "github.com/strizhka-app/booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/strizhka-app/booking-service/internal/infra/storage/catalog"
	cloudPaymentsClient "github.com/strizhka-app/booking-service/internal/integrations/cloudpayments"
	bookingsService "github.com/strizhka-app/booking-service/internal/service/bookings"
	paymentsService "github.com/strizhka-app/booking-service/internal/service/payments"
	shopConfigService "github.com/strizhka-app/booking-service/internal/service/shopconfig"
	cancelBookingUC "github.com/strizhka-app/booking-service/internal/usecase/cancel_booking"
	createBookingUC "github.com/strizhka-app/booking-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/strizhka-app/booking-service/internal/usecase/get_available_slots"
	"github.com/strizhka-app/booking-service/pkg/dbmetrics"
	"github.com/strizhka-app/booking-service/pkg/logger"
	"github.com/strizhka-app/booking-service/pkg/metrics"
	"github.com/strizhka-app/booking-service/pkg/txmanager"
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

	log.Info("Starting booking-service...")
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

	// Оборачиваем соединение: с метриками или без
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Клиент CloudPayments (возвраты платежей)
	cpClient := cloudPaymentsClient.NewClient(
		cfg.CloudPayments.APIURL,
		cfg.CloudPayments.PublicID,
		cfg.CloudPayments.APISecret,
		time.Duration(cfg.CloudPayments.Timeout)*time.Second,
		log,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, catalogRepository, log)
	paymentSvc := paymentsService.NewService(bookingRepository, catalogRepository, log)
	shopConfigSvc := shopConfigService.NewService(catalogRepository, shopConfigService.Config{
		ShopName:            cfg.Shop.Name,
		ShopTagline:         cfg.Shop.Tagline,
		ContactsHTML:        cfg.Shop.ContactsHTML,
		Currency:            cfg.Booking.Currency,
		PublicID:            cfg.CloudPayments.PublicID,
		TimezoneOffset:      cfg.Booking.TimezoneOffset,
		SlotStepMinutes:     cfg.Booking.SlotStepMinutes,
		HoldMinutes:         cfg.Booking.HoldMinutes,
		CancelDeadlineHours: cfg.Booking.CancelDeadlineHours,
	}, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		txMgr,
		createBookingUC.Config{
			HoldMinutes: cfg.Booking.HoldMinutes,
			Currency:    cfg.Booking.Currency,
			PublicID:    cfg.CloudPayments.PublicID,
		},
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		cfg.Booking.SlotStepMinutes,
		log,
	)

	cancelBookingUseCase := cancelBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		cpClient,
		cancelBookingUC.Config{
			DeadlineHours:  cfg.Booking.CancelDeadlineHours,
			TimezoneOffset: cfg.Booking.TimezoneOffset,
			AutoRefund:     cfg.CloudPayments.AutoRefund,
		},
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(cancelBookingUseCase, log)
	getShopConfig := getShopConfigHandler.NewHandler(shopConfigSvc, log)
	paymentWebhooks := paymentWebhooksHandler.NewHandler(paymentSvc, cfg.CloudPayments.APISecret, log)
	sweepExpired := sweepExpiredHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Публичная витрина
	api.HandleFunc("/config", getShopConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Записи
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// Уведомления CloudPayments: шлюз может слать и GET, и POST
	api.HandleFunc("/cloudpayments/check", paymentWebhooks.HandleCheck).Methods(http.MethodGet, http.MethodPost)
	api.HandleFunc("/cloudpayments/pay", paymentWebhooks.HandlePay).Methods(http.MethodGet, http.MethodPost)
	api.HandleFunc("/cloudpayments/fail", paymentWebhooks.HandleFail).Methods(http.MethodGet, http.MethodPost)

	// Ручной запуск очистки просроченных холдов
	api.HandleFunc("/cleanup-expired", sweepExpired.Handle).Methods(http.MethodPost)

	// Фоновая очистка по расписанию
	var sweeper *sweepCron.Sweeper
	if cfg.Booking.SweepSchedule != "" {
		sweeper = sweepCron.NewSweeper(bookingSvc, cfg.Booking.SweepSchedule, log)
		if err := sweeper.Start(); err != nil {
			log.Fatal("Failed to start sweeper: %v", err)
		}
	} else {
		log.Info("Sweep schedule is empty, background cleanup disabled")
	}

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

	if sweeper != nil {
		sweeper.Stop()
	}

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
