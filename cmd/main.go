package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	accountsHandler "github.com/m04kA/SMC-OpsPanel/internal/api/handlers/accounts"
	createBookingHandler "github.com/m04kA/SMC-OpsPanel/internal/api/handlers/create_booking"
	deleteAppointmentHandler "github.com/m04kA/SMC-OpsPanel/internal/api/handlers/delete_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-OpsPanel/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-OpsPanel/internal/api/handlers/get_available_slots"
	getBusinessHoursHandler "github.com/m04kA/SMC-OpsPanel/internal/api/handlers/get_business_hours"
	getClientAppointmentsHandler "github.com/m04kA/SMC-OpsPanel/internal/api/handlers/get_client_appointments"
	getDashboardHandler "github.com/m04kA/SMC-OpsPanel/internal/api/handlers/get_dashboard"
	inventoryHandler "github.com/m04kA/SMC-OpsPanel/internal/api/handlers/inventory"
	listAppointmentsHandler "github.com/m04kA/SMC-OpsPanel/internal/api/handlers/list_appointments"
	"github.com/m04kA/SMC-OpsPanel/internal/api/middleware"
	"github.com/m04kA/SMC-OpsPanel/internal/config"
	accountRepo "github.com/m04kA/SMC-OpsPanel/internal/infra/storage/account"
	appointmentRepo "github.com/m04kA/SMC-OpsPanel/internal/infra/storage/appointment"
	inventoryRepo "github.com/m04kA/SMC-OpsPanel/internal/infra/storage/inventory"
	accountsService "github.com/m04kA/SMC-OpsPanel/internal/service/accounts"
	appointmentsService "github.com/m04kA/SMC-OpsPanel/internal/service/appointments"
	inventoryService "github.com/m04kA/SMC-OpsPanel/internal/service/inventory"
	createBookingUC "github.com/m04kA/SMC-OpsPanel/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-OpsPanel/internal/usecase/get_available_slots"
	getDashboardUC "github.com/m04kA/SMC-OpsPanel/internal/usecase/get_dashboard"
	"github.com/m04kA/SMC-OpsPanel/pkg/logger"
	"github.com/m04kA/SMC-OpsPanel/pkg/metrics"
	"github.com/m04kA/SMC-OpsPanel/pkg/txmanager"
)

// appointmentLedger все операции журнала записей, которые нужны use case'ам и сервису.
// Реализуется appointment.MemoryRepository и appointment.Repository.
type appointmentLedger interface {
	createBookingUC.AppointmentRepository
	getAvailableSlotsUC.AppointmentRepository
	appointmentsService.AppointmentRepository
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

	log.Info("Starting SMC-OpsPanel...")
	log.Info("Configuration loaded from config.toml")

	hours, err := cfg.Hours()
	if err != nil {
		log.Fatal("Invalid business hours: %v", err)
	}
	log.Info("Business hours: %s-%s, step=%dm, zone=%s",
		hours.OpeningTime, hours.ClosingTime, hours.GranularityMinutes(), hours.Location)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, nil)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем журнал записей
	var ledger appointmentLedger

	switch cfg.Storage.Driver {
	case config.StoragePostgres:
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
		pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
		err = db.PingContext(pingCtx)
		cancelPing()
		if err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		if cfg.Metrics.Enabled {
			prometheus.MustRegister(collectors.NewDBStatsCollector(db, cfg.Database.DBName))
			log.Info("Database pool metrics registered")
		}

		ledger = appointmentRepo.NewRepository(db, txmanager.NewTransactionManager(db))
	default:
		ledger = appointmentRepo.NewMemoryRepository()
	}
	log.Info("Appointment ledger initialized (driver=%s)", cfg.Storage.Driver)

	itemRepository := inventoryRepo.NewMemoryRepository()
	accountRepository := accountRepo.NewMemoryRepository()

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(ledger, metricsCollector, log)
	inventorySvc := inventoryService.NewService(itemRepository, log)
	accountSvc := accountsService.NewService(accountRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(ledger, hours, metricsCollector, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(ledger, hours, metricsCollector, log)
	getDashboardUseCase := getDashboardUC.NewUseCase(ledger, itemRepository, accountRepository, hours.Location, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(hours, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getClientAppointments := getClientAppointmentsHandler.NewHandler(appointmentSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentSvc, log)
	inventory := inventoryHandler.NewHandler(inventorySvc, log)
	accounts := accountsHandler.NewHandler(accountSvc, log)
	getDashboard := getDashboardHandler.NewHandler(getDashboardUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без идентификации клиента)
	// ============================================================

	// Доступные слоты на дату
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Рабочие часы
	api.HandleFunc("/business-hours", getBusinessHours.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Client-Name header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/position/{position}", deleteAppointment.HandleByPosition).Methods(http.MethodDelete)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", deleteAppointment.HandleByID).Methods(http.MethodDelete)
	protected.HandleFunc("/me/appointments", getClientAppointments.Handle).Methods(http.MethodGet)

	// --- Склад ---
	protected.HandleFunc("/inventory", inventory.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/inventory", inventory.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/inventory/{itemId}", inventory.HandleDelete).Methods(http.MethodDelete)

	// --- Счета к оплате ---
	protected.HandleFunc("/accounts", accounts.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/accounts", accounts.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/accounts/{accountId}/status", accounts.HandleUpdateStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/accounts/{accountId}", accounts.HandleDelete).Methods(http.MethodDelete)

	// --- Сводка ---
	protected.HandleFunc("/dashboard", getDashboard.Handle).Methods(http.MethodGet)

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
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
