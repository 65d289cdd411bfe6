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

	cancelBookingHandler "github.com/avelis/ARB-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/avelis/ARB-BookingService/internal/api/handlers/create_booking"
	getAssetBookingsHandler "github.com/avelis/ARB-BookingService/internal/api/handlers/get_asset_bookings"
	getAvailableSlotsHandler "github.com/avelis/ARB-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/avelis/ARB-BookingService/internal/api/handlers/get_booking"
	getGlobalConfigHandler "github.com/avelis/ARB-BookingService/internal/api/handlers/get_global_config"
	getUserBookingsHandler "github.com/avelis/ARB-BookingService/internal/api/handlers/get_user_bookings"
	manageBlackoutsHandler "github.com/avelis/ARB-BookingService/internal/api/handlers/manage_blackouts"
	manageParticipantsHandler "github.com/avelis/ARB-BookingService/internal/api/handlers/manage_participants"
	manageWorkingHoursHandler "github.com/avelis/ARB-BookingService/internal/api/handlers/manage_working_hours"
	updateBookingHandler "github.com/avelis/ARB-BookingService/internal/api/handlers/update_booking"
	updateBookingStatusHandler "github.com/avelis/ARB-BookingService/internal/api/handlers/update_booking_status"
	updateGlobalConfigHandler "github.com/avelis/ARB-BookingService/internal/api/handlers/update_global_config"
	"github.com/avelis/ARB-BookingService/internal/api/middleware"
	"github.com/avelis/ARB-BookingService/internal/config"
	assetRepo "github.com/avelis/ARB-BookingService/internal/infra/storage/asset"
	bookingRepo "github.com/avelis/ARB-BookingService/internal/infra/storage/booking"
	globalConfigRepo "github.com/avelis/ARB-BookingService/internal/infra/storage/globalconfig"
	scheduleRepo "github.com/avelis/ARB-BookingService/internal/infra/storage/schedule"
	notifierClient "github.com/avelis/ARB-BookingService/internal/integrations/notifier"
	bookingsService "github.com/avelis/ARB-BookingService/internal/service/bookings"
	calendarService "github.com/avelis/ARB-BookingService/internal/service/calendar"
	globalConfigService "github.com/avelis/ARB-BookingService/internal/service/globalconfig"
	scheduleService "github.com/avelis/ARB-BookingService/internal/service/schedule"
	admitBookingUC "github.com/avelis/ARB-BookingService/internal/usecase/admit_booking"
	getAvailableSlotsUC "github.com/avelis/ARB-BookingService/internal/usecase/get_available_slots"
	updateBookingStatusUC "github.com/avelis/ARB-BookingService/internal/usecase/update_booking_status"
	"github.com/avelis/ARB-BookingService/pkg/dbmetrics"
	"github.com/avelis/ARB-BookingService/pkg/logger"
	"github.com/avelis/ARB-BookingService/pkg/metrics"
	"github.com/avelis/ARB-BookingService/pkg/simpletxmanager"
	"github.com/avelis/ARB-BookingService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting ARB-BookingService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		log,
	)
	if cfg.Notifier.URL != "" {
		log.Info("Notifier client initialized (url=%s, timeout=%ds)", cfg.Notifier.URL, cfg.Notifier.Timeout)
	} else {
		log.Info("Notifier disabled, booking events will not be delivered")
	}

	var (
		bookingRepository      *bookingRepo.Repository
		assetRepository        *assetRepo.Repository
		scheduleRepository     *scheduleRepo.Repository
		globalConfigRepository *globalConfigRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		assetRepository = assetRepo.NewRepository(wrappedDB)
		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		globalConfigRepository = globalConfigRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		assetRepository = assetRepo.NewRepository(db)
		scheduleRepository = scheduleRepo.NewRepository(db)
		globalConfigRepository = globalConfigRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	calendarSvc := calendarService.NewService(scheduleRepository, globalConfigRepository, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, bookingRepository, assetRepository, log)
	globalConfigSvc := globalConfigService.NewService(globalConfigRepository, log)

	admitBookingUseCase := admitBookingUC.NewUseCase(
		bookingRepository,
		assetRepository,
		calendarSvc,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		assetRepository,
		calendarSvc,
		log,
	)
	updateBookingStatusUseCase := updateBookingStatusUC.NewUseCase(
		bookingRepository,
		assetRepository,
		txMgr,
		log,
	)

	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createBooking := createBookingHandler.NewHandler(admitBookingUseCase, notifier, log)
	updateBooking := updateBookingHandler.NewHandler(admitBookingUseCase, notifier, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(updateBookingStatusUseCase, notifier, log)
	cancelBooking := cancelBookingHandler.NewHandler(updateBookingStatusUseCase, notifier, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getAssetBookings := getAssetBookingsHandler.NewHandler(bookingSvc, log)
	manageParticipants := manageParticipantsHandler.NewHandler(bookingSvc, notifier, log)
	manageWorkingHours := manageWorkingHoursHandler.NewHandler(scheduleSvc, log)
	manageBlackouts := manageBlackoutsHandler.NewHandler(scheduleSvc, log)
	getGlobalConfig := getGlobalConfigHandler.NewHandler(globalConfigSvc, log)
	updateGlobalConfig := updateGlobalConfigHandler.NewHandler(globalConfigSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes: availability and the opaque-token booking links.
	api.HandleFunc("/units/{unitId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/token/{token}", getBooking.HandleByToken).Methods(http.MethodGet)
	api.HandleFunc("/bookings/token/{token}/cancel", cancelBooking.HandleByToken).Methods(http.MethodPost)
	api.HandleFunc("/config", getGlobalConfig.Handle).Methods(http.MethodGet)

	// Protected routes require the X-User-ID header set by the gateway.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/participants", manageParticipants.HandleAdd).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}/participants/{userId}", manageParticipants.HandleRemove).Methods(http.MethodDelete)
	protected.HandleFunc("/users/me/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Asset administration.
	protected.HandleFunc("/assets/{assetId}/bookings", getAssetBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/assets/{assetId}/working-hours", manageWorkingHours.HandleList).Methods(http.MethodGet)
	protected.HandleFunc("/assets/{assetId}/working-hours", manageWorkingHours.HandleUpsert).Methods(http.MethodPut)
	protected.HandleFunc("/assets/{assetId}/blackouts", manageBlackouts.HandleCreate).Methods(http.MethodPost)
	protected.HandleFunc("/blackouts/{blackoutId}", manageBlackouts.HandleGet).Methods(http.MethodGet)
	protected.HandleFunc("/blackouts/{blackoutId}", manageBlackouts.HandleUpdate).Methods(http.MethodPut)
	protected.HandleFunc("/config", updateGlobalConfig.Handle).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
