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

	cancelBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/confirm_booking"
	createCourtHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/create_court"
	createSlotHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/create_slot"
	deleteSlotHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/delete_slot"
	generateSlotsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/generate_slots"
	getAvailableSlotsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_booking"
	getFacilityBookingsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_facility_bookings"
	getUserBookingsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/get_user_bookings"
	initiateBookingHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/initiate_booking"
	listCourtsHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/list_courts"
	selectWindowHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/select_window"
	updateCourtHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/update_court"
	updateSlotHandler "github.com/m04kA/SMC-CourtBookingService/internal/api/handlers/update_slot"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtBookingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	timeslotRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/timeslot"
	paymentsClient "github.com/m04kA/SMC-CourtBookingService/internal/integrations/payments"
	venueAuthClient "github.com/m04kA/SMC-CourtBookingService/internal/integrations/venueauth"
	bookingsService "github.com/m04kA/SMC-CourtBookingService/internal/service/bookings"
	courtsService "github.com/m04kA/SMC-CourtBookingService/internal/service/courts"
	slotsService "github.com/m04kA/SMC-CourtBookingService/internal/service/slots"
	confirmBookingUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/confirm_booking"
	generateSlotsUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/generate_slots"
	getAvailableSlotsUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/get_available_slots"
	initiateBookingUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/initiate_booking"
	selectWindowUC "github.com/m04kA/SMC-CourtBookingService/internal/usecase/select_window"
	"github.com/m04kA/SMC-CourtBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
	"github.com/m04kA/SMC-CourtBookingService/pkg/metrics"
	"github.com/m04kA/SMC-CourtBookingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CourtBookingService/pkg/txmanager"
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

	log.Info("Starting SMC-CourtBookingService...")
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

	// Инициализируем интеграционных клиентов
	venueAuth := venueAuthClient.NewClient(
		cfg.VenueAuth.URL,
		time.Duration(cfg.VenueAuth.Timeout)*time.Second,
		log,
	)
	payments := paymentsClient.NewClient(
		cfg.Payments.URL,
		cfg.Payments.KeyID,
		cfg.Payments.KeySecret,
		time.Duration(cfg.Payments.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (VenueAuth=%s timeout=%ds, Payments=%s timeout=%ds)",
		cfg.VenueAuth.URL, cfg.VenueAuth.Timeout, cfg.Payments.URL, cfg.Payments.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		courtRepository   *courtRepo.Repository
		slotRepository    *timeslotRepo.Repository
		bookingRepository *bookingRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		courtRepository = courtRepo.NewRepository(wrappedDB)
		slotRepository = timeslotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		courtRepository = courtRepo.NewRepository(db)
		slotRepository = timeslotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		courtRepository,
		venueAuth,
		log,
	)
	slotSvc := slotsService.NewService(
		slotRepository,
		courtRepository,
		bookingRepository,
		venueAuth,
		txMgr,
		log,
	)
	courtSvc := courtsService.NewService(
		courtRepository,
		venueAuth,
		log,
	)

	// Инициализируем use cases
	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		courtRepository,
		slotRepository,
		venueAuth,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		courtRepository,
		slotRepository,
		bookingRepository,
		log,
	)
	selectWindowUseCase := selectWindowUC.NewUseCase(
		courtRepository,
		slotRepository,
		bookingRepository,
		venueAuth,
		log,
	)
	initiateBookingUseCase := initiateBookingUC.NewUseCase(
		selectWindowUseCase,
		payments,
		cfg.Payments.Currency,
		log,
	)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		payments,
		txMgr,
		log,
	)

	// Инициализируем handlers
	generateSlots := generateSlotsHandler.NewHandler(generateSlotsUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	selectWindow := selectWindowHandler.NewHandler(selectWindowUseCase, log)
	initiateBooking := initiateBookingHandler.NewHandler(initiateBookingUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getFacilityBookings := getFacilityBookingsHandler.NewHandler(bookingSvc, log)
	createSlot := createSlotHandler.NewHandler(slotSvc, log)
	updateSlot := updateSlotHandler.NewHandler(slotSvc, log)
	deleteSlot := deleteSlotHandler.NewHandler(slotSvc, log)
	createCourt := createCourtHandler.NewHandler(courtSvc, log)
	updateCourt := updateCourtHandler.NewHandler(courtSvc, log)
	listCourts := listCourtsHandler.NewHandler(courtSvc, log)

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

	// Слоты корта на день с доступностью
	api.HandleFunc("/courts/{courtId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Подбор последовательного окна на площадке
	api.HandleFunc("/facilities/{facilityId}/window", selectWindow.Handle).Methods(http.MethodGet)

	// Список кортов площадки
	api.HandleFunc("/facilities/{facilityId}/courts", listCourts.Handle).Methods(http.MethodGet)

	// Callback платёжного шлюза (защищён HMAC подписью, а не заголовком)
	api.HandleFunc("/bookings/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Инициация бронирования: подбор окна + создание платёжного заказа
	protected.HandleFunc("/bookings/initiate", initiateBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// --- Управление площадкой (для менеджеров) ---
	// Список бронирований площадки
	protected.HandleFunc("/facilities/{facilityId}/bookings", getFacilityBookings.Handle).Methods(http.MethodGet)

	// Корты
	protected.HandleFunc("/facilities/{facilityId}/courts", createCourt.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/courts/{courtId}", updateCourt.Handle).Methods(http.MethodPut)

	// Слоты
	protected.HandleFunc("/courts/{courtId}/slots/generate", generateSlots.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/courts/{courtId}/slots", createSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/slots/{slotId}", updateSlot.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/slots/{slotId}", deleteSlot.Handle).Methods(http.MethodDelete)

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
