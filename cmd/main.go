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

	createBookingHandler "github.com/m04kA/TSM-StudioService/internal/api/handlers/create_booking"
	createPaymentLinkHandler "github.com/m04kA/TSM-StudioService/internal/api/handlers/create_payment_link"
	getArtistBookingsHandler "github.com/m04kA/TSM-StudioService/internal/api/handlers/get_artist_bookings"
	getAvailableSlotsHandler "github.com/m04kA/TSM-StudioService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/TSM-StudioService/internal/api/handlers/get_booking"
	getNotificationsHandler "github.com/m04kA/TSM-StudioService/internal/api/handlers/get_notifications"
	getWorkingHoursHandler "github.com/m04kA/TSM-StudioService/internal/api/handlers/get_working_hours"
	markNotificationReadHandler "github.com/m04kA/TSM-StudioService/internal/api/handlers/mark_notification_read"
	rescheduleBookingHandler "github.com/m04kA/TSM-StudioService/internal/api/handlers/reschedule_booking"
	stripeWebhookHandler "github.com/m04kA/TSM-StudioService/internal/api/handlers/stripe_webhook"
	updateBookingStatusHandler "github.com/m04kA/TSM-StudioService/internal/api/handlers/update_booking_status"
	updateProjectStageHandler "github.com/m04kA/TSM-StudioService/internal/api/handlers/update_project_stage"
	updateWorkingHoursHandler "github.com/m04kA/TSM-StudioService/internal/api/handlers/update_working_hours"
	"github.com/m04kA/TSM-StudioService/internal/api/middleware"
	"github.com/m04kA/TSM-StudioService/internal/config"
	"github.com/m04kA/TSM-StudioService/internal/events"
	bookingRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/catalog"
	notificationRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/notification"
	projectRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/project"
	workingHoursRepo "github.com/m04kA/TSM-StudioService/internal/infra/storage/workinghours"
	paymentsClient "github.com/m04kA/TSM-StudioService/internal/integrations/payments"
	"github.com/m04kA/TSM-StudioService/internal/jobs"
	bookingsService "github.com/m04kA/TSM-StudioService/internal/service/bookings"
	notificationsService "github.com/m04kA/TSM-StudioService/internal/service/notifications"
	projectsService "github.com/m04kA/TSM-StudioService/internal/service/projects"
	scheduleService "github.com/m04kA/TSM-StudioService/internal/service/schedule"
	confirmDepositUC "github.com/m04kA/TSM-StudioService/internal/usecase/confirm_deposit"
	createBookingUC "github.com/m04kA/TSM-StudioService/internal/usecase/create_booking"
	createPaymentLinkUC "github.com/m04kA/TSM-StudioService/internal/usecase/create_payment_link"
	getAvailableSlotsUC "github.com/m04kA/TSM-StudioService/internal/usecase/get_available_slots"
	rescheduleBookingUC "github.com/m04kA/TSM-StudioService/internal/usecase/reschedule_booking"
	"github.com/m04kA/TSM-StudioService/pkg/dbmetrics"
	"github.com/m04kA/TSM-StudioService/pkg/logger"
	"github.com/m04kA/TSM-StudioService/pkg/metrics"
	"github.com/m04kA/TSM-StudioService/pkg/simpletxmanager"
	"github.com/m04kA/TSM-StudioService/pkg/txmanager"
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

	log.Info("Starting TSM-StudioService...")
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

	// Инициализируем платежного клиента
	payments := paymentsClient.NewClient(
		cfg.Stripe.SecretKey,
		cfg.Stripe.WebhookSecret,
		cfg.Stripe.Currency,
		cfg.Stripe.SuccessURL,
		cfg.Stripe.CancelURL,
		log,
	)
	log.Info("Payments client initialized (currency=%s)", cfg.Stripe.Currency)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		projectRepository      *projectRepo.Repository
		catalogRepository      *catalogRepo.Repository
		workingHoursRepository *workingHoursRepo.Repository
		notificationRepository *notificationRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		projectRepository = projectRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		workingHoursRepository = workingHoursRepo.NewRepository(wrappedDB)
		notificationRepository = notificationRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		projectRepository = projectRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		workingHoursRepository = workingHoursRepo.NewRepository(db)
		notificationRepository = notificationRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем диспетчер событий с писателем уведомлений
	notificationWriter := notificationsService.NewWriter(notificationRepository, log)
	dispatcher := events.NewDispatcher(log, notificationWriter)
	log.Info("Event dispatcher started")

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		projectRepository,
		log,
	)
	projectSvc := projectsService.NewService(projectRepository, log)
	notificationSvc := notificationsService.NewService(notificationRepository, log)
	scheduleSvc := scheduleService.NewService(
		workingHoursRepository,
		txMgr,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		projectRepository,
		catalogRepository,
		txMgr,
		dispatcher,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		workingHoursRepository,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		log,
	)
	confirmDepositUseCase := confirmDepositUC.NewUseCase(
		bookingRepository,
		projectRepository,
		dispatcher,
		log,
	)
	createPaymentLinkUseCase := createPaymentLinkUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		payments,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getArtistBookings := getArtistBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	createPaymentLink := createPaymentLinkHandler.NewHandler(createPaymentLinkUseCase, log)
	stripeWebhook := stripeWebhookHandler.NewHandler(payments, confirmDepositUseCase, log)
	updateProjectStage := updateProjectStageHandler.NewHandler(projectSvc, log)
	getNotifications := getNotificationsHandler.NewHandler(notificationSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationSvc, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(scheduleSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(scheduleSvc, log)

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

	// Получение доступных слотов мастера
	api.HandleFunc("/artists/{artistId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Вебхук платежного провайдера (подпись проверяется в обработчике)
	api.HandleFunc("/payments/webhook", stripeWebhook.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Artist-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований мастера
	protected.HandleFunc("/bookings", getArtistBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Смена статуса бронирования
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Перенос бронирования
	protected.HandleFunc("/bookings/{bookingId}/reschedule", rescheduleBooking.Handle).Methods(http.MethodPatch)

	// Платежная ссылка на депозит
	protected.HandleFunc("/bookings/{bookingId}/payment-link", createPaymentLink.Handle).Methods(http.MethodPost)

	// --- Проекты ---
	// Смена стадии проекта
	protected.HandleFunc("/projects/{projectId}/stage", updateProjectStage.Handle).Methods(http.MethodPatch)

	// --- Уведомления ---
	protected.HandleFunc("/notifications", getNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{notificationId}/read", markNotificationRead.Handle).Methods(http.MethodPatch)

	// --- Рабочие часы ---
	protected.HandleFunc("/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/working-hours", updateWorkingHours.Handle).Methods(http.MethodPut)

	// Запускаем фоновую отмену просроченных депозитов (если включена)
	var sweeper *jobs.DepositSweeper
	if cfg.Sweeper.Enabled {
		sweeper = jobs.NewDepositSweeper(
			bookingRepository,
			time.Duration(cfg.Sweeper.DepositTTLHours)*time.Hour,
			log,
		)
		if err := sweeper.Start(cfg.Sweeper.Schedule); err != nil {
			log.Fatal("Failed to start deposit sweeper: %v", err)
		}
		log.Info("Deposit sweeper started (schedule=%s, ttl=%dh)",
			cfg.Sweeper.Schedule, cfg.Sweeper.DepositTTLHours)
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

	// Останавливаем фоновые компоненты
	if sweeper != nil {
		sweeper.Stop()
		log.Info("Deposit sweeper stopped")
	}
	dispatcher.Close()
	log.Info("Event dispatcher stopped")

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
