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

	addChatMessageHandler "github.com/igextreme/agenda-service/internal/api/handlers/add_chat_message"
	addClientFileHandler "github.com/igextreme/agenda-service/internal/api/handlers/add_client_file"
	bookingSessionHandler "github.com/igextreme/agenda-service/internal/api/handlers/booking_session"
	cancelAppointmentHandler "github.com/igextreme/agenda-service/internal/api/handlers/cancel_appointment"
	createBookingHandler "github.com/igextreme/agenda-service/internal/api/handlers/create_booking"
	createProfessionalHandler "github.com/igextreme/agenda-service/internal/api/handlers/create_professional"
	deleteProfessionalHandler "github.com/igextreme/agenda-service/internal/api/handlers/delete_professional"
	getAvailableSlotsHandler "github.com/igextreme/agenda-service/internal/api/handlers/get_available_slots"
	getCalendarHandler "github.com/igextreme/agenda-service/internal/api/handlers/get_calendar"
	getClientHandler "github.com/igextreme/agenda-service/internal/api/handlers/get_client"
	getScheduleHandler "github.com/igextreme/agenda-service/internal/api/handlers/get_schedule"
	getSettingsHandler "github.com/igextreme/agenda-service/internal/api/handlers/get_settings"
	listClientsHandler "github.com/igextreme/agenda-service/internal/api/handlers/list_clients"
	listProfessionalsHandler "github.com/igextreme/agenda-service/internal/api/handlers/list_professionals"
	loginHandler "github.com/igextreme/agenda-service/internal/api/handlers/login"
	sendReminderHandler "github.com/igextreme/agenda-service/internal/api/handlers/send_reminder"
	testWebhookHandler "github.com/igextreme/agenda-service/internal/api/handlers/test_webhook"
	updateProfessionalHandler "github.com/igextreme/agenda-service/internal/api/handlers/update_professional"
	updateScheduleHandler "github.com/igextreme/agenda-service/internal/api/handlers/update_schedule"
	updateSettingsHandler "github.com/igextreme/agenda-service/internal/api/handlers/update_settings"
	"github.com/igextreme/agenda-service/internal/api/middleware"
	"github.com/igextreme/agenda-service/internal/booking"
	"github.com/igextreme/agenda-service/internal/config"
	appointmentsRepo "github.com/igextreme/agenda-service/internal/infra/storage/appointments"
	availabilityRepo "github.com/igextreme/agenda-service/internal/infra/storage/availability"
	chatMessagesRepo "github.com/igextreme/agenda-service/internal/infra/storage/chatmessages"
	clientFilesRepo "github.com/igextreme/agenda-service/internal/infra/storage/clientfiles"
	clientsRepo "github.com/igextreme/agenda-service/internal/infra/storage/clients"
	professionalsRepo "github.com/igextreme/agenda-service/internal/infra/storage/professionals"
	settingsRepo "github.com/igextreme/agenda-service/internal/infra/storage/settings"
	webhookClient "github.com/igextreme/agenda-service/internal/integrations/webhook"
	whatsappClient "github.com/igextreme/agenda-service/internal/integrations/whatsapp"
	"github.com/igextreme/agenda-service/internal/notifications"
	appointmentsService "github.com/igextreme/agenda-service/internal/service/appointments"
	clientsService "github.com/igextreme/agenda-service/internal/service/clients"
	professionalsService "github.com/igextreme/agenda-service/internal/service/professionals"
	scheduleService "github.com/igextreme/agenda-service/internal/service/schedule"
	settingsService "github.com/igextreme/agenda-service/internal/service/settings"
	createBookingUC "github.com/igextreme/agenda-service/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/igextreme/agenda-service/internal/usecase/get_available_slots"
	"github.com/igextreme/agenda-service/pkg/dbmetrics"
	"github.com/igextreme/agenda-service/pkg/logger"
	"github.com/igextreme/agenda-service/pkg/metrics"
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

	log.Info("Starting agenda-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
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

	// Repositories, with or without query metrics.
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	professionalRepository := professionalsRepo.NewRepository(executor)
	clientRepository := clientsRepo.NewRepository(executor)
	availabilityRepository := availabilityRepo.NewRepository(executor)
	appointmentRepository := appointmentsRepo.NewRepository(executor)
	chatMessageRepository := chatMessagesRepo.NewRepository(executor)
	clientFileRepository := clientFilesRepo.NewRepository(executor)
	settingsRepository := settingsRepo.NewRepository(executor)

	// Settings service backs both the admin endpoints and the notification
	// channels; reads fall back to defaults and never fail.
	settingsSvc := settingsService.NewService(settingsRepository, log)

	// Notification channels and the async dispatcher.
	whatsapp := whatsappClient.NewClient(
		time.Duration(cfg.Notifications.SendTimeout)*time.Second,
		cfg.Notifications.RequireHTTPS,
		log,
	)
	webhook := webhookClient.NewClient(
		time.Duration(cfg.Notifications.WebhookTimeout)*time.Second,
		cfg.Notifications.RequireHTTPS,
		log,
	)

	var notifMetrics notifications.MetricsRecorder = noopNotificationMetrics{}
	if cfg.Metrics.Enabled {
		notifMetrics = metricsCollector
	}
	dispatcher := notifications.NewDispatcher(
		whatsapp,
		webhook,
		settingsSvc,
		notifMetrics,
		log,
		cfg.Notifications.QueueSize,
		time.Duration(cfg.Notifications.SendTimeout)*time.Second,
	)
	dispatcher.Start()
	log.Info("Notification dispatcher started (queue=%d)", cfg.Notifications.QueueSize)

	// Services.
	scheduleSvc := scheduleService.NewService(availabilityRepository, log)
	professionalsSvc := professionalsService.NewService(
		professionalRepository,
		availabilityRepository,
		appointmentRepository,
		log,
	)
	clientsSvc := clientsService.NewService(
		clientRepository,
		appointmentRepository,
		chatMessageRepository,
		clientFileRepository,
		log,
	)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		clientRepository,
		professionalRepository,
		dispatcher,
		log,
	)

	// Use cases.
	createBookingUseCase := createBookingUC.NewUseCase(
		clientRepository,
		appointmentRepository,
		professionalRepository,
		dispatcher,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(scheduleSvc, log)

	// Booking sessions.
	sessionStore := booking.NewStore(time.Duration(cfg.Sessions.TTLMinutes) * time.Minute)
	defer sessionStore.Close()

	// Handlers.
	listProfessionals := listProfessionalsHandler.NewHandler(professionalsSvc, log)
	createProfessional := createProfessionalHandler.NewHandler(professionalsSvc, log)
	updateProfessional := updateProfessionalHandler.NewHandler(professionalsSvc, log)
	deleteProfessional := deleteProfessionalHandler.NewHandler(professionalsSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(scheduleSvc, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(scheduleSvc, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	bookingSession := bookingSessionHandler.NewHandler(sessionStore, scheduleSvc, createBookingUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	sendReminder := sendReminderHandler.NewHandler(appointmentsSvc, log)
	listClients := listClientsHandler.NewHandler(clientsSvc, log)
	getClient := getClientHandler.NewHandler(clientsSvc, log)
	addChatMessage := addChatMessageHandler.NewHandler(clientsSvc, log)
	addClientFile := addClientFileHandler.NewHandler(clientsSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	testWebhook := testWebhookHandler.NewHandler(dispatcher, log)
	adminLogin := loginHandler.NewHandler(cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.Token, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (client booking surface)
	// ============================================================

	api.HandleFunc("/professionals", listProfessionals.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{professionalId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{professionalId}/calendar", getCalendar.Handle).Methods(http.MethodGet)

	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	api.HandleFunc("/booking-sessions", bookingSession.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/booking-sessions/{token}", bookingSession.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/booking-sessions/{token}/actions", bookingSession.HandleAction).Methods(http.MethodPost)

	api.HandleFunc("/admin/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (require X-Admin-Token)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	admin.HandleFunc("/professionals", createProfessional.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/professionals/{professionalId}", updateProfessional.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/professionals/{professionalId}", deleteProfessional.Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/professionals/{professionalId}/schedule", getSchedule.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/professionals/{professionalId}/schedule", updateSchedule.Handle).Methods(http.MethodPut)

	admin.HandleFunc("/appointments/{appointmentId}", cancelAppointment.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/appointments/{appointmentId}/reminder", sendReminder.Handle).Methods(http.MethodPost)

	admin.HandleFunc("/clients", listClients.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/clients/{clientId}", getClient.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/clients/{clientId}/messages", addChatMessage.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/clients/{clientId}/files", addClientFile.Handle).Methods(http.MethodPost)

	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/settings/webhook/test", testWebhook.Handle).Methods(http.MethodPost)

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

	// Drain queued notifications before exiting.
	dispatcher.Stop()
	log.Info("Notification dispatcher drained")

	log.Info("Server stopped gracefully")
}

// noopNotificationMetrics is used when metrics are disabled.
type noopNotificationMetrics struct{}

func (noopNotificationMetrics) ObserveNotification(string, error) {}
