package main

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"time"

	_ "github.com/lib/pq"

	"zafaevents/config"
	"zafaevents/internal/adapters/email"
	httpdelivery "zafaevents/internal/delivery/http"
	"zafaevents/internal/delivery/http/controllers"
	"zafaevents/internal/delivery/http/middleware"
	"zafaevents/internal/repository/postgres"
	"zafaevents/internal/services"
)

const serviceTimeout = 10 * time.Second

// @title Zafa Events API
// @version 1.0
// @description Event management and invoicing API for a catering business.
// @BasePath /
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	if err := postgres.RunMigrations(cfg.DBUrl); err != nil {
		logger.Error("failed to run migrations", "err", err)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mailer.Provider,
		FromAddress: cfg.Mailer.FromAddress,
		FromName:    cfg.Mailer.FromName,
		SES: email.SESConfig{
			Region:             cfg.Mailer.SESRegion,
			AccessKeyID:        cfg.Mailer.SESAccessKeyID,
			SecretAccessKey:    cfg.Mailer.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Mailer.InsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	invoiceRepo := postgres.NewInvoiceRepository(db)

	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	eventService := services.NewEventService(eventRepo, serviceTimeout)
	invoiceService := services.NewInvoiceService(invoiceRepo, eventRepo, emailService, logger, serviceTimeout)

	eventController := controllers.NewEventController(logger, eventService)
	invoiceController := controllers.NewInvoiceController(logger, invoiceService)
	calendarController := controllers.NewCalendarController(logger, eventService)

	mux := httpdelivery.NewRouter(eventController, invoiceController, calendarController)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
