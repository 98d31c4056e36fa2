package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ticketBooth/internal/clock"
	"ticketBooth/internal/config"
	"ticketBooth/internal/http-server/handlers/event/createEvent"
	"ticketBooth/internal/http-server/handlers/event/deleteEvent"
	"ticketBooth/internal/http-server/handlers/event/getAllEvents"
	"ticketBooth/internal/http-server/handlers/event/getEvent"
	"ticketBooth/internal/http-server/handlers/event/updateEvent"
	"ticketBooth/internal/http-server/handlers/health"
	"ticketBooth/internal/http-server/handlers/ticket/createTicket"
	"ticketBooth/internal/http-server/handlers/ticket/getTickets"
	"ticketBooth/internal/http-server/handlers/ticket/useTicket"
	"ticketBooth/internal/http-server/middleware/mwlogger"
	"ticketBooth/internal/lib/logger/handlers/slogpretty"
	"ticketBooth/internal/lib/logger/sl"
	"ticketBooth/internal/service/events"
	"ticketBooth/internal/service/tickets"
	"ticketBooth/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting ticket booth", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	eventService := events.New(storage)
	ticketService := tickets.New(storage, clock.NewSystem())

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Get("/health", health.New(log))

	router.Get("/events", getAllEvents.New(log, eventService))
	router.Get("/events/{id}", getEvent.New(log, eventService))
	router.Post("/events", createEvent.New(log, eventService))
	router.Put("/events/{id}", updateEvent.New(log, eventService))
	router.Delete("/events/{id}", deleteEvent.New(log, eventService))

	router.Get("/tickets/{eventId}", getTickets.New(log, ticketService))
	router.Post("/tickets", createTicket.New(log, ticketService))
	router.Put("/tickets/use/{id}", useTicket.New(log, ticketService))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err = srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = storage.Close(); err != nil {
		log.Error("failed to close postgres connection", sl.Err(err))
	}

	log.Info("postgres connection closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
