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

	"meetease/internal/booking"
	"meetease/internal/clock"
	"meetease/internal/config"
	"meetease/internal/http-server/handlers/booking/createIntent"
	"meetease/internal/http-server/handlers/booking/finalizeBooking"
	"meetease/internal/http-server/handlers/booking/myBookings"
	"meetease/internal/http-server/handlers/slot/createSlot"
	"meetease/internal/http-server/handlers/slot/deleteSlot"
	"meetease/internal/http-server/handlers/slot/getSlots"
	"meetease/internal/http-server/handlers/updates/stream"
	"meetease/internal/http-server/middleware/mwauth"
	"meetease/internal/http-server/middleware/mwlogger"
	"meetease/internal/http-server/middleware/mwratelimit"
	"meetease/internal/identity"
	"meetease/internal/lib/logger/handlers/slogpretty"
	"meetease/internal/lib/logger/sl"
	"meetease/internal/locker"
	"meetease/internal/notifier"
	"meetease/internal/payment"
	"meetease/internal/slots"
	"meetease/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting meetease", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	storage, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	hubOpts := []notifier.Option{}

	var redisChannel *notifier.RedisChannel
	if cfg.Redis.Enabled {
		redisChannel = notifier.NewRedisChannel(cfg.Redis.Address, cfg.Redis.DB)
		hubOpts = append(hubOpts, notifier.WithRemote(redisChannel))
		log.Info("redis fan-out enabled", slog.String("address", cfg.Redis.Address))
	}

	hub := notifier.New(log, cfg.Notifier.BufferSize, hubOpts...)

	gateway, err := payment.NewOmiseGateway(cfg.Payment.OmisePublicKey, cfg.Payment.OmiseSecretKey)
	if err != nil {
		log.Error("failed to init payment gateway", sl.Err(err))
		os.Exit(1)
	}

	coordinator := payment.NewCoordinator(
		log,
		gateway,
		storage,
		cfg.Payment.Amount,
		cfg.Payment.Currency,
		cfg.Payment.GatewayTimeout,
	)

	clk := clock.NewSystem()
	slotLocker := locker.New()

	finalizerOpts := []booking.Option{}
	if cfg.Booking.VerifyPayments {
		finalizerOpts = append(finalizerOpts, booking.WithPaymentVerifier(coordinator))
		log.Info("payment verification enabled")
	}

	finalizer := booking.New(log, storage, slotLocker, hub, clk, finalizerOpts...)
	slotService := slots.New(log, storage, slotLocker, hub, clk)

	provider := identity.NewProvider(cfg.Auth.JWTSecret)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(mwratelimit.PerClient(cfg.RateLimit.RPS, cfg.RateLimit.Burst))

	router.Get("/slots", getSlots.New(log, slotService))
	router.Get("/updates", stream.New(log, hub))

	router.Group(func(r chi.Router) {
		r.Use(mwauth.New(log, provider))

		r.With(mwauth.RequireHost).Post("/slots", createSlot.New(log, slotService))
		r.Delete("/slots/{id}", deleteSlot.New(log, slotService))

		r.Post("/bookings/payment-intent", createIntent.New(log, coordinator))
		r.Post("/bookings", finalizeBooking.New(log, finalizer))
		r.Get("/bookings/my", myBookings.New(log, finalizer))
	})

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if redisChannel != nil {
		if err = redisChannel.Close(); err != nil {
			log.Error("failed to close redis connection", sl.Err(err))
		}
	}

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
	default:
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
