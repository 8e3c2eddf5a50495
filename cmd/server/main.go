package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	authhandler "steam-intake/internal/auth/handler"
	authservice "steam-intake/internal/auth/service"
	authstore "steam-intake/internal/auth/store"
	"steam-intake/internal/export"
	"steam-intake/internal/geocode"
	"steam-intake/internal/platform/config"
	"steam-intake/internal/platform/httpserver"
	"steam-intake/internal/platform/logger"
	platformredis "steam-intake/internal/platform/redis"
	"steam-intake/internal/registration"
	httptransport "steam-intake/internal/transport/http"
	wizardhandler "steam-intake/internal/wizard/handler"
	"steam-intake/internal/wizard/metrics"
	wizardservice "steam-intake/internal/wizard/service"
	wizardstore "steam-intake/internal/wizard/store"
)

// main wires dependencies and keeps the server lifecycle small. Business
// logic lives in the internal service packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	var sessions authstore.SessionStore = authstore.NewMemorySessions()
	redisClient, err := platformredis.New(cfg.RedisURL)
	if err != nil {
		log.Error("redis unavailable", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		sessions = authstore.NewRedisSessions(redisClient.Client)
		log.Info("using redis session store")
	}

	auth, err := authservice.New(authstore.NewMemoryUsers(), sessions, cfg.JWTSigningKey,
		authservice.WithLogger(log))
	if err != nil {
		log.Error("failed to build auth service", "error", err)
		os.Exit(1)
	}

	wizard, err := wizardservice.New(
		wizardstore.NewMemory(),
		geocode.New(cfg.GeocodeURL, cfg.OutboundTimeout),
		registration.New(cfg.RegistrationURL, cfg.OutboundTimeout),
		export.NewWriter(cfg.ExportDir),
		wizardservice.WithLogger(log),
		wizardservice.WithMetrics(metrics.New()),
	)
	if err != nil {
		log.Error("failed to build wizard service", "error", err)
		os.Exit(1)
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Auth:      authhandler.New(auth, log),
		Wizard:    wizardhandler.New(wizard, auth, log),
		Validator: auth,
		Logger:    log,
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting steam-intake", "addr", cfg.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
