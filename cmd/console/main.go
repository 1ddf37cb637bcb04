package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"horplus-console/internal/auth"
	"horplus-console/internal/cache"
	"horplus-console/internal/config"
	"horplus-console/internal/handlers"
	"horplus-console/internal/health"
	"horplus-console/internal/middleware"
	"horplus-console/internal/monitoring"
	"horplus-console/internal/router"
	"horplus-console/internal/services"
	"horplus-console/internal/upstream"
	"horplus-console/internal/web"
)

func main() {
	cfg := config.Load()

	// Redis backs the elevation rate limiter; the console runs without it
	if err := cache.Init(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		log.Printf("[Main] Redis unavailable, elevation attempts not rate-limited: %v", err)
	} else if cfg.Redis.Addr != "" {
		log.Printf("[Main] Redis connected at %s", cfg.Redis.Addr)
	}
	defer cache.Close()

	api := upstream.New(cfg.Upstream.BaseURL, time.Duration(cfg.Upstream.TimeoutSeconds)*time.Second)
	log.Printf("[Main] Upstream API: %s", api.BaseURL())

	jwtManager := auth.NewJWTManager(cfg)
	sessions := web.NewSessionManager(cfg.Session.Secret)
	renderer := web.NewRenderer()
	authMW := middleware.NewAuthMiddleware(jwtManager, sessions)

	checker := health.NewChecker(api)
	broadcaster := monitoring.NewBroadcaster(checker, 5*time.Second)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go broadcaster.Run(ctx)

	r := router.New(router.Deps{
		Auth:          handlers.NewAuthHandler(api, jwtManager, sessions, renderer, cfg),
		Home:          handlers.NewHomeHandler(api, sessions, renderer),
		Users:         handlers.NewUsersHandler(api, sessions, renderer),
		Rooms:         handlers.NewRoomsHandler(api, sessions, renderer),
		Repairs:       handlers.NewRepairsHandler(api, sessions, renderer),
		Announcements: handlers.NewAnnouncementsHandler(api, sessions, renderer),
		Bills:         handlers.NewBillsHandler(api, sessions, renderer, services.NewReceiptService()),
		Health:        handlers.NewHealthHandler(checker),
		Ops:           handlers.NewOpsHandler(sessions, renderer),
		Broadcaster:   broadcaster,
		AuthMW:        authMW,
	})

	handler := middleware.NewCORS(cfg)(r)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("[Main] Console listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[Main] Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("[Main] Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[Main] Shutdown error: %v", err)
	}
}
