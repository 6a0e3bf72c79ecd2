package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"luiza/internal/db"
	"luiza/internal/domain/auth"
	"luiza/internal/domain/evaluation"
	"luiza/internal/domain/feedback"
	"luiza/internal/domain/indicators"
	"luiza/internal/domain/movement"
	"luiza/internal/domain/org"
	"luiza/internal/domain/reports"
	"luiza/internal/platform/config"
	"luiza/internal/platform/metrics"
	authhandler "luiza/internal/transport/http/handlers/auth"
	evaluationhandler "luiza/internal/transport/http/handlers/evaluation"
	feedbackhandler "luiza/internal/transport/http/handlers/feedback"
	indicatorshandler "luiza/internal/transport/http/handlers/indicators"
	movementhandler "luiza/internal/transport/http/handlers/movement"
	orghandler "luiza/internal/transport/http/handlers/org"
	reportshandler "luiza/internal/transport/http/handlers/reports"
	"luiza/internal/transport/http/middleware"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}

	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	collector := metrics.New()

	authService := auth.NewService(auth.NewStore(pool), cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	orgService := org.NewService(org.NewStore(pool))
	evaluationStore := evaluation.NewStore(pool)
	evaluationService := evaluation.NewService(evaluationStore)
	feedbackService := feedback.NewService(feedback.NewStore(pool))
	movementService := movement.NewService(movement.NewStore(pool), orgService)
	indicatorService := indicators.NewService(indicators.NewStore(pool),
		cfg.DashboardFetchTimeout, cfg.IndicatorWindowMonths, cfg.AdmissionCostPerHire)
	reportService := reports.NewService(evaluationStore, orgService, indicatorService)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(middleware.SensitiveMutationRateLimit(cfg.RateLimitPerMinute, time.Minute))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			writeMetrics(w, collector)
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authhandler.NewHandler(authService).RegisterRoutes(r)
		orghandler.NewHandler(orgService).RegisterRoutes(r)
		evaluationhandler.NewHandler(evaluationService).RegisterRoutes(r)
		feedbackhandler.NewHandler(feedbackService).RegisterRoutes(r)
		movementhandler.NewHandler(movementService).RegisterRoutes(r)
		indicatorshandler.NewHandler(indicatorService).RegisterRoutes(r)
		reportshandler.NewHandler(reportService).RegisterRoutes(r)
	})

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	log.Printf("luiza server listening on %s", cfg.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server failed: %v", err)
	}
}

func writeMetrics(w http.ResponseWriter, collector *metrics.Collector) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(collector.Snapshot()); err != nil {
		log.Printf("metrics encode failed: %v", err)
	}
}
