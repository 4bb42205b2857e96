package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/medcare-africa/medcare-api/config"
	v1 "github.com/medcare-africa/medcare-api/internal/handler/v1"
	"github.com/medcare-africa/medcare-api/internal/middleware"
	"github.com/medcare-africa/medcare-api/internal/service"
	"github.com/medcare-africa/medcare-api/internal/store/memory"
	"github.com/medcare-africa/medcare-api/pkg/auth"
	"github.com/medcare-africa/medcare-api/pkg/logger"
	"github.com/medcare-africa/medcare-api/pkg/metrics"
	"github.com/medcare-africa/medcare-api/pkg/tracer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	tp, err := tracer.Init(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracer: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := tp.Shutdown(ctx); err != nil {
			log.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	m := metrics.NewCollector("medcare", prometheus.DefaultRegisterer)

	store := memory.New()
	store.Seed()

	auditSvc := service.NewAuditService(service.NewZapSink(log.Named("audit")), log)
	defer auditSvc.Shutdown()

	issuer := auth.NewTokenIssuer(cfg.Auth.TokenSecret)
	authSvc, err := service.NewAuthService(store.Users(), issuer, auditSvc, m, log)
	if err != nil {
		return fmt.Errorf("initializing auth service: %w", err)
	}

	apptSvc := service.NewAppointmentService(store.Appointments(), store.Users(), store.Notifications(), auditSvc, m, log)
	prescSvc := service.NewPrescriptionService(store.Prescriptions(), store.Users(), auditSvc, m, log)
	userSvc := service.NewUserService(store.Users(), auditSvc, log)
	statsSvc := service.NewStatsService(store.Users(), store.Appointments(), store.Prescriptions(), log)
	notifSvc := service.NewNotificationService(store.Notifications(), auditSvc, log)

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.Recovery(log, cfg.App.IsProduction()),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.Metrics(m),
		middleware.Tracing(cfg.Tracing.ServiceName),
		middleware.CORS(cfg.CORS),
	)

	v1.RegisterRoutes(r, v1.Handlers{
		System:        v1.NewSystemHandler(cfg.App.Version),
		Auth:          v1.NewAuthHandler(authSvc, log),
		Appointments:  v1.NewAppointmentHandler(apptSvc, log),
		Prescriptions: v1.NewPrescriptionHandler(prescSvc, log),
		Users:         v1.NewUserHandler(userSvc, log),
		Dashboard:     v1.NewDashboardHandler(statsSvc, log),
		Notifications: v1.NewNotificationHandler(notifSvc, log),
	})
	r.GET("/metrics", gin.WrapH(metrics.MetricsHandler()))

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting",
			zap.String("address", srv.Addr),
			zap.String("environment", cfg.App.Environment),
			zap.String("version", cfg.App.Version),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Info("server stopped")
	return nil
}
