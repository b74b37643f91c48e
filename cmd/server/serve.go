package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"polar-backend/internal/archive"
	"polar-backend/internal/auth"
	"polar-backend/internal/cache"
	"polar-backend/internal/config"
	"polar-backend/internal/events"
	"polar-backend/internal/handlers"
	"polar-backend/internal/health"
	h "polar-backend/internal/http"
	"polar-backend/internal/logger"
	"polar-backend/internal/metrics"
	"polar-backend/internal/middleware"
	"polar-backend/internal/monitoring"
	"polar-backend/internal/services"
	"polar-backend/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Live events hub doubles as the theme applier
	hub := events.NewHub(log)
	go hub.Run(ctx)

	st := store.New(store.DefaultSeed(), store.WithTheme(hub), store.WithLogger(log))
	defer st.Subscribe(hub.OnStoreEvent)()
	defer metrics.ObserveStore(st)()

	// Redis report cache (optional)
	if err := cache.Init(cfg); err != nil {
		log.Warn("[Cache] redis unavailable, caching disabled", zap.Error(err))
	}
	defer cache.Close()
	defer cache.InvalidateOnChange(st)()

	jwtManager := auth.NewJWTManager(cfg)
	query := services.NewQueryService(st)
	reports := services.NewReportService(query, cfg.Report.FontPath, log)

	monitor := monitoring.NewMonitor(hub, log)
	if cfg.Monitoring.Enabled {
		go monitor.Run(ctx)
	}

	if cfg.Archive.Enabled {
		client, err := archive.NewS3Client(ctx, cfg)
		if err != nil {
			return fmt.Errorf("archive client: %w", err)
		}
		archiver := archive.NewArchiver(client, cfg.Archive.Bucket, reports, log)
		scheduler, err := archiver.Schedule(ctx, cfg.Archive.Schedule)
		if err != nil {
			return err
		}
		defer scheduler.Stop()
	}

	router := h.NewRouter(
		cfg,
		log,
		handlers.NewAuthHandler(st, jwtManager, cfg.LoginDelay(), log),
		handlers.NewSessionHandler(st),
		handlers.NewUserHandler(query),
		handlers.NewShipmentHandler(query),
		handlers.NewFlightHandler(query),
		handlers.NewEquipmentHandler(query),
		handlers.NewReportHandler(reports, query, log),
		handlers.NewHealthHandler(health.NewHealthChecker(st), monitor),
		handlers.NewMonitoringHandler(monitor),
		hub.ServeWS,
		middleware.NewAuthMiddleware(jwtManager, st),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("[Server] listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("[Server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
