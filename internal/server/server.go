package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codex-portfolio/internal/auth"
	"codex-portfolio/internal/cache"
	"codex-portfolio/internal/config"
	"codex-portfolio/internal/jobs"
	"codex-portfolio/internal/metrics"
	"codex-portfolio/internal/middlewares"
	"codex-portfolio/internal/realtime"
	"codex-portfolio/internal/security"
	"codex-portfolio/internal/settings"
	"codex-portfolio/internal/storage"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/extra/redisprometheus/v9"
)

type Server struct {
	cfg         *config.Config
	logger      *slog.Logger
	appCtx      *middlewares.AppContext
	httpServer  *http.Server
	debugServer *http.Server
	hub         *realtime.Hub
	bridge      *settings.Bridge
	cache       cache.Provider
	storage     storage.Provider
	jobManager  *jobs.JobManager
	cancel      context.CancelFunc
}

func New(cfg *config.Config) (*Server, error) {
	logger := setupLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())

	sessionManager, err := auth.NewSessionManager(logger, cfg)
	if err != nil {
		cancel()
		return nil, err
	}

	authProvider := auth.NewBlackBoxProvider(cfg.AuthHub, logger)

	cacheProvider, err := cache.NewProvider(cfg, logger)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to set up cache provider: %w", err)
	}

	if redisCache, ok := cacheProvider.(*cache.RedisCache); ok {
		if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
			collector := redisprometheus.NewCollector(metrics.Namespace, "cache", redisCache.Client())
			if err := prometheus.Register(collector); err != nil {
				logger.Debug("failed to register redis cache collector: already registered", "error", err)
			}
		}
	}

	storageProvider, err := storage.NewDatabaseProvider(ctx, cfg)
	if err != nil {
		logger.Error("failed to initialize database provider", "error", err)
		cancel()
		return nil, err
	}

	logger.Debug("Running database migrations")
	if err := storageProvider.RunMigrations(ctx); err != nil {
		logger.Error("failed to run database migrations", "error", err)
		cancel()
		return nil, err
	}
	logger.Debug("Database Migrations Completed")

	hub := realtime.NewHub(logger)

	bridge := settings.NewBridge(logger, cfg.Settings, storageProvider, cacheProvider, hub)

	var feed settings.ChangeFeed = settings.NoopFeed{}
	if cfg.Settings.FeedURL != "" {
		feed = settings.NewWebsocketFeed(logger, cfg.Settings.FeedURL, bridge)
	}
	bridge.SetFeed(feed)

	bridge.Start(ctx)

	recorder := security.NewRecorder(logger, cfg.Security, storageProvider, cacheProvider)

	appCtx := middlewares.NewAppContext(ctx, cfg, logger, cacheProvider, sessionManager, authProvider, storageProvider)
	appCtx.Settings = bridge
	appCtx.Hub = hub
	appCtx.Security = recorder

	jobManager := jobs.NewJobManager(logger)
	jobManager.Register(NewSettingsBridgeJob(bridge, logger, time.Duration(cfg.Settings.PollInterval)))
	jobManager.Register(NewChangeFeedJob(feed, logger))
	jobManager.Register(NewAuditPruneJob(storageProvider, logger, cfg.Security.RetentionDays))

	router := setupRouter(appCtx, hub)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	var debugServer *http.Server
	if cfg.Server.Debug != nil && cfg.Server.Debug.Enabled {
		debugRouter := setupDebugRouter()
		debugServer = &http.Server{
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Debug.Host, cfg.Server.Debug.Port),
			Handler: debugRouter,
		}
	}

	return &Server{
		cfg:         cfg,
		logger:      logger,
		appCtx:      appCtx,
		httpServer:  server,
		debugServer: debugServer,
		hub:         hub,
		bridge:      bridge,
		cache:       cacheProvider,
		storage:     storageProvider,
		jobManager:  jobManager,
		cancel:      cancel,
	}, nil
}

func (s *Server) Start() error {
	go s.hub.Run()

	s.jobManager.Start(s.appCtx)

	go func() {
		s.logger.Info("Server Started", "port", s.cfg.Server.Port)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server failed to start", "error", err)
			s.cancel()
		}
	}()

	if s.debugServer != nil {
		go func() {
			s.logger.Info("Metrics server starting", "address", s.debugServer.Addr)
			if err := s.debugServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Error("Metrics server failed to start", "error", err)
				s.cancel()
			}
		}()
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		s.logger.Info("Shutdown signal received")
	case <-s.appCtx.Done():
		s.logger.Info("Context canceled")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	s.logger.Info("Shutting Down Server")

	s.jobManager.Shutdown(shutdownCtx)
	s.hub.Shutdown()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	if s.debugServer != nil {
		if err := s.debugServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Debug server forced to shutdown", "error", err)
		}
	}

	if err := s.storage.Close(); err != nil {
		s.logger.Error("failed to close storage", "error", err)
	}

	if err := s.cache.Close(); err != nil {
		s.logger.Error("failed to close cache", "error", err)
	}

	s.logger.Info("Server Exited")
	return nil
}
