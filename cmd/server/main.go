// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	appConfig "github.com/collabx/backend/internal/config"
	dbConfig "github.com/collabx/backend/internal/database/config"
	"github.com/collabx/backend/internal/database/database"
	"github.com/collabx/backend/internal/database/migrate"
	"github.com/collabx/backend/internal/database/pool"
	facultyRouter "github.com/collabx/backend/internal/faculty/router"
	hackathonRouter "github.com/collabx/backend/internal/hackathon/router"
	"github.com/collabx/backend/internal/health"
	joinrequestRouter "github.com/collabx/backend/internal/joinrequest/router"
	"github.com/collabx/backend/internal/middleware"
	projectRouter "github.com/collabx/backend/internal/project/router"
	rosterRouter "github.com/collabx/backend/internal/roster/router"
	statisticsRouter "github.com/collabx/backend/internal/statistics/router"
	userRouter "github.com/collabx/backend/internal/user/router"
	"github.com/collabx/backend/pkg/logger"
)

func main() {
	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	gin.SetMode(cfg.GinMode)

	dbCfg := dbConfig.LoadConfigFromEnv()
	retryCfg := dbConfig.LoadRetryConfigFromEnv()

	connectCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.NewWithRetry(connectCtx, dbCfg, retryCfg)
	if err != nil {
		zapLogger.Fatalw("failed to connect to database", "error", dbConfig.SanitizeError(err, dbCfg))
	}

	if err := pool.SetupConnectionPool(db, pool.DefaultPoolConfig()); err != nil {
		zapLogger.Fatalw("failed to configure connection pool", "error", err)
	}

	if err := migrate.Migrate(db); err != nil {
		zapLogger.Fatalw("failed to run migrations", "error", err)
	}

	r := gin.New()
	r.Use(middleware.Recovery(zapLogger))
	r.Use(middleware.Logger(zapLogger))
	r.Use(middleware.Identity())

	healthHandler := health.New(db, zapLogger)
	r.GET("/health", healthHandler.Check)

	userRouter.RegisterRoutes(r, db, zapLogger)
	projectRouter.RegisterRoutes(r, db, zapLogger)
	rosterRouter.RegisterRoutes(r, db, cfg.Portal, zapLogger)
	joinrequestRouter.RegisterRoutes(r, db, cfg.Portal, zapLogger)
	facultyRouter.RegisterRoutes(r, db, zapLogger)
	hackathonRouter.RegisterRoutes(r, db, zapLogger)
	statisticsRouter.RegisterRoutes(r, db, zapLogger)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zapLogger.Infow("server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Infow("server shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Errorw("graceful shutdown failed", "error", err)
	}
}
