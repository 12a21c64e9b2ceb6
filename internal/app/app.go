package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/fuzumoe/domsight-api/configs"
	"github.com/fuzumoe/domsight-api/internal/analyzer"
	"github.com/fuzumoe/domsight-api/internal/fetcher"
	"github.com/fuzumoe/domsight-api/internal/handler"
	"github.com/fuzumoe/domsight-api/internal/server"
	"github.com/fuzumoe/domsight-api/internal/service"
)

const serviceName = "DOMSight API"

// hookable functions for dependency injection
var LoadConfig = configs.Load

// NewLogger builds the application logger at the given level; unknown levels
// fall back to info.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}

// Run loads config, wires the fetcher, engine, services and routes, and
// serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("config load error: %w", err)
	}

	logger := NewLogger(cfg.LogLevel)
	gin.SetMode(cfg.ServerMode)

	f := fetcher.New(cfg.FetchTimeout, cfg.UserAgent, cfg.RespectRobots)
	engine := analyzer.NewEngine()

	analysisSvc := service.NewAnalysisService(f, engine, cfg.MaxConcurrentFetch, logger)
	healthSvc := service.NewHealthService(engine, serviceName)

	r := gin.New()
	server.RegisterRoutes(
		r,
		cfg.JWTSecret,
		[]server.RouteRegistrar{handler.NewHealthHandler(healthSvc)},
		[]server.RouteRegistrar{handler.NewAnalyzeHandler(analysisSvc)},
	)

	srv := &http.Server{
		Addr:    net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGracePeriod)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("server shutdown error")
		}
	}()

	logger.Info().Str("addr", srv.Addr).Msg("starting " + serviceName)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}
