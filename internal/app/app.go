package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/lingocert/placement-platform/internal/auth"
	"github.com/lingocert/placement-platform/internal/auth/jwt"
	"github.com/lingocert/placement-platform/internal/config"
	"github.com/lingocert/placement-platform/internal/db/repository"
	"github.com/lingocert/placement-platform/internal/feed"
	"github.com/lingocert/placement-platform/internal/logging"
	"github.com/lingocert/placement-platform/internal/metrics"
	"github.com/lingocert/placement-platform/internal/placement"
	"github.com/lingocert/placement-platform/internal/placement/bank"
	"github.com/lingocert/placement-platform/internal/server"
	ws "github.com/lingocert/placement-platform/pkg/http/ws"
)

// Application aggregates shared infrastructure (DB, cache, HTTP server).
type Application struct {
	cfg    *config.App
	logger zerolog.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	http  *http.Server
}

// New bootstraps config, logger, Postgres, Redis and the HTTP server.
func New(ctx context.Context, cfg *config.App) (*Application, error) {
	logger := logging.New(cfg.Name, cfg.Env)
	logger.Info().Msg("starting application bootstrap")

	connString := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s pool_max_conns=10",
		cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.SSLMode)

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	userRepo := repository.NewUserRepository(pool)
	attemptRepo := repository.NewAttemptRepository(pool)

	if cfg.Security.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be configured")
	}

	authSvc := auth.NewService(userRepo, auth.ServiceOptions{
		TokenConfig: jwt.TokenConfig{
			AccessSecret:  []byte(cfg.Security.JWTSecret),
			RefreshSecret: []byte(cfg.Security.JWTSecret + "_refresh"),
			Issuer:        cfg.Name,
		},
	}, logger)
	authHandlers := auth.NewHTTPHandlers(authSvc, logger)

	questionBank := bank.Default()
	selector := placement.NewSelector(questionBank, nil)
	issuedCache := placement.NewCache(redisClient, cfg.Placement.IssuedSetTTL)
	placementMetrics := metrics.NewPlacement(prometheus.DefaultRegisterer)

	wsHub := ws.NewHub(logger)
	broadcaster := feed.NewBroadcaster(wsHub, logger)
	feedHandler := feed.NewHandler(wsHub, authSvc, logger)

	placementSvc := placement.NewService(questionBank, selector, issuedCache, attemptRepo,
		placementMetrics, broadcaster, logger)
	placementHandlers := placement.NewHTTPHandlers(placementSvc, logger)

	httpServer := server.NewHTTPServer(cfg, logger, pool, redisClient,
		authSvc, authHandlers, placementHandlers, feedHandler.HandleWebSocket)

	logger.Info().Int("bank_size", questionBank.Size()).Msg("question bank loaded")

	return &Application{
		cfg:    cfg,
		logger: logger,
		pool:   pool,
		redis:  redisClient,
		http:   httpServer,
	}, nil
}

// Run starts the HTTP server and blocks until shutdown.
func (a *Application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info().Str("addr", a.cfg.HTTPAddr).Msg("http server listening")
		if err := a.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		a.logger.Info().Str("signal", sig.String()).Msg("shutdown signal received")
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
		a.logger.Warn().Msg("context canceled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
	defer cancel()

	if err := a.http.Shutdown(shutdownCtx); err != nil {
		a.logger.Error().Err(err).Msg("http shutdown error")
	}

	a.pool.Close()
	if err := a.redis.Close(); err != nil {
		a.logger.Error().Err(err).Msg("redis shutdown error")
	}

	a.logger.Info().Msg("shutdown complete")
	return nil
}
