package server

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/lingocert/placement-platform/internal/auth"
	"github.com/lingocert/placement-platform/internal/config"
	"github.com/lingocert/placement-platform/internal/logging"
	"github.com/lingocert/placement-platform/internal/placement"
)

// WSUpgrader handles WebSocket upgrades for the results feed.
var WSUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict origins once the dashboard host is fixed
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// NewHTTPServer wires base routes (health, metrics) plus auth and placement
// endpoints. feedHandler can be nil when the results feed is disabled.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, pool *pgxpool.Pool, redisClient *redis.Client,
	authSvc *auth.Service, authHandlers *auth.HTTPHandlers, placementHandlers *placement.HTTPHandlers,
	feedHandler http.HandlerFunc) *http.Server {

	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/v1/ping", func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.IntoContext(r.Context(), logger)
		if err := pingDependencies(ctx, pool, redisClient); err != nil {
			logger.Error().Err(err).Msg("dependency ping failed")
			http.Error(w, "upstream error", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"pong":true}`))
	})

	authn := auth.Middleware(authSvc, logger)

	mux.HandleFunc("/v1/auth/register", authHandlers.Register)
	mux.HandleFunc("/v1/auth/login", authHandlers.Login)
	mux.HandleFunc("/v1/auth/refresh", authHandlers.RefreshToken)
	mux.Handle("/v1/users/me", authn(auth.RequireAuth(http.HandlerFunc(authHandlers.GetMe))))

	mux.Handle("/v1/placement/steps/{step}/questions",
		authn(auth.RequireAuth(http.HandlerFunc(placementHandlers.GetQuestions))))
	mux.Handle("/v1/placement/steps/{step}/submit",
		authn(auth.RequireAuth(http.HandlerFunc(placementHandlers.Submit))))
	mux.Handle("/v1/placement/attempts",
		authn(auth.RequireAuth(http.HandlerFunc(placementHandlers.ListAttempts))))
	mux.Handle("/v1/placement/status",
		authn(auth.RequireAuth(http.HandlerFunc(placementHandlers.GetStatus))))

	if feedHandler != nil {
		mux.HandleFunc("/ws/results", feedHandler)
	}

	return &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}
}

func pingDependencies(ctx context.Context, pool *pgxpool.Pool, redisClient *redis.Client) error {
	if err := pool.Ping(ctx); err != nil {
		return err
	}
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return err
	}
	return nil
}
