package feed

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/lingocert/placement-platform/internal/auth"
	"github.com/lingocert/placement-platform/internal/placement"
	"github.com/lingocert/placement-platform/internal/server"
	httperrors "github.com/lingocert/placement-platform/pkg/http/errors"
	ws "github.com/lingocert/placement-platform/pkg/http/ws"
)

// Broadcaster pushes completed-attempt summaries to supervisor dashboards
// over the WebSocket hub.
type Broadcaster struct {
	hub    *ws.Hub
	logger zerolog.Logger
}

var _ interface {
	BroadcastResult(placement.ResultSummary)
} = (*Broadcaster)(nil)

// NewBroadcaster wires the results feed to a hub.
func NewBroadcaster(hub *ws.Hub, logger zerolog.Logger) *Broadcaster {
	return &Broadcaster{
		hub:    hub,
		logger: logger.With().Str("component", "results_feed").Logger(),
	}
}

// BroadcastResult fans the summary out to every connected subscriber.
// Delivery is best effort; a slow subscriber never blocks submission.
func (b *Broadcaster) BroadcastResult(summary placement.ResultSummary) {
	payload, err := json.Marshal(summary)
	if err != nil {
		b.logger.Error().Err(err).Msg("encode result summary")
		return
	}
	if err := b.hub.BroadcastAll(ws.Message{Type: ws.TypeAttemptComplete, Payload: payload}); err != nil {
		b.logger.Warn().Err(err).Msg("feed broadcast failed")
	}
}

// Handler upgrades /ws/results connections for supervisor subscribers.
type Handler struct {
	hub     *ws.Hub
	authSvc *auth.Service
	logger  zerolog.Logger
}

// NewHandler creates the feed WebSocket handler.
func NewHandler(hub *ws.Hub, authSvc *auth.Service, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:     hub,
		authSvc: authSvc,
		logger:  logger.With().Str("component", "results_feed_ws").Logger(),
	}
}

// HandleWebSocket upgrades the HTTP connection and authenticates the
// subscriber. Browsers cannot set headers on WebSocket requests, so the
// token rides a query parameter.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		httperrors.RespondUnauthorized(w, httperrors.ErrCodeInvalidToken, "Missing token")
		return
	}

	claims, err := h.authSvc.ValidateToken(token)
	if err != nil {
		h.logger.Warn().Err(err).Msg("WebSocket token validation failed")
		httperrors.RespondUnauthorized(w, httperrors.ErrCodeInvalidToken, "Invalid token")
		return
	}

	if claims.Role != auth.RoleSupervisor {
		httperrors.RespondForbidden(w, httperrors.ErrCodeForbidden, "Supervisor account required")
		return
	}

	conn, err := server.WSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	wrapped := ws.NewConnection(conn, h.logger)
	h.hub.Register(claims.UserID, wrapped)

	go wrapped.WritePump()
	go func() {
		defer h.hub.Unregister(claims.UserID)
		wrapped.ReadPump(func(msg ws.Message) error {
			if msg.Type == ws.TypePing {
				return wrapped.Send(ws.Message{Type: ws.TypePong, RequestID: msg.RequestID})
			}
			return nil
		})
	}()
}
