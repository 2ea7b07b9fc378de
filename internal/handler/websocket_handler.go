package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	ws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/relayy/relayy-backend/internal/domain"
	"github.com/relayy/relayy-backend/internal/websocket"
	"github.com/rs/zerolog/log"
)

// JWTValidator validates JWT tokens and returns the local user ID
type JWTValidator interface {
	ValidateToken(token string) (userID uuid.UUID, err error)
}

// MembershipChecker verifies that a user belongs to a workspace
type MembershipChecker interface {
	Membership(ctx context.Context, workspaceID, userID uuid.UUID) (*domain.Membership, error)
}

// WebSocketHandler handles WebSocket connections carrying workspace
// lifecycle events (renamed, deleted, member joined)
type WebSocketHandler struct {
	hub            *websocket.Hub
	validator      JWTValidator
	memberships    MembershipChecker
	allowedOrigins map[string]bool
	upgrader       ws.Upgrader
}

// NewWebSocketHandler creates a new WebSocketHandler
func NewWebSocketHandler(hub *websocket.Hub, validator JWTValidator, memberships MembershipChecker, allowedOrigins []string) *WebSocketHandler {
	// Build origin lookup map
	originMap := make(map[string]bool)
	for _, origin := range allowedOrigins {
		originMap[origin] = true
	}

	h := &WebSocketHandler{
		hub:            hub,
		validator:      validator,
		memberships:    memberships,
		allowedOrigins: originMap,
	}

	h.upgrader = ws.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}

	return h
}

// checkOrigin validates the request origin against allowed origins
func (h *WebSocketHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		// Allow requests with no Origin header (e.g., same-origin or non-browser clients)
		return true
	}

	if h.allowedOrigins[origin] {
		return true
	}

	log.Warn().
		Str("origin", origin).
		Msg("WebSocket connection rejected: origin not allowed")
	return false
}

// HandleWS handles WebSocket connection requests at GET /ws
func (h *WebSocketHandler) HandleWS(c echo.Context) error {
	// Get token and workspace from query parameters
	token := c.QueryParam("token")
	if token == "" {
		log.Debug().Msg("WebSocket connection rejected: missing token")
		return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}

	workspaceID, err := uuid.Parse(c.QueryParam("workspace"))
	if err != nil {
		log.Debug().Msg("WebSocket connection rejected: missing workspace")
		return echo.NewHTTPError(http.StatusBadRequest, "missing workspace")
	}

	// Validate JWT and resolve the user
	userID, err := h.validator.ValidateToken(token)
	if err != nil {
		log.Debug().Err(err).Msg("WebSocket connection rejected: invalid token")
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	// Only members of the workspace may subscribe to its events
	if _, err := h.memberships.Membership(c.Request().Context(), workspaceID, userID); err != nil {
		log.Debug().
			Str("workspace_id", workspaceID.String()).
			Str("user_id", userID.String()).
			Msg("WebSocket connection rejected: not a member")
		return echo.NewHTTPError(http.StatusForbidden, "not a member of this workspace")
	}

	// Upgrade HTTP connection to WebSocket
	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return err
	}

	// Create client and register with hub
	client := websocket.NewClient(conn, workspaceID, h.hub)
	h.hub.Register(client)

	log.Info().
		Str("client_id", client.ID()).
		Str("workspace_id", workspaceID.String()).
		Msg("WebSocket client connected")

	// Start read and write pumps
	go client.WritePump()
	go client.ReadPump()

	return nil
}
