package handlers

import (
	"net/http"

	"github.com/mosorio19/Lomito/internal/services"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler handles the realtime notification endpoint
type WebSocketHandler struct {
	hub            *services.WSHub
	accountService *services.AccountService
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(hub *services.WSHub, accountService *services.AccountService) *WebSocketHandler {
	return &WebSocketHandler{hub: hub, accountService: accountService}
}

// HandleWebSocket handles GET /ws?token=...
func (h *WebSocketHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		respondError(w, "token required", http.StatusUnauthorized)
		return
	}

	accountID, _, err := h.accountService.Authenticate(r.Context(), token)
	if err != nil {
		respondError(w, "invalid token", http.StatusUnauthorized)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("Failed to upgrade WebSocket connection")
		return
	}
	defer conn.Close()

	h.hub.Register(accountID, conn)
	defer h.hub.Unregister(accountID, conn)

	log.Info().Str("account_id", accountID).Msg("WebSocket connection established")

	// The channel is push-only: drain inbound frames until the peer
	// goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error().Err(err).Str("account_id", accountID).Msg("WebSocket error")
			}
			break
		}
	}
}
