package services

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

// WSEvent represents a WebSocket event pushed to a connected account
type WSEvent struct {
	Type          string `json:"type"`
	RequestID     string `json:"request_id,omitempty"`
	PetID         string `json:"pet_id,omitempty"`
	PetName       string `json:"pet_name,omitempty"`
	FromAccountID string `json:"from_account_id,omitempty"`
	Message       string `json:"message,omitempty"`
}

// WSHub manages WebSocket connections, one per account
type WSHub struct {
	mu          sync.RWMutex
	connections map[string]*websocket.Conn
}

// NewWSHub creates a new WebSocket hub
func NewWSHub() *WSHub {
	return &WSHub{
		connections: make(map[string]*websocket.Conn),
	}
}

// Register registers a new WebSocket connection for an account
func (h *WSHub) Register(accountID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Close existing connection if any
	if existing, exists := h.connections[accountID]; exists {
		existing.Close()
	}
	h.connections[accountID] = conn

	log.Info().Str("account_id", accountID).Msg("WebSocket connection registered")
}

// Unregister removes the WebSocket connection for an account. The
// caller passes its own connection: after a reconnect the old handler
// still unregisters on exit, and must not evict the replacement.
func (h *WSHub) Unregister(accountID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	current, exists := h.connections[accountID]
	if !exists || current != conn {
		return
	}
	current.Close()
	delete(h.connections, accountID)
	log.Info().Str("account_id", accountID).Msg("WebSocket connection unregistered")
}

// SendToAccount sends an event to a specific account
func (h *WSHub) SendToAccount(accountID string, event WSEvent) error {
	h.mu.RLock()
	conn, exists := h.connections[accountID]
	h.mu.RUnlock()

	if !exists {
		return fmt.Errorf("account %s is not connected", accountID)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		h.Unregister(accountID, conn)
		return fmt.Errorf("failed to send event: %w", err)
	}

	return nil
}

// IsOnline checks if an account has a live connection
func (h *WSHub) IsOnline(accountID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, exists := h.connections[accountID]
	return exists
}
