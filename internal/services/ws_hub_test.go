package services_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mosorio19/Lomito/internal/services"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// dialPair opens a websocket connection and returns both ends of it.
func dialPair(t *testing.T) (server, client *websocket.Conn) {
	t.Helper()

	serverConns := make(chan *websocket.Conn, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		serverConns <- conn
	}))
	t.Cleanup(ts.Close)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	select {
	case server = <-serverConns:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for server side of connection")
	}
	return server, client
}

func TestReconnectKeepsReplacementRegistered(t *testing.T) {
	hub := services.NewWSHub()

	stale, _ := dialPair(t)
	hub.Register("acc-1", stale)

	replacement, client := dialPair(t)
	hub.Register("acc-1", replacement)

	// The first handler's read loop fails once Register closed its
	// connection; its deferred unregister must not evict the
	// replacement.
	hub.Unregister("acc-1", stale)
	assert.True(t, hub.IsOnline("acc-1"))

	require.NoError(t, hub.SendToAccount("acc-1", services.WSEvent{
		Type:  "adoption_requested",
		PetID: "pet-1",
	}))

	require.NoError(t, client.SetReadDeadline(time.Now().Add(3*time.Second)))
	_, message, err := client.ReadMessage()
	require.NoError(t, err)

	var event services.WSEvent
	require.NoError(t, json.Unmarshal(message, &event))
	assert.Equal(t, "adoption_requested", event.Type)

	hub.Unregister("acc-1", replacement)
	assert.False(t, hub.IsOnline("acc-1"))
}
