package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebSocketRejectsBadToken(t *testing.T) {
	ts := newTestServer(t)
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"

	_, resp, err := websocket.DefaultDialer.Dial(wsURL+"?token=garbage", nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestOwnerReceivesAdoptionEvent(t *testing.T) {
	ts := newTestServer(t)

	tokenA := signupAndLogin(t, ts, "Ana", "a@x.com")
	tokenB := signupAndLogin(t, ts, "Beto", "b@x.com")

	petID := createPet(t, ts, tokenA, "Firulais")

	// The owner connects before the request arrives.
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?token=" + tokenA
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	status, body := doForm(t, ts, http.MethodPost, "/adopcion", tokenB, url.Values{
		"pet_id":          {petID},
		"mensaje":         {"me encanta"},
		"fecha_solicitud": {"2026-09-15"},
	})
	require.Equal(t, http.StatusCreated, status, "adoption request failed: %s", body)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)

	var event struct {
		Type    string `json:"type"`
		PetID   string `json:"pet_id"`
		PetName string `json:"pet_name"`
	}
	require.NoError(t, json.Unmarshal(message, &event))
	assert.Equal(t, "adoption_requested", event.Type)
	assert.Equal(t, petID, event.PetID)
	assert.Equal(t, "Firulais", event.PetName)
}
