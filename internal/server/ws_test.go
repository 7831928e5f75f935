package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mersetter/jass-game-app/internal/room"
)

func newWSTestServer(t *testing.T) (*httptest.Server, *room.Manager) {
	t.Helper()
	hub := NewHub()
	mgr := room.NewManager(room.NewMemoryStore(), hub, room.Config{
		BotDelay:   time.Millisecond,
		TrickDelay: time.Millisecond,
	})
	mux := http.NewServeMux()
	New(mgr, hub).Routes(mux)
	return httptest.NewServer(mux), mgr
}

func wsURL(ts *httptest.Server, code, playerID string) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?room=" + code + "&player=" + playerID
}

// A fresh subscriber's first message is always the state snapshot, ahead
// of any broadcast for the room.
func TestWSDeliversSnapshotFirst(t *testing.T) {
	ts, mgr := newWSTestServer(t)
	defer ts.Close()

	_, code, hostID, err := mgr.CreateRoom("Anna")
	require.NoError(t, err)

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(ts, code, hostID), nil)
	require.NoError(t, err)
	defer conn.Close()
	resp.Body.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg ServerMessage
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, room.EventGameState, msg.Type)
	require.NotNil(t, msg.State)
	assert.Equal(t, "LOBBY", msg.State.Status)
	assert.Equal(t, hostID, msg.State.HostID)

	// Receiving the snapshot means the pumps are up, so a join from here
	// on reaches the subscriber.
	_, _, err = mgr.Join(code, "Finn")
	require.NoError(t, err)

	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, room.EventPlayerJoined, msg.Type)
	assert.Len(t, msg.State.Players, 2)
}

func TestWSRejectsUnknownRoom(t *testing.T) {
	ts, _ := newWSTestServer(t)
	defer ts.Close()

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(ts, "NOSUCH", "nobody"), nil)
	require.Error(t, err)
	require.Nil(t, conn)
	require.NotNil(t, resp)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
