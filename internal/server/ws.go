package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/mersetter/jass-game-app/internal/room"
)

// Read/write pump constants follow the gorilla/websocket chat example.
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingInterval   = 50 * time.Second
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsClient is one subscribed WebSocket connection. Game actions travel
// over the HTTP endpoints; the socket only carries state pushes.
type wsClient struct {
	conn     *websocket.Conn
	hub      *Hub
	roomID   string
	playerID string
	send     chan []byte
}

// HandleWS upgrades the connection and subscribes it to its room channel.
// Expects "room" and "player" query parameters.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	roomID := r.URL.Query().Get("room")
	playerID := r.URL.Query().Get("player")
	if roomID == "" || playerID == "" {
		http.Error(w, "room and player query parameters required", http.StatusBadRequest)
		return
	}
	st, err := s.mgr.State(roomID)
	if err != nil {
		http.Error(w, "room not found", http.StatusNotFound)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.WithError(err).Warn("ws upgrade")
		return
	}

	c := &wsClient{
		conn:     conn,
		hub:      s.hub,
		roomID:   roomID,
		playerID: playerID,
		send:     make(chan []byte, 64),
	}

	// Queue the initial snapshot before subscribing; until the hub knows
	// the client, nothing else can close or drain the channel.
	if data, err := json.Marshal(ServerMessage{
		Type:  room.EventGameState,
		State: BuildStateView(st, playerID),
	}); err == nil {
		c.send <- data
	}
	s.hub.subscribe(roomID, c)

	go c.writePump()
	go c.readPump()
}

func (c *wsClient) readPump() {
	defer func() {
		c.hub.unsubscribe(c.roomID, c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		// Inbound frames are ignored; reading just detects closure.
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, open := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !open {
				c.conn.WriteMessage(websocket.CloseMessage, nil)
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}
