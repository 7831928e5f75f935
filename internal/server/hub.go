package server

import (
	"encoding/json"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/mersetter/jass-game-app/internal/engine"
)

// ServerMessage is the envelope pushed over a room's WebSocket channel.
type ServerMessage struct {
	Type   string       `json:"type"`
	State  *StateView   `json:"state,omitempty"`
	Winner *TrickWinDTO `json:"winner,omitempty"`
}

// Hub fans room events out to WebSocket subscribers. It implements
// room.Broadcaster. Delivery is best-effort: a subscriber whose send
// buffer is full gets dropped rather than slowing the room down.
type Hub struct {
	mu    sync.Mutex
	rooms map[string]map[*wsClient]struct{}
}

func NewHub() *Hub {
	return &Hub{rooms: make(map[string]map[*wsClient]struct{})}
}

func (h *Hub) subscribe(roomID string, c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.rooms[roomID]
	if !ok {
		subs = make(map[*wsClient]struct{})
		h.rooms[roomID] = subs
	}
	subs[c] = struct{}{}
}

func (h *Hub) unsubscribe(roomID string, c *wsClient) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if subs, ok := h.rooms[roomID]; ok {
		if _, present := subs[c]; present {
			delete(subs, c)
			close(c.send)
		}
		if len(subs) == 0 {
			delete(h.rooms, roomID)
		}
	}
}

// Publish renders the state once per subscriber (each sees their own hand
// only) and sends without blocking.
func (h *Hub) Publish(roomID, event string, state engine.GameState, detail any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs := h.rooms[roomID]
	for c := range subs {
		msg := ServerMessage{
			Type:  event,
			State: BuildStateView(state, c.playerID),
		}
		if w, ok := detail.(*engine.TrickWin); ok && w != nil {
			msg.Winner = &TrickWinDTO{PlayerName: w.PlayerName, Points: w.Points}
		}
		data, err := json.Marshal(msg)
		if err != nil {
			logrus.WithError(err).Error("encode broadcast")
			continue
		}
		select {
		case c.send <- data:
		default:
			// Too slow to keep up; reclaim the slot.
			delete(subs, c)
			close(c.send)
		}
	}
	if len(subs) == 0 {
		delete(h.rooms, roomID)
	}
}
