package server

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mersetter/jass-game-app/internal/engine"
	"github.com/mersetter/jass-game-app/internal/room"
)

func newBareClient(roomID, playerID string, buffer int) *wsClient {
	return &wsClient{
		roomID:   roomID,
		playerID: playerID,
		send:     make(chan []byte, buffer),
	}
}

func TestPublishRendersPerSubscriber(t *testing.T) {
	hub := NewHub()
	a := newBareClient("R1", "p0", 4)
	b := newBareClient("R1", "p1", 4)
	hub.subscribe("R1", a)
	hub.subscribe("R1", b)

	st := redactionState()
	hub.Publish("R1", room.EventCardPlayed, st, nil)

	var msgA, msgB ServerMessage
	require.NoError(t, json.Unmarshal(<-a.send, &msgA))
	require.NoError(t, json.Unmarshal(<-b.send, &msgB))

	assert.Equal(t, room.EventCardPlayed, msgA.Type)
	assert.NotEmpty(t, msgA.State.Players[0].Hand, "p0 sees own hand")
	assert.Empty(t, msgA.State.Players[1].Hand)
	assert.NotEmpty(t, msgB.State.Players[1].Hand, "p1 sees own hand")
	assert.Empty(t, msgB.State.Players[0].Hand)
}

func TestPublishCarriesTrickWinner(t *testing.T) {
	hub := NewHub()
	c := newBareClient("R1", "p0", 1)
	hub.subscribe("R1", c)

	win := &engine.TrickWin{PlayerName: "Anna", Points: 21}
	hub.Publish("R1", room.EventTrickWon, redactionState(), win)

	var msg ServerMessage
	require.NoError(t, json.Unmarshal(<-c.send, &msg))
	require.NotNil(t, msg.Winner)
	assert.Equal(t, "Anna", msg.Winner.PlayerName)
	assert.Equal(t, 21, msg.Winner.Points)
}

func TestPublishDropsSlowSubscriber(t *testing.T) {
	hub := NewHub()
	slow := newBareClient("R1", "p0", 1)
	hub.subscribe("R1", slow)

	st := redactionState()
	hub.Publish("R1", room.EventCardPlayed, st, nil)
	// Buffer is now full and never drained; the next publish evicts.
	hub.Publish("R1", room.EventCardPlayed, st, nil)

	_, open := <-slow.send
	require.True(t, open, "first message still delivered")
	_, open = <-slow.send
	assert.False(t, open, "send channel closed on eviction")

	hub.mu.Lock()
	defer hub.mu.Unlock()
	assert.Empty(t, hub.rooms, "empty room entry reclaimed")
}
