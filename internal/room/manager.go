package room

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mersetter/jass-game-app/internal/engine"
	"github.com/mersetter/jass-game-app/internal/game"
)

// Manager creates rooms and routes operations to them by room code.
type Manager struct {
	store Store
	bc    Broadcaster
	cfg   Config

	// rng issues room codes and per-room seeds; guarded because handlers
	// run on arbitrary goroutines.
	mu  sync.Mutex
	rng *rand.Rand
}

func NewManager(store Store, bc Broadcaster, cfg Config) *Manager {
	return &Manager{
		store: store,
		bc:    bc,
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateRoom makes a new room with a fresh code and seats the creator as
// host. Returns the initial state, the room code and the creator's id.
func (m *Manager) CreateRoom(playerName string) (engine.GameState, string, string, error) {
	m.mu.Lock()
	code := engine.NewRoomCode(m.rng)
	for {
		if _, taken := m.store.Get(code); !taken {
			break
		}
		code = engine.NewRoomCode(m.rng)
	}
	seed := m.rng.Int63()
	m.mu.Unlock()

	playerID := uuid.NewString()
	r := newRoom(code, playerID, seed, m.cfg, m.bc)
	st, err := r.Join(playerID, playerName)
	if err != nil {
		return engine.GameState{}, "", "", err
	}
	m.store.Put(r)
	logrus.WithFields(logrus.Fields{"room": code, "host": playerName}).Info("room created")
	return st, code, playerID, nil
}

// Join seats a new player in an existing room.
func (m *Manager) Join(code, playerName string) (engine.GameState, string, error) {
	r, ok := m.store.Get(code)
	if !ok {
		return engine.GameState{}, "", game.ErrRoomNotFound
	}
	playerID := uuid.NewString()
	st, err := r.Join(playerID, playerName)
	if err != nil {
		return engine.GameState{}, "", err
	}
	return st, playerID, nil
}

// Leave removes a player; an emptied room is torn down and deleted.
func (m *Manager) Leave(code, playerID string) error {
	r, ok := m.store.Get(code)
	if !ok {
		return game.ErrRoomNotFound
	}
	if _, empty := r.Leave(playerID); empty {
		r.Close()
		m.store.Delete(code)
		logrus.WithField("room", code).Info("room deleted")
	}
	return nil
}

// State returns a snapshot of a room's game.
func (m *Manager) State(code string) (engine.GameState, error) {
	r, ok := m.store.Get(code)
	if !ok {
		return engine.GameState{}, game.ErrRoomNotFound
	}
	return r.Snapshot(), nil
}

// Start delegates a start request to the room.
func (m *Manager) Start(code, playerID string) (engine.GameState, error) {
	r, ok := m.store.Get(code)
	if !ok {
		return engine.GameState{}, game.ErrRoomNotFound
	}
	return r.Start(playerID)
}

// Play delegates a card play to the room.
func (m *Manager) Play(code, playerID string, cardIndex int) (engine.GameState, game.Result, error) {
	r, ok := m.store.Get(code)
	if !ok {
		return engine.GameState{}, game.Result{}, game.ErrRoomNotFound
	}
	return r.Play(playerID, cardIndex)
}

// NextRound delegates a re-deal request to the room.
func (m *Manager) NextRound(code, playerID string) (engine.GameState, error) {
	r, ok := m.store.Get(code)
	if !ok {
		return engine.GameState{}, game.ErrRoomNotFound
	}
	return r.NextRound(playerID)
}
