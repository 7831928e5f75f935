// Package room serializes access to one game per room and paces the bots.
// Each Room guards its GameState with a mutex so the "remove from hand,
// append to trick" transition stays atomic under concurrent requests;
// different rooms never share state.
package room

import (
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mersetter/jass-game-app/internal/bots"
	"github.com/mersetter/jass-game-app/internal/engine"
	"github.com/mersetter/jass-game-app/internal/game"
)

// Event names published to a room's channel. Each carries a state
// snapshot; trick-won also carries the winner detail.
const (
	EventGameState    = "game-state"
	EventPlayerJoined = "player-joined"
	EventPlayerLeft   = "player-left"
	EventGameStarted  = "game-started"
	EventCardPlayed   = "card-played"
	EventTrickWon     = "trick-won"
	EventRoundEnd     = "round-end"
	EventGameOver     = "game-over"
)

// Broadcaster fans a room-scoped event out to whoever is subscribed.
// Publishing is fire-and-forget, at-most-once; the room never waits on
// delivery.
type Broadcaster interface {
	Publish(roomID, event string, state engine.GameState, detail any)
}

// Config holds the pacing delays. They are a product requirement, not a
// correctness one: bots should appear to think, and a completed trick
// should stay visible before it is cleared.
type Config struct {
	BotDelay   time.Duration
	TrickDelay time.Duration
}

func DefaultConfig() Config {
	return Config{
		BotDelay:   time.Second,
		TrickDelay: 1500 * time.Millisecond,
	}
}

type Room struct {
	Code string

	mu   sync.Mutex
	game *engine.GameState
	rng  *rand.Rand
	bots map[string]bots.Bot
	cfg  Config
	bc   Broadcaster

	// botTimer fires bot turns after the configured think delay. botGen
	// invalidates callbacks scheduled before a reschedule or teardown.
	botTimer *time.Timer
	botGen   int64
	closed   bool
}

func newRoom(code, hostID string, seed int64, cfg Config, bc Broadcaster) *Room {
	return &Room{
		Code: code,
		game: game.New(code, hostID),
		rng:  rand.New(rand.NewSource(seed)),
		bots: make(map[string]bots.Bot),
		cfg:  cfg,
		bc:   bc,
	}
}

// Snapshot returns a deep copy of the current game state.
func (r *Room) Snapshot() engine.GameState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked()
}

func (r *Room) snapshotLocked() engine.GameState {
	g := *r.game
	g.Players = append([]engine.Player(nil), r.game.Players...)
	for i := range g.Players {
		g.Players[i].Hand = append([]engine.Card(nil), g.Players[i].Hand...)
	}
	g.Trick = append([]engine.PlayedCard(nil), r.game.Trick...)
	if r.game.Trump != nil {
		t := *r.game.Trump
		g.Trump = &t
	}
	if r.game.LastTrickWinner != nil {
		w := *r.game.LastTrickWinner
		g.LastTrickWinner = &w
	}
	return g
}

func (r *Room) publishLocked(event string, detail any) {
	if r.bc == nil {
		return
	}
	r.bc.Publish(r.Code, event, r.snapshotLocked(), detail)
}

// Join seats a player and announces them.
func (r *Room) Join(playerID, name string) (engine.GameState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := game.AddPlayer(r.game, playerID, name); err != nil {
		return engine.GameState{}, err
	}
	r.publishLocked(EventPlayerJoined, nil)
	return r.snapshotLocked(), nil
}

// Leave unseats a player and reports whether the room emptied and should
// be deleted by the caller. A seat handed over mid-game gets a bot
// registered behind it; if the departed player held the turn, the bot
// scheduler takes over.
func (r *Room) Leave(playerID string) (engine.GameState, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	empty := game.RemovePlayer(r.game, playerID)
	if empty {
		return r.snapshotLocked(), true
	}
	for _, p := range r.game.Players {
		if p.IsBot {
			if _, ok := r.bots[p.ID]; !ok {
				r.bots[p.ID] = bots.NewRandom(r.rng.Int63())
			}
		}
	}
	r.publishLocked(EventPlayerLeft, nil)
	r.maybeScheduleBotLocked(r.cfg.BotDelay)
	return r.snapshotLocked(), false
}

// Start begins the game: bots fill the empty seats, cards are dealt and
// trump is drawn. Kicks off bot pacing if a bot holds the first turn.
func (r *Room) Start(hostID string) (engine.GameState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := game.Start(r.game, hostID, r.rng); err != nil {
		return engine.GameState{}, err
	}
	for _, p := range r.game.Players {
		if p.IsBot {
			r.bots[p.ID] = bots.NewRandom(r.rng.Int63())
		}
	}
	r.publishLocked(EventGameStarted, nil)
	r.maybeScheduleBotLocked(r.cfg.BotDelay)
	return r.snapshotLocked(), nil
}

// Play applies a human play and reacts to its result.
func (r *Room) Play(playerID string, cardIndex int) (engine.GameState, game.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, err := game.Play(r.game, playerID, cardIndex)
	if err != nil {
		return engine.GameState{}, res, err
	}
	r.afterPlayLocked(res)
	return r.snapshotLocked(), res, nil
}

// NextRound re-deals after ROUND_END. Host only.
func (r *Room) NextRound(playerID string) (engine.GameState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.game.HostID != playerID {
		return engine.GameState{}, game.ErrNotHost
	}
	if err := game.NextRound(r.game, r.rng); err != nil {
		return engine.GameState{}, err
	}
	r.publishLocked(EventGameStarted, nil)
	r.maybeScheduleBotLocked(r.cfg.BotDelay)
	return r.snapshotLocked(), nil
}

// Close tears the room down. Pending bot callbacks become no-ops.
func (r *Room) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.botGen++
	if r.botTimer != nil {
		r.botTimer.Stop()
		r.botTimer = nil
	}
}

func (r *Room) afterPlayLocked(res game.Result) {
	r.publishLocked(EventCardPlayed, nil)
	if res.TrickComplete {
		r.publishLocked(EventTrickWon, res.TrickWinner)
	}
	if res.RoundOver {
		r.publishLocked(EventRoundEnd, nil)
	}
	if res.GameOver {
		r.publishLocked(EventGameOver, nil)
		return
	}
	if r.game.Status != engine.StatusPlaying {
		return
	}
	delay := r.cfg.BotDelay
	if res.TrickComplete {
		// Keep the completed trick on screen before the next bot acts.
		delay += r.cfg.TrickDelay
	}
	r.maybeScheduleBotLocked(delay)
}

func (r *Room) maybeScheduleBotLocked(delay time.Duration) {
	if r.closed || r.game.Status != engine.StatusPlaying {
		return
	}
	seat := r.game.CurrentTurn
	if _, ok := r.bots[r.game.Players[seat].ID]; !ok {
		return
	}
	if r.botTimer != nil {
		r.botTimer.Stop()
	}
	r.botGen++
	gen := r.botGen
	expect := r.game.Players[seat].ID
	r.botTimer = time.AfterFunc(delay, func() {
		r.botTurn(gen, expect)
	})
}

// botTurn runs a scheduled bot move. Stale callbacks (room closed, game no
// longer playing, generation moved on, turn changed hands) no-op.
func (r *Room) botTurn(gen int64, expectID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || gen != r.botGen {
		return
	}
	if r.game.Status != engine.StatusPlaying {
		return
	}
	seat := r.game.CurrentTurn
	p := r.game.Players[seat]
	if p.ID != expectID {
		return
	}
	bot, ok := r.bots[p.ID]
	if !ok {
		return
	}
	idx := bot.ChooseCard(r.snapshotLocked(), seat)
	res, err := game.Play(r.game, p.ID, idx)
	if err != nil {
		// A bot only ever picks from ValidCards; rejection here means an
		// engine invariant broke.
		logrus.WithFields(logrus.Fields{
			"room":   r.Code,
			"player": p.Name,
		}).WithError(err).Error("bot move rejected")
		return
	}
	logrus.WithFields(logrus.Fields{
		"room":   r.Code,
		"player": p.Name,
	}).Debug("bot played")
	r.afterPlayLocked(res)
}
