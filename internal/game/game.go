// Package game is the match controller: it owns the state transitions of a
// single GameState, from lobby through rounds to game over. All functions
// mutate the state in place and leave it untouched on error. Serialization
// of concurrent calls is the room layer's job.
package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/mersetter/jass-game-app/internal/engine"
)

// New creates a lobby-state game for a room. The host still has to join
// as the first player.
func New(roomID, hostID string) *engine.GameState {
	return &engine.GameState{
		RoomID: roomID,
		HostID: hostID,
		Status: engine.StatusLobby,
	}
}

// AddPlayer seats a new player. Teams alternate with join order (1,2,1,2)
// so partners end up at opposite seats.
func AddPlayer(g *engine.GameState, id, name string) error {
	if g.Status != engine.StatusLobby {
		return ErrGameNotInLobby
	}
	if len(g.Players) >= engine.NumPlayers {
		return ErrRoomFull
	}
	for _, p := range g.Players {
		if p.ID == id {
			return ErrAlreadyJoined
		}
	}
	g.Players = append(g.Players, engine.Player{
		ID:        id,
		Name:      name,
		Team:      len(g.Players)%2 + 1,
		Connected: true,
	})
	return nil
}

// RemovePlayer unseats a player and reports whether the room is now empty
// of humans (bots don't keep a room alive). In the lobby the seat
// disappears; once cards are dealt the seat is handed to a bot instead,
// keeping four seats so the live trick and CurrentTurn stay valid. If the
// host left, the first remaining human becomes host.
func RemovePlayer(g *engine.GameState, id string) (empty bool) {
	for i, p := range g.Players {
		if p.ID == id {
			if g.Status == engine.StatusLobby {
				g.Players = append(g.Players[:i], g.Players[i+1:]...)
			} else {
				g.Players[i].IsBot = true
				g.Players[i].Connected = false
			}
			break
		}
	}
	humans := 0
	for _, p := range g.Players {
		if !p.IsBot {
			humans++
		}
	}
	if humans == 0 {
		return true
	}
	if g.HostID == id {
		for _, p := range g.Players {
			if !p.IsBot {
				g.HostID = p.ID
				break
			}
		}
	}
	return false
}

// Start begins the first round. Only the host may start; empty seats are
// filled with bots before dealing.
func Start(g *engine.GameState, hostID string, rng *rand.Rand) error {
	if g.Status != engine.StatusLobby {
		return ErrGameNotInLobby
	}
	if g.HostID != hostID {
		return ErrNotHost
	}
	if len(g.Players) == 0 {
		return ErrNoPlayers
	}
	fillBots(g)
	startRound(g, rng)
	return nil
}

// NextRound re-deals after a finished round, keeping cumulative scores.
func NextRound(g *engine.GameState, rng *rand.Rand) error {
	if g.Status != engine.StatusRoundEnd {
		return ErrRoundNotOver
	}
	startRound(g, rng)
	return nil
}

func fillBots(g *engine.GameState) {
	for len(g.Players) < engine.NumPlayers {
		n := len(g.Players) + 1
		g.Players = append(g.Players, engine.Player{
			ID:        "bot-" + uuid.NewString(),
			Name:      fmt.Sprintf("Bot %d", n),
			Team:      len(g.Players)%2 + 1,
			IsBot:     true,
			Connected: true,
		})
	}
}

func startRound(g *engine.GameState, rng *rand.Rand) {
	engine.DealCards(g.Players, rng)
	// No bidding implemented: trump is drawn uniformly at random.
	trump := engine.Suit(rng.Intn(int(engine.SuitSpades) + 1))
	g.Trump = &trump
	g.Trick = nil
	g.CurrentTurn = 0
	g.RoundScores = engine.Scores{}
	g.LastTrickWinner = nil
	g.Status = engine.StatusPlaying
}

// Result describes what a successful play did to the game, so the caller
// can broadcast the matching events and pace the bots.
type Result struct {
	TrickComplete bool
	TrickWinner   *engine.TrickWin
	RoundOver     bool
	GameOver      bool
}

// Play applies one card play for playerID. The card leaves the hand and
// enters the trick atomically; a fourth card resolves the trick, credits
// the winning team and hands the lead to the winner's seat. The last
// trick of a round moves the game to ROUND_END, or GAME_OVER once a team
// has reached the win score.
func Play(g *engine.GameState, playerID string, cardIndex int) (Result, error) {
	var res Result
	if g.Status != engine.StatusPlaying {
		return res, ErrGameNotStarted
	}
	seat := playerIndex(g, playerID)
	if seat < 0 {
		return res, ErrPlayerNotFound
	}
	if seat != g.CurrentTurn {
		return res, ErrNotYourTurn
	}
	p := &g.Players[seat]
	if cardIndex < 0 || cardIndex >= len(p.Hand) {
		return res, ErrInvalidCard
	}
	card := p.Hand[cardIndex]
	if !engine.IsValidMove(card, p.Hand, g.Trick, g.Trump) {
		return res, ErrIllegalMove
	}

	p.Hand = append(p.Hand[:cardIndex], p.Hand[cardIndex+1:]...)
	g.Trick = append(g.Trick, engine.PlayedCard{PlayerID: p.ID, Card: card})

	if len(g.Trick) < engine.NumPlayers {
		g.CurrentTurn = (g.CurrentTurn + 1) % engine.NumPlayers
		return res, nil
	}

	winIdx := engine.TrickWinner(g.Trick, g.Trump)
	winSeat := playerIndex(g, g.Trick[winIdx].PlayerID)
	winner := &g.Players[winSeat]
	last := engine.RoundOver(g.Players)
	points := engine.TrickPoints(g.Trick, g.Trump, last)

	if winner.Team == 1 {
		g.Scores.Team1 += points
		g.RoundScores.Team1 += points
	} else {
		g.Scores.Team2 += points
		g.RoundScores.Team2 += points
	}
	g.LastTrickWinner = &engine.TrickWin{PlayerName: winner.Name, Points: points}
	g.CurrentTurn = winSeat
	g.Trick = nil

	res.TrickComplete = true
	res.TrickWinner = g.LastTrickWinner
	if last {
		res.RoundOver = true
		if engine.GameOver(g.Scores) {
			g.Status = engine.StatusGameOver
			res.GameOver = true
		} else {
			g.Status = engine.StatusRoundEnd
		}
	}
	return res, nil
}

func playerIndex(g *engine.GameState, playerID string) int {
	for i, p := range g.Players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}
