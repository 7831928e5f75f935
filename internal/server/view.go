package server

import "github.com/mersetter/jass-game-app/internal/engine"

type PlayerView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Team      int       `json:"team"`
	Hand      []CardDTO `json:"hand,omitempty"`
	HandCount int       `json:"handCount"`
	IsBot     bool      `json:"isBot"`
	Connected bool      `json:"isConnected"`
}

type StateView struct {
	RoomID          string          `json:"roomId"`
	Status          string          `json:"status"`
	Players         []PlayerView    `json:"players"`
	Trump           *string         `json:"trump,omitempty"`
	Trick           []PlayedCardDTO `json:"trick"`
	CurrentTurn     int             `json:"currentTurn"`
	Scores          ScoresDTO       `json:"scores"`
	RoundScores     ScoresDTO       `json:"roundScores"`
	LastTrickWinner *TrickWinDTO    `json:"lastTrickWinner,omitempty"`
	HostID          string          `json:"hostId"`
}

// BuildStateView renders the state for one viewer: only the viewer's own
// hand is spelled out, other hands appear as counts.
func BuildStateView(g engine.GameState, viewerID string) *StateView {
	players := make([]PlayerView, 0, len(g.Players))
	for _, p := range g.Players {
		view := PlayerView{
			ID:        p.ID,
			Name:      p.Name,
			Team:      p.Team,
			HandCount: len(p.Hand),
			IsBot:     p.IsBot,
			Connected: p.Connected,
		}
		if p.ID == viewerID {
			for _, c := range p.Hand {
				view.Hand = append(view.Hand, cardToDTO(c))
			}
		}
		players = append(players, view)
	}
	var trump *string
	if g.Trump != nil {
		s := suitToString(*g.Trump)
		trump = &s
	}
	trick := make([]PlayedCardDTO, 0, len(g.Trick))
	for _, p := range g.Trick {
		trick = append(trick, PlayedCardDTO{PlayerID: p.PlayerID, Card: cardToDTO(p.Card)})
	}
	var lastWin *TrickWinDTO
	if g.LastTrickWinner != nil {
		lastWin = &TrickWinDTO{
			PlayerName: g.LastTrickWinner.PlayerName,
			Points:     g.LastTrickWinner.Points,
		}
	}
	return &StateView{
		RoomID:          g.RoomID,
		Status:          g.Status.String(),
		Players:         players,
		Trump:           trump,
		Trick:           trick,
		CurrentTurn:     g.CurrentTurn,
		Scores:          ScoresDTO{Team1: g.Scores.Team1, Team2: g.Scores.Team2},
		RoundScores:     ScoresDTO{Team1: g.RoundScores.Team1, Team2: g.RoundScores.Team2},
		LastTrickWinner: lastWin,
		HostID:          g.HostID,
	}
}
