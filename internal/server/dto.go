package server

import "github.com/mersetter/jass-game-app/internal/engine"

// Wire representation of a card: spelled-out suit, short rank.
type CardDTO struct {
	Suit string `json:"suit"`
	Rank string `json:"rank"`
}

type PlayedCardDTO struct {
	PlayerID string  `json:"playerId"`
	Card     CardDTO `json:"card"`
}

type ScoresDTO struct {
	Team1 int `json:"team1"`
	Team2 int `json:"team2"`
}

type TrickWinDTO struct {
	PlayerName string `json:"playerName"`
	Points     int    `json:"points"`
}

func suitToString(s engine.Suit) string {
	switch s {
	case engine.SuitHearts:
		return "HEARTS"
	case engine.SuitDiamonds:
		return "DIAMONDS"
	case engine.SuitClubs:
		return "CLUBS"
	case engine.SuitSpades:
		return "SPADES"
	default:
		return "UNKNOWN"
	}
}

func cardToDTO(c engine.Card) CardDTO {
	return CardDTO{Suit: suitToString(c.Suit), Rank: c.Rank.String()}
}

// Request/response bodies for the JSON endpoints.

type CreateRoomRequest struct {
	PlayerName string `json:"playerName"`
}

type CreateRoomResponse struct {
	RoomID   string     `json:"roomId"`
	PlayerID string     `json:"playerId"`
	State    *StateView `json:"state"`
}

type JoinRoomRequest struct {
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
}

type JoinRoomResponse struct {
	PlayerID string     `json:"playerId"`
	State    *StateView `json:"state"`
}

type StartGameRequest struct {
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId"`
}

type PlayCardRequest struct {
	RoomID    string `json:"roomId"`
	PlayerID  string `json:"playerId"`
	CardIndex *int   `json:"cardIndex"`
}

type NextRoundRequest struct {
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId"`
}

type LeaveRoomRequest struct {
	RoomID   string `json:"roomId"`
	PlayerID string `json:"playerId"`
}

type StateResponse struct {
	State *StateView `json:"state"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
