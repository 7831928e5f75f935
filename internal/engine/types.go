package engine

import "fmt"

type Suit int

type Rank int

const (
	SuitHearts Suit = iota
	SuitDiamonds
	SuitClubs
	SuitSpades
)

const (
	Rank6 Rank = iota
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ
	RankQ
	RankK
	RankA
)

const (
	// NumPlayers is fixed: Schieber is a four-player partnership game.
	NumPlayers = 4
	// HandSize cards per player; NumPlayers * HandSize exhausts the deck.
	HandSize = 9
	// DeckSize is the full Jass deck, nine ranks in four suits.
	DeckSize = 36
	// WinScore ends the game once a team's cumulative score reaches it,
	// checked only at round boundaries.
	WinScore = 1000
	// LastTrickBonus is added to the card points of a round's final trick.
	LastTrickBonus = 5
)

func (s Suit) String() string {
	switch s {
	case SuitHearts:
		return "H"
	case SuitDiamonds:
		return "D"
	case SuitClubs:
		return "C"
	case SuitSpades:
		return "S"
	default:
		return "?"
	}
}

func (r Rank) String() string {
	switch r {
	case Rank6:
		return "6"
	case Rank7:
		return "7"
	case Rank8:
		return "8"
	case Rank9:
		return "9"
	case Rank10:
		return "10"
	case RankJ:
		return "J"
	case RankQ:
		return "Q"
	case RankK:
		return "K"
	case RankA:
		return "A"
	default:
		return "?"
	}
}

type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank.String(), c.Suit.String())
}

// PlayedCard is one entry of a trick: a card plus who played it.
type PlayedCard struct {
	PlayerID string
	Card     Card
}

type Status int

const (
	StatusLobby Status = iota
	StatusPlaying
	StatusRoundEnd
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusLobby:
		return "LOBBY"
	case StatusPlaying:
		return "PLAYING"
	case StatusRoundEnd:
		return "ROUND_END"
	case StatusGameOver:
		return "GAME_OVER"
	default:
		return "?"
	}
}

type Player struct {
	ID        string
	Name      string
	Team      int // 1 or 2, fixed by join-order parity
	Hand      []Card
	IsBot     bool
	Connected bool
}

// Scores holds one point total per team.
type Scores struct {
	Team1 int
	Team2 int
}

// TrickWin records who took the most recent trick and for how many points.
type TrickWin struct {
	PlayerName string
	Points     int
}

// GameState is the aggregate root for a single room. It is plain data:
// the game package owns the transitions and the room package owns the
// per-room serialization.
type GameState struct {
	RoomID          string
	HostID          string
	Status          Status
	Players         []Player
	Trump           *Suit
	Trick           []PlayedCard
	CurrentTurn     int // index into Players
	Scores          Scores
	RoundScores     Scores
	LastTrickWinner *TrickWin
}

// RoundOver reports whether every hand has been played out.
func RoundOver(players []Player) bool {
	for _, p := range players {
		if len(p.Hand) > 0 {
			return false
		}
	}
	return true
}

// GameOver reports whether either team has reached the win score.
func GameOver(s Scores) bool {
	return s.Team1 >= WinScore || s.Team2 >= WinScore
}

// WinningTeam returns 1 or 2, or 0 while neither team has won.
func WinningTeam(s Scores) int {
	if s.Team1 >= WinScore {
		return 1
	}
	if s.Team2 >= WinScore {
		return 2
	}
	return 0
}
