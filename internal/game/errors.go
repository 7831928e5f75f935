package game

import "errors"

// Every rejection a caller can recover from gets its own sentinel so the
// transport layer can map it to a stable wire code.
var (
	ErrRoomNotFound    = errors.New("room not found")
	ErrGameNotInLobby  = errors.New("game already started")
	ErrRoomFull        = errors.New("room is full")
	ErrAlreadyJoined   = errors.New("player already joined")
	ErrNotHost         = errors.New("only the host may do that")
	ErrNoPlayers       = errors.New("no players seated")
	ErrGameNotStarted  = errors.New("game not in progress")
	ErrPlayerNotFound  = errors.New("player not found")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrInvalidCard     = errors.New("invalid card index")
	ErrIllegalMove     = errors.New("illegal move")
	ErrRoundNotOver    = errors.New("round not over")
)
