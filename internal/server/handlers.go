package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mersetter/jass-game-app/internal/game"
	"github.com/mersetter/jass-game-app/internal/room"
)

// Server wires the HTTP request surface to the room manager and the hub.
type Server struct {
	mgr *room.Manager
	hub *Hub
}

func New(mgr *room.Manager, hub *Hub) *Server {
	return &Server{mgr: mgr, hub: hub}
}

// Routes registers all endpoints on mux.
func (s *Server) Routes(mux *http.ServeMux) {
	mux.HandleFunc("/api/room", s.HandleRoom)
	mux.HandleFunc("/api/room/join", s.HandleJoinRoom)
	mux.HandleFunc("/api/room/leave", s.HandleLeaveRoom)
	mux.HandleFunc("/api/game/start", s.HandleStartGame)
	mux.HandleFunc("/api/game/play", s.HandlePlayCard)
	mux.HandleFunc("/api/game/next", s.HandleNextRound)
	mux.HandleFunc("/ws", s.HandleWS)
}

// HandleRoom creates a room (POST) or fetches one (GET ?id=).
func (s *Server) HandleRoom(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req CreateRoomRequest
		if !decodeBody(w, r, &req) {
			return
		}
		name := strings.TrimSpace(req.PlayerName)
		if name == "" {
			writeError(w, http.StatusBadRequest, "bad_request", "player name required")
			return
		}
		st, code, playerID, err := s.mgr.CreateRoom(name)
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, CreateRoomResponse{
			RoomID:   code,
			PlayerID: playerID,
			State:    BuildStateView(st, playerID),
		})
	case http.MethodGet:
		code := r.URL.Query().Get("id")
		if code == "" {
			writeError(w, http.StatusBadRequest, "bad_request", "room id required")
			return
		}
		st, err := s.mgr.State(code)
		if err != nil {
			writeGameError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, StateResponse{State: BuildStateView(st, "")})
	default:
		writeError(w, http.StatusMethodNotAllowed, "bad_request", "method not allowed")
	}
}

func (s *Server) HandleJoinRoom(w http.ResponseWriter, r *http.Request) {
	var req JoinRoomRequest
	if !requirePost(w, r) || !decodeBody(w, r, &req) {
		return
	}
	name := strings.TrimSpace(req.PlayerName)
	if req.RoomID == "" || name == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "room id and player name required")
		return
	}
	st, playerID, err := s.mgr.Join(req.RoomID, name)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, JoinRoomResponse{
		PlayerID: playerID,
		State:    BuildStateView(st, playerID),
	})
}

func (s *Server) HandleLeaveRoom(w http.ResponseWriter, r *http.Request) {
	var req LeaveRoomRequest
	if !requirePost(w, r) || !decodeBody(w, r, &req) {
		return
	}
	if req.RoomID == "" || req.PlayerID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "room id and player id required")
		return
	}
	if err := s.mgr.Leave(req.RoomID, req.PlayerID); err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) HandleStartGame(w http.ResponseWriter, r *http.Request) {
	var req StartGameRequest
	if !requirePost(w, r) || !decodeBody(w, r, &req) {
		return
	}
	if req.RoomID == "" || req.PlayerID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "room id and player id required")
		return
	}
	st, err := s.mgr.Start(req.RoomID, req.PlayerID)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, StateResponse{State: BuildStateView(st, req.PlayerID)})
}

func (s *Server) HandlePlayCard(w http.ResponseWriter, r *http.Request) {
	var req PlayCardRequest
	if !requirePost(w, r) || !decodeBody(w, r, &req) {
		return
	}
	if req.RoomID == "" || req.PlayerID == "" || req.CardIndex == nil {
		writeError(w, http.StatusBadRequest, "bad_request", "room id, player id and card index required")
		return
	}
	st, _, err := s.mgr.Play(req.RoomID, req.PlayerID, *req.CardIndex)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, StateResponse{State: BuildStateView(st, req.PlayerID)})
}

func (s *Server) HandleNextRound(w http.ResponseWriter, r *http.Request) {
	var req NextRoundRequest
	if !requirePost(w, r) || !decodeBody(w, r, &req) {
		return
	}
	if req.RoomID == "" || req.PlayerID == "" {
		writeError(w, http.StatusBadRequest, "bad_request", "room id and player id required")
		return
	}
	st, err := s.mgr.NextRound(req.RoomID, req.PlayerID)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, StateResponse{State: BuildStateView(st, req.PlayerID)})
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "bad_request", "method not allowed")
		return false
	}
	return true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", "invalid json")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg, Code: code})
}

// writeGameError maps controller sentinels to stable wire codes so clients
// can branch on them.
func writeGameError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	code := "internal"
	switch {
	case errors.Is(err, game.ErrRoomNotFound):
		status, code = http.StatusNotFound, "room_not_found"
	case errors.Is(err, game.ErrGameNotInLobby):
		code = "game_already_started"
	case errors.Is(err, game.ErrRoomFull):
		code = "room_full"
	case errors.Is(err, game.ErrAlreadyJoined):
		code = "already_joined"
	case errors.Is(err, game.ErrNotHost):
		code = "not_host"
	case errors.Is(err, game.ErrNoPlayers):
		code = "no_players"
	case errors.Is(err, game.ErrGameNotStarted):
		code = "game_not_started"
	case errors.Is(err, game.ErrPlayerNotFound):
		code = "player_not_found"
	case errors.Is(err, game.ErrNotYourTurn):
		code = "not_your_turn"
	case errors.Is(err, game.ErrInvalidCard):
		code = "invalid_card"
	case errors.Is(err, game.ErrIllegalMove):
		code = "illegal_move"
	case errors.Is(err, game.ErrRoundNotOver):
		code = "round_not_over"
	default:
		status = http.StatusInternalServerError
	}
	writeError(w, status, code, err.Error())
}
