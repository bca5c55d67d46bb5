package models

// Mark is the symbol a player places on the board
type Mark string

const (
	MarkX    Mark = "X"
	MarkO    Mark = "O"
	MarkNone Mark = ""
)

type SessionStatus string

const (
	SessionInProgress SessionStatus = "in_progress"
	SessionWaiting    SessionStatus = "waiting"
	SessionWin        SessionStatus = "win"
	SessionDraw       SessionStatus = "draw"
)

// IsTerminal reports whether no further moves are expected in the session
func (s SessionStatus) IsTerminal() bool {
	return s == SessionWin || s == SessionDraw
}

// BoardSize is the number of cells of the board game served by the session service
const BoardSize = 9

/*
 * 'GameSession' mirrors the state owned by the game-session service. The
 * gateway never mutates it: every update replaces the whole value.
 * WinProbability, when present, is the probability of winning for the player
 * whose turn it currently is.
 */
type GameSession struct {
	SessionID      string        `json:"session_id"`
	Board          []Mark        `json:"board"`
	CurrentTurn    Mark          `json:"current_turn"`
	Status         SessionStatus `json:"status"`
	Winner         Mark          `json:"winner,omitempty"`
	PlayerXID      string        `json:"player_x_id"`
	PlayerOID      string        `json:"player_o_id,omitempty"`
	WinProbability *float64      `json:"win_probability,omitempty"`
}

// CellEmpty reports whether index (0-based) is inside the board and unmarked
func (s *GameSession) CellEmpty(index int) bool {
	if index < 0 || index >= len(s.Board) {
		return false
	}
	return s.Board[index] == MarkNone
}

// NewSessionRequest creates a session on the game-session service. Mode "ai"
// leaves PlayerOID empty and lets the service play O.
type NewSessionRequest struct {
	PlayerXID string `json:"player_x_id"`
	PlayerOID string `json:"player_o_id,omitempty"`
	Mode      string `json:"mode"`
}

type MoveRequest struct {
	PlayerID string `json:"player_id"`
	Position int    `json:"position"`
}
