package models

type LobbyStatus string

const (
	LobbyWaiting LobbyStatus = "WAITING"
	LobbyMatched LobbyStatus = "MATCHED"
)

/*
 * 'LobbyTicket' is a player's place in the matchmaking queue of a game.
 */
type LobbyTicket struct {
	GameID    string      `json:"gameId"`
	PlayerID  string      `json:"playerId"`
	Status    LobbyStatus `json:"status"`
	SessionID string      `json:"sessionId,omitempty"`
}

type LobbyRequest struct {
	PlayerID string `json:"playerId"`
	GameID   string `json:"gameId"`
}
