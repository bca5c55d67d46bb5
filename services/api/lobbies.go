package api

import (
	"Playhub/models"
	"context"
	"net/url"
)

// JoinLobby queues the player for gameID. The returned ticket is either
// WAITING or already MATCHED.
func (c *Client) JoinLobby(ctx context.Context, playerID, gameID string) (models.LobbyTicket, error) {
	return postJSON[models.LobbyRequest, models.LobbyTicket](ctx, c, c.baseURL, "/api/lobbies/join",
		models.LobbyRequest{PlayerID: playerID, GameID: gameID})
}

func (c *Client) LobbyStatus(ctx context.Context, playerID, gameID string) (models.LobbyTicket, error) {
	return getJSON[models.LobbyTicket](ctx, c, c.baseURL,
		"/api/lobbies/status/"+url.PathEscape(playerID)+"/"+url.PathEscape(gameID))
}

func (c *Client) LeaveLobby(ctx context.Context, playerID, gameID string) error {
	_, err := postJSON[models.LobbyRequest, struct{}](ctx, c, c.baseURL, "/api/lobbies/leave",
		models.LobbyRequest{PlayerID: playerID, GameID: gameID})
	return err
}
