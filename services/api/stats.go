package api

import (
	"Playhub/models"
	"context"
	"net/url"
)

func (c *Client) PlayerStats(ctx context.Context, playerID string) (models.PlayerStats, error) {
	return getJSON[models.PlayerStats](ctx, c, c.baseURL, "/api/players/"+url.PathEscape(playerID)+"/stats")
}

func (c *Client) PlayerGameStats(ctx context.Context, playerID, gameID string) (models.GameStats, error) {
	return getJSON[models.GameStats](ctx, c, c.baseURL,
		"/api/players/"+url.PathEscape(playerID)+"/games/"+url.PathEscape(gameID)+"/stats")
}
