package api

import (
	"Playhub/models"
	"context"
	"net/url"
)

// Game-session service, served from the secondary base URL

func (c *Client) CreateSession(ctx context.Context, req models.NewSessionRequest) (models.GameSession, error) {
	return postJSON[models.NewSessionRequest, models.GameSession](ctx, c, c.gameBaseURL, "/api/python-games", req)
}

func (c *Client) GetSession(ctx context.Context, sessionID string) (models.GameSession, error) {
	return getJSON[models.GameSession](ctx, c, c.gameBaseURL, "/api/python-games/"+url.PathEscape(sessionID))
}

// MakeMove submits a 1-based board position and returns the authoritative state
func (c *Client) MakeMove(ctx context.Context, sessionID string, move models.MoveRequest) (models.GameSession, error) {
	return postJSON[models.MoveRequest, models.GameSession](ctx, c, c.gameBaseURL,
		"/api/python-games/"+url.PathEscape(sessionID)+"/move", move)
}
