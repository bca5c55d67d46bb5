package api

import (
	"Playhub/models"
	"context"
	"net/url"
)

func (c *Client) ListAchievements(ctx context.Context) ([]models.Achievement, error) {
	return getJSON[[]models.Achievement](ctx, c, c.baseURL, "/api/achievements")
}

// PlayerAchievements returns the achievements with the player's unlock state
func (c *Client) PlayerAchievements(ctx context.Context, playerID string) ([]models.Achievement, error) {
	return getJSON[[]models.Achievement](ctx, c, c.baseURL, "/api/players/"+url.PathEscape(playerID)+"/achievements")
}

// CreateAchievement registers a new achievement (admin panel)
func (c *Client) CreateAchievement(ctx context.Context, achievement models.Achievement) (models.Achievement, error) {
	return postJSON[models.Achievement, models.Achievement](ctx, c, c.baseURL, "/api/achievements", achievement)
}
