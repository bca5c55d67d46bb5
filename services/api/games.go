package api

import (
	platform "Playhub/constants/platform"
	"Playhub/models"
	redis_utils "Playhub/services/redis/utils"
	"context"
	"net/url"
)

func (c *Client) ListGames(ctx context.Context) ([]models.Game, error) {
	return cachedGetJSON[[]models.Game](ctx, c, redis_utils.FormatGameCatalogKey(),
		platform.CATALOG_CACHE_TTL, "/api/games")
}

func (c *Client) GetGame(ctx context.Context, gameID string) (models.Game, error) {
	return cachedGetJSON[models.Game](ctx, c, redis_utils.FormatGameKey(gameID),
		platform.CATALOG_CACHE_TTL, "/api/games/"+url.PathEscape(gameID))
}

// CreateGame adds a catalog entry (admin panel)
func (c *Client) CreateGame(ctx context.Context, game models.Game) (models.Game, error) {
	created, err := postJSON[models.Game, models.Game](ctx, c, c.baseURL, "/api/games", game)
	if err != nil {
		return created, err
	}
	c.invalidate(ctx, redis_utils.FormatGameCatalogKey())
	return created, nil
}
