package api

import (
	platform "Playhub/constants/platform"
	"Playhub/models"
	redis_utils "Playhub/services/redis/utils"
	"context"
	"net/url"
)

// Me returns the profile of the token's owner
func (c *Client) Me(ctx context.Context) (models.Player, error) {
	return getJSON[models.Player](ctx, c, c.baseURL, "/api/players/me")
}

func (c *Client) GetPlayer(ctx context.Context, playerID string) (models.Player, error) {
	return cachedGetJSON[models.Player](ctx, c, redis_utils.FormatPlayerKey(playerID),
		platform.PLAYER_CACHE_TTL, "/api/players/"+url.PathEscape(playerID))
}

func (c *Client) SearchPlayers(ctx context.Context, username string) ([]models.Player, error) {
	return getJSON[[]models.Player](ctx, c, c.baseURL, "/api/players/search?username="+url.QueryEscape(username))
}

// ListPlayers returns every player (admin panel)
func (c *Client) ListPlayers(ctx context.Context) ([]models.Player, error) {
	return getJSON[[]models.Player](ctx, c, c.baseURL, "/api/players")
}

func (c *Client) ListFriends(ctx context.Context, playerID string) ([]models.Player, error) {
	return cachedGetJSON[[]models.Player](ctx, c, redis_utils.FormatPlayerFriendsKey(playerID),
		platform.PLAYER_CACHE_TTL, "/api/players/"+url.PathEscape(playerID)+"/friends")
}

func (c *Client) AddFriend(ctx context.Context, playerID, friendID string) error {
	err := post(ctx, c, c.baseURL, "/api/players/"+url.PathEscape(playerID)+"/friends/"+url.PathEscape(friendID))
	c.invalidateFriendship(ctx, playerID, friendID)
	return err
}

func (c *Client) RemoveFriend(ctx context.Context, playerID, friendID string) error {
	err := post(ctx, c, c.baseURL, "/api/players/"+url.PathEscape(playerID)+"/friends/"+url.PathEscape(friendID)+"/remove")
	c.invalidateFriendship(ctx, playerID, friendID)
	return err
}

// ToggleFavorite adds or removes gameID from the player's favourites and
// returns the updated player
func (c *Client) ToggleFavorite(ctx context.Context, playerID, gameID string) (models.Player, error) {
	player, err := postJSON[struct{}, models.Player](ctx, c, c.baseURL,
		"/api/players/"+url.PathEscape(playerID)+"/favorites/"+url.PathEscape(gameID), struct{}{})
	c.invalidate(ctx, redis_utils.FormatPlayerKey(playerID))
	return player, err
}

// Both sides of a friendship are invalidated, even when the call failed,
// since the server may have applied it before erroring.
func (c *Client) invalidateFriendship(ctx context.Context, playerID, friendID string) {
	c.invalidate(ctx,
		redis_utils.FormatPlayerKey(playerID),
		redis_utils.FormatPlayerKey(friendID),
		redis_utils.FormatPlayerFriendsKey(playerID),
		redis_utils.FormatPlayerFriendsKey(friendID),
	)
}
