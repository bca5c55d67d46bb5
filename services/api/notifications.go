package api

import (
	"Playhub/models"
	"context"
	"net/url"
)

func (c *Client) ListNotifications(ctx context.Context, playerID string) ([]models.Notification, error) {
	return getJSON[[]models.Notification](ctx, c, c.baseURL, "/api/players/"+url.PathEscape(playerID)+"/notifications")
}

func (c *Client) MarkNotificationRead(ctx context.Context, playerID, notificationID string) error {
	return post(ctx, c, c.baseURL,
		"/api/players/"+url.PathEscape(playerID)+"/notifications/"+url.PathEscape(notificationID)+"/read")
}
