package handlers

import (
	"context"

	platform "Playhub/constants/platform"
	"Playhub/models"
	"Playhub/services/poller"
	"Playhub/utils/logger"
)

// NotificationsPayload is pushed to the browser on every refresh
type NotificationsPayload struct {
	Notifications []models.Notification `json:"notifications"`
	Unread        int                   `json:"unread"`
}

// StartNotificationRefresh pushes the player's notifications now and then
// every notification interval until the socket goes away
func StartNotificationRefresh(conn *Connection) {
	conn.deps.Polls.Every(conn.ctx, conn.notificationsTarget(), conn.deps.NotificationPollInterval,
		func(ctx context.Context) error {
			client, err := conn.api()
			if err != nil {
				return err
			}
			list, err := client.ListNotifications(ctx, conn.PlayerID())
			if err != nil {
				return err
			}
			if ctx.Err() != nil {
				return nil
			}
			conn.client.Emit(platform.EVENT_NOTIFICATIONS, Summarize(list))
			return nil
		},
		func(out poller.Outcome) {
			conn.client.Emit(platform.EVENT_POLL_FAILED, out)
		})
	logger.Debugf("[NOTIFY] refreshing notifications of %s", conn.session.Username)
}

func Summarize(list []models.Notification) NotificationsPayload {
	if list == nil {
		list = []models.Notification{}
	}
	unread := 0
	for _, n := range list {
		if !n.Read {
			unread++
		}
	}
	return NotificationsPayload{Notifications: list, Unread: unread}
}
