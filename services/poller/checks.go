package poller

import (
	"Playhub/models"
	"context"
	"fmt"
	"net/url"
)

// LobbyTarget and InvitationTarget name poll targets, one per player and
// game or per invitation
func LobbyTarget(playerID, gameID string) string {
	return fmt.Sprintf("lobby:%s:%s", playerID, gameID)
}

func InvitationTarget(invitationID string) string {
	return fmt.Sprintf("invitation:%s", invitationID)
}

// NotificationsTarget is per socket connection so tabs refresh independently
func NotificationsTarget(connectionID string) string {
	return fmt.Sprintf("notifications:%s", connectionID)
}

// SessionURL is the navigation target of a matched or accepted poll
func SessionURL(gameID, sessionID string) string {
	q := url.Values{}
	q.Set("sessionId", sessionID)
	return "/games/" + url.PathEscape(gameID) + "/play?" + q.Encode()
}

// LobbyCheck interprets lobby tickets: MATCHED with a session id is terminal
// success, anything else keeps polling.
func LobbyCheck(fetch func(ctx context.Context) (models.LobbyTicket, error)) CheckFunc {
	return func(ctx context.Context) (Check, error) {
		ticket, err := fetch(ctx)
		if err != nil {
			return Check{}, err
		}
		return InterpretTicket(ticket), nil
	}
}

func InterpretTicket(ticket models.LobbyTicket) Check {
	c := Check{Status: string(ticket.Status), GameID: ticket.GameID, SessionID: ticket.SessionID}
	if ticket.Status == models.LobbyMatched && ticket.SessionID != "" {
		c.Terminal = true
		c.Success = true
	}
	return c
}

// InvitationCheck interprets invitations: ACCEPTED with a session id is
// terminal success, REJECTED terminal failure, anything else keeps polling.
func InvitationCheck(fetch func(ctx context.Context) (models.Invitation, error)) CheckFunc {
	return func(ctx context.Context) (Check, error) {
		inv, err := fetch(ctx)
		if err != nil {
			return Check{}, err
		}
		return InterpretInvitation(inv), nil
	}
}

func InterpretInvitation(inv models.Invitation) Check {
	c := Check{Status: string(inv.Status), GameID: inv.GameID, SessionID: inv.SessionID}
	switch {
	case inv.Status == models.InvitationAccepted && inv.SessionID != "":
		c.Terminal = true
		c.Success = true
	case inv.Status == models.InvitationRejected:
		c.Terminal = true
	}
	return c
}
