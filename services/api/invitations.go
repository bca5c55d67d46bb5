package api

import (
	"Playhub/models"
	"context"
	"net/url"
)

func (c *Client) CreateInvitation(ctx context.Context, inv models.NewInvitation) (models.Invitation, error) {
	return postJSON[models.NewInvitation, models.Invitation](ctx, c, c.baseURL, "/api/invitations", inv)
}

func (c *Client) GetInvitation(ctx context.Context, invitationID string) (models.Invitation, error) {
	return getJSON[models.Invitation](ctx, c, c.baseURL, "/api/invitations/"+url.PathEscape(invitationID))
}

// PendingInvitations lists the invitations the player has received and not answered
func (c *Client) PendingInvitations(ctx context.Context, playerID string) ([]models.Invitation, error) {
	return getJSON[[]models.Invitation](ctx, c, c.baseURL, "/api/invitations/pending/"+url.PathEscape(playerID))
}

func (c *Client) AcceptInvitation(ctx context.Context, invitationID string) (models.Invitation, error) {
	return postJSON[struct{}, models.Invitation](ctx, c, c.baseURL,
		"/api/invitations/"+url.PathEscape(invitationID)+"/accept", struct{}{})
}

func (c *Client) RejectInvitation(ctx context.Context, invitationID string) (models.Invitation, error) {
	return postJSON[struct{}, models.Invitation](ctx, c, c.baseURL,
		"/api/invitations/"+url.PathEscape(invitationID)+"/reject", struct{}{})
}
