package controllers

import (
	"context"
	"net/http"

	"Playhub/models"
	"Playhub/services/poller"
	"Playhub/services/socket_io/handlers"
	"Playhub/utils"

	"github.com/gin-gonic/gin"
)

type invitationRequest struct {
	InviteeID string `json:"inviteeId" binding:"required"`
	GameID    string `json:"gameId" binding:"required"`
}

// @Summary Invites a player to a game
// @Description A pending invitation starts a status poll. Acceptance is pushed over the socket as navigate, rejection as invitation_rejected.
// @Tags invitations
// @Accept json
// @Produce json
// @Param invitation body invitationRequest true "Invitee and game"
// @Success 200 {object} object{invitation=models.Invitation,poll=poller.Outcome}
// @Failure 400 {object} object{error=string}
// @Router /auth/invitations [post]
// @Security ApiKeyAuth
func CreateInvitation(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, s, ok := env.client(c)
		if !ok {
			return
		}
		var req invitationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.RespondError(c, utils.BadRequest("%v", err))
			return
		}
		if req.InviteeID == s.PlayerID {
			utils.RespondError(c, utils.BadRequest("you can't invite yourself"))
			return
		}

		inv, err := client.CreateInvitation(c.Request.Context(), models.NewInvitation{
			InviterID: s.PlayerID,
			InviteeID: req.InviteeID,
			GameID:    req.GameID,
		})
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		if inv.Status != models.InvitationPending {
			c.JSON(http.StatusOK, gin.H{"invitation": inv})
			return
		}

		target := poller.InvitationTarget(inv.ID)
		sessionID := s.ID
		env.Polls.Start(context.Background(), target, env.LobbyPollInterval,
			poller.InvitationCheck(func(ctx context.Context) (models.Invitation, error) {
				client, err := env.clientFor(sessionID)
				if err != nil {
					return models.Invitation{}, err
				}
				return client.GetInvitation(ctx, inv.ID)
			}),
			env.notify(s.PlayerID))

		c.JSON(http.StatusOK, gin.H{"invitation": inv, "poll": env.Polls.Last(target)})
	}
}

// @Summary Pending invitations received by the player
// @Tags invitations
// @Produce json
// @Success 200 {array} models.Invitation
// @Router /auth/invitations [get]
// @Security ApiKeyAuth
func ListInvitations(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, s, ok := env.client(c)
		if !ok {
			return
		}
		list, err := client.PendingInvitations(c.Request.Context(), s.PlayerID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		if list == nil {
			list = []models.Invitation{}
		}
		c.JSON(http.StatusOK, list)
	}
}

// @Summary An invitation and the state of its poll
// @Tags invitations
// @Produce json
// @Param id path string true "Invitation id"
// @Success 200 {object} object{invitation=models.Invitation,poll=poller.Outcome}
// @Router /auth/invitations/{id} [get]
// @Security ApiKeyAuth
func GetInvitation(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, _, ok := env.client(c)
		if !ok {
			return
		}
		id := c.Param("id")
		inv, err := client.GetInvitation(c.Request.Context(), id)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"invitation": inv, "poll": env.Polls.Last(poller.InvitationTarget(id))})
	}
}

// @Summary Accepts an invitation
// @Tags invitations
// @Produce json
// @Param id path string true "Invitation id"
// @Success 200 {object} object{invitation=models.Invitation,url=string}
// @Router /auth/invitations/{id}/accept [post]
// @Security ApiKeyAuth
func AcceptInvitation(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, _, ok := env.client(c)
		if !ok {
			return
		}
		inv, err := client.AcceptInvitation(c.Request.Context(), c.Param("id"))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		resp := gin.H{"invitation": inv}
		if inv.SessionID != "" {
			resp["url"] = poller.SessionURL(inv.GameID, inv.SessionID)
		}
		c.JSON(http.StatusOK, resp)
	}
}

// @Summary Rejects an invitation
// @Tags invitations
// @Produce json
// @Param id path string true "Invitation id"
// @Success 200 {object} object{invitation=models.Invitation}
// @Router /auth/invitations/{id}/reject [post]
// @Security ApiKeyAuth
func RejectInvitation(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, _, ok := env.client(c)
		if !ok {
			return
		}
		inv, err := client.RejectInvitation(c.Request.Context(), c.Param("id"))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"invitation": inv})
	}
}

// @Summary Notifications of the player
// @Tags notifications
// @Produce json
// @Success 200 {object} handlers.NotificationsPayload
// @Router /auth/notifications [get]
// @Security ApiKeyAuth
func ListNotifications(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, s, ok := env.client(c)
		if !ok {
			return
		}
		list, err := client.ListNotifications(c.Request.Context(), s.PlayerID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, handlers.Summarize(list))
	}
}

// @Summary Marks a notification as read
// @Tags notifications
// @Produce json
// @Param id path string true "Notification id"
// @Success 200 {object} object{message=string}
// @Router /auth/notifications/{id}/read [post]
// @Security ApiKeyAuth
func MarkNotificationRead(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, s, ok := env.client(c)
		if !ok {
			return
		}
		if err := client.MarkNotificationRead(c.Request.Context(), s.PlayerID, c.Param("id")); err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Notification read"})
	}
}
