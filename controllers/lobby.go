package controllers

import (
	"context"
	"net/http"

	"Playhub/models"
	"Playhub/services/poller"
	"Playhub/utils"
	"Playhub/utils/logger"

	"github.com/gin-gonic/gin"
)

// @Summary Joins the matchmaking lobby of a game
// @Description A matched ticket answers with the session URL right away. A waiting ticket starts a status poll whose outcome is pushed over the socket (navigate / poll_failed).
// @Tags lobby
// @Produce json
// @Param gameId path string true "Game id"
// @Success 200 {object} object{ticket=models.LobbyTicket,poll=poller.Outcome,url=string}
// @Failure 502 {object} object{error=string}
// @Router /auth/games/{gameId}/lobby [post]
// @Security ApiKeyAuth
func JoinLobby(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, s, ok := env.client(c)
		if !ok {
			return
		}
		gameID := c.Param("gameId")

		ticket, err := client.JoinLobby(c.Request.Context(), s.PlayerID, gameID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		if ticket.GameID == "" {
			ticket.GameID = gameID
		}

		target := poller.LobbyTarget(s.PlayerID, gameID)
		if check := poller.InterpretTicket(ticket); check.Success {
			env.Polls.Stop(target)
			c.JSON(http.StatusOK, gin.H{"ticket": ticket, "url": poller.SessionURL(gameID, ticket.SessionID)})
			return
		}

		sessionID := s.ID
		playerID := s.PlayerID
		env.Polls.Start(context.Background(), target, env.LobbyPollInterval,
			poller.LobbyCheck(func(ctx context.Context) (models.LobbyTicket, error) {
				client, err := env.clientFor(sessionID)
				if err != nil {
					return models.LobbyTicket{}, err
				}
				t, err := client.LobbyStatus(ctx, playerID, gameID)
				if t.GameID == "" {
					t.GameID = gameID
				}
				return t, err
			}),
			env.notify(playerID))

		c.JSON(http.StatusOK, gin.H{"ticket": ticket, "poll": env.Polls.Last(target)})
	}
}

// @Summary State of the lobby poll
// @Tags lobby
// @Produce json
// @Param gameId path string true "Game id"
// @Success 200 {object} poller.Outcome
// @Router /auth/games/{gameId}/lobby [get]
// @Security ApiKeyAuth
func LobbyPoll(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, s, ok := env.client(c)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, env.Polls.Last(poller.LobbyTarget(s.PlayerID, c.Param("gameId"))))
	}
}

// @Summary Leaves the lobby of a game
// @Description Stops the status poll and gives the ticket back
// @Tags lobby
// @Produce json
// @Param gameId path string true "Game id"
// @Success 200 {object} object{message=string}
// @Router /auth/games/{gameId}/lobby [delete]
// @Security ApiKeyAuth
func LeaveLobby(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, s, ok := env.client(c)
		if !ok {
			return
		}
		gameID := c.Param("gameId")
		if env.Polls.Stop(poller.LobbyTarget(s.PlayerID, gameID)) {
			logger.Infof("[POLL] %s left the lobby of %s", s.Username, gameID)
		}
		if err := client.LeaveLobby(c.Request.Context(), s.PlayerID, gameID); err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Left the lobby"})
	}
}
