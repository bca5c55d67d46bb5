package controllers

import (
	"net/http"

	platform "Playhub/constants/platform"
	"Playhub/models"
	"Playhub/services/poller"
	"Playhub/services/session"
	"Playhub/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Game detail page
// @Tags games
// @Produce json
// @Param gameId path string true "Game id"
// @Success 200 {object} object{game=models.Game,favorite=bool}
// @Failure 404 {object} object{error=string}
// @Router /auth/games/{gameId} [get]
// @Security ApiKeyAuth
func GetGame(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, _, ok := env.client(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		game, err := client.GetGame(ctx, c.Param("gameId"))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		player, err := client.Me(ctx)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"game": game, "favorite": player.IsFavorite(game.ID)})
	}
}

// @Summary Toggles a game in the player's favourites
// @Tags games
// @Produce json
// @Param gameId path string true "Game id"
// @Success 200 {object} object{favorite=bool}
// @Router /auth/games/{gameId}/favorite [post]
// @Security ApiKeyAuth
func ToggleFavorite(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, s, ok := env.client(c)
		if !ok {
			return
		}
		gameID := c.Param("gameId")
		player, err := client.ToggleFavorite(c.Request.Context(), s.PlayerID, gameID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"favorite": player.IsFavorite(gameID), "favoriteGames": player.FavoriteGames})
	}
}

// @Summary Per-game statistics of the player
// @Tags games
// @Produce json
// @Param gameId path string true "Game id"
// @Success 200 {object} object{stats=models.GameStats,winRate=number}
// @Router /auth/games/{gameId}/stats [get]
// @Security ApiKeyAuth
func GameStats(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, s, ok := env.client(c)
		if !ok {
			return
		}
		stats, err := client.PlayerGameStats(c.Request.Context(), s.PlayerID, c.Param("gameId"))
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"stats": stats, "winRate": stats.WinRate()})
	}
}

// @Summary Game session page
// @Description Snapshot of the session as seen by the player. Live updates come over the socket (join_game).
// @Tags games
// @Produce json
// @Param gameId path string true "Game id"
// @Param sessionId query string true "Session id"
// @Success 200 {object} session.Snapshot
// @Failure 400 {object} object{error=string}
// @Router /auth/games/{gameId}/play [get]
// @Security ApiKeyAuth
func PlaySession(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, s, ok := env.client(c)
		if !ok {
			return
		}
		sessionID := c.Query("sessionId")
		if sessionID == "" {
			utils.RespondError(c, utils.BadRequest("sessionId is required"))
			return
		}
		state, err := client.GetSession(c.Request.Context(), sessionID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		view := session.NewView(session.Config{SessionID: sessionID, PlayerID: s.PlayerID})
		defer view.Close()
		view.ApplyUpdate(state)
		c.JSON(http.StatusOK, view.Snapshot())
	}
}

// @Summary Starts a game against the computer
// @Tags games
// @Produce json
// @Param gameId path string true "Game id"
// @Success 200 {object} object{session=models.GameSession,url=string}
// @Router /auth/games/{gameId}/ai [post]
// @Security ApiKeyAuth
func CreateAISession(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, s, ok := env.client(c)
		if !ok {
			return
		}
		state, err := client.CreateSession(c.Request.Context(), models.NewSessionRequest{
			PlayerXID: s.PlayerID,
			Mode:      platform.SESSION_MODE_AI,
		})
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"session": state, "url": poller.SessionURL(c.Param("gameId"), state.SessionID)})
	}
}
