package controllers

import (
	"net/http"

	"Playhub/models"
	"Playhub/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Every registered player
// @Tags admin
// @Produce json
// @Success 200 {array} models.Player
// @Failure 403 {object} object{error=string}
// @Router /auth/admin/players [get]
// @Security ApiKeyAuth
func AdminListPlayers(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, _, ok := env.client(c)
		if !ok {
			return
		}
		players, err := client.ListPlayers(c.Request.Context())
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, players)
	}
}

// @Summary Game catalog
// @Tags admin
// @Produce json
// @Success 200 {array} models.Game
// @Router /auth/admin/games [get]
// @Security ApiKeyAuth
func AdminListGames(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, _, ok := env.client(c)
		if !ok {
			return
		}
		games, err := client.ListGames(c.Request.Context())
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, games)
	}
}

// @Summary Adds a game to the catalog
// @Tags admin
// @Accept json
// @Produce json
// @Param game body models.Game true "Game"
// @Success 201 {object} models.Game
// @Failure 400 {object} object{error=string}
// @Router /auth/admin/games [post]
// @Security ApiKeyAuth
func AdminCreateGame(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, _, ok := env.client(c)
		if !ok {
			return
		}
		var game models.Game
		if err := c.ShouldBindJSON(&game); err != nil {
			utils.RespondError(c, utils.BadRequest("%v", err))
			return
		}
		if game.Name == "" {
			utils.RespondError(c, utils.BadRequest("name is required"))
			return
		}
		created, err := client.CreateGame(c.Request.Context(), game)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// @Summary Adds an achievement
// @Tags admin
// @Accept json
// @Produce json
// @Param achievement body models.Achievement true "Achievement"
// @Success 201 {object} models.Achievement
// @Failure 400 {object} object{error=string}
// @Router /auth/admin/achievements [post]
// @Security ApiKeyAuth
func AdminCreateAchievement(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, _, ok := env.client(c)
		if !ok {
			return
		}
		var achievement models.Achievement
		if err := c.ShouldBindJSON(&achievement); err != nil {
			utils.RespondError(c, utils.BadRequest("%v", err))
			return
		}
		if achievement.Name == "" {
			utils.RespondError(c, utils.BadRequest("name is required"))
			return
		}
		created, err := client.CreateAchievement(c.Request.Context(), achievement)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}
