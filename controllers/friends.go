package controllers

import (
	"net/http"
	"strings"

	"Playhub/models"
	"Playhub/utils"

	"github.com/gin-gonic/gin"
)

// @Summary Lists the player's friends
// @Description Friends are filtered locally by the search term. With a search term, players matching it who are not friends yet are returned too.
// @Tags friends
// @Produce json
// @Param search query string false "Username filter"
// @Success 200 {object} object{friends=[]models.Player,suggestions=[]models.Player,count=int}
// @Failure 401 {object} object{error=string}
// @Router /auth/friends [get]
// @Security ApiKeyAuth
func ListFriends(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, s, ok := env.client(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		search := strings.TrimSpace(c.Query("search"))

		friends, err := client.ListFriends(ctx, s.PlayerID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		suggestions := []models.Player{}
		if search != "" {
			found, err := client.SearchPlayers(ctx, search)
			if err != nil {
				utils.RespondError(c, err)
				return
			}
			suggestions = NotFriends(found, friends, s.PlayerID)
		}

		c.JSON(http.StatusOK, gin.H{
			"friends":     FilterByUsername(friends, search),
			"suggestions": suggestions,
			"count":       len(friends),
		})
	}
}

// FilterByUsername keeps players whose username contains search, ignoring case
func FilterByUsername(players []models.Player, search string) []models.Player {
	needle := strings.ToLower(strings.TrimSpace(search))
	out := []models.Player{}
	for _, p := range players {
		if needle == "" || strings.Contains(strings.ToLower(p.Username), needle) {
			out = append(out, p)
		}
	}
	return out
}

// NotFriends drops self and current friends from candidates
func NotFriends(candidates, friends []models.Player, selfID string) []models.Player {
	known := map[string]bool{selfID: true}
	for _, f := range friends {
		known[f.ID] = true
	}
	out := []models.Player{}
	for _, p := range candidates {
		if !known[p.ID] {
			out = append(out, p)
		}
	}
	return out
}

// @Summary Adds a friend
// @Tags friends
// @Produce json
// @Param friendId path string true "Id of the new friend"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} object{error=string}
// @Router /auth/friends/{friendId} [post]
// @Security ApiKeyAuth
func AddFriend(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, s, ok := env.client(c)
		if !ok {
			return
		}
		friendID := c.Param("friendId")
		if friendID == s.PlayerID {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You can't add yourself as a friend"})
			return
		}
		if err := client.AddFriend(c.Request.Context(), s.PlayerID, friendID); err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Friend added"})
	}
}

// @Summary Removes a friend
// @Tags friends
// @Produce json
// @Param friendId path string true "Id of the friend"
// @Success 200 {object} object{message=string}
// @Router /auth/friends/{friendId}/remove [post]
// @Security ApiKeyAuth
func RemoveFriend(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, s, ok := env.client(c)
		if !ok {
			return
		}
		if err := client.RemoveFriend(c.Request.Context(), s.PlayerID, c.Param("friendId")); err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Friend removed"})
	}
}
