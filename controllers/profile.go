package controllers

import (
	"context"
	"net/http"

	"Playhub/models"
	"Playhub/services/api"
	"Playhub/utils"

	"github.com/gin-gonic/gin"
)

// LevelProgress is the player's level and how far the next one is
type LevelProgress struct {
	Current models.Level  `json:"current"`
	Next    *models.Level `json:"next,omitempty"`
	// Missing counters to reach Next, zero when already met
	MissingGames        int `json:"missingGames"`
	MissingAchievements int `json:"missingAchievements"`
	MissingFriends      int `json:"missingFriends"`
}

func (e *Env) progress(stats models.PlayerStats) LevelProgress {
	p := LevelProgress{Current: e.Levels.Lookup(stats.GamesPlayed, stats.AchievementsUnlocked, stats.FriendsCount)}
	next, ok := e.Levels.Next(p.Current.Level)
	if !ok {
		return p
	}
	p.Next = &next
	p.MissingGames = max(0, next.MinGamesPlayed-stats.GamesPlayed)
	p.MissingAchievements = max(0, next.MinAchievements-stats.AchievementsUnlocked)
	p.MissingFriends = max(0, next.MinFriends-stats.FriendsCount)
	return p
}

// playerAndStats issues the two fetches every profile-like page needs
func playerAndStats(ctx context.Context, client *api.Client, playerID string) (models.Player, models.PlayerStats, error) {
	player, err := client.Me(ctx)
	if err != nil {
		return player, models.PlayerStats{}, err
	}
	stats, err := client.PlayerStats(ctx, playerID)
	return player, stats, err
}

// @Summary Dashboard page
// @Description Player, stats, level, favourite games and unread notifications
// @Tags pages
// @Produce json
// @Success 200 {object} object{player=models.Player,stats=models.PlayerStats,level=LevelProgress,favorites=[]models.Game,games=[]models.Game,unread=int}
// @Failure 401 {object} object{error=string}
// @Failure 502 {object} object{error=string}
// @Router /auth/dashboard [get]
// @Security ApiKeyAuth
func Dashboard(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, s, ok := env.client(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()

		player, stats, err := playerAndStats(ctx, client, s.PlayerID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		games, err := client.ListGames(ctx)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		notifications, err := client.ListNotifications(ctx, s.PlayerID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		favorites := []models.Game{}
		for _, g := range games {
			if player.IsFavorite(g.ID) {
				favorites = append(favorites, g)
			}
		}
		unread := 0
		for _, n := range notifications {
			if !n.Read {
				unread++
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"player":    player,
			"stats":     stats,
			"level":     env.progress(stats),
			"favorites": favorites,
			"games":     games,
			"unread":    unread,
		})
	}
}

// @Summary Profile page
// @Tags pages
// @Produce json
// @Success 200 {object} object{player=models.Player,stats=models.PlayerStats,level=LevelProgress}
// @Router /auth/profile [get]
// @Security ApiKeyAuth
func Profile(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, s, ok := env.client(c)
		if !ok {
			return
		}
		player, stats, err := playerAndStats(c.Request.Context(), client, s.PlayerID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"player": player, "stats": stats, "level": env.progress(stats)})
	}
}

// @Summary Achievements page
// @Description Every achievement, flagged with the player's unlocked ones
// @Tags pages
// @Produce json
// @Success 200 {object} object{achievements=[]models.Achievement,unlocked=int,total=int}
// @Router /auth/achievements [get]
// @Security ApiKeyAuth
func Achievements(env *Env) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, s, ok := env.client(c)
		if !ok {
			return
		}
		ctx := c.Request.Context()
		all, err := client.ListAchievements(ctx)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		mine, err := client.PlayerAchievements(ctx, s.PlayerID)
		if err != nil {
			utils.RespondError(c, err)
			return
		}

		merged := MergeAchievements(all, mine)
		unlocked := 0
		for _, a := range merged {
			if a.Unlocked {
				unlocked++
			}
		}
		c.JSON(http.StatusOK, gin.H{"achievements": merged, "unlocked": unlocked, "total": len(merged)})
	}
}

// MergeAchievements marks the entries of all that appear in unlocked
func MergeAchievements(all, unlocked []models.Achievement) []models.Achievement {
	byID := make(map[string]models.Achievement, len(unlocked))
	for _, a := range unlocked {
		byID[a.ID] = a
	}
	merged := make([]models.Achievement, 0, len(all))
	for _, a := range all {
		if u, ok := byID[a.ID]; ok {
			a.Unlocked = true
			a.UnlockedAt = u.UnlockedAt
		}
		merged = append(merged, a)
	}
	return merged
}
