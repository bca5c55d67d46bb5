package controllers

import (
	"testing"
	"time"

	"Playhub/config"
	"Playhub/models"
	"Playhub/services/levels"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeAchievements(t *testing.T) {
	at := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	all := []models.Achievement{{ID: "a1", Name: "First win"}, {ID: "a2", Name: "Ten games"}}
	mine := []models.Achievement{{ID: "a2", UnlockedAt: &at}, {ID: "gone"}}

	merged := MergeAchievements(all, mine)
	require.Len(t, merged, 2)
	assert.False(t, merged[0].Unlocked)
	assert.True(t, merged[1].Unlocked)
	assert.Equal(t, &at, merged[1].UnlockedAt)
	assert.Equal(t, "Ten games", merged[1].Name)
}

func TestFilterByUsername(t *testing.T) {
	players := []models.Player{{ID: "1", Username: "Bob"}, {ID: "2", Username: "carol"}}
	assert.Len(t, FilterByUsername(players, ""), 2)
	assert.Equal(t, []models.Player{{ID: "1", Username: "Bob"}}, FilterByUsername(players, " bO "))
	assert.Empty(t, FilterByUsername(players, "zed"))
	assert.NotNil(t, FilterByUsername(nil, "x"))
}

func TestNotFriends(t *testing.T) {
	candidates := []models.Player{{ID: "me"}, {ID: "f1"}, {ID: "x"}}
	friends := []models.Player{{ID: "f1"}}
	assert.Equal(t, []models.Player{{ID: "x"}}, NotFriends(candidates, friends, "me"))
}

func TestLevelProgress(t *testing.T) {
	table, err := levels.NewTable(config.DefaultLevels)
	require.NoError(t, err)
	env := &Env{Levels: table}

	p := env.progress(models.PlayerStats{GamesPlayed: 7, AchievementsUnlocked: 4, FriendsCount: 0})
	assert.Equal(t, 1, p.Current.Level)
	require.NotNil(t, p.Next)
	assert.Equal(t, 2, p.Next.Level)
	assert.Equal(t, 0, p.MissingGames)
	assert.Equal(t, 0, p.MissingAchievements)
	assert.Equal(t, 1, p.MissingFriends)

	top := env.progress(models.PlayerStats{GamesPlayed: 500, AchievementsUnlocked: 50, FriendsCount: 50})
	assert.Equal(t, 5, top.Current.Level)
	assert.Nil(t, top.Next)
}
