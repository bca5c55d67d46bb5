package models

type PlayerStats struct {
	PlayerID             string `json:"playerId"`
	GamesPlayed          int    `json:"gamesPlayed"`
	GamesWon             int    `json:"gamesWon"`
	GamesLost            int    `json:"gamesLost"`
	GamesDrawn           int    `json:"gamesDrawn"`
	AchievementsUnlocked int    `json:"achievementsUnlocked"`
	FriendsCount         int    `json:"friendsCount"`
	PlayTimeMinutes      int    `json:"playTimeMinutes"`
}

type GameStats struct {
	PlayerID        string `json:"playerId"`
	GameID          string `json:"gameId"`
	GamesPlayed     int    `json:"gamesPlayed"`
	GamesWon        int    `json:"gamesWon"`
	GamesLost       int    `json:"gamesLost"`
	GamesDrawn      int    `json:"gamesDrawn"`
	PlayTimeMinutes int    `json:"playTimeMinutes"`
}

// WinRate returns the share of won games, 0 when nothing was played
func (s GameStats) WinRate() float64 {
	if s.GamesPlayed == 0 {
		return 0
	}
	return float64(s.GamesWon) / float64(s.GamesPlayed)
}
