package models

// Level is one row of the static level table. A player reaches a level when
// all three thresholds are met.
type Level struct {
	Level           int    `json:"level" yaml:"level"`
	Name            string `json:"name" yaml:"name"`
	Description     string `json:"description" yaml:"description"`
	MinGamesPlayed  int    `json:"minGamesPlayed" yaml:"min_games_played"`
	MinAchievements int    `json:"minAchievements" yaml:"min_achievements"`
	MinFriends      int    `json:"minFriends" yaml:"min_friends"`
}
