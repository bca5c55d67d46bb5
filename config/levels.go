package config

import (
	"Playhub/models"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type levelsFile struct {
	Levels []models.Level `yaml:"levels"`
}

// DefaultLevels is the level table used when no LEVELS_FILE is configured
var DefaultLevels = []models.Level{
	{Level: 1, Name: "Rookie", Description: "Welcome to the platform"},
	{Level: 2, Name: "Regular", Description: "Played a few games", MinGamesPlayed: 5, MinAchievements: 1, MinFriends: 1},
	{Level: 3, Name: "Competitor", Description: "Getting serious", MinGamesPlayed: 20, MinAchievements: 3, MinFriends: 3},
	{Level: 4, Name: "Veteran", Description: "Seen it all", MinGamesPlayed: 50, MinAchievements: 8, MinFriends: 5},
	{Level: 5, Name: "Legend", Description: "Hall of fame", MinGamesPlayed: 100, MinAchievements: 15, MinFriends: 10},
}

// LoadLevels reads the level table from a YAML file. An empty path returns
// DefaultLevels. Ordering is validated by the levels service, not here.
func LoadLevels(path string) ([]models.Level, error) {
	if path == "" {
		return DefaultLevels, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading levels file: %w", err)
	}

	var f levelsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing levels file: %w", err)
	}
	if len(f.Levels) == 0 {
		return nil, fmt.Errorf("levels file %s defines no levels", path)
	}
	return f.Levels, nil
}
