package levels

import (
	"Playhub/models"
	"errors"
	"fmt"
)

var ErrEmptyTable = errors.New("level table is empty")

// Table is an ascending, validated level table
type Table struct {
	levels []models.Level
}

// NewTable validates that ranks strictly ascend and that no threshold ever
// decreases from one level to the next.
func NewTable(levels []models.Level) (*Table, error) {
	if len(levels) == 0 {
		return nil, ErrEmptyTable
	}
	for i := 1; i < len(levels); i++ {
		prev, cur := levels[i-1], levels[i]
		if cur.Level <= prev.Level {
			return nil, fmt.Errorf("level %d listed after level %d: table must be ascending", cur.Level, prev.Level)
		}
		if cur.MinGamesPlayed < prev.MinGamesPlayed ||
			cur.MinAchievements < prev.MinAchievements ||
			cur.MinFriends < prev.MinFriends {
			return nil, fmt.Errorf("level %d has lower thresholds than level %d", cur.Level, prev.Level)
		}
	}

	cp := make([]models.Level, len(levels))
	copy(cp, levels)
	return &Table{levels: cp}, nil
}

// Lookup returns the highest level whose three thresholds are all met.
// Scanning stops at the first level not fully met. When even the first level
// is not met, the first level is returned.
func (t *Table) Lookup(gamesPlayed, achievements, friends int) models.Level {
	current := t.levels[0]
	for _, lvl := range t.levels {
		if gamesPlayed >= lvl.MinGamesPlayed &&
			achievements >= lvl.MinAchievements &&
			friends >= lvl.MinFriends {
			current = lvl
			continue
		}
		break
	}
	return current
}

// Next returns the level following rank, false at the top of the table
func (t *Table) Next(rank int) (models.Level, bool) {
	for _, lvl := range t.levels {
		if lvl.Level > rank {
			return lvl, true
		}
	}
	return models.Level{}, false
}

// Levels returns a copy of the table
func (t *Table) Levels() []models.Level {
	cp := make([]models.Level, len(t.levels))
	copy(cp, t.levels)
	return cp
}
