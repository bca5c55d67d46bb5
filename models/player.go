package models

/*
 * 'Player' is the platform profile of a registered user, as served by the
 * primary API. FavoriteGames is a set of game ids.
 */
type Player struct {
	ID            string   `json:"id"`
	Username      string   `json:"username"`
	Email         string   `json:"email,omitempty"`
	Avatar        string   `json:"avatar,omitempty"`
	FavoriteGames []string `json:"favoriteGames"`
	FriendIDs     []string `json:"friendIds,omitempty"`
}

// IsFavorite reports whether gameID is one of the player's favourite games
func (p *Player) IsFavorite(gameID string) bool {
	for _, id := range p.FavoriteGames {
		if id == gameID {
			return true
		}
	}
	return false
}
