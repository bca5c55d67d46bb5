package models

/*
 * 'Game' is a static catalog entry.
 */
type Game struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Picture     string `json:"picture"`
	Description string `json:"description"`
	Rules       string `json:"rules"`
	MaxPlayers  int    `json:"maxPlayers"`
}
