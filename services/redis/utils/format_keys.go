package utils

/**
 * Key builders for the query cache, so every reader and every invalidation
 * agree on the key format.
 */

import "fmt"

func FormatGameCatalogKey() string {
	return "cache:games"
}

func FormatGameKey(gameID string) string {
	return fmt.Sprintf("cache:game:%s", gameID)
}

func FormatPlayerKey(playerID string) string {
	return fmt.Sprintf("cache:player:%s", playerID)
}

func FormatPlayerFriendsKey(playerID string) string {
	return fmt.Sprintf("cache:player:%s:friends", playerID)
}
