package platform_constants

import "time"

// Polling defaults, overridable through configuration
const DEFAULT_LOBBY_POLL_INTERVAL = 2 * time.Second
const DEFAULT_NOTIFICATION_POLL_INTERVAL = 30 * time.Second
const DEFAULT_POLL_MAX_FAILURES = 1

// Token refresh defaults
const DEFAULT_TOKEN_REFRESH_INTERVAL = 60 * time.Second
const DEFAULT_TOKEN_MIN_VALIDITY = 70 * time.Second

// Query cache TTLs
const CATALOG_CACHE_TTL = 10 * time.Minute
const PLAYER_CACHE_TTL = 1 * time.Minute

// Socket tickets are single use and short lived
const SOCKET_TICKET_TTL = 30 * time.Second

const ADMIN_ROLE = "admin"

// Game push channel events (upstream game service)
const (
	EVENT_CONNECT           = "connect"
	EVENT_GAME_STATE_UPDATE = "game_state_update"
	EVENT_JOIN_GAME         = "join_game"
	EVENT_MAKE_MOVE         = "make_move"
)

// Browser relay events
const (
	EVENT_MOVE_REJECTED       = "move_rejected"
	EVENT_DISMISS_RESULT      = "dismiss_result"
	EVENT_LEAVE_GAME          = "leave_game"
	EVENT_NAVIGATE            = "navigate"
	EVENT_INVITATION_REJECTED = "invitation_rejected"
	EVENT_POLL_FAILED         = "poll_failed"
	EVENT_NOTIFICATIONS       = "notifications"
	EVENT_ERROR               = "error"
)

const SESSION_MODE_AI = "ai"
const SESSION_MODE_PVP = "pvp"
