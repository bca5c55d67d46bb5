package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	platform "Playhub/constants/platform"
	"Playhub/services/poller"
	"Playhub/services/pushchannel"
	"Playhub/services/session"
	"Playhub/utils/logger"

	"github.com/gin-gonic/gin"
)

const mountTimeout = 10 * time.Second

// HandleJoinGame mounts a session view for the requested session. A view
// already mounted for another session is closed first.
func HandleJoinGame(conn *Connection) func(args ...interface{}) {
	return func(args ...interface{}) {
		sessionID := stringArg(args, "session_id")
		if sessionID == "" {
			conn.client.Emit(platform.EVENT_ERROR, gin.H{"error": "Missing session id"})
			return
		}
		logger.Infof("[SESSION] %s joins %s", conn.session.Username, sessionID)

		if current := conn.currentView(); current != nil && current.SessionID() == sessionID {
			conn.client.Emit(platform.EVENT_GAME_STATE_UPDATE, current.Snapshot())
			return
		}

		client, err := conn.api()
		if err != nil {
			conn.client.Emit(platform.EVENT_ERROR, gin.H{"error": err.Error()})
			return
		}

		cfg := session.Config{
			SessionID:    sessionID,
			PlayerID:     conn.PlayerID(),
			Fetch:        client.GetSession,
			Move:         client.MakeMove,
			Polls:        conn.deps.Polls,
			PollInterval: conn.deps.LobbyPollInterval,
			OnChange: func(snap session.Snapshot) {
				conn.client.Emit(platform.EVENT_GAME_STATE_UPDATE, snap)
			},
			OnPollFailed: func(out poller.Outcome) {
				conn.client.Emit(platform.EVENT_POLL_FAILED, out)
			},
		}
		if conn.deps.NewChannel != nil {
			token, _ := conn.deps.Tokens.Token(conn.session.ID)
			cfg.NewChannel = func() pushchannel.Channel { return conn.deps.NewChannel(token) }
		}

		view := session.NewView(cfg)
		if previous := conn.swapView(view); previous != nil {
			previous.Close()
		}

		ctx, cancel := context.WithTimeout(conn.ctx, mountTimeout)
		defer cancel()
		if err := view.Mount(ctx); err != nil {
			logger.Errorf("[SESSION] mounting %s failed: %v", sessionID, err)
			conn.client.Emit(platform.EVENT_ERROR, gin.H{"error": "Could not follow the game session"})
			if conn.swapView(nil) == view {
				view.Close()
			}
		}
	}
}

// HandleMakeMove forwards a cell activation (0-based "index") to the view
func HandleMakeMove(conn *Connection) func(args ...interface{}) {
	return func(args ...interface{}) {
		view := conn.currentView()
		if view == nil {
			conn.client.Emit(platform.EVENT_MOVE_REJECTED, gin.H{"reason": "not in a game"})
			return
		}
		index, ok := intArg(args, "index")
		if !ok {
			conn.client.Emit(platform.EVENT_MOVE_REJECTED, gin.H{"reason": "missing cell index"})
			return
		}

		ctx, cancel := context.WithTimeout(conn.ctx, mountTimeout)
		defer cancel()
		err := view.CellClick(ctx, index)
		switch {
		case err == nil:
		case errors.Is(err, session.ErrMoveRejected):
			conn.client.Emit(platform.EVENT_MOVE_REJECTED, gin.H{"reason": err.Error(), "index": index})
		default:
			logger.Errorf("[SESSION] move on %s failed: %v", view.SessionID(), err)
			conn.client.Emit(platform.EVENT_ERROR, gin.H{"error": "Move could not be sent"})
		}
	}
}

func HandleDismissResult(conn *Connection) func(args ...interface{}) {
	return func(args ...interface{}) {
		view := conn.currentView()
		if view == nil {
			return
		}
		view.DismissOverlay()
		conn.client.Emit(platform.EVENT_GAME_STATE_UPDATE, view.Snapshot())
	}
}

func HandleLeaveGame(conn *Connection) func(args ...interface{}) {
	return func(args ...interface{}) {
		if v := conn.swapView(nil); v != nil {
			logger.Infof("[SESSION] %s leaves %s", conn.session.Username, v.SessionID())
			v.Close()
		}
	}
}

// stringArg accepts either a bare string or an object carrying key
func stringArg(args []interface{}, key string) string {
	if len(args) < 1 {
		return ""
	}
	switch v := args[0].(type) {
	case string:
		return v
	case map[string]interface{}:
		s, _ := v[key].(string)
		return s
	}
	return ""
}

// intArg accepts a bare number or an object carrying key. JSON numbers
// arrive as float64.
func intArg(args []interface{}, key string) (int, bool) {
	if len(args) < 1 {
		return 0, false
	}
	value := args[0]
	if m, ok := value.(map[string]interface{}); ok {
		value = m[key]
	}
	switch n := value.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case string:
		var i int
		if _, err := fmt.Sscanf(n, "%d", &i); err == nil {
			return i, true
		}
	}
	return 0, false
}
