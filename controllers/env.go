package controllers

import (
	"net/http"
	"time"

	platform "Playhub/constants/platform"
	"Playhub/middleware"
	"Playhub/services/api"
	"Playhub/services/identity"
	"Playhub/services/levels"
	"Playhub/services/poller"
	socketio_types "Playhub/services/socket_io/types"
	"Playhub/utils/logger"

	"github.com/gin-gonic/gin"
)

// Env carries what the page controllers share
type Env struct {
	Gate              *identity.Gate
	API               *api.Client
	Polls             *poller.Registry
	Conns             *socketio_types.SocketServer
	Levels            *levels.Table
	LobbyPollInterval time.Duration
}

// client returns the API client of the signed-in player. It answers 401
// itself when the request carries no session.
func (e *Env) client(c *gin.Context) (*api.Client, identity.Session, bool) {
	s, ok := middleware.CurrentSession(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, middleware.Landing(e.Gate))
		return nil, s, false
	}
	return e.API.WithToken(s.AccessToken), s, true
}

// clientFor is used by polls, which outlive the request: the token is read
// from the gate on every call so refreshed tokens are picked up
func (e *Env) clientFor(sessionID string) (*api.Client, error) {
	token, err := e.Gate.Token(sessionID)
	if err != nil {
		return nil, err
	}
	return e.API.WithToken(token), nil
}

// notify pushes the outcome of a finished poll to every socket of playerID
func (e *Env) notify(playerID string) func(poller.Outcome) {
	return func(out poller.Outcome) {
		event := platform.EVENT_POLL_FAILED
		switch out.Result {
		case poller.ResultSuccess:
			event = platform.EVENT_NAVIGATE
		case poller.ResultRejected:
			event = platform.EVENT_INVITATION_REJECTED
		}
		if e.Conns == nil {
			return
		}
		if n := e.Conns.EmitToPlayer(playerID, event, out); n == 0 {
			logger.Debugf("[POLL] %s finished with no socket for %s", out.Target, playerID)
		}
	}
}
