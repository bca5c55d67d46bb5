package handlers

import (
	"context"
	"sync"
	"time"

	"Playhub/services/api"
	"Playhub/services/identity"
	"Playhub/services/poller"
	"Playhub/services/pushchannel"
	"Playhub/services/session"
	socketio_types "Playhub/services/socket_io/types"
	"Playhub/utils/logger"
)

// TokenSource hands out the current access token of a gate session.
// *identity.Gate implements it.
type TokenSource interface {
	Token(sessionID string) (string, error)
}

// Deps are the collaborators shared by every socket connection
type Deps struct {
	Tokens TokenSource
	API    *api.Client
	Polls  *poller.Registry
	Conns  *socketio_types.SocketServer

	// NewChannel opens the upstream push channel for a token. When nil
	// session views poll the game-session service.
	NewChannel func(token string) pushchannel.Channel

	LobbyPollInterval        time.Duration
	NotificationPollInterval time.Duration
}

// Connection is the relay state of one browser socket
type Connection struct {
	client  socketio_types.Client
	session identity.Session
	deps    *Deps

	ctx    context.Context
	cancel context.CancelFunc

	mu   sync.Mutex
	view *session.View
}

func NewConnection(client socketio_types.Client, s identity.Session, deps *Deps) *Connection {
	ctx, cancel := context.WithCancel(context.Background())
	return &Connection{client: client, session: s, deps: deps, ctx: ctx, cancel: cancel}
}

func (c *Connection) PlayerID() string { return c.session.PlayerID }

// api returns the API client bound to the session's current token
func (c *Connection) api() (*api.Client, error) {
	token, err := c.deps.Tokens.Token(c.session.ID)
	if err != nil {
		return nil, err
	}
	return c.deps.API.WithToken(token), nil
}

func (c *Connection) notificationsTarget() string {
	return poller.NotificationsTarget(string(c.client.Id()))
}

// swapView installs v as the mounted view and returns the previous one
func (c *Connection) swapView(v *session.View) *session.View {
	c.mu.Lock()
	defer c.mu.Unlock()
	previous := c.view
	c.view = v
	return previous
}

func (c *Connection) currentView() *session.View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

// Function to handle socket.io client disconnections. Everything the
// connection started is torn down.
func HandleDisconnecting(conn *Connection) func(args ...interface{}) {
	return func(args ...interface{}) {
		logger.Infof("[DISCONNECT] %s (socket %s)", conn.session.Username, conn.client.Id())

		if v := conn.swapView(nil); v != nil {
			v.Close()
		}
		conn.deps.Polls.Stop(conn.notificationsTarget())
		conn.cancel()
		conn.deps.Conns.RemoveConnection(conn.PlayerID(), conn.client.Id())
	}
}
