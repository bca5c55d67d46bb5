package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	platform "Playhub/constants/platform"
	"Playhub/utils/logger"

	"github.com/google/uuid"
)

var (
	ErrUnknownSession = errors.New("unknown or expired session")
	ErrInvalidTicket  = errors.New("invalid or expired socket ticket")
)

// Session is what the gate knows about one signed-in browser
type Session struct {
	ID          string    `json:"id"`
	PlayerID    string    `json:"player_id"`
	Username    string    `json:"username"`
	Roles       []string  `json:"roles"`
	AccessToken string    `json:"-"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (s Session) HasRole(role string) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

type entry struct {
	tokens Tokens
	claims *Claims
}

type ticket struct {
	sessionID string
	expires   time.Time
}

/*
 * 'Gate' is the authentication context of the gateway. It is built once at
 * startup and handed to every component that needs a token. Tokens never
 * leave the gate: the browser only holds the session id in its cookie.
 */
type Gate struct {
	provider    Provider
	minValidity time.Duration
	now         func() time.Time

	mu       sync.Mutex
	sessions map[string]*entry
	tickets  map[string]ticket

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func NewGate(provider Provider, minValidity time.Duration) *Gate {
	if minValidity <= 0 {
		minValidity = platform.DEFAULT_TOKEN_MIN_VALIDITY
	}
	return &Gate{
		provider:    provider,
		minValidity: minValidity,
		now:         time.Now,
		sessions:    make(map[string]*entry),
		tickets:     make(map[string]ticket),
	}
}

func (g *Gate) RegisterURL() string {
	return g.provider.RegisterURL()
}

// Login authenticates against the provider and opens a gate session
func (g *Gate) Login(ctx context.Context, username, password string) (Session, error) {
	tokens, err := g.provider.Login(ctx, username, password)
	if err != nil {
		return Session{}, err
	}
	claims, err := ParseClaims(tokens.AccessToken)
	if err != nil {
		return Session{}, err
	}

	id := uuid.New().String()
	g.mu.Lock()
	g.sessions[id] = &entry{tokens: tokens, claims: claims}
	g.mu.Unlock()

	logger.Infof("[AUTH] %s signed in", claims.PreferredUsername)
	return toSession(id, tokens, claims), nil
}

// Logout ends the gate session and the provider session behind it
func (g *Gate) Logout(ctx context.Context, sessionID string) error {
	g.mu.Lock()
	e, ok := g.sessions[sessionID]
	delete(g.sessions, sessionID)
	for key, t := range g.tickets {
		if t.sessionID == sessionID {
			delete(g.tickets, key)
		}
	}
	g.mu.Unlock()

	if !ok {
		return ErrUnknownSession
	}
	if err := g.provider.Logout(ctx, e.tokens.RefreshToken); err != nil {
		return fmt.Errorf("ending provider session: %w", err)
	}
	return nil
}

// Session returns the session for id
func (g *Gate) Session(sessionID string) (Session, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	e, ok := g.sessions[sessionID]
	if !ok {
		return Session{}, ErrUnknownSession
	}
	return toSession(sessionID, e.tokens, e.claims), nil
}

// Token returns the current access token of a session
func (g *Gate) Token(sessionID string) (string, error) {
	s, err := g.Session(sessionID)
	if err != nil {
		return "", err
	}
	return s.AccessToken, nil
}

// IssueTicket hands out a one-time ticket the browser presents in the
// socket handshake instead of its cookie.
func (g *Gate) IssueTicket(sessionID string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.sessions[sessionID]; !ok {
		return "", ErrUnknownSession
	}
	now := g.now()
	for key, t := range g.tickets {
		if now.After(t.expires) {
			delete(g.tickets, key)
		}
	}
	key := uuid.New().String()
	g.tickets[key] = ticket{sessionID: sessionID, expires: now.Add(platform.SOCKET_TICKET_TTL)}
	return key, nil
}

// RedeemTicket consumes a ticket and returns its session
func (g *Gate) RedeemTicket(key string) (Session, error) {
	g.mu.Lock()
	t, ok := g.tickets[key]
	delete(g.tickets, key)
	g.mu.Unlock()

	if !ok || g.now().After(t.expires) {
		return Session{}, ErrInvalidTicket
	}
	return g.Session(t.sessionID)
}

// RefreshDue refreshes every session whose token expires within the
// minimum validity. Sessions the provider refuses to refresh are dropped.
func (g *Gate) RefreshDue(ctx context.Context) {
	deadline := g.now().Add(g.minValidity)

	g.mu.Lock()
	due := make(map[string]string)
	for id, e := range g.sessions {
		if e.tokens.ExpiresAt().Before(deadline) {
			due[id] = e.tokens.RefreshToken
		}
	}
	g.mu.Unlock()

	for id, refreshToken := range due {
		tokens, err := g.provider.Refresh(ctx, refreshToken)
		var claims *Claims
		if err == nil {
			claims, err = ParseClaims(tokens.AccessToken)
		}

		g.mu.Lock()
		if _, ok := g.sessions[id]; !ok {
			g.mu.Unlock()
			continue
		}
		if err != nil {
			delete(g.sessions, id)
			g.mu.Unlock()
			logger.Warnf("[AUTH] refresh failed, session %s closed: %v", id, err)
			continue
		}
		g.sessions[id] = &entry{tokens: tokens, claims: claims}
		g.mu.Unlock()
		logger.Debugf("[AUTH] token of session %s refreshed", id)
	}
}

// StartRefresher runs RefreshDue every interval until Stop
func (g *Gate) StartRefresher(interval time.Duration) {
	if interval <= 0 {
		interval = platform.DEFAULT_TOKEN_REFRESH_INTERVAL
	}
	g.mu.Lock()
	if g.stop != nil {
		g.mu.Unlock()
		return
	}
	g.stop = make(chan struct{})
	g.done = make(chan struct{})
	stop, done := g.stop, g.done
	g.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), interval)
				g.RefreshDue(ctx)
				cancel()
			}
		}
	}()
}

// Stop halts the refresher and waits for it to exit
func (g *Gate) Stop() {
	g.mu.Lock()
	stop, done := g.stop, g.done
	g.mu.Unlock()
	if stop == nil {
		return
	}
	g.stopOnce.Do(func() { close(stop) })
	<-done
}

func toSession(id string, tokens Tokens, claims *Claims) Session {
	return Session{
		ID:          id,
		PlayerID:    claims.Subject,
		Username:    claims.PreferredUsername,
		Roles:       append([]string(nil), claims.RealmAccess.Roles...),
		AccessToken: tokens.AccessToken,
		ExpiresAt:   tokens.ExpiresAt(),
	}
}
