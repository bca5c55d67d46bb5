package identity

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, sub, username string, roles ...string) string {
	claims := jwt.MapClaims{
		"sub":                sub,
		"preferred_username": username,
		"realm_access":       map[string]interface{}{"roles": roles},
		"exp":                time.Now().Add(5 * time.Minute).Unix(),
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return tok
}

type fakeKeycloak struct {
	t          *testing.T
	mu         sync.Mutex
	expiresIn  int
	refreshes  int
	refuseNext bool
	logouts    []string
	grants     []url.Values
}

func (f *fakeKeycloak) handler() http.Handler {
	mux := http.NewServeMux()
	var base string
	mux.HandleFunc("/realms/playhub/.well-known/openid-configuration", func(w http.ResponseWriter, r *http.Request) {
		base = "http://" + r.Host
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"issuer":               base + "/realms/playhub",
			"token_endpoint":       base + "/realms/playhub/protocol/openid-connect/token",
			"end_session_endpoint": base + "/realms/playhub/protocol/openid-connect/logout",
		})
	})
	mux.HandleFunc("/realms/playhub/protocol/openid-connect/token", func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(f.t, r.ParseForm()) {
			return
		}
		assert.Equal(f.t, "playhub-frontend", r.PostForm.Get("client_id"))
		w.Header().Set("Content-Type", "application/json")
		f.mu.Lock()
		defer f.mu.Unlock()
		f.grants = append(f.grants, r.PostForm)

		switch r.PostForm.Get("grant_type") {
		case "password":
			if r.PostForm.Get("password") != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"error":"invalid_grant"}`))
				return
			}
		case "refresh_token":
			f.refreshes++
			if f.refuseNext {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"error":"invalid_grant"}`))
				return
			}
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token":       signedToken(f.t, "p1", "alice", "player", "admin"),
			"refresh_token":      "refresh-1",
			"id_token":           "id-1",
			"expires_in":         f.expiresIn,
			"refresh_expires_in": 1800,
		})
	})
	mux.HandleFunc("/realms/playhub/protocol/openid-connect/logout", func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		f.mu.Lock()
		f.logouts = append(f.logouts, r.PostForm.Get("refresh_token"))
		f.mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})
	return mux
}

func newTestGate(t *testing.T, expiresIn int) (*Gate, *fakeKeycloak) {
	fk := &fakeKeycloak{t: t, expiresIn: expiresIn}
	srv := httptest.NewServer(fk.handler())
	t.Cleanup(srv.Close)

	kc := NewKeycloak(srv.URL, "playhub", "playhub-frontend", "http://localhost:3000/", srv.Client())
	require.NoError(t, kc.Init(context.Background()))
	return NewGate(kc, 70*time.Second), fk
}

func TestParseClaims(t *testing.T) {
	claims, err := ParseClaims(signedToken(t, "p1", "alice", "admin"))
	require.NoError(t, err)
	assert.Equal(t, "p1", claims.Subject)
	assert.Equal(t, "alice", claims.PreferredUsername)
	assert.True(t, claims.HasRole("admin"))
	assert.False(t, claims.HasRole("root"))

	_, err = ParseClaims("not-a-token")
	assert.Error(t, err)

	_, err = ParseClaims(signedToken(t, "", "nobody"))
	assert.ErrorIs(t, err, ErrNoSubject)
}

func TestLoginOpensSession(t *testing.T) {
	gate, _ := newTestGate(t, 300)
	s, err := gate.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "p1", s.PlayerID)
	assert.Equal(t, "alice", s.Username)
	assert.True(t, s.HasRole("admin"))

	tok, err := gate.Token(s.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
}

func TestLoginWithBadPassword(t *testing.T) {
	gate, _ := newTestGate(t, 300)
	_, err := gate.Login(context.Background(), "alice", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutEndsProviderSession(t *testing.T) {
	gate, fk := newTestGate(t, 300)
	s, err := gate.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)

	require.NoError(t, gate.Logout(context.Background(), s.ID))
	assert.Equal(t, []string{"refresh-1"}, fk.logouts)
	_, err = gate.Session(s.ID)
	assert.ErrorIs(t, err, ErrUnknownSession)
	assert.ErrorIs(t, gate.Logout(context.Background(), s.ID), ErrUnknownSession)
}

func TestTicketsAreSingleUse(t *testing.T) {
	gate, _ := newTestGate(t, 300)
	s, err := gate.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)

	ticket, err := gate.IssueTicket(s.ID)
	require.NoError(t, err)

	got, err := gate.RedeemTicket(ticket)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)

	_, err = gate.RedeemTicket(ticket)
	assert.ErrorIs(t, err, ErrInvalidTicket)

	_, err = gate.IssueTicket("missing")
	assert.ErrorIs(t, err, ErrUnknownSession)
}

func TestTicketsExpire(t *testing.T) {
	gate, _ := newTestGate(t, 300)
	s, err := gate.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	ticket, err := gate.IssueTicket(s.ID)
	require.NoError(t, err)

	gate.now = func() time.Time { return time.Now().Add(time.Minute) }
	_, err = gate.RedeemTicket(ticket)
	assert.ErrorIs(t, err, ErrInvalidTicket)
}

func TestRefreshDueOnlyTouchesExpiringTokens(t *testing.T) {
	gate, fk := newTestGate(t, 300)
	_, err := gate.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)

	gate.RefreshDue(context.Background())
	assert.Equal(t, 0, fk.refreshes)

	fk.expiresIn = 60
	_, err = gate.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	gate.RefreshDue(context.Background())
	assert.Equal(t, 1, fk.refreshes)
}

func TestRefusedRefreshClosesSession(t *testing.T) {
	gate, fk := newTestGate(t, 30)
	s, err := gate.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)

	fk.refuseNext = true
	gate.RefreshDue(context.Background())
	_, err = gate.Session(s.ID)
	assert.ErrorIs(t, err, ErrUnknownSession)
}

func TestRefresherStops(t *testing.T) {
	gate, _ := newTestGate(t, 300)
	gate.StartRefresher(10 * time.Millisecond)
	gate.StartRefresher(10 * time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	gate.Stop()
	gate.Stop()
}

func TestRegisterURL(t *testing.T) {
	kc := NewKeycloak("http://idp:8180/", "playhub", "playhub-frontend", "http://localhost:3000/", nil)
	u, err := url.Parse(kc.RegisterURL())
	require.NoError(t, err)
	assert.Equal(t, "/realms/playhub/protocol/openid-connect/registrations", u.Path)
	assert.Equal(t, "playhub-frontend", u.Query().Get("client_id"))
	assert.Equal(t, "http://localhost:3000/", u.Query().Get("redirect_uri"))
}

func TestUninitializedProvider(t *testing.T) {
	kc := NewKeycloak("http://idp", "playhub", "c", "", nil)
	_, err := kc.Login(context.Background(), "a", "b")
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestKeycloakTokenGrants(t *testing.T) {
	fk := &fakeKeycloak{t: t, expiresIn: 300}
	srv := httptest.NewServer(fk.handler())
	defer srv.Close()

	kc := NewKeycloak(srv.URL, "playhub", "playhub-frontend", "", srv.Client())
	require.NoError(t, kc.Init(context.Background()))

	tokens, err := kc.Login(context.Background(), "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "refresh-1", tokens.RefreshToken)
	assert.Equal(t, "id-1", tokens.IDToken)
	assert.Equal(t, 300, tokens.ExpiresIn)
	assert.Equal(t, 1800, tokens.RefreshExpiresIn)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), tokens.ExpiresAt(), 2*time.Second)

	_, err = kc.Refresh(context.Background(), "refresh-1")
	require.NoError(t, err)

	fk.refuseNext = true
	_, err = kc.Refresh(context.Background(), "refresh-1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	fk.mu.Lock()
	defer fk.mu.Unlock()
	require.Len(t, fk.grants, 3)
	assert.Equal(t, "password", fk.grants[0].Get("grant_type"))
	assert.Equal(t, "alice", fk.grants[0].Get("username"))
	assert.Equal(t, "openid", fk.grants[0].Get("scope"))
	assert.Equal(t, "refresh_token", fk.grants[1].Get("grant_type"))
	assert.Equal(t, "refresh-1", fk.grants[1].Get("refresh_token"))
}

func TestKeycloakInitRejectsForeignIssuer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"issuer":         "http://elsewhere/realms/playhub",
			"token_endpoint": "http://elsewhere/token",
		})
	}))
	defer srv.Close()

	kc := NewKeycloak(srv.URL, "playhub", "playhub-frontend", "", srv.Client())
	assert.Error(t, kc.Init(context.Background()))
	_, err := kc.Refresh(context.Background(), "r")
	assert.ErrorIs(t, err, ErrNotInitialized)
}
