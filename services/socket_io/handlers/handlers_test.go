package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"Playhub/models"
	"Playhub/services/api"
	"Playhub/services/identity"
	"Playhub/services/poller"
	"Playhub/services/pushchannel"
	"Playhub/services/session"
	socketio_types "Playhub/services/socket_io/types"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zishang520/socket.io/v2/socket"
)

type sent struct {
	event string
	args  []any
}

type fakeClient struct {
	mu     sync.Mutex
	events []sent
}

func (f *fakeClient) Id() socket.SocketId { return "sock-1" }

func (f *fakeClient) Emit(ev string, args ...any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, sent{ev, args})
	return nil
}

func (f *fakeClient) named(event string) []sent {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []sent
	for _, e := range f.events {
		if e.event == event {
			out = append(out, e)
		}
	}
	return out
}

type staticTokens struct{}

func (staticTokens) Token(string) (string, error) { return "tok", nil }

type fakeChannel struct {
	mu       sync.Mutex
	handlers map[string][]pushchannel.Handler
	emits    []string
	closed   bool
}

func (f *fakeChannel) On(event string, h pushchannel.Handler) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers[event] = append(f.handlers[event], h)
}
func (f *fakeChannel) Off(event string) {}
func (f *fakeChannel) OffAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.handlers = map[string][]pushchannel.Handler{}
}
func (f *fakeChannel) Connect(ctx context.Context) error { return nil }
func (f *fakeChannel) Emit(event string, payload interface{}) error {
	data, _ := json.Marshal(payload)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emits = append(f.emits, event+" "+string(data))
	return nil
}
func (f *fakeChannel) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}
func (f *fakeChannel) push(event string, v interface{}) {
	data, _ := json.Marshal(v)
	f.mu.Lock()
	hs := append([]pushchannel.Handler(nil), f.handlers[event]...)
	f.mu.Unlock()
	for _, h := range hs {
		h(data)
	}
}

type relayFixture struct {
	conn    *Connection
	client  *fakeClient
	channel *fakeChannel
	polls   *poller.Registry
	conns   *socketio_types.SocketServer
}

func newRelay(t *testing.T, upstream http.Handler) *relayFixture {
	if upstream == nil {
		upstream = http.NotFoundHandler()
	}
	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	f := &relayFixture{
		client:  &fakeClient{},
		channel: &fakeChannel{handlers: map[string][]pushchannel.Handler{}},
		polls:   poller.NewRegistry(1),
		conns:   socketio_types.NewSocketServer(),
	}
	t.Cleanup(f.polls.StopAll)

	deps := &Deps{
		Tokens:                   staticTokens{},
		API:                      api.NewClient(srv.URL, srv.URL, srv.Client(), nil),
		Polls:                    f.polls,
		Conns:                    f.conns,
		NewChannel:               func(string) pushchannel.Channel { return f.channel },
		LobbyPollInterval:        time.Hour,
		NotificationPollInterval: time.Hour,
	}
	s := identity.Session{ID: "gs1", PlayerID: "me", Username: "alice"}
	f.conn = NewConnection(f.client, s, deps)
	f.conns.AddConnection("me", f.client)
	return f
}

func TestJoinGameMirrorsUpdates(t *testing.T) {
	f := newRelay(t, nil)
	HandleJoinGame(f.conn)(map[string]interface{}{"session_id": "s1"})
	require.Equal(t, []string{`join_game {"session_id":"s1","player_id":"me"}`}, f.channel.emits)

	f.channel.push("game_state_update", models.GameSession{
		SessionID: "s1", Board: make([]models.Mark, 9), Status: models.SessionInProgress,
		CurrentTurn: models.MarkX, PlayerXID: "me",
	})
	updates := f.client.named("game_state_update")
	require.Len(t, updates, 1)
	snap := updates[0].args[0].(session.Snapshot)
	assert.Equal(t, models.MarkX, snap.LocalMark)

	HandleMakeMove(f.conn)(map[string]interface{}{"index": float64(0)})
	assert.Equal(t, `make_move {"session_id":"s1","position":1}`, f.channel.emits[1])
}

func TestUpstreamLossIsReportedAsPollFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/python-games/s1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	f := newRelay(t, mux)
	HandleJoinGame(f.conn)("s1")
	require.NotNil(t, f.conn.currentView())

	f.channel.push("disconnect", nil)
	assert.True(t, f.channel.closed)

	require.Eventually(t, func() bool { return len(f.client.named("poll_failed")) == 1 }, time.Second, 10*time.Millisecond)
	out := f.client.named("poll_failed")[0].args[0].(poller.Outcome)
	assert.Equal(t, poller.ResultFailed, out.Result)
	assert.Equal(t, 0, f.polls.ActiveCount())

	updates := f.client.named("game_state_update")
	require.NotEmpty(t, updates)
	assert.False(t, updates[len(updates)-1].args[0].(session.Snapshot).Polling)
}

func TestMoveOutOfTurnIsReported(t *testing.T) {
	f := newRelay(t, nil)
	HandleJoinGame(f.conn)("s1")
	f.channel.push("game_state_update", models.GameSession{
		SessionID: "s1", Board: make([]models.Mark, 9), Status: models.SessionInProgress,
		CurrentTurn: models.MarkO, PlayerXID: "me", PlayerOID: "other",
	})

	HandleMakeMove(f.conn)(float64(3))
	rejected := f.client.named("move_rejected")
	require.Len(t, rejected, 1)
	assert.Contains(t, rejected[0].args[0].(gin.H)["reason"], "not your turn")
	assert.Len(t, f.channel.emits, 1)
}

func TestMoveWithoutGame(t *testing.T) {
	f := newRelay(t, nil)
	HandleMakeMove(f.conn)(float64(0))
	assert.Len(t, f.client.named("move_rejected"), 1)
}

func TestDismissAndLeave(t *testing.T) {
	f := newRelay(t, nil)
	HandleJoinGame(f.conn)("s1")
	f.channel.push("game_state_update", models.GameSession{
		SessionID: "s1", Board: make([]models.Mark, 9), Status: models.SessionWin,
		Winner: models.MarkX, PlayerXID: "me",
	})
	HandleDismissResult(f.conn)()
	updates := f.client.named("game_state_update")
	require.Len(t, updates, 2)
	assert.True(t, updates[0].args[0].(session.Snapshot).OverlayOpen)
	assert.False(t, updates[1].args[0].(session.Snapshot).OverlayOpen)

	HandleLeaveGame(f.conn)()
	assert.True(t, f.channel.closed)
	assert.Nil(t, f.conn.currentView())
}

func TestJoinGameRequiresSessionID(t *testing.T) {
	f := newRelay(t, nil)
	HandleJoinGame(f.conn)()
	assert.Len(t, f.client.named("error"), 1)
}

func TestNotificationRefreshAndDisconnect(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/players/me/notifications", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Write([]byte(`[{"id":"n1","read":false},{"id":"n2","read":true}]`))
	})
	f := newRelay(t, mux)

	StartNotificationRefresh(f.conn)
	require.Eventually(t, func() bool { return len(f.client.named("notifications")) == 1 }, time.Second, 10*time.Millisecond)
	payload := f.client.named("notifications")[0].args[0].(NotificationsPayload)
	assert.Equal(t, 1, payload.Unread)
	assert.Equal(t, 1, f.polls.ActiveCount())

	HandleJoinGame(f.conn)("s1")
	HandleDisconnecting(f.conn)()
	assert.Equal(t, 0, f.polls.ActiveCount())
	assert.True(t, f.channel.closed)
	assert.Empty(t, f.conns.GetConnections("me"))
}

func TestArgParsing(t *testing.T) {
	assert.Equal(t, "s1", stringArg([]interface{}{"s1"}, "session_id"))
	assert.Equal(t, "s2", stringArg([]interface{}{map[string]interface{}{"session_id": "s2"}}, "session_id"))
	assert.Equal(t, "", stringArg(nil, "session_id"))

	i, ok := intArg([]interface{}{float64(4)}, "index")
	assert.True(t, ok)
	assert.Equal(t, 4, i)
	_, ok = intArg([]interface{}{float64(1.5)}, "index")
	assert.False(t, ok)
	_, ok = intArg([]interface{}{map[string]interface{}{}}, "index")
	assert.False(t, ok)
}

func TestSummarizeNeverReturnsNilList(t *testing.T) {
	p := Summarize(nil)
	assert.NotNil(t, p.Notifications)
	assert.Equal(t, 0, p.Unread)
}
