package pushchannel

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer speaks just enough Engine.IO/Socket.IO to drive the client
type fakeServer struct {
	t        *testing.T
	received chan string
	conns    chan *websocket.Conn
}

func newFakeServer(t *testing.T) (*fakeServer, *httptest.Server) {
	fs := &fakeServer{t: t, received: make(chan string, 16), conns: make(chan *websocket.Conn, 1)}
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/socket.io/", r.URL.Path)
		assert.Equal(t, "4", r.URL.Query().Get("EIO"))
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conn.WriteMessage(websocket.TextMessage, []byte(`0{"sid":"e1","pingInterval":25000,"pingTimeout":20000}`))
		fs.conns <- conn
		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				close(fs.received)
				return
			}
			msg := string(data)
			if strings.HasPrefix(msg, "40") {
				conn.WriteMessage(websocket.TextMessage, []byte(`40{"sid":"s1"}`))
			}
			fs.received <- msg
		}
	}))
	return fs, srv
}

func (fs *fakeServer) next() string {
	select {
	case msg := <-fs.received:
		return msg
	case <-time.After(time.Second):
		fs.t.Fatal("timed out waiting for client frame")
		return ""
	}
}

func TestClientRoundTrip(t *testing.T) {
	fs, srv := newFakeServer(t)
	defer srv.Close()

	client := New(Config{URL: srv.URL, Auth: map[string]interface{}{"token": "t"}})

	var mu sync.Mutex
	var connected bool
	updates := make(chan json.RawMessage, 1)
	client.On(EventConnect, func(json.RawMessage) {
		mu.Lock()
		connected = true
		mu.Unlock()
	})
	client.On("game_state_update", func(data json.RawMessage) { updates <- data })

	require.NoError(t, client.Connect(context.Background()))
	assert.Equal(t, `40{"token":"t"}`, fs.next())
	mu.Lock()
	assert.True(t, connected)
	mu.Unlock()

	require.NoError(t, client.Emit("join_game", map[string]string{"session_id": "s1"}))
	assert.Equal(t, `42["join_game",{"session_id":"s1"}]`, fs.next())

	conn := <-fs.conns
	conn.WriteMessage(websocket.TextMessage, []byte(`42["game_state_update",{"status":"in_progress"}]`))
	select {
	case data := <-updates:
		assert.JSONEq(t, `{"status":"in_progress"}`, string(data))
	case <-time.After(time.Second):
		t.Fatal("update not dispatched")
	}

	conn.WriteMessage(websocket.TextMessage, []byte("2"))
	assert.Equal(t, "3", fs.next())

	require.NoError(t, client.Close())
	assert.Equal(t, "41", fs.next())
	assert.Equal(t, 0, client.HandlerCount())
	assert.ErrorIs(t, client.Emit("make_move", nil), ErrClosed)
}

func TestCloseWithoutConnect(t *testing.T) {
	client := New(Config{URL: "ws://127.0.0.1:1"})
	client.On("game_state_update", func(json.RawMessage) {})
	assert.NoError(t, client.Close())
	assert.NoError(t, client.Close())
	assert.Equal(t, 0, client.HandlerCount())
	assert.ErrorIs(t, client.Connect(context.Background()), ErrClosed)
}

func TestConnectFailsOnUnreachableServer(t *testing.T) {
	client := New(Config{URL: "ws://127.0.0.1:1", HandshakeTimeout: 200 * time.Millisecond})
	assert.Error(t, client.Connect(context.Background()))
	assert.NoError(t, client.Close())
}

func TestOffRemovesHandlers(t *testing.T) {
	client := New(Config{URL: "ws://unused"})
	client.On("a", func(json.RawMessage) {})
	client.On("a", func(json.RawMessage) {})
	client.On("b", func(json.RawMessage) {})
	assert.Equal(t, 3, client.HandlerCount())
	client.Off("a")
	assert.Equal(t, 1, client.HandlerCount())
}

func TestOffAll(t *testing.T) {
	client := New(Config{URL: "ws://unused"})
	client.On("a", func(json.RawMessage) {})
	client.On("b", func(json.RawMessage) {})
	client.OffAll()
	assert.Equal(t, 0, client.HandlerCount())
}
