package socketio_types

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zishang520/socket.io/v2/socket"
)

type fakeClient struct {
	id     socket.SocketId
	mu     sync.Mutex
	events []string
}

func (f *fakeClient) Id() socket.SocketId { return f.id }

func (f *fakeClient) Emit(ev string, args ...any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
	return nil
}

func TestConnectionsPerPlayer(t *testing.T) {
	s := NewSocketServer()
	tab1 := &fakeClient{id: "a"}
	tab2 := &fakeClient{id: "b"}
	s.AddConnection("p1", tab1)
	s.AddConnection("p1", tab2)

	assert.Len(t, s.GetConnections("p1"), 2)
	assert.Equal(t, 2, s.EmitToPlayer("p1", "navigate", map[string]string{"url": "/x"}))
	assert.Equal(t, []string{"navigate"}, tab1.events)
	assert.Equal(t, 0, s.EmitToPlayer("p2", "navigate", nil))

	s.RemoveConnection("p1", "a")
	assert.Len(t, s.GetConnections("p1"), 1)
	s.RemoveConnection("p1", "b")
	assert.Empty(t, s.UserConnections)
}
