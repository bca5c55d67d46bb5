package socketio_types

import (
	"sync"

	"github.com/zishang520/socket.io/v2/socket"
)

// Client is the part of *socket.Socket the relay talks to
type Client interface {
	Id() socket.SocketId
	Emit(ev string, args ...any) error
}

// SocketServer holds the socket.io server and the live connections of
// every player. A player may have several tabs open.
type SocketServer struct {
	Sio_server *socket.Server
	// player id -> socket id -> connection
	UserConnections map[string]map[socket.SocketId]Client
	mutex           sync.RWMutex
}

func NewSocketServer() *SocketServer {
	return &SocketServer{
		UserConnections: make(map[string]map[socket.SocketId]Client),
	}
}

func (s *SocketServer) AddConnection(playerID string, client Client) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.UserConnections == nil {
		s.UserConnections = make(map[string]map[socket.SocketId]Client)
	}
	conns, ok := s.UserConnections[playerID]
	if !ok {
		conns = make(map[socket.SocketId]Client)
		s.UserConnections[playerID] = conns
	}
	conns[client.Id()] = client
}

func (s *SocketServer) RemoveConnection(playerID string, id socket.SocketId) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	conns := s.UserConnections[playerID]
	delete(conns, id)
	if len(conns) == 0 {
		delete(s.UserConnections, playerID)
	}
}

func (s *SocketServer) GetConnections(playerID string) []Client {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	clients := make([]Client, 0, len(s.UserConnections[playerID]))
	for _, c := range s.UserConnections[playerID] {
		clients = append(clients, c)
	}
	return clients
}

// EmitToPlayer sends event to every connection of playerID and returns how
// many connections it reached
func (s *SocketServer) EmitToPlayer(playerID, event string, payload interface{}) int {
	clients := s.GetConnections(playerID)
	for _, c := range clients {
		c.Emit(event, payload)
	}
	return len(clients)
}
