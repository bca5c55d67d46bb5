package socket_io

import (
	"time"

	platform "Playhub/constants/platform"
	"Playhub/services/identity"
	"Playhub/services/socket_io/handlers"
	socketio_types "Playhub/services/socket_io/types"
	"Playhub/utils"
	"Playhub/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/engine.io/v2/log"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io/v2/socket"
)

type MySocketServer socketio_types.SocketServer

// Start mounts the browser relay on router. Browsers authenticate the
// handshake with a socket ticket issued by the gate.
func (sio *MySocketServer) Start(router *gin.Engine, gate *identity.Gate, deps *handlers.Deps, debug bool) {
	log.DEBUG = debug
	c := socket.DefaultServerOptions()
	c.SetServeClient(true)
	c.SetPingInterval(5 * time.Second)
	c.SetPingTimeout(3 * time.Second)
	c.SetMaxHttpBufferSize(1000000)
	c.SetConnectTimeout(10 * time.Second)
	c.SetTransports(types.NewSet("polling", "websocket"))
	c.SetCors(&types.Cors{
		Origin:      "*",
		Credentials: true,
	})

	if sio.UserConnections == nil {
		sio.UserConnections = socketio_types.NewSocketServer().UserConnections
	}
	deps.Conns = (*socketio_types.SocketServer)(sio)

	sio.Sio_server = socket.NewServer(nil, nil)
	sio.Sio_server.On("connection", func(clients ...interface{}) {
		client := clients[0].(*socket.Socket)

		ticket, err := utils.HandshakeTicket(client)
		if err != nil {
			logger.Warnf("[SOCKET] rejected connection %s: %v", client.Id(), err)
			client.Disconnect(true)
			return
		}
		s, err := gate.RedeemTicket(ticket)
		if err != nil {
			logger.Warnf("[SOCKET] rejected connection %s: %v", client.Id(), err)
			client.Emit(platform.EVENT_ERROR, gin.H{"error": "Authentication failed: " + err.Error()})
			client.Disconnect(true)
			return
		}

		(*socketio_types.SocketServer)(sio).AddConnection(s.PlayerID, client)
		logger.Infof("[SOCKET] %s connected (socket %s)", s.Username, client.Id())

		conn := handlers.NewConnection(client, s, deps)
		handlers.StartNotificationRefresh(conn)

		client.On(platform.EVENT_JOIN_GAME, handlers.HandleJoinGame(conn))
		client.On(platform.EVENT_MAKE_MOVE, handlers.HandleMakeMove(conn))
		client.On(platform.EVENT_DISMISS_RESULT, handlers.HandleDismissResult(conn))
		client.On(platform.EVENT_LEAVE_GAME, handlers.HandleLeaveGame(conn))

		// NOTE: removes the connection from the map and stops its polls
		client.On("disconnecting", handlers.HandleDisconnecting(conn))
	})

	router.POST("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))
	router.GET("/socket.io/*f", gin.WrapH(sio.Sio_server.ServeHandler(c)))

	logger.Infof("[SOCKET] socket server started")
}

// Close disconnects every browser socket
func (sio *MySocketServer) Close() {
	if sio.Sio_server != nil {
		sio.Sio_server.Close(nil)
	}
}
