package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/zishang520/socket.io/v2/socket"
)

// HandshakeTicket reads the socket ticket the browser puts in the
// "authorization" field of the handshake auth data
func HandshakeTicket(client *socket.Socket) (string, error) {
	authData, ok := client.Handshake().Auth.(map[string]interface{})
	if !ok {
		client.Emit("error", gin.H{"error": "Authentication failed: missing auth data"})
		return "", errors.New("authentication data missing")
	}

	ticket, ok := authData["authorization"].(string)
	if !ok || ticket == "" {
		client.Emit("error", gin.H{"error": "Authentication failed: missing authorization ticket"})
		return "", errors.New("authorization ticket not found in handshake")
	}
	return ticket, nil
}
