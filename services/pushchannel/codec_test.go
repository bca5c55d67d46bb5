package pushchannel

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	eiopacket "github.com/zishang520/engine.io-go-parser/packet"
	sioparser "github.com/zishang520/socket.io-go-parser/v2/parser"
)

func TestEncodeEvent(t *testing.T) {
	frame, err := encodeEvent("make_move", map[string]interface{}{"session_id": "s1", "position": 1})
	require.NoError(t, err)
	assert.Equal(t, `42["make_move",{"position":1,"session_id":"s1"}]`, string(frame))

	frame, err = encodeEvent("ping_me", nil)
	require.NoError(t, err)
	assert.Equal(t, `42["ping_me"]`, string(frame))
}

func TestEncodeEventKeepsStructFieldOrder(t *testing.T) {
	payload := struct {
		SessionID string `json:"session_id"`
		Position  int    `json:"position"`
	}{"s1", 3}
	frame, err := encodeEvent("make_move", payload)
	require.NoError(t, err)
	assert.Equal(t, `42["make_move",{"session_id":"s1","position":3}]`, string(frame))

	_, err = encodeEvent("bad", make(chan int))
	assert.Error(t, err)
}

func TestEncodeControlFrames(t *testing.T) {
	frame, err := encodeDisconnect()
	require.NoError(t, err)
	assert.Equal(t, "41", string(frame))

	frame, err = encodePong()
	require.NoError(t, err)
	assert.Equal(t, "3", string(frame))
}

func TestDecodeDisconnect(t *testing.T) {
	p, err := decode([]byte("41"))
	require.NoError(t, err)
	assert.Equal(t, sioparser.DISCONNECT, p.socketType)
}

func TestEncodeConnect(t *testing.T) {
	frame, err := encodeConnect(nil)
	require.NoError(t, err)
	assert.Equal(t, "40", string(frame))

	frame, err = encodeConnect(map[string]interface{}{"token": "abc"})
	require.NoError(t, err)
	assert.Equal(t, `40{"token":"abc"}`, string(frame))
}

func TestDecodeEvent(t *testing.T) {
	p, err := decode([]byte(`42["game_state_update",{"session_id":"s1","status":"in_progress"}]`))
	require.NoError(t, err)
	assert.Equal(t, eiopacket.MESSAGE, p.engineType)
	assert.Equal(t, sioparser.EVENT, p.socketType)
	assert.Equal(t, "game_state_update", p.event)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(p.data, &payload))
	assert.Equal(t, "s1", payload["session_id"])
}

func TestDecodeNamespaceAndAckID(t *testing.T) {
	p, err := decode([]byte(`42/games,17["update",1]`))
	require.NoError(t, err)
	assert.Equal(t, "/games", p.namespace)
	assert.Equal(t, "update", p.event)
	assert.Equal(t, "1", string(p.data))
}

func TestDecodeEngineFrames(t *testing.T) {
	p, err := decode([]byte(`0{"sid":"abc","pingInterval":25000,"pingTimeout":20000}`))
	require.NoError(t, err)
	assert.Equal(t, eiopacket.OPEN, p.engineType)
	var hs handshake
	require.NoError(t, json.Unmarshal(p.data, &hs))
	assert.Equal(t, "abc", hs.SID)
	assert.Equal(t, 25000, hs.PingInterval)

	p, err = decode([]byte("2"))
	require.NoError(t, err)
	assert.Equal(t, eiopacket.PING, p.engineType)

	p, err = decode([]byte(`40{"sid":"xyz"}`))
	require.NoError(t, err)
	assert.Equal(t, sioparser.CONNECT, p.socketType)
	assert.JSONEq(t, `{"sid":"xyz"}`, string(p.data))
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for _, frame := range []string{"", "9", "4", `42`, `42[]`, `42{"a":1}`, "4x"} {
		_, err := decode([]byte(frame))
		assert.Error(t, err, "frame %q", frame)
	}
}

func TestSocketURL(t *testing.T) {
	u, err := socketURL("http://localhost:5000")
	require.NoError(t, err)
	assert.Equal(t, "ws://localhost:5000/socket.io/?EIO=4&transport=websocket", u)

	u, err = socketURL("https://games.example.com/realtime")
	require.NoError(t, err)
	assert.Equal(t, "wss://games.example.com/realtime/?EIO=4&transport=websocket", u)

	_, err = socketURL("ftp://nope")
	assert.Error(t, err)
}
