package pushchannel

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	eiopacket "github.com/zishang520/engine.io-go-parser/packet"
	eioparser "github.com/zishang520/engine.io-go-parser/parser"
	eiotypes "github.com/zishang520/engine.io-go-parser/types"
	sioparser "github.com/zishang520/socket.io-go-parser/v2/parser"
)

var (
	errEmptyPacket = errors.New("empty packet")

	engine = eioparser.Parserv4()
)

// packet is a decoded frame. Event and data are only set for events; data
// also holds the payload of open, connect and connect_error packets.
type packet struct {
	engineType eiopacket.Type
	socketType sioparser.PacketType
	namespace  string
	event      string
	data       json.RawMessage
}

// handshake is the payload of the Engine.IO open packet
type handshake struct {
	SID          string `json:"sid"`
	PingInterval int    `json:"pingInterval"`
	PingTimeout  int    `json:"pingTimeout"`
}

func encodeEngine(t eiopacket.Type, body []byte) ([]byte, error) {
	p := &eiopacket.Packet{Type: t}
	if body != nil {
		p.Data = eiotypes.NewStringBuffer(body)
	}
	buf, err := engine.EncodePacket(p, false)
	if err != nil {
		return nil, fmt.Errorf("encoding %s packet: %w", t, err)
	}
	return buf.Bytes(), nil
}

// encodeSocket wraps a Socket.IO packet in an Engine.IO message
func encodeSocket(p *sioparser.Packet) ([]byte, error) {
	bufs := sioparser.NewEncoder().Encode(p)
	if len(bufs) != 1 {
		return nil, errors.New("binary payloads are not supported")
	}
	return encodeEngine(eiopacket.MESSAGE, bufs[0].Bytes())
}

func encodeConnect(auth map[string]interface{}) ([]byte, error) {
	p := &sioparser.Packet{Type: sioparser.CONNECT, Nsp: "/"}
	if len(auth) > 0 {
		if _, err := json.Marshal(auth); err != nil {
			return nil, fmt.Errorf("encoding connect payload: %w", err)
		}
		p.Data = auth
	}
	return encodeSocket(p)
}

func encodeDisconnect() ([]byte, error) {
	return encodeSocket(&sioparser.Packet{Type: sioparser.DISCONNECT, Nsp: "/"})
}

func encodePong() ([]byte, error) {
	return encodeEngine(eiopacket.PONG, nil)
}

func encodeEvent(event string, payload interface{}) ([]byte, error) {
	args := []any{event}
	if payload != nil {
		// The encoder drops data it cannot marshal, so check first
		if _, err := json.Marshal(payload); err != nil {
			return nil, fmt.Errorf("encoding event %s: %w", event, err)
		}
		args = append(args, payload)
	}
	return encodeSocket(&sioparser.Packet{Type: sioparser.EVENT, Nsp: "/", Data: args})
}

func decode(frame []byte) (packet, error) {
	if len(frame) == 0 {
		return packet{}, errEmptyPacket
	}
	ep, err := engine.DecodePacket(eiotypes.NewStringBuffer(frame))
	if err != nil {
		return packet{}, fmt.Errorf("decoding engine packet: %w", err)
	}
	p := packet{engineType: ep.Type}

	var body []byte
	if ep.Data != nil {
		if body, err = io.ReadAll(ep.Data); err != nil {
			return p, err
		}
	}

	switch ep.Type {
	case eiopacket.OPEN:
		p.data = json.RawMessage(body)
		return p, nil
	case eiopacket.MESSAGE:
	default:
		return p, nil
	}

	if len(body) == 0 {
		return p, errEmptyPacket
	}
	sp, err := decodeSocket(string(body))
	if err != nil {
		return p, err
	}
	p.socketType = sp.Type
	p.namespace = sp.Nsp

	switch sp.Type {
	case sioparser.EVENT, sioparser.ACK:
		args, _ := sp.Data.([]any)
		if sp.Type == sioparser.EVENT {
			if len(args) == 0 {
				return p, errors.New("event packet without payload")
			}
			p.event, _ = args[0].(string)
			args = args[1:]
		}
		if len(args) > 0 {
			if p.data, err = json.Marshal(args[0]); err != nil {
				return p, err
			}
		}
	case sioparser.CONNECT, sioparser.CONNECT_ERROR:
		if sp.Data != nil {
			if p.data, err = json.Marshal(sp.Data); err != nil {
				return p, err
			}
		}
	case sioparser.DISCONNECT:
	default:
		return p, fmt.Errorf("unsupported socket packet type %q", byte(sp.Type))
	}
	return p, nil
}

// decodeSocket runs one text frame through the Socket.IO decoder, which
// reports complete packets through its "decoded" event.
func decodeSocket(body string) (*sioparser.Packet, error) {
	dec := sioparser.NewDecoder()
	defer dec.Destroy()

	var decoded *sioparser.Packet
	dec.On("decoded", func(args ...any) {
		if len(args) > 0 {
			decoded, _ = args[0].(*sioparser.Packet)
		}
	})
	if err := dec.Add(body); err != nil {
		return nil, fmt.Errorf("decoding socket packet: %w", err)
	}
	if decoded == nil {
		return nil, errors.New("incomplete socket packet")
	}
	return decoded, nil
}
