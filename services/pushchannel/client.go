package pushchannel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"Playhub/utils/logger"

	"github.com/gorilla/websocket"
	eiopacket "github.com/zishang520/engine.io-go-parser/packet"
	sioparser "github.com/zishang520/socket.io-go-parser/v2/parser"
)

// Lifecycle events dispatched by the client itself
const (
	EventConnect    = "connect"
	EventDisconnect = "disconnect"
)

var ErrClosed = errors.New("push channel closed")

// Handler receives the first argument of an event, nil when absent
type Handler func(data json.RawMessage)

// Channel is a push connection to the game service
type Channel interface {
	On(event string, h Handler)
	Off(event string)
	OffAll()
	Connect(ctx context.Context) error
	Emit(event string, payload interface{}) error
	Close() error
}

// Config describes how to reach a Socket.IO server
type Config struct {
	URL              string
	Auth             map[string]interface{}
	HandshakeTimeout time.Duration
}

// Client is a Socket.IO client over the WebSocket transport, default
// namespace only. Handlers run on the reader goroutine, one at a time.
type Client struct {
	cfg Config

	mu       sync.Mutex
	handlers map[string][]Handler
	conn     *websocket.Conn
	closed   bool

	writeMu sync.Mutex
}

func New(cfg Config) *Client {
	if cfg.HandshakeTimeout == 0 {
		cfg.HandshakeTimeout = 5 * time.Second
	}
	return &Client{cfg: cfg, handlers: make(map[string][]Handler)}
}

func (c *Client) On(event string, h Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers[event] = append(c.handlers[event], h)
}

// Off removes every handler of event
func (c *Client) Off(event string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.handlers, event)
}

// OffAll removes every registered handler
func (c *Client) OffAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = make(map[string][]Handler)
}

// HandlerCount returns the number of registered handlers
func (c *Client) HandlerCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, hs := range c.handlers {
		n += len(hs)
	}
	return n
}

// Connect dials the server, performs the Engine.IO and Socket.IO handshakes,
// dispatches "connect" and starts reading events.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.conn != nil {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	wsURL, err := socketURL(c.cfg.URL)
	if err != nil {
		return err
	}

	dialer := websocket.Dialer{HandshakeTimeout: c.cfg.HandshakeTimeout}
	conn, _, err := dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return fmt.Errorf("dialing %s: %w", wsURL, err)
	}

	hs, connectData, err := c.handshake(conn)
	if err != nil {
		conn.Close()
		return err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		conn.Close()
		return ErrClosed
	}
	c.conn = conn
	c.mu.Unlock()

	logger.Debugf("[PUSH] connected to %s (sid %s)", c.cfg.URL, hs.SID)
	c.dispatch(EventConnect, connectData)
	go c.reader(conn, hs)
	return nil
}

func (c *Client) handshake(conn *websocket.Conn) (handshake, json.RawMessage, error) {
	var hs handshake
	deadline := time.Now().Add(c.cfg.HandshakeTimeout)
	conn.SetReadDeadline(deadline)
	defer conn.SetReadDeadline(time.Time{})

	p, err := readPacket(conn)
	if err != nil {
		return hs, nil, fmt.Errorf("reading open packet: %w", err)
	}
	if p.engineType != eiopacket.OPEN {
		return hs, nil, fmt.Errorf("expected open packet, got %q", p.engineType)
	}
	if err := json.Unmarshal(p.data, &hs); err != nil {
		return hs, nil, fmt.Errorf("decoding open packet: %w", err)
	}

	frame, err := encodeConnect(c.cfg.Auth)
	if err != nil {
		return hs, nil, err
	}
	if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		return hs, nil, fmt.Errorf("sending connect: %w", err)
	}

	for {
		p, err := readPacket(conn)
		if err != nil {
			return hs, nil, fmt.Errorf("waiting for connect: %w", err)
		}
		switch {
		case p.engineType == eiopacket.PING:
			pong, err := encodePong()
			if err != nil {
				return hs, nil, err
			}
			if err := conn.WriteMessage(websocket.TextMessage, pong); err != nil {
				return hs, nil, err
			}
		case p.engineType == eiopacket.MESSAGE && p.socketType == sioparser.CONNECT:
			return hs, p.data, nil
		case p.engineType == eiopacket.MESSAGE && p.socketType == sioparser.CONNECT_ERROR:
			return hs, nil, fmt.Errorf("connection refused by server: %s", string(p.data))
		case p.engineType == eiopacket.CLOSE:
			return hs, nil, ErrClosed
		}
	}
}

func (c *Client) reader(conn *websocket.Conn, hs handshake) {
	// The server pings every pingInterval; missing pings means it is gone
	timeout := time.Duration(hs.PingInterval+hs.PingTimeout) * time.Millisecond
	for {
		if timeout > 0 {
			conn.SetReadDeadline(time.Now().Add(timeout))
		}
		_, frame, err := conn.ReadMessage()
		if err != nil {
			if !c.isClosed() {
				logger.Warnf("[PUSH] read failed: %v", err)
			}
			c.teardown(conn)
			return
		}
		p, err := decode(frame)
		if err != nil {
			logger.Debugf("[PUSH] dropping malformed packet %q: %v", string(frame), err)
			continue
		}

		switch p.engineType {
		case eiopacket.PING:
			pong, err := encodePong()
			if err == nil {
				err = c.write(pong)
			}
			if err != nil {
				c.teardown(conn)
				return
			}
		case eiopacket.CLOSE:
			c.teardown(conn)
			return
		case eiopacket.MESSAGE:
			switch p.socketType {
			case sioparser.EVENT:
				if p.namespace == "" || p.namespace == "/" {
					c.dispatch(p.event, p.data)
				}
			case sioparser.DISCONNECT:
				c.teardown(conn)
				return
			}
		}
	}
}

// teardown runs once per connection when the reader stops
func (c *Client) teardown(conn *websocket.Conn) {
	c.mu.Lock()
	wasOpen := c.conn == conn
	if wasOpen {
		c.conn = nil
	}
	c.mu.Unlock()
	conn.Close()
	if wasOpen {
		c.dispatch(EventDisconnect, nil)
	}
}

func (c *Client) dispatch(event string, data json.RawMessage) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	hs := append([]Handler(nil), c.handlers[event]...)
	c.mu.Unlock()

	for _, h := range hs {
		h(data)
	}
}

// Emit sends an event with one payload argument
func (c *Client) Emit(event string, payload interface{}) error {
	frame, err := encodeEvent(event, payload)
	if err != nil {
		return err
	}
	return c.write(frame)
}

func (c *Client) write(frame []byte) error {
	c.mu.Lock()
	conn := c.conn
	closed := c.closed
	c.mu.Unlock()
	if closed || conn == nil {
		return ErrClosed
	}

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	return conn.WriteMessage(websocket.TextMessage, frame)
}

// Close drops every handler, says goodbye to the server and closes the
// socket. It is safe to call on a client that never connected, and twice.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.handlers = make(map[string][]Handler)
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn == nil {
		return nil
	}
	if frame, err := encodeDisconnect(); err == nil {
		c.writeMu.Lock()
		conn.SetWriteDeadline(time.Now().Add(time.Second))
		_ = conn.WriteMessage(websocket.TextMessage, frame)
		c.writeMu.Unlock()
	}
	return conn.Close()
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func readPacket(conn *websocket.Conn) (packet, error) {
	_, data, err := conn.ReadMessage()
	if err != nil {
		return packet{}, err
	}
	return decode(data)
}

// socketURL turns a server base URL into its Engine.IO WebSocket endpoint
func socketURL(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid push channel URL %q: %w", base, err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported push channel scheme %q", u.Scheme)
	}
	if u.Path == "" || u.Path == "/" {
		u.Path = "/socket.io/"
	} else if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	q := u.Query()
	q.Set("EIO", "4")
	q.Set("transport", "websocket")
	u.RawQuery = q.Encode()
	return u.String(), nil
}
