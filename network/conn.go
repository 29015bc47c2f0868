package network

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"livelink/publisher"
)

var ErrClosed = errors.New("websocket: session closed")

// Dialer opens gorilla websocket sessions. The zero value uses
// websocket.DefaultDialer and no write deadline, i.e. transport defaults.
type Dialer struct {
	WS           *websocket.Dialer
	WriteTimeout time.Duration // 0 disables the write deadline
}

func (d Dialer) Dial(ctx context.Context, endpoint string) (publisher.Conn, error) {
	ws := d.WS
	if ws == nil {
		ws = websocket.DefaultDialer
	}
	c, resp, err := ws.DialContext(ctx, endpoint, nil)
	if err != nil {
		if resp != nil {
			slog.Debug("handshake rejected", "endpoint", endpoint, "status", resp.Status)
		}
		return nil, err
	}
	return newConn(c, d.WriteTimeout), nil
}

// Conn sends text frames on a websocket session. A reader goroutine drains
// whatever the peer sends so ping and close frames get handled; the first read
// error is reported by the next Send.
type Conn struct {
	ws           *websocket.Conn
	writeTimeout time.Duration

	mu      sync.Mutex
	readErr error
	closed  bool

	done      chan struct{}
	closeOnce sync.Once
}

func newConn(ws *websocket.Conn, writeTimeout time.Duration) *Conn {
	c := &Conn{
		ws:           ws,
		writeTimeout: writeTimeout,
		done:         make(chan struct{}),
	}
	go c.readLoop()
	return c
}

func (c *Conn) readLoop() {
	defer close(c.done)
	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			c.mu.Lock()
			c.readErr = err
			c.mu.Unlock()
			return
		}
	}
}

func (c *Conn) Send(b []byte) error {
	c.mu.Lock()
	closed, err := c.closed, c.readErr
	c.mu.Unlock()
	if closed {
		return ErrClosed
	}
	if err != nil {
		return err
	}

	if c.writeTimeout > 0 {
		_ = c.ws.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	}
	return c.ws.WriteMessage(websocket.TextMessage, b)
}

// Close sends a normal close frame and tears the socket down. Safe to call
// more than once.
func (c *Conn) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()

		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = c.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		err = c.ws.Close()
		<-c.done
	})
	return err
}
