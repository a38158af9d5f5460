package realtime

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/walkout/backend/internal/domain/checkout"
)

const writeTimeout = 10 * time.Second

// Conn adapts a websocket connection to the Pusher interface. Publishes can
// arrive from concurrent request handlers while the read loop owns the
// connection, so writes are serialized with a mutex.
type Conn struct {
	ws *websocket.Conn
	mu sync.Mutex
}

// NewConn wraps a websocket connection
func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{ws: ws}
}

// PushCart writes the snapshot as a JSON text frame
func (c *Conn) PushCart(snapshot checkout.CartSnapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.ws.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return err
	}
	return c.ws.WriteJSON(snapshot)
}

// ReadUntilClosed drains inbound frames (keepalives) until the peer closes
// or the connection breaks. It returns when the subscription is over.
func (c *Conn) ReadUntilClosed() {
	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			return
		}
	}
}

// Close closes the underlying websocket connection
func (c *Conn) Close() error {
	return c.ws.Close()
}
