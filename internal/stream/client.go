package stream

import (
	"time"

	"github.com/gorilla/websocket"
	"github.com/ppgiii/ViZ/pkg/logger"
)

const (
	// websocket config
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 256
)

// Client is one attached websocket viewer.
type Client struct {
	id     string
	conn   *websocket.Conn
	send   chan []byte
	hub    *Hub
	logger *logger.Logger
}

func newClient(id string, conn *websocket.Conn, hub *Hub, log logger.Interface) *Client {
	return &Client{
		id:     id,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
		hub:    hub,
		logger: log.WithFields(logger.NewField("client_id", id)),
	}
}

// ID returns the connection id assigned at attach time.
func (c *Client) ID() string {
	return c.id
}

// Enqueue queues a frame for delivery. A slow consumer loses frames
// rather than stalling the feed.
func (c *Client) Enqueue(message []byte) bool {
	select {
	case c.send <- message:
		return true
	default:
		return false
	}
}

// Close stops the write pump. The connection itself is closed by the
// pump that notices first.
func (c *Client) Close() {
	close(c.send)
}

// readPump drains the connection so close and pong control frames are
// processed. Data frames from the viewer are ignored.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Warn("stream read failed", logger.NewField("error", err.Error()))
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
