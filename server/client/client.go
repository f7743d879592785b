package client

import (
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Client is one websocket connection. Outgoing frames go through SendQueue
// and are written by WritePump.
type Client struct {
	Conn      *websocket.Conn
	SendQueue chan []byte
	ID        string
	RoomId    string
	PlayerID  string

	mu     sync.Mutex
	closed bool
}

func New(conn *websocket.Conn, queueSize int) *Client {
	return &Client{
		Conn:      conn,
		SendQueue: make(chan []byte, queueSize),
		ID:        uuid.New().String(),
	}
}

// Send queues a frame without blocking. It reports false when the queue is
// full or the client is closed.
func (c *Client) Send(message []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	select {
	case c.SendQueue <- message:
		return true
	default:
		return false
	}
}

// WritePump writes queued frames until the queue is closed or a write fails.
func (c *Client) WritePump() error {
	for msg := range c.SendQueue {
		if err := c.Conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
			log.Printf("Binary message write error for client %s: %v", c.ID, err)
			return err
		}
	}
	return nil
}

// Close stops the writer and closes the connection. It is safe to call twice.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.SendQueue)
	if c.Conn != nil {
		c.Conn.Close()
	}
}
