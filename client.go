package main

import (
	"net"

	"github.com/gobwas/ws/wsutil"
)

const sendQueueSize = 256

// Client is the outbound side of one connection. Frames are queued on a
// buffered channel so a slow reader never stalls the relay.
type Client struct {
	ID   string
	send chan []byte
}

func NewClient(id string) *Client {
	return &Client{ID: id, send: make(chan []byte, sendQueueSize)}
}

// Send queues a frame without blocking. A full queue drops the frame and
// reports false.
func (c *Client) Send(msg []byte) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *Client) Close() {
	close(c.send)
}

func (c *Client) WritePump(conn net.Conn) {
	for msg := range c.send {
		if err := wsutil.WriteServerText(conn, msg); err != nil {
			return
		}
	}
}
