package room

import (
	"fmt"

	"github.com/gorilla/websocket"
)

// Client is a spectator connected to a table via websockets.
// Clients only receive pushed state; intents arrive over plain HTTP.
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	table *Table
}

// NewClient returns a new client object
func NewClient(conn *websocket.Conn, table *Table) *Client {
	return &Client{
		send:  make(chan interface{}, 256),
		Close: make(chan string),
		Conn:  conn,
		table: table,
	}
}

// Send sends a message to the web client.
// It returns false if the client's buffer is full.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the client
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.Conn.RemoteAddr(), c.table.UUID)
}
