package hub

import (
	"time"

	"github.com/gofiber/websocket/v2"
)

const (
	// writeWait bounds a single write, including pings.
	writeWait = 10 * time.Second

	// pongWait is how long a subscriber may stay silent before the
	// connection is considered dead. pingPeriod must be shorter.
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// inboundLimit caps inbound frames. Feeds are one-way; subscribers
	// only answer pings, so anything larger is a misbehaving client.
	inboundLimit = 512
)

// Client is one subscriber connection on a feed.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan Message
}

// NewClient registers a subscriber with the feed's hub.
func NewClient(h *Hub, conn *websocket.Conn) *Client {
	c := &Client{
		hub:  h,
		conn: conn,
		send: make(chan Message, 64),
	}
	h.register <- c
	return c
}

// Run pumps the feed to the connection until it drops. Blocks; call it
// from the websocket handler.
func (c *Client) Run() {
	go c.writeLoop()
	c.drain()
}

// drain discards inbound frames. Reading exists only for pong handling
// and disconnect detection; a feed subscriber has nothing to say.
func (c *Client) drain() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(inboundLimit)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writeLoop owns every write on the connection: feed messages and
// keepalive pings. A closed send channel means the hub dropped us.
func (c *Client) writeLoop() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			kind := websocket.TextMessage
			if msg.Type == BinaryMessage {
				kind = websocket.BinaryMessage
			}
			if err := c.conn.WriteMessage(kind, msg.Data); err != nil {
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
