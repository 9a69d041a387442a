// Package feed provides a websocket client for a focus dashboard's
// event stream. It lets external tooling tail placements and state
// changes without linking the controller itself.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"

	"github.com/teslashibe/go-arfocus/internal/log"
	"github.com/teslashibe/go-arfocus/pkg/web"
)

// Handler receives decoded events from the feed.
type Handler func(event web.Event)

// Client subscribes to a dashboard's /ws/events feed.
type Client struct {
	url     string
	handler Handler
}

// NewClient creates a feed client for the dashboard at host:port.
func NewClient(host, port string, handler Handler) *Client {
	return &Client{
		url:     fmt.Sprintf("ws://%s:%s/ws/events", host, port),
		handler: handler,
	}
}

// Run connects and delivers events until the context is cancelled or
// the connection drops.
func (c *Client) Run(ctx context.Context) error {
	dialer := websocket.Dialer{
		HandshakeTimeout: 10 * time.Second,
	}

	conn, _, err := dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("dial feed: %w", err)
	}
	defer conn.Close()

	log.Info("subscribed to focus feed", "url", c.url)

	// Close the connection when the context ends so the read loop
	// unblocks.
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("read feed: %w", err)
		}

		var event web.Event
		if err := json.Unmarshal(data, &event); err != nil {
			log.Warn("skipping malformed feed message", "err", err)
			continue
		}

		if c.handler != nil {
			c.handler(event)
		}
	}
}
