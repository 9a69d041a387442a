// Command focus-watch tails the event feed of a running focus-demo
// dashboard over websocket.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/teslashibe/go-arfocus/internal/config"
	"github.com/teslashibe/go-arfocus/internal/log"
	"github.com/teslashibe/go-arfocus/pkg/feed"
	"github.com/teslashibe/go-arfocus/pkg/web"
)

func main() {
	host := flag.String("host", "localhost", "dashboard host")
	port := flag.String("port", config.DashboardPort(), "dashboard port")
	flag.Parse()

	log.Init(config.LogLevel())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if status, err := feed.Snapshot(*host, *port); err == nil {
		fmt.Printf("current state: %s  (%.2f, %.2f, %.2f)  placements: %d\n",
			status.State, status.X, status.Y, status.Z, status.Placements)
	} else {
		log.Warn("no status snapshot", "err", err)
	}

	client := feed.NewClient(*host, *port, func(event web.Event) {
		fmt.Printf("%s  [%s]  %s\n", event.Time, event.Type, event.Message)
	})

	if err := client.Run(ctx); err != nil && ctx.Err() == nil {
		log.Error("feed terminated", "err", err)
		os.Exit(1)
	}
}
