// Livetrades tails the platform's WebSocket transaction feed and logs each
// trade as it lands.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/iqinsightlabs/iq-agent-analytics/internal/config"
	"github.com/iqinsightlabs/iq-agent-analytics/internal/core/domain"
	"github.com/iqinsightlabs/iq-agent-analytics/pkg/stream"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	if cfg.LiveFeedURL == "" {
		log.Fatal("IQ_WS_URL environment variable is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	trades := make(chan domain.Transaction, 256)
	listener := stream.NewListener(cfg.LiveFeedURL, trades)
	go listener.Run(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-sigChan:
			log.Println("📡 Received interrupt signal")
			return
		case t := <-trades:
			side := "SELL"
			if t.IsBuy() {
				side = "BUY"
			}
			log.Printf("%s %-12s $%s (user %s)", side, t.AgentTicker(), t.UsdAmount().StringFixed(2), t.UserID())
		}
	}
}
