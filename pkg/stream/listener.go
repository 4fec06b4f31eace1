// Package stream subscribes to the platform's live transaction feed over
// WebSocket. The REST pipeline stays the source of truth for analytics; the
// stream exists for watching trades as they happen.
package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iqinsightlabs/iq-agent-analytics/internal/core/domain"
)

const (
	initialBackoff = 1 * time.Second
	maxBackoff     = 60 * time.Second
	readTimeout    = 90 * time.Second
)

// envelope is one frame of the live feed.
type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Listener maintains a WebSocket subscription and forwards transaction
// events to the output channel. Frames that are not transactions are
// skipped; a full channel drops the event rather than blocking the reader.
type Listener struct {
	url     string
	out     chan<- domain.Transaction
	backoff time.Duration
}

// NewListener creates a listener for the given feed URL.
func NewListener(url string, out chan<- domain.Transaction) *Listener {
	return &Listener{
		url:     url,
		out:     out,
		backoff: initialBackoff,
	}
}

// Run connects and reads until ctx is cancelled, reconnecting with
// exponential backoff on any failure.
func (l *Listener) Run(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		if err := l.connectAndRead(ctx); err != nil {
			log.Printf("live feed disconnected: %v (reconnecting in %v)", err, l.backoff)
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(l.backoff):
		}

		l.backoff *= 2
		if l.backoff > maxBackoff {
			l.backoff = maxBackoff
		}
	}
}

func (l *Listener) connectAndRead(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, l.url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", l.url, err)
	}
	defer conn.Close()

	log.Printf("📡 Connected to live feed at %s", l.url)
	l.backoff = initialBackoff

	// Close the connection when ctx ends so ReadMessage unblocks.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		if err := conn.SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
			return fmt.Errorf("set read deadline: %w", err)
		}
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
		l.handle(payload)
	}
}

func (l *Listener) handle(payload []byte) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return
	}
	if env.Type != "transaction" {
		return
	}

	var txn domain.Transaction
	if err := json.Unmarshal(env.Data, &txn); err != nil {
		return
	}

	select {
	case l.out <- txn:
	default:
		log.Printf("live feed channel full, dropping transaction")
	}
}
