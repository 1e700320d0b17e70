// Package feed pushes store snapshots to presentation-layer clients over
// websocket. It is a read-only surface: the store's action methods remain
// the only mutation path.
package feed

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"moneyprinter/internal/infra"
	"moneyprinter/internal/store"

	"github.com/gorilla/websocket"
)

// Broadcaster fans each state version out to connected clients.
type Broadcaster struct {
	clients  map[*websocket.Conn]struct{}
	mu       sync.Mutex
	upgrader websocket.Upgrader
	metrics  *infra.Metrics
}

// NewBroadcaster creates a broadcaster. Wire it with store.Subscribe.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		clients:  make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		metrics:  infra.GlobalMetrics,
	}
}

// Broadcast sends the snapshot to every connected client, dropping clients
// whose writes fail.
func (b *Broadcaster) Broadcast(snap store.State) {
	b.mu.Lock()
	defer b.mu.Unlock()

	msg, err := json.Marshal(snap)
	if err != nil {
		slog.Error("failed to marshal snapshot", slog.Any("error", err))
		return
	}
	for c := range b.clients {
		if err := c.WriteMessage(websocket.TextMessage, msg); err != nil {
			slog.Warn("feed client write failed", slog.Any("error", err))
			// Closing makes the read loop exit and finish the cleanup.
			c.Close()
			delete(b.clients, c)
		}
	}
	b.metrics.RecordBroadcast()
}

// ClientCount returns the number of connected clients.
func (b *Broadcaster) ClientCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.clients)
}

// Handler returns an http.HandlerFunc that accepts websocket connections.
func (b *Broadcaster) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := b.upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Warn("websocket upgrade failed", slog.Any("error", err))
			return
		}
		b.mu.Lock()
		b.clients[conn] = struct{}{}
		b.mu.Unlock()
		b.metrics.IncrementFeedClients()

		// Read loop keeps the connection alive and detects closes.
		go func() {
			defer func() {
				b.mu.Lock()
				delete(b.clients, conn)
				b.mu.Unlock()
				b.metrics.DecrementFeedClients()
				conn.Close()
			}()
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()
	}
}
