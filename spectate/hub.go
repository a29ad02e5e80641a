// Package spectate streams the game state to websocket clients.
package spectate

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/jtestard/classic-pong/pong"
	"golang.org/x/net/websocket"
)

// Hub fans snapshots out to connected spectators. A spectator that falls
// behind only ever sees the most recent snapshot.
type Hub struct {
	mu      sync.Mutex
	latest  *pong.Snapshot
	clients map[chan pong.Snapshot]struct{}
}

// NewHub creates a hub with no spectators
func NewHub() *Hub {
	return &Hub{clients: make(map[chan pong.Snapshot]struct{})}
}

// Publish records s as the latest state and queues it for every spectator
func (h *Hub) Publish(s pong.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.latest = &s
	for ch := range h.clients {
		select {
		case ch <- s:
		default:
			// replace the stale snapshot
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- s:
			default:
			}
		}
	}
}

// Clients returns the number of connected spectators
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) subscribe() chan pong.Snapshot {
	ch := make(chan pong.Snapshot, 1)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[ch] = struct{}{}
	if h.latest != nil {
		ch <- *h.latest
	}
	return ch
}

func (h *Hub) unsubscribe(ch chan pong.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, ch)
}

func (h *Hub) handleWsConnection(ws *websocket.Conn) {
	ch := h.subscribe()
	defer h.unsubscribe(ch)

	for s := range ch {
		if err := websocket.JSON.Send(ws, s); err != nil {
			return
		}
	}
}

// Handler serves the feed. Any origin is accepted.
func (h *Hub) Handler() http.Handler {
	return websocket.Server{Handler: websocket.Handler(h.handleWsConnection)}
}

// ListenAndServe serves the feed on addr until the listener fails
func (h *Hub) ListenAndServe(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/", h.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		return fmt.Errorf("spectator feed on %s: %w", addr, err)
	}
	return nil
}
