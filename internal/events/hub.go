package events

import "sync"

// subscriberBuffer bounds how many undelivered events a single SSE client may
// lag behind before it starts losing them.
const subscriberBuffer = 10

// Hub fans import notifications out to SSE subscribers. One channel per
// connected client; Publish never blocks, so a slow client loses events
// rather than stalling the import path.
type Hub struct {
	mu      sync.Mutex
	clients map[chan string]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[chan string]struct{})}
}

func (h *Hub) Subscribe() chan string {
	ch := make(chan string, subscriberBuffer)
	h.mu.Lock()
	h.clients[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe closes the channel, so the subscriber's receive loop ends on
// its own.
func (h *Hub) Unsubscribe(ch chan string) {
	h.mu.Lock()
	delete(h.clients, ch)
	h.mu.Unlock()
	close(ch)
}

func (h *Hub) Publish(evt string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.clients {
		select {
		case ch <- evt:
		default:
			// subscriber full, drop
		}
	}
}
