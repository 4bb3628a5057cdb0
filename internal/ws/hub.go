package ws

import (
	"context"
	"log"
	"sync"
)

const (
	broadcastBuffer = 256
	clientBuffer    = 32
)

// Hub fans content notifications out to every connected admin or visitor
// tab. A client whose buffer is full is dropped rather than awaited.
type Hub struct {
	clients    map[*Client]struct{}
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		broadcast:  make(chan []byte, broadcastBuffer),
		register:   make(chan *Client, 64),
		unregister: make(chan *Client, 64),
		logger:     logger,
	}
}

// Run owns the client set until ctx is done, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			return

		case c := <-h.register:
			if c == nil {
				continue
			}
			h.mu.Lock()
			h.clients[c] = struct{}{}
			total := len(h.clients)
			h.mu.Unlock()
			h.logf("[WS] connected clients=%d", total)

		case c := <-h.unregister:
			h.remove(c)

		case msg := <-h.broadcast:
			h.mu.RLock()
			snapshot := make([]*Client, 0, len(h.clients))
			for c := range h.clients {
				snapshot = append(snapshot, c)
			}
			h.mu.RUnlock()

			for _, c := range snapshot {
				select {
				case c.send <- msg:
				default:
					h.remove(c)
				}
			}
			h.logf("[WS] broadcast clients=%d", len(snapshot))
		}
	}
}

func (h *Hub) remove(c *Client) {
	if c == nil {
		return
	}
	h.mu.Lock()
	_, ok := h.clients[c]
	if ok {
		delete(h.clients, c)
		close(c.send)
	}
	total := len(h.clients)
	h.mu.Unlock()
	if ok {
		h.logf("[WS] disconnected clients=%d", total)
	}
}

func (h *Hub) Register(c *Client) {
	if h == nil {
		return
	}
	h.register <- c
}

func (h *Hub) Unregister(c *Client) {
	if h == nil {
		return
	}
	h.unregister <- c
}

// Broadcast queues msg for every client. It never blocks the caller.
func (h *Hub) Broadcast(msg []byte) {
	if h == nil {
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		h.logf("[WS] broadcast dropped reason=buffer_full")
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) logf(format string, args ...any) {
	if h.logger != nil {
		h.logger.Printf(format, args...)
	}
}
