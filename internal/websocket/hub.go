package websocket

import (
	"encoding/json"
	"sync"

	"ai-notebook-be/internal/pkg/logger"
	"ai-notebook-be/pkg/events"
)

// Hub fans notebook activity events out to connected clients. A client that
// cannot keep up is dropped rather than allowed to block publishers.
type Hub struct {
	clients map[*Client]struct{}

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	logger logger.ILogger
}

func NewHub(log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]struct{}),
		logger:     log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{
				"clients": h.clientCount(),
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast implements service.EventBroadcaster.
func (h *Hub) Broadcast(evt events.Event) {
	data, err := json.Marshal(evt)
	if err != nil {
		h.logger.Error("Hub", "Failed to marshal event", map[string]interface{}{
			"type":  evt.Type,
			"error": err.Error(),
		})
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.Send <- data:
		default:
			// Slow consumer, let its pumps tear the connection down.
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) clientCount() int {
	return len(h.clients)
}
