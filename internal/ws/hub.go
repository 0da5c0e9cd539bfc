package ws

import (
	"sync"

	"skillseeker/internal/pkg/logger"

	"github.com/google/uuid"
)

type message struct {
	userID  uuid.UUID
	payload []byte
}

// Hub fans change events out to the connected clients of a single user.
// Events are fire-and-forget: a slow client drops messages rather than
// blocking writers.
type Hub struct {
	clients    map[*Client]bool
	send       chan message
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	stopOnce   sync.Once
	mutex      sync.RWMutex
	log        *logger.Logger
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		send:       make(chan message, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		done:       make(chan struct{}),
		log:        log,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case <-h.done:
			h.mutex.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mutex.Unlock()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mutex.Unlock()
			h.log.Debug("ws client connected", "user_id", client.userID, "total_clients", total)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mutex.Unlock()
			h.log.Debug("ws client disconnected", "user_id", client.userID, "total_clients", total)

		case msg := <-h.send:
			// Slow clients are dropped right here; going back through the
			// unregister channel could block the loop on itself.
			h.mutex.Lock()
			for client := range h.clients {
				if client.userID != msg.userID {
					continue
				}
				select {
				case client.send <- msg.payload:
				default:
					delete(h.clients, client)
					close(client.send)
					h.log.Debug("ws client dropped", "reason", "slow_consumer", "user_id", client.userID)
				}
			}
			h.mutex.Unlock()
		}
	}
}

// Stop shuts the run loop down and closes every client send channel.
func (h *Hub) Stop() {
	if h == nil {
		return
	}
	h.stopOnce.Do(func() { close(h.done) })
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Send queues payload for every connection of userID. Dropped when the
// hub buffer is full.
func (h *Hub) Send(userID uuid.UUID, payload []byte) {
	if h == nil {
		return
	}
	select {
	case h.send <- message{userID: userID, payload: payload}:
	default:
		h.log.Warn("ws event dropped", "reason", "buffer_full", "user_id", userID)
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}
