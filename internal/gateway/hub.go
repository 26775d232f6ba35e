package gateway

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Hub fans invalidation events out to active subscribers. Each subscriber
// holds a buffered channel of tags; a slow subscriber drops events rather
// than blocking the mutation path, which is safe because subscribers re-read
// the whole collection on any event for their tag.
type Hub struct {
	Register   chan chan Tag
	Unregister chan chan Tag
	Broadcast  chan Tag

	clients map[chan Tag]bool
	mutex   sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		Register:   make(chan chan Tag),
		Unregister: make(chan chan Tag),
		Broadcast:  make(chan Tag),
		clients:    make(map[chan Tag]bool),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case ch := <-h.Register:
			h.mutex.Lock()
			h.clients[ch] = true
			h.mutex.Unlock()

		case ch := <-h.Unregister:
			h.mutex.Lock()
			if _, ok := h.clients[ch]; ok {
				delete(h.clients, ch)
				close(ch)
			}
			h.mutex.Unlock()

		case tag := <-h.Broadcast:
			h.mutex.Lock()
			for ch := range h.clients {
				select {
				case ch <- tag:
				default:
					logrus.WithField("tag", tag).Debug("subscriber behind, dropping invalidation event")
				}
			}
			h.mutex.Unlock()
		}
	}
}
