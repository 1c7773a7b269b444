// Package feed is the in-process order event hub. The back-office websocket
// fans its events out to connected admin clients.
package feed

import (
	"sync"

	"github.com/devshahzaibali/FSH-Traders/models"
)

type EventType string

const (
	OrderCreated  EventType = "order_created"
	StatusChanged EventType = "status_changed"
)

type Event struct {
	Type  EventType    `json:"type"`
	Order models.Order `json:"order"`
}

type Hub struct {
	mu   sync.Mutex
	subs map[int]func(Event)
	next int
}

func NewHub() *Hub {
	return &Hub{subs: make(map[int]func(Event))}
}

// Subscribe registers fn for future events and returns its cancel function.
func (h *Hub) Subscribe(fn func(Event)) (unsubscribe func()) {
	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = fn
	h.mu.Unlock()

	return func() {
		h.mu.Lock()
		delete(h.subs, id)
		h.mu.Unlock()
	}
}

// Publish delivers e to every current subscriber, synchronously.
func (h *Hub) Publish(e Event) {
	h.mu.Lock()
	fns := make([]func(Event), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn(e)
	}
}
