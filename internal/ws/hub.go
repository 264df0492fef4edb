package ws

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Event is one tracking occurrence pushed to dashboard consumers.
type Event struct {
	Type    string      `json:"type"` // click or conversion
	BrandID uint        `json:"brand_id"`
	At      time.Time   `json:"at"`
	Payload interface{} `json:"payload"`
}

// Client is a single dashboard connection scoped to one brand.
type Client struct {
	BrandID uint
	Send    chan []byte

	hub    *EventHub
	mu     sync.Mutex
	closed bool
}

func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.Send)
	if c.hub != nil {
		c.hub.unregister(c)
	}
}

// EventHub fans tracking events out to the connections watching each brand.
type EventHub struct {
	mu      sync.RWMutex
	byBrand map[uint]map[*Client]struct{}
}

func NewEventHub() *EventHub {
	return &EventHub{byBrand: make(map[uint]map[*Client]struct{})}
}

func (h *EventHub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c.hub = h
	if h.byBrand[c.BrandID] == nil {
		h.byBrand[c.BrandID] = make(map[*Client]struct{})
	}
	h.byBrand[c.BrandID][c] = struct{}{}
}

func (h *EventHub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if m := h.byBrand[c.BrandID]; m != nil {
		delete(m, c)
		if len(m) == 0 {
			delete(h.byBrand, c.BrandID)
		}
	}
}

// Publish sends an event to every connection watching the brand. Slow
// consumers are skipped rather than blocking the tracking path.
func (h *EventHub) Publish(brandID uint, eventType string, payload interface{}) {
	evt := Event{Type: eventType, BrandID: brandID, At: time.Now(), Payload: payload}
	data, err := json.Marshal(evt)
	if err != nil {
		log.Printf("[ws] marshal event: %v", err)
		return
	}

	h.mu.RLock()
	m := h.byBrand[brandID]
	clients := make([]*Client, 0, len(m))
	for c := range m {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		select {
		case c.Send <- data:
		default:
		}
	}
}
