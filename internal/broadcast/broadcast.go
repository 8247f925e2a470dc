// Package broadcast provides the intra-installation publish/subscribe channel
// used to propagate dataset changes between execution contexts (windows, the
// background sync job) of the same installation. Every context attaches to a
// shared [Hub] and receives messages published by every other context;
// messages carrying the context's own instance ID are dropped on delivery to
// avoid feedback loops.
package broadcast

import (
	"sync"
	"time"

	"github.com/sammirack/admin-sync/internal/logger"
	"github.com/sammirack/admin-sync/internal/utils"
	"github.com/sammirack/admin-sync/models"
)

//go:generate mockgen -source=broadcast.go -destination=../mock/broadcast_mock.go -package=mock

// Channel is one context's endpoint on the broadcast bus.
type Channel interface {
	// ID returns the instance ID stamped on every message this channel
	// publishes.
	ID() string

	// Publish stamps msg with the channel's instance ID and the current
	// time (unless already set) and delivers it to every other channel
	// attached to the same hub.
	Publish(msg models.Message)

	// Subscribe registers handler to receive messages from other channels.
	// The returned function removes the subscription.
	Subscribe(handler func(models.Message)) (unsubscribe func())

	// Close detaches the channel from its hub. A closed channel receives no
	// further messages; publishing on it is a no-op.
	Close()
}

// Hub fans messages out between the channels attached to it.
type Hub struct {
	mu       sync.RWMutex
	channels map[string]*hubChannel
}

func NewHub() *Hub {
	return &Hub{channels: make(map[string]*hubChannel)}
}

// Channel attaches a new endpoint to the hub with a fresh instance ID.
func (h *Hub) Channel(log *logger.Logger) Channel {
	c := &hubChannel{
		hub:      h,
		id:       utils.NewUUIDGenerator().Generate(),
		logger:   log,
		handlers: make(map[int]func(models.Message)),
	}

	h.mu.Lock()
	h.channels[c.id] = c
	h.mu.Unlock()

	return c
}

func (h *Hub) publish(msg models.Message) {
	h.mu.RLock()
	targets := make([]*hubChannel, 0, len(h.channels))
	for _, c := range h.channels {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		c.deliver(msg)
	}
}

func (h *Hub) detach(id string) {
	h.mu.Lock()
	delete(h.channels, id)
	h.mu.Unlock()
}

type hubChannel struct {
	hub    *Hub
	id     string
	logger *logger.Logger

	mu       sync.Mutex
	closed   bool
	nextSub  int
	handlers map[int]func(models.Message)
}

func (c *hubChannel) ID() string { return c.id }

func (c *hubChannel) Publish(msg models.Message) {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return
	}

	msg.Source = c.id
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	c.logger.Debug().
		Str("type", string(msg.Type)).
		Str("source", msg.Source).
		Msg("broadcasting message")

	c.hub.publish(msg)
}

func (c *hubChannel) Subscribe(handler func(models.Message)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextSub
	c.nextSub++
	c.handlers[id] = handler

	return func() {
		c.mu.Lock()
		delete(c.handlers, id)
		c.mu.Unlock()
	}
}

// deliver invokes subscribers unless the message originated from this channel.
func (c *hubChannel) deliver(msg models.Message) {
	if msg.Source == c.id {
		return
	}

	c.mu.Lock()
	handlers := make([]func(models.Message), 0, len(c.handlers))
	for _, h := range c.handlers {
		handlers = append(handlers, h)
	}
	c.mu.Unlock()

	for _, h := range handlers {
		h(msg)
	}
}

func (c *hubChannel) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.handlers = map[int]func(models.Message){}
	c.mu.Unlock()

	c.hub.detach(c.id)
}
