package platform

import (
	"sync"

	"twashell/internal/domain/entity"
)

// MessageBus is an in-process MessageSource. The shell's test routes publish
// into it to simulate foreground provider messages.
type MessageBus struct {
	mu       sync.Mutex
	nextID   int
	handlers map[int]func(*entity.PushPayload)
}

// NewMessageBus creates an empty bus.
func NewMessageBus() *MessageBus {
	return &MessageBus{handlers: make(map[int]func(*entity.PushPayload))}
}

// OnMessage registers a handler for subsequent messages.
func (b *MessageBus) OnMessage(handler func(*entity.PushPayload)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		delete(b.handlers, id)
	}
}

// Publish delivers a message to every registered handler.
func (b *MessageBus) Publish(payload *entity.PushPayload) {
	b.mu.Lock()
	handlers := make([]func(*entity.PushPayload), 0, len(b.handlers))
	for _, handler := range b.handlers {
		handlers = append(handlers, handler)
	}
	b.mu.Unlock()

	for _, handler := range handlers {
		handler(payload)
	}
}
