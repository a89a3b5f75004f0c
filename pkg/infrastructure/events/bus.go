package events

import "sync"

// Bus is an in-memory notification bus. Published notifications are
// dispatched synchronously to every subscriber and retained in order for
// later inspection.
type Bus struct {
	mutex    sync.RWMutex
	handlers []Handler
	history  []Notification
}

func NewBus() *Bus {
	return &Bus{
		handlers: make([]Handler, 0),
		history:  make([]Notification, 0),
	}
}

// Subscribe registers a handler for all future notifications
func (b *Bus) Subscribe(handler Handler) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	b.handlers = append(b.handlers, handler)
}

// Publish records the notification and fans it out to subscribers
func (b *Bus) Publish(notification Notification) {
	b.mutex.Lock()
	b.history = append(b.history, notification)
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mutex.Unlock()

	for _, handler := range handlers {
		handler.Handle(notification)
	}
}

// History returns a copy of every notification published so far
func (b *Bus) History() []Notification {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	history := make([]Notification, len(b.history))
	copy(history, b.history)
	return history
}
