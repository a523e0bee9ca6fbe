package events

import "sync"

// Topic names the payload-less change signals the stores emit. Subscribers
// re-read full state on receipt; there is no incremental diffing.
type Topic string

const (
	CustomersUpdated     Topic = "customersUpdated"
	NotificationsUpdated Topic = "notificationsUpdated"
)

// Broadcaster is an in-process fan-out of fire-and-forget change signals.
// Handlers run synchronously on the publishing goroutine in subscription
// order.
type Broadcaster struct {
	mu     sync.RWMutex
	nextID int
	subs   map[Topic]map[int]func()
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[Topic]map[int]func())}
}

// Subscribe registers a handler for a topic and returns an unsubscribe
// function.
func (b *Broadcaster) Subscribe(topic Topic, handler func()) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]func())
	}
	id := b.nextID
	b.nextID++
	b.subs[topic][id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs[topic], id)
	}
}

// Publish notifies every subscriber of the topic.
func (b *Broadcaster) Publish(topic Topic) {
	b.mu.RLock()
	handlers := make([]func(), 0, len(b.subs[topic]))
	for _, h := range b.subs[topic] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h()
	}
}
