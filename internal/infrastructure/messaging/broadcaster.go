// Package messaging provides the concrete implementation of the live feed broadcaster.
package messaging

import (
	"sync"
	"time"

	"github.com/luckyspin/spinwheel-go/internal/infrastructure/observability/logging"
)

// FeedBroadcaster fans ingestion events out to connected dashboard clients.
// Publishing never blocks: a subscriber with a full buffer misses the event.
type FeedBroadcaster struct {
	subscribers map[chan Event]struct{}
	mu          sync.Mutex
	logger      *logging.ChanneledLogger
}

// NewFeedBroadcaster creates a new FeedBroadcaster instance.
func NewFeedBroadcaster(logger *logging.ChanneledLogger) *FeedBroadcaster {
	return &FeedBroadcaster{
		subscribers: make(map[chan Event]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a new dashboard feed client.
func (b *FeedBroadcaster) Subscribe() chan Event {
	ch := make(chan Event, 16)

	b.mu.Lock()
	b.subscribers[ch] = struct{}{}
	count := len(b.subscribers)
	b.mu.Unlock()

	b.logger.Analytics().Debug("Feed client registered", "subscribers", count)
	return ch
}

// Unsubscribe removes a dashboard feed client and closes its channel.
func (b *FeedBroadcaster) Unsubscribe(ch chan Event) {
	b.mu.Lock()
	if _, exists := b.subscribers[ch]; exists {
		delete(b.subscribers, ch)
		close(ch)
	}
	count := len(b.subscribers)
	b.mu.Unlock()

	b.logger.Analytics().Debug("Feed client unregistered", "subscribers", count)
}

// Publish sends an event to every subscriber without blocking ingestion.
func (b *FeedBroadcaster) Publish(event Event) {
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().UTC().Unix()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			// Slow client; it keeps its connection but misses this event.
		}
	}
}

// SubscriberCount returns the number of connected feed clients.
func (b *FeedBroadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers)
}
