// Package messaging defines interfaces for real-time communication.
package messaging

// Event is one dashboard feed message.
type Event struct {
	Type      string `json:"type"` // "lead" or "page_view"
	Payload   any    `json:"payload"`
	Timestamp int64  `json:"timestamp"`
}

// Broadcaster defines the interface for managing live dashboard feed
// subscribers and publishing ingestion events to them.
type Broadcaster interface {
	Subscribe() chan Event
	Unsubscribe(ch chan Event)
	Publish(event Event)
	SubscriberCount() int
}
