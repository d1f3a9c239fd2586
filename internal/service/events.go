package service

import (
	"encoding/json"
	"sync"
	"time"
)

// EventType represents the type of event
type EventType string

const (
	// Job events
	EventJobCreated EventType = "job.created"

	// Application events
	EventApplicationCreated       EventType = "application.created"
	EventApplicationStatusChanged EventType = "application.status_changed"

	// System events
	EventHeartbeat EventType = "heartbeat"
)

// ValidEventType reports whether s names a subscribable topic.
func ValidEventType(s string) bool {
	switch EventType(s) {
	case EventJobCreated, EventApplicationCreated, EventApplicationStatusChanged:
		return true
	}
	return false
}

// Event represents a server-sent event
type Event struct {
	Type EventType   `json:"type"`
	Data interface{} `json:"data"`
}

// Format returns the SSE formatted string
func (e *Event) Format() string {
	data, _ := json.Marshal(e.Data)
	return "event: " + string(e.Type) + "\ndata: " + string(data) + "\n\n"
}

// Subscriber represents a connected SSE client
type Subscriber struct {
	ID     string
	Topics []EventType
	Events chan *Event
	Done   chan struct{}
}

// EventHub manages SSE subscriptions and event broadcasting. Subscribers
// register for topics; published events fan out to every subscriber of that
// topic. Delivery is best-effort: a slow client's full buffer drops events
// rather than blocking the publisher.
type EventHub struct {
	mu          sync.RWMutex
	subscribers map[EventType]map[string]*Subscriber // topic -> subscriberID -> subscriber
	heartbeat   *time.Ticker
	done        chan struct{}
}

// NewEventHub creates a new event hub
func NewEventHub() *EventHub {
	hub := &EventHub{
		subscribers: make(map[EventType]map[string]*Subscriber),
		done:        make(chan struct{}),
	}
	// Start heartbeat
	hub.heartbeat = time.NewTicker(30 * time.Second)
	go hub.sendHeartbeats()
	return hub
}

// Subscribe adds a new subscriber for the given topics
func (h *EventHub) Subscribe(subscriberID string, topics []EventType) *Subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	sub := &Subscriber{
		ID:     subscriberID,
		Topics: topics,
		Events: make(chan *Event, 100), // Buffer to prevent blocking
		Done:   make(chan struct{}),
	}

	for _, topic := range topics {
		if h.subscribers[topic] == nil {
			h.subscribers[topic] = make(map[string]*Subscriber)
		}
		h.subscribers[topic][subscriberID] = sub
	}

	return sub
}

// Unsubscribe removes a subscriber from all its topics
func (h *EventHub) Unsubscribe(subscriberID string, topics []EventType) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var closed *Subscriber
	for _, topic := range topics {
		topicSubs, ok := h.subscribers[topic]
		if !ok {
			continue
		}
		if sub, ok := topicSubs[subscriberID]; ok {
			if closed == nil {
				closed = sub
				close(sub.Done)
				close(sub.Events)
			}
			delete(topicSubs, subscriberID)
		}
		if len(topicSubs) == 0 {
			delete(h.subscribers, topic)
		}
	}
}

// Publish sends an event to all subscribers of its topic
func (h *EventHub) Publish(event *Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	topicSubs, ok := h.subscribers[event.Type]
	if !ok {
		return
	}

	for _, sub := range topicSubs {
		select {
		case sub.Events <- event:
			// Event sent successfully
		default:
			// Buffer full, skip this subscriber
		}
	}
}

// sendHeartbeats sends periodic heartbeats to all subscribers
func (h *EventHub) sendHeartbeats() {
	for {
		select {
		case <-h.heartbeat.C:
			h.mu.RLock()
			event := &Event{
				Type: EventHeartbeat,
				Data: map[string]string{
					"timestamp": time.Now().UTC().Format(time.RFC3339),
				},
			}
			seen := make(map[string]struct{})
			for _, topicSubs := range h.subscribers {
				for id, sub := range topicSubs {
					if _, ok := seen[id]; ok {
						continue
					}
					seen[id] = struct{}{}
					select {
					case sub.Events <- event:
					default:
					}
				}
			}
			h.mu.RUnlock()
		case <-h.done:
			return
		}
	}
}

// Close stops the event hub
func (h *EventHub) Close() {
	close(h.done)
	h.heartbeat.Stop()

	h.mu.Lock()
	defer h.mu.Unlock()

	closed := make(map[string]struct{})
	for topic, topicSubs := range h.subscribers {
		for id, sub := range topicSubs {
			if _, ok := closed[id]; !ok {
				closed[id] = struct{}{}
				close(sub.Done)
				close(sub.Events)
			}
		}
		delete(h.subscribers, topic)
	}
}

// SubscriberCount returns the number of subscribers for a topic
func (h *EventHub) SubscriberCount(topic EventType) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers[topic])
}
