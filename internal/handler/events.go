package handler

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/hirewire/api/internal/model"
	"github.com/hirewire/api/internal/service"
)

// EventsHandler handles SSE event streaming
type EventsHandler struct {
	eventHub *service.EventHub
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(eventHub *service.EventHub) *EventsHandler {
	return &EventsHandler{
		eventHub: eventHub,
	}
}

// Stream handles GET /v1/events/stream
// Query parameters:
//   - topics: comma-separated event types to subscribe to (required)
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	topics, fieldErrs := parseTopics(r.URL.Query().Get("topics"))
	if len(fieldErrs) > 0 {
		WriteError(w, model.NewValidationError(fieldErrs))
		return
	}

	// Check if the client supports SSE
	flusher, ok := w.(http.Flusher)
	if !ok {
		WriteError(w, model.NewInternalError("streaming not supported"))
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no") // Disable nginx buffering

	subscriberID := uuid.New().String()
	sub := h.eventHub.Subscribe(subscriberID, topics)
	defer h.eventHub.Unsubscribe(subscriberID, topics)

	// Send initial connection event
	fmt.Fprintf(w, "event: connected\ndata: {\"subscriber_id\":\"%s\"}\n\n", subscriberID)
	flusher.Flush()

	// Stream events
	for {
		select {
		case event, ok := <-sub.Events:
			if !ok {
				return
			}
			fmt.Fprint(w, event.Format())
			flusher.Flush()

		case <-sub.Done:
			return

		case <-r.Context().Done():
			// Client disconnected
			return
		}
	}
}

// parseTopics splits and validates the topics query parameter
func parseTopics(raw string) ([]service.EventType, []model.FieldError) {
	if strings.TrimSpace(raw) == "" {
		return nil, []model.FieldError{
			{Field: "topics", Message: "at least one topic is required"},
		}
	}

	var topics []service.EventType
	for _, part := range strings.Split(raw, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			continue
		}
		if !service.ValidEventType(name) {
			return nil, []model.FieldError{
				{Field: "topics", Message: "unknown topic: " + name},
			}
		}
		topics = append(topics, service.EventType(name))
	}
	if len(topics) == 0 {
		return nil, []model.FieldError{
			{Field: "topics", Message: "at least one topic is required"},
		}
	}
	return topics, nil
}
