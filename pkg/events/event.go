package events

import (
	"time"

	"github.com/google/uuid"
)

// Event is the contract for everything published on the event bus.
type Event interface {
	// EventType returns the unique code for this event (e.g. "TURN_COMPLETED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the generic implementation used by all assistant events.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewTurnCompleted is emitted after every persisted assistant turn, for
// analytics consumers downstream.
func NewTurnCompleted(sessionId, userId uuid.UUID, intentType string, processingMs int64) BaseEvent {
	return BaseEvent{
		Type: "TURN_COMPLETED",
		Data: map[string]interface{}{
			"session_id":    sessionId,
			"user_id":       userId,
			"intent":        intentType,
			"processing_ms": processingMs,
		},
		OccurredAt: time.Now(),
	}
}

// NewDocumentGenerated is emitted once per generated document.
func NewDocumentGenerated(userId uuid.UUID, documentType, fileUrl, aiModel string) BaseEvent {
	return BaseEvent{
		Type: "DOCUMENT_GENERATED",
		Data: map[string]interface{}{
			"user_id":       userId,
			"document_type": documentType,
			"file_url":      fileUrl,
			"ai_model":      aiModel,
		},
		OccurredAt: time.Now(),
	}
}
