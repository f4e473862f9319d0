package dto

import "github.com/google/uuid"

// PublishTurnCompletedMessage crosses the in-process bus after every
// persisted turn; the consumer forwards it to the NATS event stream.
type PublishTurnCompletedMessage struct {
	SessionId        uuid.UUID `json:"session_id"`
	UserId           uuid.UUID `json:"user_id"`
	Intent           string    `json:"intent"`
	DocumentType     string    `json:"document_type,omitempty"`
	FileUrl          string    `json:"file_url,omitempty"`
	AiModelUsed      string    `json:"ai_model_used,omitempty"`
	ProcessingTimeMs int64     `json:"processing_time_ms"`
}
