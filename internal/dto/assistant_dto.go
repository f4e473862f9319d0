package dto

import (
	"time"

	"github.com/google/uuid"
)

// SendTurnRequest is one spoken or typed exchange with the assistant.
// Exactly one of AudioBase64/TextMessage must be provided.
type SendTurnRequest struct {
	SessionId     uuid.UUID `json:"session_id" validate:"required"`
	AudioBase64   string    `json:"audio_base64,omitempty"`
	TextMessage   string    `json:"text_message,omitempty"`
	VoiceId       string    `json:"voice_id,omitempty"`
	AiModel       string    `json:"ai_model,omitempty" validate:"omitempty,oneof=claude gpt gemini"`
	GenerateAudio *bool     `json:"generate_audio,omitempty"`
	ResponseType  string    `json:"response_type,omitempty" validate:"omitempty,oneof=concise detailed"`
}

type SendTurnResponse struct {
	Transcript     string `json:"transcript"`
	ResponseText   string `json:"response_text"`
	AudioContent   string `json:"audio_content,omitempty"` // base64 mp3
	FileUrl        string `json:"file_url,omitempty"`
	FileName       string `json:"file_name,omitempty"`
	FileType       string `json:"file_type,omitempty"`
	DocumentType   string `json:"document_type,omitempty"`
	Intent         string `json:"intent"`
	ProcessingTime int64  `json:"processing_time"` // milliseconds
}

type GetTurnHistoryResponse struct {
	Id           uuid.UUID `json:"id"`
	Role         string    `json:"role"`
	Content      string    `json:"content"`
	FileUrl      string    `json:"file_url,omitempty"`
	FileName     string    `json:"file_name,omitempty"`
	FileType     string    `json:"file_type,omitempty"`
	DocumentType string    `json:"document_type,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// --- Limit Exceeded Error Types ---

// LimitExceededError is a custom error that carries usage details
type LimitExceededError struct {
	Limit      int       `json:"limit"`
	Used       int       `json:"used"`
	ResetAfter time.Time `json:"reset_after"`
}

func (e *LimitExceededError) Error() string {
	return "daily assistant usage limit exceeded"
}
