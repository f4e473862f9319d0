package dto

import "fmt"

// Error codes of the assistant pipeline. RENDER_FAILED and SYNTHESIS_FAILED
// are recovered inside the turn orchestrator; the direct render endpoint
// surfaces RENDER_FAILED as-is.
const (
	ErrCodeInvalidInput        = "INVALID_INPUT"
	ErrCodeTranscriptionFailed = "TRANSCRIPTION_FAILED"
	ErrCodeGenerationFailed    = "GENERATION_FAILED"
	ErrCodeRenderFailed        = "RENDER_FAILED"
	ErrCodeUploadFailed        = "UPLOAD_FAILED"
	ErrCodeSynthesisFailed     = "SYNTHESIS_FAILED"
)

// AppError carries an error code and the HTTP status it maps to.
type AppError struct {
	Code    string
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewInvalidInput(message string) *AppError {
	return &AppError{Code: ErrCodeInvalidInput, Status: 400, Message: message}
}

func NewTranscriptionFailed(err error) *AppError {
	return &AppError{Code: ErrCodeTranscriptionFailed, Status: 502, Message: "speech transcription failed", Err: err}
}

func NewGenerationFailed(err error) *AppError {
	return &AppError{Code: ErrCodeGenerationFailed, Status: 502, Message: "text generation failed", Err: err}
}

func NewRenderFailed(err error) *AppError {
	return &AppError{Code: ErrCodeRenderFailed, Status: 500, Message: "document rendering failed", Err: err}
}

func NewUploadFailed(err error) *AppError {
	return &AppError{Code: ErrCodeUploadFailed, Status: 502, Message: "document upload failed", Err: err}
}

func NewSynthesisFailed(err error) *AppError {
	return &AppError{Code: ErrCodeSynthesisFailed, Status: 502, Message: "speech synthesis failed", Err: err}
}
