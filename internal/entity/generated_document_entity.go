package entity

import (
	"time"

	"github.com/google/uuid"
)

type GeneratedDocument struct {
	Id               uuid.UUID
	UserId           uuid.UUID
	SessionId        uuid.UUID
	DocumentType     string
	FileUrl          string
	FileName         string
	FileType         string
	ContentPreview   string
	GenerationTimeMs int64
	AiModelUsed      string
	CreatedAt        time.Time
}
