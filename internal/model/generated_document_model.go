package model

import (
	"time"

	"github.com/google/uuid"
)

type GeneratedDocument struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId           uuid.UUID `gorm:"type:uuid;not null;index"`
	SessionId        uuid.UUID `gorm:"type:uuid;not null;index"`
	DocumentType     string    `gorm:"type:varchar(16);not null"`
	FileUrl          string    `gorm:"type:text;not null"`
	FileName         string    `gorm:"type:varchar(255);not null"`
	FileType         string    `gorm:"type:varchar(16);not null"`
	ContentPreview   string    `gorm:"type:text"`
	GenerationTimeMs int64     `gorm:"not null"`
	AiModelUsed      string    `gorm:"type:varchar(64)"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (GeneratedDocument) TableName() string {
	return "generated_documents"
}
