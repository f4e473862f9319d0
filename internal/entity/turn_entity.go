package entity

import (
	"time"

	"github.com/google/uuid"
)

type Turn struct {
	Id           uuid.UUID
	SessionId    uuid.UUID
	UserId       uuid.UUID
	Role         string
	Content      string
	FileUrl      string
	FileName     string
	FileType     string
	DocumentType string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	DeletedAt    *time.Time
	IsDeleted    bool
}
