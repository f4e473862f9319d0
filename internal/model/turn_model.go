package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Turn struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;index"`
	Role         string    `gorm:"type:varchar(16);not null"`
	Content      string    `gorm:"type:text;not null"`
	FileUrl      string    `gorm:"type:text"`
	FileName     string    `gorm:"type:varchar(255)"`
	FileType     string    `gorm:"type:varchar(16)"`
	DocumentType string    `gorm:"type:varchar(16)"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Turn) TableName() string {
	return "assistant_turns"
}
