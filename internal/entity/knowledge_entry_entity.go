package entity

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeEntry is read-only from the assistant's perspective; entries are
// maintained through the portal's admin screens.
type KnowledgeEntry struct {
	Id          uuid.UUID
	Title       string
	Description string
	Content     string
	Category    string
	Tags        []string
	IsActive    bool
	CreatedAt   time.Time
}
