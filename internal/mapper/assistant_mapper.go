package mapper

import (
	"encoding/json"
	"time"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AssistantMapper struct{}

func NewAssistantMapper() *AssistantMapper {
	return &AssistantMapper{}
}

// Turn Mappers

func (m *AssistantMapper) TurnToEntity(t *model.Turn) *entity.Turn {
	if t == nil {
		return nil
	}

	var deletedAt *time.Time
	if t.DeletedAt.Valid {
		d := t.DeletedAt.Time
		deletedAt = &d
	}

	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		u := t.UpdatedAt
		updatedAt = &u
	}

	return &entity.Turn{
		Id:           t.Id,
		SessionId:    t.SessionId,
		UserId:       t.UserId,
		Role:         t.Role,
		Content:      t.Content,
		FileUrl:      t.FileUrl,
		FileName:     t.FileName,
		FileType:     t.FileType,
		DocumentType: t.DocumentType,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
		IsDeleted:    t.DeletedAt.Valid,
	}
}

func (m *AssistantMapper) TurnToModel(t *entity.Turn) *model.Turn {
	if t == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if t.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *t.DeletedAt, Valid: true}
	} else if t.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}

	return &model.Turn{
		Id:           t.Id,
		SessionId:    t.SessionId,
		UserId:       t.UserId,
		Role:         t.Role,
		Content:      t.Content,
		FileUrl:      t.FileUrl,
		FileName:     t.FileName,
		FileType:     t.FileType,
		DocumentType: t.DocumentType,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    updatedAt,
		DeletedAt:    deletedAt,
	}
}

// Generated Document Mappers

func (m *AssistantMapper) GeneratedDocumentToEntity(d *model.GeneratedDocument) *entity.GeneratedDocument {
	if d == nil {
		return nil
	}
	return &entity.GeneratedDocument{
		Id:               d.Id,
		UserId:           d.UserId,
		SessionId:        d.SessionId,
		DocumentType:     d.DocumentType,
		FileUrl:          d.FileUrl,
		FileName:         d.FileName,
		FileType:         d.FileType,
		ContentPreview:   d.ContentPreview,
		GenerationTimeMs: d.GenerationTimeMs,
		AiModelUsed:      d.AiModelUsed,
		CreatedAt:        d.CreatedAt,
	}
}

func (m *AssistantMapper) GeneratedDocumentToModel(d *entity.GeneratedDocument) *model.GeneratedDocument {
	if d == nil {
		return nil
	}
	return &model.GeneratedDocument{
		Id:               d.Id,
		UserId:           d.UserId,
		SessionId:        d.SessionId,
		DocumentType:     d.DocumentType,
		FileUrl:          d.FileUrl,
		FileName:         d.FileName,
		FileType:         d.FileType,
		ContentPreview:   d.ContentPreview,
		GenerationTimeMs: d.GenerationTimeMs,
		AiModelUsed:      d.AiModelUsed,
		CreatedAt:        d.CreatedAt,
	}
}

// Knowledge Entry Mappers

func (m *AssistantMapper) KnowledgeEntryToEntity(k *model.KnowledgeEntry) *entity.KnowledgeEntry {
	if k == nil {
		return nil
	}

	var tags []string
	if len(k.Tags) > 0 {
		// Tags column is a JSON array of strings; ignore malformed rows.
		_ = json.Unmarshal(k.Tags, &tags)
	}

	return &entity.KnowledgeEntry{
		Id:          k.Id,
		Title:       k.Title,
		Description: k.Description,
		Content:     k.Content,
		Category:    k.Category,
		Tags:        tags,
		IsActive:    k.IsActive,
		CreatedAt:   k.CreatedAt,
	}
}

func (m *AssistantMapper) KnowledgeEntryToModel(k *entity.KnowledgeEntry) *model.KnowledgeEntry {
	if k == nil {
		return nil
	}

	var tags datatypes.JSON
	if len(k.Tags) > 0 {
		if raw, err := json.Marshal(k.Tags); err == nil {
			tags = raw
		}
	}

	return &model.KnowledgeEntry{
		Id:          k.Id,
		Title:       k.Title,
		Description: k.Description,
		Content:     k.Content,
		Category:    k.Category,
		Tags:        tags,
		IsActive:    k.IsActive,
		CreatedAt:   k.CreatedAt,
	}
}
