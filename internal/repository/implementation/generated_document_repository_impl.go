package implementation

import (
	"context"
	"errors"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/mapper"
	"hr-assistant-be/internal/model"
	"hr-assistant-be/internal/repository/contract"
	"hr-assistant-be/internal/repository/specification"

	"gorm.io/gorm"
)

type GeneratedDocumentRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AssistantMapper
}

func NewGeneratedDocumentRepository(db *gorm.DB) contract.GeneratedDocumentRepository {
	return &GeneratedDocumentRepositoryImpl{
		db:     db,
		mapper: mapper.NewAssistantMapper(),
	}
}

func (r *GeneratedDocumentRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *GeneratedDocumentRepositoryImpl) Create(ctx context.Context, doc *entity.GeneratedDocument) error {
	m := r.mapper.GeneratedDocumentToModel(doc)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*doc = *r.mapper.GeneratedDocumentToEntity(m)
	return nil
}

func (r *GeneratedDocumentRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GeneratedDocument, error) {
	var m model.GeneratedDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.GeneratedDocumentToEntity(&m), nil
}

func (r *GeneratedDocumentRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GeneratedDocument, error) {
	var models []*model.GeneratedDocument
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.GeneratedDocument, len(models))
	for i, m := range models {
		entities[i] = r.mapper.GeneratedDocumentToEntity(m)
	}
	return entities, nil
}

func (r *GeneratedDocumentRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.GeneratedDocument{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
