package contract

import (
	"context"

	"hr-assistant-be/internal/entity"
	"hr-assistant-be/internal/repository/specification"
)

type GeneratedDocumentRepository interface {
	Create(ctx context.Context, doc *entity.GeneratedDocument) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.GeneratedDocument, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.GeneratedDocument, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
