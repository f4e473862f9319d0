package unitofwork

import (
	"context"

	"hr-assistant-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	TurnRepository() contract.TurnRepository
	GeneratedDocumentRepository() contract.GeneratedDocumentRepository
	KnowledgeEntryRepository() contract.KnowledgeEntryRepository
}
