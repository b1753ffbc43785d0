package interfaces

import (
	"context"

	"github.com/mcp-catalog/catsync/pkg/domain/model"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
)

//go:generate moq -out ../mock/catalog_repository_mock.go -pkg mock . CatalogRepository

// CatalogRepository is the persistent catalog store. Upsert must be atomic
// per record: concurrent readers never observe partial-field writes.
type CatalogRepository interface {
	GetRepository(ctx context.Context, id types.RepoID) (*model.Repository, error)
	GetRepositoryByFullName(ctx context.Context, fullName string) (*model.Repository, error)
	UpsertRepository(ctx context.Context, repo *model.Repository) error
	DeleteRepository(ctx context.Context, id types.RepoID) error
	ListRepositories(ctx context.Context) ([]*model.Repository, error)
}
