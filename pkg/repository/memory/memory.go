package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mcp-catalog/catsync/pkg/domain/interfaces"
	"github.com/mcp-catalog/catsync/pkg/domain/model"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
	"github.com/mcp-catalog/catsync/pkg/repository"
)

// New creates a new in-memory catalog repository. Used by tests and dry runs.
func New() interfaces.CatalogRepository {
	return &catalogRepository{
		repos: make(map[types.RepoID]*model.Repository),
	}
}

type catalogRepository struct {
	mu    sync.RWMutex
	repos map[types.RepoID]*model.Repository
}

func (r *catalogRepository) GetRepository(ctx context.Context, id types.RepoID) (*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	repo, exists := r.repos[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("repoID", id),
		)
	}

	return repo.Clone(), nil
}

func (r *catalogRepository) GetRepositoryByFullName(ctx context.Context, fullName string) (*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, repo := range r.repos {
		if repo.FullName == fullName {
			return repo.Clone(), nil
		}
	}

	return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
		goerr.V("fullName", fullName),
	)
}

func (r *catalogRepository) UpsertRepository(ctx context.Context, repo *model.Repository) error {
	if err := repo.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid repository", goerr.V("repoID", repo.ID))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.repos[repo.ID] = repo.Clone()

	return nil
}

func (r *catalogRepository) DeleteRepository(ctx context.Context, id types.RepoID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.repos[id]; !exists {
		return goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("repoID", id),
		)
	}

	delete(r.repos, id)

	return nil
}

func (r *catalogRepository) ListRepositories(ctx context.Context) ([]*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	repos := make([]*model.Repository, 0, len(r.repos))
	for _, repo := range r.repos {
		repos = append(repos, repo.Clone())
	}

	return repos, nil
}
