package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHubClient LLMClient

import (
	"context"

	"github.com/mcp-catalog/catsync/pkg/domain/model"
)

// GitHubClient is the upstream source client. Implementations classify
// failures into the sentinel errors in domain/types: ErrRepoNotFound,
// ErrRateLimited, ErrUnauthorized, ErrGitHubTransient.
type GitHubClient interface {
	// SearchRepositories fetches one page of search results, normalized into
	// catalog records. Raw payloads without a stable ID are dropped and
	// reported via SearchPage.Malformed.
	SearchRepositories(ctx context.Context, query string, page int) (*model.SearchPage, error)

	// GetRepository probes a single repository for existence.
	GetRepository(ctx context.Context, owner, name string) (*model.Repository, error)

	// ListByOwner lists all repositories owned by the given user or org.
	ListByOwner(ctx context.Context, owner string) ([]*model.Repository, error)

	// RateLimit returns the current upstream quota state.
	RateLimit(ctx context.Context) (*model.RateLimit, error)
}

// LLMClient produces enrichment content for one record.
type LLMClient interface {
	Enrich(ctx context.Context, input *model.EnrichmentInput) (*model.EnrichmentResult, error)
}
