package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mcp-catalog/catsync/pkg/domain/model"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
	"github.com/mcp-catalog/catsync/pkg/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionCatalog = "catalog"
)

type catalogRepository struct {
	client *firestore.Client
}

func (r *catalogRepository) GetRepository(ctx context.Context, id types.RepoID) (*model.Repository, error) {
	if id == "" {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "repository ID is empty")
	}

	snap, err := r.client.Collection(collectionCatalog).Doc(string(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
				goerr.V("repoID", id),
			)
		}
		return nil, goerr.Wrap(err, "failed to get repository",
			goerr.V("repoID", id),
		)
	}

	var repo model.Repository
	if err := snap.DataTo(&repo); err != nil {
		return nil, goerr.Wrap(err, "failed to decode repository document",
			goerr.V("repoID", id),
		)
	}

	return &repo, nil
}

func (r *catalogRepository) GetRepositoryByFullName(ctx context.Context, fullName string) (*model.Repository, error) {
	if fullName == "" {
		return nil, goerr.Wrap(repository.ErrInvalidInput, "full name is empty")
	}

	iter := r.client.Collection(collectionCatalog).
		Where("full_name", "==", fullName).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("fullName", fullName),
		)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query repository by full name",
			goerr.V("fullName", fullName),
		)
	}

	var repo model.Repository
	if err := snap.DataTo(&repo); err != nil {
		return nil, goerr.Wrap(err, "failed to decode repository document",
			goerr.V("fullName", fullName),
		)
	}

	return &repo, nil
}

func (r *catalogRepository) UpsertRepository(ctx context.Context, repo *model.Repository) error {
	if err := repo.Validate(); err != nil {
		return goerr.Wrap(repository.ErrInvalidInput, "invalid repository",
			goerr.V("repoID", repo.ID),
		)
	}

	// Document Set is atomic per record: readers never observe a partially
	// written document.
	if _, err := r.client.Collection(collectionCatalog).Doc(string(repo.ID)).Set(ctx, repo); err != nil {
		return goerr.Wrap(err, "failed to upsert repository",
			goerr.V("repoID", repo.ID),
		)
	}

	return nil
}

func (r *catalogRepository) DeleteRepository(ctx context.Context, id types.RepoID) error {
	if id == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "repository ID is empty")
	}

	if _, err := r.client.Collection(collectionCatalog).Doc(string(id)).Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound || status.Code(err) == codes.FailedPrecondition {
			return goerr.Wrap(repository.ErrNotFound, "repository not found",
				goerr.V("repoID", id),
			)
		}
		return goerr.Wrap(err, "failed to delete repository",
			goerr.V("repoID", id),
		)
	}

	return nil
}

func (r *catalogRepository) ListRepositories(ctx context.Context) ([]*model.Repository, error) {
	iter := r.client.Collection(collectionCatalog).Documents(ctx)
	defer iter.Stop()

	var repos []*model.Repository
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate catalog collection")
		}

		var repo model.Repository
		if err := snap.DataTo(&repo); err != nil {
			return nil, goerr.Wrap(err, "failed to decode repository document",
				goerr.V("docID", snap.Ref.ID),
			)
		}
		repos = append(repos, &repo)
	}

	return repos, nil
}
