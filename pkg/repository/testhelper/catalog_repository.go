package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/mcp-catalog/catsync/pkg/domain/interfaces"
	"github.com/mcp-catalog/catsync/pkg/domain/model"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
	"github.com/mcp-catalog/catsync/pkg/repository"
)

// TestAll runs the full conformance suite against a CatalogRepository
// implementation. Both the memory and the Firestore store must pass it.
func TestAll(t *testing.T, repo interfaces.CatalogRepository) {
	t.Run("UpsertAndGet", func(t *testing.T) {
		TestUpsertAndGet(t, repo)
	})
	t.Run("GetByFullName", func(t *testing.T) {
		TestGetByFullName(t, repo)
	})
	t.Run("UpsertOverwrite", func(t *testing.T) {
		TestUpsertOverwrite(t, repo)
	})
	t.Run("ListAll", func(t *testing.T) {
		TestListAll(t, repo)
	})
	t.Run("Delete", func(t *testing.T) {
		TestDelete(t, repo)
	})
	t.Run("MutationIsolation", func(t *testing.T) {
		TestMutationIsolation(t, repo)
	})
	t.Run("NotFound", func(t *testing.T) {
		TestNotFound(t, repo)
	})
}

func newTestRepo() *model.Repository {
	suffix := uuid.New().String()[:8]
	now := time.Now().UTC().Truncate(time.Second)
	r := &model.Repository{
		ID:          types.RepoID(fmt.Sprintf("id-%s", suffix)),
		Owner:       fmt.Sprintf("owner-%s", suffix),
		Name:        fmt.Sprintf("repo-%s", suffix),
		Description: "test repository",
		Language:    "Go",
		Topics:      []string{"mcp", "catalog"},
		Stars:       7,
		Forks:       1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.ComputeFullName()
	r.URL = "https://github.com/" + r.FullName
	return r
}

func TestUpsertAndGet(t *testing.T, repo interfaces.CatalogRepository) {
	ctx := context.Background()
	record := newTestRepo()

	gt.NoError(t, repo.UpsertRepository(ctx, record))

	got := gt.R1(repo.GetRepository(ctx, record.ID)).NoError(t)
	gt.V(t, got.ID).Equal(record.ID)
	gt.V(t, got.FullName).Equal(record.FullName)
	gt.V(t, got.Topics).Equal(record.Topics)
	gt.V(t, got.Stars).Equal(record.Stars)
}

func TestGetByFullName(t *testing.T, repo interfaces.CatalogRepository) {
	ctx := context.Background()
	record := newTestRepo()

	gt.NoError(t, repo.UpsertRepository(ctx, record))

	got := gt.R1(repo.GetRepositoryByFullName(ctx, record.FullName)).NoError(t)
	gt.V(t, got.ID).Equal(record.ID)

	_, err := repo.GetRepositoryByFullName(ctx, "nobody/nothing-"+uuid.New().String()[:8])
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestUpsertOverwrite(t *testing.T, repo interfaces.CatalogRepository) {
	ctx := context.Background()
	record := newTestRepo()

	gt.NoError(t, repo.UpsertRepository(ctx, record))

	record.Stars = 99
	record.Summary = "enriched later"
	gt.NoError(t, repo.UpsertRepository(ctx, record))

	got := gt.R1(repo.GetRepository(ctx, record.ID)).NoError(t)
	gt.V(t, got.Stars).Equal(99)
	gt.V(t, got.Summary).Equal("enriched later")
}

func TestListAll(t *testing.T, repo interfaces.CatalogRepository) {
	ctx := context.Background()

	before := gt.R1(repo.ListRepositories(ctx)).NoError(t)

	a := newTestRepo()
	b := newTestRepo()
	gt.NoError(t, repo.UpsertRepository(ctx, a))
	gt.NoError(t, repo.UpsertRepository(ctx, b))

	after := gt.R1(repo.ListRepositories(ctx)).NoError(t)
	gt.V(t, len(after)).Equal(len(before) + 2)
}

func TestDelete(t *testing.T, repo interfaces.CatalogRepository) {
	ctx := context.Background()
	record := newTestRepo()

	gt.NoError(t, repo.UpsertRepository(ctx, record))
	gt.NoError(t, repo.DeleteRepository(ctx, record.ID))

	_, err := repo.GetRepository(ctx, record.ID)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	err = repo.DeleteRepository(ctx, record.ID)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestMutationIsolation verifies that mutating a record returned by the store
// does not leak back into stored state.
func TestMutationIsolation(t *testing.T, repo interfaces.CatalogRepository) {
	ctx := context.Background()
	record := newTestRepo()

	gt.NoError(t, repo.UpsertRepository(ctx, record))

	got := gt.R1(repo.GetRepository(ctx, record.ID)).NoError(t)
	got.Name = "mutated"
	got.Topics[0] = "mutated"

	fresh := gt.R1(repo.GetRepository(ctx, record.ID)).NoError(t)
	gt.V(t, fresh.Name).Equal(record.Name)
	gt.V(t, fresh.Topics[0]).Equal("mcp")
}

func TestNotFound(t *testing.T, repo interfaces.CatalogRepository) {
	ctx := context.Background()

	_, err := repo.GetRepository(ctx, types.RepoID("missing-"+uuid.New().String()[:8]))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}
