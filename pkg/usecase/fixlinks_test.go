package usecase_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/mcp-catalog/catsync/pkg/domain/mock"
	"github.com/mcp-catalog/catsync/pkg/domain/model"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
	"github.com/mcp-catalog/catsync/pkg/infra"
	"github.com/mcp-catalog/catsync/pkg/repository/memory"
	"github.com/mcp-catalog/catsync/pkg/usecase"
	"github.com/mcp-catalog/catsync/pkg/utils/logging"
)

// probeGitHub resolves GetRepository against a fixed owner/name set and
// reports everything else as not found.
func probeGitHub(existing ...string) *mock.GitHubClientMock {
	known := map[string]bool{}
	for _, fullName := range existing {
		known[fullName] = true
	}

	return &mock.GitHubClientMock{
		GetRepositoryFunc: func(ctx context.Context, owner, name string) (*model.Repository, error) {
			if known[owner+"/"+name] {
				return newTestRepo("probe", owner, name), nil
			}
			return nil, goerr.Wrap(types.ErrRepoNotFound, "repository not found")
		},
		ListByOwnerFunc: func(ctx context.Context, owner string) ([]*model.Repository, error) {
			return nil, nil
		},
	}
}

func TestFixLinksRepairScenario(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	// Upstream repo was renamed to all-lowercase; the stored link 404s.
	record := newTestRepo("42", "foo", "Bar-Server")
	gt.NoError(t, store.UpsertRepository(ctx, record))

	gh := probeGitHub("foo/bar-server")
	uc := newCatalogUseCase(store, infra.WithGitHub(gh))

	report := gt.R1(uc.FixLinks(ctx, &usecase.FixLinksInput{Mode: types.RunModeAutoFix})).NoError(t)

	gt.V(t, report.Summary.TotalFetched).Equal(1)
	gt.V(t, report.Summary.Updated).Equal(1)
	gt.A(t, report.FixedRecords).Length(1)
	gt.V(t, report.FixedRecords[0].Fix.Source).Equal(types.SourceCaseVariant)
	gt.V(t, report.FixedRecords[0].Fix.Name).Equal("bar-server")

	fixed := gt.R1(store.GetRepository(ctx, "42")).NoError(t)
	gt.V(t, fixed.ID).Equal("42")
	gt.V(t, fixed.FullName).Equal("foo/bar-server")
	gt.V(t, fixed.URL).Equal("https://github.com/foo/bar-server")
	gt.V(t, fixed.LinkStatus).Equal(types.LinkValid)
}

func TestFixLinksValidLinkSkipped(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	gt.NoError(t, store.UpsertRepository(ctx, newTestRepo("1", "foo", "alpha")))

	gh := probeGitHub("foo/alpha")
	uc := newCatalogUseCase(store, infra.WithGitHub(gh))

	report := gt.R1(uc.FixLinks(ctx, &usecase.FixLinksInput{Mode: types.RunModeAutoFix})).NoError(t)

	gt.V(t, report.Summary.TotalFetched).Equal(1)
	gt.V(t, report.Summary.Skipped).Equal(1)
	gt.V(t, report.Summary.Updated).Equal(0)
	gt.A(t, report.FixedRecords).Length(0)
}

func TestFixLinksUnfixableFlaggedNotDeleted(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	gt.NoError(t, store.UpsertRepository(ctx, newTestRepo("7", "foo", "vanished")))

	// Nothing exists upstream, so every variant probe misses.
	gh := probeGitHub()
	uc := newCatalogUseCase(store, infra.WithGitHub(gh))

	report := gt.R1(uc.FixLinks(ctx, &usecase.FixLinksInput{Mode: types.RunModeAutoFix})).NoError(t)

	gt.A(t, report.InvalidRecords).Length(1)
	gt.V(t, report.InvalidRecords[0].RecordID).Equal("7")
	gt.V(t, report.Summary.Updated).Equal(0)

	flagged := gt.R1(store.GetRepository(ctx, "7")).NoError(t)
	gt.V(t, flagged.LinkStatus).Equal(types.LinkUnfixable)
	gt.V(t, flagged.FullName).Equal("foo/vanished")
}

func TestFixLinksDryRunLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	record := newTestRepo("42", "foo", "Bar-Server")
	gt.NoError(t, store.UpsertRepository(ctx, record))

	gh := probeGitHub("foo/bar-server")
	uc := newCatalogUseCase(store, infra.WithGitHub(gh))

	report := gt.R1(uc.FixLinks(ctx, &usecase.FixLinksInput{Mode: types.RunModeDryRun})).NoError(t)

	// Same intended fix as a live run.
	gt.V(t, report.Summary.Updated).Equal(1)
	gt.A(t, report.FixedRecords).Length(1)

	stored := gt.R1(store.GetRepository(ctx, "42")).NoError(t)
	gt.V(t, stored.FullName).Equal("foo/Bar-Server")
	gt.V(t, stored.LinkStatus).Equal(types.LinkUnchecked)
}

func TestFixLinksCheckOnlyReportsWithoutFixing(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	gt.NoError(t, store.UpsertRepository(ctx, newTestRepo("42", "foo", "Bar-Server")))

	gh := probeGitHub("foo/bar-server")
	uc := newCatalogUseCase(store, infra.WithGitHub(gh))

	report := gt.R1(uc.FixLinks(ctx, &usecase.FixLinksInput{Mode: types.RunModeCheckOnly})).NoError(t)

	// The breakage is reported but no candidate is computed.
	gt.A(t, report.InvalidRecords).Length(1)
	gt.A(t, report.FixedRecords).Length(0)
	gt.True(t, report.InvalidRecords[0].Fix == nil)

	stored := gt.R1(store.GetRepository(ctx, "42")).NoError(t)
	gt.V(t, stored.FullName).Equal("foo/Bar-Server")
}

func TestFixLinksInconclusiveNotResolved(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	gt.NoError(t, store.UpsertRepository(ctx, newTestRepo("1", "foo", "alpha")))

	gh := &mock.GitHubClientMock{
		GetRepositoryFunc: func(ctx context.Context, owner, name string) (*model.Repository, error) {
			return nil, goerr.Wrap(types.ErrGitHubTransient, "upstream outage")
		},
	}
	uc := newCatalogUseCase(store, infra.WithGitHub(gh))

	report := gt.R1(uc.FixLinks(ctx, &usecase.FixLinksInput{Mode: types.RunModeAutoFix})).NoError(t)

	gt.V(t, report.Summary.TotalFetched).Equal(0)
	gt.V(t, report.Summary.Errors).Equal(1)
	gt.A(t, report.InvalidRecords).Length(0)

	stored := gt.R1(store.GetRepository(ctx, "1")).NoError(t)
	gt.V(t, stored.LinkStatus).Equal(types.LinkUnchecked)
}

func TestFixLinksWritesReportFile(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 7, 4, 12, 30, 0, 0, time.UTC)
	ctx := logging.CtxWithTime(context.Background(), func() time.Time { return now })

	store := memory.New()
	gt.NoError(t, store.UpsertRepository(ctx, newTestRepo("42", "foo", "Bar-Server")))

	clients := infra.New(
		infra.WithCatalog(store),
		infra.WithGitHub(probeGitHub("foo/bar-server")),
	)
	uc := usecase.New(clients, usecase.WithReportDir(dir))

	gt.R1(uc.FixLinks(ctx, &usecase.FixLinksInput{
		Mode:        types.RunModeAutoFix,
		WriteReport: true,
	})).NoError(t)

	path := filepath.Join(dir, "fix-links-20250704-123000.json")
	raw := gt.R1(os.ReadFile(path)).NoError(t)

	var report model.RepairReport
	gt.NoError(t, json.Unmarshal(raw, &report))
	gt.V(t, report.Mode).Equal(types.RunModeAutoFix)
	gt.A(t, report.FixedRecords).Length(1)
}
