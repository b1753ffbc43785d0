package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/mcp-catalog/catsync/pkg/domain/model"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
	"github.com/mcp-catalog/catsync/pkg/repository/memory"
)

func enrichedTestRepo(id types.RepoID, owner, name string) *model.Repository {
	analyzedAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	record := newTestRepo(id, owner, name)
	record.Summary = "An MCP server."
	record.KeyFeatures = []string{"tools"}
	record.UseCases = []string{"agents"}
	record.AnalyzedAt = &analyzedAt
	record.AnalysisVersion = 1
	record.LinkStatus = types.LinkValid
	return record
}

func TestAuditFullyCompleteCatalog(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	gt.NoError(t, store.UpsertRepository(ctx, enrichedTestRepo("1", "foo", "alpha")))
	uc := newCatalogUseCase(store)

	report := gt.R1(uc.Audit(ctx)).NoError(t)

	gt.V(t, report.TotalRecords).Equal(1)
	gt.V(t, report.QualityScore).Equal(100.0)
	gt.A(t, report.Issues).Length(0)
	gt.A(t, report.Recommendations).Length(0)
}

func TestAuditFlagsMissingFields(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	bare := newTestRepo("1", "foo", "alpha")
	bare.Description = ""
	bare.Topics = nil
	gt.NoError(t, store.UpsertRepository(ctx, bare))
	uc := newCatalogUseCase(store)

	report := gt.R1(uc.Audit(ctx)).NoError(t)

	gt.True(t, report.QualityScore < 100)
	gt.V(t, report.Completeness["description"]).Equal(0.0)
	gt.V(t, report.Completeness["language"]).Equal(1.0)

	fields := map[string]bool{}
	for _, issue := range report.Issues {
		gt.V(t, issue.Type).Equal(types.IssueMissing)
		fields[issue.Field] = true
	}
	gt.True(t, fields["description"])
	gt.True(t, fields["summary"])
}

func TestAuditScoreMonotonicity(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	incomplete := newTestRepo("1", "foo", "alpha")
	incomplete.Description = ""
	gt.NoError(t, store.UpsertRepository(ctx, incomplete))
	uc := newCatalogUseCase(store)

	before := gt.R1(uc.Audit(ctx)).NoError(t)

	// Filling in a previously missing field never lowers the score.
	filled := incomplete.Clone()
	filled.Description = "now documented"
	gt.NoError(t, store.UpsertRepository(ctx, filled))

	after := gt.R1(uc.Audit(ctx)).NoError(t)
	gt.True(t, after.QualityScore > before.QualityScore)
}

func TestAuditStaleLinkRecommendation(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	stale := enrichedTestRepo("1", "foo", "alpha")
	stale.LinkStatus = types.LinkBroken
	gt.NoError(t, store.UpsertRepository(ctx, stale))
	uc := newCatalogUseCase(store)

	report := gt.R1(uc.Audit(ctx)).NoError(t)

	found := false
	for _, issue := range report.Issues {
		if issue.Type == types.IssueStaleLink {
			found = true
			gt.V(t, issue.Severity).Equal(types.SeverityHigh)
		}
	}
	gt.True(t, found)

	recommended := false
	for _, rec := range report.Recommendations {
		if strings.Contains(rec, "fix-links") {
			recommended = true
		}
	}
	gt.True(t, recommended)
}

func TestAuditFlagsMalformedFullName(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	broken := enrichedTestRepo("1", "foo", "alpha")
	broken.FullName = "someone-else/alpha"
	gt.NoError(t, store.UpsertRepository(ctx, broken))
	uc := newCatalogUseCase(store)

	report := gt.R1(uc.Audit(ctx)).NoError(t)

	found := false
	for _, issue := range report.Issues {
		if issue.Type == types.IssueMalformed {
			found = true
			gt.V(t, issue.Field).Equal("full_name")
		}
	}
	gt.True(t, found)
}

func TestAuditFlagsNonConformantEnrichment(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	wrongScript := enrichedTestRepo("1", "foo", "alpha")
	wrongScript.Summary = "ファイルサーバーです"
	gt.NoError(t, store.UpsertRepository(ctx, wrongScript))
	uc := newCatalogUseCase(store)

	report := gt.R1(uc.Audit(ctx)).NoError(t)

	found := false
	for _, issue := range report.Issues {
		if issue.Type == types.IssueNonConformant {
			found = true
		}
	}
	gt.True(t, found)
}

func TestAuditLowScoreRecommendsResync(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	// A record with nothing but identity fields scores poorly.
	empty := &model.Repository{ID: "1", Owner: "foo", Name: "alpha", FullName: "foo/alpha", LinkStatus: types.LinkBroken}
	gt.NoError(t, store.UpsertRepository(ctx, empty))
	uc := newCatalogUseCase(store)

	report := gt.R1(uc.Audit(ctx)).NoError(t)
	gt.True(t, report.QualityScore < 70)

	found := false
	for _, rec := range report.Recommendations {
		if strings.Contains(rec, "resync") {
			found = true
		}
	}
	gt.True(t, found)
}

func TestAuditIsReadOnly(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	gt.NoError(t, store.UpsertRepository(ctx, newTestRepo("1", "foo", "alpha")))
	uc := newCatalogUseCase(store)

	gt.R1(uc.Audit(ctx)).NoError(t)
	gt.R1(uc.Audit(ctx)).NoError(t)

	stored := gt.R1(store.GetRepository(ctx, "1")).NoError(t)
	gt.V(t, stored.Description).Equal("test repository")
	gt.False(t, stored.Enriched())
}

func TestAuditEmptyCatalog(t *testing.T) {
	uc := newCatalogUseCase(memory.New())

	report := gt.R1(uc.Audit(context.Background())).NoError(t)
	gt.V(t, report.TotalRecords).Equal(0)
	gt.V(t, report.QualityScore).Equal(100.0)
	gt.A(t, report.Issues).Length(0)
}
