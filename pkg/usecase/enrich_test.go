package usecase_test

import (
	"context"
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
)

func staticLLM(result *model.EnrichmentResult) *mock.LLMClientMock {
	return &mock.LLMClientMock{
		EnrichFunc: func(ctx context.Context, input *model.EnrichmentInput) (*model.EnrichmentResult, error) {
			return result, nil
		},
	}
}

func TestEnrichStoresOutput(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	gt.NoError(t, store.UpsertRepository(ctx, newTestRepo("1", "foo", "alpha")))

	llm := staticLLM(&model.EnrichmentResult{
		Summary:     "A Go MCP server for file access.",
		KeyFeatures: []string{"file read tools"},
		UseCases:    []string{"agent file browsing"},
	})
	uc := newCatalogUseCase(store, infra.WithLLM(llm))

	run := gt.R1(uc.Enrich(ctx, &usecase.EnrichInput{Mode: types.RunModeAutoFix})).NoError(t)
	gt.V(t, run.Counts.Updated).Equal(1)

	stored := gt.R1(store.GetRepository(ctx, "1")).NoError(t)
	gt.V(t, stored.Summary).Equal("A Go MCP server for file access.")
	gt.V(t, stored.AnalysisVersion).Equal(1)
	gt.True(t, stored.Enriched())
}

func TestEnrichSkipsEnrichedUnlessForced(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	analyzedAt := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	record := newTestRepo("1", "foo", "alpha")
	record.Summary = "existing summary"
	record.AnalyzedAt = &analyzedAt
	record.AnalysisVersion = 1
	gt.NoError(t, store.UpsertRepository(ctx, record))

	llm := staticLLM(&model.EnrichmentResult{Summary: "regenerated summary"})
	uc := newCatalogUseCase(store, infra.WithLLM(llm))

	run := gt.R1(uc.Enrich(ctx, &usecase.EnrichInput{Mode: types.RunModeAutoFix})).NoError(t)
	gt.V(t, run.Counts.Skipped).Equal(1)
	gt.V(t, run.Counts.Updated).Equal(0)
	gt.A(t, llm.EnrichCalls()).Length(0)

	forced := gt.R1(uc.Enrich(ctx, &usecase.EnrichInput{Mode: types.RunModeAutoFix, Force: true})).NoError(t)
	gt.V(t, forced.Counts.Updated).Equal(1)

	stored := gt.R1(store.GetRepository(ctx, "1")).NoError(t)
	gt.V(t, stored.Summary).Equal("regenerated summary")
	gt.V(t, stored.AnalysisVersion).Equal(2)
}

func TestEnrichFallbackWhenBackendDown(t *testing.T) {
	ctx := context.Background()
	store := memory.New()

	record := newTestRepo("1", "foo", "alpha")
	record.Description = "serves files over MCP"
	gt.NoError(t, store.UpsertRepository(ctx, record))

	llm := &mock.LLMClientMock{
		EnrichFunc: func(ctx context.Context, input *model.EnrichmentInput) (*model.EnrichmentResult, error) {
			return nil, goerr.Wrap(types.ErrEnrichUnavailable, "backend down")
		},
	}
	uc := newCatalogUseCase(store, infra.WithLLM(llm))

	run := gt.R1(uc.Enrich(ctx, &usecase.EnrichInput{Mode: types.RunModeAutoFix})).NoError(t)
	gt.V(t, run.Counts.Updated).Equal(1)
	gt.V(t, run.Counts.Errors).Equal(0)

	stored := gt.R1(store.GetRepository(ctx, "1")).NoError(t)
	gt.V(t, stored.Summary).Equal("serves files over MCP")
	gt.True(t, stored.Enriched())
}

func TestEnrichRejectsNonConformantOutput(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	gt.NoError(t, store.UpsertRepository(ctx, newTestRepo("1", "foo", "alpha")))

	llm := staticLLM(&model.EnrichmentResult{Summary: "这是一个文件服务器"})
	uc := newCatalogUseCase(store, infra.WithLLM(llm))

	run := gt.R1(uc.Enrich(ctx, &usecase.EnrichInput{Mode: types.RunModeAutoFix})).NoError(t)
	gt.V(t, run.Counts.Errors).Equal(1)
	gt.V(t, run.Counts.Updated).Equal(0)

	stored := gt.R1(store.GetRepository(ctx, "1")).NoError(t)
	gt.V(t, stored.Summary).Equal("")
	gt.False(t, stored.Enriched())
}

func TestEnrichRecordLevelErrorsDoNotAbort(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	gt.NoError(t, store.UpsertRepository(ctx, newTestRepo("1", "foo", "alpha")))
	gt.NoError(t, store.UpsertRepository(ctx, newTestRepo("2", "foo", "beta")))

	llm := &mock.LLMClientMock{
		EnrichFunc: func(ctx context.Context, input *model.EnrichmentInput) (*model.EnrichmentResult, error) {
			if input.FullName == "foo/alpha" {
				return nil, goerr.Wrap(types.ErrEnrichMalformed, "not valid JSON")
			}
			return &model.EnrichmentResult{Summary: "ok"}, nil
		},
	}
	uc := newCatalogUseCase(store, infra.WithLLM(llm))

	run := gt.R1(uc.Enrich(ctx, &usecase.EnrichInput{Mode: types.RunModeAutoFix})).NoError(t)
	gt.V(t, run.Counts.Errors).Equal(1)
	gt.V(t, run.Counts.Updated).Equal(1)
	gt.NoError(t, run.Reconcile())
}

func TestEnrichLimitCapsRun(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	gt.NoError(t, store.UpsertRepository(ctx, newTestRepo("1", "foo", "alpha")))
	gt.NoError(t, store.UpsertRepository(ctx, newTestRepo("2", "foo", "beta")))
	gt.NoError(t, store.UpsertRepository(ctx, newTestRepo("3", "foo", "gamma")))

	llm := staticLLM(&model.EnrichmentResult{Summary: "ok"})
	uc := newCatalogUseCase(store, infra.WithLLM(llm))

	run := gt.R1(uc.Enrich(ctx, &usecase.EnrichInput{Mode: types.RunModeAutoFix, Limit: 2})).NoError(t)
	gt.V(t, run.Counts.Updated).Equal(2)
	gt.A(t, llm.EnrichCalls()).Length(2)
}

func TestEnrichDryRunDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	gt.NoError(t, store.UpsertRepository(ctx, newTestRepo("1", "foo", "alpha")))

	llm := staticLLM(&model.EnrichmentResult{Summary: "would be stored"})
	uc := newCatalogUseCase(store, infra.WithLLM(llm))

	run := gt.R1(uc.Enrich(ctx, &usecase.EnrichInput{Mode: types.RunModeDryRun})).NoError(t)
	gt.V(t, run.Counts.Updated).Equal(1)

	stored := gt.R1(store.GetRepository(ctx, "1")).NoError(t)
	gt.False(t, stored.Enriched())
}
