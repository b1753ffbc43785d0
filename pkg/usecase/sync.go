package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mcp-catalog/catsync/pkg/domain/model"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
	"github.com/mcp-catalog/catsync/pkg/utils/errutil"
	"github.com/mcp-catalog/catsync/pkg/utils/logging"
)

type SyncInput struct {
	Query    string
	MaxPages int
	Mode     types.RunMode

	// Force rewrites records even when their core fields are unchanged.
	Force bool
}

func (x *SyncInput) Validate() error {
	if x.Query == "" {
		return goerr.Wrap(types.ErrInvalidOption, "search query is empty")
	}
	if x.Mode == "" {
		return goerr.Wrap(types.ErrInvalidOption, "run mode is empty")
	}
	return nil
}

// Sync pulls repository metadata from the upstream search API page by page
// and merges every record into the catalog through the upsert engine.
// Records are processed in upstream-fetch order; the run can be interrupted
// between records without corrupting catalog state.
func (x *UseCase) Sync(ctx context.Context, input *SyncInput) (*model.SyncRun, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}
	if x.clients.Catalog() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "catalog store is not configured")
	}

	logger := logging.From(ctx)
	run := &model.SyncRun{
		ID:        uuid.New().String(),
		Mode:      input.Mode,
		StartedAt: logging.CtxTime(ctx),
	}

	logger.Info("Starting catalog sync",
		slog.String("run_id", run.ID),
		slog.String("query", input.Query),
		slog.String("mode", string(input.Mode)),
	)

	for page := 1; input.MaxPages == 0 || page <= input.MaxPages; page++ {
		result, err := x.fetchPage(ctx, input.Query, page)
		if err != nil {
			if errors.Is(err, types.ErrUnauthorized) {
				return nil, goerr.Wrap(err, "aborting sync: credentials rejected")
			}
			errutil.HandleError(ctx, "failed to fetch search page", err)
			run.Counts.Errors++
			break
		}

		run.Counts.Errors += result.Malformed

		for i, record := range result.Records {
			outcome, err := x.upsert(ctx, record, input.Mode, input.Force)
			if err != nil {
				errutil.HandleError(ctx, "failed to upsert record", goerr.Wrap(err,
					"upsert failed",
					goerr.V("repoID", record.ID),
					goerr.V("fullName", record.FullName),
				))
				run.Counts.Errors++
				continue
			}

			run.Counts.TotalFetched++
			run.Counts.Record(outcome)

			logger.Info("Processed record",
				slog.Int("index", i+1),
				slog.Int("page", page),
				slog.String("repo", record.FullName),
				slog.String("url", record.URL),
				slog.String("outcome", string(outcome)),
			)
		}

		logger.Debug("Page complete",
			slog.Int("page", page),
			slog.Int("records", len(result.Records)),
			slog.Int("rate_remaining", result.RateLimit.Remaining),
		)

		if !result.HasMore {
			break
		}
	}

	run.FinishedAt = logging.CtxTime(ctx)
	if err := run.Reconcile(); err != nil {
		return nil, err
	}

	logger.Info("Catalog sync finished",
		slog.String("run_id", run.ID),
		slog.Int("total_fetched", run.Counts.TotalFetched),
		slog.Int("inserted", run.Counts.Inserted),
		slog.Int("updated", run.Counts.Updated),
		slog.Int("skipped", run.Counts.Skipped),
		slog.Int("errors", run.Counts.Errors),
	)

	return run, nil
}

// fetchPage wraps one search call and pauses until quota reset when the
// upstream reports rate limiting. Rate-limit pauses are not errors.
func (x *UseCase) fetchPage(ctx context.Context, query string, page int) (*model.SearchPage, error) {
	for {
		result, err := x.clients.GitHub().SearchRepositories(ctx, query, page)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, types.ErrRateLimited) {
			return nil, err
		}

		wait := rateLimitWait(ctx, x.clients.GitHub().RateLimit)
		logging.From(ctx).Warn("Rate limited, pausing until quota reset",
			slog.Int("page", page),
			slog.Duration("wait", wait),
		)

		select {
		case <-ctx.Done():
			return nil, goerr.Wrap(ctx.Err(), "context canceled while waiting for rate limit reset")
		case <-time.After(wait):
		}
	}
}

func rateLimitWait(ctx context.Context, status func(ctx context.Context) (*model.RateLimit, error)) time.Duration {
	const fallback = time.Minute

	limit, err := status(ctx)
	if err != nil {
		return fallback
	}
	wait := time.Until(limit.ResetAt)
	if wait <= 0 || wait > time.Hour {
		return fallback
	}
	return wait + time.Second
}
