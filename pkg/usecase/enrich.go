package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"unicode"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mcp-catalog/catsync/pkg/domain/model"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
	"github.com/mcp-catalog/catsync/pkg/utils/errutil"
	"github.com/mcp-catalog/catsync/pkg/utils/logging"
)

type EnrichInput struct {
	Mode types.RunMode

	// Force re-analyzes records that already carry enrichment output and
	// increments their analysis version.
	Force bool

	// Limit caps the number of records enriched in one run. Zero means all.
	Limit int
}

// Enrich drives LLM-based content generation over the catalog. All calls go
// through the pipeline-wide gate so the upstream quota is respected no matter
// how many records need analysis. When the backend is down the run degrades
// to heuristic passthrough results instead of failing.
func (x *UseCase) Enrich(ctx context.Context, input *EnrichInput) (*model.SyncRun, error) {
	if x.clients.LLM() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "LLM client is not configured")
	}
	if x.clients.Catalog() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "catalog store is not configured")
	}

	logger := logging.From(ctx)
	run := &model.SyncRun{
		Mode:      input.Mode,
		StartedAt: logging.CtxTime(ctx),
	}

	records, err := x.clients.Catalog().ListRepositories(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list catalog records")
	}
	sort.Slice(records, func(i, j int) bool { return records[i].FullName < records[j].FullName })

	logger.Info("Starting enrichment",
		slog.Int("total_records", len(records)),
		slog.Bool("force", input.Force),
		slog.String("mode", string(input.Mode)),
	)

	enriched := 0
	for i, record := range records {
		if input.Limit > 0 && enriched >= input.Limit {
			break
		}

		run.Counts.TotalFetched++

		// Re-running on an enriched record is a no-op unless forced.
		if record.Enriched() && !input.Force {
			run.Counts.Skipped++
			continue
		}

		if err := x.enrichGate.Wait(ctx); err != nil {
			return nil, goerr.Wrap(err, "context canceled while waiting for enrichment gate")
		}

		result, err := x.enrichOne(ctx, record)
		if err != nil {
			errutil.HandleError(ctx, "enrichment failed", goerr.Wrap(err,
				"enrichment error",
				goerr.V("repoID", record.ID),
			))
			run.Counts.TotalFetched--
			run.Counts.Errors++
			continue
		}

		if reason := conformanceViolation(result); reason != "" {
			// Never store non-conformant output; the record stays flagged for
			// re-enrichment and the auditor reports it.
			logger.Warn("Enrichment output failed language conformance",
				slog.String("repo", record.FullName),
				slog.String("reason", reason),
			)
			run.Counts.TotalFetched--
			run.Counts.Errors++
			continue
		}

		updated := record.Clone()
		updated.Summary = result.Summary
		updated.KeyFeatures = result.KeyFeatures
		updated.UseCases = result.UseCases
		now := logging.CtxTime(ctx)
		updated.AnalyzedAt = &now
		updated.AnalysisVersion++

		if err := x.persist(ctx, updated, input.Mode); err != nil {
			errutil.HandleError(ctx, "failed to store enrichment", err)
			run.Counts.TotalFetched--
			run.Counts.Errors++
			continue
		}

		run.Counts.Updated++
		enriched++

		logger.Info("Enriched record",
			slog.Int("index", i+1),
			slog.Int("total", len(records)),
			slog.String("repo", record.FullName),
			slog.Int("analysis_version", updated.AnalysisVersion),
			slog.Bool("fallback", result.Fallback),
		)
	}

	run.FinishedAt = logging.CtxTime(ctx)
	if err := run.Reconcile(); err != nil {
		return nil, err
	}

	logger.Info("Enrichment finished",
		slog.Int("processed", run.Counts.TotalFetched),
		slog.Int("enriched", run.Counts.Updated),
		slog.Int("skipped", run.Counts.Skipped),
		slog.Int("errors", run.Counts.Errors),
	)

	return run, nil
}

func (x *UseCase) enrichOne(ctx context.Context, record *model.Repository) (*model.EnrichmentResult, error) {
	enrichInput := &model.EnrichmentInput{
		FullName:    record.FullName,
		Description: record.Description,
		Language:    record.Language,
		Topics:      record.Topics,
	}

	result, err := x.clients.LLM().Enrich(ctx, enrichInput)
	if err == nil {
		return result, nil
	}
	if !errors.Is(err, types.ErrEnrichUnavailable) {
		return nil, err
	}

	logging.From(ctx).Warn("Enrichment backend unavailable, using heuristic fallback",
		slog.String("repo", record.FullName),
	)
	return fallbackResult(enrichInput), nil
}

// fallbackResult synthesizes passthrough enrichment from the record's own
// metadata so an offline backend degrades the content, not the run.
func fallbackResult(input *model.EnrichmentInput) *model.EnrichmentResult {
	summary := input.Description
	if summary == "" {
		summary = fmt.Sprintf("MCP server repository %s.", input.FullName)
	}

	features := make([]string, 0, len(input.Topics))
	for _, topic := range input.Topics {
		features = append(features, "Related to "+topic)
	}

	var useCases []string
	if input.Language != "" {
		useCases = append(useCases, fmt.Sprintf("Integrate MCP tooling into %s projects", input.Language))
	}

	return &model.EnrichmentResult{
		Summary:     summary,
		KeyFeatures: features,
		UseCases:    useCases,
		Fallback:    true,
	}
}

// conformanceViolation scans enrichment output for scripts outside the
// catalog's publication language. This is a character-class check, not
// language detection; it catches the common failure of the model answering
// in the wrong language.
func conformanceViolation(result *model.EnrichmentResult) string {
	fields := append([]string{result.Summary}, result.KeyFeatures...)
	fields = append(fields, result.UseCases...)

	for _, text := range fields {
		if script := disallowedScript(text); script != "" {
			return script
		}
	}
	return ""
}

var disallowedScripts = []struct {
	name  string
	table *unicode.RangeTable
}{
	{"Han", unicode.Han},
	{"Hiragana", unicode.Hiragana},
	{"Katakana", unicode.Katakana},
	{"Hangul", unicode.Hangul},
	{"Cyrillic", unicode.Cyrillic},
	{"Arabic", unicode.Arabic},
}

func disallowedScript(text string) string {
	for _, r := range text {
		for _, script := range disallowedScripts {
			if unicode.Is(script.table, r) {
				return fmt.Sprintf("%s character %q", script.name, r)
			}
		}
	}
	return ""
}
