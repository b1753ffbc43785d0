package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mcp-catalog/catsync/pkg/domain/model"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
	"github.com/mcp-catalog/catsync/pkg/utils/logging"
)

// auditField describes one tracked catalog field: how to tell whether a
// record fills it, and how much it contributes to the overall score.
type auditField struct {
	name     string
	weight   float64
	severity types.Severity
	fix      string
	filled   func(*model.Repository) bool
}

var auditFields = []auditField{
	{
		name: "description", weight: 2.0, severity: types.SeverityMedium,
		fix:    "re-run sync to refresh upstream metadata",
		filled: func(r *model.Repository) bool { return r.Description != "" },
	},
	{
		name: "language", weight: 1.0, severity: types.SeverityLow,
		fix:    "re-run sync to refresh upstream metadata",
		filled: func(r *model.Repository) bool { return r.Language != "" },
	},
	{
		name: "topics", weight: 1.0, severity: types.SeverityLow,
		fix:    "re-run sync to refresh upstream metadata",
		filled: func(r *model.Repository) bool { return len(r.Topics) > 0 },
	},
	{
		name: "summary", weight: 2.0, severity: types.SeverityMedium,
		fix:    "run enrich on this record",
		filled: func(r *model.Repository) bool { return r.Summary != "" },
	},
	{
		name: "key_features", weight: 1.5, severity: types.SeverityLow,
		fix:    "run enrich on this record",
		filled: func(r *model.Repository) bool { return len(r.KeyFeatures) > 0 },
	},
	{
		name: "use_cases", weight: 1.5, severity: types.SeverityLow,
		fix:    "run enrich on this record",
		filled: func(r *model.Repository) bool { return len(r.UseCases) > 0 },
	},
	{
		name: "analyzed_at", weight: 1.0, severity: types.SeverityLow,
		fix:    "run enrich on this record",
		filled: func(r *model.Repository) bool { return r.Enriched() },
	},
	{
		name: "link_health", weight: 2.0, severity: types.SeverityHigh,
		fix:    "run fix-links",
		filled: func(r *model.Repository) bool {
			return r.LinkStatus != types.LinkBroken && r.LinkStatus != types.LinkUnfixable
		},
	},
}

// Audit runs a read-only quality scan over the whole catalog. It never writes
// back, so it is safe to run at any time, including concurrently with sync.
func (x *UseCase) Audit(ctx context.Context) (*model.QualityReport, error) {
	if x.clients.Catalog() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "catalog store is not configured")
	}

	records, err := x.clients.Catalog().ListRepositories(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list catalog records")
	}
	sort.Slice(records, func(i, j int) bool { return records[i].FullName < records[j].FullName })

	report := &model.QualityReport{
		GeneratedAt:  logging.CtxTime(ctx),
		TotalRecords: len(records),
		Completeness: make(map[string]float64, len(auditFields)),
	}

	filledCounts := make(map[string]int, len(auditFields))
	for _, record := range records {
		for _, field := range auditFields {
			if field.filled(record) {
				filledCounts[field.name]++
				continue
			}
			report.Issues = append(report.Issues, model.QualityIssue{
				RecordID:     record.ID,
				Field:        field.name,
				Type:         issueTypeFor(field.name),
				Severity:     field.severity,
				SuggestedFix: field.fix,
			})
		}

		report.Issues = append(report.Issues, structuralIssues(record)...)
	}

	var weightedSum, totalWeight float64
	for _, field := range auditFields {
		ratio := 1.0
		if len(records) > 0 {
			ratio = float64(filledCounts[field.name]) / float64(len(records))
		}
		report.Completeness[field.name] = ratio
		weightedSum += ratio * field.weight
		totalWeight += field.weight
	}
	report.QualityScore = weightedSum / totalWeight * 100

	report.Recommendations = recommendations(report)

	logging.From(ctx).Info("Audit complete",
		slog.Int("total_records", report.TotalRecords),
		slog.Float64("quality_score", report.QualityScore),
		slog.Int("issues", len(report.Issues)),
	)

	return report, nil
}

func issueTypeFor(field string) types.IssueType {
	if field == "link_health" {
		return types.IssueStaleLink
	}
	return types.IssueMissing
}

// structuralIssues flags defects that are not simple absence: inconsistent
// identity fields and stored enrichment text in the wrong script.
func structuralIssues(record *model.Repository) []model.QualityIssue {
	var issues []model.QualityIssue

	if expected := record.Owner + "/" + record.Name; record.FullName != expected {
		issues = append(issues, model.QualityIssue{
			RecordID:     record.ID,
			Field:        "full_name",
			Type:         types.IssueMalformed,
			Severity:     types.SeverityHigh,
			SuggestedFix: fmt.Sprintf("expected %q from owner and name", expected),
		})
	}

	if record.Enriched() {
		stored := &model.EnrichmentResult{
			Summary:     record.Summary,
			KeyFeatures: record.KeyFeatures,
			UseCases:    record.UseCases,
		}
		if reason := conformanceViolation(stored); reason != "" {
			issues = append(issues, model.QualityIssue{
				RecordID:     record.ID,
				Field:        "summary",
				Type:         types.IssueNonConformant,
				Severity:     types.SeverityMedium,
				SuggestedFix: "re-run enrich with --force: " + reason,
			})
		}
	}

	return issues
}

func recommendations(report *model.QualityReport) []string {
	var recs []string

	if len(report.Issues) > 10 {
		recs = append(recs, fmt.Sprintf("%d issues found: run a batch re-enrichment (enrich --force)", len(report.Issues)))
	}
	for _, issue := range report.Issues {
		if issue.Type == types.IssueStaleLink {
			recs = append(recs, "stale links detected: run fix-links --auto-fix")
			break
		}
	}
	if report.QualityScore < 70 {
		recs = append(recs, fmt.Sprintf("quality score %.1f is below 70: run a full resync", report.QualityScore))
	}

	return recs
}
