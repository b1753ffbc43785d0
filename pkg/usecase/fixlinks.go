package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mcp-catalog/catsync/pkg/domain/interfaces"
	"github.com/mcp-catalog/catsync/pkg/domain/model"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
	"github.com/mcp-catalog/catsync/pkg/fuzzy"
	"github.com/mcp-catalog/catsync/pkg/utils/errutil"
	"github.com/mcp-catalog/catsync/pkg/utils/logging"
	"github.com/mcp-catalog/catsync/pkg/utils/safe"
)

type FixLinksInput struct {
	Mode types.RunMode

	// WriteReport controls whether the JSON repair report file is written.
	WriteReport bool
}

// githubProber adapts the existence check to the fuzzy resolver's probe
// interface. Rate limiting is owned by the underlying client.
type githubProber struct {
	gh interfaces.GitHubClient
}

func (x *githubProber) Exists(ctx context.Context, owner, name string) (bool, error) {
	if _, err := x.gh.GetRepository(ctx, owner, name); err != nil {
		if errors.Is(err, types.ErrRepoNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// FixLinks scans the whole catalog, validates every record's upstream link,
// and repairs broken ones through the fuzzy resolver. Only confirmed 404s are
// treated as broken; forbidden and network failures are inconclusive and
// retried on the next run. Unfixable records are flagged, never deleted.
func (x *UseCase) FixLinks(ctx context.Context, input *FixLinksInput) (*model.RepairReport, error) {
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is not configured")
	}
	if x.clients.Catalog() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "catalog store is not configured")
	}

	logger := logging.From(ctx)
	resolver := fuzzy.NewResolver(x.fuzzyConf, x.clients.GitHub(), &githubProber{gh: x.clients.GitHub()})

	records, err := x.clients.Catalog().ListRepositories(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list catalog records")
	}
	sort.Slice(records, func(i, j int) bool { return records[i].FullName < records[j].FullName })

	report := &model.RepairReport{
		Timestamp: logging.CtxTime(ctx),
		Mode:      input.Mode,
	}

	logger.Info("Starting link validation",
		slog.Int("total_records", len(records)),
		slog.String("mode", string(input.Mode)),
	)

	for i, record := range records {
		check := x.validateLink(ctx, record)

		logger.Info("Checked record link",
			slog.Int("index", i+1),
			slog.Int("total", len(records)),
			slog.String("repo", record.FullName),
			slog.String("url", record.URL),
			slog.String("status", string(check.Status)),
		)

		switch {
		case check.Inconclusive:
			// Neither valid nor broken. Leave the record as is and retry on
			// the next run.
			report.Summary.Errors++
			continue

		case check.Status == types.LinkValid:
			report.Summary.TotalFetched++
			report.Summary.Skipped++
			continue
		}

		report.Summary.TotalFetched++

		// Check-only reports the breakage without computing a fix.
		if input.Mode == types.RunModeCheckOnly {
			report.Summary.Skipped++
			report.InvalidRecords = append(report.InvalidRecords, model.RepairEntry{
				RecordID: record.ID,
				FullName: record.FullName,
				URL:      record.URL,
				Reason:   "link broken: " + string(check.Reason),
			})
			continue
		}

		candidate, err := resolver.Resolve(ctx, record.Owner, record.Name)
		if err != nil {
			errutil.HandleError(ctx, "fuzzy resolution failed", goerr.Wrap(err,
				"resolver error",
				goerr.V("repoID", record.ID),
			))
			report.Summary.Skipped++
			report.Summary.Errors++
			continue
		}

		if candidate == nil {
			report.Summary.Skipped++
			report.InvalidRecords = append(report.InvalidRecords, model.RepairEntry{
				RecordID: record.ID,
				FullName: record.FullName,
				URL:      record.URL,
				Reason:   "no replacement candidate found",
			})
			if err := x.markUnfixable(ctx, record, input.Mode); err != nil {
				errutil.HandleError(ctx, "failed to flag unfixable record", err)
				report.Summary.Errors++
			}
			continue
		}

		entry := model.RepairEntry{
			RecordID: record.ID,
			FullName: record.FullName,
			URL:      record.URL,
			Fix:      candidate,
		}

		fixed := record.Clone()
		fixed.ApplyCandidate(candidate)
		now := logging.CtxTime(ctx)
		fixed.LinkCheckedAt = &now

		if _, err := x.upsert(ctx, fixed, input.Mode, true); err != nil {
			errutil.HandleError(ctx, "failed to apply link fix", goerr.Wrap(err,
				"upsert of repaired record failed",
				goerr.V("repoID", record.ID),
			))
			report.Summary.Skipped++
			report.Summary.Errors++
			continue
		}

		report.Summary.Updated++
		report.FixedRecords = append(report.FixedRecords, entry)

		logger.Info("Repaired broken link",
			slog.String("repo", record.FullName),
			slog.String("new_repo", fixed.FullName),
			slog.String("source", string(candidate.Source)),
		)
	}

	if input.WriteReport && input.Mode != types.RunModeCheckOnly {
		if err := x.writeRepairReport(ctx, report); err != nil {
			return nil, err
		}
	}

	logger.Info("Link validation finished",
		slog.Int("checked", report.Summary.TotalFetched),
		slog.Int("fixed", report.Summary.Updated),
		slog.Int("unfixable", len(report.InvalidRecords)),
		slog.Int("errors", report.Summary.Errors),
	)

	return report, nil
}

// validateLink classifies one record's upstream URL. Only a confirmed 404 is
// broken.
func (x *UseCase) validateLink(ctx context.Context, record *model.Repository) *model.LinkCheck {
	check := &model.LinkCheck{
		RecordID:  record.ID,
		CheckedAt: logging.CtxTime(ctx),
	}

	_, err := x.clients.GitHub().GetRepository(ctx, record.Owner, record.Name)
	switch {
	case err == nil:
		check.Status = types.LinkValid

	case errors.Is(err, types.ErrRepoNotFound):
		check.Status = types.LinkBroken
		check.Reason = types.BrokenNotFound

	case errors.Is(err, types.ErrRateLimited):
		check.Inconclusive = true
		check.Reason = types.BrokenForbidden

	default:
		check.Inconclusive = true
		check.Reason = types.BrokenNetworkError
	}

	return check
}

func (x *UseCase) markUnfixable(ctx context.Context, record *model.Repository, mode types.RunMode) error {
	if mode != types.RunModeAutoFix {
		return nil
	}

	flagged := record.Clone()
	flagged.LinkStatus = types.LinkUnfixable
	now := logging.CtxTime(ctx)
	flagged.LinkCheckedAt = &now

	return x.clients.Catalog().UpsertRepository(ctx, flagged)
}

func (x *UseCase) writeRepairReport(ctx context.Context, report *model.RepairReport) error {
	name := fmt.Sprintf("fix-links-%s.json", report.Timestamp.Format("20060102-150405"))
	path := filepath.Join(x.reportDir, name)

	fd, err := os.Create(filepath.Clean(path))
	if err != nil {
		return goerr.Wrap(err, "failed to create repair report file", goerr.V("path", path))
	}
	defer safe.Close(fd)

	encoder := json.NewEncoder(fd)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return goerr.Wrap(err, "failed to encode repair report", goerr.V("path", path))
	}

	logging.From(ctx).Info("Wrote repair report", slog.String("path", path))
	return nil
}
