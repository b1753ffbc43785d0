package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mcp-catalog/catsync/pkg/domain/model"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
	"github.com/mcp-catalog/catsync/pkg/repository"
)

// UpsertRepository decides insert vs. update vs. skip for one incoming record
// and performs at most one store write. Lookup order is external ID first,
// then full name as a secondary key so records that arrive before their ID
// was backfilled still dedup correctly.
//
// In dry-run and check-only modes the outcome is computed identically but the
// write is discarded, which keeps dry-run reports byte-equal to the actions a
// live run would take.
func (x *UseCase) UpsertRepository(ctx context.Context, incoming *model.Repository, mode types.RunMode) (types.UpsertOutcome, error) {
	return x.upsert(ctx, incoming, mode, false)
}

// upsert implements UpsertRepository. With force set, a record whose core
// fields are unchanged is rewritten and reported as updated instead of
// skipped.
func (x *UseCase) upsert(ctx context.Context, incoming *model.Repository, mode types.RunMode, force bool) (types.UpsertOutcome, error) {
	if x.clients.Catalog() == nil {
		return "", goerr.Wrap(types.ErrInvalidOption, "catalog store is not configured")
	}
	if err := incoming.Validate(); err != nil {
		return "", err
	}

	stored, err := x.lookup(ctx, incoming)
	if err != nil {
		return "", err
	}

	if stored == nil {
		if err := x.persist(ctx, incoming, mode); err != nil {
			return "", err
		}
		return types.UpsertInserted, nil
	}

	if !force && stored.CoreEquals(incoming) {
		return types.UpsertSkipped, nil
	}

	legacyID := stored.ID

	merged := stored.Clone()
	merged.MergeCoreFrom(incoming)
	if force {
		// Forced writes come from the link repairer, which owns link state.
		merged.LinkStatus = incoming.LinkStatus
		merged.LinkCheckedAt = incoming.LinkCheckedAt
	}
	if err := x.persist(ctx, merged, mode); err != nil {
		return "", err
	}

	// A record matched by full name can carry a stale ID. The merge adopts
	// the incoming ID, so the document stored under the old key must go or
	// the catalog ends up with two entries for one repository.
	if legacyID != merged.ID && mode == types.RunModeAutoFix {
		if err := x.clients.Catalog().DeleteRepository(ctx, legacyID); err != nil && !errors.Is(err, repository.ErrNotFound) {
			return "", goerr.Wrap(err, "failed to delete rekeyed repository",
				goerr.V("legacyID", legacyID),
				goerr.V("repoID", merged.ID),
			)
		}
	}

	return types.UpsertUpdated, nil
}

func (x *UseCase) lookup(ctx context.Context, incoming *model.Repository) (*model.Repository, error) {
	stored, err := x.clients.Catalog().GetRepository(ctx, incoming.ID)
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, goerr.Wrap(err, "failed to look up repository by ID",
			goerr.V("repoID", incoming.ID),
		)
	}

	stored, err = x.clients.Catalog().GetRepositoryByFullName(ctx, incoming.FullName)
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, goerr.Wrap(err, "failed to look up repository by full name",
			goerr.V("fullName", incoming.FullName),
		)
	}

	return nil, nil
}

func (x *UseCase) persist(ctx context.Context, record *model.Repository, mode types.RunMode) error {
	if mode != types.RunModeAutoFix {
		return nil
	}
	return x.clients.Catalog().UpsertRepository(ctx, record)
}
