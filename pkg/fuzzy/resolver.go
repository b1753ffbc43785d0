package fuzzy

import (
	"context"
	"log/slog"

	"github.com/mcp-catalog/catsync/pkg/domain/model"
	"github.com/mcp-catalog/catsync/pkg/utils/logging"
)

// Prober checks whether a repository currently exists upstream. The
// implementation owns rate limiting of the underlying existence calls.
type Prober interface {
	Exists(ctx context.Context, owner, name string) (bool, error)
}

// Config tunes the matching policy. The defaults mirror the thresholds the
// pipeline has always used, but both knobs are deliberately configurable.
type Config struct {
	MaxEditDistance int
	MinSimilarity   float64
}

func DefaultConfig() Config {
	return Config{
		MaxEditDistance: 2,
		MinSimilarity:   0.5,
	}
}

// Resolver finds a replacement target for a broken repository link. Owner
// listing matches win over probed variants; variants are probed serially in
// generation order and the first existing one is accepted.
type Resolver struct {
	conf     Config
	listing  CandidateGenerator
	variants CandidateGenerator
	prober   Prober
}

func NewResolver(conf Config, lister OwnerLister, prober Prober) *Resolver {
	return &Resolver{
		conf:     conf,
		listing:  NewOwnerListingGenerator(lister, conf.MaxEditDistance),
		variants: NewVariantGenerator(),
		prober:   prober,
	}
}

// acceptListing decides whether the top-ranked owner listing candidate is
// taken. Containment matches are accepted unconditionally; a long name that
// contains the broken one scores a low similarity yet is still the repository
// being looked for. Everything else must clear the similarity floor.
func (x *Resolver) acceptListing(candidate *model.LinkCandidate, name string) bool {
	if TokenContains(candidate.Name, name) {
		return true
	}
	return candidate.Similarity >= x.conf.MinSimilarity
}

// Resolve returns at most one accepted candidate, or nil when the record is
// unfixable. Errors are returned only for upstream failures that make the
// outcome inconclusive; "nothing found" is not an error.
func (x *Resolver) Resolve(ctx context.Context, owner, name string) (*model.LinkCandidate, error) {
	logger := logging.From(ctx)

	listed, err := x.listing.Generate(ctx, owner, name)
	if err != nil {
		logger.Warn("owner listing unavailable, falling back to variant probes",
			slog.String("owner", owner),
			slog.String("name", name),
			slog.String("error", err.Error()),
		)
	} else if len(listed) > 0 && x.acceptListing(listed[0], name) {
		logger.Debug("accepted owner listing candidate",
			slog.String("owner", listed[0].Owner),
			slog.String("name", listed[0].Name),
			slog.Float64("similarity", listed[0].Similarity),
		)
		return listed[0], nil
	}

	variants, err := x.variants.Generate(ctx, owner, name)
	if err != nil {
		return nil, err
	}

	for _, candidate := range variants {
		exists, err := x.prober.Exists(ctx, candidate.Owner, candidate.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			logger.Debug("accepted variant candidate",
				slog.String("owner", candidate.Owner),
				slog.String("name", candidate.Name),
				slog.String("source", string(candidate.Source)),
			)
			return candidate, nil
		}
	}

	return nil, nil
}
