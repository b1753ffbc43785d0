package fuzzy

import (
	"context"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mcp-catalog/catsync/pkg/domain/model"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
)

// CandidateGenerator proposes replacement targets for a broken (owner, name)
// pair. Generators are evaluated in a fixed priority order and each returns
// candidates in deterministic order.
type CandidateGenerator interface {
	Generate(ctx context.Context, owner, name string) ([]*model.LinkCandidate, error)
}

// OwnerLister lists all repositories owned by a user or organization.
type OwnerLister interface {
	ListByOwner(ctx context.Context, owner string) ([]*model.Repository, error)
}

// OwnerListingGenerator matches the broken name against the owner's current
// repositories. A hit here is preferred over any probed variant because it is
// confirmed to exist by a single upstream call.
type OwnerListingGenerator struct {
	lister          OwnerLister
	maxEditDistance int
}

func NewOwnerListingGenerator(lister OwnerLister, maxEditDistance int) *OwnerListingGenerator {
	return &OwnerListingGenerator{
		lister:          lister,
		maxEditDistance: maxEditDistance,
	}
}

func (x *OwnerListingGenerator) Generate(ctx context.Context, owner, name string) ([]*model.LinkCandidate, error) {
	repos, err := x.lister.ListByOwner(ctx, owner)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories by owner",
			goerr.V("owner", owner),
		)
	}

	var candidates []*model.LinkCandidate
	for _, repo := range repos {
		if !TokenContains(repo.Name, name) && Distance(repo.Name, name) > x.maxEditDistance {
			continue
		}
		candidates = append(candidates, &model.LinkCandidate{
			Owner:      repo.Owner,
			Name:       repo.Name,
			Similarity: Similarity(repo.Name, name),
			Source:     types.SourceOwnerListing,
		})
	}

	// Rank descending by similarity; ties broken by name for determinism.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Similarity != candidates[j].Similarity {
			return candidates[i].Similarity > candidates[j].Similarity
		}
		return candidates[i].Name < candidates[j].Name
	})

	return candidates, nil
}

// VariantGenerator derives a bounded, deterministic list of spelling variants
// of the broken (owner, name). It performs no I/O; the resolver probes each
// variant against the upstream existence check in this exact order.
type VariantGenerator struct{}

func NewVariantGenerator() *VariantGenerator {
	return &VariantGenerator{}
}

func (x *VariantGenerator) Generate(ctx context.Context, owner, name string) ([]*model.LinkCandidate, error) {
	var candidates []*model.LinkCandidate
	seen := map[string]bool{owner + "/" + name: true}

	add := func(o, n string, source types.CandidateSource) {
		key := o + "/" + n
		if o == "" || n == "" || seen[key] {
			return
		}
		seen[key] = true
		candidates = append(candidates, &model.LinkCandidate{
			Owner:      o,
			Name:       n,
			Similarity: Similarity(n, name),
			Source:     source,
		})
	}

	lowerName := strings.ToLower(name)
	lowerOwner := strings.ToLower(owner)

	// Case folding
	add(owner, lowerName, types.SourceCaseVariant)
	add(lowerOwner, lowerName, types.SourceCaseVariant)

	// Separator swaps
	add(owner, strings.ReplaceAll(lowerName, "-", "_"), types.SourceSeparatorVariant)
	add(owner, strings.ReplaceAll(lowerName, "_", "-"), types.SourceSeparatorVariant)

	// -server / -client suffix addition and removal
	if !strings.HasSuffix(lowerName, "-server") {
		add(owner, lowerName+"-server", types.SourceSuffixHeuristic)
	}
	if !strings.HasSuffix(lowerName, "-client") {
		add(owner, lowerName+"-client", types.SourceSuffixHeuristic)
	}
	add(owner, strings.TrimSuffix(lowerName, "-server"), types.SourceSuffixHeuristic)
	add(owner, strings.TrimSuffix(lowerName, "-client"), types.SourceSuffixHeuristic)

	// Owner renamed with an -AI suffix
	add(owner+"-AI", lowerName, types.SourceSuffixHeuristic)

	// mcp- prefix stripping
	add(owner, strings.TrimPrefix(lowerName, "mcp-"), types.SourceSuffixHeuristic)

	return candidates, nil
}
