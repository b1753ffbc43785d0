package fuzzy_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mcp-catalog/catsync/pkg/domain/model"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
	"github.com/mcp-catalog/catsync/pkg/fuzzy"
)

func TestDistance(t *testing.T) {
	t.Run("separator swap is distance 1", func(t *testing.T) {
		gt.V(t, fuzzy.Distance("fastapi-mcp", "fastapi_mcp")).Equal(1)
	})

	t.Run("case differences are ignored", func(t *testing.T) {
		gt.V(t, fuzzy.Distance("Bar-Server", "bar-server")).Equal(0)
	})

	t.Run("unrelated names exceed the threshold", func(t *testing.T) {
		gt.True(t, fuzzy.Distance("fastapi-mcp", "puppeteer") > 2)
	})
}

func TestSimilarity(t *testing.T) {
	gt.V(t, fuzzy.Similarity("abc", "abc")).Equal(1.0)
	gt.V(t, fuzzy.Similarity("", "")).Equal(1.0)
	gt.True(t, fuzzy.Similarity("fastapi-mcp", "fastapi_mcp") > 0.9)
	gt.True(t, fuzzy.Similarity("abcd", "wxyz") == 0)
}

type staticLister struct {
	repos []*model.Repository
	err   error
}

func (x *staticLister) ListByOwner(ctx context.Context, owner string) ([]*model.Repository, error) {
	if x.err != nil {
		return nil, x.err
	}
	return x.repos, nil
}

type setProber struct {
	existing map[string]bool
	probes   []string
}

func (x *setProber) Exists(ctx context.Context, owner, name string) (bool, error) {
	key := owner + "/" + name
	x.probes = append(x.probes, key)
	return x.existing[key], nil
}

func TestOwnerListingGenerator(t *testing.T) {
	lister := &staticLister{repos: []*model.Repository{
		{Owner: "foo", Name: "fastapi_mcp"},
		{Owner: "foo", Name: "totally-unrelated"},
		{Owner: "foo", Name: "fastapi-mcp-server"},
	}}
	gen := fuzzy.NewOwnerListingGenerator(lister, 2)

	candidates := gt.R1(gen.Generate(context.Background(), "foo", "fastapi-mcp")).NoError(t)

	// Both the edit-distance match and the containment match qualify; the
	// unrelated repo does not.
	gt.V(t, len(candidates)).Equal(2)
	gt.V(t, candidates[0].Name).Equal("fastapi_mcp")
	gt.V(t, candidates[0].Source).Equal(types.SourceOwnerListing)
	gt.True(t, candidates[0].Similarity >= candidates[1].Similarity)
}

func TestVariantGeneratorOrder(t *testing.T) {
	gen := fuzzy.NewVariantGenerator()

	candidates := gt.R1(gen.Generate(context.Background(), "foo", "Bar-Server")).NoError(t)

	// Case variants come first, then separator swaps, then suffix heuristics.
	gt.True(t, len(candidates) > 3)
	gt.V(t, candidates[0].Name).Equal("bar-server")
	gt.V(t, candidates[0].Source).Equal(types.SourceCaseVariant)

	var sawSeparator, sawSuffix bool
	for _, c := range candidates {
		switch c.Source {
		case types.SourceSeparatorVariant:
			sawSeparator = true
			gt.False(t, sawSuffix) // separator variants precede suffix heuristics
		case types.SourceSuffixHeuristic:
			sawSuffix = true
		}
	}
	gt.True(t, sawSeparator)
	gt.True(t, sawSuffix)
}

func TestVariantGeneratorFullSequence(t *testing.T) {
	gen := fuzzy.NewVariantGenerator()

	// Case folding, separator swaps, suffix addition then removal, owner
	// -AI suffixing, mcp- prefix stripping. Probes run in this order.
	candidates := gt.R1(gen.Generate(context.Background(), "Foo", "MCP-Demo")).NoError(t)

	keys := make([]string, 0, len(candidates))
	for _, c := range candidates {
		keys = append(keys, c.Owner+"/"+c.Name)
	}
	gt.V(t, keys).Equal([]string{
		"Foo/mcp-demo",
		"foo/mcp-demo",
		"Foo/mcp_demo",
		"Foo/mcp-demo-server",
		"Foo/mcp-demo-client",
		"Foo-AI/mcp-demo",
		"Foo/demo",
	})
}

func TestVariantGeneratorDeduplicates(t *testing.T) {
	gen := fuzzy.NewVariantGenerator()

	candidates := gt.R1(gen.Generate(context.Background(), "foo", "bar")).NoError(t)

	seen := map[string]bool{}
	for _, c := range candidates {
		key := c.Owner + "/" + c.Name
		gt.False(t, seen[key])
		gt.False(t, key == "foo/bar")
		seen[key] = true
	}
}

func TestResolver(t *testing.T) {
	t.Run("owner listing match wins over variant probes", func(t *testing.T) {
		lister := &staticLister{repos: []*model.Repository{
			{Owner: "foo", Name: "fastapi_mcp"},
		}}
		prober := &setProber{existing: map[string]bool{"foo/fastapi-mcp-server": true}}
		resolver := fuzzy.NewResolver(fuzzy.DefaultConfig(), lister, prober)

		candidate := gt.R1(resolver.Resolve(context.Background(), "foo", "fastapi-mcp")).NoError(t)
		gt.V(t, candidate.Name).Equal("fastapi_mcp")
		gt.V(t, candidate.Source).Equal(types.SourceOwnerListing)
		gt.V(t, len(prober.probes)).Equal(0)
	})

	t.Run("containment match is accepted below the similarity floor", func(t *testing.T) {
		// The renamed repo contains the broken name but is much longer,
		// so its edit-distance similarity is far below MinSimilarity.
		lister := &staticLister{repos: []*model.Repository{
			{Owner: "foo", Name: "mcp-server-for-kubernetes"},
		}}
		prober := &setProber{}
		resolver := fuzzy.NewResolver(fuzzy.DefaultConfig(), lister, prober)

		candidate := gt.R1(resolver.Resolve(context.Background(), "foo", "mcp")).NoError(t)
		gt.V(t, candidate.Name).Equal("mcp-server-for-kubernetes")
		gt.V(t, candidate.Source).Equal(types.SourceOwnerListing)
		gt.True(t, candidate.Similarity < fuzzy.DefaultConfig().MinSimilarity)
		gt.V(t, len(prober.probes)).Equal(0)
	})

	t.Run("renamed case variant is found by probing", func(t *testing.T) {
		// Scenario: foo/Bar-Server 404s upstream but foo/bar-server exists.
		lister := &staticLister{}
		prober := &setProber{existing: map[string]bool{"foo/bar-server": true}}
		resolver := fuzzy.NewResolver(fuzzy.DefaultConfig(), lister, prober)

		candidate := gt.R1(resolver.Resolve(context.Background(), "foo", "Bar-Server")).NoError(t)
		gt.V(t, candidate.Owner).Equal("foo")
		gt.V(t, candidate.Name).Equal("bar-server")
		gt.V(t, candidate.Source).Equal(types.SourceCaseVariant)
	})

	t.Run("first existing variant wins", func(t *testing.T) {
		lister := &staticLister{}
		prober := &setProber{existing: map[string]bool{
			"foo/some_server": true,
			"foo/some-server": true,
		}}
		resolver := fuzzy.NewResolver(fuzzy.DefaultConfig(), lister, prober)

		candidate := gt.R1(resolver.Resolve(context.Background(), "foo", "Some-Server")).NoError(t)
		gt.V(t, candidate.Name).Equal("some-server")
	})

	t.Run("no match leaves the record unfixable", func(t *testing.T) {
		lister := &staticLister{repos: []*model.Repository{
			{Owner: "foo", Name: "totally-different"},
		}}
		prober := &setProber{existing: map[string]bool{}}
		resolver := fuzzy.NewResolver(fuzzy.DefaultConfig(), lister, prober)

		candidate, err := resolver.Resolve(context.Background(), "foo", "puppeteer")
		gt.NoError(t, err)
		gt.True(t, candidate == nil)
		gt.True(t, len(prober.probes) > 0)
	})
}
