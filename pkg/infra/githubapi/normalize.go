package githubapi

import (
	"strconv"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mcp-catalog/catsync/pkg/domain/model"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
)

// normalizeRepo maps a raw upstream payload into a catalog record. Pure
// function, no I/O. Payloads without the stable numeric ID are rejected.
func normalizeRepo(raw *github.Repository) (*model.Repository, error) {
	if raw == nil || raw.GetID() == 0 {
		return nil, goerr.Wrap(types.ErrMalformedRecord, "upstream payload has no repository ID")
	}
	if raw.GetOwner().GetLogin() == "" || raw.GetName() == "" {
		return nil, goerr.Wrap(types.ErrMalformedRecord, "upstream payload has no owner or name",
			goerr.V("repoID", raw.GetID()),
		)
	}

	record := &model.Repository{
		ID:          types.RepoID(strconv.FormatInt(raw.GetID(), 10)),
		Owner:       raw.GetOwner().GetLogin(),
		Name:        raw.GetName(),
		Description: raw.GetDescription(),
		URL:         raw.GetHTMLURL(),
		Language:    raw.GetLanguage(),
		Topics:      raw.Topics,
		Stars:       raw.GetStargazersCount(),
		Forks:       raw.GetForksCount(),
		CreatedAt:   raw.GetCreatedAt().Time,
		UpdatedAt:   raw.GetUpdatedAt().Time,
		LinkStatus:  types.LinkUnchecked,
	}
	record.ComputeFullName()
	if record.URL == "" {
		record.URL = "https://github.com/" + record.FullName
	}

	return record, nil
}

func rateLimitFromResponse(resp *github.Response) model.RateLimit {
	if resp == nil {
		return model.RateLimit{}
	}
	return model.RateLimit{
		Limit:     resp.Rate.Limit,
		Remaining: resp.Rate.Remaining,
		ResetAt:   resp.Rate.Reset.Time,
	}
}
