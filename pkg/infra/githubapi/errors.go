package githubapi

import (
	"errors"
	"net/http"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
)

// classifyError maps go-github failures onto the pipeline error taxonomy so
// callers never have to inspect HTTP responses themselves.
func classifyError(err error) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return goerr.Wrap(types.ErrRateLimited, "primary rate limit exceeded",
			goerr.V("reset_at", rateErr.Rate.Reset.Time),
		)
	}

	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return goerr.Wrap(types.ErrRateLimited, "secondary rate limit exceeded",
			goerr.V("retry_after", abuseErr.GetRetryAfter()),
		)
	}

	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		switch respErr.Response.StatusCode {
		case http.StatusNotFound, http.StatusGone:
			return goerr.Wrap(types.ErrRepoNotFound, "upstream returned not found")
		case http.StatusUnauthorized:
			return goerr.Wrap(types.ErrUnauthorized, "upstream rejected credentials")
		case http.StatusForbidden, http.StatusTooManyRequests:
			return goerr.Wrap(types.ErrRateLimited, "upstream returned forbidden")
		}
		if respErr.Response.StatusCode >= 500 {
			return goerr.Wrap(types.ErrGitHubTransient, "upstream server error",
				goerr.V("status", respErr.Response.StatusCode),
			)
		}
		return goerr.Wrap(err, "unexpected upstream response",
			goerr.V("status", respErr.Response.StatusCode),
		)
	}

	// Timeouts and connection resets land here.
	return goerr.Wrap(types.ErrGitHubTransient, "upstream request failed", goerr.V("cause", err.Error()))
}

func isTransient(err error) bool {
	return errors.Is(err, types.ErrGitHubTransient)
}
