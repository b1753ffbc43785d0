package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption = goerr.New("invalid option")

	// Upstream API error kinds. Callers classify with errors.Is and decide
	// whether to retry, pause or abort per the taxonomy in the error policy.
	ErrRepoNotFound    = goerr.New("repository not found on upstream")
	ErrRateLimited     = goerr.New("upstream rate limit exceeded")
	ErrUnauthorized    = goerr.New("upstream authentication failed")
	ErrGitHubTransient = goerr.New("transient upstream error")

	ErrMalformedRecord = goerr.New("malformed upstream record")

	ErrEnrichUnavailable = goerr.New("enrichment backend unavailable")
	ErrEnrichMalformed   = goerr.New("enrichment output malformed")
)
