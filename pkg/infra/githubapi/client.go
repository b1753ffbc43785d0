package githubapi

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/mcp-catalog/catsync/pkg/domain/interfaces"
	"github.com/mcp-catalog/catsync/pkg/domain/model"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	searchPerPage  = 100
	requestTimeout = 10 * time.Second
)

type Client struct {
	gh         *github.Client
	limiter    *rate.Limiter
	maxRetries int
	backoff    time.Duration
}

var _ interfaces.GitHubClient = (*Client)(nil)

type Option func(*Client)

// WithLimiter replaces the request gate. The default allows one request per
// 100ms, which stays well inside the authenticated search quota.
func WithLimiter(l *rate.Limiter) Option {
	return func(x *Client) {
		x.limiter = l
	}
}

func WithMaxRetries(n int) Option {
	return func(x *Client) {
		x.maxRetries = n
	}
}

func WithBackoff(d time.Duration) Option {
	return func(x *Client) {
		x.backoff = d
	}
}

func New(token types.GitHubToken, proxyURL string, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token is empty")
	}

	baseTransport := http.DefaultTransport
	if proxyURL != "" {
		proxy, err := url.Parse(proxyURL)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid proxy URL", goerr.V("proxy", proxyURL))
		}
		baseTransport = &http.Transport{Proxy: http.ProxyURL(proxy)}
	}

	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{
		Transport: baseTransport,
	})
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)})
	httpClient := oauth2.NewClient(ctx, ts)
	httpClient.Timeout = requestTimeout

	client := &Client{
		gh:         github.NewClient(httpClient),
		limiter:    rate.NewLimiter(rate.Every(100*time.Millisecond), 1),
		maxRetries: 3,
		backoff:    500 * time.Millisecond,
	}

	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// SearchRepositories fetches and normalizes one page of search results.
func (x *Client) SearchRepositories(ctx context.Context, query string, page int) (*model.SearchPage, error) {
	var result *github.RepositoriesSearchResult
	var resp *github.Response

	err := x.callWithRetry(ctx, func(ctx context.Context) error {
		var err error
		result, resp, err = x.gh.Search.Repositories(ctx, query, &github.SearchOptions{
			ListOptions: github.ListOptions{
				Page:    page,
				PerPage: searchPerPage,
			},
		})
		return err
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search repositories",
			goerr.V("query", query),
			goerr.V("page", page),
		)
	}

	searchPage := &model.SearchPage{
		HasMore:   resp.NextPage != 0,
		RateLimit: rateLimitFromResponse(resp),
	}

	for _, raw := range result.Repositories {
		record, err := normalizeRepo(raw)
		if err != nil {
			searchPage.Malformed++
			continue
		}
		searchPage.Records = append(searchPage.Records, record)
	}

	return searchPage, nil
}

// GetRepository probes a single repository for existence.
func (x *Client) GetRepository(ctx context.Context, owner, name string) (*model.Repository, error) {
	var raw *github.Repository

	err := x.callWithRetry(ctx, func(ctx context.Context) error {
		var err error
		raw, _, err = x.gh.Repositories.Get(ctx, owner, name)
		return err
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get repository",
			goerr.V("owner", owner),
			goerr.V("name", name),
		)
	}

	record, err := normalizeRepo(raw)
	if err != nil {
		return nil, err
	}

	return record, nil
}

// Exists adapts GetRepository to the boolean probe the fuzzy resolver needs.
func (x *Client) Exists(ctx context.Context, owner, name string) (bool, error) {
	if _, err := x.GetRepository(ctx, owner, name); err != nil {
		if errors.Is(err, types.ErrRepoNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListByOwner lists all repositories owned by the given user or org.
func (x *Client) ListByOwner(ctx context.Context, owner string) ([]*model.Repository, error) {
	var all []*model.Repository
	opts := &github.RepositoryListOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}

	for {
		var repos []*github.Repository
		var resp *github.Response

		err := x.callWithRetry(ctx, func(ctx context.Context) error {
			var err error
			repos, resp, err = x.gh.Repositories.List(ctx, owner, opts)
			return err
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list repositories by owner",
				goerr.V("owner", owner),
			)
		}

		for _, raw := range repos {
			record, err := normalizeRepo(raw)
			if err != nil {
				continue
			}
			all = append(all, record)
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// RateLimit returns the current core API quota state.
func (x *Client) RateLimit(ctx context.Context) (*model.RateLimit, error) {
	limits, _, err := x.gh.RateLimits(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get rate limit status")
	}

	core := limits.GetCore()
	return &model.RateLimit{
		Limit:     core.Limit,
		Remaining: core.Remaining,
		ResetAt:   core.Reset.Time,
	}, nil
}

// callWithRetry gates the call through the limiter and retries transient
// failures with exponential backoff. Not-found, auth and rate-limit errors
// are classified and returned immediately.
func (x *Client) callWithRetry(ctx context.Context, call func(ctx context.Context) error) error {
	var lastErr error

	for attempt := 0; attempt < x.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return goerr.Wrap(ctx.Err(), "context canceled during retry")
			case <-time.After(x.backoff << (attempt - 1)):
			}
		}

		if err := x.limiter.Wait(ctx); err != nil {
			return goerr.Wrap(err, "context canceled while waiting for rate limiter")
		}

		callCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		err := call(callCtx)
		cancel()
		if err == nil {
			return nil
		}

		classified := classifyError(err)
		if !isTransient(classified) {
			return classified
		}
		lastErr = classified
	}

	return goerr.Wrap(lastErr, "retries exhausted", goerr.V("attempts", x.maxRetries))
}
