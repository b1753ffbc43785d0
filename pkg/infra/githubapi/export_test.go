package githubapi

import "context"

// Export unexported functions for testing
var (
	NormalizeRepoForTest = normalizeRepo
	ClassifyErrorForTest = classifyError
)

func (x *Client) CallWithRetryForTest(ctx context.Context, call func(ctx context.Context) error) error {
	return x.callWithRetry(ctx, call)
}
