package config

import (
	"log/slog"

	"github.com/mcp-catalog/catsync/pkg/domain/types"
	"github.com/mcp-catalog/catsync/pkg/infra/githubapi"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	token types.GitHubToken `masq:"secret"`
	proxy string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub API token",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("CATSYNC_GITHUB_TOKEN"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "http-proxy",
			Usage:       "HTTP proxy URL for outbound GitHub calls",
			Category:    "GitHub",
			Destination: &x.proxy,
			Sources:     cli.EnvVars("CATSYNC_HTTP_PROXY"),
		},
	}
}

func (x GitHub) New(options ...githubapi.Option) (*githubapi.Client, error) {
	return githubapi.New(x.token, x.proxy, options...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("token.len", len(x.token)),
		slog.String("proxy", x.proxy),
	)
}
