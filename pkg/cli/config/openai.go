package config

import (
	"log/slog"

	"github.com/mcp-catalog/catsync/pkg/domain/types"
	"github.com/mcp-catalog/catsync/pkg/infra/openai"
	"github.com/urfave/cli/v3"
)

type OpenAI struct {
	apiKey  types.OpenAIAPIKey `masq:"secret"`
	baseURL string
	model   string
}

func (x *OpenAI) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key",
			Category:    "OpenAI",
			Destination: (*string)(&x.apiKey),
			Sources:     cli.EnvVars("CATSYNC_OPENAI_API_KEY"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "openai-base-url",
			Usage:       "OpenAI API base URL (for compatible endpoints)",
			Category:    "OpenAI",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("CATSYNC_OPENAI_BASE_URL"),
		},
		&cli.StringFlag{
			Name:        "openai-model",
			Usage:       "Model name for enrichment",
			Category:    "OpenAI",
			Destination: &x.model,
			Sources:     cli.EnvVars("CATSYNC_OPENAI_MODEL"),
		},
	}
}

func (x OpenAI) New() (*openai.Client, error) {
	return openai.New(x.apiKey, x.baseURL, x.model)
}

func (x OpenAI) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("apiKey.len", len(x.apiKey)),
		slog.String("baseURL", x.baseURL),
		slog.String("model", x.model),
	)
}
