package openai_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/mcp-catalog/catsync/pkg/domain/model"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
	"github.com/mcp-catalog/catsync/pkg/infra/openai"
	"github.com/mcp-catalog/catsync/pkg/utils/testutil"
)

func TestNew(t *testing.T) {
	t.Run("empty API key is rejected", func(t *testing.T) {
		_, err := openai.New("", "", "")
		gt.Error(t, err)
	})

	t.Run("valid config builds a client", func(t *testing.T) {
		client, err := openai.New("sk-test", "", "")
		gt.NoError(t, err)
		gt.True(t, client != nil)
	})
}

func TestEnrichIntegration(t *testing.T) {
	apiKey := testutil.GetEnvOrSkip(t, "TEST_OPENAI_API_KEY")

	client := gt.R1(openai.New(types.OpenAIAPIKey(apiKey), "", "")).NoError(t)

	result := gt.R1(client.Enrich(context.Background(), &model.EnrichmentInput{
		FullName:    "modelcontextprotocol/servers",
		Description: "Reference implementations of MCP servers",
		Language:    "TypeScript",
		Topics:      []string{"mcp", "llm"},
	})).NoError(t)

	gt.True(t, result.Summary != "")
	gt.True(t, len(result.KeyFeatures) > 0)
}
