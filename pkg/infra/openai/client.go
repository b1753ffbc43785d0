package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mcp-catalog/catsync/pkg/domain/interfaces"
	"github.com/mcp-catalog/catsync/pkg/domain/model"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
	goopenai "github.com/sashabaranov/go-openai"
)

const systemPrompt = `You are a catalog curator for MCP (Model Context Protocol) server repositories.
Given repository metadata, respond with a JSON object holding exactly these keys:
"summary": one English paragraph describing what the server does,
"key_features": an array of 3-5 short English feature descriptions,
"use_cases": an array of 2-4 short English use case descriptions.
Respond with JSON only. All output must be in English.`

type Client struct {
	api   *goopenai.Client
	model string
}

var _ interfaces.LLMClient = (*Client)(nil)

func New(apiKey types.OpenAIAPIKey, baseURL, modelName string) (*Client, error) {
	if apiKey == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "OpenAI API key is empty")
	}
	if modelName == "" {
		modelName = goopenai.GPT4oMini
	}

	config := goopenai.DefaultConfig(string(apiKey))
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &Client{
		api:   goopenai.NewClientWithConfig(config),
		model: modelName,
	}, nil
}

// Enrich asks the model for structured catalog content. Backend outages are
// reported as ErrEnrichUnavailable so the orchestrator can degrade to its
// heuristic fallback instead of failing the run.
func (x *Client) Enrich(ctx context.Context, input *model.EnrichmentInput) (*model.EnrichmentResult, error) {
	resp, err := x.api.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: x.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: goopenai.ChatMessageRoleUser, Content: buildUserPrompt(input)},
		},
		ResponseFormat: &goopenai.ChatCompletionResponseFormat{
			Type: goopenai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, classifyError(err)
	}

	if len(resp.Choices) == 0 {
		return nil, goerr.Wrap(types.ErrEnrichMalformed, "model returned no choices",
			goerr.V("repo", input.FullName),
		)
	}

	var result model.EnrichmentResult
	content := resp.Choices[0].Message.Content
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, goerr.Wrap(types.ErrEnrichMalformed, "model output is not valid JSON",
			goerr.V("repo", input.FullName),
			goerr.V("content", content),
		)
	}
	if result.Summary == "" {
		return nil, goerr.Wrap(types.ErrEnrichMalformed, "model output has no summary",
			goerr.V("repo", input.FullName),
		)
	}

	return &result, nil
}

func buildUserPrompt(input *model.EnrichmentInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Repository: %s\n", input.FullName)
	if input.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", input.Description)
	}
	if input.Language != "" {
		fmt.Fprintf(&b, "Language: %s\n", input.Language)
	}
	if len(input.Topics) > 0 {
		fmt.Fprintf(&b, "Topics: %s\n", strings.Join(input.Topics, ", "))
	}
	return b.String()
}

func classifyError(err error) error {
	var apiErr *goopenai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.HTTPStatusCode == http.StatusTooManyRequests:
			return goerr.Wrap(types.ErrEnrichUnavailable, "enrichment backend rate limited")
		case apiErr.HTTPStatusCode >= 500:
			return goerr.Wrap(types.ErrEnrichUnavailable, "enrichment backend error",
				goerr.V("status", apiErr.HTTPStatusCode),
			)
		}
		return goerr.Wrap(err, "enrichment request rejected",
			goerr.V("status", apiErr.HTTPStatusCode),
		)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return goerr.Wrap(types.ErrEnrichUnavailable, "enrichment backend unreachable")
	}

	return goerr.Wrap(types.ErrEnrichUnavailable, "enrichment request failed", goerr.V("cause", err.Error()))
}
