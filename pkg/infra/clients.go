package infra

import (
	"net/http"

	"github.com/mcp-catalog/catsync/pkg/domain/interfaces"
)

type Clients struct {
	githubClient interfaces.GitHubClient
	llmClient    interfaces.LLMClient
	catalog      interfaces.CatalogRepository
	httpClient   HTTPClient
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHubClient {
	return x.githubClient
}
func (x *Clients) LLM() interfaces.LLMClient {
	return x.llmClient
}
func (x *Clients) Catalog() interfaces.CatalogRepository {
	return x.catalog
}
func (x *Clients) HTTPClient() HTTPClient {
	return x.httpClient
}

func WithGitHub(client interfaces.GitHubClient) Option {
	return func(x *Clients) {
		x.githubClient = client
	}
}

func WithLLM(client interfaces.LLMClient) Option {
	return func(x *Clients) {
		x.llmClient = client
	}
}

func WithCatalog(repo interfaces.CatalogRepository) Option {
	return func(x *Clients) {
		x.catalog = repo
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Clients) {
		x.httpClient = client
	}
}
