package usecase

import (
	"time"

	"github.com/mcp-catalog/catsync/pkg/fuzzy"
	"github.com/mcp-catalog/catsync/pkg/infra"
	"golang.org/x/time/rate"
)

type UseCase struct {
	clients *infra.Clients

	// enrichGate is the pipeline-wide delay between successive LLM calls.
	// The orchestrator is its sole owner; callers never throttle themselves.
	enrichGate *rate.Limiter
	fuzzyConf  fuzzy.Config
	reportDir  string
}

type Option func(*UseCase)

// WithEnrichInterval sets the minimum delay between successive LLM calls.
func WithEnrichInterval(d time.Duration) Option {
	return func(x *UseCase) {
		x.enrichGate = rate.NewLimiter(rate.Every(d), 1)
	}
}

func WithFuzzyConfig(conf fuzzy.Config) Option {
	return func(x *UseCase) {
		x.fuzzyConf = conf
	}
}

// WithReportDir sets the directory for link-repair report files.
func WithReportDir(dir string) Option {
	return func(x *UseCase) {
		x.reportDir = dir
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:    clients,
		enrichGate: rate.NewLimiter(rate.Every(time.Second), 1),
		fuzzyConf:  fuzzy.DefaultConfig(),
		reportDir:  ".",
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
