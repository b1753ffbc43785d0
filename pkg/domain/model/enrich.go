package model

// EnrichmentInput carries the record fields the language model needs to
// produce descriptive output. Built from a Repository, never from raw API
// payloads.
type EnrichmentInput struct {
	FullName    string
	Description string
	Language    string
	Topics      []string
}

// EnrichmentResult is the structured output of one enrichment call.
// Fallback marks results synthesized locally while the backend is down.
type EnrichmentResult struct {
	Summary     string   `json:"summary"`
	KeyFeatures []string `json:"key_features"`
	UseCases    []string `json:"use_cases"`
	Fallback    bool     `json:"-"`
}
