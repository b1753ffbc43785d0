package model

import (
	"slices"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
)

// Repository is the canonical catalog record for one upstream GitHub
// repository. Core fields come from the upstream API, enrichment fields are
// produced by the enrichment pipeline and must survive core-field updates.
type Repository struct {
	ID       types.RepoID `firestore:"id" json:"id"`
	Owner    string       `firestore:"owner" json:"owner"`
	Name     string       `firestore:"name" json:"name"`
	FullName string       `firestore:"full_name" json:"full_name"`

	Description string   `firestore:"description" json:"description"`
	URL         string   `firestore:"url" json:"url"`
	Language    string   `firestore:"language" json:"language"`
	Topics      []string `firestore:"topics" json:"topics"`
	Stars       int      `firestore:"stars" json:"stars"`
	Forks       int      `firestore:"forks" json:"forks"`

	Summary         string     `firestore:"summary" json:"summary,omitempty"`
	KeyFeatures     []string   `firestore:"key_features" json:"key_features,omitempty"`
	UseCases        []string   `firestore:"use_cases" json:"use_cases,omitempty"`
	AnalyzedAt      *time.Time `firestore:"analyzed_at" json:"analyzed_at,omitempty"`
	AnalysisVersion int        `firestore:"analysis_version" json:"analysis_version,omitempty"`

	LinkStatus    types.LinkStatus `firestore:"link_status" json:"link_status,omitempty"`
	LinkCheckedAt *time.Time       `firestore:"link_checked_at" json:"link_checked_at,omitempty"`

	CreatedAt time.Time `firestore:"created_at" json:"created_at"`
	UpdatedAt time.Time `firestore:"updated_at" json:"updated_at"`
}

func (x *Repository) Validate() error {
	if x.ID == "" {
		return goerr.Wrap(types.ErrMalformedRecord, "repository ID is empty")
	}
	if x.Owner == "" {
		return goerr.Wrap(types.ErrMalformedRecord, "repository owner is empty")
	}
	if x.Name == "" {
		return goerr.Wrap(types.ErrMalformedRecord, "repository name is empty")
	}
	return nil
}

// ComputeFullName recomputes FullName from Owner and Name. Must be called
// after any mutation of Owner or Name, e.g. when a link repair is applied.
func (x *Repository) ComputeFullName() {
	x.FullName = x.Owner + "/" + x.Name
}

// CoreEquals reports whether all core (non-enrichment, non-link-state) fields
// of x equal those of other. The upsert engine uses this to decide "skipped".
func (x *Repository) CoreEquals(other *Repository) bool {
	if other == nil {
		return false
	}
	return x.ID == other.ID &&
		x.Owner == other.Owner &&
		x.Name == other.Name &&
		x.FullName == other.FullName &&
		x.Description == other.Description &&
		x.URL == other.URL &&
		x.Language == other.Language &&
		slices.Equal(x.Topics, other.Topics) &&
		x.Stars == other.Stars &&
		x.Forks == other.Forks &&
		x.CreatedAt.Equal(other.CreatedAt) &&
		x.UpdatedAt.Equal(other.UpdatedAt)
}

// MergeCoreFrom overwrites the core fields of x with those of incoming while
// keeping enrichment and link-state fields untouched.
func (x *Repository) MergeCoreFrom(incoming *Repository) {
	x.ID = incoming.ID
	x.Owner = incoming.Owner
	x.Name = incoming.Name
	x.FullName = incoming.FullName
	x.Description = incoming.Description
	x.URL = incoming.URL
	x.Language = incoming.Language
	x.Topics = slices.Clone(incoming.Topics)
	x.Stars = incoming.Stars
	x.Forks = incoming.Forks
	x.CreatedAt = incoming.CreatedAt
	x.UpdatedAt = incoming.UpdatedAt
}

// ApplyCandidate rewrites the repository to point at the replacement target
// found by the fuzzy resolver. The external ID never changes.
func (x *Repository) ApplyCandidate(c *LinkCandidate) {
	x.Owner = c.Owner
	x.Name = c.Name
	x.ComputeFullName()
	x.URL = "https://github.com/" + x.FullName
	x.LinkStatus = types.LinkValid
}

func (x *Repository) Clone() *Repository {
	if x == nil {
		return nil
	}
	dup := *x
	dup.Topics = slices.Clone(x.Topics)
	dup.KeyFeatures = slices.Clone(x.KeyFeatures)
	dup.UseCases = slices.Clone(x.UseCases)
	if x.AnalyzedAt != nil {
		t := *x.AnalyzedAt
		dup.AnalyzedAt = &t
	}
	if x.LinkCheckedAt != nil {
		t := *x.LinkCheckedAt
		dup.LinkCheckedAt = &t
	}
	return &dup
}

// Enriched reports whether the record already carries enrichment output.
func (x *Repository) Enriched() bool {
	return x.AnalyzedAt != nil
}
