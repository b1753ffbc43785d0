package types

import "log/slog"

type (
	GitHubToken  string
	OpenAIAPIKey string

	RepoID string

	RunMode         string
	UpsertOutcome   string
	LinkStatus      string
	BrokenReason    string
	CandidateSource string
	IssueType       string
	Severity        string
)

const (
	RunModeCheckOnly RunMode = "check-only"
	RunModeDryRun    RunMode = "dry-run"
	RunModeAutoFix   RunMode = "auto-fix"
)

const (
	UpsertInserted UpsertOutcome = "inserted"
	UpsertUpdated  UpsertOutcome = "updated"
	UpsertSkipped  UpsertOutcome = "skipped"
)

const (
	LinkUnchecked LinkStatus = "unchecked"
	LinkValid     LinkStatus = "valid"
	LinkBroken    LinkStatus = "broken"
	LinkUnfixable LinkStatus = "unfixable"
)

const (
	BrokenNotFound     BrokenReason = "not-found"
	BrokenForbidden    BrokenReason = "forbidden"
	BrokenNetworkError BrokenReason = "network-error"
)

const (
	SourceOwnerListing     CandidateSource = "owner-listing-match"
	SourceCaseVariant      CandidateSource = "case-variant"
	SourceSeparatorVariant CandidateSource = "separator-variant"
	SourceSuffixHeuristic  CandidateSource = "suffix-heuristic"
)

const (
	IssueMissing       IssueType = "missing"
	IssueMalformed     IssueType = "malformed"
	IssueStaleLink     IssueType = "stale-link"
	IssueNonConformant IssueType = "non-conformant-language"
)

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x OpenAIAPIKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x OpenAIAPIKey) String() string {
	return "***********"
}
