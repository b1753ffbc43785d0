package model

import (
	"time"

	"github.com/mcp-catalog/catsync/pkg/domain/types"
)

// LinkCheck is the outcome of validating one stored record's upstream URL.
// Inconclusive checks (forbidden, network error) are retried on the next run
// and never trigger the fuzzy resolver.
type LinkCheck struct {
	RecordID     types.RepoID       `json:"record_id"`
	Status       types.LinkStatus   `json:"status"`
	Reason       types.BrokenReason `json:"reason,omitempty"`
	Inconclusive bool               `json:"inconclusive,omitempty"`
	CheckedAt    time.Time          `json:"checked_at"`
}

// LinkCandidate is a replacement target proposed by the fuzzy resolver.
type LinkCandidate struct {
	Owner      string                `json:"owner"`
	Name       string                `json:"name"`
	Similarity float64               `json:"similarity"`
	Source     types.CandidateSource `json:"source"`
}

// RepairEntry describes one record in a link-repair report.
type RepairEntry struct {
	RecordID types.RepoID   `json:"record_id"`
	FullName string         `json:"full_name"`
	URL      string         `json:"url"`
	Reason   string         `json:"reason,omitempty"`
	Fix      *LinkCandidate `json:"fix,omitempty"`
}

// RepairReport is the JSON artifact written at the end of a fix-links run.
type RepairReport struct {
	Timestamp      time.Time     `json:"timestamp"`
	Mode           types.RunMode `json:"mode"`
	Summary        SyncCounts    `json:"summary"`
	InvalidRecords []RepairEntry `json:"invalid_records"`
	FixedRecords   []RepairEntry `json:"fixed_records"`
}
