package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mcp-catalog/catsync/pkg/domain/types"
)

// SyncCounts aggregates per-record outcomes of one pipeline run.
// Errors are counted in addition to the other outcomes, not instead of them:
// a record that fails upsert is neither inserted, updated nor skipped.
type SyncCounts struct {
	TotalFetched int `json:"total_fetched"`
	Inserted     int `json:"inserted"`
	Updated      int `json:"updated"`
	Skipped      int `json:"skipped"`
	Errors       int `json:"errors"`
}

func (x *SyncCounts) Record(outcome types.UpsertOutcome) {
	switch outcome {
	case types.UpsertInserted:
		x.Inserted++
	case types.UpsertUpdated:
		x.Updated++
	case types.UpsertSkipped:
		x.Skipped++
	}
}

// SyncRun is one execution of the pipeline.
type SyncRun struct {
	ID         string        `json:"id"`
	Mode       types.RunMode `json:"mode"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Counts     SyncCounts    `json:"counts"`
}

// Reconcile verifies the counter invariant
// TotalFetched == Inserted + Updated + Skipped. Records that fail before or
// during upsert go to Errors and are excluded from TotalFetched so the
// invariant holds on every run, partial or not.
func (x *SyncRun) Reconcile() error {
	sum := x.Counts.Inserted + x.Counts.Updated + x.Counts.Skipped
	if x.Counts.TotalFetched != sum {
		return goerr.New("sync run counters do not reconcile",
			goerr.V("total_fetched", x.Counts.TotalFetched),
			goerr.V("inserted", x.Counts.Inserted),
			goerr.V("updated", x.Counts.Updated),
			goerr.V("skipped", x.Counts.Skipped),
		)
	}
	return nil
}

// SearchPage is one page of upstream search results after normalization.
type SearchPage struct {
	Records   []*Repository
	HasMore   bool
	Malformed int
	RateLimit RateLimit
}

// RateLimit mirrors the upstream API quota headers so callers can throttle.
type RateLimit struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}
