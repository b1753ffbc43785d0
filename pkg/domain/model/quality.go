package model

import (
	"time"

	"github.com/mcp-catalog/catsync/pkg/domain/types"
)

// QualityIssue is one detected defect in a catalog record.
type QualityIssue struct {
	RecordID     types.RepoID    `json:"record_id"`
	Field        string          `json:"field"`
	Type         types.IssueType `json:"type"`
	Severity     types.Severity  `json:"severity"`
	SuggestedFix string          `json:"suggested_fix,omitempty"`
}

// QualityReport is the output of one read-only audit pass over the catalog.
type QualityReport struct {
	GeneratedAt     time.Time          `json:"generated_at"`
	TotalRecords    int                `json:"total_records"`
	Completeness    map[string]float64 `json:"completeness"`
	QualityScore    float64            `json:"quality_score"`
	Issues          []QualityIssue     `json:"issues"`
	Recommendations []string           `json:"recommendations"`
}
