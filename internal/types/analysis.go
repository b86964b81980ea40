//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/google/uuid"
)

// CompatibilityReport is the generation collaborator's verdict on how well
// a resume matches a job offer.
type CompatibilityReport struct {
	Score       int    `json:"score"` // 0-100
	Explanation string `json:"explanation"`
}

// AnalysisRecord is one persisted wizard run: the inputs, the score, and
// the rewritten resume text the layout engine later consumes.
type AnalysisRecord struct {
	ID            uuid.UUID `json:"id"`
	JobText       string    `json:"job_text"`
	ResumeText    string    `json:"resume_text"`
	Language      Language  `json:"language"`
	Score         int       `json:"score"`
	Explanation   string    `json:"explanation"`
	RewrittenText string    `json:"rewritten_text"`
	CreatedAt     time.Time `json:"created_at"`
}
