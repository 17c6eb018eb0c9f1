// internal/workers/timeline/calculate-deadlines/models.go
package calculatedeadlines

import "legal-workers/internal/legal/timeline"

type Input struct {
	CaseType  string              `json:"caseType"`
	StartDate string              `json:"startDate"`
	Deadlines []timeline.Deadline `json:"deadlines,omitempty"`
	Language  string              `json:"language"`
}

type Output struct {
	CaseType      string           `json:"caseType"`
	CaseTypeLabel string           `json:"caseTypeLabel"`
	Language      string           `json:"language"`
	Events        []timeline.Event `json:"events"`
	NextDeadline  *timeline.Event  `json:"nextDeadline,omitempty"`
}
