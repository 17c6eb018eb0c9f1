// internal/workers/documents/generate-document/models.go
package generatedocument

import "time"

type Input struct {
	// DocumentID is set from the job key, never from process variables,
	// since a previous generation in the same process leaves its own
	// documentId behind.
	DocumentID   string                 `json:"-"`
	DocumentType string                 `json:"documentType"`
	Fields       map[string]interface{} `json:"fields"`
	Language     string                 `json:"language"`
	Signature    string                 `json:"signature,omitempty"`
	Formats      []string               `json:"formats,omitempty"`
	OwnerEmail   string                 `json:"ownerEmail,omitempty"`
	Date         string                 `json:"date,omitempty"`
}

type ArtifactRef struct {
	Format      string `json:"format"`
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
}

type Output struct {
	DocumentID   string        `json:"documentId"`
	DocumentType string        `json:"documentType"`
	Title        string        `json:"title"`
	Owner        string        `json:"owner"`
	OwnerEmail   string        `json:"ownerEmail,omitempty"`
	Language     string        `json:"language"`
	Citations    []string      `json:"citations"`
	Artifacts    []ArtifactRef `json:"artifacts"`
	Preview      string        `json:"preview"`
	GeneratedAt  time.Time     `json:"generatedAt"`
}
