// internal/workers/documents/search-documents/models.go
package searchdocuments

import "legal-workers/internal/legal/archive"

type Input struct {
	Query        string `json:"query"`
	DocumentType string `json:"documentType,omitempty"`
	Language     string `json:"language,omitempty"`
	OwnerEmail   string `json:"ownerEmail,omitempty"`
	Pagination   struct {
		From int `json:"from"`
		Size int `json:"size"`
	} `json:"pagination"`
}

type Output struct {
	Documents []archive.Hit `json:"documents"`
	TotalHits int64         `json:"totalHits"`
	Took      int64         `json:"took"`
}
