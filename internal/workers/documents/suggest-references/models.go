// internal/workers/documents/suggest-references/models.go
package suggestreferences

type Input struct {
	Description string `json:"description"`
	Language    string `json:"language"`
}

type Suggestion struct {
	Category string `json:"category"`
	Citation string `json:"citation"`
}

type Output struct {
	Citations   []string     `json:"citations"`
	Suggestions []Suggestion `json:"suggestions"`
	Language    string       `json:"language"`
}
