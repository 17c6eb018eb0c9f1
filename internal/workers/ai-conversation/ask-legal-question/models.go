// internal/workers/ai-conversation/ask-legal-question/models.go
package asklegalquestion

type Input struct {
	Question string `json:"question"`
	Language string `json:"language,omitempty"`
}

type Output struct {
	Answer      string `json:"answer"`
	Source      string `json:"source"`
	SourceKind  string `json:"sourceKind"`
	SourceLabel string `json:"sourceLabel"`
	Language    string `json:"language"`
	Fallback    bool   `json:"fallback"`
	Cached      bool   `json:"cached"`
}

func GetInputSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []interface{}{"question"},
		"properties": map[string]interface{}{
			"question": map[string]interface{}{
				"type":      "string",
				"minLength": 1,
				"maxLength": 2000,
			},
			"language": map[string]interface{}{
				"type":      "string",
				"maxLength": 5,
			},
		},
	}
}
