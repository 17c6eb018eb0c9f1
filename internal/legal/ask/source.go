// internal/legal/ask/source.go
package ask

import "strings"

// SourceKind groups the source strings the backend reports.
type SourceKind string

const (
	SourceSearch      SourceKind = "search"
	SourceGovernment  SourceKind = "government"
	SourceJudiciary   SourceKind = "judiciary"
	SourceInformation SourceKind = "information"
	SourceAI          SourceKind = "ai"
)

// DefaultSource is assumed when the backend names none.
const DefaultSource = "AI"

// Source is a classified answer source.
type Source struct {
	Raw   string     `json:"raw"`
	Kind  SourceKind `json:"kind"`
	Label string     `json:"label"`
}

// ClassifySource maps a backend source string to its kind and display label.
func ClassifySource(raw string) Source {
	if raw == "" {
		raw = DefaultSource
	}
	switch {
	case strings.Contains(raw, "DuckDuckGo"):
		return Source{Raw: raw, Kind: SourceSearch, Label: "Search Results"}
	case raw == "Government":
		return Source{Raw: raw, Kind: SourceGovernment, Label: "Government"}
	case raw == "Judiciary" || raw == "Legal System":
		return Source{Raw: raw, Kind: SourceJudiciary, Label: raw}
	case raw == "out_of_scope":
		return Source{Raw: raw, Kind: SourceInformation, Label: "Information"}
	}
	return Source{Raw: raw, Kind: SourceAI, Label: raw}
}
