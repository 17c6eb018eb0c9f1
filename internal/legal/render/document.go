// internal/legal/render/document.go
package render

import (
	"time"

	"legal-workers/internal/legal/locale"
	"legal-workers/internal/legal/templates"
)

// SectionKind tells projectors how to lay a section out.
type SectionKind string

const (
	KindHeader     SectionKind = "header"
	KindTitle      SectionKind = "title"
	KindParty      SectionKind = "party"
	KindBody       SectionKind = "body"
	KindList       SectionKind = "list"
	KindReferences SectionKind = "references"
	KindClosing    SectionKind = "closing"
	KindSignature  SectionKind = "signature"
)

// Metadata is the document header shared by every projection.
type Metadata struct {
	Type     templates.DocumentType `json:"type"`
	Title    string                 `json:"title"`
	Owner    string                 `json:"owner"`
	Date     time.Time              `json:"date"`
	DateText string                 `json:"dateText"`
	Language locale.Language        `json:"language"`
}

// SignatureBlock is one signing slot. When UsesImage is set and the document
// carries a signature image, the image replaces the blank signing line.
type SignatureBlock struct {
	Caption   string   `json:"caption,omitempty"`
	UsesImage bool     `json:"usesImage"`
	Lines     []string `json:"lines"`
}

// Section is one ordered part of a document.
type Section struct {
	Kind       SectionKind      `json:"kind"`
	Heading    string           `json:"heading,omitempty"`
	BodyLines  []string         `json:"bodyLines,omitempty"`
	Optional   bool             `json:"optional,omitempty"`
	Signatures []SignatureBlock `json:"signatures,omitempty"`
}

// StructuredDocument is the single representation every projector consumes.
type StructuredDocument struct {
	Metadata  Metadata        `json:"metadata"`
	Sections  []Section       `json:"sections"`
	Signature *SignatureImage `json:"-"`
}

// SignatureLine is drawn in place of a missing signature image.
const SignatureLine = "____________________________"

// Lines flattens a section into the text lines every projection must emit,
// in order.
func (s Section) Lines(hasImage bool) []string {
	var out []string
	if s.Heading != "" {
		out = append(out, s.Heading)
	}
	out = append(out, s.BodyLines...)
	for _, b := range s.Signatures {
		if b.Caption != "" {
			out = append(out, b.Caption)
		}
		if !b.UsesImage || !hasImage {
			out = append(out, SignatureLine)
		}
		out = append(out, b.Lines...)
	}
	return out
}

// Text returns the date line followed by the lines of every section.
func (d *StructuredDocument) Text() []string {
	out := []string{d.Metadata.DateText}
	for _, s := range d.Sections {
		out = append(out, s.Lines(d.Signature != nil)...)
	}
	return out
}

// Section returns the first section of the given kind.
func (d *StructuredDocument) Section(kind SectionKind) (Section, bool) {
	for _, s := range d.Sections {
		if s.Kind == kind {
			return s, true
		}
	}
	return Section{}, false
}
