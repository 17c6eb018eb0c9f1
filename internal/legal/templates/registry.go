// internal/legal/templates/registry.go
package templates

import (
	"errors"
	"fmt"
	"strings"

	"legal-workers/internal/legal/locale"
)

var ErrUnknownDocumentType = errors.New("DOCUMENT_TYPE_UNKNOWN")

// DocumentType is the id of a document template.
type DocumentType string

const (
	Complaint DocumentType = "complaint"
	Contract  DocumentType = "contract"
	Will      DocumentType = "will"
	Lease     DocumentType = "lease"
	Appeal    DocumentType = "appeal"
	Affidavit DocumentType = "affidavit"
)

// Rule names the section-building rule the renderer applies to a template.
type Rule string

const (
	RuleComplaint Rule = "complaint"
	RuleContract  Rule = "contract"
	RuleWill      Rule = "will"
)

// Template is one catalog entry.
type Template struct {
	Type   DocumentType `json:"type"`
	Label  locale.Text  `json:"label"`
	Title  locale.Text  `json:"title"`
	Fields []Field      `json:"fields"`
	Rule   Rule         `json:"rule"`
}

// Field returns the descriptor named name.
func (t Template) Field(name string) (Field, bool) {
	for _, f := range t.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// HasJurisdictionSelector reports whether the template binds courtRegion.
func (t Template) HasJurisdictionSelector() bool {
	_, ok := t.Field(FieldCourtRegion)
	return ok
}

var catalog = []Template{
	{
		Type:   Complaint,
		Label:  locale.Text{EN: "Legal Complaint", FR: "Plainte Juridique"},
		Title:  locale.Text{EN: "COMPLAINT", FR: "PLAINTE"},
		Fields: complaintFields(),
		Rule:   RuleComplaint,
	},
	{
		Type:   Contract,
		Label:  locale.Text{EN: "Employment Contract", FR: "Contrat de Travail"},
		Title:  locale.Text{EN: "EMPLOYMENT CONTRACT", FR: "CONTRAT DE TRAVAIL"},
		Fields: contractFields(),
		Rule:   RuleContract,
	},
	{
		Type:   Will,
		Label:  locale.Text{EN: "Last Will & Testament", FR: "Testament"},
		Title:  locale.Text{EN: "LAST WILL AND TESTAMENT OF", FR: "TESTAMENT DE"},
		Fields: willFields(),
		Rule:   RuleWill,
	},
	// No dedicated rules exist for the next three; they reuse the complaint
	// layout under their own title.
	{
		Type:   Lease,
		Label:  locale.Text{EN: "Lease Agreement", FR: "Contrat de Bail"},
		Title:  locale.Text{EN: "LEASE AGREEMENT", FR: "CONTRAT DE BAIL"},
		Fields: complaintFields(),
		Rule:   RuleComplaint,
	},
	{
		Type:   Appeal,
		Label:  locale.Text{EN: "Appeal Letter", FR: "Lettre d'Appel"},
		Title:  locale.Text{EN: "APPEAL LETTER", FR: "LETTRE D'APPEL"},
		Fields: complaintFields(),
		Rule:   RuleComplaint,
	},
	{
		Type:   Affidavit,
		Label:  locale.Text{EN: "Affidavit", FR: "Déclaration Sous Serment"},
		Title:  locale.Text{EN: "AFFIDAVIT", FR: "DÉCLARATION SOUS SERMENT"},
		Fields: complaintFields(),
		Rule:   RuleComplaint,
	},
}

// Lookup returns the template registered for id.
func Lookup(id DocumentType) (Template, error) {
	key := DocumentType(strings.ToLower(strings.TrimSpace(string(id))))
	for _, t := range catalog {
		if t.Type == key {
			return t, nil
		}
	}
	return Template{}, fmt.Errorf("%w: %q", ErrUnknownDocumentType, id)
}

// Types lists the registered document types in catalog order.
func Types() []DocumentType {
	out := make([]DocumentType, len(catalog))
	for i, t := range catalog {
		out[i] = t.Type
	}
	return out
}

// All returns a copy of the catalog.
func All() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}
