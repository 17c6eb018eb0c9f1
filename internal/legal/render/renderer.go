// internal/legal/render/renderer.go
package render

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"legal-workers/internal/legal/locale"
	"legal-workers/internal/legal/references"
	"legal-workers/internal/legal/templates"
)

// FieldSet maps a field name to the value the user entered.
type FieldSet map[string]string

// Has reports whether name carries a non-blank value.
func (f FieldSet) Has(name string) bool {
	return strings.TrimSpace(f[name]) != ""
}

// Get returns the trimmed value of name.
func (f FieldSet) Get(name string) string {
	return strings.TrimSpace(f[name])
}

// FieldSetFromValues converts decoded JSON values to text. Numbers are
// written out verbatim, without exponent or trailing zeros, and null
// counts as absent.
func FieldSetFromValues(values map[string]interface{}) (FieldSet, error) {
	fields := make(FieldSet, len(values))
	for name, v := range values {
		switch n := v.(type) {
		case nil:
		case string:
			fields[name] = n
		case json.Number:
			fields[name] = n.String()
		case float64:
			fields[name] = strconv.FormatFloat(n, 'f', -1, 64)
		case float32:
			fields[name] = strconv.FormatFloat(float64(n), 'f', -1, 32)
		case int:
			fields[name] = strconv.Itoa(n)
		case int64:
			fields[name] = strconv.FormatInt(n, 10)
		default:
			return nil, fmt.Errorf("field %s: expected text or number, got %T", name, v)
		}
	}
	return fields, nil
}

// Request is everything needed to render one document.
type Request struct {
	Type      templates.DocumentType
	Fields    FieldSet
	Citations references.CitationSet
	Signature *SignatureImage
	Language  locale.Language
	Date      time.Time
}

type builder func(b *docBuilder)

var rules = map[templates.Rule]builder{
	templates.RuleComplaint: buildComplaint,
	templates.RuleContract:  buildContract,
	templates.RuleWill:      buildWill,
}

// Render assembles the structured document for req. The only error is an
// unknown document type; missing values never fail a render.
func Render(req Request) (*StructuredDocument, error) {
	tmpl, err := templates.Lookup(req.Type)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now().UTC().Truncate(24 * time.Hour)
	}
	lang := locale.Parse(string(req.Language))
	fields := req.Fields
	if fields == nil {
		fields = FieldSet{}
	}

	b := &docBuilder{
		tmpl:      tmpl,
		fields:    fields,
		citations: req.Citations,
		lang:      lang,
		date:      date,
	}
	rules[tmpl.Rule](b)

	return &StructuredDocument{
		Metadata: Metadata{
			Type:     tmpl.Type,
			Title:    tmpl.Label.In(lang),
			Owner:    fields.Get(templates.FieldFullName),
			Date:     date,
			DateText: locale.LongDate(date, lang),
			Language: lang,
		},
		Sections:  b.sections,
		Signature: req.Signature,
	}, nil
}

type docBuilder struct {
	tmpl      templates.Template
	fields    FieldSet
	citations references.CitationSet
	lang      locale.Language
	date      time.Time
	sections  []Section
}

func (b *docBuilder) t(s text) string {
	return s.In(b.lang)
}

// value returns the field value or the field's blank token.
func (b *docBuilder) value(name string) string {
	if b.fields.Has(name) {
		return b.fields.Get(name)
	}
	if f, ok := b.tmpl.Field(name); ok {
		return f.Blank.In(b.lang)
	}
	return ""
}

func (b *docBuilder) dateText() string {
	return locale.LongDate(b.date, b.lang)
}

func (b *docBuilder) add(s Section) {
	b.sections = append(b.sections, s)
}

// addOptional appends s only when it has body lines.
func (b *docBuilder) addOptional(s Section) {
	if len(s.BodyLines) == 0 {
		return
	}
	s.Optional = true
	b.add(s)
}

// splitLines keeps one entry per source line, dropping trailing blank lines.
func splitLines(value string) []string {
	value = strings.TrimRight(strings.ReplaceAll(value, "\r\n", "\n"), " \t\n")
	if strings.TrimSpace(value) == "" {
		return nil
	}
	lines := strings.Split(value, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t\r")
	}
	return lines
}
