// internal/legal/projector/projector.go
package projector

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"legal-workers/internal/legal/render"
	"legal-workers/internal/legal/templates"
)

var ErrUnsupportedFormat = errors.New("UNSUPPORTED_FORMAT")

// Format is an output artifact format.
type Format string

const (
	FormatHTML     Format = "html"
	FormatPDF      Format = "pdf"
	FormatMarkdown Format = "md"
)

// ParseFormat accepts the format names used in job variables.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "html", "markup":
		return FormatHTML, nil
	case "pdf", "paginated":
		return FormatPDF, nil
	case "md", "markdown", "preview":
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// ContentType is the media type of an artifact.
func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	default:
		return "text/markdown; charset=utf-8"
	}
}

var (
	unsafeNameRun = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_.-]+|\.{2,}`)
	underscoreRun = regexp.MustCompile(`_{2,}`)
)

// Filename builds "{type}_{fullName}.{ext}". Whitespace, path separators,
// dot runs and other characters outside letters, digits, "_", "-" and "."
// collapse to a single underscore, so the result is always one path
// element.
func Filename(docType templates.DocumentType, fullName string, ext Format) string {
	name := unsafeNameRun.ReplaceAllString(fullName, "_")
	name = underscoreRun.ReplaceAllString(name, "_")
	return fmt.Sprintf("%s_%s.%s", docType, name, ext)
}

// Project serializes doc in the requested format.
func Project(doc *render.StructuredDocument, format Format, opts PaginatedOptions) ([]byte, error) {
	switch format {
	case FormatHTML:
		return Markup(doc)
	case FormatPDF:
		return Paginated(doc, opts)
	case FormatMarkdown:
		return []byte(Preview(doc)), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}
