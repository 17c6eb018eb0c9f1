// internal/legal/projector/preview.go
package projector

import (
	"regexp"
	"strings"

	"legal-workers/internal/legal/render"
)

// Preview renders doc as markdown for on-screen review.
func Preview(doc *render.StructuredDocument) string {
	var sb strings.Builder
	hasImage := doc.Signature != nil

	sb.WriteString("*" + doc.Metadata.DateText + "*\n\n")

	for _, s := range doc.Sections {
		switch s.Kind {
		case render.KindHeader:
			sb.WriteString("**" + s.Heading + "**\n")
			writeBreakLines(&sb, escapeLines(s.BodyLines))
		case render.KindTitle:
			sb.WriteString("## " + s.Heading + "\n\n")
			for _, l := range s.BodyLines {
				sb.WriteString("# " + escapeLine(l) + "\n\n")
			}
		case render.KindReferences:
			sb.WriteString("> **" + s.Heading + "**\n>\n")
			for _, l := range s.BodyLines {
				sb.WriteString("> - " + escapeLine(l) + "\n")
			}
			sb.WriteString("\n")
		case render.KindList:
			sb.WriteString("### " + s.Heading + "\n\n")
			writeBreakLines(&sb, escapeLines(s.BodyLines))
		case render.KindSignature:
			for _, b := range s.Signatures {
				var lines []string
				if b.Caption != "" {
					lines = append(lines, escapeLine(b.Caption))
				}
				if b.UsesImage && hasImage {
					lines = append(lines, "*[signature]*")
				} else {
					lines = append(lines, escapeLine(render.SignatureLine))
				}
				writeBreakLines(&sb, append(lines, escapeLines(b.Lines)...))
			}
		default:
			if s.Heading != "" {
				sb.WriteString("### " + s.Heading + "\n\n")
			}
			for _, l := range s.BodyLines {
				sb.WriteString(escapeLine(l) + "\n\n")
			}
		}
	}
	return sb.String()
}

// writeBreakLines keeps lines in one paragraph with hard breaks.
func writeBreakLines(sb *strings.Builder, lines []string) {
	for i, l := range lines {
		sb.WriteString(l)
		if i < len(lines)-1 {
			sb.WriteString("  \n")
		}
	}
	sb.WriteString("\n\n")
}

// blockMarkers are the characters that open a heading, list, quote, fence,
// thematic break, table, raw HTML or link definition at the start of a line.
const blockMarkers = "#*+-=>_`~|<["

var orderedMarker = regexp.MustCompile(`^([ \t]*[0-9]{1,9})([.)])`)

func escapeLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = escapeLine(l)
	}
	return out
}

// escapeLine backslash-escapes a leading markdown marker so the line
// prints as entered.
func escapeLine(l string) string {
	rest := strings.TrimLeft(l, " \t")
	if rest == "" {
		return l
	}
	if strings.IndexByte(blockMarkers, rest[0]) >= 0 {
		return l[:len(l)-len(rest)] + `\` + rest
	}
	return orderedMarker.ReplaceAllString(l, `${1}\${2}`)
}
