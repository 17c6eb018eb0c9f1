// internal/legal/projector/paginated.go
package projector

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/encoding/charmap"

	"legal-workers/internal/legal/render"
)

// ErrUnsupportedText is returned when a core font is selected and the
// document holds characters outside Windows-1252.
var ErrUnsupportedText = errors.New("UNSUPPORTED_TEXT")

// UnicodeFont is the embedded DejaVu Sans Condensed family. The core PDF
// fonts (Times, Helvetica, Courier) only encode Windows-1252, which misses
// letters such as ŋ, ɔ and ɛ and symbols such as ≥.
const UnicodeFont = "DejaVu"

//go:embed fonts/*.ttf
var fontFiles embed.FS

var unicodeFontStyles = []struct{ style, file string }{
	{"", "fonts/DejaVuSansCondensed.ttf"},
	{"B", "fonts/DejaVuSansCondensed-Bold.ttf"},
	{"I", "fonts/DejaVuSansCondensed-Oblique.ttf"},
}

// PaginatedOptions controls the portable document layout.
type PaginatedOptions struct {
	PageSize   string
	FontFamily string
	FontSize   float64
	Creator    string
	Compress   bool
}

// DefaultPaginatedOptions is an A4 page set in the embedded Unicode font
// at 12pt.
func DefaultPaginatedOptions() PaginatedOptions {
	return PaginatedOptions{
		PageSize:   "A4",
		FontFamily: UnicodeFont,
		FontSize:   12,
		Creator:    "legal-workers",
		Compress:   true,
	}
}

const signatureImage = "signature"

type pageWriter struct {
	pdf      *gofpdf.Fpdf
	tr       func(string) string
	opts     PaginatedOptions
	contentW float64
	left     float64
	image    bool
}

// Paginated lays doc out on fixed-size pages with automatic page breaks.
func Paginated(doc *render.StructuredDocument, opts PaginatedOptions) ([]byte, error) {
	defaults := DefaultPaginatedOptions()
	if opts.PageSize == "" {
		opts.PageSize = defaults.PageSize
	}
	if opts.FontFamily == "" {
		opts.FontFamily = defaults.FontFamily
	}
	if opts.FontSize <= 0 {
		opts.FontSize = defaults.FontSize
	}
	utf8Font := strings.EqualFold(opts.FontFamily, UnicodeFont)
	if utf8Font {
		opts.FontFamily = UnicodeFont
	} else if err := checkCoreFontText(doc); err != nil {
		return nil, fmt.Errorf("paginated projection: %w", err)
	}

	pdf := gofpdf.New("P", "mm", opts.PageSize, "")
	pdf.SetCompression(opts.Compress)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetTitle(doc.Metadata.Title, true)
	if doc.Metadata.Owner != "" {
		pdf.SetAuthor(doc.Metadata.Owner, true)
	}
	pdf.SetSubject(string(doc.Metadata.Type), true)
	if opts.Creator != "" {
		pdf.SetCreator(opts.Creator, true)
	}
	pdf.SetCreationDate(doc.Metadata.Date)
	pdf.SetModificationDate(doc.Metadata.Date)
	pdf.SetCatalogSort(true)
	pdf.AliasNbPages("")

	w := &pageWriter{pdf: pdf, opts: opts}
	if utf8Font {
		if err := addUnicodeFont(pdf); err != nil {
			return nil, fmt.Errorf("paginated projection: %w", err)
		}
		w.tr = func(s string) string { return s }
	} else {
		w.tr = pdf.UnicodeTranslatorFromDescriptor("")
	}
	pageW, _ := pdf.GetPageSize()
	lm, _, rm, _ := pdf.GetMargins()
	w.left = lm
	w.contentW = pageW - lm - rm

	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(opts.FontFamily, "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("%d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	})

	if sig := doc.Signature; sig != nil {
		imgType := "PNG"
		if sig.Format == "jpeg" {
			imgType = "JPG"
		}
		pdf.RegisterImageOptionsReader(signatureImage, gofpdf.ImageOptions{ImageType: imgType}, bytes.NewReader(sig.Data))
		if pdf.Err() {
			return nil, fmt.Errorf("paginated projection: signature image: %w", pdf.Error())
		}
		w.image = true
	}

	pdf.AddPage()
	w.font("", 0)
	pdf.CellFormat(0, 6, w.tr(doc.Metadata.DateText), "", 1, "R", false, 0, "")
	pdf.Ln(6)

	for _, s := range doc.Sections {
		w.section(s)
	}

	if pdf.Err() {
		return nil, fmt.Errorf("paginated projection: %w", pdf.Error())
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("paginated projection: %w", err)
	}
	return buf.Bytes(), nil
}

func addUnicodeFont(pdf *gofpdf.Fpdf) error {
	for _, f := range unicodeFontStyles {
		data, err := fontFiles.ReadFile(f.file)
		if err != nil {
			return err
		}
		pdf.AddUTF8FontFromBytes(UnicodeFont, f.style, data)
	}
	if pdf.Err() {
		return fmt.Errorf("load %s font: %w", UnicodeFont, pdf.Error())
	}
	return nil
}

// checkCoreFontText rejects text the Windows-1252 translator would replace
// with question marks.
func checkCoreFontText(doc *render.StructuredDocument) error {
	for _, line := range doc.Text() {
		for _, r := range line {
			if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
				return fmt.Errorf("%w: %q cannot be set in a core font, use %s", ErrUnsupportedText, r, UnicodeFont)
			}
		}
	}
	return nil
}

func (w *pageWriter) font(style string, delta float64) {
	w.pdf.SetFont(w.opts.FontFamily, style, w.opts.FontSize+delta)
}

func (w *pageWriter) lines(lines []string, align string, indent float64) {
	lineH := w.opts.FontSize * 0.5
	for _, l := range lines {
		w.pdf.SetX(w.left + indent)
		w.pdf.MultiCell(w.contentW-indent, lineH, w.tr(l), "", align, false)
	}
}

func (w *pageWriter) heading(text string, delta float64, align string) {
	if text == "" {
		return
	}
	w.font("B", delta)
	w.lines([]string{text}, align, 0)
	w.font("", 0)
}

func (w *pageWriter) section(s render.Section) {
	switch s.Kind {
	case render.KindHeader:
		w.heading(s.Heading, 2, "C")
		w.lines(s.BodyLines, "C", 0)
		w.pdf.Ln(8)
	case render.KindTitle:
		w.pdf.Ln(4)
		w.heading(s.Heading, 4, "C")
		w.font("B", 6)
		w.lines(s.BodyLines, "C", 0)
		w.font("", 0)
		w.pdf.Ln(6)
	case render.KindParty:
		w.lines(s.BodyLines, "L", 0)
		w.pdf.Ln(4)
	case render.KindReferences:
		w.pdf.Ln(2)
		top := w.pdf.GetY()
		w.heading(s.Heading, 0, "L")
		w.lines(s.BodyLines, "L", 5)
		w.pdf.SetDrawColor(108, 117, 125)
		w.pdf.SetLineWidth(1)
		w.pdf.Line(w.left-3, top, w.left-3, w.pdf.GetY())
		w.pdf.SetLineWidth(0.2)
		w.pdf.SetDrawColor(0, 0, 0)
		w.pdf.Ln(4)
	case render.KindList:
		w.heading(s.Heading, 0, "L")
		w.lines(s.BodyLines, "L", 5)
		w.pdf.Ln(4)
	case render.KindSignature:
		w.pdf.Ln(6)
		for _, b := range s.Signatures {
			w.signature(b)
		}
	default:
		w.heading(s.Heading, 0, "L")
		w.lines(s.BodyLines, "L", 0)
		w.pdf.Ln(4)
	}
}

func (w *pageWriter) signature(b render.SignatureBlock) {
	if b.Caption != "" {
		w.lines([]string{b.Caption}, "L", 0)
	}
	if b.UsesImage && w.image {
		w.pdf.ImageOptions(signatureImage, w.left, -1, 50, 0, true, gofpdf.ImageOptions{}, 0, "")
	} else {
		w.pdf.Ln(6)
		w.lines([]string{render.SignatureLine}, "L", 0)
	}
	w.lines(b.Lines, "L", 0)
	w.pdf.Ln(6)
}
