// cmd/legaldoc/cmd_render.go
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"legal-workers/internal/legal/locale"
	"legal-workers/internal/legal/projector"
	"legal-workers/internal/legal/references"
	"legal-workers/internal/legal/render"
	"legal-workers/internal/legal/templates"
)

// documentFlags are shared by render and preview.
type documentFlags struct {
	docType    string
	set        []string
	fieldsFile string
	signature  string
	date       string
}

var (
	renderFlags  documentFlags
	previewFlags documentFlags

	renderFormats []string
	renderOutDir  string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render a document to HTML and PDF files",
	Long: `Renders a document and writes one file per format into --out, named
{type}_{fullName}.{ext}.

Example:
  legaldoc render --type contract --set fullName="Jean Paul" \
    --set employerName="Acme SARL" --set employeeRole=Accountant \
    --set startDate=2024-01-15 --set salary=150000`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show a document in the terminal",
	Args:  cobra.NoArgs,
	RunE:  runPreview,
}

func init() {
	for _, c := range []struct {
		cmd   *cobra.Command
		flags *documentFlags
	}{{renderCmd, &renderFlags}, {previewCmd, &previewFlags}} {
		c.cmd.Flags().StringVarP(&c.flags.docType, "type", "t", "", "Document type (see 'legaldoc types')")
		c.cmd.Flags().StringArrayVar(&c.flags.set, "set", nil, "Field value as name=value (repeatable)")
		c.cmd.Flags().StringVar(&c.flags.fieldsFile, "fields-file", "", "JSON object of field values")
		c.cmd.Flags().StringVar(&c.flags.signature, "signature", "", "PNG or JPEG signature image")
		c.cmd.Flags().StringVar(&c.flags.date, "date", "", "Document date (YYYY-MM-DD, default today)")
		c.cmd.MarkFlagRequired("type")
	}
	renderCmd.Flags().StringSliceVarP(&renderFormats, "format", "f", []string{"html", "pdf"}, "Output formats (html, pdf, md)")
	renderCmd.Flags().StringVarP(&renderOutDir, "out", "o", ".", "Output directory")
}

func buildDocument(f documentFlags) (*render.StructuredDocument, error) {
	fields := render.FieldSet{}
	if f.fieldsFile != "" {
		data, err := os.ReadFile(f.fieldsFile)
		if err != nil {
			return nil, fmt.Errorf("read fields file: %w", err)
		}
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var values map[string]interface{}
		if err := dec.Decode(&values); err != nil {
			return nil, fmt.Errorf("parse fields file: %w", err)
		}
		if fields, err = render.FieldSetFromValues(values); err != nil {
			return nil, fmt.Errorf("parse fields file: %w", err)
		}
	}
	for _, kv := range f.set {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("--set expects name=value, got %q", kv)
		}
		fields[name] = value
	}

	var signature *render.SignatureImage
	if f.signature != "" {
		data, err := os.ReadFile(f.signature)
		if err != nil {
			return nil, fmt.Errorf("read signature: %w", err)
		}
		if signature, err = render.NewSignatureImage(data); err != nil {
			return nil, err
		}
	}

	var date time.Time
	if f.date != "" {
		d, ok := locale.ParseDate(f.date)
		if !ok {
			return nil, fmt.Errorf("cannot parse --date %q", f.date)
		}
		date = d
	}

	l := language()
	citations := references.Suggest(fields.Get(templates.FieldDescription), l)
	log.Debug("rendering document",
		zap.String("type", f.docType),
		zap.Int("fields", len(fields)),
		zap.Int("citations", len(citations)),
	)

	return render.Render(render.Request{
		Type:      templates.DocumentType(f.docType),
		Fields:    fields,
		Citations: citations,
		Signature: signature,
		Language:  l,
		Date:      date,
	})
}

func runRender(cmd *cobra.Command, args []string) error {
	doc, err := buildDocument(renderFlags)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(renderOutDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	opts := projector.DefaultPaginatedOptions()
	opts.Creator = "legaldoc"
	for _, name := range renderFormats {
		format, err := projector.ParseFormat(name)
		if err != nil {
			return err
		}
		data, err := projector.Project(doc, format, opts)
		if err != nil {
			return fmt.Errorf("%s projection: %w", format, err)
		}
		path := filepath.Join(renderOutDir, projector.Filename(doc.Metadata.Type, doc.Metadata.Owner, format))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}
	return nil
}

func runPreview(cmd *cobra.Command, args []string) error {
	doc, err := buildDocument(previewFlags)
	if err != nil {
		return err
	}
	return printMarkdown(cmd.OutOrStdout(), projector.Preview(doc))
}
