// internal/legal/projector/markup.go
package projector

import (
	"bytes"
	"fmt"
	"html/template"

	"legal-workers/internal/legal/render"
)

const markupStyles = `body { font-family: 'Times New Roman', serif; line-height: 1.6; max-width: 800px; margin: 0 auto; padding: 20px; }
h1, h2, h3 { text-align: center; }
.date { text-align: right; margin-bottom: 30px; }
.header { margin-bottom: 30px; text-align: center; }
.party { margin: 20px 0; }
.section { margin: 25px 0; }
.footer { margin-top: 50px; }
.signatures { display: flex; justify-content: space-between; margin-top: 50px; }
.signature { margin-top: 30px; }
.signature-line { margin-top: 30px; display: inline-block; width: 200px; }
.references { background-color: #f8f9fa; padding: 15px; border-left: 4px solid #6c757d; margin: 20px 0; }`

var markupTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="{{.Meta.Language}}">
<head>
<meta charset="utf-8">
<title>{{.Meta.Title}}{{with .Meta.Owner}} - {{.}}{{end}}</title>
<style>
{{.Styles}}
</style>
</head>
<body>
<div class="date">{{.Meta.DateText}}</div>
{{range .Sections}}{{if eq .Kind "header"}}<div class="header">
<strong>{{.Heading}}</strong>{{range .BodyLines}}<br/>
{{.}}{{end}}
</div>
{{else if eq .Kind "title"}}<h2>{{.Heading}}</h2>
{{range .BodyLines}}<h1>{{.}}</h1>
{{end}}{{else if eq .Kind "party"}}<div class="party">
{{range $i, $l := .BodyLines}}{{if $i}}<br/>
{{end}}{{$l}}{{end}}
</div>
{{else if eq .Kind "references"}}<div class="references">
<h4>{{.Heading}}</h4>
<ul>
{{range .BodyLines}}<li>{{.}}</li>
{{end}}</ul>
</div>
{{else if eq .Kind "list"}}<section class="section">
<h3>{{.Heading}}</h3>
<p>{{range $i, $l := .BodyLines}}{{if $i}}<br/>
{{end}}{{$l}}{{end}}</p>
</section>
{{else if eq .Kind "signature"}}<div class="signatures">
{{range .Signatures}}<div class="signature">
{{with .Caption}}{{.}}<br/>
{{end}}{{if and .UsesImage $.Image}}<img src="{{$.Image}}" alt="Signature" style="width: 200px;"/>{{else}}<div class="signature-line">{{$.Line}}</div>{{end}}
{{range .Lines}}<br/>
{{.}}{{end}}
</div>
{{end}}</div>
{{else}}{{with .Heading}}<h3>{{.}}</h3>
{{end}}{{range .BodyLines}}<p>{{.}}</p>
{{end}}{{end}}{{end}}</body>
</html>
`))

type markupView struct {
	Meta     render.Metadata
	Styles   template.CSS
	Sections []render.Section
	Image    template.URL
	Line     string
}

// Markup renders doc as a self-contained HTML5 page.
func Markup(doc *render.StructuredDocument) ([]byte, error) {
	view := markupView{
		Meta:     doc.Metadata,
		Styles:   template.CSS(markupStyles),
		Sections: doc.Sections,
		Line:     render.SignatureLine,
	}
	if doc.Signature != nil {
		view.Image = template.URL(doc.Signature.DataURL())
	}

	var buf bytes.Buffer
	if err := markupTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("markup projection: %w", err)
	}
	return buf.Bytes(), nil
}
