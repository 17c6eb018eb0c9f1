// cmd/legaldoc/markdown.go
package main

import (
	"io"

	"github.com/charmbracelet/glamour"
)

// printMarkdown styles md for the terminal unless --plain is set. Styling
// failures fall back to the raw text.
func printMarkdown(w io.Writer, md string) error {
	if plain {
		_, err := io.WriteString(w, md)
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err == nil {
		if out, rerr := renderer.Render(md); rerr == nil {
			_, err = io.WriteString(w, out)
			return err
		}
	}
	_, err = io.WriteString(w, md)
	return err
}
