// cmd/legaldoc/cmd_catalog.go
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"legal-workers/internal/legal/references"
	"legal-workers/internal/legal/templates"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the document types that can be rendered",
	Args:  cobra.NoArgs,
	RunE:  runTypes,
}

var fieldsCmd = &cobra.Command{
	Use:   "fields [document-type]",
	Short: "Show the input fields of a document type",
	Args:  cobra.ExactArgs(1),
	RunE:  runFields,
}

var referencesCmd = &cobra.Command{
	Use:   "references [description...]",
	Short: "Suggest legal references for a description",
	Long: `Matches the description against the reference catalog and prints one
citation per matched category, in catalog priority order.

Without arguments the whole catalog is listed.`,
	RunE: runReferences,
}

func runTypes(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	l := language()
	for _, t := range templates.All() {
		fmt.Fprintf(out, "%-10s %s (%d fields)\n", t.Type, t.Label.In(l), len(t.Fields))
	}
	return nil
}

func runFields(cmd *cobra.Command, args []string) error {
	tmpl, err := templates.Lookup(templates.DocumentType(args[0]))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	l := language()
	fmt.Fprintf(out, "%s\n\n", tmpl.Label.In(l))
	for _, f := range tmpl.Fields {
		marker := " "
		if f.Required {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-14s %-10s %s\n", marker, f.Name, f.Kind, f.Label.In(l))
		for _, o := range f.Options {
			fmt.Fprintf(out, "      %-12s %s\n", o.Value, o.Label.In(l))
		}
	}
	return nil
}

func runReferences(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	l := language()

	if len(args) == 0 {
		for _, c := range references.Categories() {
			fmt.Fprintf(out, "%-12s %s\n", c.Category, c.Citation.In(l))
		}
		return nil
	}

	matches := references.SuggestDetailed(strings.Join(args, " "), l)
	if len(matches) == 0 {
		fmt.Fprintln(out, "no references matched")
		return nil
	}
	for _, m := range matches {
		fmt.Fprintf(out, "%-12s %s\n", m.Category, m.Citation)
	}
	return nil
}
