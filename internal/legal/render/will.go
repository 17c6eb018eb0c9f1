// internal/legal/render/will.go
package render

import (
	"fmt"
	"strings"

	"legal-workers/internal/legal/templates"
)

func buildWill(b *docBuilder) {
	testator := b.value(templates.FieldFullName)

	b.add(Section{
		Kind:      KindTitle,
		Heading:   b.tmpl.Title.In(b.lang),
		BodyLines: []string{strings.ToUpper(testator)},
	})

	b.add(Section{
		Kind:      KindBody,
		BodyLines: []string{fmt.Sprintf(b.t(willDeclaration), testator, b.value(templates.FieldAddress))},
	})

	b.addOptional(Section{
		Kind:      KindList,
		Heading:   b.t(headingAssets),
		BodyLines: splitLines(b.fields[templates.FieldAssets]),
	})
	b.addOptional(Section{
		Kind:      KindList,
		Heading:   b.t(headingBeneficiaries),
		BodyLines: splitLines(b.fields[templates.FieldBeneficiaries]),
	})
	if b.fields.Has(templates.FieldExecutorName) {
		b.addOptional(Section{
			Kind:      KindBody,
			Heading:   b.t(headingExecutor),
			BodyLines: []string{fmt.Sprintf(b.t(executorAppointment), b.fields.Get(templates.FieldExecutorName))},
		})
	}

	b.add(Section{Kind: KindClosing, BodyLines: []string{b.t(willAttestation)}})
	b.add(Section{
		Kind: KindSignature,
		Signatures: []SignatureBlock{{
			UsesImage: true,
			Lines: []string{
				testator,
				b.t(roleTestator),
				b.t(labelSigned) + " " + b.dateText(),
			},
		}},
	})
}
