// internal/legal/render/complaint.go
package render

import (
	"legal-workers/internal/legal/templates"
)

// buildComplaint lays out complaints and every type that borrows their
// shape; only the title changes between them.
func buildComplaint(b *docBuilder) {
	if court, ok := templates.LookupJurisdiction(b.fields.Get(templates.FieldCourtRegion)); ok {
		b.add(Section{Kind: KindHeader, Heading: court.Name.In(b.lang), BodyLines: []string{court.Address}})
	} else {
		b.add(Section{Kind: KindHeader, Heading: b.t(genericCourt), BodyLines: []string{b.t(genericRepublic)}})
	}

	b.add(Section{
		Kind: KindParty,
		BodyLines: []string{
			b.t(labelPlaintiff) + " " + b.value(templates.FieldFullName),
			b.t(labelAddress) + " " + b.value(templates.FieldAddress),
			b.t(labelContact) + " " + b.value(templates.FieldPhoneNumber) + ", " + b.value(templates.FieldEmail),
		},
	})
	b.add(Section{
		Kind: KindParty,
		BodyLines: []string{
			b.t(labelDefendant) + " " + b.t(defendantName),
			b.t(labelAddress) + " " + b.t(defendantAddress),
		},
	})

	b.add(Section{Kind: KindTitle, Heading: b.tmpl.Title.In(b.lang)})

	body := splitLines(b.fields[templates.FieldDescription])
	if len(body) == 0 {
		body = []string{b.t(complaintBoilerplate)}
	}
	b.add(Section{Kind: KindBody, BodyLines: body})

	b.addOptional(Section{
		Kind:      KindReferences,
		Heading:   b.t(headingReferences),
		BodyLines: append([]string(nil), b.citations...),
	})

	b.add(Section{Kind: KindClosing, BodyLines: []string{b.t(respectfully)}})
	b.add(Section{
		Kind: KindSignature,
		Signatures: []SignatureBlock{{
			UsesImage: true,
			Lines:     []string{b.value(templates.FieldFullName), b.t(rolePlaintiff)},
		}},
	})
}
