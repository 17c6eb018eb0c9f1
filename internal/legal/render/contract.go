// internal/legal/render/contract.go
package render

import (
	"legal-workers/internal/legal/locale"
	"legal-workers/internal/legal/templates"
)

func buildContract(b *docBuilder) {
	employer := b.value(templates.FieldEmployerName)
	employee := b.value(templates.FieldFullName)

	b.add(Section{Kind: KindTitle, Heading: b.tmpl.Title.In(b.lang)})

	b.add(Section{
		Kind: KindParty,
		BodyLines: []string{
			b.t(labelBetween),
			employer + b.t(employerClause),
			b.t(labelAnd),
			employee + b.t(employeeClause),
		},
	})

	terms := []string{b.t(labelPosition) + " " + b.value(templates.FieldEmployeeRole)}
	if b.fields.Has(templates.FieldStartDate) {
		terms = append(terms, b.t(labelStartDate)+" "+b.startDate())
	}
	if b.fields.Has(templates.FieldSalary) {
		terms = append(terms, b.t(labelSalary)+" "+b.fields.Get(templates.FieldSalary)+" FCFA "+b.t(perMonth))
	}
	b.add(Section{Kind: KindList, Heading: b.t(headingTerms), BodyLines: terms})

	b.add(Section{Kind: KindBody, BodyLines: []string{b.t(employeeDuty), b.t(governingLaw)}})

	dated := b.t(labelDate) + " " + b.dateText()
	b.add(Section{
		Kind: KindSignature,
		Signatures: []SignatureBlock{
			{Caption: b.t(captionEmployer), Lines: []string{employer, dated}},
			{Caption: b.t(captionEmployee), UsesImage: true, Lines: []string{employee, dated}},
		},
	})
}

// startDate renders the contract start date in the long locale form, keeping
// values that do not parse as dates verbatim.
func (b *docBuilder) startDate() string {
	raw := b.fields.Get(templates.FieldStartDate)
	if t, ok := locale.ParseDate(raw); ok {
		return locale.LongDate(t, b.lang)
	}
	return raw
}
