package render

import (
	"encoding/json"
	"testing"
	"time"

	"legal-workers/internal/legal/locale"
	"legal-workers/internal/legal/references"
	"legal-workers/internal/legal/templates"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedDate = time.Date(2025, time.March, 4, 0, 0, 0, 0, time.UTC)

func findHeading(doc *StructuredDocument, heading string) (Section, bool) {
	for _, s := range doc.Sections {
		if s.Heading == heading {
			return s, true
		}
	}
	return Section{}, false
}

func kinds(doc *StructuredDocument) []SectionKind {
	out := make([]SectionKind, len(doc.Sections))
	for i, s := range doc.Sections {
		out[i] = s.Kind
	}
	return out
}

func TestRender_UnknownType(t *testing.T) {
	_, err := Render(Request{Type: "invoice"})
	assert.ErrorIs(t, err, templates.ErrUnknownDocumentType)
}

func TestRender_ContractTerms(t *testing.T) {
	doc, err := Render(Request{
		Type: templates.Contract,
		Fields: FieldSet{
			"fullName":     "Jean Paul",
			"employerName": "Acme SARL",
			"employeeRole": "Accountant",
			"startDate":    "2024-01-15",
			"salary":       "150000",
		},
		Language: locale.English,
		Date:     fixedDate,
	})
	require.NoError(t, err)

	terms, ok := findHeading(doc, "TERMS OF EMPLOYMENT")
	require.True(t, ok)
	assert.Equal(t, []string{
		"Position: Accountant",
		"Start Date: January 15, 2024",
		"Salary: 150000 FCFA per month",
	}, terms.BodyLines)

	parties, ok := doc.Section(KindParty)
	require.True(t, ok)
	assert.Equal(t, `Acme SARL, hereinafter referred to as "the Employer"`, parties.BodyLines[1])
	assert.Equal(t, `Jean Paul, hereinafter referred to as "the Employee"`, parties.BodyLines[3])

	sig, ok := doc.Section(KindSignature)
	require.True(t, ok)
	require.Len(t, sig.Signatures, 2)
	assert.False(t, sig.Signatures[0].UsesImage, "employer always signs on a blank line")
	assert.True(t, sig.Signatures[1].UsesImage)
	assert.Equal(t, "Date: March 4, 2025", sig.Signatures[1].Lines[1])
}

func TestRender_ContractFrenchAndMissingValues(t *testing.T) {
	doc, err := Render(Request{
		Type:     templates.Contract,
		Fields:   FieldSet{"startDate": "2024-08-01", "salary": "abc"},
		Language: locale.French,
		Date:     fixedDate,
	})
	require.NoError(t, err)

	terms, ok := findHeading(doc, "CONDITIONS D'EMPLOI")
	require.True(t, ok)
	assert.Equal(t, []string{
		"Poste: _______________",
		"Date de début: 1 août 2024",
		"Salaire: abc FCFA par mois",
	}, terms.BodyLines)

	parties, _ := doc.Section(KindParty)
	assert.Equal(t, `[Employeur], ci-après dénommé "l'Employeur"`, parties.BodyLines[1])
	assert.Equal(t, `[Nom], ci-après dénommé "l'Employé"`, parties.BodyLines[3])
}

func TestRender_ContractOmitsAbsentTerms(t *testing.T) {
	doc, err := Render(Request{Type: templates.Contract, Fields: FieldSet{"startDate": "soon"}, Date: fixedDate})
	require.NoError(t, err)

	terms, _ := findHeading(doc, "TERMS OF EMPLOYMENT")
	assert.Equal(t, []string{"Position: _______________", "Start Date: soon"}, terms.BodyLines)
}

func TestRender_ComplaintHeader(t *testing.T) {
	tests := []struct {
		name    string
		region  string
		lang    locale.Language
		heading string
		line    string
	}{
		{"no region english", "", locale.English, "COURT OF FIRST INSTANCE", "REPUBLIC OF CAMEROON"},
		{"no region french", "", locale.French, "TRIBUNAL DE PREMIÈRE INSTANCE", "RÉPUBLIQUE DU CAMEROUN"},
		{"unknown region", "adamawa", locale.English, "COURT OF FIRST INSTANCE", "REPUBLIC OF CAMEROON"},
		{"northwest", "northwest", locale.English, "High Court of Northwest Region", "P.O. Box 130, Bamenda"},
		{"west french", "west", locale.French, "Tribunal de Grande Instance de la Région de l'Ouest", "Bafoussam"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Render(Request{
				Type:     templates.Complaint,
				Fields:   FieldSet{"courtRegion": tt.region},
				Language: tt.lang,
				Date:     fixedDate,
			})
			require.NoError(t, err)
			require.Equal(t, KindHeader, doc.Sections[0].Kind)
			assert.Equal(t, tt.heading, doc.Sections[0].Heading)
			assert.Equal(t, []string{tt.line}, doc.Sections[0].BodyLines)
		})
	}
}

func TestRender_ComplaintLayout(t *testing.T) {
	description := "I want to file a complaint about my inherited land and my job termination"
	doc, err := Render(Request{
		Type: templates.Complaint,
		Fields: FieldSet{
			"fullName":    "Awa Ngono",
			"address":     "Rue 1.234, Douala",
			"phoneNumber": "+237 650 000 000",
			"description": description + "\nSecond paragraph\n\n",
		},
		Citations: references.Suggest(description, locale.English),
		Language:  locale.English,
		Date:      fixedDate,
	})
	require.NoError(t, err)

	assert.Equal(t, []SectionKind{
		KindHeader, KindParty, KindParty, KindTitle, KindBody, KindReferences, KindClosing, KindSignature,
	}, kinds(doc))

	plaintiff := doc.Sections[1].BodyLines
	assert.Equal(t, "PLAINTIFF: Awa Ngono", plaintiff[0])
	assert.Equal(t, "CONTACT: +237 650 000 000, [Email]", plaintiff[2])
	assert.Equal(t, []string{"DEFENDANT: [Defendant Name]", "ADDRESS: [Defendant Address]"}, doc.Sections[2].BodyLines)
	assert.Equal(t, "COMPLAINT", doc.Sections[3].Heading)
	assert.Equal(t, []string{description, "Second paragraph"}, doc.Sections[4].BodyLines)

	refs := doc.Sections[5]
	assert.True(t, refs.Optional)
	assert.Len(t, refs.BodyLines, 3)

	assert.Equal(t, "Legal Complaint", doc.Metadata.Title)
	assert.Equal(t, "Awa Ngono", doc.Metadata.Owner)
	assert.Equal(t, "March 4, 2025", doc.Metadata.DateText)
}

func TestRender_ComplaintBoilerplateWithoutReferences(t *testing.T) {
	doc, err := Render(Request{Type: templates.Complaint, Language: locale.French, Date: fixedDate})
	require.NoError(t, err)

	_, hasRefs := doc.Section(KindReferences)
	assert.False(t, hasRefs)

	body, _ := doc.Section(KindBody)
	assert.Equal(t, []string{
		"Le plaignant, par l'intermédiaire du conseil soussigné, dépose par la présente cette plainte contre le défendeur et allègue ce qui suit...",
	}, body.BodyLines)

	sig, _ := doc.Section(KindSignature)
	assert.Equal(t, []string{"[Nom]", "Plaignant"}, sig.Signatures[0].Lines)
}

func TestRender_FallbackTypesUseComplaintShape(t *testing.T) {
	for _, tc := range []struct {
		typ   templates.DocumentType
		title string
	}{
		{templates.Lease, "LEASE AGREEMENT"},
		{templates.Appeal, "APPEAL LETTER"},
		{templates.Affidavit, "AFFIDAVIT"},
	} {
		t.Run(string(tc.typ), func(t *testing.T) {
			doc, err := Render(Request{Type: tc.typ, Date: fixedDate})
			require.NoError(t, err)
			title, ok := doc.Section(KindTitle)
			require.True(t, ok)
			assert.Equal(t, tc.title, title.Heading)
			assert.Equal(t, KindHeader, doc.Sections[0].Kind)
		})
	}
}

func TestRender_WillOptionalSections(t *testing.T) {
	full := FieldSet{
		"fullName":      "Marie Ebolo",
		"address":       "Buea",
		"assets":        "House in Limbe\nCocoa farm",
		"beneficiaries": "My children",
		"executorName":  "Paul Ebolo",
	}

	tests := []struct {
		name    string
		blank   string
		heading string
	}{
		{"assets", "assets", "DISTRIBUTION OF ASSETS"},
		{"beneficiaries", "beneficiaries", "BENEFICIARIES"},
		{"executor", "executorName", "EXECUTOR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Render(Request{Type: templates.Will, Fields: full, Date: fixedDate})
			require.NoError(t, err)
			_, ok := findHeading(doc, tt.heading)
			assert.True(t, ok, "present when %s is set", tt.blank)

			fields := FieldSet{}
			for k, v := range full {
				fields[k] = v
			}
			fields[tt.blank] = "  "
			doc, err = Render(Request{Type: templates.Will, Fields: fields, Date: fixedDate})
			require.NoError(t, err)
			_, ok = findHeading(doc, tt.heading)
			assert.False(t, ok, "omitted when %s is blank", tt.blank)
		})
	}
}

func TestRender_WillContent(t *testing.T) {
	doc, err := Render(Request{
		Type: templates.Will,
		Fields: FieldSet{
			"fullName":     "Marie Ebolo",
			"address":      "Buea",
			"assets":       "House in Limbe\nCocoa farm",
			"executorName": "Paul Ebolo",
		},
		Language: locale.English,
		Date:     fixedDate,
	})
	require.NoError(t, err)

	assert.Equal(t, "LAST WILL AND TESTAMENT OF", doc.Sections[0].Heading)
	assert.Equal(t, []string{"MARIE EBOLO"}, doc.Sections[0].BodyLines)

	assets, ok := findHeading(doc, "DISTRIBUTION OF ASSETS")
	require.True(t, ok)
	assert.Equal(t, []string{"House in Limbe", "Cocoa farm"}, assets.BodyLines)

	executor, _ := findHeading(doc, "EXECUTOR")
	assert.Equal(t, []string{
		"I hereby nominate, constitute and appoint Paul Ebolo as Executor of this my Last Will and Testament.",
	}, executor.BodyLines)

	sig, _ := doc.Section(KindSignature)
	assert.Equal(t, []string{"Marie Ebolo", "Testator", "Signed on: March 4, 2025"}, sig.Signatures[0].Lines)
}

func TestRender_ZeroDateUsesToday(t *testing.T) {
	doc, err := Render(Request{Type: templates.Complaint})
	require.NoError(t, err)
	assert.Equal(t, time.Now().UTC().Truncate(24*time.Hour), doc.Metadata.Date)
	assert.Equal(t, locale.English, doc.Metadata.Language)
}

func TestRender_Deterministic(t *testing.T) {
	req := Request{
		Type:     templates.Will,
		Fields:   FieldSet{"fullName": "A", "assets": "x"},
		Language: locale.French,
		Date:     fixedDate,
	}
	a, err := Render(req)
	require.NoError(t, err)
	b, err := Render(req)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSectionLines_SignaturePlaceholder(t *testing.T) {
	s := Section{
		Kind:       KindSignature,
		Signatures: []SignatureBlock{{Caption: "The Employer:", Lines: []string{"Acme"}}, {UsesImage: true, Lines: []string{"Jean"}}},
	}
	assert.Equal(t, []string{"The Employer:", SignatureLine, "Acme", SignatureLine, "Jean"}, s.Lines(false))
	assert.Equal(t, []string{"The Employer:", SignatureLine, "Acme", "Jean"}, s.Lines(true))
}

func TestFieldSetFromValues(t *testing.T) {
	fields, err := FieldSetFromValues(map[string]interface{}{
		"fullName": "Jean Paul",
		"salary":   150000.0,
		"bonus":    12.5,
		"days":     30,
		"months":   int64(12),
		"hours":    json.Number("40"),
		"note":     nil,
	})
	require.NoError(t, err)
	assert.Equal(t, FieldSet{
		"fullName": "Jean Paul",
		"salary":   "150000",
		"bonus":    "12.5",
		"days":     "30",
		"months":   "12",
		"hours":    "40",
	}, fields)

	_, err = FieldSetFromValues(map[string]interface{}{"married": true})
	assert.ErrorContains(t, err, "married")
}
