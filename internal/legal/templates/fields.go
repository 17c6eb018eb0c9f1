// internal/legal/templates/fields.go
package templates

import "legal-workers/internal/legal/locale"

// InputKind is how a field is captured.
type InputKind string

const (
	KindText      InputKind = "text"
	KindEmail     InputKind = "email"
	KindTel       InputKind = "tel"
	KindDate      InputKind = "date"
	KindNumber    InputKind = "number"
	KindMultiline InputKind = "multiline"
	KindSelect    InputKind = "select"
)

const (
	FieldFullName      = "fullName"
	FieldAddress       = "address"
	FieldPhoneNumber   = "phoneNumber"
	FieldEmail         = "email"
	FieldCourtRegion   = "courtRegion"
	FieldDescription   = "description"
	FieldExecutorName  = "executorName"
	FieldAssets        = "assets"
	FieldBeneficiaries = "beneficiaries"
	FieldEmployerName  = "employerName"
	FieldEmployeeRole  = "employeeRole"
	FieldStartDate     = "startDate"
	FieldSalary        = "salary"
)

// Option is one choice of a select field.
type Option struct {
	Value string      `json:"value"`
	Label locale.Text `json:"label"`
}

// Field describes one input of a template. Blank is the token a document
// shows when the value was not supplied.
type Field struct {
	Name        string      `json:"name"`
	Kind        InputKind   `json:"kind"`
	Label       locale.Text `json:"label"`
	Placeholder locale.Text `json:"placeholder"`
	Required    bool        `json:"required"`
	Options     []Option    `json:"options,omitempty"`
	Blank       locale.Text `json:"blank"`
}

const underline = "_______________"

func commonFields() []Field {
	return []Field{
		{
			Name:        FieldFullName,
			Kind:        KindText,
			Label:       locale.Text{EN: "Full Name", FR: "Nom Complet"},
			Placeholder: locale.Text{EN: "Enter your full name", FR: "Entrez votre nom complet"},
			Required:    true,
			Blank:       locale.Text{EN: "[Name]", FR: "[Nom]"},
		},
		{
			Name:        FieldAddress,
			Kind:        KindText,
			Label:       locale.Text{EN: "Address", FR: "Adresse"},
			Placeholder: locale.Text{EN: "Enter your address", FR: "Entrez votre adresse"},
			Required:    true,
			Blank:       locale.Text{EN: "[Address]", FR: "[Adresse]"},
		},
		{
			Name:        FieldPhoneNumber,
			Kind:        KindTel,
			Label:       locale.Text{EN: "Phone Number", FR: "Numéro de Téléphone"},
			Placeholder: locale.Text{EN: "Enter your phone number", FR: "Entrez votre numéro de téléphone"},
			Blank:       locale.Text{EN: "[Phone]", FR: "[Téléphone]"},
		},
		{
			Name:        FieldEmail,
			Kind:        KindEmail,
			Label:       locale.Text{EN: "Email", FR: "Email"},
			Placeholder: locale.Text{EN: "Enter your email", FR: "Entrez votre email"},
			Blank:       locale.Text{EN: "[Email]", FR: "[Email]"},
		},
	}
}

func complaintFields() []Field {
	options := make([]Option, 0, len(jurisdictions))
	for _, j := range jurisdictions {
		options = append(options, Option{Value: j.ID, Label: j.Name})
	}
	return append(commonFields(),
		Field{
			Name:        FieldCourtRegion,
			Kind:        KindSelect,
			Label:       locale.Text{EN: "Court Jurisdiction", FR: "Juridiction"},
			Placeholder: locale.Text{EN: "--Select Region--", FR: "--Sélectionner Région--"},
			Options:     options,
		},
		Field{
			Name:        FieldDescription,
			Kind:        KindMultiline,
			Label:       locale.Text{EN: "Description of Complaint", FR: "Description de la Plainte"},
			Placeholder: locale.Text{EN: "Provide details for your complaint...", FR: "Fournissez des détails pour votre plainte..."},
		},
	)
}

func willFields() []Field {
	return append(commonFields(),
		Field{
			Name:        FieldExecutorName,
			Kind:        KindText,
			Label:       locale.Text{EN: "Executor Name", FR: "Nom de l'Exécuteur Testamentaire"},
			Placeholder: locale.Text{EN: "Name of executor", FR: "Nom de l'exécuteur"},
		},
		Field{
			Name:        FieldAssets,
			Kind:        KindMultiline,
			Label:       locale.Text{EN: "Assets", FR: "Biens"},
			Placeholder: locale.Text{EN: "List major assets to be distributed", FR: "Listez les biens importants à distribuer"},
		},
		Field{
			Name:        FieldBeneficiaries,
			Kind:        KindMultiline,
			Label:       locale.Text{EN: "Beneficiaries", FR: "Bénéficiaires"},
			Placeholder: locale.Text{EN: "List beneficiaries and what they receive", FR: "Listez les bénéficiaires et ce qu'ils reçoivent"},
		},
	)
}

func contractFields() []Field {
	return append(commonFields(),
		Field{
			Name:        FieldEmployerName,
			Kind:        KindText,
			Label:       locale.Text{EN: "Employer Name", FR: "Nom de l'Employeur"},
			Placeholder: locale.Text{EN: "Name of employer/company", FR: "Nom de l'employeur/société"},
			Required:    true,
			Blank:       locale.Text{EN: "[Employer]", FR: "[Employeur]"},
		},
		Field{
			Name:        FieldEmployeeRole,
			Kind:        KindText,
			Label:       locale.Text{EN: "Position/Role", FR: "Poste/Rôle"},
			Placeholder: locale.Text{EN: "Job title/position", FR: "Titre du poste/fonction"},
			Blank:       locale.Text{EN: underline, FR: underline},
		},
		Field{
			Name:  FieldStartDate,
			Kind:  KindDate,
			Label: locale.Text{EN: "Start Date", FR: "Date de Début"},
		},
		Field{
			Name:        FieldSalary,
			Kind:        KindNumber,
			Label:       locale.Text{EN: "Monthly Salary (FCFA)", FR: "Salaire Mensuel (FCFA)"},
			Placeholder: locale.Text{EN: "FCFA", FR: "FCFA"},
		},
	)
}
