// internal/legal/templates/jurisdictions.go
package templates

import "legal-workers/internal/legal/locale"

// LegalSystem is the legal tradition a regional court follows.
type LegalSystem string

const (
	CommonLaw LegalSystem = "common_law"
	CivilLaw  LegalSystem = "civil_law"
)

// Jurisdiction is a regional court record.
type Jurisdiction struct {
	ID      string      `json:"id"`
	Name    locale.Text `json:"name"`
	Format  LegalSystem `json:"format"`
	Address string      `json:"address"`
}

var jurisdictions = []Jurisdiction{
	{
		ID:      "northwest",
		Name:    locale.Text{EN: "High Court of Northwest Region", FR: "Haute Cour de la Région du Nord-Ouest"},
		Format:  CommonLaw,
		Address: "P.O. Box 130, Bamenda",
	},
	{
		ID:      "southwest",
		Name:    locale.Text{EN: "High Court of Southwest Region", FR: "Haute Cour de la Région du Sud-Ouest"},
		Format:  CommonLaw,
		Address: "P.O. Box 121, Buea",
	},
	{
		ID:      "center",
		Name:    locale.Text{EN: "Tribunal of Grande Instance of Center Region", FR: "Tribunal de Grande Instance de la Région du Centre"},
		Format:  CivilLaw,
		Address: "Centre-ville, Yaoundé",
	},
	{
		ID:      "littoral",
		Name:    locale.Text{EN: "Tribunal of Grande Instance of Littoral Region", FR: "Tribunal de Grande Instance de la Région du Littoral"},
		Format:  CivilLaw,
		Address: "Downtown, Douala",
	},
	{
		ID:      "west",
		Name:    locale.Text{EN: "Tribunal of Grande Instance of West Region", FR: "Tribunal de Grande Instance de la Région de l'Ouest"},
		Format:  CivilLaw,
		Address: "Bafoussam",
	},
}

// LookupJurisdiction returns the court registered for a region id.
func LookupJurisdiction(id string) (Jurisdiction, bool) {
	for _, j := range jurisdictions {
		if j.ID == id {
			return j, true
		}
	}
	return Jurisdiction{}, false
}

// Jurisdictions returns the courts in selector order.
func Jurisdictions() []Jurisdiction {
	out := make([]Jurisdiction, len(jurisdictions))
	copy(out, jurisdictions)
	return out
}
