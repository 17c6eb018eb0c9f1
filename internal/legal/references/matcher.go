// internal/legal/references/matcher.go
package references

import (
	"regexp"

	"legal-workers/internal/legal/locale"
)

// Category identifies one family of legal references.
type Category string

const (
	Property    Category = "property"
	Inheritance Category = "inheritance"
	Labor       Category = "labor"
	Divorce     Category = "divorce"
	Commercial  Category = "commercial"
)

// Rule ties a category to its trigger words and the citation it contributes.
type Rule struct {
	Category Category
	Pattern  *regexp.Regexp
	Citation locale.Text
}

// CitationSet is the ordered list of citations suggested for a text.
type CitationSet []string

// Match is one suggested citation together with the category that produced it.
type Match struct {
	Category Category `json:"category"`
	Citation string   `json:"citation"`
}

const civilStatusOrdinance = "Civil Status Registration Ordinance No. 81-02 of June 29, 1981"
const civilStatusOrdinanceFR = "Ordonnance n° 81-02 du 29 juin 1981 portant organisation de l'état civil"

// rules are evaluated in priority order; the output keeps that order.
var rules = []Rule{
	{
		Category: Property,
		Pattern:  regexp.MustCompile(`(?i)property|land|plot|house|terrain|propriété|parcelle|maison`),
		Citation: locale.Text{
			EN: "Per Land Ordinance 1974, Section 8(1)(d)",
			FR: "Selon l'Ordonnance Foncière 1974, Section 8(1)(d)",
		},
	},
	{
		Category: Inheritance,
		Pattern:  regexp.MustCompile(`(?i)inherit|will|testament|estate|hériter|héritage`),
		Citation: locale.Text{EN: civilStatusOrdinance, FR: civilStatusOrdinanceFR},
	},
	{
		Category: Labor,
		Pattern:  regexp.MustCompile(`(?i)employ|work|job|travail|emploi|employé|salarié`),
		Citation: locale.Text{
			EN: "Labour Code, Law No. 92/007 of August 14, 1992",
			FR: "Code du Travail, Loi n° 92/007 du 14 août 1992",
		},
	},
	{
		Category: Divorce,
		Pattern:  regexp.MustCompile(`(?i)divorce|separation|séparation`),
		Citation: locale.Text{
			EN: civilStatusOrdinance + ", Section 64",
			FR: civilStatusOrdinanceFR + ", Section 64",
		},
	},
	{
		Category: Commercial,
		Pattern:  regexp.MustCompile(`(?i)business|company|contract|entreprise|société|contrat`),
		Citation: locale.Text{
			EN: "OHADA Uniform Act on Commercial Companies and Economic Interest Groups",
			FR: "Acte uniforme OHADA relatif au droit des sociétés commerciales et du groupement d'intérêt économique",
		},
	},
}

// Rules returns the catalog in priority order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}

// Suggest returns the citations whose trigger words occur in text. Each
// category contributes at most one citation regardless of how many of its
// words match.
func Suggest(text string, lang locale.Language) CitationSet {
	matches := SuggestDetailed(text, lang)
	if len(matches) == 0 {
		return CitationSet{}
	}
	out := make(CitationSet, len(matches))
	for i, m := range matches {
		out[i] = m.Citation
	}
	return out
}

// SuggestDetailed is Suggest with the producing category kept on each entry.
func SuggestDetailed(text string, lang locale.Language) []Match {
	matches := []Match{}
	if text == "" {
		return matches
	}
	for _, r := range rules {
		if r.Pattern.MatchString(text) {
			matches = append(matches, Match{Category: r.Category, Citation: r.Citation.In(lang)})
		}
	}
	return matches
}

// Citation returns the citation of a single category.
func Citation(c Category, lang locale.Language) (string, bool) {
	for _, r := range rules {
		if r.Category == c {
			return r.Citation.In(lang), true
		}
	}
	return "", false
}

// CategoryInfo is the catalog view of one rule.
type CategoryInfo struct {
	Category Category    `json:"category"`
	Citation locale.Text `json:"citation"`
}

// Categories lists every category with its bilingual citation.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(rules))
	for i, r := range rules {
		out[i] = CategoryInfo{Category: r.Category, Citation: r.Citation}
	}
	return out
}
