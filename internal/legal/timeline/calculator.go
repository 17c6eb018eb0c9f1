// internal/legal/timeline/calculator.go
package timeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"legal-workers/internal/legal/locale"
)

var ErrInvalidTimeline = errors.New("TIMELINE_INVALID")

// CaseType is the kind of proceeding a timeline is computed for.
type CaseType string

const (
	Civil          CaseType = "civil"
	Criminal       CaseType = "criminal"
	Commercial     CaseType = "commercial"
	Administrative CaseType = "administrative"
)

// NewDeadlineDays is the period given to a deadline added without one.
const NewDeadlineDays = 14

var caseTypes = []struct {
	Type  CaseType
	Label locale.Text
}{
	{Civil, locale.Text{EN: "Civil Case", FR: "Affaire Civile"}},
	{Criminal, locale.Text{EN: "Criminal Case", FR: "Affaire Pénale"}},
	{Commercial, locale.Text{EN: "Commercial Dispute", FR: "Litige Commercial"}},
	{Administrative, locale.Text{EN: "Administrative Case", FR: "Affaire Administrative"}},
}

var (
	initiationLabel = locale.Text{EN: "Case Initiation Date", FR: "Date d'Initiation du Cas"}
	unnamedDeadline = locale.Text{EN: "Deadline", FR: "Échéance"}
	fileResponse    = locale.Text{EN: "File Response", FR: "Dépôt de Réponse"}
)

// CaseTypes lists the supported case types in display order.
func CaseTypes() []CaseType {
	out := make([]CaseType, len(caseTypes))
	for i, c := range caseTypes {
		out[i] = c.Type
	}
	return out
}

// Label returns the display name of a case type.
func (c CaseType) Label(lang locale.Language) (string, bool) {
	for _, ct := range caseTypes {
		if ct.Type == c {
			return ct.Label.In(lang), true
		}
	}
	return "", false
}

// Deadline is a named period counted in calendar days from the start date.
type Deadline struct {
	Name string `json:"name"`
	Days int    `json:"days"`
}

// DefaultDeadlines is the single response deadline a new timeline starts with.
func DefaultDeadlines(lang locale.Language) []Deadline {
	return []Deadline{{Name: fileResponse.In(lang), Days: 30}}
}

type Request struct {
	CaseType  CaseType
	StartDate string
	Deadlines []Deadline
	Language  locale.Language
}

// Event is one dated entry of a timeline.
type Event struct {
	Date        time.Time `json:"date"`
	DateText    string    `json:"dateText"`
	Description string    `json:"description"`
	Initiation  bool      `json:"initiation"`
	Days        int       `json:"days"`
}

type Timeline struct {
	CaseType      CaseType        `json:"caseType"`
	CaseTypeLabel string          `json:"caseTypeLabel"`
	Language      locale.Language `json:"language"`
	Events        []Event         `json:"events"`
}

// Calculate lists the start date followed by start+days for every deadline,
// in the order given.
func Calculate(req Request) (*Timeline, error) {
	lang := locale.Parse(string(req.Language))

	caseType := req.CaseType
	if caseType == "" {
		caseType = Civil
	}
	label, ok := CaseType(strings.ToLower(string(caseType))).Label(lang)
	if !ok {
		return nil, fmt.Errorf("%w: unknown case type %q", ErrInvalidTimeline, req.CaseType)
	}
	caseType = CaseType(strings.ToLower(string(caseType)))

	if strings.TrimSpace(req.StartDate) == "" {
		return nil, fmt.Errorf("%w: start date is required", ErrInvalidTimeline)
	}
	start, ok := locale.ParseDate(req.StartDate)
	if !ok {
		return nil, fmt.Errorf("%w: cannot parse start date %q", ErrInvalidTimeline, req.StartDate)
	}

	events := make([]Event, 0, len(req.Deadlines)+1)
	events = append(events, Event{
		Date:        start,
		DateText:    locale.LongDate(start, lang),
		Description: initiationLabel.In(lang),
		Initiation:  true,
	})
	for i, d := range req.Deadlines {
		if d.Days < 0 {
			return nil, fmt.Errorf("%w: deadline %d has negative days", ErrInvalidTimeline, i+1)
		}
		name := strings.TrimSpace(d.Name)
		if name == "" {
			name = unnamedDeadline.In(lang)
		}
		due := start.AddDate(0, 0, d.Days)
		events = append(events, Event{
			Date:        due,
			DateText:    locale.LongDate(due, lang),
			Description: name,
			Days:        d.Days,
		})
	}

	return &Timeline{
		CaseType:      caseType,
		CaseTypeLabel: label,
		Language:      lang,
		Events:        events,
	}, nil
}
