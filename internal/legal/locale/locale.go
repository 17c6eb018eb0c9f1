// internal/legal/locale/locale.go
package locale

import (
	"strings"
	"time"

	"github.com/goodsign/monday"
)

// Language is the active display language of a document or answer.
type Language string

const (
	English Language = "en"
	French  Language = "fr"
)

// Parse maps a request language code to a Language. Anything that is not
// French is treated as English.
func Parse(code string) Language {
	if strings.EqualFold(strings.TrimSpace(code), string(French)) {
		return French
	}
	return English
}

// Valid reports whether code names a supported language.
func Valid(code string) bool {
	switch Language(strings.ToLower(strings.TrimSpace(code))) {
	case English, French:
		return true
	}
	return false
}

// Text holds the English and French rendition of a string.
type Text struct {
	EN string `json:"en"`
	FR string `json:"fr"`
}

// In returns the rendition for lang, falling back to English.
func (t Text) In(lang Language) string {
	if lang == French && t.FR != "" {
		return t.FR
	}
	return t.EN
}

// LongDate formats t the way en-US and fr-FR write a long date:
// "January 15, 2024" and "15 janvier 2024".
func LongDate(t time.Time, lang Language) string {
	if lang == French {
		return monday.Format(t, "2 January 2006", monday.LocaleFrFR)
	}
	return monday.Format(t, "January 2, 2006", monday.LocaleEnUS)
}

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
}

// ParseDate accepts the date encodings form inputs and job variables use.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
