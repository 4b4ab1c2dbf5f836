package schedule

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var weekdayNames = map[time.Weekday][]string{
	time.Monday:    {"lunes", "monday"},
	time.Tuesday:   {"martes", "tuesday"},
	time.Wednesday: {"miercoles", "wednesday"},
	time.Thursday:  {"jueves", "thursday"},
	time.Friday:    {"viernes", "friday"},
	time.Saturday:  {"sabado", "saturday"},
	time.Sunday:    {"domingo", "sunday"},
}

// normalizeDay lower-cases a weekday name and strips accents, so "Miércoles",
// "miercoles" and "MIÉRCOLES" compare equal.
func normalizeDay(day string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(t, strings.TrimSpace(day))
	if err != nil {
		folded = strings.TrimSpace(day)
	}

	return strings.ToLower(folded)
}

// MatchesWeekday reports whether day names wd in Spanish or English.
func MatchesWeekday(day string, wd time.Weekday) bool {
	normalized := normalizeDay(day)
	for _, name := range weekdayNames[wd] {
		if normalized == name {
			return true
		}
	}
	return false
}
