package invoice

import (
	"regexp"
	"time"
)

// dateFormats is the fixed allow-list of layouts a source date must match
// exactly. Anything outside the list degrades to a null date field rather
// than a guess.
var dateFormats = []string{
	"Mon Jan 2, 2006",
	"Mon Jan 02, 2006",
	"Jan 2, 2006",
	"Jan 02, 2006",
	"01/02/2006",
	"2006-01-02",
}

// datePattern finds the "Wed Aug 27, 2025" shaped stamps the weekly
// statements print near the invoice header. The weekday is optional
// because some extractors drop it.
var datePattern = regexp.MustCompile(`(?:[A-Z][a-z]{2}\s+)?[A-Z][a-z]{2}\s+\d{1,2},\s+\d{4}`)

// ParseDate parses s against the allow-list. The second return is false
// when no layout matches exactly.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// findDate returns the first parseable date stamp in the block body, or
// nil when none parses.
func findDate(body string) *time.Time {
	for _, candidate := range datePattern.FindAllString(body, -1) {
		if t, ok := ParseDate(candidate); ok {
			return &t
		}
	}
	return nil
}
