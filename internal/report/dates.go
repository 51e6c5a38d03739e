// Package report contains the pure logic behind report command generation:
// scanning conversation text for date tokens, normalizing them and
// substituting them into the fixed report command template.
package report

import (
	"regexp"
)

// datePattern matches slash-delimited numeric date tokens such as "1/5/24" or
// "01/05/2024". It is deliberately not a date parser: month and day are one
// or two digits, the year two or four, and no range checking is applied.
var datePattern = regexp.MustCompile(`\b(\d{1,2})/(\d{1,2})/(\d{2,4})\b`)

// DatePair holds the two normalized dates that bound a report, both in
// MM/DD/YY form. Start is simply the first token found and End the second;
// no chronological ordering is implied or enforced.
type DatePair struct {
	Start string
	End   string
}

// ExtractDatePair scans message bodies in order (oldest first, left to right
// within a body) and returns the first two date tokens found, normalized.
// Tokens beyond the second are ignored. Returns ok=false when fewer than two
// tokens exist across the whole history.
func ExtractDatePair(bodies []string) (DatePair, bool) {
	var found []string
	for _, body := range bodies {
		for _, match := range datePattern.FindAllStringSubmatch(body, -1) {
			found = append(found, normalizeToken(match[1], match[2], match[3]))
			if len(found) == 2 {
				return DatePair{Start: found[0], End: found[1]}, true
			}
		}
	}
	return DatePair{}, false
}

// normalizeToken converts a matched token to MM/DD/YY: month and day are
// zero-padded to two digits and four-digit years keep only the last two.
// Values are otherwise passed through unchanged, even if out of range.
func normalizeToken(month, day, year string) string {
	if len(year) == 4 {
		year = year[2:]
	}
	return zeroPad(month) + "/" + zeroPad(day) + "/" + year
}

// zeroPad left-pads a one-digit component to two digits.
func zeroPad(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
