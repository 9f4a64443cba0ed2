package parser

import (
	"regexp"
	"strings"
)

var (
	emailRe     = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	phoneRe     = regexp.MustCompile(`\b(\+\d{1,2}\s)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}\b`)
	yearRangeRe = regexp.MustCompile(`(?i)\b(19\d{2}|20\d{2})[-–—](present|current|19\d{2}|20\d{2})\b`)
	jobYearsRe  = regexp.MustCompile(`(?i)\d+\+?\s*years?`)
)

// YearRange is one "2019-2022" or "2019–present" span as written.
type YearRange struct {
	Start string
	End   string
}

// Open reports whether the range ends at "present" or "current".
func (r YearRange) Open() bool {
	e := strings.ToLower(r.End)
	return e == "present" || e == "current"
}

func YearRanges(s string) []YearRange {
	ms := yearRangeRe.FindAllStringSubmatch(s, -1)
	if len(ms) == 0 {
		return nil
	}
	out := make([]YearRange, 0, len(ms))
	for _, m := range ms {
		out = append(out, YearRange{Start: m[1], End: m[2]})
	}
	return out
}

func HasYearRange(s string) bool {
	return yearRangeRe.MatchString(s)
}

func firstYearRange(s string) (YearRange, bool) {
	m := yearRangeRe.FindStringSubmatch(s)
	if m == nil {
		return YearRange{}, false
	}
	return YearRange{Start: m[1], End: m[2]}, true
}

// lowerASCII lowers A-Z only, so byte offsets into the result are valid
// offsets into s.
func lowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
