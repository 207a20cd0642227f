package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateParseError reports a date string no known pattern could parse.
type DateParseError struct {
	Input string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("unrecognized date: %q", e.Input)
}

// strictLayouts are unambiguous machine-generated timestamp formats, tried
// before any locale-dependent guessing.
var strictLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// dayFirstLocales lists the locale prefixes that read delimited dates as
// day-month-year. Everything else is treated as month-first.
var dayFirstLocales = []string{
	"en-gb", "en-ie", "en-au", "en-nz",
	"de", "fr", "es", "it", "nl", "pt", "da", "sv",
}

var (
	delimitedRe = regexp.MustCompile(`^(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})(?:[ T](\d{1,2}):(\d{2})(?::(\d{2}))?)?$`)
	ymdRe       = regexp.MustCompile(`^(\d{4})[/\-.](\d{1,2})[/\-.](\d{1,2})(?:[ T](\d{1,2}):(\d{2})(?::(\d{2}))?)?$`)
)

// Date parses a raw date/time string into a UTC instant. Strict formats are
// tried first; delimited forms are disambiguated day-first vs month-first by
// the locale hint. Two-digit years are expanded by prefixing "20". A missing
// time-of-day component defaults to midnight UTC.
func Date(raw, locale string) (time.Time, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return time.Time{}, &DateParseError{Input: raw}
	}

	for _, layout := range strictLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC(), nil
		}
	}

	if m := ymdRe.FindStringSubmatch(v); m != nil {
		return buildUTC(raw, m[1], m[2], m[3], m[4], m[5], m[6])
	}

	if m := delimitedRe.FindStringSubmatch(v); m != nil {
		a, b := m[1], m[2]
		day, month := a, b
		if !DayFirst(locale) {
			day, month = b, a
		}
		year := m[3]
		if len(year) == 2 {
			year = "20" + year
		}
		return buildUTC(raw, year, month, day, m[4], m[5], m[6])
	}

	return time.Time{}, &DateParseError{Input: raw}
}

// DayFirst reports whether the locale hint prefers day-month ordering for
// ambiguous delimited dates.
func DayFirst(locale string) bool {
	l := strings.ToLower(strings.TrimSpace(locale))
	for _, p := range dayFirstLocales {
		if l == p || strings.HasPrefix(l, p+"-") {
			return true
		}
	}
	return false
}

func buildUTC(raw, year, month, day, hh, mm, ss string) (time.Time, error) {
	y, _ := strconv.Atoi(year)
	mo, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	h := atoiDefault(hh, 0)
	min := atoiDefault(mm, 0)
	sec := atoiDefault(ss, 0)

	if mo < 1 || mo > 12 || d < 1 || d > 31 || h > 23 || min > 59 || sec > 59 {
		return time.Time{}, &DateParseError{Input: raw}
	}
	t := time.Date(y, time.Month(mo), d, h, min, sec, 0, time.UTC)
	// time.Date normalizes overflow (e.g. Feb 31 -> Mar 3); treat that as unparseable.
	if t.Day() != d || t.Month() != time.Month(mo) {
		return time.Time{}, &DateParseError{Input: raw}
	}
	return t, nil
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
