package normalize

import (
	"fmt"
	"regexp"
	"strings"
)

// TickerParseError reports an empty or unusable instrument field.
type TickerParseError struct {
	Input string
}

func (e *TickerParseError) Error() string {
	return fmt.Sprintf("missing ticker in %q", e.Input)
}

var (
	exchangeSuffixRe = regexp.MustCompile(`(?i)\.(US|L|DE|MI|AS|PA|SW|TO|HK|JP|AX|NZ)$`)
	pairRe           = regexp.MustCompile(`(?i)^[A-Z0-9]{2,6}[-/][A-Z0-9]{2,6}$`)
	colonSuffixRe    = regexp.MustCompile(`(?i)^[A-Z0-9.]+:[A-Z0-9]+$`)
	plainSymbolRe    = regexp.MustCompile(`^[A-Z0-9.\-]+$`)
)

// Ticker canonicalizes a raw symbol or free-text security description.
// Descriptions ("Apple Inc. AAPL") reduce to their last token, exchange
// suffixes are stripped, and crypto pairs keep a BASE-QUOTE form.
func Ticker(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", &TickerParseError{Input: raw}
	}

	// "AAPL:US" style exchange qualifiers.
	if colonSuffixRe.MatchString(s) {
		s = strings.SplitN(s, ":", 2)[0]
	}

	// Trading pairs keep their quote leg, normalized to a dash.
	if pairRe.MatchString(s) {
		parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '/' })
		return Pair(parts[0], parts[1]), nil
	}

	// Free-text description: take the last whitespace-delimited token and
	// strip enclosing parentheses ("Apple Inc. (AAPL)" -> "AAPL").
	if strings.ContainsAny(s, " \t") && !plainSymbolRe.MatchString(s) {
		fields := strings.Fields(s)
		s = strings.Trim(fields[len(fields)-1], "()")
		if s == "" {
			return "", &TickerParseError{Input: raw}
		}
	}

	s = exchangeSuffixRe.ReplaceAllString(s, "")
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", &TickerParseError{Input: raw}
	}
	return s, nil
}

// Pair builds the canonical BASE-QUOTE form for venues that split a crypto
// pair across columns.
func Pair(base, quote string) string {
	b := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(base), " ", ""))
	q := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(quote), " ", ""))
	if b == "" {
		return ""
	}
	if q == "" {
		return b
	}
	return b + "-" + q
}
