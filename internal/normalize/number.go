package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// NumberParseError reports a value that could not be reduced to a number.
type NumberParseError struct {
	Input string
}

func (e *NumberParseError) Error() string {
	return fmt.Sprintf("not a number: %q", e.Input)
}

var (
	currencyPrefixRe = regexp.MustCompile(`^[A-Za-z]{3}\s+`)
	numericJunkRe    = regexp.MustCompile(`[^0-9eE+\-.,]`)
)

// Number parses a raw numeric string that may carry currency symbols,
// thousands separators or a decimal comma. When both "," and "." appear, the
// separator occurring first is treated as the thousands separator; a lone
// comma is a decimal point. The locale hint is accepted for symmetry with
// Date but the separator rule is positional, matching the exports observed
// in the wild.
func Number(raw, locale string) (float64, error) {
	_ = locale
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, &NumberParseError{Input: raw}
	}

	// "USD 111.97" style prefixes.
	v = currencyPrefixRe.ReplaceAllString(v, "")
	// Currency symbols, spaces, percent signs and the like.
	v = numericJunkRe.ReplaceAllString(v, "")

	hasComma := strings.Contains(v, ",")
	hasDot := strings.Contains(v, ".")
	switch {
	case hasComma && hasDot:
		if strings.Index(v, ",") < strings.Index(v, ".") {
			v = strings.ReplaceAll(v, ",", "")
		} else {
			v = strings.ReplaceAll(v, ".", "")
			v = strings.Replace(v, ",", ".", 1)
		}
	case hasComma:
		// A lone comma is a decimal point, but "1,234,567" is grouping.
		if strings.Count(v, ",") > 1 {
			v = strings.ReplaceAll(v, ",", "")
		} else {
			v = strings.Replace(v, ",", ".", 1)
		}
	}

	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, &NumberParseError{Input: raw}
	}
	return n, nil
}
