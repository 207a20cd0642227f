package normalize

import "strings"

// currencyColumns are the recognized synonyms for an explicit currency
// field, in resolution order.
var currencyColumns = []string{
	"Currency",
	"currency",
	"Ccy",
	"CCY",
	"Currency Code",
	"Currency (native)",
	"Settlement Currency",
	"Cash Currency",
	"Spot Price Currency",
	"Quote Currency",
	"Counter Asset",
}

// Currency returns the row's explicit currency under any recognized synonym,
// or the adapter-supplied fallback (the brokerage's home market) when absent.
func Currency(rec map[string]string, fallback string) string {
	for _, col := range currencyColumns {
		if v, ok := rec[col]; ok {
			if c := strings.ToUpper(strings.TrimSpace(v)); c != "" {
				return c
			}
		}
	}
	return strings.ToUpper(strings.TrimSpace(fallback))
}
