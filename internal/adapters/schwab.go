package adapters

import "importcli/pkg/contracts/domain"

// newSchwab parses Charles Schwab transaction history exports.
func newSchwab() Adapter {
	return &dialect{
		id:            domain.SourceSchwab,
		defaultLocale: "en-US",
		homeCurrency:  "USD",
		overrides: synonyms{
			fieldFee:   {"Fees & Comm"},
			fieldTotal: {"Amount"},
		},
		detect: func(sample string) bool {
			h := headerSet(sample)
			return hasAny(h, "fees & comm") ||
				hasAll(h, "action", "symbol", "description", "amount")
		},
	}
}
