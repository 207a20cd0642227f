package adapters

import "importcli/pkg/contracts/domain"

// newEtrade parses E*TRADE transaction downloads, whose headers are
// camel-cased without spaces.
func newEtrade() Adapter {
	return &dialect{
		id:            domain.SourceEtrade,
		defaultLocale: "en-US",
		homeCurrency:  "USD",
		overrides: synonyms{
			fieldDate:   {"TransactionDate"},
			fieldAction: {"TransactionType"},
			fieldFee:    {"Commission"},
			fieldTotal:  {"Amount"},
			fieldNotes:  {"SecurityType", "Description"},
		},
		detect: func(sample string) bool {
			h := headerSet(sample)
			return hasAll(h, "transactiondate", "transactiontype")
		},
	}
}
