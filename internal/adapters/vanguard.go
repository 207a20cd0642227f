package adapters

import "importcli/pkg/contracts/domain"

// newVanguard parses Vanguard (US) brokerage transaction downloads.
func newVanguard() Adapter {
	return &dialect{
		id:            domain.SourceVanguard,
		defaultLocale: "en-US",
		homeCurrency:  "USD",
		overrides: synonyms{
			fieldDate:     {"Trade Date", "Settlement Date"},
			fieldQuantity: {"Shares"},
			fieldPrice:    {"Share Price"},
			fieldTotal:    {"Principal Amount", "Net Amount"},
			fieldFee:      {"Commission Fees", "Commission and Fees"},
			fieldAction:   {"Transaction Type", "Transaction Description"},
			fieldVenue:    {"Account Type", "Account Number"},
		},
		detect: func(sample string) bool {
			h := headerSet(sample)
			return hasAny(h, "investment name") ||
				hasAll(h, "share price", "shares")
		},
	}
}
