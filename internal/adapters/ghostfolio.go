package adapters

import "importcli/pkg/contracts/domain"

// newGhostfolio parses activity exports from the Ghostfolio portfolio
// tracker, which are already close to canonical form.
func newGhostfolio() Adapter {
	return &dialect{
		id:            domain.SourceGhostfolio,
		defaultLocale: "en-US",
		homeCurrency:  "USD",
		overrides: synonyms{
			fieldTicker: {"Symbol", "Code"},
			fieldPrice:  {"Unit Price", "unitPrice"},
			fieldFee:    {"Fee", "fee"},
			fieldVenue:  {"Account", "accountId"},
			fieldNotes:  {"Comment", "comment"},
		},
		detect: func(sample string) bool {
			h := headerSet(sample)
			return hasAny(h, "unit price", "unitprice") ||
				sampleContains(sample, "ghostfolio")
		},
	}
}
