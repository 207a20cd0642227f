package adapters

import "importcli/pkg/contracts/domain"

// newBinance parses the Binance spot trade history export.
func newBinance() Adapter {
	return &dialect{
		id:            domain.SourceBinance,
		defaultLocale: "en-US",
		homeCurrency:  "USD",
		overrides: synonyms{
			fieldDate:     {"Date(UTC)", "Date"},
			fieldTicker:   {"Market", "Pair"},
			fieldAction:   {"Type", "Side"},
			fieldQuantity: {"Amount", "Executed"},
			fieldPrice:    {"Price"},
			fieldTotal:    {"Total"},
			fieldFee:      {"Fee"},
		},
		detect: func(sample string) bool {
			h := headerSet(sample)
			return hasAny(h, "date(utc)") ||
				hasAll(h, "market", "fee coin")
		},
		prepare: prepareMarketPairRow,
	}
}
