package adapters

import "importcli/pkg/contracts/domain"

// newKraken parses the Kraken trades export. The pair column uses Kraken's
// concatenated form (XBTUSD, ETH/EUR); the hook splits it so the quote asset
// doubles as the trade currency.
func newKraken() Adapter {
	return &dialect{
		id:            domain.SourceKraken,
		defaultLocale: "en-US",
		homeCurrency:  "USD",
		overrides: synonyms{
			fieldDate:     {"time"},
			fieldAction:   {"type"},
			fieldTicker:   {"pair"},
			fieldQuantity: {"vol"},
			fieldPrice:    {"price"},
			fieldTotal:    {"cost"},
			fieldFee:      {"fee"},
			fieldID:       {"txid", "ordertxid"},
		},
		detect: func(sample string) bool {
			h := headerSet(sample)
			return hasAll(h, "ordertxid", "vol") ||
				hasAll(h, "txid", "pair", "cost")
		},
		prepare: prepareMarketPairRow,
	}
}

// prepareMarketPairRow canonicalizes a concatenated or delimited market pair
// and, when the row carries no currency of its own, adopts the quote asset.
func prepareMarketPairRow(v *rowView) {
	base, quote, ok := splitMarketPair(v.ticker)
	if !ok {
		return
	}
	v.tickerCanonical = base + "-" + quote
	if v.currency == "" {
		v.currency = quote
	}
}
