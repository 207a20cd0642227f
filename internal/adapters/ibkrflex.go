package adapters

import (
	"strings"

	"importcli/pkg/contracts/domain"
)

// newIBKRFlex parses Interactive Brokers Flex query trade exports. Some Flex
// templates omit the Buy/Sell column; direction is then recovered from the
// sign convention: sold quantity is negative, bought proceeds are negative.
func newIBKRFlex() Adapter {
	return &dialect{
		id:            domain.SourceIBKRFlex,
		defaultLocale: "en-US",
		homeCurrency:  "USD",
		overrides: synonyms{
			fieldDate:   {"Date/Time", "TradeDate", "Trade Date", "Date"},
			fieldPrice:  {"T.Price", "TradePrice", "Price", "Trade Price"},
			fieldTotal:  {"Proceeds"},
			fieldFee:    {"Comm/Fee", "IBCommission", "Commission"},
			fieldAction: {"Buy/Sell", "Action", "Type"},
			fieldVenue:  {"Exchange", "ListingExchange", "Venue"},
		},
		detect: func(sample string) bool {
			h := headerSet(sample)
			return hasAll(h, "t.price", "proceeds") ||
				hasAll(h, "tradeprice", "proceeds") ||
				sampleContains(sample, "ibkr")
		},
		prepare: func(v *rowView) {
			if v.action != "" {
				return
			}
			switch {
			case strings.HasPrefix(strings.TrimSpace(v.quantity), "-"):
				v.side = domain.SideSell
			case strings.HasPrefix(strings.TrimSpace(v.total), "-"):
				v.side = domain.SideBuy
			case v.quantity != "" && v.total != "":
				// Positive quantity with positive proceeds is a sale.
				v.side = domain.SideSell
			default:
				v.side = domain.SideBuy
			}
			v.sideSet = true
		},
	}
}
