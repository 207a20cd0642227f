package adapters

import "strings"

// quoteAssets are the quote legs crypto venues concatenate onto a market
// symbol ("BTCUSDT", "XXBTZUSD"). Longer codes first so "USDT" wins over
// "USD".
var quoteAssets = []string{
	"USDT", "USDC", "BUSD", "TUSD", "ZUSD", "ZEUR", "ZGBP",
	"USD", "EUR", "GBP", "XBT", "BTC", "ETH", "BNB", "DAI", "JPY",
}

// splitMarketPair breaks a venue market symbol into base and quote legs.
// Delimited pairs split on the delimiter; concatenated pairs split on a
// recognized quote-asset suffix.
func splitMarketPair(s string) (base, quote string, ok bool) {
	m := strings.ToUpper(strings.TrimSpace(s))
	if m == "" {
		return "", "", false
	}
	for _, sep := range []string{"/", "-", "_"} {
		if strings.Contains(m, sep) {
			parts := strings.SplitN(m, sep, 2)
			if parts[0] != "" && parts[1] != "" {
				return parts[0], parts[1], true
			}
		}
	}
	for _, q := range quoteAssets {
		if strings.HasSuffix(m, q) && len(m) > len(q) {
			return m[:len(m)-len(q)], q, true
		}
	}
	return "", "", false
}
