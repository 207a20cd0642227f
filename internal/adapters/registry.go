package adapters

import "importcli/pkg/contracts/domain"

// registry holds every adapter in detection priority order. The order is
// part of the correctness contract: several dialects share generic header
// vocabulary (Date/Type/Quantity/Price), so adapters whose heuristics
// require multiple distinctive column names run before adapters with broad
// single-keyword heuristics. Reordering entries can silently misroute files.
//
// Ordering rationale, most to least specific:
//   - coinbase, koinly, ibkr-flex, kraken, binance: crypto exports with
//     unmistakable multi-column signatures (Quantity Transacted, Sent/
//     Received Amount, T.Price+Proceeds, ordertxid+vol, Date(UTC)+Market).
//   - trading212, freetrade, degiro, interactive-investor: UK/EU equity
//     exports with provider-specific columns (No. of shares, Price (native),
//     Product+ISIN, Sedol).
//   - sharesight, ghostfolio, vanguard, fidelity, etrade, schwab: columns
//     unique to one provider (Unit Price, Investment Name, Run Date,
//     TransactionDate, Fees & Comm) but otherwise generic layouts.
//   - saxo before ig: both match broad UK dialects; a file carrying both
//     "Trade Date" and "Instrument"+"Action" must resolve to the stricter
//     Saxo adapter (the documented ambiguous-header case).
//   - revolut, turbotax: last, since their fallback heuristics accept the
//     most generic Date/Symbol/Type/Quantity/Price headers.
var registry = []Adapter{
	newCoinbase(),
	newKoinly(),
	newIBKRFlex(),
	newKraken(),
	newBinance(),
	newTrading212(),
	newFreetrade(),
	newDegiro(),
	newInteractiveInvestor(),
	newSharesight(),
	newGhostfolio(),
	newVanguard(),
	newFidelity(),
	newEtrade(),
	newSchwab(),
	newSaxo(),
	newIG(),
	newRevolut(),
	newTurboTax(),
}

// Registry returns the ordered adapter list. The returned slice is shared;
// callers must not mutate it.
func Registry() []Adapter {
	return registry
}

// Lookup returns the adapter for a format id, or nil when the id is unknown.
func Lookup(id domain.SourceFormat) Adapter {
	for _, a := range registry {
		if a.ID() == id {
			return a
		}
	}
	return nil
}

// DetectFormat evaluates every adapter's heuristic strictly in registration
// order against the sample and returns the first match. Given the same
// sample the result never varies. SourceUnknown is a sentinel, not an error:
// the caller decides whether to prompt for a manual format choice.
func DetectFormat(sample string) domain.SourceFormat {
	for _, a := range registry {
		if a.Detect(sample) {
			return a.ID()
		}
	}
	return domain.SourceUnknown
}
