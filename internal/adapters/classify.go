package adapters

import (
	"regexp"
	"strings"
)

// Activity is the exhaustive classification of a row's action text. New
// brokerage phrasing is added to the pattern lists below, never to control
// flow.
type Activity int

const (
	ActivityUnknown Activity = iota
	ActivityTradeBuy
	ActivityTradeSell
	ActivityNonTrade
)

func (a Activity) String() string {
	switch a {
	case ActivityTradeBuy:
		return "TRADE_BUY"
	case ActivityTradeSell:
		return "TRADE_SELL"
	case ActivityNonTrade:
		return "NON_TRADE"
	default:
		return "UNKNOWN"
	}
}

var (
	// Administrative rows brokerages mix into trade exports. Skipped
	// silently: expected noise, not errors.
	nonTradeRe = regexp.MustCompile(`(?i)(dividend|interest|fee|commission|transfer|cash (in|out)|top[ -]?up|deposit|withdraw|reward|staking|promo|airdrop|receive|send|gift|convert|conversion|split|lending|tax)`)

	// Sell/close/short-to-close language.
	sellRe = regexp.MustCompile(`(?i)(sell|sold|sale|close|short|reduce)`)

	// Buy/open language.
	buyRe = regexp.MustCompile(`(?i)(buy|bought|open|purchase)`)

	// Generic execution language that still marks a trade; side defaults to
	// BUY when nothing more specific matched.
	tradeLikeRe = regexp.MustCompile(`(?i)(trade|order|fill|execution|market)`)
)

// ClassifyActivity maps raw action text onto the Activity enumeration.
// Non-trade patterns win over everything; sell language wins over buy, since
// phrases like "sell to open" still move stock out of the account.
func ClassifyActivity(action string) Activity {
	s := strings.TrimSpace(action)
	if s == "" {
		return ActivityUnknown
	}
	if nonTradeRe.MatchString(s) {
		return ActivityNonTrade
	}
	if sellRe.MatchString(s) {
		return ActivityTradeSell
	}
	if buyRe.MatchString(s) {
		return ActivityTradeBuy
	}
	if tradeLikeRe.MatchString(s) {
		return ActivityTradeBuy
	}
	return ActivityUnknown
}
