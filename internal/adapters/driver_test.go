package adapters

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"importcli/pkg/contracts/domain"
)

func mustParse(t *testing.T, id domain.SourceFormat, input string) *domain.ParseResult {
	t.Helper()
	a := Lookup(id)
	require.NotNil(t, a, "no adapter registered for %s", id)
	res, err := a.Parse(context.Background(), strings.NewReader(input), "")
	require.NoError(t, err)
	return res
}

func TestTrading212SkipsDividendSilently(t *testing.T) {
	input := "Action,Time,ISIN,Ticker,Name,No. of shares,Price / share,Currency (Price / share),Total,ID\n" +
		"Market buy,2024-05-01 14:30:00,US0378331005,AAPL,Apple,10,180.50,USD,1805.00,EOF123\n" +
		"Dividend (Ordinary),2024-05-02 10:00:00,US0378331005,AAPL,Apple,10,0.24,USD,2.40,DIV1\n"

	res := mustParse(t, domain.SourceTrading212, input)

	require.Len(t, res.Trades, 1)
	assert.Empty(t, res.Warnings)

	tr := res.Trades[0]
	assert.Equal(t, "AAPL", tr.Ticker)
	assert.Equal(t, domain.SideBuy, tr.Side)
	assert.Equal(t, 10.0, tr.Quantity)
	assert.Equal(t, 180.50, tr.Price)
	assert.Equal(t, "USD", tr.Currency)
	assert.Equal(t, domain.SourceTrading212, tr.SourceFormat)
	assert.Equal(t, time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC), tr.Date)

	assert.Equal(t, 2, res.Metadata.TotalRows)
	assert.Equal(t, 0, res.Metadata.InvalidRows)
	assert.Equal(t, adapterVersion, res.Metadata.AdapterVersion)
}

func TestCoinbaseRetailAssetIsNotAPair(t *testing.T) {
	input := "Timestamp,Transaction Type,Asset,Quantity Transacted,Spot Price Currency,Spot Price at Transaction,Subtotal,Total,Fees\n" +
		"2024-03-10T09:30:00Z,Sell,BTC,0.01,USD,45000.00,450.00,448.00,2.00\n"

	res := mustParse(t, domain.SourceCoinbase, input)

	require.Len(t, res.Trades, 1)
	assert.Empty(t, res.Warnings)

	tr := res.Trades[0]
	assert.Equal(t, "BTC", tr.Ticker)
	assert.Equal(t, domain.SideSell, tr.Side)
	assert.Equal(t, 0.01, tr.Quantity)
	assert.Equal(t, 45000.0, tr.Price)
	assert.Equal(t, "USD", tr.Currency)
	assert.Equal(t, 2.0, tr.Fees)
}

func TestZeroQuantityRejectsRowAndKeepsRest(t *testing.T) {
	input := "Action,Time,Ticker,No. of shares,Price / share,Currency (Price / share)\n" +
		"Market buy,2024-05-01 14:30:00,AAPL,0,180.50,USD\n" +
		"Market buy,2024-05-01 15:00:00,MSFT,5,410.00,USD\n"

	res := mustParse(t, domain.SourceTrading212, input)

	require.Len(t, res.Trades, 1)
	assert.Equal(t, "MSFT", res.Trades[0].Ticker)

	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "quantity")
	assert.Contains(t, res.Warnings[0], "row {")
	assert.Equal(t, 1, res.Metadata.InvalidRows)
	assert.Equal(t, 2, res.Metadata.TotalRows)
}

func TestUnrecognisedActivityRejectsRow(t *testing.T) {
	input := "Action,Time,Ticker,No. of shares,Price / share\n" +
		"Adjustment,2024-05-01 14:30:00,AAPL,10,180.50\n"

	res := mustParse(t, domain.SourceTrading212, input)

	assert.Empty(t, res.Trades)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "unrecognised activity")
}

func TestContentHashIsStableAcrossReparses(t *testing.T) {
	input := "Action,Time,Ticker,No. of shares,Price / share,Currency (Price / share)\n" +
		"Market buy,2024-05-01 14:30:00,AAPL,10,180.50,USD\n" +
		"Market sell,2024-05-02 14:30:00,AAPL,4,182.00,USD\n"

	first := mustParse(t, domain.SourceTrading212, input)
	second := mustParse(t, domain.SourceTrading212, input)

	require.Len(t, first.Trades, 2)
	require.Len(t, second.Trades, 2)
	for i := range first.Trades {
		assert.Len(t, first.Trades[i].ContentHash, 64)
		assert.Equal(t, first.Trades[i].ContentHash, second.Trades[i].ContentHash)
	}
	assert.NotEqual(t, first.Trades[0].ContentHash, first.Trades[1].ContentHash)
}

func TestDegiroSideFromQuantitySign(t *testing.T) {
	input := "Date,Time,Product,ISIN,Venue,Quantity,Price,Value,Transaction and/or third party costs,Order ID\n" +
		"01-03-2024,09:15,ASML,NL0010273215,EAM,-5,600.00,-3000.00,-2.50,abc123\n" +
		"02-03-2024,10:00,ASML,NL0010273215,EAM,5,598.00,2990.00,-2.50,abc124\n"

	res := mustParse(t, domain.SourceDegiro, input)

	require.Len(t, res.Trades, 2)
	assert.Empty(t, res.Warnings)

	sell, buy := res.Trades[0], res.Trades[1]
	assert.Equal(t, domain.SideSell, sell.Side)
	assert.Equal(t, 5.0, sell.Quantity)
	assert.Equal(t, 2.50, sell.Fees)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), sell.Date)
	assert.Equal(t, domain.SideBuy, buy.Side)
}

func TestKrakenPairBecomesCanonicalTicker(t *testing.T) {
	input := "txid,ordertxid,pair,time,type,ordertype,price,cost,fee,vol\n" +
		"TX1,OTX1,XBTUSD,2024-01-05 12:00:00,buy,limit,42000.0,420.0,0.5,0.01\n"

	res := mustParse(t, domain.SourceKraken, input)

	require.Len(t, res.Trades, 1)
	tr := res.Trades[0]
	assert.Equal(t, "XBT-USD", tr.Ticker)
	assert.Equal(t, domain.SideBuy, tr.Side)
	assert.Equal(t, 0.01, tr.Quantity)
	assert.Equal(t, 42000.0, tr.Price)
	assert.Equal(t, "USD", tr.Currency)
	assert.Equal(t, 0.5, tr.Fees)
}

func TestKoinlyExchangeLegsRebuildTrade(t *testing.T) {
	input := "Koinly Date,Pair,Type,Label,Sent Amount,Sent Currency,Received Amount,Received Currency,Fee Amount,Fee Currency\n" +
		"2024-01-15 10:00:00,BTC/USD,trade,,45000,USD,1,BTC,10,USD\n" +
		"2024-01-16 10:00:00,,deposit,deposit,,,500,USD,,\n"

	res := mustParse(t, domain.SourceKoinly, input)

	require.Len(t, res.Trades, 1)
	assert.Empty(t, res.Warnings)

	tr := res.Trades[0]
	assert.Equal(t, "BTC", tr.Ticker)
	assert.Equal(t, domain.SideBuy, tr.Side)
	assert.Equal(t, 1.0, tr.Quantity)
	assert.Equal(t, 45000.0, tr.Price)
	assert.Equal(t, "USD", tr.Currency)
	assert.Equal(t, 10.0, tr.Fees)
}

func TestIBKRFlexSideFromSigns(t *testing.T) {
	input := "Symbol,Date/Time,Quantity,T.Price,Proceeds,Comm/Fee,Currency\n" +
		"AAPL,2024-02-01 09:30:00,-10,190.5,1905,-1.5,USD\n" +
		"MSFT,2024-02-01 10:00:00,5,400.0,-2000,-1.0,USD\n"

	res := mustParse(t, domain.SourceIBKRFlex, input)

	require.Len(t, res.Trades, 2)
	assert.Equal(t, domain.SideSell, res.Trades[0].Side)
	assert.Equal(t, 10.0, res.Trades[0].Quantity)
	assert.Equal(t, 0.0, res.Trades[0].Fees)
	assert.Equal(t, domain.SideBuy, res.Trades[1].Side)
}

func TestInteractiveInvestorDebitCreditSides(t *testing.T) {
	input := "Date,Settlement Date,Symbol,Sedol,Quantity,Price,Description,Debit,Credit,Running Balance\n" +
		"03/04/2024,05/04/2024,VOD,BH4HKS3,100,0.70,Bought 100 Vodafone,70.00,,930.00\n" +
		"10/04/2024,12/04/2024,VOD,BH4HKS3,50,0.72,Sold 50 Vodafone,,36.00,966.00\n"

	res := mustParse(t, domain.SourceInteractiveInvestor, input)

	require.Len(t, res.Trades, 2)
	// Day-first locale: 03/04/2024 is the 3rd of April.
	assert.Equal(t, time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC), res.Trades[0].Date)
	assert.Equal(t, domain.SideBuy, res.Trades[0].Side)
	assert.Equal(t, domain.SideSell, res.Trades[1].Side)
	assert.Equal(t, "GBP", res.Trades[0].Currency)
}

func TestTurboTaxDisposalsAreSales(t *testing.T) {
	input := "Currency Name,Purchase Date,Amount,Cost Basis,Date Sold,Proceeds\n" +
		"Bitcoin BTC,01/10/2023,1.5,30000,02/15/2024,45000\n"

	res := mustParse(t, domain.SourceTurboTax, input)

	require.Len(t, res.Trades, 1)
	tr := res.Trades[0]
	assert.Equal(t, domain.SideSell, tr.Side)
	assert.Equal(t, "BTC", tr.Ticker)
	assert.Equal(t, 1.5, tr.Quantity)
	// No unit price column; derived from proceeds over quantity.
	assert.Equal(t, 30000.0, tr.Price)
	assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), tr.Date)
}

func TestParseUndecodableFileFails(t *testing.T) {
	a := Lookup(domain.SourceCoinbase)
	require.NotNil(t, a)
	_, err := a.Parse(context.Background(), strings.NewReader(""), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), string(domain.SourceCoinbase))
}
