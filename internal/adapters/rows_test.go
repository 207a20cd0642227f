package adapters

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRowsCommaCSV(t *testing.T) {
	in := "Date,Ticker,Quantity\n2024-01-02,AAPL,10\n2024-01-03,MSFT,5\n"
	recs, err := readRows(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "AAPL", recs[0]["Ticker"])
	assert.Equal(t, "5", recs[1]["Quantity"])
}

func TestReadRowsSemicolonCSV(t *testing.T) {
	in := "Date;Ticker;Quantity\n2024-01-02;AAPL;10\n"
	recs, err := readRows(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "AAPL", recs[0]["Ticker"])
}

func TestReadRowsStripsBOM(t *testing.T) {
	in := "\ufeffDate,Ticker\n2024-01-02,AAPL\n"
	recs, err := readRows(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "2024-01-02", recs[0]["Date"])
}

func TestReadRowsRaggedAndBlankRows(t *testing.T) {
	in := "Date,Ticker,Quantity\n2024-01-02,AAPL\n\n2024-01-03,MSFT,5\n"
	recs, err := readRows(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "", recs[0]["Quantity"])
	assert.Equal(t, "5", recs[1]["Quantity"])
}

func TestReadRowsSkipsPreamble(t *testing.T) {
	// Some statements carry a one-cell title line above the real header.
	in := "Account statement\nDate,Ticker,Quantity\n2024-01-02,AAPL,10\n"
	recs, err := readRows(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "AAPL", recs[0]["Ticker"])
}

func TestReadRowsRejectsBinary(t *testing.T) {
	blob := bytes.Repeat([]byte{0x00, 0x01, 0x02, 0x03}, 64)
	_, err := readRows(bytes.NewReader(blob))
	assert.Error(t, err)
}

func TestReadRowsRejectsEmpty(t *testing.T) {
	_, err := readRows(strings.NewReader(""))
	assert.Error(t, err)
}

func TestDetectDelimiter(t *testing.T) {
	assert.Equal(t, ',', detectDelimiter("a,b,c"))
	assert.Equal(t, ';', detectDelimiter("a;b;c"))
	assert.Equal(t, '\t', detectDelimiter("a\tb\tc"))
	assert.Equal(t, '|', detectDelimiter("a|b|c"))
	assert.Equal(t, ',', detectDelimiter("justone"))
}

func TestReadSample(t *testing.T) {
	var b strings.Builder
	b.WriteString("Date,Ticker\n")
	for i := 0; i < 20; i++ {
		b.WriteString("2024-01-02,AAPL\n")
	}
	sample := ReadSample([]byte(b.String()), 3)
	assert.Len(t, strings.Split(sample, "\n"), 3)
	assert.Contains(t, sample, "Date,Ticker")

	// Default line count applies when zero is passed.
	def := ReadSample([]byte(b.String()), 0)
	assert.Contains(t, def, "Date,Ticker")
}
