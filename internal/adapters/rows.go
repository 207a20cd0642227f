package adapters

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// xlsxMagic is the zip signature spreadsheet exports start with.
var xlsxMagic = []byte{0x50, 0x4b, 0x03, 0x04}

// readRows decodes the whole file into header-keyed records. CSV-like text
// and XLSX workbooks are both accepted; several brokerages offer only
// spreadsheet exports. Failure here is the one fatal condition an adapter
// reports: no partial result is meaningful for an undecodable file.
func readRows(r io.Reader) ([]RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	if bytes.HasPrefix(data, xlsxMagic) {
		return readXLSXRows(data)
	}
	return readCSVRows(data)
}

func readCSVRows(data []byte) ([]RawRecord, error) {
	text := stripBOM(string(data))
	if !isMostlyText(text) {
		return nil, fmt.Errorf("file is not decodable as text")
	}

	firstLine := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		firstLine = text[:i]
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = detectDelimiter(firstLine)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	all, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("tokenizing csv: %w", err)
	}
	return recordsFromCells(all), nil
}

func readXLSXRows(data []byte) ([]RawRecord, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	return recordsFromCells(cells), nil
}

// recordsFromCells keys each data row by the header row. The header is the
// first row with at least two non-blank cells; ragged rows are tolerated and
// blank rows dropped.
func recordsFromCells(cells [][]string) []RawRecord {
	var header []string
	start := 0
	for i, row := range cells {
		if countNonBlank(row) >= 2 {
			header = make([]string, len(row))
			for j, h := range row {
				header[j] = strings.TrimSpace(h)
			}
			start = i + 1
			break
		}
	}
	if header == nil {
		return nil
	}

	records := make([]RawRecord, 0, len(cells)-start)
	for _, row := range cells[start:] {
		if countNonBlank(row) == 0 {
			continue
		}
		rec := make(RawRecord, len(header))
		for j, name := range header {
			if name == "" {
				continue
			}
			if j < len(row) {
				rec[name] = strings.TrimSpace(row[j])
			} else {
				rec[name] = ""
			}
		}
		records = append(records, rec)
	}
	return records
}

// detectDelimiter picks the most frequent candidate separator in the header
// line. Continental exports routinely use semicolons.
func detectDelimiter(headerLine string) rune {
	best, bestCount := ',', 0
	for _, d := range []rune{',', ';', '\t', '|'} {
		if c := strings.Count(headerLine, string(d)); c > bestCount {
			best, bestCount = d, c
		}
	}
	return best
}

func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\ufeff")
}

// isMostlyText rejects binary blobs that are neither XLSX nor CSV.
func isMostlyText(s string) bool {
	if len(s) == 0 {
		return false
	}
	sample := s
	if len(sample) > 4096 {
		sample = sample[:4096]
	}
	binary := 0
	for _, b := range []byte(sample) {
		if b == 0 || (b < 0x09 && b != 0) {
			binary++
		}
	}
	return binary*50 < len(sample)
}

func countNonBlank(row []string) int {
	n := 0
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			n++
		}
	}
	return n
}

// ReadSample extracts the detection sample from raw file bytes: the header
// line plus the first few data rows. For workbooks the leading rows are
// re-joined with commas so header heuristics behave identically.
func ReadSample(data []byte, lines int) string {
	if lines <= 0 {
		lines = 8
	}
	if bytes.HasPrefix(data, xlsxMagic) {
		f, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return ""
		}
		defer f.Close()
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return ""
		}
		cells, err := f.GetRows(sheets[0])
		if err != nil {
			return ""
		}
		var b strings.Builder
		for i, row := range cells {
			if i >= lines {
				break
			}
			b.WriteString(strings.Join(row, ","))
			b.WriteByte('\n')
		}
		return b.String()
	}

	text := stripBOM(string(data))
	split := strings.SplitN(text, "\n", lines+1)
	if len(split) > lines {
		split = split[:lines]
	}
	return strings.Join(split, "\n")
}
