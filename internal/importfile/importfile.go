// Package importfile decodes uploaded observation files into raw rows.
// It checks structure only; row semantics are validated by the importer.
package importfile

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pgic/pgic-backend/internal/domain"
)

// Column names of the tabular layout.
const (
	ColSeriesCode = "series_code"
	ColPeriodDate = "period_date"
	ColValue      = "value"
)

// ErrMalformed reports a file that cannot be decoded at all.
var ErrMalformed = errors.New("malformed import file")

// Row is one undecoded input row. Line is 1-based in the source file
// (CSV: physical line; JSON: array position).
type Row struct {
	Line       int
	SeriesCode string
	PeriodDate string
	Value      string
}

// Parse decodes content according to format.
func Parse(format domain.ImportFormat, content []byte) ([]Row, error) {
	switch format {
	case domain.ImportFormatCSV:
		return parseCSV(content)
	case domain.ImportFormatJSON:
		return parseJSON(content)
	}
	return nil, fmt.Errorf("%w: unsupported format %q", ErrMalformed, format)
}

func parseCSV(content []byte) ([]Row, error) {
	content = bytes.TrimPrefix(content, []byte("\ufeff"))
	r := csv.NewReader(bytes.NewReader(content))
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty file", ErrMalformed)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformed, err)
	}

	idx := map[string]int{}
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, col := range []string{ColSeriesCode, ColPeriodDate, ColValue} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformed, col)
		}
	}

	field := func(rec []string, col string) string {
		i := idx[col]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var rows []Row
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		line, _ := r.FieldPos(0)
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		rows = append(rows, Row{
			Line:       line,
			SeriesCode: field(rec, ColSeriesCode),
			PeriodDate: field(rec, ColPeriodDate),
			Value:      field(rec, ColValue),
		})
	}
	return rows, nil
}

type jsonRow struct {
	SeriesCode string          `json:"series_code"`
	PeriodDate string          `json:"period_date"`
	Value      json.RawMessage `json:"value"`
}

func parseJSON(content []byte) ([]Row, error) {
	var raw []jsonRow
	dec := json.NewDecoder(bytes.NewReader(content))
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	// The array must be the whole document.
	if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, fmt.Errorf("%w: unexpected data after the array", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: after the array: %v", ErrMalformed, err)
	}

	rows := make([]Row, 0, len(raw))
	for i, jr := range raw {
		rows = append(rows, Row{
			Line:       i + 1,
			SeriesCode: strings.TrimSpace(jr.SeriesCode),
			PeriodDate: strings.TrimSpace(jr.PeriodDate),
			Value:      rawValue(jr.Value),
		})
	}
	return rows, nil
}

// rawValue keeps the literal digits of a JSON number and unquotes strings,
// so no value passes through float64.
func rawValue(v json.RawMessage) string {
	s := strings.TrimSpace(string(v))
	if s == "null" {
		return ""
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(v, &str); err == nil {
			return strings.TrimSpace(str)
		}
	}
	return s
}
