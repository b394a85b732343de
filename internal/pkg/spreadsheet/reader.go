// Package spreadsheet reads header-keyed rows from the first sheet of an .xlsx workbook.
package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrEmptyWorkbook is returned when the workbook has no sheet or no header row
	ErrEmptyWorkbook = errors.New("spreadsheet has no header row")
	// ErrMissingColumn is returned when a required header is absent
	ErrMissingColumn = errors.New("spreadsheet is missing a required column")
)

// Row is one data row keyed by normalised header name
type Row struct {
	// Number is the 1-based sheet row, header included
	Number int
	Values map[string]string
}

// Get returns the trimmed cell under header, or "" when absent
func (r Row) Get(header string) string {
	return r.Values[NormalizeHeader(header)]
}

// NormalizeHeader lower-cases and trims a header cell, collapsing inner whitespace
func NormalizeHeader(h string) string {
	return strings.Join(strings.Fields(strings.ToLower(h)), " ")
}

// Read parses the first sheet of the workbook in r. Headers are matched
// case-insensitively; blank rows are skipped; every name in required must be present.
func Read(r io.Reader, required ...string) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyWorkbook
	}

	raw, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	headerAt := -1
	for i, cells := range raw {
		if !blank(cells) {
			headerAt = i
			break
		}
	}
	if headerAt < 0 {
		return nil, ErrEmptyWorkbook
	}

	headers := make([]string, len(raw[headerAt]))
	present := make(map[string]bool, len(headers))
	for i, h := range raw[headerAt] {
		headers[i] = NormalizeHeader(h)
		present[headers[i]] = true
	}
	for _, name := range required {
		if !present[NormalizeHeader(name)] {
			return nil, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
	}

	rows := make([]Row, 0, len(raw)-headerAt-1)
	for i := headerAt + 1; i < len(raw); i++ {
		cells := raw[i]
		if blank(cells) {
			continue
		}
		values := make(map[string]string, len(headers))
		for c, h := range headers {
			if h == "" || c >= len(cells) {
				continue
			}
			values[h] = strings.TrimSpace(cells[c])
		}
		rows = append(rows, Row{Number: i + 1, Values: values})
	}
	return rows, nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
