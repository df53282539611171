// Package table holds the row/column model shared by the order export and
// the address roster. Loaders for other formats (spreadsheets, alternative
// encodings) are expected to produce the same shape.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// New builds a Table from a header and data rows. Column names are trimmed;
// duplicate names keep the first position.
func New(columns []string, rows [][]string) *Table {
	t := &Table{
		columns: make([]string, 0, len(columns)),
		index:   make(map[string]int, len(columns)),
		rows:    rows,
	}
	for i, c := range columns {
		c = strings.TrimSpace(c)
		t.columns = append(t.columns, c)
		if _, ok := t.index[c]; !ok {
			t.index[c] = i
		}
	}
	return t
}

func (t *Table) Columns() []string { return t.columns }

func (t *Table) Len() int { return len(t.rows) }

func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Value returns the trimmed cell at (row, column). A missing column or a row
// too short to reach it yields the empty string, matching how absent fields
// are treated upstream.
func (t *Table) Value(row int, column string) string {
	col, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.rows) {
		return ""
	}
	cells := t.rows[row]
	if col >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[col])
}

// LoadCSV reads a comma-delimited file with a header row into a Table. A
// leading UTF-8 byte-order marker on the header is stripped. Ragged rows are
// tolerated; short rows read as empty cells.
func LoadCSV(path string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer file.Close()

	return ReadCSV(file, path)
}

// ReadCSV is LoadCSV over an already-open reader; name is used in errors.
func ReadCSV(r io.Reader, name string) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("file %s is empty", name)
		}
		return nil, fmt.Errorf("failed to read header from %s: %w", name, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record from %s: %w", name, err)
		}
		rows = append(rows, record)
	}

	return New(header, rows), nil
}
