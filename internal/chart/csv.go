package chart

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

const (
	numFields = 3
	colName   = 0
	colDesc   = 1
	colOpen   = 2
)

// ReadEntries reads chart.csv.
func ReadEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chart CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// WriteEntries writes chart.csv.
func WriteEntries(w io.Writer, entries []Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"account", "description", "opening_balance"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colName] = e.Name
	row[colDesc] = e.Description
	if !e.Open.IsZero() {
		row[colOpen] = e.Open.StringFixed(2)
	}
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	open := decimal.Zero
	if record[colOpen] != "" {
		var err error
		open, err = decimal.NewFromString(record[colOpen])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing opening_balance %q: %w", record[colOpen], err)
		}
	}

	return Entry{
		Name:        record[colName],
		Description: record[colDesc],
		Open:        open,
	}, nil
}
