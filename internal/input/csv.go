// Package input loads process submissions from external formats. Loaders
// check shape only; range validation happens when the entries are admitted
// to a working set.
package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/janjanko/fcfs/internal/workset"
)

// ErrMalformedInput wraps every parse failure from the loaders.
var ErrMalformedInput = errors.New("malformed process input")

// ReadCSV parses process rows of the form "name,arrival,burst" or
// "arrival,burst". Blank lines and lines starting with '#' are skipped.
func ReadCSV(r io.Reader) ([]workset.Entry, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var entries []workset.Entry
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
		}
		row++
		entry, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedInput, row, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseRow(record []string) (workset.Entry, error) {
	var e workset.Entry
	switch len(record) {
	case 2:
	case 3:
		e.Name = strings.TrimSpace(record[0])
		record = record[1:]
	default:
		return e, fmt.Errorf("want 2 or 3 fields, got %d", len(record))
	}

	arrival, err := strconv.Atoi(strings.TrimSpace(record[0]))
	if err != nil {
		return e, fmt.Errorf("arrival %q is not an integer", record[0])
	}
	burst, err := strconv.Atoi(strings.TrimSpace(record[1]))
	if err != nil {
		return e, fmt.Errorf("burst %q is not an integer", record[1])
	}
	e.Arrival = arrival
	e.Burst = burst
	return e, nil
}
