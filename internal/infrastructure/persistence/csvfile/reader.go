// Package csvfile implements CSV persistence adapters for Contact Dedup Hub.
// It reads raw tabular rows for ingestion and writes the deduplicated
// record set back, rendering phone/e-mail in their display forms.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
)

// Reader reads raw contact rows from a CSV file.
type Reader struct {
	path      string
	delimiter rune
}

// NewReader creates a Reader for the given file path.
// An empty delimiter falls back to comma.
func NewReader(path string, delimiter rune) *Reader {
	if delimiter == 0 {
		delimiter = ','
	}
	return &Reader{path: path, delimiter: delimiter}
}

// ReadAll returns every row of the file, header included.
// Rows may have a variable number of columns; structural handling of
// short rows is the caller's concern.
func (r *Reader) ReadAll() ([][]string, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("csvfile: open %s: %w", r.path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = r.delimiter
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvfile: read %s: %w", r.path, err)
	}
	return rows, nil
}
