package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"github.com/contact-hub/contact-dedup-hub/internal/domain/contact"
)

// header - фиксированный заголовок выгрузки адресной книги.
var header = []string{"lastname", "firstname", "surname", "organization", "position", "phone", "email"}

// Writer writes the deduplicated record set to a CSV file.
type Writer struct {
	path      string
	delimiter rune
}

// NewWriter creates a Writer for the given file path.
// The ".csv" extension is appended when missing.
func NewWriter(path string, delimiter rune) *Writer {
	if !strings.HasSuffix(path, ".csv") {
		path += ".csv"
	}
	if delimiter == 0 {
		delimiter = ','
	}
	return &Writer{path: path, delimiter: delimiter}
}

// Path returns the effective output path.
func (w *Writer) Path() string {
	return w.path
}

// WriteAll writes the header and one row per contact, in the given order.
// Phone and e-mail are rendered in their display forms; absent fields
// become empty cells.
func (w *Writer) WriteAll(contacts []*contact.Contact) error {
	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("csvfile: create %s: %w", w.path, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	writer.Comma = w.delimiter

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("csvfile: write header: %w", err)
	}
	for _, c := range contacts {
		if err := writer.Write(toRow(c)); err != nil {
			return fmt.Errorf("csvfile: write row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("csvfile: flush %s: %w", w.path, err)
	}
	return nil
}

// toRow maps a contact to its output row.
func toRow(c *contact.Contact) []string {
	var phone, email string
	if c.Phone != nil {
		phone = c.Phone.String()
	}
	if c.Email != nil {
		email = c.Email.String()
	}
	return []string{c.LastName, c.FirstName, c.MiddleName, c.Org, c.Position, phone, email}
}
