// Package command contains write operations (CQRS - Commands).
// Commands are responsible for changing the state of the system:
// ingesting raw rows into the phonebook, merging duplicate pairs and
// exporting the deduplicated record set.
package command

import (
	"context"
	"log/slog"
	"strings"

	"github.com/contact-hub/contact-dedup-hub/internal/domain/contact"
	"github.com/contact-hub/contact-dedup-hub/internal/domain/phonebook"
	"github.com/contact-hub/contact-dedup-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// IMPORT CONTACTS COMMAND
// Loads raw tabular rows, builds contact records with lenient field parsing
// and feeds them through the phonebook matching policy.
// ══════════════════════════════════════════════════════════════════════════════

// contactColumns is the expected column count:
// last name, first name, middle name, organization, position, phone, e-mail.
const contactColumns = 7

// RowSource supplies raw tabular rows, header included.
type RowSource interface {
	// ReadAll returns every row of the source.
	ReadAll() ([][]string, error)
}

// ImportContactsResult contains the outcome of an ingestion run.
type ImportContactsResult struct {
	// RowsRead is the number of data rows read (header excluded).
	RowsRead int

	// Accepted is the number of contacts accepted without conflict.
	Accepted int

	// Conflicts is the number of duplicate pairs recorded.
	Conflicts int

	// Skipped is the number of structurally malformed rows dropped.
	Skipped int
}

// ImportContactsHandler executes the ingestion run.
type ImportContactsHandler struct {
	book   *phonebook.Phonebook
	source RowSource
	bus    shared.EventBus
	logger *slog.Logger
}

// NewImportContactsHandler creates the handler.
func NewImportContactsHandler(
	book *phonebook.Phonebook,
	source RowSource,
	bus shared.EventBus,
	logger *slog.Logger,
) *ImportContactsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImportContactsHandler{book: book, source: source, bus: bus, logger: logger}
}

// Execute reads all rows, skips the header, and adds a contact per row.
// A malformed row (fewer than 7 columns) is skipped with a warning and
// never aborts the run. Field-level parse failures degrade to absent
// phone/e-mail values.
func (h *ImportContactsHandler) Execute(ctx context.Context) (ImportContactsResult, error) {
	rows, err := h.source.ReadAll()
	if err != nil {
		return ImportContactsResult{}, shared.WrapError("phonebook", "ImportContacts", shared.ErrInvalidInput, "reading rows", err)
	}
	if len(rows) > 0 {
		rows = rows[1:] // header
	}

	var result ImportContactsResult
	for i, row := range rows {
		result.RowsRead++
		if len(row) < contactColumns {
			result.Skipped++
			h.logger.Warn("skipping malformed row", "row", i+2, "columns", len(row))
			continue
		}

		c := rowToContact(row)
		if h.book.Add(c) {
			result.Accepted++
			h.publish(ctx, phonebook.NewContactAcceptedEvent(c))
			continue
		}

		result.Conflicts++
		conflicts := h.book.Conflicts()
		h.publish(ctx, phonebook.NewDuplicateDetectedEvent(conflicts[len(conflicts)-1]))
	}

	h.logger.Info("import completed",
		"rows", result.RowsRead,
		"accepted", result.Accepted,
		"conflicts", result.Conflicts,
		"skipped", result.Skipped,
	)
	return result, nil
}

// rowToContact builds a contact from a raw row.
// The three leading name columns are joined and re-split on whitespace:
// source files mix single-column and pre-split full names.
func rowToContact(row []string) *contact.Contact {
	names := strings.Fields(strings.Join(row[:3], " "))

	c := &contact.Contact{
		Org:      strings.TrimSpace(row[3]),
		Position: strings.TrimSpace(row[4]),
	}
	if len(names) > 0 {
		c.LastName = names[0]
	}
	if len(names) > 1 {
		c.FirstName = names[1]
	}
	if len(names) > 2 {
		c.MiddleName = names[2]
	}
	if phone, ok := contact.ParseNational(row[5]); ok {
		c.Phone = &phone
	}
	if email, ok := contact.ParseEmail(row[6]); ok {
		c.Email = &email
	}
	return c
}

// publish delivers an event; handler failures are logged, not propagated.
func (h *ImportContactsHandler) publish(ctx context.Context, event shared.Event) {
	if h.bus == nil {
		return
	}
	if err := h.bus.Publish(ctx, event); err != nil {
		h.logger.Error("publishing event", "event_type", event.EventType(), "error", err)
	}
}
