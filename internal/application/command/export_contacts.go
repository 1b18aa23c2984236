package command

import (
	"context"
	"log/slog"

	"github.com/contact-hub/contact-dedup-hub/internal/domain/contact"
	"github.com/contact-hub/contact-dedup-hub/internal/domain/phonebook"
	"github.com/contact-hub/contact-dedup-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// EXPORT CONTACTS COMMAND
// Writes the accepted (post-merge) record set to the configured sink,
// preserving insertion order.
// ══════════════════════════════════════════════════════════════════════════════

// ContactSink persists the deduplicated record set.
type ContactSink interface {
	// WriteAll writes all contacts in the given order.
	WriteAll(contacts []*contact.Contact) error
}

// ExportContactsResult contains the outcome of the export.
type ExportContactsResult struct {
	// Written is the number of exported records.
	Written int
}

// ExportContactsHandler executes the export.
type ExportContactsHandler struct {
	book   *phonebook.Phonebook
	sink   ContactSink
	logger *slog.Logger
}

// NewExportContactsHandler creates the handler.
func NewExportContactsHandler(book *phonebook.Phonebook, sink ContactSink, logger *slog.Logger) *ExportContactsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportContactsHandler{book: book, sink: sink, logger: logger}
}

// Execute writes the accepted contacts to the sink.
func (h *ExportContactsHandler) Execute(ctx context.Context) (ExportContactsResult, error) {
	contacts := h.book.Contacts()
	if err := h.sink.WriteAll(contacts); err != nil {
		return ExportContactsResult{}, shared.WrapError("phonebook", "ExportContacts", shared.ErrStorage, "writing records", err)
	}

	h.logger.Info("export completed", "records", len(contacts))
	return ExportContactsResult{Written: len(contacts)}, nil
}
