package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/contact-hub/contact-dedup-hub/internal/domain/contact"
	"github.com/contact-hub/contact-dedup-hub/internal/domain/phonebook"
	"github.com/contact-hub/contact-dedup-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// RESOLVE CONFLICTS COMMAND
// Merges every unresolved duplicate pair recorded during ingestion.
// The merge is field-level, last-writer-wins, biased toward filling gaps:
// a populated field is never blanked by an empty incoming one.
// ══════════════════════════════════════════════════════════════════════════════

// ResolveConflictsCommand contains the data needed to resolve conflicts.
type ResolveConflictsCommand struct {
	// Ignore lists contact fields excluded from the merge.
	Ignore []contact.Field
}

// Validate validates the command.
func (c ResolveConflictsCommand) Validate() error {
	for _, f := range c.Ignore {
		if !f.IsValid() {
			return fmt.Errorf("resolve_conflicts: unknown field %q", f)
		}
	}
	return nil
}

// ResolveConflictsResult contains the outcome of conflict resolution.
type ResolveConflictsResult struct {
	// Resolved is the number of conflicts merged during this run.
	Resolved int
}

// ResolveConflictsHandler executes conflict resolution.
type ResolveConflictsHandler struct {
	book   *phonebook.Phonebook
	bus    shared.EventBus
	logger *slog.Logger
}

// NewResolveConflictsHandler creates the handler.
func NewResolveConflictsHandler(book *phonebook.Phonebook, bus shared.EventBus, logger *slog.Logger) *ResolveConflictsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ResolveConflictsHandler{book: book, bus: bus, logger: logger}
}

// Execute merges all unresolved conflicts in detection order.
func (h *ResolveConflictsHandler) Execute(ctx context.Context, cmd ResolveConflictsCommand) (ResolveConflictsResult, error) {
	if err := cmd.Validate(); err != nil {
		return ResolveConflictsResult{}, shared.WrapError("phonebook", "ResolveConflicts", shared.ErrValidation, "invalid command", err)
	}

	var result ResolveConflictsResult
	for _, conflict := range h.book.Conflicts() {
		if conflict.Resolved {
			continue
		}
		conflict.Merge(cmd.Ignore...)
		result.Resolved++

		if h.bus != nil {
			if err := h.bus.Publish(ctx, phonebook.NewConflictResolvedEvent(conflict)); err != nil {
				h.logger.Error("publishing event", "event_type", shared.EventConflictResolved, "error", err)
			}
		}
	}

	h.logger.Info("conflicts resolved", "count", result.Resolved)
	return result, nil
}
