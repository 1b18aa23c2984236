package eventhandler

import (
	"context"
	"log/slog"

	"github.com/contact-hub/contact-dedup-hub/internal/domain/phonebook"
	"github.com/contact-hub/contact-dedup-hub/internal/domain/shared"
)

// ═══════════════════════════════════════════════════════════════════════════
// ON CONFLICT RESOLVED HANDLER
// Показывает оператору итог слияния: во что превратился контакт после
// переноса полей из дубликата.
// ═══════════════════════════════════════════════════════════════════════════

// OnConflictResolvedHandler логирует результат разрешения конфликта.
type OnConflictResolvedHandler struct {
	logger *slog.Logger
}

// NewOnConflictResolvedHandler создаёт обработчик.
func NewOnConflictResolvedHandler(logger *slog.Logger) *OnConflictResolvedHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &OnConflictResolvedHandler{logger: logger}
}

// Name возвращает имя обработчика для логирования.
func (h *OnConflictResolvedHandler) Name() string {
	return "on_conflict_resolved"
}

// Handle обрабатывает событие.
func (h *OnConflictResolvedHandler) Handle(ctx context.Context, event shared.Event) error {
	e, ok := event.(phonebook.ConflictResolvedEvent)
	if !ok {
		return nil
	}
	h.logger.Warn("contact information changed",
		"contact", e.Conflict.Source.DisplayString(),
		"conflict_id", e.Conflict.ID,
	)
	return nil
}
