// Package eventhandler содержит обработчики доменных событий.
// Обработчики - "реактивная" часть системы: они превращают события
// прогона загрузки в предупреждения оператору, не вмешиваясь в саму
// политику поиска дубликатов.
package eventhandler

import (
	"context"
	"log/slog"

	"github.com/contact-hub/contact-dedup-hub/internal/domain/phonebook"
	"github.com/contact-hub/contact-dedup-hub/internal/domain/shared"
)

// ═══════════════════════════════════════════════════════════════════════════
// ON DUPLICATE DETECTED HANDLER
// Обрабатывает событие обнаружения дубликата: оператор должен увидеть,
// какой из принятых контактов конфликтует с входящей записью, до того
// как будет выполнено слияние.
// ═══════════════════════════════════════════════════════════════════════════

// OnDuplicateDetectedHandler логирует обнаруженные дубликаты.
type OnDuplicateDetectedHandler struct {
	logger *slog.Logger
}

// NewOnDuplicateDetectedHandler создаёт обработчик.
func NewOnDuplicateDetectedHandler(logger *slog.Logger) *OnDuplicateDetectedHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &OnDuplicateDetectedHandler{logger: logger}
}

// Name возвращает имя обработчика для логирования.
func (h *OnDuplicateDetectedHandler) Name() string {
	return "on_duplicate_detected"
}

// Handle обрабатывает событие.
func (h *OnDuplicateDetectedHandler) Handle(ctx context.Context, event shared.Event) error {
	e, ok := event.(phonebook.DuplicateDetectedEvent)
	if !ok {
		return nil
	}
	h.logger.Warn("duplicate contact found",
		"source", e.Conflict.Source.DisplayString(),
		"dest", e.Conflict.Dest.DisplayString(),
		"conflict_id", e.Conflict.ID,
	)
	return nil
}
