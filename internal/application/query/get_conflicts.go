// Package query contains read operations (CQRS - Queries).
package query

import (
	"context"
	"time"

	"github.com/contact-hub/contact-dedup-hub/internal/domain/phonebook"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET CONFLICTS QUERY
// Возвращает сводку конфликтов для отчёта оператору: кто с кем
// конфликтует и что уже разрешено слиянием.
// ══════════════════════════════════════════════════════════════════════════════

// GetConflictsQuery содержит параметры запроса конфликтов.
type GetConflictsQuery struct {
	// OnlyUnresolved - вернуть только неразрешённые конфликты.
	OnlyUnresolved bool
}

// ConflictDTO - DTO одного конфликта для отчётности.
type ConflictDTO struct {
	// ID - идентификатор конфликта.
	ID string `json:"id"`

	// Source - отображаемая форма уже принятого контакта.
	Source string `json:"source"`

	// Dest - отображаемая форма отклонённого дубликата.
	Dest string `json:"dest"`

	// Resolved - разрешён ли конфликт слиянием.
	Resolved bool `json:"resolved"`

	// DetectedAt - момент обнаружения.
	DetectedAt time.Time `json:"detected_at"`
}

// GetConflictsHandler обрабатывает запрос конфликтов.
type GetConflictsHandler struct {
	book *phonebook.Phonebook
}

// NewGetConflictsHandler создаёт обработчик запроса.
func NewGetConflictsHandler(book *phonebook.Phonebook) *GetConflictsHandler {
	return &GetConflictsHandler{book: book}
}

// Execute возвращает сводку конфликтов в порядке обнаружения.
func (h *GetConflictsHandler) Execute(ctx context.Context, q GetConflictsQuery) ([]ConflictDTO, error) {
	conflicts := h.book.Conflicts()
	result := make([]ConflictDTO, 0, len(conflicts))
	for _, c := range conflicts {
		if q.OnlyUnresolved && c.Resolved {
			continue
		}
		result = append(result, ConflictDTO{
			ID:         c.ID,
			Source:     c.Source.DisplayString(),
			Dest:       c.Dest.DisplayString(),
			Resolved:   c.Resolved,
			DetectedAt: c.DetectedAt,
		})
	}
	return result, nil
}
