package phonebook

import (
	"github.com/contact-hub/contact-dedup-hub/internal/domain/contact"
	"github.com/contact-hub/contact-dedup-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN EVENTS
// События прогона загрузки, на которые реагируют обработчики отчётности
// (предупреждения оператору о дубликатах и результатах слияния).
// ══════════════════════════════════════════════════════════════════════════════

// ContactAcceptedEvent - контакт принят в книгу без конфликта.
type ContactAcceptedEvent struct {
	shared.BaseEvent
	Contact *contact.Contact
}

// NewContactAcceptedEvent создаёт событие принятия контакта.
func NewContactAcceptedEvent(c *contact.Contact) ContactAcceptedEvent {
	return ContactAcceptedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventContactAccepted, c.NameKey()),
		Contact:   c,
	}
}

// Payload возвращает данные события для сериализации.
func (e ContactAcceptedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"contact": e.Contact.DisplayString(),
	}
}

// DuplicateDetectedEvent - входящий контакт распознан как дубликат.
type DuplicateDetectedEvent struct {
	shared.BaseEvent
	Conflict *Conflict
}

// NewDuplicateDetectedEvent создаёт событие обнаружения дубликата.
func NewDuplicateDetectedEvent(c *Conflict) DuplicateDetectedEvent {
	return DuplicateDetectedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventDuplicateDetected, c.ID),
		Conflict:  c,
	}
}

// Payload возвращает данные события для сериализации.
func (e DuplicateDetectedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"source": e.Conflict.Source.DisplayString(),
		"dest":   e.Conflict.Dest.DisplayString(),
	}
}

// ConflictResolvedEvent - конфликт разрешён слиянием полей.
type ConflictResolvedEvent struct {
	shared.BaseEvent
	Conflict *Conflict
}

// NewConflictResolvedEvent создаёт событие разрешения конфликта.
func NewConflictResolvedEvent(c *Conflict) ConflictResolvedEvent {
	return ConflictResolvedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventConflictResolved, c.ID),
		Conflict:  c,
	}
}

// Payload возвращает данные события для сериализации.
func (e ConflictResolvedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"merged": e.Conflict.Source.DisplayString(),
	}
}
