// Package phonebook содержит агрегат адресной книги: упорядоченный список
// принятых контактов, индекс поиска дубликатов и список конфликтов.
package phonebook

import (
	"github.com/contact-hub/contact-dedup-hub/internal/domain/contact"
)

// ══════════════════════════════════════════════════════════════════════════════
// MATCHING PHILOSOPHY
//
// Каналы связи (телефон, почта) - сильный сигнал идентичности, они
// проверяются первыми: совпадение почты имеет приоритет над телефоном.
// Совпадение одной лишь пары фамилия+имя - слабый сигнал, поэтому оно
// требует дополнительной проверки по отчеству: разные непустые отчества
// означают разных людей.
// ══════════════════════════════════════════════════════════════════════════════

// Phonebook - адресная книга одного прогона загрузки.
// Не потокобезопасна: весь прогон однопоточный и синхронный.
type Phonebook struct {
	contacts []*contact.Contact

	// Индекс поиска дубликатов по каналам идентичности.
	byEmail map[contact.Email]*contact.Contact
	byPhone map[contact.Phone]*contact.Contact
	byName  map[string]*contact.Contact

	// Конфликты только добавляются, порядок обнаружения сохраняется.
	conflicts []*Conflict
}

// New создаёт пустую адресную книгу.
func New() *Phonebook {
	return &Phonebook{
		byEmail: make(map[contact.Email]*contact.Contact),
		byPhone: make(map[contact.Phone]*contact.Contact),
		byName:  make(map[string]*contact.Contact),
	}
}

// Add применяет политику поиска дубликатов к новому контакту.
// Возвращает true, если контакт принят без конфликта. Если найден дубликат,
// контакт не принимается, а в список конфликтов добавляется запись
// (source - уже принятый контакт, dest - отклонённый).
func (b *Phonebook) Add(c *contact.Contact) bool {
	if dup := b.findDuplicate(c); dup != nil {
		b.conflicts = append(b.conflicts, NewConflict(dup, c))
		return false
	}

	b.contacts = append(b.contacts, c)
	if c.Email != nil {
		b.byEmail[*c.Email] = c
	}
	if c.Phone != nil {
		b.byPhone[*c.Phone] = c
	}
	// Ключ имени перезаписывается всегда: поздний контакт с тем же именем
	// перехватывает дальнейший поиск дубликатов по этому имени.
	// Поведение исходных данных, менять без согласования нельзя.
	b.byName[c.NameKey()] = c
	return true
}

// findDuplicate возвращает уже принятый контакт, которому дублирует c,
// или nil. Порядок проверки каналов: почта, телефон, имя.
func (b *Phonebook) findDuplicate(c *contact.Contact) *contact.Contact {
	if c.Email != nil {
		if dup, ok := b.byEmail[*c.Email]; ok {
			return dup
		}
	}
	if c.Phone != nil {
		if dup, ok := b.byPhone[*c.Phone]; ok {
			return dup
		}
	}
	if dup, ok := b.byName[c.NameKey()]; ok {
		if dup.MiddleName == "" || c.MiddleName == "" || dup.MiddleName == c.MiddleName {
			return dup
		}
	}
	return nil
}

// Contacts возвращает копию списка принятых контактов в порядке добавления.
// Это канонический порядок выгрузки.
func (b *Phonebook) Contacts() []*contact.Contact {
	result := make([]*contact.Contact, len(b.contacts))
	copy(result, b.contacts)
	return result
}

// Conflicts возвращает список обнаруженных конфликтов в порядке обнаружения.
func (b *Phonebook) Conflicts() []*Conflict {
	return b.conflicts
}

// Len возвращает количество принятых контактов.
func (b *Phonebook) Len() int {
	return len(b.contacts)
}
