package phonebook

import (
	"time"

	"github.com/google/uuid"

	"github.com/contact-hub/contact-dedup-hub/internal/domain/contact"
)

// ══════════════════════════════════════════════════════════════════════════════
// CONFLICT
// ══════════════════════════════════════════════════════════════════════════════

// Conflict - обнаруженная пара дубликатов, отложенная для разрешения.
// Конфликт - это не ошибка, а полноправный результат добавления:
// данные не перезаписываются и не теряются молча.
type Conflict struct {
	// ID - уникальный идентификатор конфликта (для отчётов оператору).
	ID string

	// Source - контакт, уже принятый в книгу. Слияние изменяет именно его.
	Source *contact.Contact

	// Dest - отклонённый входящий дубликат. Не изменяется.
	Dest *contact.Contact

	// Resolved становится true после выполнения слияния.
	Resolved bool

	// DetectedAt - момент обнаружения дубликата.
	DetectedAt time.Time
}

// NewConflict создаёт конфликт для пары существующий/входящий контакт.
func NewConflict(source, dest *contact.Contact) *Conflict {
	return &Conflict{
		ID:         uuid.New().String(),
		Source:     source,
		Dest:       dest,
		DetectedAt: time.Now(),
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// MERGE POLICY
// ══════════════════════════════════════════════════════════════════════════════

// mergeField описывает одно сливаемое поле: проверку пустоты и равенства
// и перенос значения. Статическая таблица вместо динамического доступа
// к полям делает набор ignore и порядок слияния проверяемыми компилятором.
type mergeField struct {
	name    contact.Field
	isEmpty func(c *contact.Contact) bool
	equal   func(a, b *contact.Contact) bool
	assign  func(dst, src *contact.Contact)
}

// mergeFields - фиксированный порядок слияния полей.
var mergeFields = []mergeField{
	{
		name:    contact.FieldFirstName,
		isEmpty: func(c *contact.Contact) bool { return c.FirstName == "" },
		equal:   func(a, b *contact.Contact) bool { return a.FirstName == b.FirstName },
		assign:  func(dst, src *contact.Contact) { dst.FirstName = src.FirstName },
	},
	{
		name:    contact.FieldLastName,
		isEmpty: func(c *contact.Contact) bool { return c.LastName == "" },
		equal:   func(a, b *contact.Contact) bool { return a.LastName == b.LastName },
		assign:  func(dst, src *contact.Contact) { dst.LastName = src.LastName },
	},
	{
		name:    contact.FieldMiddleName,
		isEmpty: func(c *contact.Contact) bool { return c.MiddleName == "" },
		equal:   func(a, b *contact.Contact) bool { return a.MiddleName == b.MiddleName },
		assign:  func(dst, src *contact.Contact) { dst.MiddleName = src.MiddleName },
	},
	{
		name:    contact.FieldOrg,
		isEmpty: func(c *contact.Contact) bool { return c.Org == "" },
		equal:   func(a, b *contact.Contact) bool { return a.Org == b.Org },
		assign:  func(dst, src *contact.Contact) { dst.Org = src.Org },
	},
	{
		name:    contact.FieldPosition,
		isEmpty: func(c *contact.Contact) bool { return c.Position == "" },
		equal:   func(a, b *contact.Contact) bool { return a.Position == b.Position },
		assign:  func(dst, src *contact.Contact) { dst.Position = src.Position },
	},
	{
		name:    contact.FieldPhone,
		isEmpty: func(c *contact.Contact) bool { return c.Phone == nil },
		equal: func(a, b *contact.Contact) bool {
			if a.Phone == nil || b.Phone == nil {
				return a.Phone == b.Phone
			}
			return a.Phone.Equal(*b.Phone)
		},
		assign: func(dst, src *contact.Contact) { dst.Phone = src.Phone },
	},
	{
		name:    contact.FieldEmail,
		isEmpty: func(c *contact.Contact) bool { return c.Email == nil },
		equal: func(a, b *contact.Contact) bool {
			if a.Email == nil || b.Email == nil {
				return a.Email == b.Email
			}
			return a.Email.Equal(*b.Email)
		},
		assign: func(dst, src *contact.Contact) { dst.Email = src.Email },
	},
}

// Merge переносит значения полей входящего дубликата в существующий контакт.
// Поле пропускается, если оно перечислено в ignore, пусто у входящего
// или совпадает с существующим значением. Слияние заполняет пробелы и
// обновляет изменившиеся значения, но никогда не затирает заполненное
// поле пустым. После обработки всех полей Resolved становится true.
func (c *Conflict) Merge(ignore ...contact.Field) {
	skip := make(map[contact.Field]struct{}, len(ignore))
	for _, f := range ignore {
		skip[f] = struct{}{}
	}

	for _, field := range mergeFields {
		if _, ok := skip[field.name]; ok {
			continue
		}
		if field.isEmpty(c.Dest) {
			continue
		}
		if field.equal(c.Source, c.Dest) {
			continue
		}
		field.assign(c.Source, c.Dest)
	}
	c.Resolved = true
}
