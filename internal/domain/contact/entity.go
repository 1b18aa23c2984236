package contact

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: CONTACT
// ══════════════════════════════════════════════════════════════════════════════

// Contact - центральная сущность системы, запись адресной книги.
// Идентичность контакта определяется только значениями его полей:
// каналы связи (телефон, почта) и пара фамилия+имя служат ключами
// поиска дубликатов.
//
// Поля изменяются единственным образом - слиянием конфликта дубликатов.
type Contact struct {
	// LastName - фамилия.
	LastName string

	// FirstName - имя.
	FirstName string

	// MiddleName - отчество (может отсутствовать).
	MiddleName string

	// Org - место работы (организация).
	Org string

	// Position - должность в организации.
	Position string

	// Phone - телефонный номер (может отсутствовать).
	Phone *Phone

	// Email - адрес электронной почты (может отсутствовать).
	Email *Email
}

// NameKey возвращает ключ поиска дубликатов по имени:
// конкатенация фамилии и имени без нормализации регистра.
func (c *Contact) NameKey() string {
	return c.LastName + c.FirstName
}

// DisplayString возвращает информационное представление контакта:
// "Фамилия Имя Отчество, должность(организация), +7(999)111-22-33 [ivan@x.com]".
// Представление не участвует в поиске дубликатов.
func (c *Contact) DisplayString() string {
	caser := cases.Title(language.Russian)

	parts := make([]string, 0, 3)
	for _, name := range []string{c.LastName, c.FirstName, c.MiddleName} {
		if name != "" {
			parts = append(parts, caser.String(name))
		}
	}

	var b strings.Builder
	b.WriteString(strings.Join(parts, " "))
	if c.Position != "" {
		b.WriteString(", ")
		b.WriteString(c.Position)
	}
	if c.Org != "" {
		b.WriteString("(")
		b.WriteString(c.Org)
		b.WriteString(")")
	}
	if c.Phone != nil {
		b.WriteString(", ")
		b.WriteString(c.Phone.String())
	}
	if c.Email != nil {
		b.WriteString(" [")
		b.WriteString(c.Email.String())
		b.WriteString("]")
	}
	return b.String()
}

// ══════════════════════════════════════════════════════════════════════════════
// MERGEABLE FIELDS
// ══════════════════════════════════════════════════════════════════════════════

// Field идентифицирует поле контакта, участвующее в слиянии дубликатов.
type Field string

const (
	// FieldFirstName - имя.
	FieldFirstName Field = "first_name"
	// FieldLastName - фамилия.
	FieldLastName Field = "last_name"
	// FieldMiddleName - отчество.
	FieldMiddleName Field = "middle_name"
	// FieldOrg - организация.
	FieldOrg Field = "org"
	// FieldPosition - должность.
	FieldPosition Field = "position"
	// FieldPhone - телефон.
	FieldPhone Field = "phone"
	// FieldEmail - электронная почта.
	FieldEmail Field = "email"
)

// IsValid проверяет, что поле известно политике слияния.
func (f Field) IsValid() bool {
	switch f {
	case FieldFirstName, FieldLastName, FieldMiddleName,
		FieldOrg, FieldPosition, FieldPhone, FieldEmail:
		return true
	default:
		return false
	}
}

// ParseField разбирает имя поля из внешнего представления (конфигурации).
func ParseField(s string) (Field, bool) {
	f := Field(strings.ToLower(strings.TrimSpace(s)))
	return f, f.IsValid()
}
