package contact

import (
	"regexp"
	"strings"

	"github.com/contact-hub/contact-dedup-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECT: EMAIL
// ══════════════════════════════════════════════════════════════════════════════

// reEmail проверяет адрес от начала строки: локальная часть, @, домен с точкой
// и буквенный TLD от двух символов. Хвост после валидного префикса допускается -
// так вели себя исходные выгрузки, менять без согласования нельзя.
var reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

// Email представляет адрес электронной почты.
// Значение неизменяемо: адрес участвует в ключе поиска дубликатов.
type Email struct {
	address string
}

// NewEmail создаёт Email со строгой валидацией.
// Возвращает shared.ErrInvalidFormat, если адрес некорректен.
// Используется, когда корректность адреса гарантирует вызывающая сторона.
func NewEmail(address string) (Email, error) {
	addr := strings.TrimSpace(address)
	if !IsValidEmail(addr) {
		return Email{}, shared.ErrInvalidEmail
	}
	return Email{address: addr}, nil
}

// ParseEmail - мягкий вариант разбора: вместо ошибки возвращает ok=false.
// Используется при массовой загрузке, где e-mail - необязательное поле.
func ParseEmail(address string) (Email, bool) {
	e, err := NewEmail(address)
	if err != nil {
		return Email{}, false
	}
	return e, true
}

// IsValidEmail проверяет корректность адреса после обрезки пробелов.
func IsValidEmail(address string) bool {
	return reEmail.MatchString(strings.TrimSpace(address))
}

// Address возвращает канонический (обрезанный) адрес.
func (e Email) Address() string {
	return e.address
}

// String возвращает строковое представление адреса.
func (e Email) String() string {
	return e.address
}

// IsZero возвращает true для пустого (не созданного) значения.
func (e Email) IsZero() bool {
	return e.address == ""
}

// Equal сравнивает два адреса по точной канонической строке (с учётом регистра).
func (e Email) Equal(other Email) bool {
	return e.address == other.address
}

// EqualString сравнивает адрес с сырой текстовой формой.
// Сырая строка сравнивается как есть, без разбора - каноническая
// форма адреса и есть его строка.
func (e Email) EqualString(raw string) bool {
	return e.address == raw
}
