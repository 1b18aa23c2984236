package contact

import (
	"fmt"
	"regexp"

	"github.com/contact-hub/contact-dedup-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECT: PHONE
// ══════════════════════════════════════════════════════════════════════════════

// rePhone ищет (а не якорит) номер национального формата: необязательный "+",
// ведущая цифра 7 или 8, десять цифр с допустимыми разделителями и
// необязательный добавочный номер после маркера "доб.".
var rePhone = regexp.MustCompile(`\+?[78]((?:[\s()-]*\d){10})(?:[(добавчный.\s]*(\d+))?`)

// reNonDigit вырезает всё, кроме цифр.
var reNonDigit = regexp.MustCompile(`\D`)

// reSubscriber разбивает десятизначный номер на группы для отображения.
var reSubscriber = regexp.MustCompile(`^(\d{3})(\d{3})(\d{2})(\d{2})$`)

// nationalCode - код страны единственной поддерживаемой нумерации.
// Разбор национального формата всегда приводит номер к этому коду,
// даже если абонент набрал его через "8". Это осознанное ограничение,
// а не универсальный международный парсер.
const nationalCode = 7

// Phone представляет телефонный номер.
// Код страны, номер и добавочный код неизменяемы: тройка целиком
// участвует в ключе поиска дубликатов.
type Phone struct {
	countryCode int
	number      string
	extCode     string
}

// NewPhone создаёт Phone из уже разобранных составляющих.
// Из номера вырезаются все нецифровые символы; длина номера не проверяется -
// валидация входной строки является обязанностью ParseNational.
func NewPhone(countryCode int, number, extCode string) Phone {
	return Phone{
		countryCode: countryCode,
		number:      reNonDigit.ReplaceAllString(number, ""),
		extCode:     extCode,
	}
}

// NewNationalPhone создаёт Phone со строгой валидацией исходной строки.
// Возвращает shared.ErrInvalidFormat, если номер не распознан.
func NewNationalPhone(raw string) (Phone, error) {
	p, ok := ParseNational(raw)
	if !ok {
		return Phone{}, shared.ErrInvalidPhone
	}
	return p, nil
}

// ParseNational - мягкий разбор номера национального формата.
// Возвращает ok=false, если в строке не найден номер.
// Используется при массовой загрузке, где телефон - необязательное поле.
func ParseNational(raw string) (Phone, bool) {
	match := rePhone.FindStringSubmatch(raw)
	if match == nil {
		return Phone{}, false
	}
	return NewPhone(nationalCode, match[1], match[2]), true
}

// CountryCode возвращает код страны.
func (p Phone) CountryCode() int {
	return p.countryCode
}

// Number возвращает канонический номер абонента (только цифры).
func (p Phone) Number() string {
	return p.number
}

// ExtCode возвращает добавочный код или пустую строку.
func (p Phone) ExtCode() string {
	return p.extCode
}

// IsZero возвращает true для пустого (не созданного) значения.
func (p Phone) IsZero() bool {
	return p.countryCode == 0 && p.number == ""
}

// String возвращает отображаемую форму номера: +7(999)111-22-33 доб.4.
// Номер нестандартной длины выводится без группировки.
func (p Phone) String() string {
	number := p.number
	if m := reSubscriber.FindStringSubmatch(number); m != nil {
		number = fmt.Sprintf("(%s)%s-%s-%s", m[1], m[2], m[3], m[4])
	}
	result := fmt.Sprintf("+%d%s", p.countryCode, number)
	if p.extCode != "" {
		result += " доб." + p.extCode
	}
	return result
}

// Equal сравнивает два номера по канонической тройке
// (код страны, номер, добавочный код).
func (p Phone) Equal(other Phone) bool {
	return p.countryCode == other.countryCode &&
		p.number == other.number &&
		p.extCode == other.extCode
}

// EqualString сравнивает номер с сырой текстовой формой.
// Строка сначала разбирается через ParseNational; нераспознанная
// строка не равна ничему.
func (p Phone) EqualString(raw string) bool {
	other, ok := ParseNational(raw)
	if !ok {
		return false
	}
	return p.Equal(other)
}
