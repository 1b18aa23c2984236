package phonebook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contact-hub/contact-dedup-hub/internal/domain/contact"
)

func newContact(t *testing.T, last, first, middle, phone, email string) *contact.Contact {
	t.Helper()
	c := &contact.Contact{LastName: last, FirstName: first, MiddleName: middle}
	if phone != "" {
		p, ok := contact.ParseNational(phone)
		require.True(t, ok, "phone %q", phone)
		c.Phone = &p
	}
	if email != "" {
		e, ok := contact.ParseEmail(email)
		require.True(t, ok, "email %q", email)
		c.Email = &e
	}
	return c
}

func TestPhonebook_AddAccepted(t *testing.T) {
	book := New()

	first := newContact(t, "Иванов", "Иван", "", "+7 999 111 22 33", "ivan@x.com")
	second := newContact(t, "Петров", "Пётр", "", "+7 999 444 55 66", "petr@x.com")

	assert.True(t, book.Add(first))
	assert.True(t, book.Add(second))
	assert.Empty(t, book.Conflicts())

	// Порядок добавления - канонический порядок выгрузки.
	contacts := book.Contacts()
	require.Len(t, contacts, 2)
	assert.Same(t, first, contacts[0])
	assert.Same(t, second, contacts[1])
}

func TestPhonebook_DuplicateByEmail(t *testing.T) {
	book := New()

	existing := newContact(t, "Иванов", "Иван", "", "", "a@x.com")
	incoming := newContact(t, "Петров", "Пётр", "", "", "a@x.com")

	require.True(t, book.Add(existing))
	assert.False(t, book.Add(incoming))

	conflicts := book.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Same(t, existing, conflicts[0].Source)
	assert.Same(t, incoming, conflicts[0].Dest)
	assert.False(t, conflicts[0].Resolved)

	// Отклонённый дубликат не попадает в список контактов.
	assert.Equal(t, 1, book.Len())
}

func TestPhonebook_DuplicateByPhone(t *testing.T) {
	book := New()

	existing := newContact(t, "Иванов", "Иван", "", "+7 999 111 22 33", "")
	incoming := newContact(t, "Петров", "Пётр", "", "8 (999) 111-22-33", "")

	require.True(t, book.Add(existing))
	assert.False(t, book.Add(incoming))
	require.Len(t, book.Conflicts(), 1)
	assert.Same(t, existing, book.Conflicts()[0].Source)
}

func TestPhonebook_EmailCheckedBeforePhone(t *testing.T) {
	book := New()

	byEmail := newContact(t, "Иванов", "Иван", "", "", "a@x.com")
	byPhone := newContact(t, "Петров", "Пётр", "", "+7 999 111 22 33", "")
	require.True(t, book.Add(byEmail))
	require.True(t, book.Add(byPhone))

	// Входящий контакт совпадает с первым по почте и со вторым по телефону:
	// приоритет у почты, телефон отдельно не проверяется.
	incoming := newContact(t, "Сидоров", "Сидор", "", "+7 999 111 22 33", "a@x.com")
	assert.False(t, book.Add(incoming))

	conflicts := book.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Same(t, byEmail, conflicts[0].Source)
}

func TestPhonebook_DuplicateByName(t *testing.T) {
	t.Run("no middle names on either side", func(t *testing.T) {
		book := New()
		require.True(t, book.Add(newContact(t, "Иванов", "Иван", "", "", "")))
		assert.False(t, book.Add(newContact(t, "Иванов", "Иван", "", "", "")))
		assert.Len(t, book.Conflicts(), 1)
	})

	t.Run("middle name on one side only", func(t *testing.T) {
		book := New()
		require.True(t, book.Add(newContact(t, "Иванов", "Иван", "Иванович", "", "")))
		assert.False(t, book.Add(newContact(t, "Иванов", "Иван", "", "", "")))
		assert.Len(t, book.Conflicts(), 1)
	})

	t.Run("equal middle names", func(t *testing.T) {
		book := New()
		require.True(t, book.Add(newContact(t, "Иванов", "Иван", "Иванович", "", "")))
		assert.False(t, book.Add(newContact(t, "Иванов", "Иван", "Иванович", "", "")))
		assert.Len(t, book.Conflicts(), 1)
	})

	t.Run("different middle names are distinct people", func(t *testing.T) {
		book := New()
		require.True(t, book.Add(newContact(t, "Иванов", "Иван", "Иванович", "", "")))
		assert.True(t, book.Add(newContact(t, "Иванов", "Иван", "Петрович", "", "")))
		assert.Empty(t, book.Conflicts())
		assert.Equal(t, 2, book.Len())
	})
}

func TestPhonebook_NameKeyOverwrittenByLaterContact(t *testing.T) {
	// Поздний принятый контакт с тем же именем перехватывает ключ имени:
	// следующий однофамилец конфликтует именно с ним.
	book := New()

	older := newContact(t, "Иванов", "Иван", "Иванович", "", "")
	newer := newContact(t, "Иванов", "Иван", "Петрович", "", "")
	require.True(t, book.Add(older))
	require.True(t, book.Add(newer))

	incoming := newContact(t, "Иванов", "Иван", "Петрович", "", "")
	assert.False(t, book.Add(incoming))

	conflicts := book.Conflicts()
	require.Len(t, conflicts, 1)
	assert.Same(t, newer, conflicts[0].Source)
}

func TestPhonebook_ContactsReturnsCopy(t *testing.T) {
	book := New()
	require.True(t, book.Add(newContact(t, "Иванов", "Иван", "", "", "")))

	contacts := book.Contacts()
	contacts[0] = nil
	assert.NotNil(t, book.Contacts()[0])
}
