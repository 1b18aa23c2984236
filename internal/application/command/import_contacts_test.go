package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contact-hub/contact-dedup-hub/internal/domain/contact"
	"github.com/contact-hub/contact-dedup-hub/internal/domain/phonebook"
	"github.com/contact-hub/contact-dedup-hub/internal/domain/shared"
	"github.com/contact-hub/contact-dedup-hub/internal/infrastructure/messaging"
)

// stubSource - источник строк для тестов.
type stubSource struct {
	rows [][]string
}

func (s *stubSource) ReadAll() ([][]string, error) {
	return s.rows, nil
}

// stubSink запоминает выгруженные контакты.
type stubSink struct {
	written []*contact.Contact
}

func (s *stubSink) WriteAll(contacts []*contact.Contact) error {
	s.written = contacts
	return nil
}

var header = []string{"lastname", "firstname", "surname", "organization", "position", "phone", "email"}

func TestImportContacts_AcceptsAndCounts(t *testing.T) {
	book := phonebook.New()
	source := &stubSource{rows: [][]string{
		header,
		{"Иванов", "Иван", "", "", "", "+7 999 111 22 33", "ivan@x.com"},
		{"Петров", "Пётр", "", "Ромашка", "директор", "", "petr@x.com"},
	}}

	result, err := NewImportContactsHandler(book, source, nil, nil).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, result.RowsRead)
	assert.Equal(t, 2, result.Accepted)
	assert.Equal(t, 0, result.Conflicts)
	assert.Equal(t, 2, book.Len())
}

func TestImportContacts_SkipsMalformedRows(t *testing.T) {
	book := phonebook.New()
	source := &stubSource{rows: [][]string{
		header,
		{"слишком", "мало", "колонок"},
		{"Иванов", "Иван", "", "", "", "", "ivan@x.com"},
	}}

	result, err := NewImportContactsHandler(book, source, nil, nil).Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.Accepted)
	assert.Equal(t, 1, book.Len())
}

func TestImportContacts_RejoinsNameColumns(t *testing.T) {
	book := phonebook.New()
	source := &stubSource{rows: [][]string{
		header,
		// Полное имя в одной колонке: колонки имени склеиваются и
		// заново разбиваются по пробелам.
		{"Усольцев Олег Валентинович", "", "", "Ромашка", "", "", ""},
	}}

	_, err := NewImportContactsHandler(book, source, nil, nil).Execute(context.Background())
	require.NoError(t, err)

	contacts := book.Contacts()
	require.Len(t, contacts, 1)
	assert.Equal(t, "Усольцев", contacts[0].LastName)
	assert.Equal(t, "Олег", contacts[0].FirstName)
	assert.Equal(t, "Валентинович", contacts[0].MiddleName)
	assert.Equal(t, "Ромашка", contacts[0].Org)
}

func TestImportContacts_LenientFieldParsing(t *testing.T) {
	book := phonebook.New()
	source := &stubSource{rows: [][]string{
		header,
		// Некорректные телефон и почта деградируют до отсутствующих полей.
		{"Иванов", "Иван", "", "", "", "нет номера", "не почта"},
	}}

	_, err := NewImportContactsHandler(book, source, nil, nil).Execute(context.Background())
	require.NoError(t, err)

	contacts := book.Contacts()
	require.Len(t, contacts, 1)
	assert.Nil(t, contacts[0].Phone)
	assert.Nil(t, contacts[0].Email)
}

func TestImportContacts_PublishesDuplicateEvents(t *testing.T) {
	book := phonebook.New()
	bus := messaging.NewInMemoryEventBus(nil)

	var duplicates int
	err := bus.Subscribe(shared.EventDuplicateDetected, shared.EventHandlerFunc{
		HandlerName: "counter",
		Func: func(ctx context.Context, event shared.Event) error {
			duplicates++
			return nil
		},
	})
	require.NoError(t, err)

	source := &stubSource{rows: [][]string{
		header,
		{"Иванов", "Иван", "", "", "", "", "a@x.com"},
		{"Петров", "Пётр", "", "", "", "", "a@x.com"},
	}}

	result, err := NewImportContactsHandler(book, source, bus, nil).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Conflicts)
	assert.Equal(t, 1, duplicates)
}

func TestPhonebookRun_EndToEnd(t *testing.T) {
	ctx := context.Background()
	book := phonebook.New()

	source := &stubSource{rows: [][]string{
		header,
		{"Ivanov", "Ivan", "", "", "", "+7 999 111 22 33", "ivan@x.com"},
		{"Ivanov", "Ivan", "", "Acme", "Engineer", "+7 999 111 22 33", ""},
	}}

	importResult, err := NewImportContactsHandler(book, source, nil, nil).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, importResult.Accepted)
	assert.Equal(t, 1, importResult.Conflicts)

	resolveResult, err := NewResolveConflictsHandler(book, nil, nil).
		Execute(ctx, ResolveConflictsCommand{})
	require.NoError(t, err)
	assert.Equal(t, 1, resolveResult.Resolved)

	sink := &stubSink{}
	exportResult, err := NewExportContactsHandler(book, sink, nil).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, exportResult.Written)

	require.Len(t, sink.written, 1)
	merged := sink.written[0]
	assert.Equal(t, "Ivanov", merged.LastName)
	assert.Equal(t, "Acme", merged.Org)
	assert.Equal(t, "Engineer", merged.Position)
	require.NotNil(t, merged.Phone)
	assert.True(t, merged.Phone.EqualString("+7 999 111 22 33"))
	require.NotNil(t, merged.Email)
	assert.True(t, merged.Email.EqualString("ivan@x.com"))
}
