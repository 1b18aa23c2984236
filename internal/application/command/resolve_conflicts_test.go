package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contact-hub/contact-dedup-hub/internal/domain/contact"
	"github.com/contact-hub/contact-dedup-hub/internal/domain/phonebook"
)

func importRows(t *testing.T, book *phonebook.Phonebook, rows [][]string) {
	t.Helper()
	source := &stubSource{rows: append([][]string{header}, rows...)}
	_, err := NewImportContactsHandler(book, source, nil, nil).Execute(context.Background())
	require.NoError(t, err)
}

func TestResolveConflicts_ValidatesIgnoreFields(t *testing.T) {
	book := phonebook.New()
	cmd := ResolveConflictsCommand{Ignore: []contact.Field{"nickname"}}

	_, err := NewResolveConflictsHandler(book, nil, nil).Execute(context.Background(), cmd)
	assert.Error(t, err)
}

func TestResolveConflicts_IgnoredFieldNotMerged(t *testing.T) {
	book := phonebook.New()
	importRows(t, book, [][]string{
		{"Иванов", "Иван", "", "Ромашка", "", "", "a@x.com"},
		{"Иванов", "Иван", "", "Лютик", "директор", "", "a@x.com"},
	})
	require.Len(t, book.Conflicts(), 1)

	cmd := ResolveConflictsCommand{Ignore: []contact.Field{contact.FieldOrg}}
	result, err := NewResolveConflictsHandler(book, nil, nil).Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Resolved)

	merged := book.Contacts()[0]
	assert.Equal(t, "Ромашка", merged.Org)
	assert.Equal(t, "директор", merged.Position)
}

func TestResolveConflicts_SkipsAlreadyResolved(t *testing.T) {
	book := phonebook.New()
	importRows(t, book, [][]string{
		{"Иванов", "Иван", "", "", "", "", "a@x.com"},
		{"Иванов", "Иван", "", "Ромашка", "", "", "a@x.com"},
	})

	handler := NewResolveConflictsHandler(book, nil, nil)

	first, err := handler.Execute(context.Background(), ResolveConflictsCommand{})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Resolved)

	second, err := handler.Execute(context.Background(), ResolveConflictsCommand{})
	require.NoError(t, err)
	assert.Equal(t, 0, second.Resolved)
}
