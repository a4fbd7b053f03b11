package command

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/pradyuprasad/tp/internal/domain/criteria"
	"github.com/pradyuprasad/tp/internal/domain/entity"
	"github.com/pradyuprasad/tp/internal/repository"
	"github.com/pradyuprasad/tp/internal/usecase"
	"github.com/pradyuprasad/tp/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBook(t *testing.T, names ...string) usecase.AddressBookUsecase {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	book := usecase.NewAddressBookUsecase(nil, log, repository.NewPersonRepository(), validator.NewValidator())
	for _, n := range names {
		_, err := book.AddPerson(context.Background(), samplePerson(n))
		require.NoError(t, err)
	}
	return book
}

func samplePerson(name string) entity.Person {
	return entity.Person{
		Name:    name,
		Phone:   "91234567",
		Email:   "someone@example.com",
		Address: "Blk 1 Clementi Road",
		Role:    entity.RolePatient,
		Tags:    []string{"diabetic"},
	}
}

func slot(day, startHour, endHour int) entity.Appointment {
	return entity.Appointment{
		Start: time.Date(2024, 10, day, startHour, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 10, day, endHour, 0, 0, 0, time.UTC),
	}
}

func userMessage(t *testing.T, err error) string {
	t.Helper()
	var cmdErr *Error
	require.ErrorAs(t, err, &cmdErr)
	return cmdErr.Message
}

func TestAddCommand(t *testing.T) {
	ctx := context.Background()
	book := newBook(t)

	res, err := NewAddCommand(samplePerson("Alice")).Execute(ctx, book)
	require.NoError(t, err)
	assert.Equal(t,
		"New person added: Alice; Phone: 91234567; Email: someone@example.com; Address: Blk 1 Clementi Road; Role: PATIENT; Tags: [diabetic]",
		res.Feedback)

	_, err = NewAddCommand(samplePerson("ALICE")).Execute(ctx, book)
	assert.Equal(t, MessageDuplicatePerson, userMessage(t, err))
	assert.ErrorIs(t, err, usecase.ErrDuplicatePerson)
}

func TestEditCommand(t *testing.T) {
	ctx := context.Background()
	book := newBook(t, "Alice", "Bob")

	phone := "80000000"
	clearTags := []string{}
	res, err := NewEditCommand(1, EditPersonDescriptor{Phone: &phone, Tags: &clearTags}).Execute(ctx, book)
	require.NoError(t, err)
	assert.Contains(t, res.Feedback, "Phone: 80000000")

	alice := book.Persons()[0]
	assert.Equal(t, "80000000", alice.Phone)
	assert.Empty(t, alice.Tags)

	name := "bob"
	_, err = NewEditCommand(1, EditPersonDescriptor{Name: &name}).Execute(ctx, book)
	assert.Equal(t, MessageDuplicatePerson, userMessage(t, err))

	_, err = NewEditCommand(3, EditPersonDescriptor{Name: &name}).Execute(ctx, book)
	assert.Equal(t, MessageInvalidPersonDisplayedIndex, userMessage(t, err))
}

func TestEditPersonDescriptorApplyDoesNotAlias(t *testing.T) {
	tags := []string{"a"}
	d := EditPersonDescriptor{Tags: &tags}
	assert.True(t, d.IsAnyFieldEdited())
	assert.False(t, EditPersonDescriptor{}.IsAnyFieldEdited())

	edited := d.Apply(samplePerson("Alice"))
	edited.Tags[0] = "b"
	assert.Equal(t, []string{"a"}, tags)
}

func TestDeleteCommandUsesDisplayedIndex(t *testing.T) {
	ctx := context.Background()
	book := newBook(t, "Alice", "Bob")

	book.UpdateFilteredPersons(criteria.NewContainsKeywordsPredicate(
		criteria.NameSearchCriteria{Keywords: []string{"bob"}},
	))
	res, err := NewDeleteCommand(1).Execute(ctx, book)
	require.NoError(t, err)
	assert.Contains(t, res.Feedback, "Deleted Person: Bob")

	persons := book.Persons()
	require.Len(t, persons, 1)
	assert.Equal(t, "Alice", persons[0].Name)

	_, err = NewDeleteCommand(2).Execute(ctx, book)
	assert.Equal(t, MessageInvalidPersonDisplayedIndex, userMessage(t, err))
}

func TestFindAppointmentCommand(t *testing.T) {
	ctx := context.Background()
	book := newBook(t, "Alice", "Bob")

	_, err := NewAddAppointmentCommand(1, slot(30, 14, 15)).Execute(ctx, book)
	require.NoError(t, err)
	_, err = NewAddAppointmentCommand(2, slot(31, 9, 10)).Execute(ctx, book)
	require.NoError(t, err)

	day := time.Date(2024, 10, 30, 0, 0, 0, 0, time.UTC)
	pred := criteria.NewContainsKeywordsPredicate(criteria.NewAppointmentSearchCriteria(
		day, time.Date(0, 1, 1, 14, 0, 0, 0, time.UTC),
		day, time.Date(0, 1, 1, 15, 0, 0, 0, time.UTC),
	))
	cmd := NewFindAppointmentCommand(pred)
	assert.True(t, cmd.Predicate().Equal(pred))

	res, err := cmd.Execute(ctx, book)
	require.NoError(t, err)
	assert.Equal(t, "1 persons listed!", res.Feedback)
	assert.True(t, res.ShowList)
	assert.Equal(t, "Alice", book.FilteredPersons()[0].Name)

	res, err = ListCommand{}.Execute(ctx, book)
	require.NoError(t, err)
	assert.Equal(t, MessageListSuccess, res.Feedback)
	assert.Len(t, book.FilteredPersons(), 2)
}

func TestFindCommand(t *testing.T) {
	ctx := context.Background()
	book := newBook(t, "Alice Tan", "Bob Lim", "Alice Lee")

	res, err := NewFindCommand(criteria.NewContainsKeywordsPredicate(
		criteria.NameSearchCriteria{Keywords: []string{"alice"}},
	)).Execute(ctx, book)
	require.NoError(t, err)
	assert.Equal(t, "2 persons listed!", res.Feedback)
}

func TestAddAppointmentCommand(t *testing.T) {
	ctx := context.Background()
	book := newBook(t, "Alice")

	res, err := NewAddAppointmentCommand(1, slot(30, 14, 15)).Execute(ctx, book)
	require.NoError(t, err)
	assert.Equal(t, "New appointment added for Alice: 30/10/2024 14:00 - 30/10/2024 15:00", res.Feedback)

	_, err = NewAddAppointmentCommand(1, slot(30, 14, 15)).Execute(ctx, book)
	assert.Equal(t, MessageDuplicateAppointment, userMessage(t, err))

	_, err = NewAddAppointmentCommand(1, slot(30, 15, 15)).Execute(ctx, book)
	assert.Equal(t, MessageAppointmentEndsTooSoon, userMessage(t, err))

	_, err = NewAddAppointmentCommand(2, slot(30, 16, 17)).Execute(ctx, book)
	assert.Equal(t, MessageInvalidPersonDisplayedIndex, userMessage(t, err))

	assert.Len(t, book.Persons()[0].Appointments, 1)
}

func TestSimpleCommands(t *testing.T) {
	ctx := context.Background()
	book := newBook(t, "Alice")

	res, err := ClearCommand{}.Execute(ctx, book)
	require.NoError(t, err)
	assert.Equal(t, MessageClearSuccess, res.Feedback)
	assert.Empty(t, book.Persons())

	res, err = HistoryCommand{}.Execute(ctx, book)
	require.NoError(t, err)
	assert.True(t, res.ShowHistory)

	res, err = HelpCommand{}.Execute(ctx, book)
	require.NoError(t, err)
	assert.True(t, res.ShowHelp)
	assert.Contains(t, res.Feedback, FindAppointmentUsage)

	res, err = ExitCommand{}.Execute(ctx, book)
	require.NoError(t, err)
	assert.True(t, res.Exit)
}

func TestEditCommandIsIndependentOfDescriptor(t *testing.T) {
	ctx := context.Background()
	book := newBook(t, "Alice")

	name := "Alice Tan"
	tags := []string{"friend"}
	cmd := NewEditCommand(1, EditPersonDescriptor{Name: &name, Tags: &tags})

	name = "Mallory"
	tags[0] = "changed"

	_, err := cmd.Execute(ctx, book)
	require.NoError(t, err)

	alice := book.Persons()[0]
	assert.Equal(t, "Alice Tan", alice.Name)
	assert.Equal(t, []string{"friend"}, alice.Tags)
}
