package command

import (
	"context"
	"fmt"

	"github.com/pradyuprasad/tp/internal/domain/criteria"
	"github.com/pradyuprasad/tp/internal/usecase"
)

// FindAppointmentCommand filters the displayed list to persons with an
// appointment inside the searched window
type FindAppointmentCommand struct {
	predicate criteria.ContainsKeywordsPredicate
}

func NewFindAppointmentCommand(p criteria.ContainsKeywordsPredicate) FindAppointmentCommand {
	return FindAppointmentCommand{predicate: p}
}

func (c FindAppointmentCommand) Predicate() criteria.ContainsKeywordsPredicate {
	return c.predicate
}

func (c FindAppointmentCommand) Execute(_ context.Context, book usecase.AddressBookUsecase) (*CommandResult, error) {
	book.UpdateFilteredPersons(c.predicate)
	return &CommandResult{
		Feedback: fmt.Sprintf(MessagePersonsListedOverview, len(book.FilteredPersons())),
		ShowList: true,
	}, nil
}
