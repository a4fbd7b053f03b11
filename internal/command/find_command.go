package command

import (
	"context"
	"fmt"

	"github.com/pradyuprasad/tp/internal/domain/criteria"
	"github.com/pradyuprasad/tp/internal/usecase"
)

// FindCommand filters the displayed list by name, role and tag criteria
type FindCommand struct {
	predicate criteria.ContainsKeywordsPredicate
}

func NewFindCommand(p criteria.ContainsKeywordsPredicate) FindCommand {
	return FindCommand{predicate: p}
}

func (c FindCommand) Predicate() criteria.ContainsKeywordsPredicate {
	return c.predicate
}

func (c FindCommand) Execute(_ context.Context, book usecase.AddressBookUsecase) (*CommandResult, error) {
	book.UpdateFilteredPersons(c.predicate)
	return &CommandResult{
		Feedback: fmt.Sprintf(MessagePersonsListedOverview, len(book.FilteredPersons())),
		ShowList: true,
	}, nil
}
