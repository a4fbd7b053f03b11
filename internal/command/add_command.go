package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/pradyuprasad/tp/internal/domain/entity"
	"github.com/pradyuprasad/tp/internal/usecase"
)

const MessageAddSuccess = "New person added: %s"

// AddCommand adds a person to the address book
type AddCommand struct {
	toAdd entity.Person
}

func NewAddCommand(p entity.Person) AddCommand {
	return AddCommand{toAdd: p.Clone()}
}

func (c AddCommand) Execute(ctx context.Context, book usecase.AddressBookUsecase) (*CommandResult, error) {
	if book.HasPerson(&c.toAdd) {
		return nil, &Error{Message: MessageDuplicatePerson, Err: usecase.ErrDuplicatePerson}
	}

	added, err := book.AddPerson(ctx, c.toAdd)
	if err != nil {
		if errors.Is(err, usecase.ErrDuplicatePerson) {
			return nil, &Error{Message: MessageDuplicatePerson, Err: err}
		}
		return nil, fmt.Errorf("failed to add person: %w", err)
	}
	return &CommandResult{Feedback: fmt.Sprintf(MessageAddSuccess, FormatPerson(added))}, nil
}
