package command

import (
	"context"
	"fmt"

	"github.com/pradyuprasad/tp/internal/usecase"
)

const MessageDeleteSuccess = "Deleted Person: %s"

// DeleteCommand removes the person at a one-based index of the displayed list
type DeleteCommand struct {
	index int
}

func NewDeleteCommand(index int) DeleteCommand {
	return DeleteCommand{index: index}
}

func (c DeleteCommand) Execute(ctx context.Context, book usecase.AddressBookUsecase) (*CommandResult, error) {
	target, err := personAt(book, c.index)
	if err != nil {
		return nil, err
	}
	if err := book.DeletePerson(ctx, target.ID); err != nil {
		return nil, fmt.Errorf("failed to delete person: %w", err)
	}
	return &CommandResult{Feedback: fmt.Sprintf(MessageDeleteSuccess, FormatPerson(target))}, nil
}
