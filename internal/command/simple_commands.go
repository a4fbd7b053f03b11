package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/pradyuprasad/tp/internal/domain/criteria"
	"github.com/pradyuprasad/tp/internal/usecase"
)

const (
	MessageListSuccess    = "Listed all persons"
	MessageClearSuccess   = "Address book has been cleared!"
	MessageHistorySuccess = "Entered commands (most recent first):"
	MessageExitAck        = "Exiting Address Book as requested ..."
)

// ListCommand resets the displayed list to every person
type ListCommand struct{}

func (ListCommand) Execute(_ context.Context, book usecase.AddressBookUsecase) (*CommandResult, error) {
	book.UpdateFilteredPersons(criteria.ShowAll{})
	return &CommandResult{Feedback: MessageListSuccess, ShowList: true}, nil
}

// ClearCommand removes every person
type ClearCommand struct{}

func (ClearCommand) Execute(ctx context.Context, book usecase.AddressBookUsecase) (*CommandResult, error) {
	if err := book.ClearPersons(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear address book: %w", err)
	}
	return &CommandResult{Feedback: MessageClearSuccess}, nil
}

// HistoryCommand asks the caller to show previously entered commands
type HistoryCommand struct{}

func (HistoryCommand) Execute(context.Context, usecase.AddressBookUsecase) (*CommandResult, error) {
	return &CommandResult{Feedback: MessageHistorySuccess, ShowHistory: true}, nil
}

// HelpCommand lists the usage of every command
type HelpCommand struct{}

func (HelpCommand) Execute(context.Context, usecase.AddressBookUsecase) (*CommandResult, error) {
	usages := []string{
		AddUsage, EditUsage, DeleteUsage, FindUsage, FindAppointmentUsage,
		AddAppointmentUsage, ListUsage, ClearUsage, HistoryUsage, HelpUsage, ExitUsage,
	}
	return &CommandResult{Feedback: strings.Join(usages, "\n\n"), ShowHelp: true}, nil
}

type ExitCommand struct{}

func (ExitCommand) Execute(context.Context, usecase.AddressBookUsecase) (*CommandResult, error) {
	return &CommandResult{Feedback: MessageExitAck, Exit: true}, nil
}
