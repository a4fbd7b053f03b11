// Package command contains the immutable, fully validated instructions
// produced by the parsers and executed against the address book.
package command

import (
	"context"

	"github.com/pradyuprasad/tp/internal/usecase"
)

// Command is an executable instruction. Implementations are immutable
// values and may be shared between goroutines.
type Command interface {
	Execute(ctx context.Context, book usecase.AddressBookUsecase) (*CommandResult, error)
}

// CommandResult is the outcome of executing a command
type CommandResult struct {
	Feedback    string
	ShowList    bool
	ShowHelp    bool
	ShowHistory bool
	Exit        bool
}

// Error is an execution failure whose message is shown to the user as-is
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}
