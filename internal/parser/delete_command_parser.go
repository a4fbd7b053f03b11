package parser

import "github.com/pradyuprasad/tp/internal/command"

// DeleteCommandParser parses "INDEX".
type DeleteCommandParser struct{}

func (DeleteCommandParser) Parse(args string) (command.Command, error) {
	index, err := ParseIndex(args)
	if err != nil {
		return nil, newParseError(KindInvalidIndex, command.InvalidFormat(command.DeleteUsage))
	}
	return command.NewDeleteCommand(index), nil
}
