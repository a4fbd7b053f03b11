package parser

import (
	"strings"
	"unicode"

	"github.com/pradyuprasad/tp/internal/command"
)

// Command words
const (
	WordAdd             = "add"
	WordEdit            = "edit"
	WordDelete          = "delete"
	WordFind            = "find"
	WordFindAppointment = "findapp"
	WordAddAppointment  = "addapp"
	WordList            = "list"
	WordClear           = "clear"
	WordHistory         = "history"
	WordHelp            = "help"
	WordExit            = "exit"
)

var argumentParsers = map[string]Parser{
	WordAdd:             AddCommandParser{},
	WordEdit:            EditCommandParser{},
	WordDelete:          DeleteCommandParser{},
	WordFind:            FindCommandParser{},
	WordFindAppointment: FindAppointmentCommandParser{},
	WordAddAppointment:  AddAppointmentCommandParser{},
}

var bareCommands = map[string]command.Command{
	WordList:    command.ListCommand{},
	WordClear:   command.ClearCommand{},
	WordHistory: command.HistoryCommand{},
	WordHelp:    command.HelpCommand{},
	WordExit:    command.ExitCommand{},
}

// ParseCommand splits input into a command word and its arguments and
// dispatches to the matching parser.
func ParseCommand(input string) (command.Command, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, newParseError(KindMissingOrMisorderedPrefix, command.InvalidFormat(command.HelpUsage))
	}

	word, args := splitCommandWord(trimmed)

	if p, ok := argumentParsers[word]; ok {
		return p.Parse(args)
	}
	if c, ok := bareCommands[word]; ok {
		return c, nil
	}
	return nil, newParseError(KindUnknownCommand, command.MessageUnknownCommand)
}

// splitCommandWord keeps the leading whitespace on args so prefixes right
// after the command word are still recognised.
func splitCommandWord(s string) (string, string) {
	idx := strings.IndexFunc(s, unicode.IsSpace)
	if idx < 0 {
		return s, ""
	}
	return s[:idx], s[idx:]
}
