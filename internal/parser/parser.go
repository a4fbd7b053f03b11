package parser

import "github.com/pradyuprasad/tp/internal/command"

// Parser turns the argument part of user input into a Command.
// Parsers hold no state and are safe for concurrent use.
type Parser interface {
	Parse(args string) (command.Command, error)
}
