package service

import (
	"context"
	"strings"

	"github.com/pradyuprasad/tp/internal/command"
	"github.com/pradyuprasad/tp/internal/domain/entity"
	"github.com/pradyuprasad/tp/internal/parser"
	"github.com/pradyuprasad/tp/internal/usecase"

	"github.com/sirupsen/logrus"
)

// CommandResult is what the presentation layer renders after one input line
type CommandResult struct {
	*command.CommandResult
	// History is filled when the command asked for it, most recent first
	History []string
}

// CommandService runs a raw input line end to end: parse, execute, record.
type CommandService interface {
	Execute(ctx context.Context, input string) (*CommandResult, error)
	DisplayedPersons() []entity.Person
	History(ctx context.Context) ([]string, error)
	ClearHistory(ctx context.Context) error
}

type commandService struct {
	log     *logrus.Logger
	book    usecase.AddressBookUsecase
	history HistoryStore
}

func NewCommandService(log *logrus.Logger, book usecase.AddressBookUsecase, history HistoryStore) CommandService {
	return &commandService{
		log:     log,
		book:    book,
		history: history,
	}
}

// Execute records every non-blank line in the history, including lines that
// fail to parse or execute. A failing history write is logged but does not
// fail the command.
func (s *commandService) Execute(ctx context.Context, input string) (*CommandResult, error) {
	if line := strings.TrimSpace(input); line != "" {
		if err := s.history.Append(ctx, line); err != nil {
			s.log.Warnf("Failed to record command %q: %+v", line, err)
		}
	}

	cmd, err := parser.ParseCommand(input)
	if err != nil {
		if kind, ok := parser.KindOf(err); ok {
			s.log.WithField("kind", kind.String()).Debugf("Rejected input %q", input)
		}
		return nil, err
	}

	res, err := cmd.Execute(ctx, s.book)
	if err != nil {
		s.log.WithField("command", commandWord(input)).Debugf("Command failed: %v", err)
		return nil, err
	}

	out := &CommandResult{CommandResult: res}
	if res.ShowHistory {
		lines, err := s.History(ctx)
		if err != nil {
			return nil, err
		}
		out.History = lines
	}
	return out, nil
}

// History returns every recorded line, most recent first
func (s *commandService) History(ctx context.Context) ([]string, error) {
	return s.history.Recent(ctx, 0)
}

func (s *commandService) ClearHistory(ctx context.Context) error {
	if err := s.history.Clear(ctx); err != nil {
		s.log.Warnf("Failed to clear command history: %+v", err)
		return err
	}
	s.log.Info("Command history cleared")
	return nil
}

func (s *commandService) DisplayedPersons() []entity.Person {
	return s.book.FilteredPersons()
}

func commandWord(input string) string {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
