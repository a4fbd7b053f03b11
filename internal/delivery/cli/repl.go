package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/pradyuprasad/tp/internal/converter"
	"github.com/pradyuprasad/tp/internal/service"

	"github.com/sirupsen/logrus"
)

const welcome = "Patient and caregiver address book. Type \"help\" for the list of commands."

// REPL reads one command per line and prints the outcome
type REPL struct {
	svc service.CommandService
	log *logrus.Logger
	in  io.Reader
	out io.Writer
}

func NewREPL(svc service.CommandService, log *logrus.Logger, in io.Reader, out io.Writer) *REPL {
	return &REPL{
		svc: svc,
		log: log,
		in:  in,
		out: out,
	}
}

// Run loops until exit is entered, input ends or ctx is cancelled
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.out, TitleStyle.Render(welcome))

	scanner := bufio.NewScanner(r.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(r.out, PromptStyle.Render("> "))
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}

		if exit := r.Handle(ctx, scanner.Text()); exit {
			return nil
		}
	}
}

// Handle executes one line and prints the result; it reports whether the user asked to exit.
func (r *REPL) Handle(ctx context.Context, line string) bool {
	res, err := r.svc.Execute(ctx, line)
	if err != nil {
		fmt.Fprintln(r.out, ErrorMessageStyle.Render(err.Error()))
		return false
	}

	fmt.Fprintln(r.out, FeedbackStyle.Render(res.Feedback))
	if res.ShowList {
		fmt.Fprint(r.out, RenderPersons(converter.PersonsToResponse(r.svc.DisplayedPersons())))
	}
	if res.ShowHistory {
		fmt.Fprint(r.out, RenderHistory(res.History))
	}
	if res.Exit {
		r.log.Debug("Exit requested")
	}
	return res.Exit
}
