package main

import (
	"fmt"
	"strings"

	"github.com/pradyuprasad/tp/cmd/bootstrap"
	"github.com/pradyuprasad/tp/internal/converter"
	"github.com/pradyuprasad/tp/internal/delivery/cli"
	"github.com/pradyuprasad/tp/internal/parser"
	"github.com/pradyuprasad/tp/pkg/response"

	"github.com/spf13/cobra"
)

var execJSON bool

var execCmd = &cobra.Command{
	Use:   "exec <command>",
	Short: "Runs a single command and exits",
	Example: `  tp exec "list"
  tp exec --json "findapp startdate/30/10/2024 start/14:00 enddate/30/10/2024 end/15:00"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := bootstrap.New(ctx, envFile)
		if err != nil {
			return err
		}
		defer app.Close()

		out := cmd.OutOrStdout()
		res, err := app.Commands.Execute(ctx, strings.Join(args, " "))
		if err != nil {
			if execJSON {
				kind := "EXECUTION_FAILED"
				if k, ok := parser.KindOf(err); ok {
					kind = k.String()
				}
				if encErr := response.Error(out, err.Error(), kind); encErr != nil {
					return encErr
				}
			}
			return err
		}

		persons := converter.PersonsToResponse(app.Commands.DisplayedPersons())
		if execJSON {
			return response.SuccessWithMeta(out, res.Feedback, persons, &response.Meta{Total: len(persons)})
		}

		fmt.Fprintln(out, res.Feedback)
		if res.ShowList {
			fmt.Fprint(out, cli.RenderPersons(persons))
		}
		if res.ShowHistory {
			fmt.Fprint(out, cli.RenderHistory(res.History))
		}
		return nil
	},
}

func init() {
	execCmd.Flags().BoolVar(&execJSON, "json", false, "print the result and the displayed person list as JSON")
	rootCmd.AddCommand(execCmd)
}
