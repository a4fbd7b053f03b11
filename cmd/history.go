package main

import (
	"fmt"

	"github.com/pradyuprasad/tp/cmd/bootstrap"
	"github.com/pradyuprasad/tp/internal/delivery/cli"
	"github.com/pradyuprasad/tp/pkg/response"

	"github.com/spf13/cobra"
)

const messageHistoryCleared = "Command history cleared."

var (
	historyClear bool
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Shows or clears previously entered commands",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		app, err := bootstrap.New(ctx, envFile)
		if err != nil {
			return err
		}
		defer app.Close()

		out := cmd.OutOrStdout()
		if historyClear {
			if err := app.Commands.ClearHistory(ctx); err != nil {
				return err
			}
			if historyJSON {
				return response.Success(out, messageHistoryCleared, nil)
			}
			fmt.Fprintln(out, messageHistoryCleared)
			return nil
		}

		lines, err := app.Commands.History(ctx)
		if err != nil {
			return err
		}
		if historyJSON {
			return response.Success(out, fmt.Sprintf("%d commands", len(lines)), lines)
		}
		fmt.Fprint(out, cli.RenderHistory(lines))
		return nil
	},
}

func init() {
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "forget every recorded command")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "print the result as JSON")
	rootCmd.AddCommand(historyCmd)
}
