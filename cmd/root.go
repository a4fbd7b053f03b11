package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/pradyuprasad/tp/cmd/bootstrap"

	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "tp",
	Short: "Patient and caregiver address book",
	Long: `tp keeps contact details, roles, tags and appointments for patients
and their caregivers. Run without arguments for an interactive prompt,
or use "tp exec" to run a single command.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		app, err := bootstrap.New(ctx, envFile)
		if err != nil {
			return err
		}
		defer app.Close()

		return app.RunREPL(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "env file with configuration")
}
