package main

import (
	"github.com/spf13/cobra"

	"misakif.uk/internal/output"
)

func newRootCmd() *cobra.Command {
	ui := output.New()

	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Serve and inspect the misakif.uk project catalog",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ui.Out = cmd.OutOrStdout()
			ui.ErrOut = cmd.ErrOrStderr()
		},
	}

	root.AddCommand(newServeCmd(), newListCmd(ui), newExportCmd(ui))
	return root
}
